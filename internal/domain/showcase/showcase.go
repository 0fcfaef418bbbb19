// Package showcase turns stored collections into the page model the site
// renders, filling every empty collection with display defaults.
package showcase

import (
	"sort"

	"github.com/zthechelon/portfolio/internal/domain/education"
	"github.com/zthechelon/portfolio/internal/domain/experience"
	"github.com/zthechelon/portfolio/internal/domain/profile"
	"github.com/zthechelon/portfolio/internal/domain/project"
	"github.com/zthechelon/portfolio/internal/domain/seed"
	"github.com/zthechelon/portfolio/internal/domain/skill"
)

type Level string

const (
	LevelStrong   Level = "strong"
	LevelWorking  Level = "working"
	LevelFamiliar Level = "familiar"
)

func LevelFor(proficiency int) Level {
	switch {
	case proficiency >= 90:
		return LevelStrong
	case proficiency >= 75:
		return LevelWorking
	default:
		return LevelFamiliar
	}
}

// Section names reported in View.Fallbacks.
const (
	SectionProfile     = "profile"
	SectionExperiences = "experiences"
	SectionEducation   = "education"
	SectionProjects    = "projects"
	SectionSkills      = "skills"
)

const presentLabel = "Present"

type ProfileView struct {
	Name        string
	Title       string
	Bio         string
	Email       string
	LinkedinURL string
	GithubURL   string
	ResumeURL   string
	ImageURL    *string
}

type SkillView struct {
	Name  string
	Level Level
}

type SkillGroup struct {
	Category Category
	Skills   []SkillView
}

type TimelineEntry struct {
	ID          int64
	Heading     string
	Subheading  string
	Period      string
	Description string
}

type ProjectView struct {
	Project   project.Project
	CaseStudy *CaseStudy
}

func (p ProjectView) Featured() bool {
	return p.CaseStudy != nil
}

type View struct {
	Profile     ProfileView
	SkillGroups []SkillGroup
	Experiences []TimelineEntry
	Education   []TimelineEntry
	Projects    []ProjectView
	// Fallbacks lists the sections rendered from defaults.
	Fallbacks []string
}

// Input holds whatever could be fetched. Nil or empty means "use defaults".
type Input struct {
	Profile     *profile.Profile
	Experiences []*experience.Experience
	Education   []*education.Education
	Projects    []*project.Project
	Skills      []*skill.Skill
}

func Build(in Input) View {
	var v View
	baseline := seed.Baseline()

	if in.Profile == nil {
		v.Fallbacks = append(v.Fallbacks, SectionProfile)
	}
	v.Profile = ResolveProfile(in.Profile)

	skills := in.Skills
	if len(skills) == 0 {
		v.Fallbacks = append(v.Fallbacks, SectionSkills)
		skills = DefaultSkills()
	}
	v.SkillGroups = GroupSkills(skills)

	experiences := in.Experiences
	if len(experiences) == 0 {
		v.Fallbacks = append(v.Fallbacks, SectionExperiences)
		experiences = pointersTo(baseline.Experiences)
	}
	for _, e := range experiences {
		v.Experiences = append(v.Experiences, TimelineEntry{
			ID:          e.ID,
			Heading:     e.Role,
			Subheading:  e.Company,
			Period:      period(e.StartDate, e.EndDate, e.IsCurrent()),
			Description: e.Description,
		})
	}

	edu := in.Education
	if len(edu) == 0 {
		v.Fallbacks = append(v.Fallbacks, SectionEducation)
		edu = pointersTo(baseline.Education)
	}
	for _, e := range edu {
		v.Education = append(v.Education, TimelineEntry{
			ID:         e.ID,
			Heading:    e.Degree,
			Subheading: e.School,
			Period:     period(e.StartDate, e.EndDate, e.IsCurrent()),
		})
	}

	projects := in.Projects
	if len(projects) == 0 {
		v.Fallbacks = append(v.Fallbacks, SectionProjects)
		projects = pointersTo(baseline.Projects)
	}
	v.Projects = OrderProjects(projects, CaseStudies(v.Profile))

	return v
}

// ResolveProfile falls back per field. Title and bio always use the curated
// display copy so the headline does not depend on stored content.
func ResolveProfile(p *profile.Profile) ProfileView {
	d := DefaultProfile()
	if p == nil {
		return d
	}
	return ProfileView{
		Name:        firstNonEmpty(p.Name, d.Name),
		Title:       d.Title,
		Bio:         d.Bio,
		Email:       firstNonEmpty(p.Email, d.Email),
		LinkedinURL: firstNonEmpty(p.LinkedinURL, d.LinkedinURL),
		GithubURL:   firstNonEmpty(p.GithubURL, d.GithubURL),
		ResumeURL:   firstNonEmpty(p.ResumeURL, d.ResumeURL),
		ImageURL:    p.ImageURL,
	}
}

// GroupSkills groups by category in order of first appearance.
func GroupSkills(skills []*skill.Skill) []SkillGroup {
	groups := make([]SkillGroup, 0)
	index := make(map[string]int)
	for _, s := range skills {
		cat := CategoryFor(s.Category)
		i, ok := index[cat.Key]
		if !ok {
			i = len(groups)
			index[cat.Key] = i
			groups = append(groups, SkillGroup{Category: cat})
		}
		groups[i].Skills = append(groups[i].Skills, SkillView{Name: s.Name, Level: LevelFor(s.Proficiency)})
	}
	return groups
}

// OrderProjects puts projects with a case study first, then orders by id.
func OrderProjects(projects []*project.Project, studies map[string]CaseStudy) []ProjectView {
	out := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		pv := ProjectView{Project: *p}
		if cs, ok := studies[p.Title]; ok {
			pv.CaseStudy = &cs
		}
		out = append(out, pv)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured() != out[j].Featured() {
			return out[i].Featured()
		}
		return out[i].Project.ID < out[j].Project.ID
	})
	return out
}

func period(start string, end *string, current bool) string {
	if current {
		return start + " - " + presentLabel
	}
	return start + " - " + *end
}

func firstNonEmpty(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func pointersTo[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
