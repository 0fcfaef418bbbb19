package http

import (
	"github.com/zthechelon/portfolio/internal/domain/education"
	"github.com/zthechelon/portfolio/internal/domain/experience"
	"github.com/zthechelon/portfolio/internal/domain/profile"
	"github.com/zthechelon/portfolio/internal/domain/project"
	"github.com/zthechelon/portfolio/internal/domain/showcase"
	"github.com/zthechelon/portfolio/internal/domain/skill"
)

// Profile DTOs
type ProfileDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Bio         string  `json:"bio"`
	Email       string  `json:"email"`
	LinkedinURL string  `json:"linkedinUrl"`
	GithubURL   string  `json:"githubUrl"`
	ResumeURL   string  `json:"resumeUrl"`
	ImageURL    *string `json:"imageUrl"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:          p.ID,
		Name:        p.Name,
		Title:       p.Title,
		Bio:         p.Bio,
		Email:       p.Email,
		LinkedinURL: p.LinkedinURL,
		GithubURL:   p.GithubURL,
		ResumeURL:   p.ResumeURL,
		ImageURL:    p.ImageURL,
	}
}

// Experience DTOs
type ExperienceDTO struct {
	ID          int64   `json:"id"`
	Company     string  `json:"company"`
	Role        string  `json:"role"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description string  `json:"description"`
}

func ToExperienceDTOs(items []*experience.Experience) []ExperienceDTO {
	dtos := make([]ExperienceDTO, len(items))
	for i, e := range items {
		dtos[i] = ExperienceDTO{
			ID:          e.ID,
			Company:     e.Company,
			Role:        e.Role,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
		}
	}
	return dtos
}

// Education DTOs
type EducationDTO struct {
	ID        int64   `json:"id"`
	School    string  `json:"school"`
	Degree    string  `json:"degree"`
	Field     string  `json:"field"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

func ToEducationDTOs(items []*education.Education) []EducationDTO {
	dtos := make([]EducationDTO, len(items))
	for i, e := range items {
		dtos[i] = EducationDTO{
			ID:        e.ID,
			School:    e.School,
			Degree:    e.Degree,
			Field:     e.Field,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
		}
	}
	return dtos
}

// Project DTOs
type ProjectDTO struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        *string  `json:"link"`
	GithubLink  *string  `json:"githubLink"`
	ImageURL    *string  `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProjectDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
		GithubLink:  p.GithubLink,
		ImageURL:    p.ImageURL,
		Tags:        tags,
	}
}

func ToProjectDTOs(items []*project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(items))
	for i, p := range items {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// Skill DTOs
type SkillDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
}

func ToSkillDTOs(items []*skill.Skill) []SkillDTO {
	dtos := make([]SkillDTO, len(items))
	for i, s := range items {
		dtos[i] = SkillDTO{
			ID:          s.ID,
			Name:        s.Name,
			Category:    s.Category,
			Proficiency: s.Proficiency,
		}
	}
	return dtos
}

// Contact DTOs
type SubmitContactRequest struct {
	Name    string  `json:"name" binding:"required,max=200"`
	Email   string  `json:"email" binding:"required,email"`
	Subject *string `json:"subject" binding:"omitempty,max=300"`
	Message string  `json:"message" binding:"required,max=5000"`
}

// Showcase DTOs
type ShowcaseProfileDTO struct {
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Bio         string  `json:"bio"`
	Email       string  `json:"email"`
	LinkedinURL string  `json:"linkedinUrl"`
	GithubURL   string  `json:"githubUrl"`
	ResumeURL   string  `json:"resumeUrl"`
	ImageURL    *string `json:"imageUrl"`
}

type ShowcaseSkillDTO struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type ShowcaseSkillGroupDTO struct {
	Category string             `json:"category"`
	Label    string             `json:"label"`
	Icon     string             `json:"icon"`
	Known    bool               `json:"known"`
	Skills   []ShowcaseSkillDTO `json:"skills"`
}

type TimelineEntryDTO struct {
	ID          int64  `json:"id"`
	Heading     string `json:"heading"`
	Subheading  string `json:"subheading"`
	Period      string `json:"period"`
	Description string `json:"description,omitempty"`
}

type CaseStudyLinksDTO struct {
	Demo      string `json:"demo,omitempty"`
	GitHub    string `json:"github,omitempty"`
	CaseStudy string `json:"caseStudy,omitempty"`
}

type CaseStudyDTO struct {
	Problem   string            `json:"problem"`
	Built     string            `json:"built"`
	Decisions []string          `json:"decisions"`
	Impact    string            `json:"impact"`
	Links     CaseStudyLinksDTO `json:"links"`
}

type ShowcaseProjectDTO struct {
	ProjectDTO
	Featured  bool          `json:"featured"`
	CaseStudy *CaseStudyDTO `json:"caseStudy,omitempty"`
}

type ShowcaseDTO struct {
	Profile     ShowcaseProfileDTO      `json:"profile"`
	SkillGroups []ShowcaseSkillGroupDTO `json:"skillGroups"`
	Experiences []TimelineEntryDTO      `json:"experiences"`
	Education   []TimelineEntryDTO      `json:"education"`
	Projects    []ShowcaseProjectDTO    `json:"projects"`
	Fallbacks   []string                `json:"fallbacks"`
}

func ToShowcaseDTO(v showcase.View) ShowcaseDTO {
	dto := ShowcaseDTO{
		Profile: ShowcaseProfileDTO{
			Name:        v.Profile.Name,
			Title:       v.Profile.Title,
			Bio:         v.Profile.Bio,
			Email:       v.Profile.Email,
			LinkedinURL: v.Profile.LinkedinURL,
			GithubURL:   v.Profile.GithubURL,
			ResumeURL:   v.Profile.ResumeURL,
			ImageURL:    v.Profile.ImageURL,
		},
		SkillGroups: make([]ShowcaseSkillGroupDTO, len(v.SkillGroups)),
		Experiences: toTimelineDTOs(v.Experiences),
		Education:   toTimelineDTOs(v.Education),
		Projects:    make([]ShowcaseProjectDTO, len(v.Projects)),
		Fallbacks:   v.Fallbacks,
	}
	if dto.Fallbacks == nil {
		dto.Fallbacks = []string{}
	}

	for i, g := range v.SkillGroups {
		skills := make([]ShowcaseSkillDTO, len(g.Skills))
		for j, s := range g.Skills {
			skills[j] = ShowcaseSkillDTO{Name: s.Name, Level: string(s.Level)}
		}
		dto.SkillGroups[i] = ShowcaseSkillGroupDTO{
			Category: g.Category.Key,
			Label:    g.Category.Label,
			Icon:     g.Category.Icon,
			Known:    g.Category.Known,
			Skills:   skills,
		}
	}

	for i, p := range v.Projects {
		pd := ShowcaseProjectDTO{ProjectDTO: ToProjectDTO(&p.Project), Featured: p.Featured()}
		if cs := p.CaseStudy; cs != nil {
			pd.CaseStudy = &CaseStudyDTO{
				Problem:   cs.Problem,
				Built:     cs.Built,
				Decisions: cs.Decisions,
				Impact:    cs.Impact,
				Links: CaseStudyLinksDTO{
					Demo:      cs.Links.Demo,
					GitHub:    cs.Links.GitHub,
					CaseStudy: cs.Links.CaseStudy,
				},
			}
		}
		dto.Projects[i] = pd
	}
	return dto
}

func toTimelineDTOs(entries []showcase.TimelineEntry) []TimelineEntryDTO {
	dtos := make([]TimelineEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = TimelineEntryDTO{
			ID:          e.ID,
			Heading:     e.Heading,
			Subheading:  e.Subheading,
			Period:      e.Period,
			Description: e.Description,
		}
	}
	return dtos
}
