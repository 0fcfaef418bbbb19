// Package seed decides whether the content store holds the current baseline
// and describes the baseline itself. It performs no I/O.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/zthechelon/portfolio/internal/domain/education"
	"github.com/zthechelon/portfolio/internal/domain/experience"
	"github.com/zthechelon/portfolio/internal/domain/profile"
	"github.com/zthechelon/portfolio/internal/domain/project"
	"github.com/zthechelon/portfolio/internal/domain/skill"
)

// Definition is the full baseline content, inserted in slice order.
type Definition struct {
	Version     string
	Profile     profile.Profile
	Experiences []experience.Experience
	Education   []education.Education
	Projects    []project.Project
	Skills      []skill.Skill
}

func (d Definition) ExpectedTitle() string {
	return d.Profile.Title
}

func (d Definition) ExpectedSkillCount() int {
	return len(d.Skills)
}

func (d Definition) Validate() error {
	if d.Version == "" {
		return errors.New("seed version is required")
	}
	if d.Profile.Title == "" {
		return errors.New("seed profile title is required")
	}
	if len(d.Experiences) == 0 || len(d.Projects) == 0 || len(d.Skills) == 0 {
		return errors.New("seed must contain experiences, projects and skills")
	}
	for _, s := range d.Skills {
		if s.Proficiency < skill.MinProficiency || s.Proficiency > skill.MaxProficiency {
			return fmt.Errorf("seed skill %q proficiency %d out of range", s.Name, s.Proficiency)
		}
	}
	return nil
}

// State is what the store currently holds, as far as staleness is concerned.
type State struct {
	HasProfile      bool
	ProfileTitle    string
	ExperienceCount int
	EducationCount  int
	ProjectCount    int
	SkillCount      int
}

type Reason string

const (
	ReasonCurrent       Reason = "current"
	ReasonNoProfile     Reason = "profile_missing"
	ReasonTitleChanged  Reason = "title_changed"
	ReasonNoExperiences Reason = "experiences_empty"
	ReasonNoProjects    Reason = "projects_empty"
	ReasonSkillsMissing Reason = "skills_below_expected"
	ReasonForced        Reason = "forced"
)

// Evaluate returns whether state is stale against def and the first reason found.
//
// The education count is intentionally not part of the predicate: the
// collection is replaced along with everything else, but an empty education
// list alone never triggers a reseed.
func Evaluate(state State, def Definition) (bool, Reason) {
	switch {
	case !state.HasProfile:
		return true, ReasonNoProfile
	case state.ProfileTitle != def.ExpectedTitle():
		return true, ReasonTitleChanged
	case state.ExperienceCount == 0:
		return true, ReasonNoExperiences
	case state.ProjectCount == 0:
		return true, ReasonNoProjects
	case state.SkillCount < def.ExpectedSkillCount():
		return true, ReasonSkillsMissing
	}
	return false, ReasonCurrent
}

func IsStale(state State, def Definition) bool {
	stale, _ := Evaluate(state, def)
	return stale
}

// DecideFunc is re-evaluated by the store while it holds the seed lock.
type DecideFunc func(State) bool

type Store interface {
	State(ctx context.Context) (State, error)
	// Replace runs clear+insert of def in one transaction under a store-wide
	// seed lock, but only if decide(current state) holds once the lock is held.
	// It reports whether a replace happened.
	Replace(ctx context.Context, def Definition, decide DecideFunc) (bool, error)
	// Clear deletes every row of the seeded collections, profile included.
	Clear(ctx context.Context) error
}
