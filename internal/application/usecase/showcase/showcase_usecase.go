package showcase

import (
	"context"

	"github.com/zthechelon/portfolio/internal/application/usecase/content"
	"github.com/zthechelon/portfolio/internal/domain/showcase"
	"github.com/zthechelon/portfolio/pkg/logger"
)

// ShowcaseUseCase assembles the page model. Each collection is read on its
// own; a failed read degrades to defaults instead of failing the page.
type ShowcaseUseCase struct {
	content *content.ContentUseCase
	logger  logger.Logger
}

func NewShowcaseUseCase(content *content.ContentUseCase, log logger.Logger) *ShowcaseUseCase {
	return &ShowcaseUseCase{content: content, logger: log}
}

func (uc *ShowcaseUseCase) Execute(ctx context.Context) showcase.View {
	var in showcase.Input

	if out, err := uc.content.ExecuteGetProfile(ctx); err != nil {
		uc.logger.Error("Showcase: profile unavailable, using defaults", err)
	} else {
		in.Profile = out.Profile
	}

	var err error
	if in.Experiences, err = uc.content.ExecuteListExperiences(ctx); err != nil {
		uc.logger.Error("Showcase: experiences unavailable, using defaults", err)
	}
	if in.Education, err = uc.content.ExecuteListEducation(ctx); err != nil {
		uc.logger.Error("Showcase: education unavailable, using defaults", err)
	}
	if in.Projects, err = uc.content.ExecuteListProjects(ctx); err != nil {
		uc.logger.Error("Showcase: projects unavailable, using defaults", err)
	}
	if in.Skills, err = uc.content.ExecuteListSkills(ctx); err != nil {
		uc.logger.Error("Showcase: skills unavailable, using defaults", err)
	}

	return showcase.Build(in)
}
