package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/internal/domain/profile"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type RSSUseCase struct {
	content   *ContentUseCase
	publicURL string
	logger    logger.Logger
}

func NewRSSUseCase(content *ContentUseCase, publicURL string, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{
		content:   content,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		logger:    log,
	}
}

// Execute builds a projects feed in insertion order.
func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	uc.logger.Debug("Generating projects RSS feed...")

	profileOut, err := uc.content.ExecuteGetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile for feed failed: %w", err)
	}
	projects, err := uc.content.ExecuteListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects for feed failed: %w", err)
	}

	owner := ownerName(profileOut.Profile)
	feed := &feeds.Feed{
		Title:       owner + " - Projects",
		Link:        &feeds.Link{Href: uc.publicURL},
		Description: "Selected projects.",
		Author:      &feeds.Author{Name: owner},
		Created:     time.Now().UTC(),
	}

	for _, p := range projects {
		link := p.PrimaryLink()
		if link == "" {
			link = uc.publicURL
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          fmt.Sprintf("%s/projects/%d", uc.publicURL, p.ID),
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Description: p.Description,
			Created:     feed.Created,
		})
	}

	uc.logger.Info("Projects RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}

func ownerName(p *profile.Profile) string {
	if p == nil || p.Name == "" {
		return "Portfolio"
	}
	return p.Name
}
