package project

import "context"

// Project is a portfolio entry. Title acts as the display key for case-study
// enrichment; uniqueness is assumed, not enforced.
type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        *string  `json:"link"`
	GithubLink  *string  `json:"github_link"`
	ImageURL    *string  `json:"image_url"`
	Tags        []string `json:"tags"`
}

// PrimaryLink picks the live link, then the repository link.
func (p *Project) PrimaryLink() string {
	if p.Link != nil && *p.Link != "" {
		return *p.Link
	}
	if p.GithubLink != nil && *p.GithubLink != "" {
		return *p.GithubLink
	}
	return ""
}

type Repository interface {
	List(ctx context.Context) ([]*Project, error)
	Create(ctx context.Context, p *Project) error
}
