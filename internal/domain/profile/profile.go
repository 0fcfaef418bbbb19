package profile

import "context"

// Profile is the site owner. At most one row exists.
type Profile struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Bio         string  `json:"bio"`
	Email       string  `json:"email"`
	LinkedinURL string  `json:"linkedin_url"`
	GithubURL   string  `json:"github_url"`
	ResumeURL   string  `json:"resume_url"`
	ImageURL    *string `json:"image_url"`
}

type Repository interface {
	// Get returns an apperror wrapping ErrNotFound when no profile exists.
	Get(ctx context.Context) (*Profile, error)
	Create(ctx context.Context, p *Profile) error
}
