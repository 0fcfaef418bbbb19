// Package client reads the public portfolio API.
//
// Each collection is fetched on its own. A collection that cannot be fetched
// comes back empty and is named in Content.Unavailable, so callers can fall
// back to display defaults instead of failing the page.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/pkg/logger"
)

type Profile struct {
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

type Experience struct {
	ID          int64   `json:"id"`
	Company     string  `json:"company"`
	Role        string  `json:"role"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description string  `json:"description"`
}

type Education struct {
	ID        int64   `json:"id"`
	School    string  `json:"school"`
	Degree    string  `json:"degree"`
	Field     string  `json:"field"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        *string  `json:"link"`
	GithubLink  *string  `json:"githubLink"`
	ImageURL    *string  `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

type Skill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
}

type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
}

// Content is everything the site renders. Profile is nil when the API has
// none or could not be reached.
type Content struct {
	Profile     *Profile
	Experiences []Experience
	Education   []Education
	Projects    []Project
	Skills      []Skill
	// Unavailable names the endpoints that failed.
	Unavailable []string
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(log logger.Logger) Option {
	return func(c *Client) { c.logger = log }
}

// New returns a client for baseURL, e.g. "https://example.com/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchContent never fails; see Content.Unavailable.
func (c *Client) FetchContent(ctx context.Context) Content {
	var content Content

	var p Profile
	if err := c.getJSON(ctx, "/profile", &p); err != nil {
		c.unavailable(&content, "profile", err)
	} else if p != (Profile{}) {
		content.Profile = &p
	}

	content.Experiences = fetchList[Experience](ctx, c, "experiences", &content)
	content.Education = fetchList[Education](ctx, c, "education", &content)
	content.Projects = fetchList[Project](ctx, c, "projects", &content)
	content.Skills = fetchList[Skill](ctx, c, "skills", &content)
	return content
}

func fetchList[T any](ctx context.Context, c *Client, name string, content *Content) []T {
	items := []T{}
	if err := c.getJSON(ctx, "/"+name, &items); err != nil {
		c.unavailable(content, name, err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

func (c *Client) unavailable(content *Content, name string, err error) {
	c.logger.Warn("Collection unavailable, caller should use defaults", zap.String("collection", name), zap.Error(err))
	content.Unavailable = append(content.Unavailable, name)
}

// SubmitContact posts a contact message. A 400 from the API is returned as
// *StatusError with Code 400.
func (c *Client) SubmitContact(ctx context.Context, req ContactRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode contact request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/contact", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("post contact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readStatusError(resp)
	}
	return nil
}

type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.Code, e.Message)
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readStatusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func readStatusError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode)
	}
	return &StatusError{Code: resp.StatusCode, Message: body.Message}
}
