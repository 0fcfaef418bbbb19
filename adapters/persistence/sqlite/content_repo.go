package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/zthechelon/portfolio/internal/domain/education"
	"github.com/zthechelon/portfolio/internal/domain/experience"
	"github.com/zthechelon/portfolio/internal/domain/profile"
	"github.com/zthechelon/portfolio/internal/domain/project"
	"github.com/zthechelon/portfolio/internal/domain/skill"
	"github.com/zthechelon/portfolio/pkg/apperror"
)

type profileRepo struct{ db *sql.DB }

func NewProfileRepo(db *sql.DB) profile.Repository { return &profileRepo{db: db} }

func (r *profileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, title, bio, email, linkedin_url, github_url, resume_url, image_url
		FROM profiles ORDER BY id LIMIT 1`,
	).Scan(&p.ID, &p.Name, &p.Title, &p.Bio, &p.Email, &p.LinkedinURL, &p.GithubURL, &p.ResumeURL, &p.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "singleton")
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *profileRepo) Create(ctx context.Context, p *profile.Profile) error {
	return insertProfile(ctx, r.db, p)
}

func insertProfile(ctx context.Context, q querier, p *profile.Profile) error {
	err := q.QueryRowContext(ctx, `
		INSERT INTO profiles (name, title, bio, email, linkedin_url, github_url, resume_url, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		p.Name, p.Title, p.Bio, p.Email, p.LinkedinURL, p.GithubURL, p.ResumeURL, p.ImageURL,
	).Scan(&p.ID)
	if err != nil {
		return apperror.NewInternal("failed to insert profile", err)
	}
	return nil
}

type experienceRepo struct{ db *sql.DB }

func NewExperienceRepo(db *sql.DB) experience.Repository { return &experienceRepo{db: db} }

func (r *experienceRepo) List(ctx context.Context) ([]*experience.Experience, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, company, role, start_date, end_date, description FROM experiences ORDER BY id`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experiences", err)
	}
	return collect(rows, "experience", func(rows *sql.Rows) (*experience.Experience, error) {
		e := &experience.Experience{}
		err := rows.Scan(&e.ID, &e.Company, &e.Role, &e.StartDate, &e.EndDate, &e.Description)
		return e, err
	})
}

func (r *experienceRepo) Create(ctx context.Context, e *experience.Experience) error {
	return insertExperience(ctx, r.db, e)
}

func insertExperience(ctx context.Context, q querier, e *experience.Experience) error {
	err := q.QueryRowContext(ctx, `
		INSERT INTO experiences (company, role, start_date, end_date, description)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		e.Company, e.Role, e.StartDate, e.EndDate, e.Description,
	).Scan(&e.ID)
	if err != nil {
		return apperror.NewInternal("failed to insert experience", err)
	}
	return nil
}

type educationRepo struct{ db *sql.DB }

func NewEducationRepo(db *sql.DB) education.Repository { return &educationRepo{db: db} }

func (r *educationRepo) List(ctx context.Context) ([]*education.Education, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, school, degree, field, start_date, end_date FROM education ORDER BY id`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education", err)
	}
	return collect(rows, "education", func(rows *sql.Rows) (*education.Education, error) {
		e := &education.Education{}
		err := rows.Scan(&e.ID, &e.School, &e.Degree, &e.Field, &e.StartDate, &e.EndDate)
		return e, err
	})
}

func (r *educationRepo) Create(ctx context.Context, e *education.Education) error {
	return insertEducation(ctx, r.db, e)
}

func insertEducation(ctx context.Context, q querier, e *education.Education) error {
	err := q.QueryRowContext(ctx, `
		INSERT INTO education (school, degree, field, start_date, end_date)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		e.School, e.Degree, e.Field, e.StartDate, e.EndDate,
	).Scan(&e.ID)
	if err != nil {
		return apperror.NewInternal("failed to insert education", err)
	}
	return nil
}

type projectRepo struct{ db *sql.DB }

func NewProjectRepo(db *sql.DB) project.Repository { return &projectRepo{db: db} }

func (r *projectRepo) List(ctx context.Context) ([]*project.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, link, github_link, image_url, tags FROM projects ORDER BY id`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	return collect(rows, "project", func(rows *sql.Rows) (*project.Project, error) {
		p := &project.Project{}
		var tags string
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Link, &p.GithubLink, &p.ImageURL, &tags); err != nil {
			return nil, err
		}
		p.Tags = []string{}
		if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
			return nil, err
		}
		return p, nil
	})
}

func (r *projectRepo) Create(ctx context.Context, p *project.Project) error {
	return insertProject(ctx, r.db, p)
}

func insertProject(ctx context.Context, q querier, p *project.Project) error {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return apperror.NewInternal("failed to marshal project tags", err)
	}
	err = q.QueryRowContext(ctx, `
		INSERT INTO projects (title, description, link, github_link, image_url, tags)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`,
		p.Title, p.Description, p.Link, p.GithubLink, p.ImageURL, string(encoded),
	).Scan(&p.ID)
	if err != nil {
		return apperror.NewInternal("failed to insert project", err)
	}
	return nil
}

type skillRepo struct{ db *sql.DB }

func NewSkillRepo(db *sql.DB) skill.Repository { return &skillRepo{db: db} }

func (r *skillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, category, proficiency FROM skills ORDER BY id`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	return collect(rows, "skill", func(rows *sql.Rows) (*skill.Skill, error) {
		s := &skill.Skill{}
		err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency)
		return s, err
	})
}

func (r *skillRepo) Create(ctx context.Context, s *skill.Skill) error {
	return insertSkill(ctx, r.db, s)
}

func insertSkill(ctx context.Context, q querier, s *skill.Skill) error {
	err := q.QueryRowContext(ctx, `
		INSERT INTO skills (name, category, proficiency) VALUES (?, ?, ?) RETURNING id`,
		s.Name, s.Category, s.Proficiency,
	).Scan(&s.ID)
	if err != nil {
		return apperror.NewInternal("failed to insert skill", err)
	}
	return nil
}

func collect[T any](rows *sql.Rows, resource string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()
	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan "+resource+" row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating "+resource+" rows", err)
	}
	return items, nil
}
