package showcase

import (
	"github.com/zthechelon/portfolio/internal/domain/seed"
	"github.com/zthechelon/portfolio/internal/domain/skill"
)

func DefaultProfile() ProfileView {
	b := seed.Baseline().Profile
	return ProfileView{
		Name:        b.Name,
		Title:       b.Title,
		Bio:         b.Bio,
		Email:       b.Email,
		LinkedinURL: b.LinkedinURL,
		GithubURL:   b.GithubURL,
		ResumeURL:   b.ResumeURL,
	}
}

// DefaultSkills is the curated list shown when no skills are stored.
func DefaultSkills() []*skill.Skill {
	return []*skill.Skill{
		{Name: "Java (Spring Boot)", Category: CategoryCore, Proficiency: 95},
		{Name: "TypeScript / JavaScript", Category: CategoryCore, Proficiency: 95},
		{Name: "React", Category: CategoryCore, Proficiency: 92},
		{Name: "SQL", Category: CategoryCore, Proficiency: 90},
		{Name: "Node.js", Category: CategoryAlso, Proficiency: 85},
		{Name: "Python", Category: CategoryAlso, Proficiency: 82},
		{Name: "Docker", Category: CategoryAlso, Proficiency: 85},
		{Name: "Postgres", Category: CategoryAlso, Proficiency: 85},
		{Name: "Prisma", Category: CategoryAlso, Proficiency: 82},
		{Name: "REST APIs", Category: CategoryAlso, Proficiency: 88},
		{Name: "Testing (JUnit / Jest)", Category: CategoryAlso, Proficiency: 82},
		{Name: "CI/CD", Category: CategoryAlso, Proficiency: 82},
		{Name: "Clean Architecture", Category: CategoryPractices, Proficiency: 95},
		{Name: "API Design", Category: CategoryPractices, Proficiency: 92},
		{Name: "Schema Migrations", Category: CategoryPractices, Proficiency: 85},
		{Name: "Observability Basics", Category: CategoryPractices, Proficiency: 80},
	}
}
