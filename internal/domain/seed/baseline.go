package seed

import (
	"github.com/zthechelon/portfolio/internal/domain/education"
	"github.com/zthechelon/portfolio/internal/domain/experience"
	"github.com/zthechelon/portfolio/internal/domain/profile"
	"github.com/zthechelon/portfolio/internal/domain/project"
	"github.com/zthechelon/portfolio/internal/domain/skill"
)

// BaselineVersion changes whenever Baseline content changes in a way that
// should be recorded. Staleness itself is driven by the profile title.
const BaselineVersion = "2025.02"

const (
	profileURLLinkedIn = "https://www.linkedin.com/in/zubairmuwwakil/"
	profileURLGitHub   = "https://github.com/ZthEchelon"
	profileURLResume   = "https://drive.google.com/file/d/1Z87uMI6RrrPa9KeIhZChkpzl-YYZYgTr/view?usp=sharing"
)

func strPtr(s string) *string { return &s }

// Baseline returns a fresh copy of the site's seed content.
func Baseline() Definition {
	return Definition{
		Version: BaselineVersion,
		Profile: profile.Profile{
			Name:        "Zubair Muwwakil",
			Title:       "Software Engineer (Full-Stack / Backend)",
			Bio:         "Finance-informed engineer who builds production APIs, data pipelines, and web apps with reliability, data integrity, and performance top of mind.",
			Email:       "zmuwwakil@gmail.com",
			LinkedinURL: profileURLLinkedIn,
			GithubURL:   profileURLGitHub,
			ResumeURL:   profileURLResume,
		},
		Experiences: []experience.Experience{
			{
				Company:     "MindSky",
				Role:        "Full-Stack Developer",
				StartDate:   "2024",
				Description: "Built and shipped the MindSky marketing site and client web apps; static-first builds, composable content blocks, and accessibility checks.",
			},
			{
				Company:     "Freelance",
				Role:        "Software Developer",
				StartDate:   "2023",
				EndDate:     strPtr("2024"),
				Description: "Delivered client web apps and automation end to end, from REST APIs and Postgres schemas to React front ends and CI/CD.",
			},
			{
				Company:     "Independent Research",
				Role:        "Financial Data Analyst",
				StartDate:   "2022",
				EndDate:     strPtr("2023"),
				Description: "Built ingestion and normalization jobs for market indicators and the dashboards that consumed them.",
			},
		},
		Education: []education.Education{
			{
				School:    "University of Toronto",
				Degree:    "Bachelor of Computer Science",
				Field:     "Computer Science",
				StartDate: "2019",
				EndDate:   strPtr("2023"),
			},
		},
		Projects: []project.Project{
			{
				Title:       "Pickleball Session Manager",
				Description: "Scheduling, balancing, and rating logic for pickleball clubs with Prisma migrations and a pairing algorithm tuned for fair play.",
				Link:        strPtr("https://pickleball.zubairmuwwakil.com"),
				GithubLink:  strPtr("https://github.com/ZthEchelon/pickleball-session-manager"),
				Tags:        []string{"TypeScript", "React", "Prisma", "Postgres"},
			},
			{
				Title:       "Market Data Pipeline",
				Description: "Ingests price and indicator feeds, normalizes them into Postgres, caches hot queries, and serves typed REST endpoints.",
				GithubLink:  strPtr("https://github.com/ZthEchelon/market-data-pipeline"),
				Tags:        []string{"Python", "SQL", "Postgres", "REST"},
			},
			{
				Title:       "MindSky Website",
				Description: "Responsive marketing site with modular sections, analytics hooks, and lightweight animations.",
				Link:        strPtr("https://mindsky.zubairmuwwakil.com"),
				Tags:        []string{"Web Development", "React"},
			},
			{
				Title:       "Pickleball Social",
				Description: "A social platform for pickleball enthusiasts to connect and organize matches.",
				Link:        strPtr("https://zmuwwakil9.wixsite.com/pickleball-social"),
				Tags:        []string{"Web Development", "Community"},
			},
		},
		Skills: []skill.Skill{
			{Name: "Java (Spring Boot)", Category: "core", Proficiency: 95},
			{Name: "TypeScript / JavaScript", Category: "core", Proficiency: 95},
			{Name: "React", Category: "core", Proficiency: 92},
			{Name: "SQL", Category: "core", Proficiency: 90},
			{Name: "Node.js", Category: "also", Proficiency: 85},
			{Name: "Python", Category: "also", Proficiency: 82},
			{Name: "Docker", Category: "also", Proficiency: 85},
			{Name: "Postgres", Category: "also", Proficiency: 85},
			{Name: "REST APIs", Category: "also", Proficiency: 88},
			{Name: "CI/CD", Category: "also", Proficiency: 82},
			{Name: "Clean Architecture", Category: "practices", Proficiency: 95},
			{Name: "API Design", Category: "practices", Proficiency: 92},
			{Name: "Schema Migrations", Category: "practices", Proficiency: 85},
			{Name: "Observability Basics", Category: "practices", Proficiency: 80},
		},
	}
}
