package showcase

type CaseStudyLinks struct {
	Demo      string
	GitHub    string
	CaseStudy string
}

type CaseStudy struct {
	Problem   string
	Built     string
	Decisions []string
	Impact    string
	Links     CaseStudyLinks
}

// CaseStudies is keyed by project title. Some links point at the resolved
// profile's resume and GitHub pages.
func CaseStudies(p ProfileView) map[string]CaseStudy {
	return map[string]CaseStudy{
		"Pickleball Session Manager": {
			Problem: "Pickleball clubs needed fair ladders and rating updates without spreadsheets.",
			Built:   "Full-stack app with Prisma/Postgres and a React front end to schedule sessions, balance pairings, and keep ratings honest.",
			Decisions: []string{
				"Prisma migrations and seed data for players, ladders, and sessions to keep environments reproducible.",
				"Balancing algorithm that pairs players by rating tiers and recent matchups to avoid repeats.",
				"Rating updates applied per match with guardrails for defaults/forfeits and audit-friendly history.",
				"Role-based admin surface so captains can open sessions, lock courts, and override scores safely.",
			},
			Impact: "Sessions stay balanced and schedulers stopped spending nights in spreadsheets.",
			Links: CaseStudyLinks{
				Demo:      "https://pickleball.zubairmuwwakil.com",
				GitHub:    "https://github.com/ZthEchelon/pickleball-session-manager",
				CaseStudy: p.ResumeURL,
			},
		},
		"Market Data Pipeline": {
			Problem: "Needed reliable, de-duplicated market indicators for dashboards without hammering upstream APIs.",
			Built:   "Backend pipeline that ingests price/indicator feeds, normalizes them into Postgres, and serves typed REST endpoints.",
			Decisions: []string{
				"Idempotent ingest jobs with upserts keyed by symbol/date to prevent duplicate rows across retries.",
				"Caching hot indicator queries to cut API calls and keep dashboard latency predictable.",
				"Normalized indicator tables with indexes by symbol/timeframe for fast slices and joins.",
				"Contract-tested REST endpoints with sample payloads to keep downstream teams unblocked.",
			},
			Impact: "Consistent indicator data, faster dashboards, and predictable costs when third-party APIs rate-limit.",
			Links: CaseStudyLinks{
				Demo:      "https://github.com/ZthEchelon/market-data-pipeline",
				GitHub:    "https://github.com/ZthEchelon/market-data-pipeline",
				CaseStudy: p.ResumeURL,
			},
		},
		"MindSky Website": {
			Problem: "MindSky needed a fast, clear landing page that converts curious users without looking like a template.",
			Built:   "Responsive marketing site with modular sections, analytics hooks, and lightweight animations.",
			Decisions: []string{
				"Static-first build for instant page loads and SEO wins.",
				"Composable content blocks so non-engineers can swap copy without breaking layout.",
				"Accessibility checks and mobile-first spacing to keep bounce rate low.",
			},
			Impact: "Sharper storytelling with a site that loads fast and looks intentional on every device.",
			Links: CaseStudyLinks{
				Demo:      "https://mindsky.zubairmuwwakil.com",
				GitHub:    p.GithubURL,
				CaseStudy: p.ResumeURL,
			},
		},
	}
}
