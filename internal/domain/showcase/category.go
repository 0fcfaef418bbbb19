package showcase

import "strings"

// Category is display metadata for a skill group. Known is false for the
// explicit fallback variant, which keeps the raw key.
type Category struct {
	Key   string
	Label string
	Icon  string
	Known bool
}

const (
	CategoryCore      = "core"
	CategoryAlso      = "also"
	CategoryPractices = "practices"
	CategoryFrontend  = "frontend"
	CategoryBackend   = "backend"
	CategoryData      = "data"
)

const (
	unknownLabel = "Toolkit"
	unknownIcon  = "code"
)

var knownCategories = map[string]Category{
	CategoryCore:      {Key: CategoryCore, Label: "Core stack", Icon: "server", Known: true},
	CategoryAlso:      {Key: CategoryAlso, Label: "Also use", Icon: "layout", Known: true},
	CategoryPractices: {Key: CategoryPractices, Label: "Practices", Icon: "database", Known: true},
	CategoryFrontend:  {Key: CategoryFrontend, Label: "Frontend", Icon: "layout", Known: true},
	CategoryBackend:   {Key: CategoryBackend, Label: "Backend", Icon: "server", Known: true},
	CategoryData:      {Key: CategoryData, Label: "Data", Icon: "database", Known: true},
}

// CategoryFor maps a free-text category to its display metadata. Matching is
// case and whitespace insensitive; anything else yields the unknown variant.
func CategoryFor(raw string) Category {
	key := strings.ToLower(strings.TrimSpace(raw))
	if c, ok := knownCategories[key]; ok {
		return c
	}
	return Category{Key: key, Label: unknownLabel, Icon: unknownIcon, Known: false}
}
