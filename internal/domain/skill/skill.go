package skill

import "context"

const (
	MinProficiency = 0
	MaxProficiency = 100
)

// Skill proficiency is expected in [MinProficiency,MaxProficiency]. Stored
// rows are not checked; seed definitions are.
type Skill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
}

type Repository interface {
	List(ctx context.Context) ([]*Skill, error)
	Create(ctx context.Context, s *Skill) error
}
