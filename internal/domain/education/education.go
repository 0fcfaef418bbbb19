package education

import "context"

type Education struct {
	ID        int64   `json:"id"`
	School    string  `json:"school"`
	Degree    string  `json:"degree"`
	Field     string  `json:"field"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func (e *Education) IsCurrent() bool {
	return e.EndDate == nil || *e.EndDate == ""
}

type Repository interface {
	List(ctx context.Context) ([]*Education, error)
	Create(ctx context.Context, e *Education) error
}
