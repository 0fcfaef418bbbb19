package experience

import "context"

type Experience struct {
	ID          int64   `json:"id"`
	Company     string  `json:"company"`
	Role        string  `json:"role"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description"`
}

// IsCurrent reports an open-ended period.
func (e *Experience) IsCurrent() bool {
	return e.EndDate == nil || *e.EndDate == ""
}

type Repository interface {
	// List returns rows in insertion order.
	List(ctx context.Context) ([]*Experience, error)
	Create(ctx context.Context, e *Experience) error
}
