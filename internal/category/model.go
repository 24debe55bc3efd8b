package category

import "time"

type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type UpdateParams struct {
	Name        *string
	Description *string
}
