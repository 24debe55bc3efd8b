package variant

import "time"

type Variant struct {
	ID         string
	ProductID  string
	Name       string
	SKU        string
	Price      float64
	Stock      int
	Attributes map[string]string
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type UpdateParams struct {
	Name       *string
	SKU        *string
	Price      *float64
	Stock      *int
	Attributes map[string]string
	ImageURL   *string
}

func (p UpdateParams) HasAnyField() bool {
	return p.Name != nil ||
		p.SKU != nil ||
		p.Price != nil ||
		p.Stock != nil ||
		p.Attributes != nil ||
		p.ImageURL != nil
}
