package product

import "time"

type Category string

const (
	CategoryEquipment    Category = "Equipment"
	CategoryConsumables  Category = "Consumables"
	CategoryInstruments  Category = "Instruments"
	CategoryHygiene      Category = "Hygiene"
	CategoryOrthodontics Category = "Orthodontics"
)

var Categories = []Category{
	CategoryEquipment,
	CategoryConsumables,
	CategoryInstruments,
	CategoryHygiene,
	CategoryOrthodontics,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    Category
	ImageURL    string
	InStock     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type UpdateParams struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *Category
	ImageURL    *string
	InStock     *int
}

func (p UpdateParams) HasAnyField() bool {
	return p.Name != nil ||
		p.Description != nil ||
		p.Price != nil ||
		p.Category != nil ||
		p.ImageURL != nil ||
		p.InStock != nil
}

type ListOptions struct {
	Category *Category
	Search   *string
}
