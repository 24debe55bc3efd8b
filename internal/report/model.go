package report

import "time"

// Filters narrows the sales report. Date bounds are inclusive; a nil
// field means "all".
type Filters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
}

type CategorySales struct {
	Category   string
	Total      float64
	Percentage float64
}

type MonthlySales struct {
	Month string // "YYYY-MM"
	Total float64
}

type TopProduct struct {
	ProductID  string
	Name       string
	TotalSales float64
	Quantity   int
}

type SalesReport struct {
	TotalSales        float64
	TotalOrders       int
	AverageOrderValue float64
	SalesByCategory   []CategorySales
	SalesByMonth      []MonthlySales
	TopProducts       []TopProduct
}

type CategoryStats struct {
	Category     string
	Count        int
	TotalValue   float64
	AveragePrice float64
}

// ProductStats is the inventory snapshot shown on the admin dashboard.
type ProductStats struct {
	TotalProducts   int
	TotalValue      float64
	LowStockCount   int
	OutOfStockCount int
	CategoryStats   []CategoryStats
}
