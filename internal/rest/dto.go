package rest

import (
	"time"

	"dentalstore-be/internal/category"
	"dentalstore-be/internal/order"
	"dentalstore-be/internal/product"
	"dentalstore-be/internal/report"
	"dentalstore-be/internal/review"
	"dentalstore-be/internal/user"
	"dentalstore-be/internal/variant"
)

type userResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toUserResponse(u user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	InStock     int       `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProductResponse(p product.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    string(p.Category),
		ImageURL:    p.ImageURL,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []product.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCategoryResponse(c category.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type variantResponse struct {
	ID         string            `json:"id"`
	ProductID  string            `json:"productId"`
	Name       string            `json:"name"`
	SKU        string            `json:"sku"`
	Price      float64           `json:"price"`
	Stock      int               `json:"stock"`
	Attributes map[string]string `json:"attributes"`
	ImageURL   *string           `json:"imageUrl,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

func toVariantResponse(v variant.Variant) variantResponse {
	attrs := v.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	return variantResponse{
		ID:         v.ID,
		ProductID:  v.ProductID,
		Name:       v.Name,
		SKU:        v.SKU,
		Price:      v.Price,
		Stock:      v.Stock,
		Attributes: attrs,
		ImageURL:   v.ImageURL,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

type reviewResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toReviewResponse(rv review.Review) reviewResponse {
	return reviewResponse{
		ID:        rv.ID,
		ProductID: rv.ProductID,
		UserID:    rv.UserID,
		UserName:  rv.UserName,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		Status:    string(rv.Status),
		CreatedAt: rv.CreatedAt,
		UpdatedAt: rv.UpdatedAt,
	}
}

type orderItemResponse struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type shippingAddressResponse struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type orderResponse struct {
	ID              string                  `json:"id"`
	User            string                  `json:"user"`
	Items           []orderItemResponse     `json:"items"`
	TotalAmount     float64                 `json:"totalAmount"`
	ShippingAddress shippingAddressResponse `json:"shippingAddress"`
	Status          string                  `json:"status"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			Product:  it.ProductID,
			Name:     it.ProductName,
			Quantity: it.Quantity,
			Price:    it.UnitPrice,
		})
	}

	return orderResponse{
		ID:          o.ID,
		User:        o.UserID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		ShippingAddress: shippingAddressResponse{
			Name:    o.ShippingAddress.Name,
			Street:  o.ShippingAddress.Street,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			ZipCode: o.ShippingAddress.ZipCode,
			Country: o.ShippingAddress.Country,
		},
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

type categorySalesResponse struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

type monthlySalesResponse struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type topProductResponse struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	TotalSales float64 `json:"totalSales"`
	Quantity   int     `json:"quantity"`
}

type salesReportResponse struct {
	TotalSales        float64                 `json:"totalSales"`
	TotalOrders       int                     `json:"totalOrders"`
	AverageOrderValue float64                 `json:"averageOrderValue"`
	SalesByCategory   []categorySalesResponse `json:"salesByCategory"`
	SalesByMonth      []monthlySalesResponse  `json:"salesByMonth"`
	TopProducts       []topProductResponse    `json:"topProducts"`
}

func toSalesReportResponse(r *report.SalesReport) salesReportResponse {
	out := salesReportResponse{
		TotalSales:        r.TotalSales,
		TotalOrders:       r.TotalOrders,
		AverageOrderValue: r.AverageOrderValue,
		SalesByCategory:   []categorySalesResponse{},
		SalesByMonth:      []monthlySalesResponse{},
		TopProducts:       []topProductResponse{},
	}
	for _, cs := range r.SalesByCategory {
		out.SalesByCategory = append(out.SalesByCategory, categorySalesResponse(cs))
	}
	for _, ms := range r.SalesByMonth {
		out.SalesByMonth = append(out.SalesByMonth, monthlySalesResponse(ms))
	}
	for _, tp := range r.TopProducts {
		out.TopProducts = append(out.TopProducts, topProductResponse(tp))
	}
	return out
}
