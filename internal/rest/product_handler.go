package rest

import (
	"net/http"

	"dentalstore-be/internal/product"
	"dentalstore-be/internal/report"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productSvc product.Service
	reportSvc  report.Service
}

func NewProductHandler(productSvc product.Service, reportSvc report.Service) *ProductHandler {
	return &ProductHandler{productSvc: productSvc, reportSvc: reportSvc}
}

func (h *ProductHandler) List(c *gin.Context) {
	opts := product.ListOptions{}

	if cat := c.Query("category"); cat != "" {
		pc := product.Category(cat)
		opts.Category = &pc
	}
	if search := c.Query("search"); search != "" {
		opts.Search = &search
	}

	products, err := h.productSvc.List(c.Request.Context(), opts)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponses(products))
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.productSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

type productRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"required"`
	ImageURL    string   `json:"imageUrl" binding:"required,url"`
	InStock     *int     `json:"inStock" binding:"required,gte=0"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.productSvc.Create(c.Request.Context(), product.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    product.Category(req.Category),
		ImageURL:    req.ImageURL,
		InStock:     *req.InStock,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(created))
}

type productUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl" binding:"omitempty,url"`
	InStock     *int     `json:"inStock" binding:"omitempty,gte=0"`
}

func (r productUpdateRequest) params() product.UpdateParams {
	params := product.UpdateParams{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		InStock:     r.InStock,
	}
	if r.Category != nil {
		pc := product.Category(*r.Category)
		params.Category = &pc
	}
	return params
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req productUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.productSvc.Update(c.Request.Context(), c.Param("id"), req.params())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(updated))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}

func (h *ProductHandler) Stats(c *gin.Context) {
	stats, err := h.reportSvc.ProductStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	categoryStats := make([]gin.H, 0, len(stats.CategoryStats))
	for _, cs := range stats.CategoryStats {
		categoryStats = append(categoryStats, gin.H{
			"category":     cs.Category,
			"count":        cs.Count,
			"totalValue":   cs.TotalValue,
			"averagePrice": cs.AveragePrice,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalProducts":   stats.TotalProducts,
		"totalValue":      stats.TotalValue,
		"lowStockCount":   stats.LowStockCount,
		"outOfStockCount": stats.OutOfStockCount,
		"categoryStats":   categoryStats,
	})
}
