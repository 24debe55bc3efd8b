package rest

import (
	"net/http"

	"dentalstore-be/internal/variant"

	"github.com/gin-gonic/gin"
)

type VariantHandler struct {
	variantSvc variant.Service
}

func NewVariantHandler(variantSvc variant.Service) *VariantHandler {
	return &VariantHandler{variantSvc: variantSvc}
}

func (h *VariantHandler) ListByProduct(c *gin.Context) {
	variants, err := h.variantSvc.ListByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]variantResponse, 0, len(variants))
	for _, v := range variants {
		out = append(out, toVariantResponse(v))
	}
	c.JSON(http.StatusOK, out)
}

type variantRequest struct {
	Name       string            `json:"name" binding:"required"`
	SKU        string            `json:"sku" binding:"required"`
	Price      *float64          `json:"price" binding:"required,gte=0"`
	Stock      *int              `json:"stock" binding:"required,gte=0"`
	Attributes map[string]string `json:"attributes"`
	ImageURL   *string           `json:"imageUrl"`
}

func (h *VariantHandler) Create(c *gin.Context) {
	var req variantRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.variantSvc.Create(c.Request.Context(), variant.Variant{
		ProductID:  c.Param("id"),
		Name:       req.Name,
		SKU:        req.SKU,
		Price:      *req.Price,
		Stock:      *req.Stock,
		Attributes: req.Attributes,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toVariantResponse(created))
}

type variantUpdateRequest struct {
	Name       *string           `json:"name"`
	SKU        *string           `json:"sku"`
	Price      *float64          `json:"price" binding:"omitempty,gte=0"`
	Stock      *int              `json:"stock" binding:"omitempty,gte=0"`
	Attributes map[string]string `json:"attributes"`
	ImageURL   *string           `json:"imageUrl"`
}

func (h *VariantHandler) Update(c *gin.Context) {
	var req variantUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.variantSvc.Update(c.Request.Context(), c.Param("id"), variant.UpdateParams{
		Name:       req.Name,
		SKU:        req.SKU,
		Price:      req.Price,
		Stock:      req.Stock,
		Attributes: req.Attributes,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toVariantResponse(updated))
}

func (h *VariantHandler) Delete(c *gin.Context) {
	if err := h.variantSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Variant removed"})
}
