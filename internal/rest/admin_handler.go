package rest

import (
	"net/http"

	"dentalstore-be/internal/category"
	"dentalstore-be/internal/report"
	"dentalstore-be/internal/user"
	"dentalstore-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	categorySvc category.Service
	userSvc     user.Service
	reportSvc   report.Service
}

func NewAdminHandler(categorySvc category.Service, userSvc user.Service, reportSvc report.Service) *AdminHandler {
	return &AdminHandler{
		categorySvc: categorySvc,
		userSvc:     userSvc,
		reportSvc:   reportSvc,
	}
}

// --- Sales report ---

func (h *AdminHandler) SalesReport(c *gin.Context) {
	var f report.Filters

	start, err := utils.ParseDate(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid startDate"})
		return
	}
	if !start.IsZero() {
		f.StartDate = &start
	}

	end, err := utils.ParseDate(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid endDate"})
		return
	}
	if !end.IsZero() {
		// keep the range inclusive on the end date
		end = report.EndOfDay(end)
		f.EndDate = &end
	}

	if cat := c.Query("category"); cat != "" {
		f.Category = &cat
	}

	rep, err := h.reportSvc.SalesReport(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSalesReportResponse(rep))
}

// --- Categories ---

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.categorySvc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, toCategoryResponse(cat))
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.categorySvc.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCategoryResponse(created))
}

type categoryUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var req categoryUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.categorySvc.Update(c.Request.Context(), c.Param("id"), category.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponse(updated))
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.categorySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category removed"})
}

// --- Users ---

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	c.JSON(http.StatusOK, out)
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req updateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.userSvc.UpdateRole(c.Request.Context(), c.Param("id"), user.Role(req.Role))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(updated))
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.userSvc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User removed"})
}
