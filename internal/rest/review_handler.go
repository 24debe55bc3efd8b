package rest

import (
	"net/http"

	"dentalstore-be/internal/review"
	"dentalstore-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewSvc review.Service
}

func NewReviewHandler(reviewSvc review.Service) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	reviews, err := h.reviewSvc.ListByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]reviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, toReviewResponse(rv))
	}
	c.JSON(http.StatusOK, out)
}

type reviewRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"required"`
	UserName string `json:"userName"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req reviewRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)
	userName := req.UserName
	if userName == "" {
		userName = utils.GetUserEmailFromContext(ctx)
	}

	created, err := h.reviewSvc.Create(ctx, review.Review{
		ProductID: c.Param("id"),
		UserID:    userID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toReviewResponse(created))
}

type reviewStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ReviewHandler) UpdateStatus(c *gin.Context) {
	var req reviewStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.reviewSvc.UpdateStatus(c.Request.Context(), c.Param("id"), review.Status(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReviewResponse(updated))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviewSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review removed"})
}

func (h *ReviewHandler) Stats(c *gin.Context) {
	stats, err := h.reviewSvc.StatsByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"averageRating":      stats.AverageRating,
		"totalReviews":       stats.TotalReviews,
		"ratingDistribution": stats.RatingDistribution,
	})
}
