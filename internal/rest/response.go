package rest

import (
	"errors"
	"net/http"

	"dentalstore-be/internal/category"
	"dentalstore-be/internal/logger"
	"dentalstore-be/internal/order"
	"dentalstore-be/internal/product"
	"dentalstore-be/internal/review"
	"dentalstore-be/internal/user"
	"dentalstore-be/internal/variant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// bindJSON binds the request body and, on validation failure, writes
// the 400 response with the per-field error array.
func bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		out := make([]fieldError, 0, len(vErrs))
		for _, fe := range vErrs {
			out = append(out, fieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": out})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Please enter a valid email"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "url":
		return "Invalid " + fe.Field()
	case "oneof":
		return "Invalid " + fe.Field()
	}
	return "Invalid " + fe.Field()
}

var notFoundErrors = []error{
	order.ErrOrderNotFound,
	order.ErrProductNotFound,
	product.ErrProductNotFound,
	category.ErrCategoryNotFound,
	user.ErrUserNotFound,
	variant.ErrVariantNotFound,
	review.ErrReviewNotFound,
}

var badRequestErrors = []error{
	order.ErrInsufficientStock,
	order.ErrEmptyItems,
	order.ErrInvalidQuantity,
	order.ErrInvalidStatus,
	order.ErrIncompleteAddress,
	user.ErrEmailExists,
	user.ErrInvalidCredentials,
	user.ErrInvalidRole,
	product.ErrInvalidCategory,
	product.ErrInvalidPrice,
	product.ErrInvalidStock,
	product.ErrEmptyName,
	product.ErrNoUpdateFields,
	category.ErrCategoryExists,
	category.ErrEmptyName,
	variant.ErrSKUExists,
	variant.ErrEmptyName,
	variant.ErrInvalidPrice,
	variant.ErrInvalidStock,
	review.ErrInvalidRating,
	review.ErrInvalidStatus,
	review.ErrEmptyComment,
}

// writeError maps domain sentinel errors onto the HTTP taxonomy. All
// errors surface as JSON {"message": ...}; anything unmapped is a 500.
func writeError(c *gin.Context, err error) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusNotFound, gin.H{"message": capitalized(err)})
			return
		}
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, gin.H{"message": capitalized(err)})
			return
		}
	}

	logger.FromCtx(c.Request.Context()).Error("unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

func capitalized(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	if msg[0] >= 'a' && msg[0] <= 'z' {
		return string(msg[0]-'a'+'A') + msg[1:]
	}
	return msg
}
