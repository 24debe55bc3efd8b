package rest

import (
	"io"
	"strings"

	"dentalstore-be/internal/utils"

	"github.com/gin-gonic/gin"
)

func stringBody(s string) io.Reader {
	return strings.NewReader(s)
}

// asUser injects an authenticated identity the way the auth middleware
// does, without needing a real token.
func asUser(id, email, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := utils.SetUserContext(c.Request.Context(), id, email, role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
