package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"catalog/internal/auth"
)

// SubjectKey is the context key under which RequireToken stores the
// authenticated username.
const SubjectKey = "subject"

// RequireToken guards a route with bearer-token validation. No current
// route mounts it; it exists so protected routes can be added without
// touching the token service.
func (h *Handler) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		subject, err := h.tokens.Validate(strings.TrimPrefix(header, prefix))
		if err != nil {
			msg := "Token is invalid"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}
