package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tunlify/tunlify/internal/api/constants"
	"github.com/tunlify/tunlify/internal/api/dto/common"
	"github.com/tunlify/tunlify/internal/repository"
)

// AuthMiddleware resolves API keys to user rows. The account system itself
// (registration, key issuance) lives outside this service.
type AuthMiddleware struct {
	users repository.UserRepository
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{users: users}
}

// RequireAuth rejects requests without a valid bearer API key.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		apiKey, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				common.NewErrorResponse(common.ErrCodeUnauthorized, "Missing API key", nil))
			return
		}

		user, err := m.users.GetByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				common.NewErrorResponse(common.ErrCodeUnauthorized, "Invalid API key", nil))
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}
