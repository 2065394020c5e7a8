package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"slotbook/internal/pkg/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxCustomerIDKey = "customer_id"

// AuthMiddleware verifies bearer tokens from the external identity
// provider. Authentication itself lives outside this service; all we keep
// from the token is the opaque customer handle.
type AuthMiddleware struct {
	verifier *identity.Verifier
}

func NewAuthMiddleware(verifier *identity.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		customerID, err := m.verifier.VerifyToken(token)
		if err != nil {
			slog.Warn("Token verification failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxCustomerIDKey, customerID)
		c.Next()
	}
}

func GetCustomerID(c *gin.Context) (uuid.UUID, bool) {
	customerID, exists := c.Get(ctxCustomerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := customerID.(uuid.UUID)
	return id, ok
}
