package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gustavoesucri/back-end-ifd/internal/shared/response"
	"github.com/gustavoesucri/back-end-ifd/pkg/jwt"
	"github.com/gustavoesucri/back-end-ifd/pkg/logger"
)

const (
	ContextAccountID = "accountID"
	ContextEmail     = "accountEmail"
)

// TokenValidator is satisfied by *jwt.Manager.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// account id and email in the gin context.
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			logger.Debug("rejected token", map[string]interface{}{"error": err.Error()})
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		accountID, err := claims.AccountID()
		if err != nil {
			response.Unauthorized(c, "invalid account in token")
			c.Abort()
			return
		}

		c.Set(ContextAccountID, accountID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// WriteGuard applies auth only to state-changing methods.
func WriteGuard(auth gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "POST", "PUT", "PATCH", "DELETE":
			auth(c)
		default:
			c.Next()
		}
	}
}
