package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/auth"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

const (
	ContextAccountID = "accountID"
	ContextRole      = "role"
)

func AuthMiddleware(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "authentication required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "use a bearer token")
			return
		}

		id, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "token is invalid or expired")
			return
		}

		c.Set(ContextAccountID, id.AccountID)
		c.Set(ContextRole, id.Role)
		c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), id.AccountID))

		c.Next()
	}
}

// AccountID returns the authenticated account, if any.
func AccountID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextAccountID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
