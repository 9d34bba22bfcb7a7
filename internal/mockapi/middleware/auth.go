package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/repository"
	"github.com/Didine-06/travel-agency-sub000/pkg/response"
	"github.com/Didine-06/travel-agency-sub000/pkg/token"
)

// Context keys set by RequireAuth.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
	CtxUserRole  = "user_role"
	CtxToken     = "access_token"
)

// RequireAuth verifies the bearer token and rejects revoked tokens.
func RequireAuth(tokens *token.Manager, sessions repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := tokens.Parse(raw)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		revoked, err := sessions.IsRevoked(c.Request.Context(), raw)
		if err == nil && revoked {
			response.Unauthorized(c, "token revoked")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserRole, claims.Role)
		c.Set(CtxToken, raw)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set. Must
// run after RequireAuth.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role, _ := domain.ParseRole(c.GetString(CtxUserRole))
		if _, ok := allowed[role]; !ok {
			response.Forbidden(c, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}
