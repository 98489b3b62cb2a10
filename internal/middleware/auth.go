package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"syllabushub/internal/domain/auth"
	"syllabushub/internal/pkg/jwt"
	"syllabushub/internal/pkg/response"
)

// RequireAuth validates the bearer token, rejects blacklisted (logged-out)
// tokens and puts user_id and role into the request context.
func RequireAuth(jwtService *jwt.Service, blacklist *auth.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		if blacklist.Contains(token) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "token revoked")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("token", token)
		c.Next()
	}
}
