package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole bloqueia a rota para quem não tiver um dos papéis exigidos.
// Deve vir depois do AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.MustGet(ContextUserRole).(string)

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
