package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/agendabi/bi-scheduler/internal/domain/appointment"
	"github.com/agendabi/bi-scheduler/internal/middleware"
)

// actorFrom monta o Actor explícito a partir do token já validado pelo
// AuthMiddleware. Os casos de uso nunca leem o contexto da requisição.
func actorFrom(c *gin.Context) domain.Actor {
	userID, _ := c.MustGet(middleware.ContextUserID).(string)
	role, _ := c.MustGet(middleware.ContextUserRole).(string)

	return domain.Actor{
		ID:   userID,
		Role: role,
	}
}
