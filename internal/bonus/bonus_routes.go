package bonus

import (
	"github.com/trungnguyen160923/coffee-management-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	bonuses := r.Group("/bonuses")
	bonuses.Use(middleware.AuthMiddleware())
	{
		bonuses.GET("", handler.GetAll)
		bonuses.GET("/:id", handler.GetById)
		bonuses.POST("", handler.Create)
		bonuses.PUT("/:id", handler.Update)
		bonuses.DELETE("/:id", handler.Delete)
		bonuses.POST("/:id/approve", handler.Approve)
		bonuses.POST("/:id/reject", handler.Reject)
		bonuses.POST("/apply-template", handler.ApplyTemplate)
	}
}
