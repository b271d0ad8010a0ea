package penalty

import (
	"github.com/trungnguyen160923/coffee-management-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	penalties := r.Group("/penalties")
	penalties.Use(middleware.AuthMiddleware())
	{
		penalties.GET("", handler.GetAll)
		penalties.GET("/:id", handler.GetById)
		penalties.POST("", handler.Create)
		penalties.PUT("/:id", handler.Update)
		penalties.DELETE("/:id", handler.Delete)
		penalties.POST("/:id/approve", handler.Approve)
		penalties.POST("/:id/reject", handler.Reject)
		penalties.POST("/apply-template", handler.ApplyTemplate)
	}
}
