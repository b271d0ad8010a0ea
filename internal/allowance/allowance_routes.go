package allowance

import (
	"github.com/trungnguyen160923/coffee-management-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	allowances := r.Group("/allowances")
	allowances.Use(middleware.AuthMiddleware())
	{
		allowances.GET("", handler.GetAll)
		allowances.GET("/:id", handler.GetById)
		allowances.POST("", handler.Create)
		allowances.PUT("/:id", handler.Update)
		allowances.DELETE("/:id", handler.Delete)
		allowances.POST("/:id/activate", handler.Activate)
		allowances.POST("/:id/deactivate", handler.Deactivate)
		allowances.POST("/apply-template", handler.ApplyTemplate)
	}
}
