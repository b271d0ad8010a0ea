package template

import (
	"github.com/trungnguyen160923/coffee-management-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	templates := r.Group("/templates")
	templates.Use(middleware.AuthMiddleware())
	{
		templates.GET("/bonus", handler.ListBonusTemplates)
		templates.GET("/penalty", handler.ListPenaltyConfigs)
		templates.GET("/allowance", handler.ListAllowanceTemplates)
		templates.GET("/:id", handler.GetById)
		templates.POST("", handler.Create)
		templates.PUT("/:id", handler.Update)
		templates.DELETE("/:id", handler.Delete)
	}
}
