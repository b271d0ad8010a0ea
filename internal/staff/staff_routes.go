package staff

import (
	"github.com/trungnguyen160923/coffee-management-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	staff := r.Group("/staff")
	staff.Use(middleware.AuthMiddleware())
	{
		staff.GET("", handler.GetAll)
		staff.GET("/:id", handler.GetById)
	}
}
