package ledger

import (
	"github.com/trungnguyen160923/coffee-management-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotency gin.HandlerFunc) {
	transactions := r.Group("/transactions")
	transactions.Use(middleware.AuthMiddleware())
	{
		transactions.GET("", handler.List)
		transactions.GET("/kpi", handler.Kpi)
		transactions.GET("/export", handler.Export)
		transactions.POST("/reload", handler.Reload)
		transactions.POST("/:id/approve", handler.Approve)
		transactions.POST("/:id/reject", handler.Reject)
		transactions.POST("/bulk", idempotency, handler.Bulk)
		transactions.POST("/apply-template", idempotency, handler.ApplyTemplate)
	}
}
