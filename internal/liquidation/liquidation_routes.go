package liquidation

import (
	"school-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	liquidations := r.Group("/liquidations")
	liquidations.Use(middleware.AuthMiddleware())
	{
		liquidations.GET("", handler.GetAll)
		liquidations.GET("/:id", handler.GetById)
		liquidations.POST("/estimate", handler.Estimate)
		liquidations.POST("", handler.Create)
		liquidations.PUT("/:id", handler.Update)
		liquidations.POST("/:id/mark-paid", handler.MarkPaid)
		liquidations.DELETE("/:id", handler.Delete)
	}
}
