package payrollconfig

import (
	"school-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	configs := r.Group("/payroll-configurations")
	configs.Use(middleware.AuthMiddleware())
	{
		configs.GET("", handler.GetAll)
		configs.GET("/active", handler.GetActive)
		configs.GET("/:id", handler.GetById)
		configs.POST("", handler.Create)
		configs.PUT("/:id", handler.Update)
		configs.POST("/:id/activate", handler.Activate)
		configs.DELETE("/:id", handler.Delete)
	}
}
