package employee

import (
	"school-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		employees.POST("", handler.Create)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}
