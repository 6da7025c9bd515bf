package benefitconfig

import (
	"school-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	benefits := r.Group("/benefit-configurations")
	benefits.Use(middleware.AuthMiddleware())
	{
		benefits.GET("", handler.GetAll)
		benefits.GET("/:id", handler.GetById)
		benefits.POST("", handler.Create)
		benefits.PUT("/:id", handler.Update)
		benefits.DELETE("/:id", handler.Delete)
	}
}
