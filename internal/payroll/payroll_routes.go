package payroll

import (
	"school-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	runs := r.Group("/payroll-runs")
	runs.Use(middleware.AuthMiddleware())
	{
		runs.GET("", handler.GetAll)
		runs.GET("/:id", handler.GetById)

		if rdb != nil {
			runs.POST("", middleware.Idempotency(rdb), handler.Create)
			runs.POST("/generate", middleware.Idempotency(rdb), handler.Generate)
		} else {
			runs.POST("", handler.Create)
			runs.POST("/generate", handler.Generate)
		}
	}
}
