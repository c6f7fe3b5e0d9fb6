package router

import (
	"marketdesk/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/v1/reviews")
	reviews.GET("", reviewHandler.List)
	reviews.GET("/export", reviewHandler.Export)
	reviews.POST("/refresh", reviewHandler.Refresh)
	reviews.POST("/bulk", reviewHandler.Bulk)
	reviews.POST("/:id/:action", reviewHandler.UpdateStatus)
	reviews.DELETE("/:id", reviewHandler.Delete)
}
