package router

import (
	"marketdesk/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.GET("", orderHandler.List)
	orders.GET("/export", orderHandler.Export)
	orders.POST("/refresh", orderHandler.Refresh)
	orders.POST("/bulk", orderHandler.Bulk)
	orders.POST("/:id/cancel", orderHandler.Cancel)
}
