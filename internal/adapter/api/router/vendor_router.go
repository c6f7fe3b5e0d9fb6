package router

import (
	"marketdesk/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupVendorRouter(e *echo.Echo) {
	vendorHandler := handler.GetVendorHandler()

	vendors := e.Group("/v1/vendors")
	vendors.GET("", vendorHandler.List)
	vendors.GET("/export", vendorHandler.Export)
	vendors.POST("/refresh", vendorHandler.Refresh)
	vendors.POST("/bulk", vendorHandler.Bulk)
	vendors.POST("/:id/suspend", vendorHandler.Suspend)
	vendors.POST("/:id/reactivate", vendorHandler.Reactivate)
}
