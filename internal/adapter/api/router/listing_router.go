package router

import (
	"marketdesk/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupListingRouter(e *echo.Echo) {
	listingHandler := handler.GetListingHandler()

	listings := e.Group("/v1/listings")
	listings.GET("", listingHandler.List)
	listings.GET("/export", listingHandler.Export)
	listings.POST("/refresh", listingHandler.Refresh)
	listings.POST("/bulk", listingHandler.Bulk)
	listings.POST("/:id/flag", listingHandler.Flag)
	listings.POST("/:id/unflag", listingHandler.Unflag)
	listings.POST("/:id/activate", listingHandler.Activate)
	listings.POST("/:id/deactivate", listingHandler.Deactivate)
	listings.DELETE("/:id", listingHandler.Delete)
}
