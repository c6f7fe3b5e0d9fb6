package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(e *echo.Echo) {
	SetupListingRouter(e)
	SetupVendorRouter(e)
	SetupOrderRouter(e)
	SetupReviewRouter(e)
	SetupSchemaRouter(e)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
