package router

import (
	"marketdesk/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupSchemaRouter(e *echo.Echo) {
	schemaHandler := handler.GetSchemaHandler()

	categories := e.Group("/v1/categories")
	categories.GET("", schemaHandler.Categories)
	categories.POST("/:category/validate", schemaHandler.ValidateForm)
}
