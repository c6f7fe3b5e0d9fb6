package handler

import (
	"github.com/labstack/echo/v4"

	"marketdesk/internal/domain/schema"
	"marketdesk/pkg/response"
)

type SchemaHandler struct {
	registry *schema.Registry
}

func NewSchemaHandler(registry *schema.Registry) *SchemaHandler {
	return &SchemaHandler{
		registry: registry,
	}
}

func (h *SchemaHandler) Categories(c echo.Context) error {
	return response.Success(c, h.registry.Categories())
}

// ValidateForm checks a listing form payload against its category's
// registered schema before the console submits it upstream.
func (h *SchemaHandler) ValidateForm(c echo.Context) error {
	category := c.Param("category")

	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		return response.Error(c, err)
	}

	if err := h.registry.Validate(category, payload); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"category": category, "valid": "true"})
}
