package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketdesk/internal/domain/entity"
	"marketdesk/internal/usecase"
	"marketdesk/pkg/errors"
	"marketdesk/pkg/response"
	"marketdesk/pkg/utils"
)

type VendorHandler struct {
	vendorUseCase *usecase.VendorUseCase
}

func NewVendorHandler(vendorUseCase *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{
		vendorUseCase: vendorUseCase,
	}
}

func (h *VendorHandler) listParams(c echo.Context) usecase.VendorListParams {
	pagination := utils.GetPaginationParams(c)
	return usecase.VendorListParams{
		Search:   c.QueryParam("search"),
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
		Region:   c.QueryParam("region"),
		Plan:     c.QueryParam("plan"),
		Sort:     usecase.SortKey(c.QueryParam("sort")),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
}

func (h *VendorHandler) List(c echo.Context) error {
	params := h.listParams(c)
	result := h.vendorUseCase.List(params)
	return response.Paginated(c, result.Items, result.TotalCount, params.Page, params.PageSize)
}

func (h *VendorHandler) Refresh(c echo.Context) error {
	if err := h.vendorUseCase.Refresh(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "refreshed"})
}

func (h *VendorHandler) Suspend(c echo.Context) error {
	id := c.Param("id")
	if err := h.vendorUseCase.Suspend(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id, "status": string(entity.StatusSuspended)})
}

func (h *VendorHandler) Reactivate(c echo.Context) error {
	id := c.Param("id")
	if err := h.vendorUseCase.Reactivate(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id, "status": string(entity.StatusActive)})
}

func (h *VendorHandler) Bulk(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	to, err := usecase.VendorActionTarget(req.Action)
	if err != nil {
		return response.Error(c, err)
	}

	ids := req.IDs
	for _, id := range ids {
		h.vendorUseCase.Selection.Add(id)
	}
	if len(ids) == 0 {
		ids = h.vendorUseCase.Selection.IDs()
	}
	if len(ids) == 0 {
		return response.Error(c, errors.BadRequest("No vendors selected", nil))
	}

	result := h.vendorUseCase.BulkSetStatus(c.Request().Context(), ids, to)
	return response.Success(c, bulkResponseFrom(result))
}

func (h *VendorHandler) Export(c echo.Context) error {
	params := h.listParams(c)
	delimiter, contentType := exportFormat(c.QueryParam("format"))
	text := h.vendorUseCase.Export(params, delimiter)
	return c.Blob(http.StatusOK, contentType, []byte(text))
}
