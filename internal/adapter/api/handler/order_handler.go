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

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

func (h *OrderHandler) listParams(c echo.Context) usecase.OrderListParams {
	pagination := utils.GetPaginationParams(c)
	return usecase.OrderListParams{
		Search:        c.QueryParam("search"),
		Status:        c.QueryParam("status"),
		PaymentStatus: c.QueryParam("payment"),
		VendorID:      c.QueryParam("vendor"),
		CustomerID:    c.QueryParam("customer"),
		Sort:          usecase.SortKey(c.QueryParam("sort")),
		Page:          pagination.Page,
		PageSize:      pagination.PageSize,
	}
}

func (h *OrderHandler) List(c echo.Context) error {
	params := h.listParams(c)
	result := h.orderUseCase.List(params)
	return response.Paginated(c, result.Items, result.TotalCount, params.Page, params.PageSize)
}

func (h *OrderHandler) Refresh(c echo.Context) error {
	if err := h.orderUseCase.Refresh(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "refreshed"})
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	id := c.Param("id")
	if err := h.orderUseCase.Cancel(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id, "status": string(entity.StatusCancelled)})
}

func (h *OrderHandler) Bulk(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if _, err := usecase.OrderActionTarget(req.Action); err != nil {
		return response.Error(c, err)
	}

	ids := req.IDs
	for _, id := range ids {
		h.orderUseCase.Selection.Add(id)
	}
	if len(ids) == 0 {
		ids = h.orderUseCase.Selection.IDs()
	}
	if len(ids) == 0 {
		return response.Error(c, errors.BadRequest("No orders selected", nil))
	}

	result := h.orderUseCase.BulkCancel(c.Request().Context(), ids)
	return response.Success(c, bulkResponseFrom(result))
}

func (h *OrderHandler) Export(c echo.Context) error {
	params := h.listParams(c)
	delimiter, contentType := exportFormat(c.QueryParam("format"))
	text := h.orderUseCase.Export(params, delimiter)
	return c.Blob(http.StatusOK, contentType, []byte(text))
}
