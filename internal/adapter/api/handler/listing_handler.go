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

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

func (h *ListingHandler) listParams(c echo.Context) usecase.ListingListParams {
	pagination := utils.GetPaginationParams(c)
	return usecase.ListingListParams{
		Search:   c.QueryParam("search"),
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
		VendorID: c.QueryParam("vendor"),
		Region:   c.QueryParam("region"),
		Sort:     usecase.SortKey(c.QueryParam("sort")),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
}

func (h *ListingHandler) List(c echo.Context) error {
	params := h.listParams(c)
	result := h.listingUseCase.List(params)
	return response.Paginated(c, result.Items, result.TotalCount, params.Page, params.PageSize)
}

func (h *ListingHandler) Refresh(c echo.Context) error {
	if err := h.listingUseCase.Refresh(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "refreshed"})
}

type flagListingRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *ListingHandler) Flag(c echo.Context) error {
	id := c.Param("id")

	var req flagListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if req.Reason == "" {
		return response.Error(c, errors.BadRequest("Flag reason is required", nil))
	}

	if err := h.listingUseCase.Flag(c.Request().Context(), id, req.Reason); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id, "status": string(entity.StatusFlagged)})
}

type unflagListingRequest struct {
	Resolution string `json:"resolution"` // active or inactive
}

func (h *ListingHandler) Unflag(c echo.Context) error {
	id := c.Param("id")

	var req unflagListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	to := entity.Status(req.Resolution)
	if req.Resolution == "" {
		to = entity.StatusActive
	}

	if err := h.listingUseCase.Unflag(c.Request().Context(), id, to); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id, "status": string(to)})
}

func (h *ListingHandler) Activate(c echo.Context) error {
	id := c.Param("id")
	if err := h.listingUseCase.Activate(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id, "status": string(entity.StatusActive)})
}

func (h *ListingHandler) Deactivate(c echo.Context) error {
	id := c.Param("id")
	if err := h.listingUseCase.Deactivate(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id, "status": string(entity.StatusInactive)})
}

func (h *ListingHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.listingUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id, "deleted": "true"})
}

type bulkRequest struct {
	IDs    []string `json:"ids"`
	Action string   `json:"action"`
	Reason string   `json:"reason,omitempty"` // required when Action is flag
}

type bulkResponse struct {
	Total  int      `json:"total"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors,omitempty"`
}

func bulkResponseFrom(result usecase.BulkResult) bulkResponse {
	resp := bulkResponse{Total: len(result.Outcomes), Failed: result.Failed}
	for _, outcome := range result.Outcomes {
		if outcome.Err != nil {
			resp.Errors = append(resp.Errors, outcome.ID+": "+outcome.Err.Error())
		}
	}
	return resp
}

func (h *ListingHandler) Bulk(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	to, err := usecase.ListingActionTarget(req.Action)
	if err != nil {
		return response.Error(c, err)
	}
	if to == entity.StatusFlagged && req.Reason == "" {
		return response.Error(c, errors.BadRequest("Flag reason is required", nil))
	}

	ids := req.IDs
	for _, id := range ids {
		h.listingUseCase.Selection.Add(id)
	}
	if len(ids) == 0 {
		ids = h.listingUseCase.Selection.IDs()
	}
	if len(ids) == 0 {
		return response.Error(c, errors.BadRequest("No listings selected", nil))
	}

	var result usecase.BulkResult
	if to == entity.StatusFlagged {
		result = h.listingUseCase.BulkFlag(c.Request().Context(), ids, req.Reason)
	} else {
		result = h.listingUseCase.BulkSetStatus(c.Request().Context(), ids, to)
	}
	return response.Success(c, bulkResponseFrom(result))
}

func (h *ListingHandler) Export(c echo.Context) error {
	params := h.listParams(c)
	delimiter, contentType := exportFormat(c.QueryParam("format"))
	text := h.listingUseCase.Export(params, delimiter)
	return c.Blob(http.StatusOK, contentType, []byte(text))
}

func exportFormat(format string) (delimiter, contentType string) {
	if format == "tsv" {
		return "\t", "text/tab-separated-values"
	}
	return ",", "text/csv"
}
