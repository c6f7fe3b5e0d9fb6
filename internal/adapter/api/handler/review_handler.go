package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"marketdesk/internal/usecase"
	"marketdesk/pkg/errors"
	"marketdesk/pkg/response"
	"marketdesk/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

func parseRating(c echo.Context) (int, error) {
	ratingStr := c.QueryParam("rating")
	if ratingStr == "" {
		return 0, nil
	}
	rating, err := strconv.Atoi(ratingStr)
	if err != nil || rating < 1 || rating > 5 {
		return 0, errors.BadRequest("Invalid rating value", err)
	}
	return rating, nil
}

func (h *ReviewHandler) listParams(c echo.Context) (usecase.ReviewListParams, error) {
	rating, err := parseRating(c)
	if err != nil {
		return usecase.ReviewListParams{}, err
	}

	pagination := utils.GetPaginationParams(c)
	return usecase.ReviewListParams{
		Search:    c.QueryParam("search"),
		Status:    c.QueryParam("status"),
		VendorID:  c.QueryParam("vendor"),
		ListingID: c.QueryParam("listing"),
		Rating:    rating,
		Sort:      usecase.SortKey(c.QueryParam("sort")),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}, nil
}

func (h *ReviewHandler) List(c echo.Context) error {
	params, err := h.listParams(c)
	if err != nil {
		return response.Error(c, err)
	}
	result := h.reviewUseCase.List(params)
	return response.Paginated(c, result.Items, result.TotalCount, params.Page, params.PageSize)
}

func (h *ReviewHandler) Refresh(c echo.Context) error {
	if err := h.reviewUseCase.Refresh(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "refreshed"})
}

func (h *ReviewHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	action := c.Param("action")

	to, err := usecase.ReviewActionTarget(action)
	if err != nil {
		return response.Error(c, err)
	}

	var opErr error
	switch action {
	case "hide":
		opErr = h.reviewUseCase.Hide(c.Request().Context(), id)
	case "publish":
		opErr = h.reviewUseCase.Publish(c.Request().Context(), id)
	case "flag":
		opErr = h.reviewUseCase.FlagReview(c.Request().Context(), id)
	case "remove":
		opErr = h.reviewUseCase.RemoveReview(c.Request().Context(), id)
	}
	if opErr != nil {
		return response.Error(c, opErr)
	}
	return response.Success(c, map[string]string{"id": id, "status": string(to)})
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.reviewUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id, "deleted": "true"})
}

func (h *ReviewHandler) Bulk(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	to, err := usecase.ReviewActionTarget(req.Action)
	if err != nil {
		return response.Error(c, err)
	}

	ids := req.IDs
	for _, id := range ids {
		h.reviewUseCase.Selection.Add(id)
	}
	if len(ids) == 0 {
		ids = h.reviewUseCase.Selection.IDs()
	}
	if len(ids) == 0 {
		return response.Error(c, errors.BadRequest("No reviews selected", nil))
	}

	result := h.reviewUseCase.BulkSetStatus(c.Request().Context(), ids, to)
	return response.Success(c, bulkResponseFrom(result))
}

func (h *ReviewHandler) Export(c echo.Context) error {
	params, err := h.listParams(c)
	if err != nil {
		return response.Error(c, err)
	}
	delimiter, contentType := exportFormat(c.QueryParam("format"))
	text := h.reviewUseCase.Export(params, delimiter)
	return c.Blob(http.StatusOK, contentType, []byte(text))
}
