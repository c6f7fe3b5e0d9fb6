package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketdesk/internal/domain/entity"
	"marketdesk/internal/usecase"
	"marketdesk/pkg/response"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubListingRemote struct {
	updateErr error
}

func (s *stubListingRemote) List(ctx context.Context, filter map[string]string) ([]entity.Listing, error) {
	return usecase.FallbackListings(), nil
}

func (s *stubListingRemote) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	return s.updateErr
}

func (s *stubListingRemote) Delete(ctx context.Context, id string) error {
	return s.updateErr
}

func newTestHandler() *ListingHandler {
	store := usecase.NewSnapshotStore(usecase.FallbackListings())
	return NewListingHandler(usecase.NewListingUseCase(store, &stubListingRemote{}))
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for name, value := range params {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}

	require.NoError(t, h(c))

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestListReturnsPaginatedEnvelope(t *testing.T) {
	h := newTestHandler()

	rec, envelope := doJSON(t, h.List, http.MethodGet, "/v1/listings?status=active&sort=bookings_desc&limit=5", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, float64(7), data["total"])
	assert.Equal(t, float64(1), data["page"])
	assert.Equal(t, float64(2), data["totalPages"])

	items := data["items"].([]interface{})
	require.Len(t, items, 5)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "L6", first["id"])
}

func TestFlagEndpoint(t *testing.T) {
	h := newTestHandler()

	rec, envelope := doJSON(t, h.Flag, http.MethodPost, "/v1/listings/L4/flag",
		`{"reason":"stock photos"}`, map[string]string{"id": "L4"})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "flagged", data["status"])
}

func TestFlagRequiresReason(t *testing.T) {
	h := newTestHandler()

	rec, envelope := doJSON(t, h.Flag, http.MethodPost, "/v1/listings/L4/flag",
		`{}`, map[string]string{"id": "L4"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestActivateIllegalTransitionIsConflict(t *testing.T) {
	h := newTestHandler()

	// L12 is a draft; drafts cannot go straight to active.
	rec, envelope := doJSON(t, h.Activate, http.MethodPost, "/v1/listings/L12/activate",
		"", map[string]string{"id": "L12"})

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_TRANSITION", envelope.Error.Code)
}

func TestActivateUnknownListing(t *testing.T) {
	h := newTestHandler()

	rec, envelope := doJSON(t, h.Activate, http.MethodPost, "/v1/listings/L99/activate",
		"", map[string]string{"id": "L99"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestBulkEndpoint(t *testing.T) {
	h := newTestHandler()

	rec, envelope := doJSON(t, h.Bulk, http.MethodPost, "/v1/listings/bulk",
		`{"ids":["L1","L2"],"action":"deactivate"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(0), data["failed"])
}

func TestBulkFlagRequiresReason(t *testing.T) {
	h := newTestHandler()

	rec, envelope := doJSON(t, h.Bulk, http.MethodPost, "/v1/listings/bulk",
		`{"ids":["L1","L2"],"action":"flag"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestBulkFlagAppliesReason(t *testing.T) {
	h := newTestHandler()

	rec, envelope := doJSON(t, h.Bulk, http.MethodPost, "/v1/listings/bulk",
		`{"ids":["L1","L2"],"action":"flag","reason":"stock photos"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, float64(0), data["failed"])

	// Every flagged listing now carries the shared reason.
	listRec, listEnvelope := doJSON(t, h.List, http.MethodGet, "/v1/listings?status=flagged", "", nil)
	assert.Equal(t, http.StatusOK, listRec.Code)
	items := listEnvelope.Data.(map[string]interface{})["items"].([]interface{})
	for _, raw := range items {
		item := raw.(map[string]interface{})
		if item["id"] == "L1" || item["id"] == "L2" {
			assert.Equal(t, "stock photos", item["flag_reason"], "id %v", item["id"])
			assert.NotNil(t, item["flagged_at"], "id %v", item["id"])
		}
	}
}

func TestBulkRejectsUnknownAction(t *testing.T) {
	h := newTestHandler()

	rec, envelope := doJSON(t, h.Bulk, http.MethodPost, "/v1/listings/bulk",
		`{"ids":["L1"],"action":"vaporize"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestBulkRejectsEmptySelection(t *testing.T) {
	h := newTestHandler()

	rec, envelope := doJSON(t, h.Bulk, http.MethodPost, "/v1/listings/bulk",
		`{"ids":[],"action":"deactivate"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestExportEndpointCSV(t *testing.T) {
	h := newTestHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/listings/export?status=flagged&format=csv", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Export(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get(echo.HeaderContentType))

	lines := strings.Split(rec.Body.String(), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id,name,vendor"))
}

func TestExportEndpointTSV(t *testing.T) {
	h := newTestHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/listings/export?format=tsv", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Export(e.NewContext(req, rec)))

	assert.Equal(t, "text/tab-separated-values", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, strings.SplitN(rec.Body.String(), "\n", 2)[0], "id\tname")
}
