package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, query string) PageWindow {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return GetPaginationParams(e.NewContext(req, httptest.NewRecorder()))
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  PageWindow
	}{
		{"defaults", "", PageWindow{Page: 1, PageSize: 20}},
		{"explicit values", "page=3&limit=50", PageWindow{Page: 3, PageSize: 50}},
		{"zero page falls back", "page=0&limit=5", PageWindow{Page: 1, PageSize: 5}},
		{"negative page falls back", "page=-2", PageWindow{Page: 1, PageSize: 20}},
		{"limit above cap falls back", "limit=500", PageWindow{Page: 1, PageSize: 20}},
		{"non-numeric values fall back", "page=abc&limit=xyz", PageWindow{Page: 1, PageSize: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginationFor(t, tt.query))
		})
	}
}
