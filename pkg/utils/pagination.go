package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageWindow is the 1-indexed page requested by a list or export call.
type PageWindow struct {
	Page     int
	PageSize int
}

// GetPaginationParams reads page/limit query params. Missing or invalid
// values fall back to page 1 and the default size; the size is capped
// so one request cannot ask for the whole collection.
func GetPaginationParams(c echo.Context) PageWindow {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("limit"))

	if page < 1 {
		page = 1
	}
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	return PageWindow{Page: page, PageSize: size}
}
