package usecase

import (
	"sort"
	"strings"
)

const DefaultPageSize = 20

// Filter is a composable predicate over one entity. Queries AND all of
// their filters together.
type Filter[T any] func(T) bool

// SortKey names one of the console's sort orders. Per-kind comparators
// map keys to less functions; unknown keys keep snapshot order.
type SortKey string

const (
	SortRecent       SortKey = "recent"
	SortOldest       SortKey = "oldest"
	SortBookings     SortKey = "bookings_desc"
	SortRatingDesc   SortKey = "rating_desc"
	SortRatingAsc    SortKey = "rating_asc"
	SortAlphabetical SortKey = "alphabetical"
)

// Query describes one derivation of a visible page from a snapshot.
type Query[T any] struct {
	Filters  []Filter[T]
	Less     func(a, b T) bool // nil keeps snapshot order
	Page     int               // 1-indexed; values below 1 are treated as 1
	PageSize int               // defaults to DefaultPageSize
}

// QueryResult is the visible page plus the filtered-but-unpaginated
// length, used by the caller for ceiling-division page counts.
type QueryResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
}

// RunQuery filters, sorts, and pages a snapshot. It is pure: the input
// slice is never reordered or mutated, and identical arguments over an
// unchanged snapshot yield identical results. Sorting is stable, so
// ties keep their snapshot order. Pages past the end yield an empty
// item slice, not an error.
func RunQuery[T any](snapshot []T, q Query[T]) QueryResult[T] {
	filtered := make([]T, 0, len(snapshot))
	for _, item := range snapshot {
		if matchesAll(item, q.Filters) {
			filtered = append(filtered, item)
		}
	}

	if q.Less != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return q.Less(filtered[i], filtered[j])
		})
	}

	total := len(filtered)

	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	start := (page - 1) * size
	if start >= total {
		return QueryResult[T]{Items: []T{}, TotalCount: total}
	}
	end := start + size
	if end > total {
		end = total
	}

	return QueryResult[T]{Items: filtered[start:end], TotalCount: total}
}

func matchesAll[T any](item T, filters []Filter[T]) bool {
	for _, f := range filters {
		if f != nil && !f(item) {
			return false
		}
	}
	return true
}

// containsFold reports whether any of the haystack fields contains the
// needle, case-insensitively. Used by the per-kind search filters.
func containsFold(needle string, haystack ...string) bool {
	needle = strings.ToLower(needle)
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
