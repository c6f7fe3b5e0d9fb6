package usecase

import (
	"testing"

	"marketdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeByBookings(page, size int) Query[entity.Listing] {
	return Query[entity.Listing]{
		Filters: []Filter[entity.Listing]{
			func(l entity.Listing) bool { return l.Status == entity.StatusActive },
		},
		Less:     listingLess(SortBookings),
		Page:     page,
		PageSize: size,
	}
}

func TestQueryStatusFilterSortAndPage(t *testing.T) {
	// 12 listings: active x7, inactive x2, flagged x2, draft x1
	snapshot := FallbackListings()

	result := RunQuery(snapshot, activeByBookings(1, 5))

	assert.Equal(t, 7, result.TotalCount)
	require.Len(t, result.Items, 5)

	ids := make([]string, 0, 5)
	for _, l := range result.Items {
		ids = append(ids, l.ID)
	}
	// Top five active listings by bookings
	assert.Equal(t, []string{"L6", "L3", "L1", "L5", "L2"}, ids)
}

func TestQueryDeterminism(t *testing.T) {
	snapshot := FallbackListings()

	first := RunQuery(snapshot, activeByBookings(1, 5))
	second := RunQuery(snapshot, activeByBookings(1, 5))

	assert.Equal(t, first, second)
}

func TestQueryPaginationCompleteness(t *testing.T) {
	snapshot := FallbackListings()
	size := 3

	full := RunQuery(snapshot, Query[entity.Listing]{Less: listingLess(SortBookings), Page: 1, PageSize: len(snapshot)})
	pages := (full.TotalCount + size - 1) / size

	seen := make(map[string]bool)
	var concatenated []string
	for page := 1; page <= pages; page++ {
		result := RunQuery(snapshot, Query[entity.Listing]{Less: listingLess(SortBookings), Page: page, PageSize: size})
		for _, l := range result.Items {
			assert.False(t, seen[l.ID], "duplicate %s", l.ID)
			seen[l.ID] = true
			concatenated = append(concatenated, l.ID)
		}
	}

	var expected []string
	for _, l := range full.Items {
		expected = append(expected, l.ID)
	}
	assert.Equal(t, expected, concatenated)
}

func TestQueryPageBeyondRange(t *testing.T) {
	snapshot := FallbackListings()

	result := RunQuery(snapshot, activeByBookings(99, 5))
	assert.Empty(t, result.Items)
	assert.Equal(t, 7, result.TotalCount)
}

func TestQueryEmptyFilteredSet(t *testing.T) {
	snapshot := FallbackListings()

	result := RunQuery(snapshot, Query[entity.Listing]{
		Filters: []Filter[entity.Listing]{
			func(l entity.Listing) bool { return l.Status == entity.StatusRejected },
		},
		Page: 1,
	})
	assert.Equal(t, 0, result.TotalCount)
	assert.Empty(t, result.Items)
}

func TestQueryDoesNotMutateSnapshot(t *testing.T) {
	snapshot := FallbackListings()
	originalOrder := make([]string, len(snapshot))
	for i, l := range snapshot {
		originalOrder[i] = l.ID
	}

	RunQuery(snapshot, Query[entity.Listing]{Less: listingLess(SortAlphabetical), Page: 1})

	for i, l := range snapshot {
		assert.Equal(t, originalOrder[i], l.ID, "input snapshot reordered")
	}
}

func TestQueryStableSortKeepsSnapshotOrderOnTies(t *testing.T) {
	snapshot := []entity.Listing{
		{ID: "A", Bookings: 10},
		{ID: "B", Bookings: 10},
		{ID: "C", Bookings: 10},
		{ID: "D", Bookings: 20},
	}

	result := RunQuery(snapshot, Query[entity.Listing]{Less: listingLess(SortBookings), Page: 1})
	require.Len(t, result.Items, 4)
	assert.Equal(t, "D", result.Items[0].ID)
	assert.Equal(t, "A", result.Items[1].ID)
	assert.Equal(t, "B", result.Items[2].ID)
	assert.Equal(t, "C", result.Items[3].ID)
}

func TestSearchFilterIsCaseInsensitive(t *testing.T) {
	params := ListingListParams{Search: "HARBOR"}
	result := RunQuery(FallbackListings(), Query[entity.Listing]{Filters: params.filters(), Page: 1})

	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "L1", result.Items[0].ID)
}

func TestSearchMatchesVendorNameAndID(t *testing.T) {
	byVendorName := ListingListParams{Search: "golden gate"}
	result := RunQuery(FallbackListings(), Query[entity.Listing]{Filters: byVendorName.filters(), Page: 1})
	assert.Equal(t, 2, result.TotalCount)

	byID := ListingListParams{Search: "l12"}
	result = RunQuery(FallbackListings(), Query[entity.Listing]{Filters: byID.filters(), Page: 1})
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "L12", result.Items[0].ID)
}

func TestRegionFilterIsExactMembership(t *testing.T) {
	params := ListingListParams{Region: "sierra"}
	result := RunQuery(FallbackListings(), Query[entity.Listing]{Filters: params.filters(), Page: 1})
	// L2, L5, L11 list sierra; "sierra-east" style prefixes must not match
	assert.Equal(t, 3, result.TotalCount)

	none := ListingListParams{Region: "sier"}
	result = RunQuery(FallbackListings(), Query[entity.Listing]{Filters: none.filters(), Page: 1})
	assert.Equal(t, 0, result.TotalCount)
}

func TestFiltersAreANDed(t *testing.T) {
	params := ListingListParams{Status: "active", Category: "venues", Region: "bay-area"}
	result := RunQuery(FallbackListings(), Query[entity.Listing]{Filters: params.filters(), Page: 1})

	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "L1", result.Items[0].ID)
}
