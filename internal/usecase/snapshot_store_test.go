package usecase

import (
	"testing"

	"marketdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreServesFallbackBeforeFirstLoad(t *testing.T) {
	store := NewSnapshotStore(FallbackListings())

	assert.False(t, store.Loaded())
	items := store.Get()
	require.NotEmpty(t, items, "fallback must never be empty")
	assert.Len(t, items, 12)
}

func TestReplaceIsWholeSnapshotSwap(t *testing.T) {
	store := NewSnapshotStore(FallbackListings())

	store.Replace([]entity.Listing{{ID: "X1", Name: "Only One", Status: entity.StatusActive}})

	assert.True(t, store.Loaded())
	items := store.Get()
	require.Len(t, items, 1)
	assert.Equal(t, "X1", items[0].ID)

	_, ok := store.Find("L1")
	assert.False(t, ok, "old snapshot entries must be gone")
}

func TestUpdateIsSynchronouslyVisible(t *testing.T) {
	store := NewSnapshotStore(FallbackListings())

	ok := store.Update("L1", func(l *entity.Listing) {
		l.Status = entity.StatusInactive
	})
	require.True(t, ok)

	got, ok := store.Find("L1")
	require.True(t, ok)
	assert.Equal(t, entity.StatusInactive, got.Status)
}

func TestUpdateUnknownID(t *testing.T) {
	store := NewSnapshotStore(FallbackListings())
	assert.False(t, store.Update("nope", func(l *entity.Listing) { l.Name = "x" }))
}

func TestRemoveDeletesRecordEntirely(t *testing.T) {
	store := NewSnapshotStore(FallbackListings())
	before := store.Len()

	require.True(t, store.Remove("L4"))

	assert.Equal(t, before-1, store.Len())
	_, ok := store.Find("L4")
	assert.False(t, ok)

	// Remaining ids still resolve after reindexing
	got, ok := store.Find("L12")
	require.True(t, ok)
	assert.Equal(t, "L12", got.ID)
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	store := NewSnapshotStore(FallbackListings())

	var calls int
	var lastLen int
	unsubscribe := store.Subscribe(func(items []entity.Listing) {
		calls++
		lastLen = len(items)
	})

	store.Update("L1", func(l *entity.Listing) { l.Bookings++ })
	assert.Equal(t, 1, calls)
	assert.Equal(t, 12, lastLen)

	store.Replace([]entity.Listing{{ID: "X1"}})
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, lastLen)

	unsubscribe()
	store.Update("X1", func(l *entity.Listing) { l.Bookings++ })
	assert.Equal(t, 2, calls, "no notifications after unsubscribe")
}

func TestGetReturnsCopy(t *testing.T) {
	store := NewSnapshotStore(FallbackListings())

	items := store.Get()
	items[0].Name = "mutated"

	fresh := store.Get()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}
