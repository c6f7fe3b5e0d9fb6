package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"marketdesk/internal/domain/entity"
	apperrors "marketdesk/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkIndependentFailure(t *testing.T) {
	store := NewSnapshotStore(FallbackListings())
	mutator := NewMutator(store)
	selection := NewSelection()

	ids := []string{"L1", "L2", "L3", "L4", "L5"}
	for _, id := range ids {
		selection.Add(id)
	}

	var mu sync.Mutex
	remoteCalls := make(map[string]int)
	calls := func(id string) RemoteCall {
		return func(ctx context.Context) error {
			mu.Lock()
			remoteCalls[id]++
			mu.Unlock()
			if id == "L3" {
				return errors.New("service unavailable")
			}
			return nil
		}
	}

	result := mutator.ApplyToSet(context.Background(), ids, entity.StatusInactive, nil, calls, selection)

	// Every id's local state reflects the optimistic transition,
	// including the one whose remote call failed.
	for _, id := range ids {
		got, ok := store.Find(id)
		require.True(t, ok)
		assert.Equal(t, entity.StatusInactive, got.Status, "id %s", id)
	}

	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Outcomes, 5)
	assert.Equal(t, "L3", result.Outcomes[2].ID)
	assert.True(t, apperrors.Is(result.Outcomes[2].Err, "REMOTE_ERROR"))
	assert.NoError(t, result.Outcomes[0].Err)

	// Each id got exactly one remote call; one failure blocked nobody.
	for _, id := range ids {
		assert.Equal(t, 1, remoteCalls[id], "id %s", id)
	}

	// Selection cleared unconditionally, even on partial failure.
	assert.Equal(t, 0, selection.Len())
}

func TestBulkSkipsIllegalIDsWithoutBlockingOthers(t *testing.T) {
	store := NewSnapshotStore(FallbackListings())
	mutator := NewMutator(store)

	var mu sync.Mutex
	called := make(map[string]bool)
	calls := func(id string) RemoteCall {
		return func(ctx context.Context) error {
			mu.Lock()
			called[id] = true
			mu.Unlock()
			return nil
		}
	}

	// L12 is a draft: deactivate is illegal for it, legal for L1.
	result := mutator.ApplyToSet(context.Background(), []string{"L12", "L1"}, entity.StatusInactive, nil, calls, nil)

	assert.Equal(t, 1, result.Failed)
	assert.True(t, apperrors.Is(result.Outcomes[0].Err, "INVALID_TRANSITION"))
	assert.NoError(t, result.Outcomes[1].Err)

	assert.False(t, called["L12"], "illegal ids never reach the network")
	assert.True(t, called["L1"])

	draft, _ := store.Find("L12")
	assert.Equal(t, entity.StatusDraft, draft.Status)
	legal, _ := store.Find("L1")
	assert.Equal(t, entity.StatusInactive, legal.Status)
}

func TestBulkOutcomesKeepInputOrder(t *testing.T) {
	store := NewSnapshotStore(FallbackListings())
	mutator := NewMutator(store)

	ids := []string{"L5", "L1", "L2"}
	result := mutator.ApplyToSet(context.Background(), ids, entity.StatusInactive, nil, func(id string) RemoteCall {
		return func(ctx context.Context) error { return nil }
	}, nil)

	require.Len(t, result.Outcomes, 3)
	for i, id := range ids {
		assert.Equal(t, id, result.Outcomes[i].ID)
	}
}

func TestSelectionToggleAndIDs(t *testing.T) {
	selection := NewSelection()
	selection.Add("b")
	selection.Add("a")
	selection.Toggle("c")
	selection.Toggle("b")

	assert.True(t, selection.Has("a"))
	assert.False(t, selection.Has("b"))
	assert.Equal(t, []string{"a", "c"}, selection.IDs())

	selection.Clear()
	assert.Equal(t, 0, selection.Len())
}
