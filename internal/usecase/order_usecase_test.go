package usecase

import (
	"context"
	"testing"

	"marketdesk/internal/domain/entity"
	apperrors "marketdesk/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRemote struct {
	statuses []entity.Status
}

func (f *fakeOrderRemote) List(ctx context.Context, filter map[string]string) ([]entity.Order, error) {
	return FallbackOrders(), nil
}

func (f *fakeOrderRemote) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	f.statuses = append(f.statuses, status)
	return nil
}

func TestCancelUpcomingAndInProgress(t *testing.T) {
	store := NewSnapshotStore(FallbackOrders())
	uc := NewOrderUseCase(store, &fakeOrderRemote{})

	for _, id := range []string{"O1", "O3"} {
		require.NoError(t, uc.Cancel(context.Background(), id))
		got, _ := store.Find(id)
		assert.Equal(t, entity.StatusCancelled, got.Status)
	}
}

func TestCancelCompletedOrderRejected(t *testing.T) {
	store := NewSnapshotStore(FallbackOrders())
	remote := &fakeOrderRemote{}
	uc := NewOrderUseCase(store, remote)

	err := uc.Cancel(context.Background(), "O4")
	assert.True(t, apperrors.Is(err, "INVALID_TRANSITION"))
	assert.Empty(t, remote.statuses)

	got, _ := store.Find("O4")
	assert.Equal(t, entity.StatusCompleted, got.Status)
}

func TestCancelDisputedOrderRejected(t *testing.T) {
	store := NewSnapshotStore(FallbackOrders())
	uc := NewOrderUseCase(store, &fakeOrderRemote{})

	// Disputes resolve to completed; they cannot be cancelled away.
	err := uc.Cancel(context.Background(), "O5")
	assert.True(t, apperrors.Is(err, "INVALID_TRANSITION"))
}

func TestBulkCancelMixedLegality(t *testing.T) {
	store := NewSnapshotStore(FallbackOrders())
	uc := NewOrderUseCase(store, &fakeOrderRemote{})

	result := uc.BulkCancel(context.Background(), []string{"O1", "O4", "O6"})

	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, 2, result.Failed)
	assert.NoError(t, result.Outcomes[0].Err)
	assert.True(t, apperrors.Is(result.Outcomes[1].Err, "INVALID_TRANSITION"))
	assert.True(t, apperrors.Is(result.Outcomes[2].Err, "INVALID_TRANSITION"))
}

func TestOrderActionTarget(t *testing.T) {
	to, err := OrderActionTarget("cancel")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, to)

	_, err = OrderActionTarget("complete")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestOrderPaymentFilter(t *testing.T) {
	store := NewSnapshotStore(FallbackOrders())
	uc := NewOrderUseCase(store, &fakeOrderRemote{})

	result := uc.List(OrderListParams{PaymentStatus: "pending", Page: 1, PageSize: 10})
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "O2", result.Items[0].ID)
}
