package usecase

import (
	"context"
	"testing"

	"marketdesk/internal/domain/entity"
	apperrors "marketdesk/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRemote struct {
	statuses []entity.Status
	deleted  []string
}

func (f *fakeReviewRemote) List(ctx context.Context, filter map[string]string) ([]entity.Review, error) {
	return FallbackReviews(), nil
}

func (f *fakeReviewRemote) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeReviewRemote) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestModerationHideAndRepublish(t *testing.T) {
	store := NewSnapshotStore(FallbackReviews())
	uc := NewReviewUseCase(store, &fakeReviewRemote{})

	require.NoError(t, uc.Hide(context.Background(), "R1"))
	hidden, _ := store.Find("R1")
	assert.Equal(t, entity.StatusHidden, hidden.Status)

	require.NoError(t, uc.Publish(context.Background(), "R1"))
	published, _ := store.Find("R1")
	assert.Equal(t, entity.StatusPublished, published.Status)
}

func TestRemovedReviewIsTerminal(t *testing.T) {
	store := NewSnapshotStore(FallbackReviews())
	uc := NewReviewUseCase(store, &fakeReviewRemote{})

	// R3 is flagged; removal resolves the flag for good.
	require.NoError(t, uc.RemoveReview(context.Background(), "R3"))

	removed, ok := store.Find("R3")
	require.True(t, ok, "removal keeps the record in the snapshot")
	assert.Equal(t, entity.StatusRemoved, removed.Status)

	assert.True(t, apperrors.Is(uc.Publish(context.Background(), "R3"), "INVALID_TRANSITION"))
	assert.True(t, apperrors.Is(uc.Hide(context.Background(), "R3"), "INVALID_TRANSITION"))
}

func TestRemoveOnlyFromFlagged(t *testing.T) {
	store := NewSnapshotStore(FallbackReviews())
	uc := NewReviewUseCase(store, &fakeReviewRemote{})

	// Published reviews must be flagged before they can be removed.
	err := uc.RemoveReview(context.Background(), "R1")
	assert.True(t, apperrors.Is(err, "INVALID_TRANSITION"))
}

func TestDeleteErasesReview(t *testing.T) {
	store := NewSnapshotStore(FallbackReviews())
	remote := &fakeReviewRemote{}
	uc := NewReviewUseCase(store, remote)

	require.NoError(t, uc.Delete(context.Background(), "R5"))
	_, ok := store.Find("R5")
	assert.False(t, ok)
	assert.Equal(t, []string{"R5"}, remote.deleted)
}

func TestReviewRatingFilter(t *testing.T) {
	store := NewSnapshotStore(FallbackReviews())
	uc := NewReviewUseCase(store, &fakeReviewRemote{})

	result := uc.List(ReviewListParams{Rating: 5, Page: 1, PageSize: 10})
	assert.Equal(t, 2, result.TotalCount)
}

func TestReviewActionTarget(t *testing.T) {
	for action, want := range map[string]entity.Status{
		"hide":    entity.StatusHidden,
		"publish": entity.StatusPublished,
		"flag":    entity.StatusFlagged,
		"remove":  entity.StatusRemoved,
	} {
		to, err := ReviewActionTarget(action)
		require.NoError(t, err)
		assert.Equal(t, want, to)
	}

	_, err := ReviewActionTarget("approve")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}
