package repository

import (
	"context"

	"marketdesk/internal/domain/entity"
)

// ListingRemote is the upstream marketplace API boundary for listings.
// Implementations are thin transport adapters; they hold no state.
type ListingRemote interface {
	List(ctx context.Context, filter map[string]string) ([]entity.Listing, error)
	UpdateStatus(ctx context.Context, id string, status entity.Status) error
	Delete(ctx context.Context, id string) error
}
