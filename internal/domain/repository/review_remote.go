package repository

import (
	"context"

	"marketdesk/internal/domain/entity"
)

type ReviewRemote interface {
	List(ctx context.Context, filter map[string]string) ([]entity.Review, error)
	UpdateStatus(ctx context.Context, id string, status entity.Status) error
	Delete(ctx context.Context, id string) error
}
