package repository

import (
	"context"

	"marketdesk/internal/domain/entity"
)

type OrderRemote interface {
	List(ctx context.Context, filter map[string]string) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.Status) error
}
