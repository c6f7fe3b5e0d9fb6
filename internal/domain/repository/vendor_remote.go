package repository

import (
	"context"

	"marketdesk/internal/domain/entity"
)

type VendorRemote interface {
	List(ctx context.Context, filter map[string]string) ([]entity.Vendor, error)
	UpdateStatus(ctx context.Context, id string, status entity.Status) error
}
