package repository

import (
	"context"
	"net/http"
	"time"

	"marketdesk/internal/domain/entity"
	"marketdesk/internal/domain/repository"
)

type restVendorRepository struct {
	client *restClient
}

func NewRestVendorRepository(baseURL string, timeout time.Duration) repository.VendorRemote {
	return &restVendorRepository{
		client: newRestClient(baseURL, timeout),
	}
}

type vendorListResponse struct {
	Items []entity.Vendor `json:"items"`
}

func (r *restVendorRepository) List(ctx context.Context, filter map[string]string) ([]entity.Vendor, error) {
	var payload vendorListResponse
	if err := r.client.getJSON(ctx, "/vendors", filter, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

func (r *restVendorRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	return r.client.send(ctx, http.MethodPatch, "/vendors/"+id+"/status", statusPayload{Status: string(status)})
}
