package repository

import (
	"context"
	"net/http"
	"time"

	"marketdesk/internal/domain/entity"
	"marketdesk/internal/domain/repository"
)

type restListingRepository struct {
	client *restClient
}

func NewRestListingRepository(baseURL string, timeout time.Duration) repository.ListingRemote {
	return &restListingRepository{
		client: newRestClient(baseURL, timeout),
	}
}

type listingListResponse struct {
	Items []entity.Listing `json:"items"`
}

func (r *restListingRepository) List(ctx context.Context, filter map[string]string) ([]entity.Listing, error) {
	var payload listingListResponse
	if err := r.client.getJSON(ctx, "/listings", filter, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

func (r *restListingRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	return r.client.send(ctx, http.MethodPatch, "/listings/"+id+"/status", statusPayload{Status: string(status)})
}

func (r *restListingRepository) Delete(ctx context.Context, id string) error {
	return r.client.send(ctx, http.MethodDelete, "/listings/"+id, nil)
}
