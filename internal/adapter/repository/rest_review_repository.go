package repository

import (
	"context"
	"net/http"
	"time"

	"marketdesk/internal/domain/entity"
	"marketdesk/internal/domain/repository"
)

type restReviewRepository struct {
	client *restClient
}

func NewRestReviewRepository(baseURL string, timeout time.Duration) repository.ReviewRemote {
	return &restReviewRepository{
		client: newRestClient(baseURL, timeout),
	}
}

type reviewListResponse struct {
	Items []entity.Review `json:"items"`
}

func (r *restReviewRepository) List(ctx context.Context, filter map[string]string) ([]entity.Review, error) {
	var payload reviewListResponse
	if err := r.client.getJSON(ctx, "/reviews", filter, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

func (r *restReviewRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	return r.client.send(ctx, http.MethodPatch, "/reviews/"+id+"/status", statusPayload{Status: string(status)})
}

func (r *restReviewRepository) Delete(ctx context.Context, id string) error {
	return r.client.send(ctx, http.MethodDelete, "/reviews/"+id, nil)
}
