package repository

import (
	"context"
	"net/http"
	"time"

	"marketdesk/internal/domain/entity"
	"marketdesk/internal/domain/repository"
)

type restOrderRepository struct {
	client *restClient
}

func NewRestOrderRepository(baseURL string, timeout time.Duration) repository.OrderRemote {
	return &restOrderRepository{
		client: newRestClient(baseURL, timeout),
	}
}

type orderListResponse struct {
	Items []entity.Order `json:"items"`
}

func (r *restOrderRepository) List(ctx context.Context, filter map[string]string) ([]entity.Order, error) {
	var payload orderListResponse
	if err := r.client.getJSON(ctx, "/orders", filter, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

func (r *restOrderRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	return r.client.send(ctx, http.MethodPatch, "/orders/"+id+"/status", statusPayload{Status: string(status)})
}
