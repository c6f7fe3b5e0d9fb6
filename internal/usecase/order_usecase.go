package usecase

import (
	"context"
	"fmt"
	"time"

	"marketdesk/internal/domain/entity"
	"marketdesk/internal/domain/repository"
	"marketdesk/internal/infrastructure/metrics"
	"marketdesk/pkg/errors"
	"marketdesk/pkg/logger"
)

type OrderUseCase struct {
	store     *SnapshotStore[entity.Order]
	remote    repository.OrderRemote
	mutator   *Mutator[entity.Order]
	Selection *Selection
}

func NewOrderUseCase(store *SnapshotStore[entity.Order], remote repository.OrderRemote) *OrderUseCase {
	return &OrderUseCase{
		store:     store,
		remote:    remote,
		mutator:   NewMutator(store),
		Selection: NewSelection(),
	}
}

type OrderListParams struct {
	Search        string
	Status        string
	PaymentStatus string
	VendorID      string
	CustomerID    string
	Sort          SortKey
	Page          int
	PageSize      int
}

func (p OrderListParams) filters() []Filter[entity.Order] {
	var filters []Filter[entity.Order]
	if p.Search != "" {
		search := p.Search
		filters = append(filters, func(o entity.Order) bool {
			return containsFold(search, o.ID, o.CustomerID, o.VendorID)
		})
	}
	if p.Status != "" {
		status := entity.Status(p.Status)
		filters = append(filters, func(o entity.Order) bool { return o.Status == status })
	}
	if p.PaymentStatus != "" {
		payment := entity.PaymentStatus(p.PaymentStatus)
		filters = append(filters, func(o entity.Order) bool { return o.PaymentStatus == payment })
	}
	if p.VendorID != "" {
		vendorID := p.VendorID
		filters = append(filters, func(o entity.Order) bool { return o.VendorID == vendorID })
	}
	if p.CustomerID != "" {
		customerID := p.CustomerID
		filters = append(filters, func(o entity.Order) bool { return o.CustomerID == customerID })
	}
	return filters
}

func orderLess(key SortKey) func(a, b entity.Order) bool {
	switch key {
	case SortRecent:
		return func(a, b entity.Order) bool { return a.Date.After(b.Date) }
	case SortOldest:
		return func(a, b entity.Order) bool { return a.Date.Before(b.Date) }
	default:
		return nil
	}
}

func (uc *OrderUseCase) List(params OrderListParams) QueryResult[entity.Order] {
	return RunQuery(uc.store.Get(), Query[entity.Order]{
		Filters:  params.filters(),
		Less:     orderLess(params.Sort),
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

func (uc *OrderUseCase) Refresh(ctx context.Context) error {
	items, err := uc.remote.List(ctx, nil)
	if err != nil {
		metrics.FetchFailure(string(entity.KindOrder))
		logger.Warn("Order refresh failed, keeping current snapshot: %v", err)
		return errors.FetchFailure("orders", err)
	}
	uc.store.Replace(items)
	return nil
}

// Cancel is the only order transition the console itself may trigger;
// disputes and completions arrive from the backend on refresh.
func (uc *OrderUseCase) Cancel(ctx context.Context, id string) error {
	now := time.Now()
	return uc.mutator.Apply(ctx, id, entity.StatusCancelled, func(o *entity.Order) {
		o.UpdatedAt = now
	}, func(ctx context.Context) error {
		return uc.remote.UpdateStatus(ctx, id, entity.StatusCancelled)
	})
}

func (uc *OrderUseCase) BulkCancel(ctx context.Context, ids []string) BulkResult {
	now := time.Now()
	return uc.mutator.ApplyToSet(ctx, ids, entity.StatusCancelled, func(o *entity.Order) {
		o.UpdatedAt = now
	}, func(id string) RemoteCall {
		return func(ctx context.Context) error {
			return uc.remote.UpdateStatus(ctx, id, entity.StatusCancelled)
		}
	}, uc.Selection)
}

func OrderActionTarget(action string) (entity.Status, error) {
	if action == "cancel" {
		return entity.StatusCancelled, nil
	}
	return "", errors.BadRequest("Unknown order action: "+action, nil)
}

func orderColumns() []Column[entity.Order] {
	return []Column[entity.Order]{
		{Header: "id", Value: func(o entity.Order) string { return o.ID }},
		{Header: "customer", Value: func(o entity.Order) string { return o.CustomerID }},
		{Header: "vendor", Value: func(o entity.Order) string { return o.VendorID }},
		{Header: "status", Value: func(o entity.Order) string { return string(o.Status) }},
		{Header: "payment", Value: func(o entity.Order) string { return string(o.PaymentStatus) }},
		{Header: "date", Value: func(o entity.Order) string { return o.Date.Format("2006-01-02") }},
		{Header: "total", Value: func(o entity.Order) string { return fmt.Sprintf("%.2f", o.Total) }},
	}
}

func (uc *OrderUseCase) Export(params OrderListParams, delimiter string) string {
	snapshot := uc.store.Get()
	result := RunQuery(snapshot, Query[entity.Order]{
		Filters:  params.filters(),
		Less:     orderLess(params.Sort),
		Page:     1,
		PageSize: len(snapshot) + 1,
	})
	return ToDelimitedText(result.Items, orderColumns(), delimiter)
}
