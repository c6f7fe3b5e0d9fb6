package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketdesk/internal/domain/entity"
	"marketdesk/internal/domain/repository"
	"marketdesk/internal/infrastructure/metrics"
	"marketdesk/pkg/errors"
	"marketdesk/pkg/logger"
)

type VendorUseCase struct {
	store     *SnapshotStore[entity.Vendor]
	remote    repository.VendorRemote
	mutator   *Mutator[entity.Vendor]
	Selection *Selection
}

func NewVendorUseCase(store *SnapshotStore[entity.Vendor], remote repository.VendorRemote) *VendorUseCase {
	return &VendorUseCase{
		store:     store,
		remote:    remote,
		mutator:   NewMutator(store),
		Selection: NewSelection(),
	}
}

type VendorListParams struct {
	Search   string
	Status   string
	Category string
	Region   string
	Plan     string
	Sort     SortKey
	Page     int
	PageSize int
}

func (p VendorListParams) filters() []Filter[entity.Vendor] {
	var filters []Filter[entity.Vendor]
	if p.Search != "" {
		search := p.Search
		filters = append(filters, func(v entity.Vendor) bool {
			return containsFold(search, v.BusinessName, v.ID)
		})
	}
	if p.Status != "" {
		status := entity.Status(p.Status)
		filters = append(filters, func(v entity.Vendor) bool { return v.Status == status })
	}
	if p.Category != "" {
		category := p.Category
		filters = append(filters, func(v entity.Vendor) bool { return v.Category == category })
	}
	if p.Region != "" {
		region := p.Region
		filters = append(filters, func(v entity.Vendor) bool { return v.HasRegion(region) })
	}
	if p.Plan != "" {
		plan := p.Plan
		filters = append(filters, func(v entity.Vendor) bool { return v.SubscriptionPlan == plan })
	}
	return filters
}

func vendorLess(key SortKey) func(a, b entity.Vendor) bool {
	switch key {
	case SortRecent:
		return func(a, b entity.Vendor) bool { return a.UpdatedAt.After(b.UpdatedAt) }
	case SortOldest:
		return func(a, b entity.Vendor) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case SortRatingDesc:
		return func(a, b entity.Vendor) bool { return a.Rating > b.Rating }
	case SortRatingAsc:
		return func(a, b entity.Vendor) bool { return a.Rating < b.Rating }
	case SortAlphabetical:
		return func(a, b entity.Vendor) bool { return a.BusinessName < b.BusinessName }
	default:
		return nil
	}
}

func (uc *VendorUseCase) List(params VendorListParams) QueryResult[entity.Vendor] {
	return RunQuery(uc.store.Get(), Query[entity.Vendor]{
		Filters:  params.filters(),
		Less:     vendorLess(params.Sort),
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

func (uc *VendorUseCase) Refresh(ctx context.Context) error {
	items, err := uc.remote.List(ctx, nil)
	if err != nil {
		metrics.FetchFailure(string(entity.KindVendor))
		logger.Warn("Vendor refresh failed, keeping current snapshot: %v", err)
		return errors.FetchFailure("vendors", err)
	}
	uc.store.Replace(items)
	return nil
}

// Suspend takes an active or trial vendor off the marketplace. The
// trial counter is cleared by the status write.
func (uc *VendorUseCase) Suspend(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.StatusSuspended)
}

func (uc *VendorUseCase) Reactivate(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.StatusActive)
}

func (uc *VendorUseCase) setStatus(ctx context.Context, id string, to entity.Status) error {
	now := time.Now()
	return uc.mutator.Apply(ctx, id, to, func(v *entity.Vendor) {
		v.UpdatedAt = now
	}, func(ctx context.Context) error {
		return uc.remote.UpdateStatus(ctx, id, to)
	})
}

func (uc *VendorUseCase) BulkSetStatus(ctx context.Context, ids []string, to entity.Status) BulkResult {
	now := time.Now()
	return uc.mutator.ApplyToSet(ctx, ids, to, func(v *entity.Vendor) {
		v.UpdatedAt = now
	}, func(id string) RemoteCall {
		return func(ctx context.Context) error {
			return uc.remote.UpdateStatus(ctx, id, to)
		}
	}, uc.Selection)
}

func VendorActionTarget(action string) (entity.Status, error) {
	switch action {
	case "suspend":
		return entity.StatusSuspended, nil
	case "reactivate":
		return entity.StatusActive, nil
	default:
		return "", errors.BadRequest("Unknown vendor action: "+action, nil)
	}
}

func vendorColumns() []Column[entity.Vendor] {
	return []Column[entity.Vendor]{
		{Header: "id", Value: func(v entity.Vendor) string { return v.ID }},
		{Header: "business_name", Value: func(v entity.Vendor) string { return v.BusinessName }},
		{Header: "category", Value: func(v entity.Vendor) string { return v.Category }},
		{Header: "status", Value: func(v entity.Vendor) string { return string(v.Status) }},
		{Header: "plan", Value: func(v entity.Vendor) string { return v.SubscriptionPlan }},
		{Header: "regions", Value: func(v entity.Vendor) string { return strings.Join(v.Regions, ";") }},
		{Header: "listings", Value: func(v entity.Vendor) string { return fmt.Sprintf("%d", v.ListingsCount) }},
		{Header: "rating", Value: func(v entity.Vendor) string { return fmt.Sprintf("%.1f", v.Rating) }},
	}
}

func (uc *VendorUseCase) Export(params VendorListParams, delimiter string) string {
	snapshot := uc.store.Get()
	result := RunQuery(snapshot, Query[entity.Vendor]{
		Filters:  params.filters(),
		Less:     vendorLess(params.Sort),
		Page:     1,
		PageSize: len(snapshot) + 1,
	})
	return ToDelimitedText(result.Items, vendorColumns(), delimiter)
}
