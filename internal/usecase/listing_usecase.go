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

type ListingUseCase struct {
	store     *SnapshotStore[entity.Listing]
	remote    repository.ListingRemote
	mutator   *Mutator[entity.Listing]
	Selection *Selection
}

func NewListingUseCase(store *SnapshotStore[entity.Listing], remote repository.ListingRemote) *ListingUseCase {
	return &ListingUseCase{
		store:     store,
		remote:    remote,
		mutator:   NewMutator(store),
		Selection: NewSelection(),
	}
}

type ListingListParams struct {
	Search   string
	Status   string
	Category string
	VendorID string
	Region   string
	Sort     SortKey
	Page     int
	PageSize int
}

func (p ListingListParams) filters() []Filter[entity.Listing] {
	var filters []Filter[entity.Listing]
	if p.Search != "" {
		search := p.Search
		filters = append(filters, func(l entity.Listing) bool {
			return containsFold(search, l.Name, l.VendorName, l.ID)
		})
	}
	if p.Status != "" {
		status := entity.Status(p.Status)
		filters = append(filters, func(l entity.Listing) bool { return l.Status == status })
	}
	if p.Category != "" {
		category := p.Category
		filters = append(filters, func(l entity.Listing) bool { return l.Category == category })
	}
	if p.VendorID != "" {
		vendorID := p.VendorID
		filters = append(filters, func(l entity.Listing) bool { return l.VendorID == vendorID })
	}
	if p.Region != "" {
		region := p.Region
		filters = append(filters, func(l entity.Listing) bool { return l.HasRegion(region) })
	}
	return filters
}

func listingLess(key SortKey) func(a, b entity.Listing) bool {
	switch key {
	case SortRecent:
		return func(a, b entity.Listing) bool { return a.UpdatedAt.After(b.UpdatedAt) }
	case SortOldest:
		return func(a, b entity.Listing) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case SortBookings:
		return func(a, b entity.Listing) bool { return a.Bookings > b.Bookings }
	case SortRatingDesc:
		return func(a, b entity.Listing) bool { return a.Rating > b.Rating }
	case SortRatingAsc:
		return func(a, b entity.Listing) bool { return a.Rating < b.Rating }
	case SortAlphabetical:
		return func(a, b entity.Listing) bool { return a.Name < b.Name }
	default:
		return nil
	}
}

// List derives the visible page from the current snapshot. Pure with
// respect to the store.
func (uc *ListingUseCase) List(params ListingListParams) QueryResult[entity.Listing] {
	return RunQuery(uc.store.Get(), Query[entity.Listing]{
		Filters:  params.filters(),
		Less:     listingLess(params.Sort),
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

// Refresh does a full fetch and whole-snapshot swap. This is the only
// reconciliation path after optimistic writes; on failure the store is
// left untouched and keeps serving the last known good collection.
func (uc *ListingUseCase) Refresh(ctx context.Context) error {
	items, err := uc.remote.List(ctx, nil)
	if err != nil {
		metrics.FetchFailure(string(entity.KindListing))
		logger.Warn("Listing refresh failed, keeping current snapshot: %v", err)
		return errors.FetchFailure("listings", err)
	}
	uc.store.Replace(items)
	return nil
}

func (uc *ListingUseCase) Flag(ctx context.Context, id, reason string) error {
	now := time.Now()
	return uc.mutator.Apply(ctx, id, entity.StatusFlagged, func(l *entity.Listing) {
		l.FlagReason = reason
		l.FlaggedAt = &now
		l.UpdatedAt = now
	}, uc.statusCall(id, entity.StatusFlagged))
}

// Unflag resolves a flag back to active or inactive; the flag reason
// and timestamp are cleared by the status write.
func (uc *ListingUseCase) Unflag(ctx context.Context, id string, to entity.Status) error {
	if to != entity.StatusActive && to != entity.StatusInactive {
		return errors.BadRequest("A flag can only resolve to active or inactive", nil)
	}
	return uc.setStatus(ctx, id, to)
}

func (uc *ListingUseCase) Activate(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.StatusActive)
}

func (uc *ListingUseCase) Deactivate(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.StatusInactive)
}

func (uc *ListingUseCase) setStatus(ctx context.Context, id string, to entity.Status) error {
	now := time.Now()
	return uc.mutator.Apply(ctx, id, to, func(l *entity.Listing) {
		l.UpdatedAt = now
	}, uc.statusCall(id, to))
}

// Delete removes the listing from the snapshot entirely, unlike status
// transitions which keep the record.
func (uc *ListingUseCase) Delete(ctx context.Context, id string) error {
	return uc.mutator.Delete(ctx, id, func(ctx context.Context) error {
		return uc.remote.Delete(ctx, id)
	})
}

// BulkSetStatus applies one transition over the id set with all-settled
// semantics and clears the selection afterwards. Flagging is excluded:
// a flagged listing must carry a reason, so use BulkFlag.
func (uc *ListingUseCase) BulkSetStatus(ctx context.Context, ids []string, to entity.Status) BulkResult {
	now := time.Now()
	return uc.mutator.ApplyToSet(ctx, ids, to, func(l *entity.Listing) {
		l.UpdatedAt = now
	}, func(id string) RemoteCall {
		return uc.statusCall(id, to)
	}, uc.Selection)
}

// BulkFlag flags every listing in the set with one shared reason, so
// each flagged record carries its reason and timestamp.
func (uc *ListingUseCase) BulkFlag(ctx context.Context, ids []string, reason string) BulkResult {
	now := time.Now()
	return uc.mutator.ApplyToSet(ctx, ids, entity.StatusFlagged, func(l *entity.Listing) {
		l.FlagReason = reason
		l.FlaggedAt = &now
		l.UpdatedAt = now
	}, func(id string) RemoteCall {
		return uc.statusCall(id, entity.StatusFlagged)
	}, uc.Selection)
}

func (uc *ListingUseCase) statusCall(id string, to entity.Status) RemoteCall {
	return func(ctx context.Context) error {
		return uc.remote.UpdateStatus(ctx, id, to)
	}
}

// ListingActionTarget maps a console bulk action name to its target
// status.
func ListingActionTarget(action string) (entity.Status, error) {
	switch action {
	case "activate", "unflag":
		return entity.StatusActive, nil
	case "deactivate":
		return entity.StatusInactive, nil
	case "flag":
		return entity.StatusFlagged, nil
	default:
		return "", errors.BadRequest("Unknown listing action: "+action, nil)
	}
}

func listingColumns() []Column[entity.Listing] {
	return []Column[entity.Listing]{
		{Header: "id", Value: func(l entity.Listing) string { return l.ID }},
		{Header: "name", Value: func(l entity.Listing) string { return l.Name }},
		{Header: "vendor", Value: func(l entity.Listing) string { return l.VendorName }},
		{Header: "category", Value: func(l entity.Listing) string { return l.Category }},
		{Header: "status", Value: func(l entity.Listing) string { return string(l.Status) }},
		{Header: "price", Value: func(l entity.Listing) string { return fmt.Sprintf("%.2f", l.Price) }},
		{Header: "regions", Value: func(l entity.Listing) string { return strings.Join(l.Regions, ";") }},
		{Header: "bookings", Value: func(l entity.Listing) string { return fmt.Sprintf("%d", l.Bookings) }},
		{Header: "rating", Value: func(l entity.Listing) string { return fmt.Sprintf("%.1f", l.Rating) }},
		{Header: "updated_at", Value: func(l entity.Listing) string { return l.UpdatedAt.Format(time.RFC3339) }},
	}
}

// Export serializes the full filtered and sorted set, ignoring paging.
func (uc *ListingUseCase) Export(params ListingListParams, delimiter string) string {
	snapshot := uc.store.Get()
	result := RunQuery(snapshot, Query[entity.Listing]{
		Filters:  params.filters(),
		Less:     listingLess(params.Sort),
		Page:     1,
		PageSize: len(snapshot) + 1,
	})
	return ToDelimitedText(result.Items, listingColumns(), delimiter)
}
