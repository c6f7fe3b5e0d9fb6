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

type ReviewUseCase struct {
	store     *SnapshotStore[entity.Review]
	remote    repository.ReviewRemote
	mutator   *Mutator[entity.Review]
	Selection *Selection
}

func NewReviewUseCase(store *SnapshotStore[entity.Review], remote repository.ReviewRemote) *ReviewUseCase {
	return &ReviewUseCase{
		store:     store,
		remote:    remote,
		mutator:   NewMutator(store),
		Selection: NewSelection(),
	}
}

type ReviewListParams struct {
	Search    string
	Status    string
	VendorID  string
	ListingID string
	Rating    int
	Sort      SortKey
	Page      int
	PageSize  int
}

func (p ReviewListParams) filters() []Filter[entity.Review] {
	var filters []Filter[entity.Review]
	if p.Search != "" {
		search := p.Search
		filters = append(filters, func(r entity.Review) bool {
			return containsFold(search, r.Content, r.ID, r.CustomerID)
		})
	}
	if p.Status != "" {
		status := entity.Status(p.Status)
		filters = append(filters, func(r entity.Review) bool { return r.Status == status })
	}
	if p.VendorID != "" {
		vendorID := p.VendorID
		filters = append(filters, func(r entity.Review) bool { return r.VendorID == vendorID })
	}
	if p.ListingID != "" {
		listingID := p.ListingID
		filters = append(filters, func(r entity.Review) bool { return r.ListingID == listingID })
	}
	if p.Rating > 0 {
		rating := p.Rating
		filters = append(filters, func(r entity.Review) bool { return r.Rating == rating })
	}
	return filters
}

func reviewLess(key SortKey) func(a, b entity.Review) bool {
	switch key {
	case SortRecent:
		return func(a, b entity.Review) bool { return a.UpdatedAt.After(b.UpdatedAt) }
	case SortOldest:
		return func(a, b entity.Review) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case SortRatingDesc:
		return func(a, b entity.Review) bool { return a.Rating > b.Rating }
	case SortRatingAsc:
		return func(a, b entity.Review) bool { return a.Rating < b.Rating }
	default:
		return nil
	}
}

func (uc *ReviewUseCase) List(params ReviewListParams) QueryResult[entity.Review] {
	return RunQuery(uc.store.Get(), Query[entity.Review]{
		Filters:  params.filters(),
		Less:     reviewLess(params.Sort),
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

func (uc *ReviewUseCase) Refresh(ctx context.Context) error {
	items, err := uc.remote.List(ctx, nil)
	if err != nil {
		metrics.FetchFailure(string(entity.KindReview))
		logger.Warn("Review refresh failed, keeping current snapshot: %v", err)
		return errors.FetchFailure("reviews", err)
	}
	uc.store.Replace(items)
	return nil
}

func (uc *ReviewUseCase) Hide(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.StatusHidden)
}

func (uc *ReviewUseCase) Publish(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.StatusPublished)
}

func (uc *ReviewUseCase) FlagReview(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.StatusFlagged)
}

// RemoveReview is the terminal moderation transition. The record stays
// in the snapshot with status removed; use Delete to erase it.
func (uc *ReviewUseCase) RemoveReview(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.StatusRemoved)
}

func (uc *ReviewUseCase) setStatus(ctx context.Context, id string, to entity.Status) error {
	now := time.Now()
	return uc.mutator.Apply(ctx, id, to, func(r *entity.Review) {
		r.UpdatedAt = now
	}, func(ctx context.Context) error {
		return uc.remote.UpdateStatus(ctx, id, to)
	})
}

func (uc *ReviewUseCase) Delete(ctx context.Context, id string) error {
	return uc.mutator.Delete(ctx, id, func(ctx context.Context) error {
		return uc.remote.Delete(ctx, id)
	})
}

func (uc *ReviewUseCase) BulkSetStatus(ctx context.Context, ids []string, to entity.Status) BulkResult {
	now := time.Now()
	return uc.mutator.ApplyToSet(ctx, ids, to, func(r *entity.Review) {
		r.UpdatedAt = now
	}, func(id string) RemoteCall {
		return func(ctx context.Context) error {
			return uc.remote.UpdateStatus(ctx, id, to)
		}
	}, uc.Selection)
}

func ReviewActionTarget(action string) (entity.Status, error) {
	switch action {
	case "hide":
		return entity.StatusHidden, nil
	case "publish":
		return entity.StatusPublished, nil
	case "flag":
		return entity.StatusFlagged, nil
	case "remove":
		return entity.StatusRemoved, nil
	default:
		return "", errors.BadRequest("Unknown review action: "+action, nil)
	}
}

func reviewColumns() []Column[entity.Review] {
	return []Column[entity.Review]{
		{Header: "id", Value: func(r entity.Review) string { return r.ID }},
		{Header: "listing", Value: func(r entity.Review) string { return r.ListingID }},
		{Header: "vendor", Value: func(r entity.Review) string { return r.VendorID }},
		{Header: "rating", Value: func(r entity.Review) string { return fmt.Sprintf("%d", r.Rating) }},
		{Header: "status", Value: func(r entity.Review) string { return string(r.Status) }},
		{Header: "content", Value: func(r entity.Review) string { return r.Content }},
		{Header: "responded", Value: func(r entity.Review) string {
			if r.VendorResponse != nil {
				return "yes"
			}
			return "no"
		}},
	}
}

func (uc *ReviewUseCase) Export(params ReviewListParams, delimiter string) string {
	snapshot := uc.store.Get()
	result := RunQuery(snapshot, Query[entity.Review]{
		Filters:  params.filters(),
		Less:     reviewLess(params.Sort),
		Page:     1,
		PageSize: len(snapshot) + 1,
	})
	return ToDelimitedText(result.Items, reviewColumns(), delimiter)
}
