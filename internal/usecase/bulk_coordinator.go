package usecase

import (
	"context"
	"sync"

	"marketdesk/internal/domain/entity"
	"marketdesk/internal/infrastructure/metrics"
	"marketdesk/pkg/errors"
)

// BulkOutcome is one id's result from a batch, in input order.
type BulkOutcome struct {
	ID  string `json:"id"`
	Err error  `json:"-"`
}

type BulkResult struct {
	Outcomes []BulkOutcome
	Failed   int
}

// ApplyToSet fans one transition out over a selected-id set with
// all-settled semantics: every id's remote call runs independently and
// one failure never cancels or blocks another. All legal local writes
// land synchronously, before any remote call starts. After the batch
// settles the selection is cleared unconditionally, even on partial
// failure; callers needing guaranteed delivery add their own retry
// queue on top.
func (m *Mutator[T]) ApplyToSet(ctx context.Context, ids []string, to entity.Status, patch func(*T), calls func(id string) RemoteCall, selection *Selection) BulkResult {
	outcomes := make([]BulkOutcome, len(ids))
	pending := make([]int, 0, len(ids))

	// Phase one: legality checks and optimistic writes, serialized.
	for i, id := range ids {
		outcomes[i].ID = id

		current, ok := m.store.Find(id)
		if !ok {
			outcomes[i].Err = errors.NotFound(string(kindOf[T]())+" "+id, nil)
			continue
		}
		kind := current.EntityKind()
		if !entity.CanTransition(kind, current.EntityStatus(), to) {
			outcomes[i].Err = errors.InvalidTransition(string(kind), string(current.EntityStatus()), string(to))
			continue
		}

		m.store.Update(id, func(rec *T) {
			if settable, ok := any(rec).(entity.StatusSettable); ok {
				settable.SetStatus(to)
			}
			if patch != nil {
				patch(rec)
			}
		})
		metrics.TransitionApplied(string(kind), string(to))
		pending = append(pending, i)
	}

	// Phase two: remote calls fan out, all-settled.
	var wg sync.WaitGroup
	for _, i := range pending {
		call := calls(outcomes[i].ID)
		if call == nil {
			continue
		}
		wg.Add(1)
		go func(i int, call RemoteCall) {
			defer wg.Done()
			if err := call(ctx); err != nil {
				metrics.RemoteFailure(string(kindOf[T]()), "bulk_update_status")
				outcomes[i].Err = errors.Remote("Status change saved locally but not confirmed by the marketplace", err)
			}
		}(i, call)
	}
	wg.Wait()

	if selection != nil {
		selection.Clear()
	}
	metrics.BulkBatchSettled()

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
		}
	}
	return BulkResult{Outcomes: outcomes, Failed: failed}
}
