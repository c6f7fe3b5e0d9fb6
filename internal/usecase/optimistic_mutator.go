package usecase

import (
	"context"

	"marketdesk/internal/domain/entity"
	"marketdesk/internal/infrastructure/metrics"
	"marketdesk/pkg/errors"
	"marketdesk/pkg/logger"
)

// RemoteCall is the injected async boundary for one entity's transition,
// usually a closure over the REST gateway.
type RemoteCall func(ctx context.Context) error

// Mutator applies checked status transitions to a snapshot store with
// optimistic local writes. The local write lands synchronously, before
// the remote call is issued, so the UI reflects the change with zero
// latency. On remote failure the optimistic value is kept; the error is
// surfaced as a dismissible notice and reconciliation happens on the
// next full fetch. That no-rollback policy is deliberate: local
// consistency is preferred over strict server agreement.
type Mutator[T entity.Record] struct {
	store *SnapshotStore[T]
}

func NewMutator[T entity.Record](store *SnapshotStore[T]) *Mutator[T] {
	return &Mutator[T]{store: store}
}

// Apply moves one entity to the given status. patch may be nil; when
// set it runs after the status write to fill transition side fields
// (flag reason, timestamps). An illegal transition returns
// INVALID_TRANSITION without touching state or network.
func (m *Mutator[T]) Apply(ctx context.Context, id string, to entity.Status, patch func(*T), call RemoteCall) error {
	current, ok := m.store.Find(id)
	if !ok {
		return errors.NotFound(string(kindOf[T]())+" "+id, nil)
	}

	kind := current.EntityKind()
	if !entity.CanTransition(kind, current.EntityStatus(), to) {
		return errors.InvalidTransition(string(kind), string(current.EntityStatus()), string(to))
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

	if call == nil {
		return nil
	}
	if err := call(ctx); err != nil {
		// No rollback: keep the optimistic value, surface the error.
		metrics.RemoteFailure(string(kind), "update_status")
		logger.LogRemoteError(string(kind), "update_status", err)
		return errors.Remote("Status change saved locally but not confirmed by the marketplace", err)
	}
	return nil
}

// Delete removes the entity locally, then issues the remote call under
// the same no-rollback policy as Apply.
func (m *Mutator[T]) Delete(ctx context.Context, id string, call RemoteCall) error {
	current, ok := m.store.Find(id)
	if !ok {
		return errors.NotFound(string(kindOf[T]())+" "+id, nil)
	}

	kind := current.EntityKind()
	m.store.Remove(id)

	if call == nil {
		return nil
	}
	if err := call(ctx); err != nil {
		metrics.RemoteFailure(string(kind), "delete")
		logger.LogRemoteError(string(kind), "delete", err)
		return errors.Remote("Deleted locally but not confirmed by the marketplace", err)
	}
	return nil
}

func kindOf[T entity.Record]() entity.Kind {
	var zero T
	return zero.EntityKind()
}
