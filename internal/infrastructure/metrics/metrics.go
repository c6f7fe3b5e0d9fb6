package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketdesk_transitions_applied_total",
		Help: "Optimistic status transitions applied to the local snapshot.",
	}, []string{"kind", "status"})

	remoteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketdesk_remote_failures_total",
		Help: "Remote boundary calls that failed after the optimistic write.",
	}, []string{"kind", "op"})

	fetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketdesk_fetch_failures_total",
		Help: "Full snapshot fetches that failed and left stale data in place.",
	}, []string{"kind"})

	bulkBatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketdesk_bulk_batches_total",
		Help: "Bulk transition batches settled.",
	})
)

func TransitionApplied(kind, status string) {
	transitionsApplied.WithLabelValues(kind, status).Inc()
}

func RemoteFailure(kind, op string) {
	remoteFailures.WithLabelValues(kind, op).Inc()
}

func FetchFailure(kind string) {
	fetchFailures.WithLabelValues(kind).Inc()
}

func BulkBatchSettled() {
	bulkBatches.Inc()
}
