package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// serverMetrics holds the Prometheus metrics exposed by "serve". Modeled
// on a handlers-plus-counters split: one counter/histogram pair per
// operation, the counter labeled by result, so /metrics can answer "how
// many inserts succeeded vs. returned an error" without the core package
// knowing metrics exist. A no-op insert or delete counts as a success.
type serverMetrics struct {
	opsTotal       *prometheus.CounterVec
	opDuration     *prometheus.HistogramVec
	treeSize       prometheus.GaugeFunc
	reclaimPending prometheus.GaugeFunc
}

// sizer is the narrow surface newServerMetrics needs to expose a live gauge.
type sizer interface {
	Size() uint64
}

// newServerMetrics registers its collectors against reg rather than the
// global default registerer, so that "serve" and tests (which each pass a
// fresh prometheus.NewRegistry()) never collide on metric names.
func newServerMetrics(reg prometheus.Registerer, tr interface {
	sizer
	PendingReclamations() int
}) *serverMetrics {
	factory := promauto.With(reg)

	return &serverMetrics{
		opsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nbtreedemo_operations_total",
				Help: "Total number of set operations served over HTTP",
			},
			[]string{"operation", "result"},
		),
		opDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nbtreedemo_operation_duration_seconds",
				Help:    "Set operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		treeSize: factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "nbtreedemo_set_size",
				Help: "Approximate cardinality of the served set",
			},
			func() float64 { return float64(tr.Size()) },
		),
		reclaimPending: factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "nbtreedemo_pending_reclamations",
				Help: "Retired tree nodes not yet reclaimed",
			},
			func() float64 { return float64(tr.PendingReclamations()) },
		),
	}
}
