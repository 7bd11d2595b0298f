// Package monitoring registers the operator's prometheus metrics on the
// controller-runtime registry, which the manager serves on its metrics
// endpoint.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	reconcilesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "amf_operator_reconciles_total",
			Help: "Reconciliation passes by resulting unit status phase.",
		},
		[]string{"phase"},
	)

	reconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "amf_operator_reconcile_duration_seconds",
			Help:    "Duration of reconciliation passes.",
			Buckets: prometheus.DefBuckets,
		},
	)

	configPushesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "amf_operator_config_pushes_total",
			Help: "Configuration files written into the workload container.",
		},
	)

	workloadRestartsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "amf_operator_workload_restarts_total",
			Help: "Restarts issued to the managed workload service.",
		},
	)
)

func init() {
	metrics.Registry.MustRegister(
		reconcilesTotal,
		reconcileDuration,
		configPushesTotal,
		workloadRestartsTotal,
	)
}

// RecordReconcile records the outcome and duration of one pass.
func RecordReconcile(phase string, durationSeconds float64) {
	reconcilesTotal.WithLabelValues(phase).Inc()
	reconcileDuration.Observe(durationSeconds)
}

// RecordConfigPush records a configuration write.
func RecordConfigPush() {
	configPushesTotal.Inc()
}

// RecordWorkloadRestart records a restart of the managed service.
func RecordWorkloadRestart() {
	workloadRestartsTotal.Inc()
}
