// Package metrics records permission manager activity with prometheus.
package metrics

import (
	"fmt"

	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric name when none is configured.
const DefaultNamespace = "webperm"

// Recorder implements port.PermissionMetrics.
type Recorder struct {
	registry *prometheus.Registry

	decisions      *prometheus.CounterVec
	prompts        *prometheus.CounterVec
	pendingSingles prometheus.Gauge
	pendingBatches prometheus.Gauge
}

// NewRecorder creates a recorder registering its collectors on a private registry.
func NewRecorder(namespace string) *Recorder {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		decisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "permission_decisions_total",
				Help:      "Permission decisions received, by permission type and state",
			},
			[]string{"type", "state"},
		),
		prompts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "permission_prompts_total",
				Help:      "Prompts sent to the embedder, by permission type",
			},
			[]string{"type"},
		),
		pendingSingles: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "permission_pending_requests",
			Help:      "Single permission requests waiting for a decision",
		}),
		pendingBatches: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "permission_pending_batches",
			Help:      "Batched capability requests waiting for a decision",
		}),
	}
}

// ObserveDecision records a decision received through SetPermission.
func (r *Recorder) ObserveDecision(permType entity.PermissionType, state entity.PermissionState) {
	r.decisions.WithLabelValues(string(permType), string(state)).Inc()
}

// ObservePrompt records a prompt sent to the embedder.
func (r *Recorder) ObservePrompt(permType entity.PermissionType) {
	r.prompts.WithLabelValues(string(permType)).Inc()
}

// SetPending records the number of outstanding requests.
func (r *Recorder) SetPending(singles, batches int) {
	r.pendingSingles.Set(float64(singles))
	r.pendingBatches.Set(float64(batches))
}

// Gatherer exposes the registry, e.g. for promhttp.HandlerFor.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the current values in the text exposition format,
// for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
