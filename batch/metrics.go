// SPDX-License-Identifier: MIT

package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entity outcome label values.
const (
	resultOK       = "ok"
	resultError    = "error"
	resultCanceled = "canceled"
)

// Metrics groups the collectors updated by Run.
type Metrics struct {
	Observations prometheus.Counter
	Sessions     prometheus.Counter
	Transitions  prometheus.Counter
	Entities     *prometheus.CounterVec
	Duration     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Observations: f.NewCounter(prometheus.CounterOpts{
			Name: "flowmap_observations_total",
			Help: "Raw observations consumed by the session compressor",
		}),
		Sessions: f.NewCounter(prometheus.CounterOpts{
			Name: "flowmap_sessions_total",
			Help: "Stay sessions emitted by the session compressor",
		}),
		Transitions: f.NewCounter(prometheus.CounterOpts{
			Name: "flowmap_linked_transitions_total",
			Help: "Consecutive session pairs linked within the gap threshold",
		}),
		// Labels: "ok", "error", "canceled"
		Entities: f.NewCounterVec(prometheus.CounterOpts{
			Name: "flowmap_entities_total",
			Help: "Entities processed by result",
		}, []string{"result"}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "flowmap_entity_duration_seconds",
			Help:    "Time spent compressing and aggregating one entity",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
	}
}

// observe records one entity; safe on a nil receiver.
func (m *Metrics) observe(res *EntityResult, observations int, elapsed time.Duration, result string) {
	if m == nil {
		return
	}
	m.Entities.WithLabelValues(result).Inc()
	m.Duration.Observe(elapsed.Seconds())
	if res == nil {
		return
	}
	m.Observations.Add(float64(observations))
	m.Sessions.Add(float64(len(res.Sessions)))
	m.Transitions.Add(float64(res.Flows.Total()))
}
