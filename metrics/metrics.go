// Package metrics wraps prometheus/client_golang counters and gauges
// around a running [desim.Simulation], grounded on
// dshills-langgraph-go/graph's PrometheusMetrics (same promauto.With
// factory pattern, same registry-or-default-registerer construction)
// and mirrored by r3e-network-service_layer's use of
// prometheus/client_golang elsewhere in the example pack.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/joeycumines/desim"
)

// Collector holds the metrics this package exposes for a simulation:
// steps executed, the event queue's depth after each step, the trace's
// running size, and how many processes are currently parked waiting on
// a resource. Wire it in via [Observe] and [desim.WithStepObserver].
type Collector struct {
	stepsTotal    prometheus.Counter
	queueDepth    prometheus.Gauge
	traceSize     prometheus.Gauge
	resourceWaits *prometheus.GaugeVec
}

// NewCollector registers desim_* metrics with registry (use
// prometheus.DefaultRegisterer for the global registry, or
// prometheus.NewRegistry() for an isolated one, e.g. in tests).
func NewCollector(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Collector{
		stepsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "desim",
			Name:      "steps_total",
			Help:      "Cumulative number of simulation steps executed.",
		}),
		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "desim",
			Name:      "queue_depth",
			Help:      "Number of events currently in the queue after the last step.",
		}),
		traceSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "desim",
			Name:      "trace_size",
			Help:      "Number of entries currently recorded in the trace.",
		}),
		resourceWaits: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "desim",
			Name:      "resource_wait_queue_depth",
			Help:      "Number of processes waiting on a resource, by label.",
		}, []string{"resource"}),
	}
}

// Observe records the metrics implied by a single successful step: the
// step counter, the queue depth, and the trace size. Typically called
// from a [desim.WithStepObserver] closure:
//
//	desim.WithStepObserver[T](func(desim.Event[T], T) { metrics.Observe(c, sim) })
func Observe[T desim.SimState](c *Collector, sim *desim.Simulation[T]) {
	c.stepsTotal.Inc()
	c.queueDepth.Set(float64(sim.QueueLen()))
	c.traceSize.Set(float64(sim.TraceLen()))
}

// SetResourceWaiting records the current wait-queue depth for a named
// resource (application-assigned label; desim has no names for
// ResourceIDs, so callers supply one).
func (c *Collector) SetResourceWaiting(resource string, waiting int) {
	c.resourceWaits.WithLabelValues(resource).Set(float64(waiting))
}
