package observability

import (
	"context"

	"github.com/factlane/factlane/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the workflow engine.
type Metrics struct {
	transitions   *prometheus.CounterVec
	ignoredEvents *prometheus.CounterVec
	publishes     *prometheus.CounterVec
	dispatchTime  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with the registerer.
// Pass prometheus.DefaultRegisterer for the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "factlane_transitions_total",
				Help: "Completed workflow transitions",
			},
			[]string{"machine", "event", "to"},
		),
		ignoredEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "factlane_events_ignored_total",
				Help: "Events discarded because the current state defines no transition for them",
			},
			[]string{"machine", "event"},
		),
		publishes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "factlane_publishes_total",
				Help: "Publish side effects by result",
			},
			[]string{"result"},
		),
		dispatchTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "factlane_dispatch_duration_seconds",
				Help:    "Time spent loading, stepping, and saving one event",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"machine"},
		),
	}
	reg.MustRegister(m.transitions, m.ignoredEvents, m.publishes, m.dispatchTime)
	return m
}

// Hooks returns lifecycle hooks that record the metrics, chained onto next
// so callers can combine metrics with their own callbacks.
func (m *Metrics) Hooks(next domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			m.transitions.WithLabelValues(e.Machine, string(e.Event), string(e.To)).Inc()
			m.dispatchTime.WithLabelValues(e.Machine).Observe(e.Duration.Seconds())
			if next.OnTransition != nil {
				next.OnTransition(ctx, e)
			}
		},
		OnEventIgnored: func(ctx context.Context, e *domain.IgnoredEvent) {
			m.ignoredEvents.WithLabelValues(e.Machine, string(e.Event)).Inc()
			if next.OnEventIgnored != nil {
				next.OnEventIgnored(ctx, e)
			}
		},
		OnPublish: func(ctx context.Context, e *domain.PublishEvent) {
			result := "ok"
			if e.Err != nil {
				result = "error"
			}
			m.publishes.WithLabelValues(result).Inc()
			if next.OnPublish != nil {
				next.OnPublish(ctx, e)
			}
		},
	}
}
