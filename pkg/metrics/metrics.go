// Package metrics exports binding and preview activity to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/vbind/pkg/dom"
	"github.com/vango-dev/vbind/pkg/key"
)

// Config configures the Prometheus observer.
type Config struct {
	// Namespace is the metrics namespace (default: "vbind").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for broadcast duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus observer.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "vbind",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Observer implements dom.Observer and records preview server activity.
type Observer struct {
	bindingsTotal     *prometheus.CounterVec
	appliesTotal      *prometheus.CounterVec
	releasedTotal     prometheus.Counter
	activeBindings    prometheus.Gauge
	patchesSent       prometheus.Counter
	clients           prometheus.Gauge
	wsErrors          *prometheus.CounterVec
	broadcastDuration prometheus.Histogram
}

var _ dom.Observer = (*Observer)(nil)

// New registers the metrics and returns an observer.
//
// Metrics collected:
//   - vbind_bindings_total: bindings created, by kind and mode (constant or reactive)
//   - vbind_applies_total: sink writes, by kind and name
//   - vbind_bindings_released_total: subscriptions released by element disposal
//   - vbind_active_bindings: reactive bindings not yet released
//   - vbind_patches_sent_total: patches sent to preview clients
//   - vbind_preview_clients: connected preview clients
//   - vbind_websocket_errors_total: websocket errors by type
//   - vbind_broadcast_duration_seconds: time to encode and send one batch
func New(opts ...Option) *Observer {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Observer{
		bindingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bindings_total",
			Help:        "Total number of attribute, style and text bindings created",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "mode"}),

		appliesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "applies_total",
			Help:        "Total number of values written to sinks",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "name"}),

		releasedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bindings_released_total",
			Help:        "Total number of subscriptions released by element disposal",
			ConstLabels: config.ConstLabels,
		}),

		activeBindings: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_bindings",
			Help:        "Number of reactive bindings not yet released",
			ConstLabels: config.ConstLabels,
		}),

		patchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_sent_total",
			Help:        "Total number of patches sent to preview clients",
			ConstLabels: config.ConstLabels,
		}),

		clients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "preview_clients",
			Help:        "Number of connected preview clients",
			ConstLabels: config.ConstLabels,
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		broadcastDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "broadcast_duration_seconds",
			Help:        "Time to encode and send one patch batch",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// BindingCreated implements dom.Observer.
func (o *Observer) BindingCreated(kind key.Kind, _ string, reactive bool) {
	mode := "constant"
	if reactive {
		mode = "reactive"
		o.activeBindings.Inc()
	}
	o.bindingsTotal.WithLabelValues(kind.String(), mode).Inc()
}

// Applied implements dom.Observer.
func (o *Observer) Applied(kind key.Kind, name string) {
	o.appliesTotal.WithLabelValues(kind.String(), name).Inc()
}

// BindingReleased implements dom.Observer.
func (o *Observer) BindingReleased(n int) {
	o.releasedTotal.Add(float64(n))
	o.activeBindings.Sub(float64(n))
}

// PatchesSent records n patches delivered to one client.
func (o *Observer) PatchesSent(n int) {
	o.patchesSent.Add(float64(n))
}

// ClientConnected records a new preview client.
func (o *Observer) ClientConnected() { o.clients.Inc() }

// ClientDisconnected records a preview client leaving.
func (o *Observer) ClientDisconnected() { o.clients.Dec() }

// WebSocketError records a websocket failure of the given type
// ("upgrade", "write", "read").
func (o *Observer) WebSocketError(typ string) {
	o.wsErrors.WithLabelValues(typ).Inc()
}

// ObserveBroadcast records the duration of one broadcast.
func (o *Observer) ObserveBroadcast(d time.Duration) {
	o.broadcastDuration.Observe(d.Seconds())
}
