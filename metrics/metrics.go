// Package metrics exposes Prometheus collectors for connections and packets.
package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "mcplay").
	Namespace string

	// Registry is the Prometheus registry to use.
	// Default: a fresh prometheus.NewRegistry()
	Registry *prometheus.Registry
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Metrics holds the server collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	connectionsTotal  prometheus.Counter
	activeConnections prometheus.Gauge
	playing           prometheus.Gauge
	statesReached     *prometheus.CounterVec
	packetsReceived   *prometheus.CounterVec
	packetsSent       *prometheus.CounterVec
	connectionErrors  *prometheus.CounterVec
}

func New(opts ...Option) *Metrics {
	cfg := Config{Namespace: "mcplay"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	factory := promauto.With(cfg.Registry)

	return &Metrics{
		registry: cfg.Registry,

		connectionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "connections_total",
			Help:      "Total number of accepted connections",
		}),
		activeConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "active_connections",
			Help:      "Number of currently open connections",
		}),
		playing: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "players_online",
			Help:      "Number of connections currently in the play state",
		}),
		statesReached: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "states_reached_total",
			Help:      "Connection state transitions by target state",
		}, []string{"state"}),
		packetsReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "packets_received_total",
			Help:      "Frames read from clients by connection state",
		}, []string{"state"}),
		packetsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "packets_sent_total",
			Help:      "Frames written to clients by connection state",
		}, []string{"state"}),
		connectionErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "connection_errors_total",
			Help:      "Connections aborted by a protocol or transport error, by kind",
		}, []string{"kind"}),
	}
}

func (m *Metrics) ConnectionOpened() {
	if m == nil {
		return
	}
	m.connectionsTotal.Inc()
	m.activeConnections.Inc()
}

func (m *Metrics) ConnectionClosed() {
	if m == nil {
		return
	}
	m.activeConnections.Dec()
}

func (m *Metrics) StateReached(state string) {
	if m == nil {
		return
	}
	m.statesReached.WithLabelValues(state).Inc()
}

func (m *Metrics) PlayerJoined() {
	if m == nil {
		return
	}
	m.playing.Inc()
}

func (m *Metrics) PlayerLeft() {
	if m == nil {
		return
	}
	m.playing.Dec()
}

func (m *Metrics) PacketReceived(state string) {
	if m == nil {
		return
	}
	m.packetsReceived.WithLabelValues(state).Inc()
}

func (m *Metrics) PacketSent(state string) {
	if m == nil {
		return
	}
	m.packetsSent.WithLabelValues(state).Inc()
}

func (m *Metrics) ConnectionFailed(kind string) {
	if m == nil {
		return
	}
	m.connectionErrors.WithLabelValues(kind).Inc()
}

// Handler serves /metrics in the Prometheus text format and /healthz.
func (m *Metrics) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return r
}
