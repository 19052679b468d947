// Package observability provides Prometheus metrics and OpenTelemetry
// tracing instrumentation for the server.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// COMMAND METRICS
// =============================================================================

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "remoting_commands_total",
			Help: "Total number of commands executed by the server",
		},
		[]string{"command", "outcome"}, // outcome: ok, access-error, attribute-error, operation-error, execution-error, error
	)

	commandDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "remoting_command_duration_seconds",
			Help:    "Command execution duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"command"},
	)
)

// =============================================================================
// TABLE AND CONNECTION METRICS
// =============================================================================

var (
	tableSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "remoting_table_size",
		Help: "Number of live handle entries in the server object table",
	})

	connectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "remoting_connections_active",
		Help: "Number of open client connections",
	})
)

// =============================================================================
// PUBLIC API
// =============================================================================

// RecordCommand records the outcome and duration of one executed command.
// durationMS is milliseconds; sub-millisecond timings are expected to be
// common for in-process table operations.
func RecordCommand(command string, outcome string, durationMS float64) {
	commandsTotal.WithLabelValues(command, outcome).Inc()
	commandDurationSeconds.WithLabelValues(command).Observe(durationMS / 1000.0)
}

// SetTableSize reports the current number of live handles.
func SetTableSize(n int) {
	tableSize.Set(float64(n))
}

// ConnectionOpened records a new client connection.
func ConnectionOpened() {
	connectionsActive.Inc()
}

// ConnectionClosed records a client connection ending.
func ConnectionClosed() {
	connectionsActive.Dec()
}
