package ledger

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Ledger.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	metrics    bool
	registerer prometheus.Registerer
	namespace  string
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRegisterer enables Prometheus metrics registered with reg.
// A nil reg means prometheus.DefaultRegisterer. Without this option, no
// metrics are recorded.
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	l := ledger.New(ledger.WithRegisterer(reg), ledger.WithNamespace("hq"))
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.metrics = true
		o.registerer = reg
	}
}

// WithNamespace sets the Prometheus namespace (default "phoneledger").
// It has no effect without WithRegisterer.
func WithNamespace(namespace string) Option {
	return func(o *options) {
		o.namespace = namespace
	}
}
