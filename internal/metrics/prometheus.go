package metrics

import "github.com/prometheus/client_golang/prometheus"

// DefaultNamespace is the metrics namespace used when none is given.
const DefaultNamespace = "phoneledger"

// PrometheusCollector implements Collector backed by Prometheus.
type PrometheusCollector struct {
	operations     *prometheus.CounterVec
	phones         prometheus.Gauge
	employees      prometheus.Gauge
	phonesAssigned prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements Collector.
var _ Collector = (*PrometheusCollector)(nil)

// NewPrometheus creates a collector and registers its metrics with reg.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: metrics namespace (defaults to DefaultNamespace if empty)
//
// Registration panics if reg already holds metrics with the same names, so each
// registerer can back a single ledger per namespace.
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	p := &PrometheusCollector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Total ledger operations by operation and result.",
		}, []string{"op", "result"}),
		phones: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "phones",
			Help:      "Number of registered phones.",
		}),
		employees: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "employees",
			Help:      "Number of registered employees.",
		}),
		phonesAssigned: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "phones_assigned",
			Help:      "Number of phones currently held by an employee.",
		}),
	}

	reg.MustRegister(p.operations, p.phones, p.employees, p.phonesAssigned)

	return p
}

// RecordOperation increments the operation counter.
func (p *PrometheusCollector) RecordOperation(op, result string) {
	p.operations.WithLabelValues(op, result).Inc()
}

// SetPhones sets the registered phones gauge.
func (p *PrometheusCollector) SetPhones(count int) {
	p.phones.Set(float64(count))
}

// SetEmployees sets the registered employees gauge.
func (p *PrometheusCollector) SetEmployees(count int) {
	p.employees.Set(float64(count))
}

// SetPhonesAssigned sets the held phones gauge.
func (p *PrometheusCollector) SetPhonesAssigned(count int) {
	p.phonesAssigned.Set(float64(count))
}
