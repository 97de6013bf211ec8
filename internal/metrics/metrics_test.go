package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNopMetrics(t *testing.T) {
	m := NewNop()

	require.NotPanics(t, func() {
		m.RecordOperation(OpAssign, ResultOK)
		m.RecordOperation("", "")
		m.SetPhones(3)
		m.SetEmployees(-1)
		m.SetPhonesAssigned(0)
	})
}

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "")

	m.RecordOperation(OpAssign, ResultOK)
	m.RecordOperation(OpAssign, ResultOK)
	m.RecordOperation(OpAssign, ResultAlreadyAssigned)
	m.SetPhones(4)
	m.SetEmployees(2)
	m.SetPhonesAssigned(1)

	require.InDelta(t, 2, testutil.ToFloat64(m.operations.WithLabelValues(OpAssign, ResultOK)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.operations.WithLabelValues(OpAssign, ResultAlreadyAssigned)), 0)
	require.InDelta(t, 4, testutil.ToFloat64(m.phones), 0)
	require.InDelta(t, 2, testutil.ToFloat64(m.employees), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.phonesAssigned), 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.ElementsMatch(t, []string{
		"phoneledger_ledger_operations_total",
		"phoneledger_ledger_phones",
		"phoneledger_ledger_employees",
		"phoneledger_ledger_phones_assigned",
	}, names)
}

func TestPrometheusCollector_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheus(reg, "inventory")

	require.Panics(t, func() {
		NewPrometheus(reg, "inventory")
	})
	require.NotPanics(t, func() {
		NewPrometheus(reg, "other")
	})
}

func TestNewPrometheus_NilRegistererUsesDefault(t *testing.T) {
	reg := prometheus.NewRegistry()
	prev := prometheus.DefaultRegisterer
	prometheus.DefaultRegisterer = reg
	t.Cleanup(func() { prometheus.DefaultRegisterer = prev })

	m := NewPrometheus(nil, "fallback")
	m.SetEmployees(3)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "fallback_ledger_employees" {
			require.InDelta(t, 3, f.GetMetric()[0].GetGauge().GetValue(), 0)
			return
		}
	}
	t.Fatal("fallback_ledger_employees not registered with the default registerer")
}
