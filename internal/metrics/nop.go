package metrics

// NopMetrics discards all measurements.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements Collector.
var _ Collector = (*NopMetrics)(nil)

// NewNop creates a new no-op collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordOperation discards the operation.
func (n *NopMetrics) RecordOperation(_ /* op */, _ /* result */ string) {}

// SetPhones discards the count.
func (n *NopMetrics) SetPhones(_ int) {}

// SetEmployees discards the count.
func (n *NopMetrics) SetEmployees(_ int) {}

// SetPhonesAssigned discards the count.
func (n *NopMetrics) SetPhonesAssigned(_ int) {}
