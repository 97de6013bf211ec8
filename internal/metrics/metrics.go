// Package metrics records ledger activity.
//
// Two collectors are provided: a no-op collector, used when the caller does not
// supply a Prometheus registerer, and a Prometheus-backed collector.
package metrics

// Operation names used as the "op" label.
const (
	OpAddPhone    = "add_phone"
	OpAddEmployee = "add_employee"
	OpAssign      = "assign"
	OpUnassign    = "unassign"
	OpPhoneInfo   = "phone_info"
)

// Operation results used as the "result" label.
const (
	ResultOK               = "ok"
	ResultNoop             = "noop"
	ResultDuplicateID      = "duplicate_id"
	ResultAlreadyAssigned  = "already_assigned"
	ResultEmployeeHasPhone = "employee_has_phone"
	ResultUnknownEmployee  = "unknown_employee"
	ResultNotFound         = "not_found"
)

// Collector receives ledger measurements.
type Collector interface {
	// RecordOperation counts one ledger operation and its outcome.
	RecordOperation(op, result string)

	// SetPhones reports the number of registered phones.
	SetPhones(count int)

	// SetEmployees reports the number of registered employees.
	SetEmployees(count int)

	// SetPhonesAssigned reports the number of phones currently held.
	SetPhonesAssigned(count int)
}
