package ledger

import "errors"

var (
	// ErrDuplicateID is returned when a phone or employee is registered with an
	// ID already present in its collection.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrAlreadyAssigned is returned when assigning a phone held by another employee.
	ErrAlreadyAssigned = errors.New("phone already held by another employee")

	// ErrEmployeeHasPhone is returned when assigning a phone to an employee who
	// already holds a different phone.
	ErrEmployeeHasPhone = errors.New("employee already holds a different phone")

	// ErrUnknownEmployee is returned when querying an employee that was never registered.
	ErrUnknownEmployee = errors.New("unknown employee")

	// ErrPhoneNotFound is returned when assigning a phone ID that was never registered.
	ErrPhoneNotFound = errors.New("phone not found")
)
