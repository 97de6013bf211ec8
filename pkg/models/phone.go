package models

import "fmt"

// Phone represents a physical device that can be held by at most one employee.
//
// The holder is private state. The zero Phone is unassigned; Assign and
// Unassign are the only ways to change it.
type Phone struct {
	// ID is the unique identifier for the phone (caller-supplied, immutable).
	ID string

	// Make is the manufacturer (e.g., "Apple").
	Make string

	// Model is the device model (e.g., "iPhone 6").
	Model string

	employeeID string
	assigned   bool
}

// NewPhone creates an unassigned Phone.
func NewPhone(id, manufacturer, model string) Phone {
	return Phone{ID: id, Make: manufacturer, Model: model}
}

// Assign records employeeID as the holder of the phone.
func (p *Phone) Assign(employeeID string) {
	p.employeeID = employeeID
	p.assigned = true
}

// Unassign clears the holder. It is a no-op on an unassigned phone.
func (p *Phone) Unassign() {
	p.employeeID = ""
	p.assigned = false
}

// IsAssigned reports whether the phone is held by anyone.
func (p Phone) IsAssigned() bool {
	return p.assigned
}

// EmployeeID returns the ID of the holder and whether the phone is held at all.
func (p Phone) EmployeeID() (string, bool) {
	return p.employeeID, p.assigned
}

// HeldBy reports whether the phone is held by the employee with the given ID.
func (p Phone) HeldBy(employeeID string) bool {
	return p.assigned && p.employeeID == employeeID
}

func (p Phone) String() string {
	holder := "none"
	if p.assigned {
		holder = p.employeeID
	}
	return fmt.Sprintf("ID: %s Make: %s Model: %s Assigned to Employee ID: %s", p.ID, p.Make, p.Model, holder)
}
