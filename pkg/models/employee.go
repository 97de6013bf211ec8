package models

import "fmt"

// Employee represents a person who may hold a phone.
type Employee struct {
	// ID is the unique identifier for the employee (caller-supplied, immutable).
	ID string

	// Name is the display name of the employee.
	Name string
}

// NewEmployee creates an Employee with the given ID and name.
func NewEmployee(id, name string) Employee {
	return Employee{ID: id, Name: name}
}

func (e Employee) String() string {
	return fmt.Sprintf("ID: %s Name %s", e.ID, e.Name)
}
