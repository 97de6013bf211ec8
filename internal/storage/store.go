// Package storage provides abstractions for the ledger's record collections.
package storage

import "github.com/azhdrake/phoneledger/pkg/models"

// Store defines the collection operations the ledger is built on.
// Both collections preserve insertion order, and lookups scan in that order.
// A Store does not enforce uniqueness or assignment rules; the ledger does.
type Store interface {
	// InsertPhone appends a phone to the phone collection.
	InsertPhone(phone models.Phone)

	// FindPhone returns the first phone with the given ID.
	// Returns false if no phone matches.
	FindPhone(id string) (models.Phone, bool)

	// UpdatePhone replaces the stored phone with the same ID.
	// Returns false if no phone matches.
	UpdatePhone(phone models.Phone) bool

	// FindPhoneHeldBy returns the first phone held by the given employee ID.
	FindPhoneHeldBy(employeeID string) (models.Phone, bool)

	// Phones returns a copy of the phone collection in insertion order.
	Phones() []models.Phone

	// PhoneCount returns the number of phones.
	PhoneCount() int

	// InsertEmployee appends an employee to the employee collection.
	InsertEmployee(employee models.Employee)

	// FindEmployee returns the first employee with the given ID.
	FindEmployee(id string) (models.Employee, bool)

	// Employees returns a copy of the employee collection in insertion order.
	Employees() []models.Employee

	// EmployeeCount returns the number of employees.
	EmployeeCount() int
}
