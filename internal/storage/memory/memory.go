// Package memory provides an in-memory implementation of the storage.Store interface.
package memory

import (
	"slices"

	"github.com/azhdrake/phoneledger/internal/storage"
	"github.com/azhdrake/phoneledger/pkg/models"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store with two ordered slices.
// It is not safe for concurrent use; callers serialize access.
type MemoryStore struct {
	phones    []models.Phone
	employees []models.Employee
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{}
}

// InsertPhone appends a phone to the phone collection.
func (s *MemoryStore) InsertPhone(phone models.Phone) {
	s.phones = append(s.phones, phone)
}

// FindPhone returns the first phone with the given ID.
func (s *MemoryStore) FindPhone(id string) (models.Phone, bool) {
	i := s.phoneIndex(id)
	if i < 0 {
		return models.Phone{}, false
	}
	return s.phones[i], true
}

// UpdatePhone replaces the stored phone with the same ID.
func (s *MemoryStore) UpdatePhone(phone models.Phone) bool {
	i := s.phoneIndex(phone.ID)
	if i < 0 {
		return false
	}
	s.phones[i] = phone
	return true
}

// FindPhoneHeldBy returns the first phone held by the given employee ID.
func (s *MemoryStore) FindPhoneHeldBy(employeeID string) (models.Phone, bool) {
	i := slices.IndexFunc(s.phones, func(p models.Phone) bool {
		return p.HeldBy(employeeID)
	})
	if i < 0 {
		return models.Phone{}, false
	}
	return s.phones[i], true
}

// Phones returns a copy of the phone collection.
func (s *MemoryStore) Phones() []models.Phone {
	return slices.Clone(s.phones)
}

// PhoneCount returns the number of phones.
func (s *MemoryStore) PhoneCount() int {
	return len(s.phones)
}

// InsertEmployee appends an employee to the employee collection.
func (s *MemoryStore) InsertEmployee(employee models.Employee) {
	s.employees = append(s.employees, employee)
}

// FindEmployee returns the first employee with the given ID.
func (s *MemoryStore) FindEmployee(id string) (models.Employee, bool) {
	i := slices.IndexFunc(s.employees, func(e models.Employee) bool {
		return e.ID == id
	})
	if i < 0 {
		return models.Employee{}, false
	}
	return s.employees[i], true
}

// Employees returns a copy of the employee collection.
func (s *MemoryStore) Employees() []models.Employee {
	return slices.Clone(s.employees)
}

// EmployeeCount returns the number of employees.
func (s *MemoryStore) EmployeeCount() int {
	return len(s.employees)
}

func (s *MemoryStore) phoneIndex(id string) int {
	return slices.IndexFunc(s.phones, func(p models.Phone) bool {
		return p.ID == id
	})
}
