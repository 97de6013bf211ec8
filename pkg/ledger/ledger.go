package ledger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/azhdrake/phoneledger/internal/metrics"
	"github.com/azhdrake/phoneledger/internal/storage"
	"github.com/azhdrake/phoneledger/internal/storage/memory"
	"github.com/azhdrake/phoneledger/pkg/models"
)

// Ledger records phone assignments for a set of registered phones and employees.
type Ledger struct {
	mu       sync.Mutex
	store    storage.Store
	logger   *slog.Logger
	metrics  metrics.Collector
	assigned int
}

// New creates an empty Ledger.
func New(opts ...Option) *Ledger {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	var collector metrics.Collector = metrics.NewNop()
	if o.metrics {
		collector = metrics.NewPrometheus(o.registerer, o.namespace)
	}

	return &Ledger{
		store:   memory.New(),
		logger:  logger,
		metrics: collector,
	}
}

// AddEmployee registers an employee.
// Returns ErrDuplicateID if an employee with the same ID is already registered.
func (l *Ledger) AddEmployee(employee models.Employee) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.store.FindEmployee(employee.ID); exists {
		return l.reject(metrics.OpAddEmployee, metrics.ResultDuplicateID,
			fmt.Errorf("%w: employee %q", ErrDuplicateID, employee.ID),
			"employee_id", employee.ID,
		)
	}

	l.store.InsertEmployee(employee)
	l.metrics.RecordOperation(metrics.OpAddEmployee, metrics.ResultOK)
	l.metrics.SetEmployees(l.store.EmployeeCount())

	l.logger.Debug("Employee added", "employee_id", employee.ID, "name", employee.Name)
	return nil
}

// AddPhone registers a phone. A phone that already has a holder is stored as-is.
//
// Returns:
//   - ErrDuplicateID if a phone with the same ID is already registered
//   - ErrEmployeeHasPhone if the phone's holder already holds a registered phone
func (l *Ledger) AddPhone(phone models.Phone) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.store.FindPhone(phone.ID); exists {
		return l.reject(metrics.OpAddPhone, metrics.ResultDuplicateID,
			fmt.Errorf("%w: phone %q", ErrDuplicateID, phone.ID),
			"phone_id", phone.ID,
		)
	}

	if holder, held := phone.EmployeeID(); held {
		if other, taken := l.store.FindPhoneHeldBy(holder); taken {
			return l.reject(metrics.OpAddPhone, metrics.ResultEmployeeHasPhone,
				fmt.Errorf("%w: employee %q holds phone %q", ErrEmployeeHasPhone, holder, other.ID),
				"phone_id", phone.ID, "employee_id", holder, "held_phone_id", other.ID,
			)
		}
	}

	l.store.InsertPhone(phone)
	if phone.IsAssigned() {
		l.assigned++
		l.metrics.SetPhonesAssigned(l.assigned)
	}
	l.metrics.RecordOperation(metrics.OpAddPhone, metrics.ResultOK)
	l.metrics.SetPhones(l.store.PhoneCount())

	l.logger.Debug("Phone added", "phone_id", phone.ID, "make", phone.Make, "model", phone.Model)
	return nil
}

// Assign makes employee the holder of the phone with the given ID.
//
// Assigning a phone to the employee who already holds it is a no-op. The
// employee does not have to be registered; only its ID is recorded.
//
// Returns:
//   - ErrPhoneNotFound if no phone has the given ID
//   - ErrAlreadyAssigned if the phone is held by a different employee
//   - ErrEmployeeHasPhone if the employee already holds another phone
func (l *Ledger) Assign(phoneID string, employee models.Employee) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	phone, ok := l.store.FindPhone(phoneID)
	if !ok {
		return l.reject(metrics.OpAssign, metrics.ResultNotFound,
			fmt.Errorf("%w: %q", ErrPhoneNotFound, phoneID),
			"phone_id", phoneID, "employee_id", employee.ID,
		)
	}

	if phone.HeldBy(employee.ID) {
		l.metrics.RecordOperation(metrics.OpAssign, metrics.ResultNoop)
		l.logger.Debug("Phone already held by employee", "phone_id", phoneID, "employee_id", employee.ID)
		return nil
	}

	if holder, held := phone.EmployeeID(); held {
		return l.reject(metrics.OpAssign, metrics.ResultAlreadyAssigned,
			fmt.Errorf("%w: phone %q is held by employee %q", ErrAlreadyAssigned, phoneID, holder),
			"phone_id", phoneID, "employee_id", employee.ID, "holder_id", holder,
		)
	}

	if other, held := l.store.FindPhoneHeldBy(employee.ID); held {
		return l.reject(metrics.OpAssign, metrics.ResultEmployeeHasPhone,
			fmt.Errorf("%w: employee %q holds phone %q", ErrEmployeeHasPhone, employee.ID, other.ID),
			"phone_id", phoneID, "employee_id", employee.ID, "held_phone_id", other.ID,
		)
	}

	phone.Assign(employee.ID)
	l.store.UpdatePhone(phone)
	l.assigned++
	l.metrics.RecordOperation(metrics.OpAssign, metrics.ResultOK)
	l.metrics.SetPhonesAssigned(l.assigned)

	l.logger.Info("Phone assigned", "phone_id", phoneID, "employee_id", employee.ID)
	return nil
}

// Unassign clears the holder of the phone with the given ID.
// It never fails: unknown IDs and unassigned phones are left alone.
func (l *Ledger) Unassign(phoneID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	phone, ok := l.store.FindPhone(phoneID)
	if !ok {
		l.metrics.RecordOperation(metrics.OpUnassign, metrics.ResultNotFound)
		l.logger.Debug("Unassign of unknown phone ignored", "phone_id", phoneID)
		return
	}

	holder, held := phone.EmployeeID()
	if !held {
		l.metrics.RecordOperation(metrics.OpUnassign, metrics.ResultNoop)
		l.logger.Debug("Phone already unassigned", "phone_id", phoneID)
		return
	}

	phone.Unassign()
	l.store.UpdatePhone(phone)
	l.assigned--
	l.metrics.RecordOperation(metrics.OpUnassign, metrics.ResultOK)
	l.metrics.SetPhonesAssigned(l.assigned)

	l.logger.Info("Phone unassigned", "phone_id", phoneID, "employee_id", holder)
}

// PhoneInfo returns a copy of the phone held by employee.
// Returns nil and no error if the employee holds no phone.
// Returns ErrUnknownEmployee if the employee is not registered.
func (l *Ledger) PhoneInfo(employee models.Employee) (*models.Phone, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.store.FindEmployee(employee.ID); !exists {
		return nil, l.reject(metrics.OpPhoneInfo, metrics.ResultUnknownEmployee,
			fmt.Errorf("%w: %q", ErrUnknownEmployee, employee.ID),
			"employee_id", employee.ID,
		)
	}

	l.metrics.RecordOperation(metrics.OpPhoneInfo, metrics.ResultOK)

	phone, held := l.store.FindPhoneHeldBy(employee.ID)
	if !held {
		l.logger.Debug("Employee holds no phone", "employee_id", employee.ID)
		return nil, nil
	}

	l.logger.Debug("Phone found for employee", "employee_id", employee.ID, "phone_id", phone.ID)
	return &phone, nil
}

// Phones returns the registered phones in registration order.
func (l *Ledger) Phones() []models.Phone {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Phones()
}

// Employees returns the registered employees in registration order.
func (l *Ledger) Employees() []models.Employee {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Employees()
}

// reject records and logs a failed operation, then returns err.
// The caller gets the error, so the log line stays at Debug.
func (l *Ledger) reject(op, result string, err error, attrs ...any) error {
	l.metrics.RecordOperation(op, result)
	l.logger.Debug("Ledger operation rejected", append([]any{"op", op, "error", err}, attrs...)...)
	return err
}
