// Package ledger tracks which employee holds which phone.
//
// A Ledger owns two ordered collections, phones and employees, and enforces a
// one-to-one-or-zero relationship between them: each employee holds at most one
// phone and each phone is held by at most one employee.
//
// # Lifecycle
//
// Records are registered once with AddPhone and AddEmployee; there is no removal.
// A phone's holder is the only mutable state:
//
//	Unassigned --Assign(e)--> AssignedTo(e)
//	AssignedTo(e) --Assign(e)--> AssignedTo(e)       (no-op)
//	AssignedTo(e) --Assign(e')--> rejected, ErrAlreadyAssigned
//	any --Unassign--> Unassigned
//
// # Errors
//
// Every failure is one of the sentinel errors in this package, wrapped with the
// offending IDs. Use errors.Is to match them. All checks run before any
// mutation, so a failed operation leaves the ledger unchanged.
//
// # Concurrency
//
// A Ledger is safe for concurrent use. Each operation holds a single lock for
// its full duration.
package ledger
