// Package models defines the records tracked by the phone ledger.
//
// # Models
//
//   - Phone: a physical device, identified by a caller-supplied ID
//   - Employee: a person eligible to hold at most one phone
//
// # Design Principles
//
// 1. **Caller-owned IDs**: IDs are chosen by the caller and never generated here
// 2. **Relationships by ID**: a Phone references its holder by employee ID, not by pointer
// 3. **Value records**: records are copied into and out of the ledger, so a copy held
// by a caller can never change ledger state
package models
