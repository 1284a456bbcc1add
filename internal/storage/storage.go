// Package storage defines the Storage interface — the contract any record
// source must satisfy to back the HTTP API.
//
// WHY AN INTERFACE?
// ─────────────────
// Handlers should not know or care whether records come from a JSON file
// or a SQLite database. By depending only on this interface:
//
//   - Switching sources = pick another implementation in main.go.
//     Zero handler changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
//
// Implementations live in sub-packages: jsonfile (the default) and sqlite.
package storage

import "github.com/aanand-mishra/student-records-api/internal/types"

// Storage is the read-only record source contract.
type Storage interface {
	// GetStudents returns every student record in source order.
	// Returns an empty slice (not nil) if there are no students.
	//
	// Implementations must not cache: every call reflects the current
	// contents of the underlying source.
	GetStudents() ([]types.Student, error)
}
