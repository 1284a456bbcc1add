// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The HTTP API only ever reads from it. Rows are written by the
// student-import command, which loads a JSON source, validates it and
// calls ReplaceStudents.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/student-records-api/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a storage.Storage backed by a *sql.DB.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at path, creates the students table if it
// does not already exist, and returns a ready-to-use *SQLite.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe to run on every
	// startup. date_of_birth is stored as TEXT in YYYY-MM-DD form.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			student_id      INTEGER NOT NULL,
			phone_number    TEXT    NOT NULL,
			first_name      TEXT    NOT NULL,
			last_name       TEXT    NOT NULL,
			date_of_birth   TEXT    NOT NULL,
			email           TEXT    NOT NULL,
			address         TEXT    NOT NULL,
			enrollment_year INTEGER NOT NULL,
			major           TEXT    NOT NULL,
			course          INTEGER NOT NULL,
			special_notes   TEXT    NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the underlying connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// ReplaceStudents swaps the stored snapshot for students: existing rows are
// deleted and the new ones inserted inside one transaction, so readers see
// either the old set or the new one. Importing the same source twice
// leaves one copy of each record.
//
// student_id is deliberately not a key: the source may repeat identifiers.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) ReplaceStudents(students []types.Student) error {
	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("ReplaceStudents: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM students"); err != nil {
		return fmt.Errorf("ReplaceStudents: clear: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO students (
			student_id, phone_number, first_name, last_name, date_of_birth,
			email, address, enrollment_year, major, course, special_notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("ReplaceStudents: prepare: %w", err)
	}
	defer stmt.Close()

	for _, st := range students {
		_, err := stmt.Exec(
			st.StudentID,
			st.PhoneNumber,
			st.FirstName,
			st.LastName,
			st.DateOfBirth.String(),
			st.Email,
			st.Address,
			st.EnrollmentYear,
			string(st.Major),
			st.Course,
			st.SpecialNotes,
		)
		if err != nil {
			return fmt.Errorf("ReplaceStudents: exec student %d: %w", st.StudentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ReplaceStudents: commit: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetStudents returns all rows in insertion order (rowid), which matches
// the order of the JSON source they were imported from.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) GetStudents() ([]types.Student, error) {
	rows, err := s.Db.Query(`
		SELECT student_id, phone_number, first_name, last_name, date_of_birth,
		       email, address, enrollment_year, major, course, special_notes
		FROM students
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	// Returning [] instead of null in JSON is better API behaviour.
	students := make([]types.Student, 0)

	for rows.Next() {
		var (
			st    types.Student
			dob   string
			major string
		)

		if err := rows.Scan(
			&st.StudentID,
			&st.PhoneNumber,
			&st.FirstName,
			&st.LastName,
			&dob,
			&st.Email,
			&st.Address,
			&st.EnrollmentYear,
			&major,
			&st.Course,
			&st.SpecialNotes,
		); err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}

		if dob != "" {
			st.DateOfBirth, err = types.ParseDate(dob)
			if err != nil {
				return nil, fmt.Errorf("GetStudents: student %d: %w", st.StudentID, err)
			}
		}
		st.Major = types.Major(major)

		students = append(students, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}
