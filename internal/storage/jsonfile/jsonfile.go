// Package jsonfile provides a storage.Storage implementation backed by a
// single JSON file holding an array of student objects.
//
// The file is opened and decoded on every GetStudents call. There is no
// cache and no shared mutable state, so one *Store can serve any number of
// concurrent requests.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aanand-mishra/student-records-api/internal/types"
)

// ParseError reports that the JSON source could not be read or decoded.
// Both a missing file and malformed content surface as a ParseError.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Store reads student records from Path.
type Store struct {
	Path string
}

// New returns a Store for the JSON file at path. The file is not touched
// until the first GetStudents call.
func New(path string) *Store {
	return &Store{Path: path}
}

// GetStudents opens the file, decodes the whole array and returns it in
// file order.
func (s *Store) GetStudents() ([]types.Student, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &ParseError{Path: s.Path, Err: err}
	}
	defer f.Close()

	dec := json.NewDecoder(f)

	var students []types.Student
	if err := dec.Decode(&students); err != nil {
		return nil, &ParseError{Path: s.Path, Err: err}
	}

	// The array must be the only value in the file.
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: s.Path, Err: errors.New("unexpected data after the students array")}
	}

	// A top-level `null` decodes into a nil slice; it is not an array.
	if students == nil {
		return nil, &ParseError{Path: s.Path, Err: errors.New("expected a JSON array of students")}
	}

	return students, nil
}
