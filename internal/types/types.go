// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, filter and validation can all import types without
// depending on each other.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of a calendar date: "2001-09-14".
const DateLayout = "2006-01-02"

// Student represents one student record as stored in the JSON source.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON.
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. "phone", "past" and "major" are custom rules registered
//     by the validation package.
//
// The store never runs these rules on read: records coming from the JSON
// source are trusted as-is.
type Student struct {
	StudentID      int    `json:"student_id"      validate:"required"`
	PhoneNumber    string `json:"phone_number"    validate:"required,phone"`
	FirstName      string `json:"first_name"      validate:"required,min=1,max=50"`
	LastName       string `json:"last_name"       validate:"required,min=1,max=50"`
	DateOfBirth    Date   `json:"date_of_birth"   validate:"required,past"`
	Email          string `json:"email"           validate:"required,email"`
	Address        string `json:"address"         validate:"required,min=10,max=200"`
	EnrollmentYear int    `json:"enrollment_year" validate:"required,gte=2002"`
	Major          Major  `json:"major"           validate:"required,major"`
	Course         int    `json:"course"          validate:"required,min=1,max=5"`
	SpecialNotes   string `json:"special_notes,omitempty" validate:"omitempty,max=500"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Major
// ─────────────────────────────────────────────────────────────────────────────

// Major is the student's field of study. Only the constants below are
// valid values; use ParseMajor to turn user input into a Major.
type Major string

const (
	MajorInformatics Major = "informatics"
	MajorEconomics   Major = "economics"
	MajorLaw         Major = "law"
	MajorMedicine    Major = "medicine"
	MajorEngineering Major = "engineering"
	MajorLanguages   Major = "languages"
)

// Majors lists every valid Major in a stable order.
var Majors = []Major{
	MajorInformatics,
	MajorEconomics,
	MajorLaw,
	MajorMedicine,
	MajorEngineering,
	MajorLanguages,
}

// ParseMajor matches s against the known majors, ignoring case.
func ParseMajor(s string) (Major, error) {
	candidate := Major(strings.ToLower(s))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("unknown major %q", s)
}

// Valid reports whether m is one of the known majors. The comparison is
// exact: "Law" is not valid, ParseMajor("Law") is.
func (m Major) Valid() bool {
	for _, known := range Majors {
		if m == known {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Date
// ─────────────────────────────────────────────────────────────────────────────

// Date is a calendar date without a time of day. It is encoded in JSON as
// a "YYYY-MM-DD" string.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

// String returns the date as "YYYY-MM-DD", or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date_of_birth: %w", err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
