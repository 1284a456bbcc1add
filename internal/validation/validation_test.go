package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aanand-mishra/student-records-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

func newValidator() *Validator {
	return NewWithClock(func() time.Time { return fixedNow })
}

func validStudent() types.Student {
	return types.Student{
		StudentID:      1,
		PhoneNumber:    "+71234567890",
		FirstName:      "Ivan",
		LastName:       "Ivanov",
		DateOfBirth:    types.NewDate(1998, time.May, 15),
		Email:          "ivan@example.com",
		Address:        "Moscow, Lenina st. 10",
		EnrollmentYear: 2017,
		Major:          types.MajorInformatics,
		Course:         3,
	}
}

// violations returns the failed rules keyed by field name.
func violations(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)

	out := make(map[string]string, len(verr.Violations))
	for _, v := range verr.Violations {
		out[v.Field] = v.Rule
	}
	return out
}

func TestNewRegistersCustomRules(t *testing.T) {
	var v *Validator
	require.NotPanics(t, func() { v = New() })

	s := validStudent()
	s.PhoneNumber = "nope"
	s.Major = "astrology"
	got := violations(t, v.Validate(s))
	assert.Equal(t, "phone", got["phone_number"])
	assert.Equal(t, "major", got["major"])
}

func TestValidStudentPasses(t *testing.T) {
	assert.NoError(t, newValidator().Validate(validStudent()))
}

func TestPhoneNumber(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"+1", true},
		{"+123456789012345", true},
		{"+1234567890123456", false},
		{"+", false},
		{"123456", false},
		{"+12 34", false},
		{"+12a4", false},
	}

	v := newValidator()
	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			s := validStudent()
			s.PhoneNumber = tc.phone
			err := v.Validate(s)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, "phone", violations(t, err)["phone_number"])
		})
	}
}

func TestDateOfBirthMustBeInThePast(t *testing.T) {
	v := newValidator()

	t.Run("today fails", func(t *testing.T) {
		s := validStudent()
		s.DateOfBirth = types.NewDate(2024, time.March, 10)
		assert.Equal(t, "past", violations(t, v.Validate(s))["date_of_birth"])
	})

	t.Run("tomorrow fails", func(t *testing.T) {
		s := validStudent()
		s.DateOfBirth = types.NewDate(2024, time.March, 11)
		assert.Equal(t, "past", violations(t, v.Validate(s))["date_of_birth"])
	})

	t.Run("yesterday passes", func(t *testing.T) {
		s := validStudent()
		s.DateOfBirth = types.NewDate(2024, time.March, 9)
		assert.NoError(t, v.Validate(s))
	})

	t.Run("missing is required", func(t *testing.T) {
		s := validStudent()
		s.DateOfBirth = types.Date{}
		assert.Equal(t, "required", violations(t, v.Validate(s))["date_of_birth"])
	})
}

func TestFieldConstraints(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*types.Student)
		field  string
		rule   string
	}{
		{"empty first name", func(s *types.Student) { s.FirstName = "" }, "first_name", "required"},
		{"long last name", func(s *types.Student) { s.LastName = strings.Repeat("a", 51) }, "last_name", "max"},
		{"bad email", func(s *types.Student) { s.Email = "not-an-email" }, "email", "email"},
		{"short address", func(s *types.Student) { s.Address = "Short" }, "address", "min"},
		{"long address", func(s *types.Student) { s.Address = strings.Repeat("a", 201) }, "address", "max"},
		{"early enrollment", func(s *types.Student) { s.EnrollmentYear = 2001 }, "enrollment_year", "gte"},
		{"unknown major", func(s *types.Student) { s.Major = "astrology" }, "major", "major"},
		{"capitalised major", func(s *types.Student) { s.Major = "Law" }, "major", "major"},
		{"course too high", func(s *types.Student) { s.Course = 6 }, "course", "max"},
		{"course missing", func(s *types.Student) { s.Course = 0 }, "course", "required"},
		{"long notes", func(s *types.Student) { s.SpecialNotes = strings.Repeat("n", 501) }, "special_notes", "max"},
		{"missing id", func(s *types.Student) { s.StudentID = 0 }, "student_id", "required"},
	}

	v := newValidator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validStudent()
			tc.mutate(&s)
			assert.Equal(t, tc.rule, violations(t, v.Validate(s))[tc.field])
		})
	}
}

func TestBoundaryValuesPass(t *testing.T) {
	s := validStudent()
	s.FirstName = "A"
	s.LastName = strings.Repeat("b", 50)
	s.Address = strings.Repeat("c", 10)
	s.EnrollmentYear = 2002
	s.Course = 5
	s.SpecialNotes = strings.Repeat("n", 500)

	assert.NoError(t, newValidator().Validate(s))
}

func TestErrorListsEveryViolation(t *testing.T) {
	err := newValidator().Validate(types.Student{})
	got := violations(t, err)

	for _, field := range []string{
		"student_id", "phone_number", "first_name", "last_name", "date_of_birth",
		"email", "address", "enrollment_year", "major", "course",
	} {
		assert.Equal(t, "required", got[field], field)
	}
	assert.NotContains(t, got, "special_notes")
	assert.Contains(t, err.Error(), "field phone_number is required")
}
