// Package validation checks candidate student records against the rules
// declared in the validate:"..." tags of types.Student.
//
// On top of the built-in go-playground/validator rules it registers:
//
//	phone — "+" followed by 1 to 15 digits
//	past  — a calendar date strictly before today
//	major — one of the types.Majors values
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/aanand-mishra/student-records-api/internal/types"
	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+\d{1,15}$`)

// Violation describes one failed rule on one field.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Error is returned by Validate when at least one rule fails.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, ", ")
}

// Validator wraps a configured *validator.Validate. It is safe for
// concurrent use once built.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New returns a Validator whose "past" rule compares against the wall clock.
func New() *Validator {
	return NewWithClock(time.Now)
}

// NewWithClock returns a Validator whose "past" rule compares against now().
func NewWithClock(now func() time.Time) *Validator {
	v := &Validator{
		validate: validator.New(),
		now:      now,
	}

	// Report JSON names ("phone_number") instead of Go names ("PhoneNumber").
	v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// types.Date is validated as the time.Time it wraps.
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(types.Date); ok {
			return d.Time
		}
		return nil
	}, types.Date{})

	rules := map[string]validator.Func{
		"phone": validatePhone,
		"past":  v.validatePast,
		"major": validateMajor,
	}
	for tag, fn := range rules {
		if err := v.validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validation.NewWithClock: register %q: %v", tag, err))
		}
	}

	return v
}

// Validate returns nil if s satisfies every rule, or an *Error listing
// each violation in field order.
func (v *Validator) Validate(s types.Student) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate student: %w", err)
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		})
	}
	return &Error{Violations: violations}
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validateMajor(fl validator.FieldLevel) bool {
	return types.Major(fl.Field().String()).Valid()
}

// validatePast compares calendar dates only: a birth date equal to today
// fails, yesterday passes.
func (v *Validator) validatePast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field %s is required", fe.Field())
	case "email":
		return fmt.Sprintf("field %s must be a valid email address", fe.Field())
	case "phone":
		return fmt.Sprintf("field %s must start with + followed by 1 to 15 digits", fe.Field())
	case "past":
		return fmt.Sprintf("field %s must be a date in the past", fe.Field())
	case "major":
		return fmt.Sprintf("field %s must be one of %s", fe.Field(), majorList())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("field %s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("field %s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("field %s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("field %s must be at most %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("field %s must be %s or greater", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field %s is invalid", fe.Field())
	}
}

func majorList() string {
	names := make([]string, len(types.Majors))
	for i, m := range types.Majors {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
