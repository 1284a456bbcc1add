// Package filter narrows a student collection down to the records that
// match a set of criteria.
//
// Every filter is a single linear scan. Criteria are combined with AND;
// a nil criterion does not filter. The result keeps source order.
package filter

import (
	"strings"

	"github.com/aanand-mishra/student-records-api/internal/types"
)

// Criteria describes which records to keep. Nil fields match everything.
type Criteria struct {
	Course         *int
	Major          *types.Major
	EnrollmentYear *int
	StudentID      *int
}

// Match reports whether s satisfies every non-nil criterion.
func (c Criteria) Match(s types.Student) bool {
	if c.Course != nil && s.Course != *c.Course {
		return false
	}
	if c.Major != nil && !strings.EqualFold(string(s.Major), string(*c.Major)) {
		return false
	}
	if c.EnrollmentYear != nil && s.EnrollmentYear != *c.EnrollmentYear {
		return false
	}
	if c.StudentID != nil && s.StudentID != *c.StudentID {
		return false
	}
	return true
}

// Apply returns the students matching c. It never returns nil, so an
// empty result encodes as [] rather than null.
func Apply(students []types.Student, c Criteria) []types.Student {
	matched := make([]types.Student, 0, len(students))
	for _, s := range students {
		if c.Match(s) {
			matched = append(matched, s)
		}
	}
	return matched
}

// ByCourse keeps students enrolled in the given course.
func ByCourse(students []types.Student, course int) []types.Student {
	return Apply(students, Criteria{Course: &course})
}

// ByStudentID keeps students with the given identifier. Identifiers are
// expected to be unique, but every match is returned.
func ByStudentID(students []types.Student, id int) []types.Student {
	return Apply(students, Criteria{StudentID: &id})
}
