// Package student contains all HTTP handlers related to the Student resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// To inject dependencies (the record store, the validator) we use a
// factory function that accepts them and returns a function with exactly
// that signature:
//
//	router.HandleFunc("GET /students", student.GetList(storage))
//
// Every list handler loads the full record set from storage on each
// request and narrows it with the filter package. Nothing is cached.
package student

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/student-records-api/internal/filter"
	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/types"
	"github.com/aanand-mishra/student-records-api/internal/utils/response"
	"github.com/aanand-mishra/student-records-api/internal/validation"
)

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /students?course=<int>
// Returns every student, or only those in the given course.
//
// Success response (200 OK):
//
//	[ { "student_id": 1, "course": 2, ... }, ... ]
//
// Error responses:
//
//	400 Bad Request  — course is not an integer
//	500 Internal     — the record source is missing or malformed
//
// ─────────────────────────────────────────────────────────────────────────────
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		course, err := queryInt(r, "course")
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		slog.Info("listing students", slog.String("query", r.URL.RawQuery))

		students, ok := loadStudents(w, storage)
		if !ok {
			return
		}

		if course != nil {
			students = filter.ByCourse(students, *course)
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByCourse handles GET /students/{course}?major=<string>&enrollment_year=<int>
// Returns the students of one course, optionally narrowed by major
// (case-insensitive) and enrollment year.
//
// When enrollment_year is omitted, defaultYear applies if it is non-zero;
// a zero defaultYear means "no year filter".
//
// Error responses:
//
//	400 Bad Request  — course or enrollment_year is not an integer,
//	                   or major is not a known major
//	500 Internal     — the record source is missing or malformed
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByCourse(storage storage.Storage, defaultYear int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		course, err := strconv.Atoi(r.PathValue("course"))
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid course: must be an integer")))
			return
		}

		criteria := filter.Criteria{Course: &course}

		if raw := r.URL.Query().Get("major"); raw != "" {
			major, err := types.ParseMajor(raw)
			if err != nil {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
				return
			}
			criteria.Major = &major
		}

		year, err := queryInt(r, "enrollment_year")
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		if year == nil && defaultYear != 0 {
			year = &defaultYear
		}
		criteria.EnrollmentYear = year

		slog.Info("listing students by course",
			slog.Int("course", course),
			slog.String("query", r.URL.RawQuery))

		students, ok := loadStudents(w, storage)
		if !ok {
			return
		}

		response.WriteJSON(w, http.StatusOK, filter.Apply(students, criteria))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /students/id/{id}
// Returns every student whose student_id equals {id}: normally one record,
// an empty array when there is no match.
//
// A student_id query parameter is tolerated for older clients but must
// agree with the path.
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}

		queryID, err := queryInt(r, "student_id")
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		if queryID != nil && *queryID != id {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(fmt.Errorf("student_id %d does not match path id %d", *queryID, id)))
			return
		}

		writeByID(w, storage, id)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByIDQuery handles GET /students/id?student_id=<int>
// Same result as GetByID, with the identifier taken from the query string.
// student_id is required.
// ─────────────────────────────────────────────────────────────────────────────
func GetByIDQuery(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := queryInt(r, "student_id")
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		if id == nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("student_id is required")))
			return
		}

		writeByID(w, storage, *id)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Validate handles POST /students/validate
// Checks a candidate record against the student schema without storing it.
//
// Success response (200 OK): the decoded record, echoed back.
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	                   (with one "violations" entry per failed rule)
//
// ─────────────────────────────────────────────────────────────────────────────
func Validate(v *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("validating a student")

		var student types.Student
		err := json.NewDecoder(r.Body).Decode(&student)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := v.Validate(student); err != nil {
			var verr *validation.Error
			if errors.As(err, &verr) {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(verr))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

func writeByID(w http.ResponseWriter, storage storage.Storage, id int) {
	slog.Info("getting students by id", slog.Int("student_id", id))

	students, ok := loadStudents(w, storage)
	if !ok {
		return
	}

	response.WriteJSON(w, http.StatusOK, filter.ByStudentID(students, id))
}

// loadStudents reads the full record set. On failure it writes a 500 and
// returns false; the caller must stop handling the request.
func loadStudents(w http.ResponseWriter, storage storage.Storage) ([]types.Student, bool) {
	students, err := storage.GetStudents()
	if err != nil {
		slog.Error("error loading students", slog.String("error", err.Error()))
		response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
		return nil, false
	}
	return students, true
}

// queryInt parses an optional integer query parameter. An absent or empty
// parameter yields nil.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: must be an integer", name)
	}
	return &n, nil
}
