// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler in this application sends JSON back to the client.
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/aanand-mishra/student-records-api/internal/validation"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the standard envelope returned for error cases.
//
// Success responses may return any JSON shape (a record, a list…).
// Error responses always look like:
//
//	{ "status": "error", "error": "invalid course: must be an integer" }
//
// Validation failures additionally carry one entry per failed rule:
//
//	{ "status": "error", "error": "...", "violations": [ {...}, ... ] }
//
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status     string                 `json:"status"`
	Error      string                 `json:"error,omitempty"`
	Violations []validation.Violation `json:"violations,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes data as JSON with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into our standard Response shape.
// Use this for unexpected errors (store failures, bad parameters, etc.)
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError turns a *validation.Error into a Response listing every
// violation. Error holds the same messages joined with ", " for clients
// that only read that field.
func ValidationError(err *validation.Error) Response {
	return Response{
		Status:     StatusError,
		Error:      err.Error(),
		Violations: err.Violations,
	}
}
