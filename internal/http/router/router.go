// Package router builds the application's route table.
//
// Route table:
//
//	GET  /                     → greeting
//	GET  /healthz              → liveness probe
//	GET  /students             → all students, optional ?course=
//	GET  /students/{course}    → one course, optional ?major= &enrollment_year=
//	GET  /students/id          → by ?student_id=
//	GET  /students/id/{id}     → by path id
//	POST /students/validate    → check a candidate record
//
// "GET /students/id" and "GET /students/{course}" overlap; ServeMux picks
// the literal segment because it is more specific.
package router

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/student-records-api/internal/http/handlers/home"
	"github.com/aanand-mishra/student-records-api/internal/http/handlers/student"
	"github.com/aanand-mishra/student-records-api/internal/http/middleware"
	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/validation"
)

// Options carries the dependencies handlers are built from.
type Options struct {
	Storage               storage.Storage
	Validator             *validation.Validator
	DefaultEnrollmentYear int
	Logger                *slog.Logger
}

// New returns the fully wired handler, request logging included.
func New(opts Options) http.Handler {
	if opts.Validator == nil {
		opts.Validator = validation.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	mux := http.NewServeMux()

	// {$} anchors the pattern so "/" does not swallow unknown paths.
	mux.HandleFunc("GET /{$}", home.Index())
	mux.HandleFunc("GET /healthz", home.Healthz())

	mux.HandleFunc("GET /students", student.GetList(opts.Storage))
	mux.HandleFunc("GET /students/{course}", student.GetByCourse(opts.Storage, opts.DefaultEnrollmentYear))
	mux.HandleFunc("GET /students/id", student.GetByIDQuery(opts.Storage))
	mux.HandleFunc("GET /students/id/{id}", student.GetByID(opts.Storage))
	mux.HandleFunc("POST /students/validate", student.Validate(opts.Validator))

	return middleware.Logging(opts.Logger, mux)
}
