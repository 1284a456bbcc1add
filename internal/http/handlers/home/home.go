// Package home holds the handlers that do not touch student records.
package home

import (
	"net/http"

	"github.com/aanand-mishra/student-records-api/internal/utils/response"
)

// Index handles GET / with a fixed greeting.
func Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
	}
}

// Healthz handles GET /healthz. It reports liveness only; the record
// source is not read.
func Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": response.StatusOK})
	}
}
