package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the API routes. Unknown paths and wrong methods get
// the same JSON envelope as every other error.
func NewRouter(analyze *AnalyzeHandler, health *HealthHandler, limiter *RateLimiter) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)

	router.Use(RequestLogMiddleware, RecoverMiddleware)

	router.HandleFunc("/health", health.Health).Methods(http.MethodGet)

	router.Handle(
		"/api/analyze",
		RateLimitMiddleware(limiter)(http.HandlerFunc(analyze.AnalyzeDebt)),
	).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, ErrorTypeNotFound, "Endpoint not found", nil)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorTypeMethodNotAllowed, "Method not allowed", nil)
	})

	return router
}
