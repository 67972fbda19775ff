package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/labstack/gommon/log"
)

type ErrorType string

const (
	ErrorTypeValidation       ErrorType = "VALIDATION_ERROR"
	ErrorTypeServiceNotReady  ErrorType = "SERVICE_NOT_READY"
	ErrorTypeAnalysis         ErrorType = "ANALYSIS_ERROR"
	ErrorTypeInternal         ErrorType = "INTERNAL_ERROR"
	ErrorTypeNotFound         ErrorType = "NOT_FOUND"
	ErrorTypeMethodNotAllowed ErrorType = "METHOD_NOT_ALLOWED"
	ErrorTypeRateLimited      ErrorType = "RATE_LIMITED"
)

// ErrorResponse is the envelope of every non-2xx JSON response.
type ErrorResponse struct {
	Error     string      `json:"error"`
	ErrorType ErrorType   `json:"error_type"`
	Details   interface{} `json:"details,omitempty"`
}

type ValidationDetails struct {
	ValidationErrors []string `json:"validation_errors"`
}

// writeJSON encodes into a buffer first so a failed encode can still
// answer with a 500 instead of a truncated body.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		log.Errorf("[HTTP] Error encoding response: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error","error_type":"INTERNAL_ERROR"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Errorf("[HTTP] Error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, errType ErrorType, message string, details interface{}) {
	writeJSON(w, status, ErrorResponse{
		Error:     message,
		ErrorType: errType,
		Details:   details,
	})
}
