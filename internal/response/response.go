// Package response provides small helpers for writing JSON API responses
// with a consistent envelope structure.
package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/oggyb/portfolio-inbox/internal/request"
)

// JSONResponse is the common response envelope for all API endpoints.
type JSONResponse struct {
	Success   bool                 `json:"success"`
	Message   string               `json:"message,omitempty"`
	Count     *int                 `json:"count,omitempty"`
	Note      string               `json:"note,omitempty"`
	Data      any                  `json:"data,omitempty"`
	Errors    []request.FieldError `json:"errors,omitempty"`
	Timestamp string               `json:"timestamp"`
}

// Option decorates a success envelope.
type Option func(*JSONResponse)

func WithMessage(msg string) Option {
	return func(r *JSONResponse) { r.Message = msg }
}

func WithCount(n int) Option {
	return func(r *JSONResponse) { r.Count = &n }
}

func WithNote(note string) Option {
	return func(r *JSONResponse) { r.Note = note }
}

// RespondJSON writes a successful JSON response with the given status code and payload.
func RespondJSON(w http.ResponseWriter, status int, payload any, opts ...Option) {
	resp := JSONResponse{
		Success:   true,
		Data:      payload,
		Timestamp: now(),
	}
	for _, opt := range opts {
		opt(&resp)
	}
	writeJSON(w, status, resp)
}

// RespondError writes an error JSON response with the given status code and message.
func RespondError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, JSONResponse{
		Success:   false,
		Message:   msg,
		Timestamp: now(),
	})
}

// RespondValidation writes a 400 with one entry per rejected field.
func RespondValidation(w http.ResponseWriter, errs []request.FieldError) {
	writeJSON(w, http.StatusBadRequest, JSONResponse{
		Success:   false,
		Message:   "Validation failed",
		Errors:    errs,
		Timestamp: now(),
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// writeJSON encodes v as JSON and writes it to the response writer.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
