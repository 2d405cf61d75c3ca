// Package service implements contact intake and the admin inbox
// operations on top of the contact repository.
package service

import (
	"errors"
	"strings"

	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/metrics"
	"github.com/oggyb/portfolio-inbox/internal/request"
)

// ErrInternal hides unexpected store failures from clients.
var ErrInternal = errors.New("internal error")

// ValidationError lists the rejected input fields.
type ValidationError struct {
	Fields []request.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: []request.FieldError{{Field: field, Message: msg}}}
}

// resultOf maps an operation error to a metrics result label.
func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, contact.ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, contact.ErrUnavailable):
		return metrics.ResultUnavailable
	default:
		return metrics.ResultFailed
	}
}
