// Package handler adapts the inbox services to HTTP.
package handler

import (
	"errors"
	"net/http"

	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/request"
	"github.com/oggyb/portfolio-inbox/internal/response"
	"github.com/oggyb/portfolio-inbox/internal/service"
)

// respondServiceError maps service errors to status codes. Unexpected
// errors never leak their text.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		response.RespondValidation(w, verr.Fields)
	case errors.Is(err, request.ErrInvalidBody):
		response.RespondError(w, http.StatusBadRequest, "Invalid JSON body")
	case errors.Is(err, contact.ErrNotFound):
		response.RespondError(w, http.StatusNotFound, "Message not found")
	case errors.Is(err, contact.ErrUnavailable):
		response.RespondError(w, http.StatusServiceUnavailable, "Database not available, please try again later")
	default:
		response.RespondError(w, http.StatusInternalServerError, "Internal server error. Please try again later.")
	}
}
