package handler

import (
	"net/http"

	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/middleware"
	"github.com/oggyb/portfolio-inbox/internal/request"
	"github.com/oggyb/portfolio-inbox/internal/response"
	"github.com/oggyb/portfolio-inbox/internal/service"
)

const submitThanks = "Thank you for your message! I will get back to you soon."

// ContactHandler serves the public contact form.
type ContactHandler struct {
	svc service.IntakeService
}

func NewContactHandler(svc service.IntakeService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit godoc
// @Summary     Submit the contact form
// @Description Stores a contact message. If the database is unavailable the submission is
// @Description journaled and replayed later, and the response is still a success without an id.
// @Description This is intentional: storage outages are never surfaced to the submitter.
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       request body request.SubmitContact true "Contact form"
// @Success     200 {object} response.SubmissionResponse
// @Failure     400 {object} response.ErrorResponse
// @Failure     429 {object} response.ErrorResponse
// @Failure     500 {object} response.ErrorResponse
// @Router      /api/contact/submit [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitContact
	if err := request.Decode(r, w, &req); err != nil {
		respondServiceError(w, err)
		return
	}

	meta := contact.ClientMeta{
		IPAddress: middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}

	res, err := h.svc.Submit(r.Context(), req, meta)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	payload := response.SubmissionPayload{
		ID:        res.ID,
		Name:      res.Name,
		Email:     res.Email,
		CreatedAt: res.CreatedAt,
	}
	response.RespondJSON(w, http.StatusOK, payload, response.WithMessage(submitThanks))
}
