package handler

import (
	"context"
	"net/http"

	"github.com/oggyb/portfolio-inbox/internal/reconcile"
	"github.com/oggyb/portfolio-inbox/internal/request"
	"github.com/oggyb/portfolio-inbox/internal/response"
	"github.com/oggyb/portfolio-inbox/internal/scheduler"
	"github.com/oggyb/portfolio-inbox/internal/service"
)

const testEmailFailed = "Email configuration error, check the server logs"

// Replayer runs one journal replay on demand.
type Replayer interface {
	Run(ctx context.Context) (reconcile.Result, error)
}

// AdminHandler serves the gated inbox endpoints.
type AdminHandler struct {
	svc      service.AdminService
	sched    scheduler.SchedulerService
	replayer Replayer
}

func NewAdminHandler(svc service.AdminService, sched scheduler.SchedulerService, replayer Replayer) *AdminHandler {
	return &AdminHandler{svc: svc, sched: sched, replayer: replayer}
}

// ListContacts godoc
// @Summary     List contact messages
// @Description Filters are conjunctive. When the database is unavailable a fixed demo dataset is
// @Description returned with a "note" marking it as non-authoritative.
// @Tags        admin
// @Produce     json
// @Security    AdminPassword
// @Param       status query string false "new, read, replied or all"
// @Param       search query string false "Case-insensitive match on name, email and message"
// @Param       sort   query string false "newest (default), oldest or name"
// @Success     200 {object} response.ContactListResponse
// @Failure     400 {object} response.ErrorResponse
// @Failure     401 {object} response.ErrorResponse
// @Router      /api/admin/contacts [get]
func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts, err := service.ParseListOptions(q.Get("status"), q.Get("search"), q.Get("sort"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	res, err := h.svc.List(r.Context(), opts)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	opt := []response.Option{response.WithCount(len(res.Items))}
	if res.Demo {
		opt = append(opt, response.WithNote(res.Note))
	}
	response.RespondJSON(w, http.StatusOK, response.FromContacts(res.Items), opt...)
}

// Stats godoc
// @Summary     Inbox statistics
// @Tags        admin
// @Produce     json
// @Security    AdminPassword
// @Success     200 {object} response.StatsResponse
// @Failure     401 {object} response.ErrorResponse
// @Router      /api/admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Stats(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var opt []response.Option
	if res.Demo {
		opt = append(opt, response.WithNote(res.Note))
	}
	response.RespondJSON(w, http.StatusOK, res.Stats, opt...)
}

// UpdateStatus godoc
// @Summary     Set a message status
// @Description Any status may be set regardless of the current one.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    AdminPassword
// @Param       id      path string               true "Message id"
// @Param       request body request.UpdateStatus true "New status"
// @Success     200 {object} response.ContactResponse
// @Failure     400 {object} response.ErrorResponse
// @Failure     401 {object} response.ErrorResponse
// @Failure     404 {object} response.ErrorResponse
// @Failure     503 {object} response.ErrorResponse
// @Router      /api/admin/contacts/{id}/status [patch]
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateStatus
	if err := request.Decode(r, w, &req); err != nil {
		respondServiceError(w, err)
		return
	}

	c, err := h.svc.UpdateStatus(r.Context(), r.PathValue("id"), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromContact(c))
}

// DeleteContact godoc
// @Summary     Delete a message
// @Tags        admin
// @Produce     json
// @Security    AdminPassword
// @Param       id path string true "Message id"
// @Success     200 {object} response.MessageResponse
// @Failure     401 {object} response.ErrorResponse
// @Failure     404 {object} response.ErrorResponse
// @Failure     503 {object} response.ErrorResponse
// @Router      /api/admin/contacts/{id} [delete]
func (h *AdminHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, nil, response.WithMessage("Message deleted"))
}

// Reply godoc
// @Summary     Reply to a message
// @Description Emails the reply to the submitter and marks the message replied. A failed email
// @Description does not fail the request; data.notified reports the delivery result.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    AdminPassword
// @Param       request body request.Reply true "Reply"
// @Success     200 {object} response.ReplyResponse
// @Failure     400 {object} response.ErrorResponse
// @Failure     401 {object} response.ErrorResponse
// @Failure     404 {object} response.ErrorResponse
// @Failure     503 {object} response.ErrorResponse
// @Router      /api/admin/reply [post]
func (h *AdminHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req request.Reply
	if err := request.Decode(r, w, &req); err != nil {
		respondServiceError(w, err)
		return
	}

	res, err := h.svc.Reply(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	msg := "Reply sent successfully"
	if !res.Notified {
		msg = "Message marked as replied, but the email could not be sent"
	}

	payload := response.ReplyPayload{
		Contact:  response.FromContact(res.Contact),
		Notified: res.Notified,
	}
	response.RespondJSON(w, http.StatusOK, payload, response.WithMessage(msg))
}

// TestEmail godoc
// @Summary     Verify the email transport
// @Tags        admin
// @Produce     json
// @Security    AdminPassword
// @Success     200 {object} response.MessageResponse
// @Failure     401 {object} response.ErrorResponse
// @Failure     502 {object} response.ErrorResponse
// @Router      /api/admin/test-email [get]
func (h *AdminHandler) TestEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.VerifyNotifier(r.Context()); err != nil {
		// The service logs the transport error; it may name hosts or credentials.
		response.RespondError(w, http.StatusBadGateway, testEmailFailed)
		return
	}

	response.RespondJSON(w, http.StatusOK, nil, response.WithMessage("Email configuration is working"))
}

// Reconciler godoc
// @Summary     Control journal replay
// @Description "start" and "stop" control periodic replay of journaled submissions; "run" replays now.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    AdminPassword
// @Param       request body request.ReconcilerAction true "Action (start|stop|run)"
// @Success     200 {object} response.ReconcilerResponse
// @Failure     400 {object} response.ErrorResponse
// @Failure     401 {object} response.ErrorResponse
// @Failure     503 {object} response.ErrorResponse
// @Router      /api/admin/reconciler [post]
func (h *AdminHandler) Reconciler(w http.ResponseWriter, r *http.Request) {
	var req request.ReconcilerAction
	if err := request.Decode(r, w, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	if errs := request.Validate(&req); errs != nil {
		response.RespondValidation(w, errs)
		return
	}

	var (
		msg    string
		result *reconcile.Result
	)

	switch req.Action {
	case "start":
		if err := h.sched.Start(); err != nil {
			response.RespondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		msg = "reconciler started"

	case "stop":
		if err := h.sched.Stop(); err != nil {
			response.RespondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		msg = "reconciler stopped"

	case "run":
		res, err := h.replayer.Run(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		result = &res
		msg = "journal replayed"
	}

	payload := response.ReconcilerPayload{
		Running: h.sched.IsRunning(),
		Result:  result,
	}
	response.RespondJSON(w, http.StatusOK, payload, response.WithMessage(msg))
}
