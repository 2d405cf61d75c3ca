// Package request holds the JSON bodies accepted by the API and their
// validation.
package request

import (
	"strings"
)

// SubmitContact is the public contact form body.
type SubmitContact struct {
	Name    string `json:"name" validate:"required,max=100" example:"Ann"`
	Email   string `json:"email" validate:"required,max=254" example:"ann@x.com"`
	Message string `json:"message" validate:"required,max=10000" example:"Hi, I'd like to talk about a project."`
}

// Normalize drops NUL bytes, which Postgres text columns reject, and trims
// surrounding whitespace so "required" rejects blank input.
func (r *SubmitContact) Normalize() {
	r.Name = clean(r.Name)
	r.Email = clean(r.Email)
	r.Message = clean(r.Message)
}

func clean(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}

// UpdateStatus is the body of PATCH /api/admin/contacts/{id}/status.
type UpdateStatus struct {
	Status string `json:"status" validate:"required,oneof=new read replied" example:"read"`
}

func (r *UpdateStatus) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

// Reply is the body of POST /api/admin/reply.
type Reply struct {
	MessageID string `json:"messageId" validate:"required" example:"3f1c2a8e-5b7d-4e0a-9a6f-2d1b8c4e7f90"`
	ReplyText string `json:"replyText" validate:"required,max=10000" example:"Thanks for reaching out!"`
}

// Normalize trims the id only. Reply text keeps its formatting, but a
// whitespace-only reply is still rejected.
func (r *Reply) Normalize() {
	r.MessageID = strings.TrimSpace(r.MessageID)
	r.ReplyText = strings.ReplaceAll(r.ReplyText, "\x00", "")
	if strings.TrimSpace(r.ReplyText) == "" {
		r.ReplyText = ""
	}
}

// ReconcilerAction controls journal replay.
type ReconcilerAction struct {
	// Action is "start", "stop" or "run".
	Action string `json:"action" validate:"required,oneof=start stop run" example:"run"`
}

func (r *ReconcilerAction) Normalize() {
	r.Action = strings.ToLower(strings.TrimSpace(r.Action))
}
