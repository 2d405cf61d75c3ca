package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/request"
	"github.com/oggyb/portfolio-inbox/internal/response"
	"github.com/oggyb/portfolio-inbox/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const submitPattern = "POST /api/contact/submit"

func TestSubmit_Stored(t *testing.T) {
	svc := new(mockIntake)
	h := NewContactHandler(svc)

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.On("Submit", mock.Anything,
		request.SubmitContact{Name: "Ann", Email: "ann@x.com", Message: "Hi"},
		contact.ClientMeta{IPAddress: "192.0.2.1", UserAgent: ""},
	).Return(&service.SubmissionResult{ID: "id-1", Name: "Ann", Email: "ann@x.com", CreatedAt: created, Stored: true}, nil)

	rec, env := serve(t, submitPattern, h.Submit, http.MethodPost, "/api/contact/submit",
		`{"name":"Ann","email":"ann@x.com","message":"Hi"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, submitThanks, env.Message)

	var got response.SubmissionPayload
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "id-1", got.ID)
	assert.True(t, created.Equal(got.CreatedAt))
	svc.AssertExpectations(t)
}

func TestSubmit_JournaledHasNoID(t *testing.T) {
	svc := new(mockIntake)
	h := NewContactHandler(svc)

	svc.On("Submit", mock.Anything, mock.Anything, mock.Anything).
		Return(&service.SubmissionResult{Name: "Ann", Email: "ann@x.com", CreatedAt: time.Now()}, nil)

	rec, env := serve(t, submitPattern, h.Submit, http.MethodPost, "/api/contact/submit",
		`{"name":"Ann","email":"ann@x.com","message":"Hi"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotContains(t, string(env.Data), `"id"`)
}

func TestSubmit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		err     error
		status  int
		message string
	}{
		{
			name:    "malformed json",
			body:    `{"name":`,
			status:  http.StatusBadRequest,
			message: "Invalid JSON body",
		},
		{
			name:    "validation",
			body:    `{"name":"","email":"ann@x.com","message":"Hi"}`,
			err:     &service.ValidationError{Fields: []request.FieldError{{Field: "name", Message: "name is required"}}},
			status:  http.StatusBadRequest,
			message: "Validation failed",
		},
		{
			name:    "internal",
			body:    `{"name":"Ann","email":"ann@x.com","message":"Hi"}`,
			err:     errors.New("pq: relation does not exist"),
			status:  http.StatusInternalServerError,
			message: "Internal server error. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockIntake)
			if tt.err != nil {
				svc.On("Submit", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec, env := serve(t, submitPattern, NewContactHandler(svc).Submit, http.MethodPost, "/api/contact/submit", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.message, env.Message)
			assert.NotContains(t, rec.Body.String(), "pq:")
			svc.AssertExpectations(t)
		})
	}
}
