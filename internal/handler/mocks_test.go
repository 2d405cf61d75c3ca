package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/reconcile"
	"github.com/oggyb/portfolio-inbox/internal/request"
	"github.com/oggyb/portfolio-inbox/internal/service"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockIntake struct{ mock.Mock }

func (m *mockIntake) Submit(ctx context.Context, req request.SubmitContact, meta contact.ClientMeta) (*service.SubmissionResult, error) {
	args := m.Called(ctx, req, meta)
	res, _ := args.Get(0).(*service.SubmissionResult)
	return res, args.Error(1)
}

type mockAdmin struct{ mock.Mock }

func (m *mockAdmin) List(ctx context.Context, opts contact.ListOptions) (*service.ListResult, error) {
	args := m.Called(ctx, opts)
	res, _ := args.Get(0).(*service.ListResult)
	return res, args.Error(1)
}

func (m *mockAdmin) Stats(ctx context.Context) (*service.StatsResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*service.StatsResult)
	return res, args.Error(1)
}

func (m *mockAdmin) UpdateStatus(ctx context.Context, id string, req request.UpdateStatus) (*contact.Contact, error) {
	args := m.Called(ctx, id, req)
	c, _ := args.Get(0).(*contact.Contact)
	return c, args.Error(1)
}

func (m *mockAdmin) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAdmin) Reply(ctx context.Context, req request.Reply) (*service.ReplyResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*service.ReplyResult)
	return res, args.Error(1)
}

func (m *mockAdmin) VerifyNotifier(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockScheduler struct{ mock.Mock }

func (m *mockScheduler) Start() error    { return m.Called().Error(0) }
func (m *mockScheduler) Stop() error     { return m.Called().Error(0) }
func (m *mockScheduler) IsRunning() bool { return m.Called().Bool(0) }
func (m *mockScheduler) Close()          { m.Called() }

type mockReplayer struct{ mock.Mock }

func (m *mockReplayer) Run(ctx context.Context) (reconcile.Result, error) {
	args := m.Called(ctx)
	return args.Get(0).(reconcile.Result), args.Error(1)
}

type envelope struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Count   *int                 `json:"count"`
	Note    string               `json:"note"`
	Data    json.RawMessage      `json:"data"`
	Errors  []request.FieldError `json:"errors"`
}

// serve routes one request through a mux so path values resolve.
func serve(t *testing.T, pattern string, h http.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}
