package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/notify"
	"github.com/oggyb/portfolio-inbox/internal/reconcile"
	"github.com/oggyb/portfolio-inbox/internal/request"
	"github.com/oggyb/portfolio-inbox/internal/response"
	"github.com/oggyb/portfolio-inbox/internal/scheduler"
	"github.com/oggyb/portfolio-inbox/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	svc      *mockAdmin
	sched    *mockScheduler
	replayer *mockReplayer
	h        *AdminHandler
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		svc:      new(mockAdmin),
		sched:    new(mockScheduler),
		replayer: new(mockReplayer),
	}
	f.h = NewAdminHandler(f.svc, f.sched, f.replayer)
	return f
}

func sampleContact(status contact.Status) *contact.Contact {
	return &contact.Contact{
		ID:        "3f1c2a8e-5b7d-4e0a-9a6f-2d1b8c4e7f90",
		Name:      "Ann",
		Email:     "ann@x.com",
		Message:   "Hi",
		Status:    status,
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestListContacts(t *testing.T) {
	f := newAdminFixture()
	f.svc.On("List", mock.Anything, contact.ListOptions{Status: contact.StatusNew, Search: "ann", Sort: contact.SortOldest}).
		Return(&service.ListResult{Items: []*contact.Contact{sampleContact(contact.StatusNew)}}, nil)

	rec, env := serve(t, "GET /api/admin/contacts", f.h.ListContacts, http.MethodGet,
		"/api/admin/contacts?status=new&search=ann&sort=oldest", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
	assert.Empty(t, env.Note)

	var items []response.ContactDTO
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "new", items[0].Status)
	f.svc.AssertExpectations(t)
}

func TestListContacts_DemoCarriesNote(t *testing.T) {
	f := newAdminFixture()
	demo := contact.DemoContacts(time.Now())
	f.svc.On("List", mock.Anything, mock.Anything).
		Return(&service.ListResult{Items: demo, Demo: true, Note: contact.DemoNote}, nil)

	rec, env := serve(t, "GET /api/admin/contacts", f.h.ListContacts, http.MethodGet, "/api/admin/contacts", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, contact.DemoNote, env.Note)
	require.NotNil(t, env.Count)
	assert.Equal(t, len(demo), *env.Count)
}

func TestListContacts_BadFilter(t *testing.T) {
	f := newAdminFixture()

	rec, env := serve(t, "GET /api/admin/contacts", f.h.ListContacts, http.MethodGet, "/api/admin/contacts?status=archived", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", env.Message)
	require.NotEmpty(t, env.Errors)
	assert.Equal(t, "status", env.Errors[0].Field)
	f.svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestStats(t *testing.T) {
	f := newAdminFixture()
	f.svc.On("Stats", mock.Anything).
		Return(&service.StatsResult{Stats: contact.Stats{Total: 3, New: 1, Read: 1, Replied: 1}}, nil)

	rec, env := serve(t, "GET /api/admin/stats", f.h.Stats, http.MethodGet, "/api/admin/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":3,"new":1,"read":1,"replied":1}`, string(env.Data))
}

func TestUpdateStatus(t *testing.T) {
	const pattern = "PATCH /api/admin/contacts/{id}/status"

	t.Run("ok", func(t *testing.T) {
		f := newAdminFixture()
		f.svc.On("UpdateStatus", mock.Anything, "abc", request.UpdateStatus{Status: "read"}).
			Return(sampleContact(contact.StatusRead), nil)

		rec, env := serve(t, pattern, f.h.UpdateStatus, http.MethodPatch, "/api/admin/contacts/abc/status", `{"status":"read"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got response.ContactDTO
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "read", got.Status)
		f.svc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		f := newAdminFixture()
		f.svc.On("UpdateStatus", mock.Anything, "missing", mock.Anything).Return(nil, contact.ErrNotFound)

		rec, env := serve(t, pattern, f.h.UpdateStatus, http.MethodPatch, "/api/admin/contacts/missing/status", `{"status":"read"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Message not found", env.Message)
	})

	t.Run("store down", func(t *testing.T) {
		f := newAdminFixture()
		f.svc.On("UpdateStatus", mock.Anything, "abc", mock.Anything).
			Return(nil, errors.Join(contact.ErrUnavailable, errors.New("dial tcp: refused")))

		rec, env := serve(t, pattern, f.h.UpdateStatus, http.MethodPatch, "/api/admin/contacts/abc/status", `{"status":"read"}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.False(t, env.Success)
		assert.NotContains(t, env.Message, "dial tcp")
	})
}

func TestDeleteContact(t *testing.T) {
	const pattern = "DELETE /api/admin/contacts/{id}"

	f := newAdminFixture()
	f.svc.On("Delete", mock.Anything, "abc").Return(nil)
	f.svc.On("Delete", mock.Anything, "gone").Return(contact.ErrNotFound)

	rec, env := serve(t, pattern, f.h.DeleteContact, http.MethodDelete, "/api/admin/contacts/abc", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Message deleted", env.Message)

	rec, _ = serve(t, pattern, f.h.DeleteContact, http.MethodDelete, "/api/admin/contacts/gone", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	f.svc.AssertExpectations(t)
}

func TestReply(t *testing.T) {
	const pattern = "POST /api/admin/reply"

	t.Run("notified", func(t *testing.T) {
		f := newAdminFixture()
		f.svc.On("Reply", mock.Anything, request.Reply{MessageID: "abc", ReplyText: "Thanks!"}).
			Return(&service.ReplyResult{Contact: sampleContact(contact.StatusReplied), Notified: true}, nil)

		rec, env := serve(t, pattern, f.h.Reply, http.MethodPost, "/api/admin/reply", `{"messageId":"abc","replyText":"Thanks!"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Reply sent successfully", env.Message)

		var got response.ReplyPayload
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.True(t, got.Notified)
		assert.Equal(t, "replied", got.Contact.Status)
	})

	t.Run("delivery failed", func(t *testing.T) {
		f := newAdminFixture()
		f.svc.On("Reply", mock.Anything, mock.Anything).
			Return(&service.ReplyResult{Contact: sampleContact(contact.StatusReplied)}, nil)

		rec, env := serve(t, pattern, f.h.Reply, http.MethodPost, "/api/admin/reply", `{"messageId":"abc","replyText":"Thanks!"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Contains(t, env.Message, "could not be sent")
	})
}

func TestTestEmail(t *testing.T) {
	f := newAdminFixture()
	f.svc.On("VerifyNotifier", mock.Anything).Return(nil).Once()

	rec, env := serve(t, "GET /api/admin/test-email", f.h.TestEmail, http.MethodGet, "/api/admin/test-email", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Email configuration is working", env.Message)

	transportErr := fmt.Errorf("%w: smtp verify: 535 5.7.8 auth failed for relay@smtp.internal.example:587", notify.ErrDispatch)
	f.svc.On("VerifyNotifier", mock.Anything).Return(transportErr).Once()

	rec, env = serve(t, "GET /api/admin/test-email", f.h.TestEmail, http.MethodGet, "/api/admin/test-email", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, testEmailFailed, env.Message)
	assert.NotContains(t, rec.Body.String(), "smtp.internal.example")
	assert.NotContains(t, rec.Body.String(), "535")
}

func TestReconciler(t *testing.T) {
	const pattern = "POST /api/admin/reconciler"

	t.Run("start", func(t *testing.T) {
		f := newAdminFixture()
		f.sched.On("Start").Return(nil)
		f.sched.On("IsRunning").Return(true)

		rec, env := serve(t, pattern, f.h.Reconciler, http.MethodPost, "/api/admin/reconciler", `{"action":"start"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "reconciler started", env.Message)
		assert.JSONEq(t, `{"running":true}`, string(env.Data))
		f.sched.AssertExpectations(t)
	})

	t.Run("stop not responding", func(t *testing.T) {
		f := newAdminFixture()
		f.sched.On("Stop").Return(scheduler.ErrNotResponding)

		rec, _ := serve(t, pattern, f.h.Reconciler, http.MethodPost, "/api/admin/reconciler", `{"action":"stop"}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("run", func(t *testing.T) {
		f := newAdminFixture()
		f.replayer.On("Run", mock.Anything).Return(reconcile.Result{Segments: 1, Imported: 2}, nil)
		f.sched.On("IsRunning").Return(false)

		rec, env := serve(t, pattern, f.h.Reconciler, http.MethodPost, "/api/admin/reconciler", `{"action":"run"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got response.ReconcilerPayload
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.NotNil(t, got.Result)
		assert.Equal(t, 2, got.Result.Imported)
		assert.False(t, got.Running)
	})

	t.Run("unknown action", func(t *testing.T) {
		f := newAdminFixture()

		rec, env := serve(t, pattern, f.h.Reconciler, http.MethodPost, "/api/admin/reconciler", `{"action":"pause"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotEmpty(t, env.Errors)
		assert.Equal(t, "action", env.Errors[0].Field)
	})
}
