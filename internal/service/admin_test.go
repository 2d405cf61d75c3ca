package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/metrics"
	"github.com/oggyb/portfolio-inbox/internal/notify"
	contactmem "github.com/oggyb/portfolio-inbox/internal/repository/memory/contact"
	"github.com/oggyb/portfolio-inbox/internal/request"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type adminFixture struct {
	repo       *contactmem.Repository
	dispatcher *mockDispatcher
	cache      *memCache
	metrics    *metrics.Metrics
	svc        AdminService
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	f := &adminFixture{
		repo:       contactmem.NewRepository(),
		dispatcher: &mockDispatcher{},
		cache:      newMemCache(),
		metrics:    metrics.New(prometheus.NewRegistry()),
	}
	f.svc = NewAdminService(f.repo, f.dispatcher, f.cache, f.metrics, zap.NewNop(), AdminConfig{StatsTTL: time.Minute})
	t.Cleanup(func() { f.dispatcher.AssertExpectations(t) })
	return f
}

func (f *adminFixture) seed(t *testing.T, name, email, message string, status contact.Status, age time.Duration) *contact.Contact {
	t.Helper()

	c, err := contact.NewContact(name, email, message, contact.ClientMeta{})
	require.NoError(t, err)
	c.Status = status
	c.CreatedAt = time.Now().UTC().Add(-age)
	require.NoError(t, f.repo.Create(context.Background(), c))
	return c
}

func ids(items []*contact.Contact) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func TestList_FilterAndSearch(t *testing.T) {
	f := newAdminFixture(t)

	ann := f.seed(t, "Ann", "ann@x.com", "Hi", contact.StatusNew, time.Hour)
	f.seed(t, "Annette", "a@x.com", "Hello", contact.StatusRead, 2*time.Hour)
	joanna := f.seed(t, "Bob", "bob@x.com", "Joanna said hi", contact.StatusNew, 3*time.Hour)
	f.seed(t, "Carl", "carl@x.com", "Nothing", contact.StatusNew, 4*time.Hour)

	opts, err := ParseListOptions("new", "ANN", "")
	require.NoError(t, err)

	res, err := f.svc.List(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, res.Demo)
	assert.Equal(t, []string{ann.ID, joanna.ID}, ids(res.Items))
}

func TestList_Sorts(t *testing.T) {
	f := newAdminFixture(t)

	b := f.seed(t, "bob", "b@x.com", "m", contact.StatusNew, time.Hour)
	a := f.seed(t, "Alice", "a@x.com", "m", contact.StatusNew, 2*time.Hour)
	c := f.seed(t, "Carol", "c@x.com", "m", contact.StatusNew, 3*time.Hour)

	tests := []struct {
		sort string
		want []string
	}{
		{sort: "", want: []string{b.ID, a.ID, c.ID}},
		{sort: "oldest", want: []string{c.ID, a.ID, b.ID}},
		{sort: "name", want: []string{a.ID, b.ID, c.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			opts, err := ParseListOptions("all", "", tt.sort)
			require.NoError(t, err)

			res, err := f.svc.List(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(res.Items))
		})
	}
}

func TestParseListOptions_InvalidStatus(t *testing.T) {
	_, err := ParseListOptions("archived", "", "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Fields[0].Field)
}

func TestList_StoreDownServesDemoData(t *testing.T) {
	f := newAdminFixture(t)
	f.repo.SetDown(true)

	res, err := f.svc.List(context.Background(), contact.ListOptions{})
	require.NoError(t, err)
	assert.True(t, res.Demo)
	assert.Equal(t, contact.DemoNote, res.Note)
	assert.Equal(t, []string{"demo-1", "demo-2"}, ids(res.Items))

	res, err = f.svc.List(context.Background(), contact.ListOptions{Status: contact.StatusRead})
	require.NoError(t, err)
	assert.Equal(t, []string{"demo-2"}, ids(res.Items))
}

func TestStats_ReadThroughCache(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	f.seed(t, "Ann", "ann@x.com", "Hi", contact.StatusNew, time.Hour)
	f.seed(t, "Bob", "bob@x.com", "Hi", contact.StatusReplied, time.Hour)

	res, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, contact.Stats{Total: 2, New: 1, Replied: 1}, res.Stats)
	assert.True(t, f.cache.has(statsKey))

	// Served from cache while the store is down.
	f.repo.SetDown(true)
	res, err = f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.False(t, res.Demo)
	assert.EqualValues(t, 2, res.Stats.Total)
}

func TestStats_StoreDownServesDemoStats(t *testing.T) {
	f := newAdminFixture(t)
	f.repo.SetDown(true)

	res, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Demo)
	assert.Equal(t, contact.Stats{Total: 2, New: 1, Read: 1}, res.Stats)
	assert.False(t, f.cache.has(statsKey))
}

func TestUpdateStatus(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	c := f.seed(t, "Ann", "ann@x.com", "Hi", contact.StatusReplied, time.Hour)
	_ = f.cache.Set(ctx, statsKey, "{}", 0)

	// Any transition is allowed, including replied -> new.
	got, err := f.svc.UpdateStatus(ctx, c.ID, request.UpdateStatus{Status: "new"})
	require.NoError(t, err)
	assert.Equal(t, contact.StatusNew, got.Status)
	assert.False(t, f.cache.has(statsKey))

	// Idempotent.
	first, err := f.svc.UpdateStatus(ctx, c.ID, request.UpdateStatus{Status: "read"})
	require.NoError(t, err)
	second, err := f.svc.UpdateStatus(ctx, c.ID, request.UpdateStatus{Status: "read"})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 3.0, testutil.ToFloat64(f.metrics.Mutations.WithLabelValues("update_status", metrics.ResultOK)))
}

func TestUpdateStatus_Errors(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	_, err := f.svc.UpdateStatus(ctx, "nonexistent-id", request.UpdateStatus{Status: "read"})
	assert.ErrorIs(t, err, contact.ErrNotFound)

	var verr *ValidationError
	_, err = f.svc.UpdateStatus(ctx, "nonexistent-id", request.UpdateStatus{Status: "archived"})
	assert.ErrorAs(t, err, &verr)

	c := f.seed(t, "Ann", "ann@x.com", "Hi", contact.StatusNew, time.Hour)
	f.repo.SetDown(true)
	_, err = f.svc.UpdateStatus(ctx, c.ID, request.UpdateStatus{Status: "read"})
	assert.ErrorIs(t, err, contact.ErrUnavailable)
}

func TestDelete(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	c := f.seed(t, "Ann", "ann@x.com", "Hi", contact.StatusNew, time.Hour)

	require.NoError(t, f.svc.Delete(ctx, c.ID))

	res, err := f.svc.List(ctx, contact.ListOptions{})
	require.NoError(t, err)
	assert.NotContains(t, ids(res.Items), c.ID)

	assert.ErrorIs(t, f.svc.Delete(ctx, c.ID), contact.ErrNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Mutations.WithLabelValues("delete", metrics.ResultNotFound)))
}

func TestReply_SendsAndMarksReplied(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	c := f.seed(t, "Ann", "ann@x.com", "Can we talk?", contact.StatusRead, time.Hour)

	f.dispatcher.On("Send", mock.Anything, notify.Notification{
		To:              "ann@x.com",
		ToName:          "Ann",
		Subject:         DefaultReplySubject,
		Body:            "Sure!",
		OriginalMessage: "Can we talk?",
	}).Return(nil).Once()

	res, err := f.svc.Reply(ctx, request.Reply{MessageID: c.ID, ReplyText: "Sure!"})
	require.NoError(t, err)
	assert.True(t, res.Notified)
	assert.Equal(t, contact.StatusReplied, res.Contact.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Notifications.WithLabelValues(metrics.ResultOK)))
}

func TestReply_DispatchFailureStillMarksReplied(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	c := f.seed(t, "Ann", "ann@x.com", "Hi", contact.StatusNew, time.Hour)

	f.dispatcher.On("Send", mock.Anything, mock.Anything).Return(notify.ErrDispatch).Once()

	res, err := f.svc.Reply(ctx, request.Reply{MessageID: c.ID, ReplyText: "Thanks"})
	require.NoError(t, err)
	assert.False(t, res.Notified)

	got, err := f.repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.StatusReplied, got.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Notifications.WithLabelValues(metrics.ResultFailed)))
}

func TestReply_ValidationLeavesStatus(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	c := f.seed(t, "Ann", "ann@x.com", "Hi", contact.StatusNew, time.Hour)

	for _, text := range []string{"", "   ", strings.Repeat("x", 10001)} {
		_, err := f.svc.Reply(ctx, request.Reply{MessageID: c.ID, ReplyText: text})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "replyText", verr.Fields[0].Field)
	}

	got, err := f.repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.StatusNew, got.Status)
}

func TestReply_NotFound(t *testing.T) {
	f := newAdminFixture(t)

	_, err := f.svc.Reply(context.Background(), request.Reply{MessageID: "demo-1", ReplyText: "Hi"})
	assert.ErrorIs(t, err, contact.ErrNotFound)
}

func TestVerifyNotifier(t *testing.T) {
	f := newAdminFixture(t)

	f.dispatcher.On("Verify", mock.Anything).Return(nil).Once()
	assert.NoError(t, f.svc.VerifyNotifier(context.Background()))

	f.dispatcher.On("Verify", mock.Anything).Return(notify.ErrDispatch).Once()
	assert.ErrorIs(t, f.svc.VerifyNotifier(context.Background()), notify.ErrDispatch)
}
