package service

import (
	"context"
	"errors"
	"time"

	"github.com/oggyb/portfolio-inbox/internal/cache"
	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/metrics"
	"github.com/oggyb/portfolio-inbox/internal/notify"
	"github.com/oggyb/portfolio-inbox/internal/request"
	"go.uber.org/zap"
)

const DefaultReplySubject = "Re: Your message"

// ListResult is a page of the admin inbox. Demo is set when the store was
// unreachable and Items holds demonstration data instead.
type ListResult struct {
	Items []*contact.Contact
	Demo  bool
	Note  string
}

type StatsResult struct {
	Stats contact.Stats
	Demo  bool
	Note  string
}

// ReplyResult reports whether the reply notification was delivered. The
// contact is marked replied either way.
type ReplyResult struct {
	Contact  *contact.Contact
	Notified bool
}

type AdminService interface {
	List(ctx context.Context, opts contact.ListOptions) (*ListResult, error)
	Stats(ctx context.Context) (*StatsResult, error)
	UpdateStatus(ctx context.Context, id string, req request.UpdateStatus) (*contact.Contact, error)
	Delete(ctx context.Context, id string) error
	Reply(ctx context.Context, req request.Reply) (*ReplyResult, error)
	VerifyNotifier(ctx context.Context) error
}

type AdminConfig struct {
	StatsTTL     time.Duration
	ReplySubject string
}

type adminService struct {
	repo       contact.Repository
	dispatcher notify.Dispatcher
	cache      cache.Cache
	metrics    *metrics.Metrics
	log        *zap.Logger
	cfg        AdminConfig
	now        func() time.Time
}

// NewAdminService wires the admin operations. cache may be nil.
func NewAdminService(
	repo contact.Repository,
	dispatcher notify.Dispatcher,
	c cache.Cache,
	m *metrics.Metrics,
	log *zap.Logger,
	cfg AdminConfig,
) AdminService {
	if cfg.ReplySubject == "" {
		cfg.ReplySubject = DefaultReplySubject
	}

	return &adminService{
		repo:       repo,
		dispatcher: dispatcher,
		cache:      c,
		metrics:    m,
		log:        log.Named("admin"),
		cfg:        cfg,
		now:        time.Now,
	}
}

// ParseListOptions builds list options from raw query values.
func ParseListOptions(status, search, sort string) (contact.ListOptions, error) {
	st, err := contact.ParseStatusFilter(status)
	if err != nil {
		return contact.ListOptions{}, invalid("status", "status must be one of: all, new, read, replied")
	}

	return contact.ListOptions{
		Status: st,
		Search: search,
		Sort:   contact.ParseSort(sort),
	}, nil
}

func (s *adminService) List(ctx context.Context, opts contact.ListOptions) (*ListResult, error) {
	items, err := s.repo.List(ctx, opts)
	if err == nil {
		return &ListResult{Items: items}, nil
	}

	if !errors.Is(err, contact.ErrUnavailable) {
		s.log.Error("list contacts", zap.Error(err))
		return nil, ErrInternal
	}

	s.log.Warn("store unavailable, serving demo contacts", zap.Error(err))
	return &ListResult{
		Items: opts.Apply(contact.DemoContacts(s.now())),
		Demo:  true,
		Note:  contact.DemoNote,
	}, nil
}

func (s *adminService) Stats(ctx context.Context) (*StatsResult, error) {
	if st, ok := cachedStats(ctx, s.cache, s.log); ok {
		return &StatsResult{Stats: st}, nil
	}

	st, err := s.repo.Stats(ctx)
	if err == nil {
		storeStats(ctx, s.cache, st, s.cfg.StatsTTL, s.log)
		return &StatsResult{Stats: st}, nil
	}

	if !errors.Is(err, contact.ErrUnavailable) {
		s.log.Error("contact stats", zap.Error(err))
		return nil, ErrInternal
	}

	s.log.Warn("store unavailable, serving demo stats", zap.Error(err))
	return &StatsResult{
		Stats: contact.StatsOf(contact.DemoContacts(s.now())),
		Demo:  true,
		Note:  contact.DemoNote,
	}, nil
}

// UpdateStatus sets any valid status regardless of the current one.
func (s *adminService) UpdateStatus(ctx context.Context, id string, req request.UpdateStatus) (*contact.Contact, error) {
	if errs := request.Validate(&req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	status, err := contact.ParseStatus(req.Status)
	if err != nil {
		return nil, invalid("status", err.Error())
	}

	c, err := s.repo.UpdateStatus(ctx, id, status)
	s.metrics.Mutation("update_status", resultOf(err))
	if err != nil {
		return nil, s.mutationErr("update status", id, err)
	}

	invalidateStats(ctx, s.cache, s.log)
	s.log.Info("contact status updated", zap.String("id", id), zap.String("status", string(status)))
	return c, nil
}

func (s *adminService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	s.metrics.Mutation("delete", resultOf(err))
	if err != nil {
		return s.mutationErr("delete", id, err)
	}

	invalidateStats(ctx, s.cache, s.log)
	s.log.Info("contact deleted", zap.String("id", id))
	return nil
}

// Reply notifies the submitter and marks the contact replied. A failed
// notification is logged and reported through Notified, never returned.
func (s *adminService) Reply(ctx context.Context, req request.Reply) (*ReplyResult, error) {
	if errs := request.Validate(&req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	c, err := s.repo.Get(ctx, req.MessageID)
	if err != nil {
		s.metrics.Mutation("reply", resultOf(err))
		return nil, s.mutationErr("reply", req.MessageID, err)
	}

	notified := true
	err = s.dispatcher.Send(ctx, notify.Notification{
		To:              c.Email,
		ToName:          c.Name,
		Subject:         s.cfg.ReplySubject,
		Body:            req.ReplyText,
		OriginalMessage: c.Message,
	})
	if err != nil {
		notified = false
		s.metrics.Notification(metrics.ResultFailed)
		s.log.Warn("reply notification failed", zap.String("id", c.ID), zap.String("to", c.Email), zap.Error(err))
	} else {
		s.metrics.Notification(metrics.ResultOK)
	}

	updated, err := s.repo.UpdateStatus(ctx, c.ID, contact.StatusReplied)
	s.metrics.Mutation("reply", resultOf(err))
	if err != nil {
		return nil, s.mutationErr("mark replied", c.ID, err)
	}

	invalidateStats(ctx, s.cache, s.log)
	s.log.Info("contact replied", zap.String("id", c.ID), zap.Bool("notified", notified))
	return &ReplyResult{Contact: updated, Notified: notified}, nil
}

func (s *adminService) VerifyNotifier(ctx context.Context) error {
	if err := s.dispatcher.Verify(ctx); err != nil {
		s.log.Warn("notifier verification failed", zap.Error(err))
		return err
	}
	return nil
}

// mutationErr keeps ErrNotFound and ErrUnavailable visible to the caller
// and hides everything else behind ErrInternal.
func (s *adminService) mutationErr(op, id string, err error) error {
	switch {
	case errors.Is(err, contact.ErrNotFound), errors.Is(err, contact.ErrUnavailable):
		return err
	default:
		s.log.Error(op, zap.String("id", id), zap.Error(err))
		return ErrInternal
	}
}
