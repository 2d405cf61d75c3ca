package service

import (
	"context"
	"errors"
	"time"

	"github.com/oggyb/portfolio-inbox/internal/cache"
	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/journal"
	"github.com/oggyb/portfolio-inbox/internal/metrics"
	"github.com/oggyb/portfolio-inbox/internal/request"
	"go.uber.org/zap"
)

// SubmissionResult is returned for every accepted submission. ID is empty
// and Stored is false when the store was unreachable and the submission
// went to the fallback journal.
type SubmissionResult struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	Stored    bool
}

// Journal is the fallback medium for submissions the store rejects as
// unavailable.
type Journal interface {
	Append(e journal.Entry) error
}

type IntakeService interface {
	// Submit fails only with *ValidationError or ErrInternal. A store
	// outage is absorbed by the journal and still reported as success.
	Submit(ctx context.Context, req request.SubmitContact, meta contact.ClientMeta) (*SubmissionResult, error)
}

type intakeService struct {
	repo    contact.Repository
	journal Journal
	cache   cache.Cache
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewIntakeService wires the intake flow. cache may be nil.
func NewIntakeService(
	repo contact.Repository,
	j Journal,
	c cache.Cache,
	m *metrics.Metrics,
	log *zap.Logger,
) IntakeService {
	return &intakeService{
		repo:    repo,
		journal: j,
		cache:   c,
		metrics: m,
		log:     log.Named("intake"),
	}
}

func (s *intakeService) Submit(ctx context.Context, req request.SubmitContact, meta contact.ClientMeta) (*SubmissionResult, error) {
	if errs := request.Validate(&req); errs != nil {
		s.metrics.Submission(metrics.OutcomeRejected)
		return nil, &ValidationError{Fields: errs}
	}

	c, err := contact.NewContact(req.Name, req.Email, req.Message, meta)
	if err != nil {
		s.metrics.Submission(metrics.OutcomeRejected)
		return nil, invalid("", err.Error())
	}

	err = s.repo.Create(ctx, c)
	switch {
	case err == nil:
		invalidateStats(ctx, s.cache, s.log)
		s.metrics.Submission(metrics.OutcomeStored)
		s.log.Info("contact stored", zap.String("id", c.ID), zap.String("email", c.Email))

		return &SubmissionResult{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			CreatedAt: c.CreatedAt,
			Stored:    true,
		}, nil

	case errors.Is(err, contact.ErrUnavailable):
		s.fallback(c, err)

		return &SubmissionResult{
			Name:      c.Name,
			Email:     c.Email,
			CreatedAt: c.CreatedAt,
		}, nil

	default:
		s.log.Error("create contact", zap.Error(err))
		return nil, ErrInternal
	}
}

// fallback records a submission the store could not take.
func (s *intakeService) fallback(c *contact.Contact, cause error) {
	s.log.Warn("store unavailable, journaling submission",
		zap.String("entryId", c.ID),
		zap.Error(cause),
	)

	if err := s.journal.Append(journal.EntryFrom(c)); err != nil {
		// Nothing durable holds this submission; the log line is the last record.
		s.metrics.Submission(metrics.OutcomeLost)
		s.log.Error("journal append failed, submission lost",
			zap.String("entryId", c.ID),
			zap.String("name", c.Name),
			zap.String("email", c.Email),
			zap.String("message", c.Message),
			zap.Time("receivedAt", c.CreatedAt),
			zap.Error(err),
		)
		return
	}

	s.metrics.Submission(metrics.OutcomeJournaled)
}
