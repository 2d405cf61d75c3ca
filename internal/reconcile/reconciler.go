// Package reconcile replays journaled submissions into the contact store
// once it is reachable again.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/oggyb/portfolio-inbox/internal/cache"
	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/oggyb/portfolio-inbox/internal/journal"
	"github.com/oggyb/portfolio-inbox/internal/metrics"
	"go.uber.org/zap"
)

// Result summarises one replay run.
type Result struct {
	Segments   int `json:"segments"`
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

type Reconciler struct {
	mu      sync.Mutex
	journal *journal.Journal
	repo    contact.Repository
	cache   cache.Cache
	metrics *metrics.Metrics
	log     *zap.Logger
}

// New builds a Reconciler. c may be nil.
func New(j *journal.Journal, repo contact.Repository, c cache.Cache, m *metrics.Metrics, log *zap.Logger) *Reconciler {
	return &Reconciler{
		journal: j,
		repo:    repo,
		cache:   c,
		metrics: m,
		log:     log.Named("reconciler"),
	}
}

// ProcessBatch satisfies scheduler.BatchProcessor.
func (r *Reconciler) ProcessBatch(ctx context.Context) error {
	_, err := r.Run(ctx)
	return err
}

// Run seals the live journal and imports every sealed segment, oldest
// first. A segment is removed only when all of its entries reached the
// store. The run stops at the first ErrUnavailable so the remaining
// segments wait for the next run. Entries the store rejects are counted as
// failed and keep their segment without blocking later ones.
func (r *Reconciler) Run(ctx context.Context) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res Result
	defer func() {
		if res.Imported > 0 {
			r.invalidateStats(ctx)
		}
	}()

	if err := r.journal.Seal(); err != nil {
		return res, fmt.Errorf("seal journal: %w", err)
	}

	segments, err := r.journal.Segments()
	if err != nil {
		return res, fmt.Errorf("list journal segments: %w", err)
	}
	if len(segments) == 0 {
		return res, nil
	}

	for _, seg := range segments {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		complete, err := r.replaySegment(ctx, seg, &res)
		if err != nil {
			r.log.Warn("replay interrupted", zap.String("segment", seg), zap.Error(err))
			r.logResult(res)
			return res, err
		}
		res.Segments++

		if !complete {
			r.log.Warn("segment kept for retry", zap.String("segment", seg))
			continue
		}
		if err := r.journal.Remove(seg); err != nil {
			r.log.Error("remove replayed segment", zap.String("segment", seg), zap.Error(err))
		}
	}

	r.logResult(res)
	return res, nil
}

// replaySegment reports whether every entry of seg is now in the store.
func (r *Reconciler) replaySegment(ctx context.Context, seg string, res *Result) (bool, error) {
	entries, skipped, err := r.journal.Read(seg)
	if err != nil {
		return false, fmt.Errorf("read segment: %w", err)
	}
	if skipped > 0 {
		r.log.Warn("skipped malformed journal lines", zap.String("segment", seg), zap.Int("count", skipped))
	}
	res.Skipped += skipped

	complete := true
	for _, e := range entries {
		inserted, err := r.repo.Import(ctx, e.Contact())
		switch {
		case errors.Is(err, contact.ErrUnavailable):
			return false, err
		case err != nil:
			r.log.Error("import journal entry", zap.String("entryId", e.ID), zap.Error(err))
			res.Failed++
			complete = false
		case inserted:
			res.Imported++
			r.metrics.Replayed(1)
		default:
			res.Duplicates++
		}
	}
	return complete, nil
}

func (r *Reconciler) invalidateStats(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Del(context.WithoutCancel(ctx), cache.AllContactStats); err != nil {
		r.log.Warn("stats cache invalidate", zap.Error(err))
	}
}

func (r *Reconciler) logResult(res Result) {
	if res == (Result{}) {
		return
	}
	r.log.Info("journal replayed",
		zap.Int("segments", res.Segments),
		zap.Int("imported", res.Imported),
		zap.Int("duplicates", res.Duplicates),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed),
	)
}
