// Package scheduler runs a BatchProcessor on a fixed interval with a
// start/stop control surface. The reconciler is its only processor.
package scheduler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// BatchProcessor does the periodic work.
type BatchProcessor interface {
	ProcessBatch(ctx context.Context) error
}

type SchedulerService interface {
	Start() error
	// Stop waits for an in-flight batch to finish.
	Stop() error
	IsRunning() bool
	// Close terminates the control loop. The service is unusable afterwards.
	Close()
}

const (
	DefaultInterval     = time.Minute
	DefaultBatchTimeout = 30 * time.Second
)

// controlTimeout bounds how long Start/Stop wait for the loop.
const controlTimeout = 2 * time.Second

var (
	ErrNotResponding = errors.New("scheduler: control loop not responding")
	ErrAckTimeout    = errors.New("scheduler: acknowledgement timeout")
)

type controlOp int

const (
	opStart controlOp = iota
	opStop
	opStatus
)

type controlMsg struct {
	op   controlOp
	resp chan bool
}

// schedulerService keeps all mutable state inside the loop goroutine.
type schedulerService struct {
	processor    BatchProcessor
	interval     time.Duration
	batchTimeout time.Duration
	log          *zap.Logger

	ctrl chan controlMsg
	done chan struct{}
}

// NewSchedulerService starts the control loop in the stopped state.
// Non-positive durations fall back to the defaults.
func NewSchedulerService(
	processor BatchProcessor,
	interval time.Duration,
	batchTimeout time.Duration,
	log *zap.Logger,
) SchedulerService {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if batchTimeout <= 0 {
		batchTimeout = DefaultBatchTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &schedulerService{
		processor:    processor,
		interval:     interval,
		batchTimeout: batchTimeout,
		log:          log.Named("scheduler"),
		ctrl:         make(chan controlMsg),
		done:         make(chan struct{}),
	}

	go s.loop()

	return s
}

func (s *schedulerService) Start() error {
	return s.send(opStart)
}

func (s *schedulerService) Stop() error {
	return s.send(opStop)
}

func (s *schedulerService) IsRunning() bool {
	resp := make(chan bool, 1)
	select {
	case s.ctrl <- controlMsg{op: opStatus, resp: resp}:
		return <-resp
	case <-s.done:
		return false
	}
}

func (s *schedulerService) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

func (s *schedulerService) send(op controlOp) error {
	resp := make(chan bool, 1)

	select {
	case s.ctrl <- controlMsg{op: op, resp: resp}:
	case <-s.done:
		return ErrNotResponding
	case <-time.After(controlTimeout):
		return ErrNotResponding
	}

	// Stop may be acknowledged only after the current batch returns, which
	// is bounded by batchTimeout.
	wait := controlTimeout
	if op == opStop {
		wait += s.batchTimeout
	}

	select {
	case <-resp:
		return nil
	case <-time.After(wait):
		return ErrAckTimeout
	}
}

func (s *schedulerService) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	running := false
	batches := make(chan error, 1)
	inBatch := false

	// Stop requests received mid-batch, answered when it returns.
	var pendingStops []chan bool

	for {
		select {
		case <-s.done:
			return

		case msg := <-s.ctrl:
			switch msg.op {
			case opStart:
				if !running {
					s.log.Info("started",
						zap.Duration("interval", s.interval),
						zap.Duration("batchTimeout", s.batchTimeout))
				}
				running = true
				msg.resp <- true

			case opStop:
				if running {
					s.log.Info("stop requested", zap.Bool("inBatch", inBatch))
				}
				running = false

				if inBatch {
					pendingStops = append(pendingStops, msg.resp)
				} else {
					msg.resp <- true
				}

			case opStatus:
				msg.resp <- running
			}

		case <-ticker.C:
			if !running || inBatch {
				continue
			}

			inBatch = true
			s.log.Debug("triggering batch")

			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), s.batchTimeout)
				defer cancel()
				batches <- s.processor.ProcessBatch(ctx)
			}()

		case err := <-batches:
			inBatch = false

			if err != nil {
				s.log.Warn("batch failed", zap.Error(err))
			} else {
				s.log.Debug("batch completed")
			}

			for _, resp := range pendingStops {
				resp <- true
			}
			if len(pendingStops) > 0 {
				s.log.Info("stopped")
			}
			pendingStops = nil
		}
	}
}
