package presentation

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
)

const sweepBatchSize = 100

// Sweeper clears destination markers left behind when no confirming ledger
// event arrived within the timeout.
type Sweeper struct {
	presentations presentation.Repository
	tasks         task.Manager
	timeout       time.Duration
	now           func() time.Time
	logger        zerolog.Logger
}

func NewSweeper(presentations presentation.Repository, tasks task.Manager, timeout time.Duration, logger zerolog.Logger) *Sweeper {
	return &Sweeper{
		presentations: presentations,
		tasks:         tasks,
		timeout:       timeout,
		now:           func() time.Time { return time.Now().UTC() },
		logger:        logger.With().Str("service", "sweeper").Logger(),
	}
}

// Sweep clears stale markers and returns pending review tasks to to-do.
// It returns the number of presentations released.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	stale, err := s.presentations.ListStaleDestination(ctx, s.now().Add(-s.timeout), sweepBatchSize)
	if err != nil {
		return 0, err
	}
	released := 0
	for _, p := range stale {
		if p.DestinationState == nil {
			continue
		}
		destination := *p.DestinationState
		p.ClearDestination()
		p.UpdatedAt = s.now()
		if err := s.presentations.Save(ctx, p); err != nil {
			s.logger.Error().Err(err).Str("presentation_id", p.StaticID).Msg("failed to release destination state")
			continue
		}
		released++
		s.revertPendingTasks(ctx, p)
		s.logger.Warn().
			Str("presentation_id", p.StaticID).
			Str("destination", string(destination)).
			Msg("released stale destination state")
	}
	return released, nil
}

func (s *Sweeper) revertPendingTasks(ctx context.Context, p *presentation.Presentation) {
	taskCtx := task.NewContext(p.LCReference, p.StaticID)
	pending := task.StatusPending
	tasks, err := s.tasks.ListTasks(ctx, task.Filter{Status: &pending, Context: &taskCtx})
	if err != nil {
		s.logger.Warn().Err(err).Str("presentation_id", p.StaticID).Msg("failed to list pending tasks")
		return
	}
	seen := map[task.Type]bool{}
	for _, t := range tasks {
		if seen[t.Type] {
			continue
		}
		seen[t.Type] = true
		err := s.tasks.UpdateTaskStatus(ctx, task.StatusUpdate{Type: t.Type, Context: taskCtx, Status: task.StatusToDo})
		if err != nil {
			s.logger.Warn().Err(err).Str("presentation_id", p.StaticID).Msg("failed to revert pending task")
		}
	}
}
