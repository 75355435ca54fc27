package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/execution-hub/presentation-hub/internal/domain/notification"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
)

const listLimit = 500

// Service handles task operations.
type Service struct {
	taskRepo  task.Repository
	notifier  notification.Sender
	companyID string
	logger    zerolog.Logger
}

// NewService creates a task service.
func NewService(taskRepo task.Repository, notifier notification.Sender, companyID string, logger zerolog.Logger) *Service {
	return &Service{
		taskRepo:  taskRepo,
		notifier:  notifier,
		companyID: companyID,
		logger:    logger.With().Str("service", "task").Logger(),
	}
}

// CreateTask persists t and tells the local company about it. The
// notification is best-effort.
func (s *Service) CreateTask(ctx context.Context, t *task.Task, notificationMessage string) error {
	if t.Summary == "" {
		return fmt.Errorf("summary is required")
	}
	if err := s.taskRepo.Create(ctx, t); err != nil {
		return err
	}
	s.logger.Info().
		Str("task_id", t.TaskID.String()).
		Str("task_type", string(t.Type)).
		Str("presentation_id", t.Context.PresentationID).
		Msg("task created")

	if s.notifier == nil || notificationMessage == "" {
		return nil
	}
	n := notification.NewNotification(string(t.Type), notification.LevelInfo, s.companyID, notificationMessage, t.Context.JSON())
	if err := s.notifier.CreateNotification(ctx, n); err != nil {
		s.logger.Warn().Err(err).Str("task_id", t.TaskID.String()).Msg("failed to notify about task")
	}
	return nil
}

// ListTasks lists tasks matching filter.
func (s *Service) ListTasks(ctx context.Context, filter task.Filter) ([]*task.Task, error) {
	return s.taskRepo.List(ctx, filter, listLimit, 0)
}

// UpdateTaskStatus moves every task of update.Type under update.Context to
// update.Status. Tasks that cannot make the transition are left alone.
func (s *Service) UpdateTaskStatus(ctx context.Context, update task.StatusUpdate) error {
	tasks, err := s.taskRepo.List(ctx, task.Filter{Type: &update.Type, Context: &update.Context}, listLimit, 0)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		from := t.Status
		if err := t.TransitionTo(update.Status, update.Outcome); err != nil {
			if errors.Is(err, task.ErrInvalidTransition) {
				s.logger.Debug().
					Str("task_id", t.TaskID.String()).
					Str("from", string(from)).
					Str("to", string(update.Status)).
					Msg("skipping task status change")
				continue
			}
			return err
		}
		if from == t.Status {
			continue
		}
		if err := s.taskRepo.Update(ctx, t); err != nil {
			return err
		}
		s.logger.Info().
			Str("task_id", t.TaskID.String()).
			Str("from", string(from)).
			Str("to", string(t.Status)).
			Msg("task status updated")
	}
	return nil
}
