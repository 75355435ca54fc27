package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/execution-hub/presentation-hub/internal/domain/notification"
)

const sseEventNotification = "notification"

// Service persists notifications and delivers them to the message bus and
// connected UI clients.
type Service struct {
	notificationRepo notification.Repository
	publisher        notification.Publisher
	sseHub           notification.SSEHub
	logger           zerolog.Logger
}

// NewService creates a new notification service. publisher may be nil when
// no broker is configured.
func NewService(
	notificationRepo notification.Repository,
	publisher notification.Publisher,
	sseHub notification.SSEHub,
	logger zerolog.Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		sseHub:           sseHub,
		logger:           logger.With().Str("service", "notification").Logger(),
	}
}

// CreateNotification saves n and attempts delivery. A failed delivery is
// kept for retry and does not fail the call.
func (s *Service) CreateNotification(ctx context.Context, n *notification.Notification) error {
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	s.logger.Info().
		Str("notification_id", n.NotificationID.String()).
		Str("type", n.Type).
		Str("to_company", n.ToCompany).
		Msg("notification created")

	if err := s.deliver(ctx, n); err != nil {
		s.logger.Warn().Err(err).Str("notification_id", n.NotificationID.String()).Msg("notification delivery deferred")
	}
	return nil
}

// deliver publishes n, broadcasts it over SSE and persists the outcome.
func (s *Service) deliver(ctx context.Context, n *notification.Notification) error {
	var sendErr error
	if s.publisher != nil {
		sendErr = s.publisher.PublishNotification(ctx, n)
	}
	if sendErr == nil {
		s.broadcast(n)
		if err := n.MarkSent(); err != nil {
			return err
		}
	} else if err := n.MarkFailed(sendErr.Error()); err != nil {
		return errors.Join(sendErr, err)
	}

	if err := s.notificationRepo.Update(ctx, n); err != nil {
		s.logger.Error().Err(err).Str("notification_id", n.NotificationID.String()).Msg("failed to persist notification state")
		return errors.Join(sendErr, err)
	}
	return sendErr
}

func (s *Service) broadcast(n *notification.Notification) {
	if s.sseHub == nil {
		return
	}
	data, err := json.Marshal(n)
	if err != nil {
		s.logger.Warn().Err(err).Str("notification_id", n.NotificationID.String()).Msg("failed to encode SSE payload")
		return
	}
	s.sseHub.BroadcastToAll(notification.NewSSEMessage(sseEventNotification, data))
}

// ProcessPending delivers notifications still waiting for a first attempt.
func (s *Service) ProcessPending(ctx context.Context, limit int) (int, error) {
	pending, err := s.notificationRepo.ListPending(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	processed := 0
	for _, n := range pending {
		if err := s.deliver(ctx, n); err != nil {
			s.logger.Warn().Err(err).Str("notification_id", n.NotificationID.String()).Msg("failed to send pending notification")
			continue
		}
		processed++
	}
	return processed, nil
}

// ProcessRetryable retries failed notifications that have attempts left.
func (s *Service) ProcessRetryable(ctx context.Context, limit int) (int, error) {
	failed, err := s.notificationRepo.ListRetryable(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list retryable notifications: %w", err)
	}
	retried := 0
	for _, n := range failed {
		if err := n.ResetForRetry(); err != nil {
			s.logger.Warn().Err(err).Str("notification_id", n.NotificationID.String()).Msg("failed to reset notification for retry")
			continue
		}
		if err := s.notificationRepo.Update(ctx, n); err != nil {
			s.logger.Error().Err(err).Str("notification_id", n.NotificationID.String()).Msg("failed to persist notification reset state")
			continue
		}
		if err := s.deliver(ctx, n); err != nil {
			s.logger.Warn().
				Err(err).
				Str("notification_id", n.NotificationID.String()).
				Int("retry_count", n.RetryCount).
				Msg("retry failed")
			continue
		}
		retried++
	}
	return retried, nil
}

// GetSSEClientCount returns the number of connected SSE clients
func (s *Service) GetSSEClientCount() int {
	if s.sseHub == nil {
		return 0
	}
	return s.sseHub.GetClientCount()
}
