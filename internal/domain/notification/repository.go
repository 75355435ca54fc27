package notification

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository,Sender,Publisher,SSEHub

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for notification persistence
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, notificationID uuid.UUID) (*Notification, error)
	Update(ctx context.Context, n *Notification) error
	ListPending(ctx context.Context, limit int) ([]*Notification, error)
	ListRetryable(ctx context.Context, limit int) ([]*Notification, error)
}

// Sender creates notifications for counterparties
type Sender interface {
	CreateNotification(ctx context.Context, n *Notification) error
}

// Publisher delivers a notification to the message bus
type Publisher interface {
	PublishNotification(ctx context.Context, n *Notification) error
}

// SSEHub fans notifications out to connected UI clients
type SSEHub interface {
	Register(client *SSEClient)
	Unregister(clientID string)
	BroadcastToAll(message *SSEMessage)
	GetClientCount() int
}
