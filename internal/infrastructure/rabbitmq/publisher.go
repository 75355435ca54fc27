package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/execution-hub/presentation-hub/internal/domain/notification"
)

// Publisher sends notifications to a topic exchange, routed by product and
// recipient company.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	conn, ch, err := dial(amqpURL)
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) PublishNotification(ctx context.Context, n *notification.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    n.NotificationID.String(),
		Timestamp:    time.Now(),
		Body:         body,
	}
	key := NotificationRoutingKey(n)

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, msg)
	if err == nil {
		return nil
	}
	// one retry on a fresh channel
	ch, chErr := p.conn.Channel()
	if chErr != nil {
		return err
	}
	p.ch = ch
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, msg)
}

// NotificationRoutingKey is "<product>.<company>".
func NotificationRoutingKey(n *notification.Notification) string {
	return n.ProductID + "." + n.ToCompany
}

func (p *Publisher) Close() {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
