package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/execution-hub/presentation-hub/internal/apperr"
	"github.com/execution-hub/presentation-hub/internal/ledger"
)

// Routing keys of presentation contract events.
const (
	RoutingKeyCreated     = "lcpresentation.created"
	RoutingKeyTransition  = "lcpresentation.transition"
	RoutingKeyDataUpdated = "lcpresentation.dataupdated"
)

var routingKeys = []string{RoutingKeyCreated, RoutingKeyTransition, RoutingKeyDataUpdated}

// Processor handles one ledger log.
type Processor interface {
	Process(ctx context.Context, log *ledger.Log) error
}

type outcome int

const (
	outcomeAck outcome = iota
	outcomeRequeue
	outcomePark
)

func (o outcome) String() string {
	switch o {
	case outcomeAck:
		return "ack"
	case outcomeRequeue:
		return "requeue"
	default:
		return "park"
	}
}

// Consumer reads ledger logs from a durable queue bound to the ledger
// exchange. Deliveries are handled one at a time.
type Consumer struct {
	conn      *amqp.Connection
	ch        *amqp.Channel
	exchange  string
	queue     string
	processor Processor
	logger    zerolog.Logger
}

func NewConsumer(amqpURL, exchange, queue string, processor Processor, logger zerolog.Logger) (*Consumer, error) {
	conn, ch, err := dial(amqpURL)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:      conn,
		ch:        ch,
		exchange:  exchange,
		queue:     queue,
		processor: processor,
		logger:    logger.With().Str("component", "ledger_consumer").Logger(),
	}, nil
}

// Run consumes until ctx is done or the channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.ch.ExchangeDeclare(c.exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	q, err := c.ch.QueueDeclare(c.queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	for _, key := range routingKeys {
		if err := c.ch.QueueBind(q.Name, key, c.exchange, false, nil); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	if err := c.ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}
	msgs, err := c.ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	c.logger.Info().Str("exchange", c.exchange).Str("queue", q.Name).Msg("consuming ledger events")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.settle(d, c.handle(ctx, d.RoutingKey, d.Body, d.Redelivered))
		}
	}
}

func (c *Consumer) settle(d amqp.Delivery, o outcome) {
	var err error
	switch o {
	case outcomeAck:
		err = d.Ack(false)
	case outcomeRequeue:
		err = d.Nack(false, true)
	case outcomePark:
		err = d.Nack(false, false)
	}
	if err != nil {
		c.logger.Error().Err(err).Str("outcome", o.String()).Msg("failed to settle delivery")
	}
}

// handle maps a processing result to a delivery outcome. Retryable errors
// are requeued once, then parked.
func (c *Consumer) handle(ctx context.Context, routingKey string, body []byte, redelivered bool) outcome {
	var log ledger.Log
	if err := json.Unmarshal(body, &log); err != nil {
		c.logger.Warn().Err(err).Str("routing_key", routingKey).Msg("dropping undecodable delivery")
		return outcomeAck
	}

	err := c.processor.Process(ctx, &log)
	if err == nil {
		return outcomeAck
	}

	o := outcomePark
	if apperr.Retryable(err) && !redelivered {
		o = outcomeRequeue
	}
	c.logger.Warn().
		Err(err).
		Str("routing_key", routingKey).
		Str("tx_hash", log.TransactionHash).
		Uint64("log_index", log.LogIndex).
		Bool("redelivered", redelivered).
		Str("outcome", o.String()).
		Msg("ledger event processing failed")
	return o
}

func (c *Consumer) Close() {
	if c.ch != nil {
		c.ch.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
