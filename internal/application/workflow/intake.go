package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/execution-hub/presentation-hub/internal/ledger"
)

// LogHandler consumes raw ledger logs.
type LogHandler interface {
	Handle(ctx context.Context, log *ledger.Log) error
}

// Deduper remembers logs that were handled successfully.
type Deduper interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// Intake is the single entry for ledger logs, shared by the broker consumer
// and the HTTP endpoint.
type Intake struct {
	handler LogHandler
	dedupe  Deduper
	logger  zerolog.Logger
}

// NewIntake wraps handler. A nil dedupe disables deduplication.
func NewIntake(handler LogHandler, dedupe Deduper, logger zerolog.Logger) *Intake {
	return &Intake{
		handler: handler,
		dedupe:  dedupe,
		logger:  logger.With().Str("service", "intake").Logger(),
	}
}

// Process handles log once. Errors from the handler are returned unchanged
// so callers can classify them.
func (i *Intake) Process(ctx context.Context, log *ledger.Log) error {
	key := ProcessedKey(log)
	if i.dedupe != nil {
		seen, err := i.dedupe.Seen(ctx, key)
		if err != nil {
			i.logger.Warn().Err(err).Str("key", key).Msg("dedupe lookup failed, processing anyway")
		} else if seen {
			i.logger.Debug().Str("key", key).Msg("ledger log already processed")
			return nil
		}
	}

	if err := i.handler.Handle(ctx, log); err != nil {
		return err
	}

	if i.dedupe != nil {
		if err := i.dedupe.Mark(ctx, key); err != nil {
			i.logger.Warn().Err(err).Str("key", key).Msg("failed to mark ledger log processed")
		}
	}
	return nil
}

// ProcessedKey identifies a log by emitting contract, transaction and position.
func ProcessedKey(log *ledger.Log) string {
	return fmt.Sprintf("processed:%s:%s:%d",
		strings.ToLower(log.Address), strings.ToLower(log.TransactionHash), log.LogIndex)
}
