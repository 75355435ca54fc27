package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := InvalidOperation("Must be applicant")
	wrapped := fmt.Errorf("accept discrepancies: %w", base)

	assert.Equal(t, KindInvalidOperation, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindInvalidOperation))
	assert.False(t, Is(wrapped, KindInvalidMessage))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.False(t, Is(nil, KindNotFound))
}

func TestConnectionUnwraps(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Connection("failed to submit transaction", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to submit transaction: dial tcp: refused", err.Error())
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(NotFound("LC not found")))
	assert.True(t, Retryable(Connection("x", errors.New("y"))))
	assert.True(t, Retryable(errors.New("unclassified")))
	assert.False(t, Retryable(InvalidMessage("party mismatch")))
	assert.False(t, Retryable(InvalidOperation("no")))
	assert.False(t, Retryable(nil))
}
