package scheduler

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestScheduler_Add(t *testing.T) {
	s := New(zerolog.Nop())
	noop := func(context.Context) error { return nil }

	assert.NoError(t, s.Add(Job{Name: "sweep", Schedule: "@every 5m", Run: noop}))
	assert.NoError(t, s.Add(Job{Name: "retry", Schedule: "*/2 * * * *", Run: noop}))
	assert.Error(t, s.Add(Job{Name: "bad", Schedule: "every so often", Run: noop}))
}
