package sse

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/execution-hub/presentation-hub/internal/domain/notification"
)

func TestHub_BroadcastToAll(t *testing.T) {
	h := NewHub(0, zerolog.Nop())
	a := notification.NewSSEClient("a")
	b := notification.NewSSEClient("b")
	h.Register(a)
	h.Register(b)
	require.Equal(t, 2, h.GetClientCount())

	msg := notification.NewSSEMessage("notification", []byte(`{"type":"x"}`))
	h.BroadcastToAll(msg)

	assert.Equal(t, msg, <-a.MessageChan)
	assert.Equal(t, msg, <-b.MessageChan)
}

func TestHub_SendToClient(t *testing.T) {
	h := NewHub(0, zerolog.Nop())
	c := &notification.SSEClient{ClientID: "c", MessageChan: make(chan *notification.SSEMessage, 1)}
	h.Register(c)

	msg := notification.NewSSEMessage("notification", []byte(`{}`))
	require.NoError(t, h.SendToClient("c", msg))
	assert.ErrorIs(t, h.SendToClient("c", msg), notification.ErrChannelFull)
	assert.ErrorIs(t, h.SendToClient("missing", msg), notification.ErrClientNotFound)
}

func TestHub_Unregister(t *testing.T) {
	h := NewHub(0, zerolog.Nop())
	c := notification.NewSSEClient("c")
	h.Register(c)
	h.Unregister("c")

	assert.Equal(t, 0, h.GetClientCount())
	_, open := <-c.MessageChan
	assert.False(t, open)

	// second unregister is a no-op
	h.Unregister("c")
}

func TestHub_StartHeartbeatAndStop(t *testing.T) {
	h := NewHub(10*time.Millisecond, zerolog.Nop())
	c := notification.NewSSEClient("c")
	h.Register(c)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Start(ctx)
		close(done)
	}()

	select {
	case msg := <-c.MessageChan:
		assert.Equal(t, eventHeartbeat, msg.Event)
	case <-time.After(time.Second):
		t.Fatal("no heartbeat")
	}

	cancel()
	<-done
	assert.Equal(t, 0, h.GetClientCount())
}
