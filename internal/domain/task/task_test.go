package task

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	ctx := NewContext("LC-1", "pres-1")
	tk := NewTask(TypeReviewPresentation, "Review presentation PR-1", "ben", ctx)

	assert.NotEqual(t, uuid.Nil, tk.TaskID)
	assert.Equal(t, StatusToDo, tk.Status)
	assert.Equal(t, ContextTypePresentation, tk.Context.Type)
	assert.Equal(t, "pres-1", tk.Context.PresentationID)
	assert.JSONEq(t, `{"type":"LCPresentation","lcid":"LC-1","presentationId":"pres-1"}`, string(ctx.JSON()))
}

func TestTask_TransitionTo(t *testing.T) {
	t.Run("pending then back to to-do", func(t *testing.T) {
		tk := NewTask(TypeReviewPresentation, "s", "c", NewContext("l", "p"))
		require.NoError(t, tk.TransitionTo(StatusPending, nil))
		require.NoError(t, tk.TransitionTo(StatusToDo, nil))
		assert.Equal(t, StatusToDo, tk.Status)
	})

	t.Run("done records outcome", func(t *testing.T) {
		tk := NewTask(TypeReviewPresentation, "s", "c", NewContext("l", "p"))
		outcome := true
		require.NoError(t, tk.TransitionTo(StatusDone, &outcome))
		require.NotNil(t, tk.Outcome)
		assert.True(t, *tk.Outcome)
	})

	t.Run("done is terminal", func(t *testing.T) {
		tk := NewTask(TypeReviewPresentation, "s", "c", NewContext("l", "p"))
		require.NoError(t, tk.TransitionTo(StatusDone, nil))
		assert.ErrorIs(t, tk.TransitionTo(StatusToDo, nil), ErrInvalidTransition)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		tk := NewTask(TypeReviewPresentation, "s", "c", NewContext("l", "p"))
		tk.Status = StatusDone
		assert.NoError(t, tk.TransitionTo(StatusDone, nil))
	})
}
