package task

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/execution-hub/presentation-hub/internal/domain/notification"
	notificationMocks "github.com/execution-hub/presentation-hub/internal/domain/notification/mocks"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
	taskMocks "github.com/execution-hub/presentation-hub/internal/domain/task/mocks"
)

func TestService_CreateTask(t *testing.T) {
	ctx := context.Background()
	taskCtx := task.NewContext("LC-1", "pres-1")

	t.Run("persists and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := taskMocks.NewMockRepository(ctrl)
		sender := notificationMocks.NewMockSender(ctrl)
		svc := NewService(repo, sender, "bank-co", zerolog.Nop())

		tk := task.NewTask(task.TypeReviewPresentation, "Review presentation PR-1", "ben-co", taskCtx)
		repo.EXPECT().Create(ctx, tk).Return(nil)
		sender.EXPECT().CreateNotification(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n *notification.Notification) error {
			assert.Equal(t, "bank-co", n.ToCompany)
			assert.Equal(t, string(task.TypeReviewPresentation), n.Type)
			assert.Equal(t, "Review presentation PR-1, sent by Beneficiary", n.Message)
			assert.JSONEq(t, string(taskCtx.JSON()), string(n.Context))
			return nil
		})

		require.NoError(t, svc.CreateTask(ctx, tk, "Review presentation PR-1, sent by Beneficiary"))
	})

	t.Run("notification failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := taskMocks.NewMockRepository(ctrl)
		sender := notificationMocks.NewMockSender(ctrl)
		svc := NewService(repo, sender, "bank-co", zerolog.Nop())

		tk := task.NewTask(task.TypeReviewPresentation, "Review", "ben-co", taskCtx)
		repo.EXPECT().Create(ctx, tk).Return(nil)
		sender.EXPECT().CreateNotification(ctx, gomock.Any()).Return(errors.New("broker down"))

		require.NoError(t, svc.CreateTask(ctx, tk, "msg"))
	})

	t.Run("store failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := taskMocks.NewMockRepository(ctrl)
		svc := NewService(repo, nil, "bank-co", zerolog.Nop())

		tk := task.NewTask(task.TypeReviewPresentation, "Review", "ben-co", taskCtx)
		repo.EXPECT().Create(ctx, tk).Return(errors.New("db down"))

		assert.Error(t, svc.CreateTask(ctx, tk, "msg"))
	})
}

func TestService_UpdateTaskStatus(t *testing.T) {
	ctx := context.Background()
	taskCtx := task.NewContext("LC-1", "pres-1")
	taskType := task.TypeReviewPresentation
	filter := task.Filter{Type: &taskType, Context: &taskCtx}

	t.Run("resolves open tasks and records outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := taskMocks.NewMockRepository(ctrl)
		svc := NewService(repo, nil, "bank-co", zerolog.Nop())

		open := task.NewTask(taskType, "Review", "ben-co", taskCtx)
		done := task.NewTask(taskType, "Review", "ben-co", taskCtx)
		done.Status = task.StatusDone
		repo.EXPECT().List(ctx, filter, listLimit, 0).Return([]*task.Task{open, done}, nil)
		repo.EXPECT().Update(ctx, open).Return(nil)

		outcome := true
		err := svc.UpdateTaskStatus(ctx, task.StatusUpdate{Type: taskType, Context: taskCtx, Status: task.StatusDone, Outcome: &outcome})
		require.NoError(t, err)
		assert.Equal(t, task.StatusDone, open.Status)
		require.NotNil(t, open.Outcome)
		assert.True(t, *open.Outcome)
	})

	t.Run("already in target status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := taskMocks.NewMockRepository(ctrl)
		svc := NewService(repo, nil, "bank-co", zerolog.Nop())

		pending := task.NewTask(taskType, "Review", "ben-co", taskCtx)
		pending.Status = task.StatusPending
		repo.EXPECT().List(ctx, filter, listLimit, 0).Return([]*task.Task{pending}, nil)

		require.NoError(t, svc.UpdateTaskStatus(ctx, task.StatusUpdate{Type: taskType, Context: taskCtx, Status: task.StatusPending}))
	})

	t.Run("update failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := taskMocks.NewMockRepository(ctrl)
		svc := NewService(repo, nil, "bank-co", zerolog.Nop())

		open := task.NewTask(taskType, "Review", "ben-co", taskCtx)
		repo.EXPECT().List(ctx, filter, listLimit, 0).Return([]*task.Task{open}, nil)
		repo.EXPECT().Update(ctx, open).Return(errors.New("db down"))

		assert.Error(t, svc.UpdateTaskStatus(ctx, task.StatusUpdate{Type: taskType, Context: taskCtx, Status: task.StatusPending}))
	})
}
