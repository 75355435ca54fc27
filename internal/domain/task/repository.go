package task

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository,Manager

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines task persistence.
type Repository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, taskID uuid.UUID) (*Task, error)
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Task, error)
	Update(ctx context.Context, task *Task) error
}

// Manager is the task surface used by the presentation workflow.
type Manager interface {
	CreateTask(ctx context.Context, t *Task, notificationMessage string) error
	ListTasks(ctx context.Context, filter Filter) ([]*Task, error)
	UpdateTaskStatus(ctx context.Context, update StatusUpdate) error
}
