package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/execution-hub/presentation-hub/internal/domain/task"
)

const taskColumns = `id, task_id, task_type, status, summary, counterparty_static_id, required_permission, context, outcome, created_at, updated_at`

// TaskRepository implements task.Repository.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (task_id, task_type, status, summary, counterparty_static_id, required_permission, context, outcome, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, t.TaskID, t.Type, t.Status, t.Summary, t.CounterpartyStaticID, t.RequiredPermission, t.Context.JSON(), t.Outcome, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID uuid.UUID) (*task.Task, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE task_id=$1`, taskID)
	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

// List matches Context by jsonb containment, so a partial context selects
// every task of the presentation.
func (r *TaskRepository) List(ctx context.Context, filter task.Filter, limit, offset int) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	args := []interface{}{}
	idx := 1
	if filter.Type != nil {
		query += " WHERE task_type=$" + itoa(idx)
		args = append(args, *filter.Type)
		idx++
	}
	if filter.Status != nil {
		query += addWhere(query) + " status=$" + itoa(idx)
		args = append(args, *filter.Status)
		idx++
	}
	if filter.Context != nil {
		query += addWhere(query) + " context @> $" + itoa(idx) + "::jsonb"
		args = append(args, string(filter.Context.JSON()))
		idx++
	}
	query += " ORDER BY created_at DESC LIMIT $" + itoa(idx) + " OFFSET $" + itoa(idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE tasks SET status=$1, summary=$2, outcome=$3, updated_at=$4
		WHERE task_id=$5
	`, t.Status, t.Summary, t.Outcome, t.UpdatedAt, t.TaskID)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func scanTask(row pgx.Row) (*task.Task, error) {
	var t task.Task
	var ctxData []byte
	if err := row.Scan(&t.ID, &t.TaskID, &t.Type, &t.Status, &t.Summary, &t.CounterpartyStaticID, &t.RequiredPermission, &ctxData, &t.Outcome, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if len(ctxData) > 0 {
		if err := json.Unmarshal(ctxData, &t.Context); err != nil {
			return nil, fmt.Errorf("decode task context: %w", err)
		}
	}
	return &t, nil
}
