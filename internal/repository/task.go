package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taskdeck/taskdeck/internal/model"
)

// ErrTaskNotFound is returned when no task matches the operation's criteria.
var ErrTaskNotFound = errors.New("task not found")

// CreateTask inserts a new task into the database.
func (r *Repository) CreateTask(ctx context.Context, task *model.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, title, description, status, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
		task.DeletedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetTaskByID retrieves a task by its ID, including soft-deleted tasks.
func (r *Repository) GetTaskByID(ctx context.Context, id string) (*model.Task, error) {
	query := `
		SELECT id, user_id, title, description, status, created_at, updated_at, deleted_at
		FROM tasks
		WHERE id = $1
	`

	task, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task by ID: %w", err)
	}

	return task, nil
}

// ListTasksByUser retrieves all non-deleted tasks for a user.
// Ordered by creation time then ID so repeated calls over a stable
// dataset return tasks in the same (insertion) order.
func (r *Repository) ListTasksByUser(ctx context.Context, userID string) ([]*model.Task, error) {
	query := `
		SELECT id, user_id, title, description, status, created_at, updated_at, deleted_at
		FROM tasks
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*model.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTaskStatus sets a task's status and bumps updated_at, returning
// the full updated record. Matches by ID only: soft-deleted tasks remain
// addressable for status updates.
// Timestamps come from the application clock, the same source that set
// created_at, so updated_at always moves forward relative to it.
func (r *Repository) UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus) (*model.Task, error) {
	query := `
		UPDATE tasks
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, user_id, title, description, status, created_at, updated_at, deleted_at
	`

	task, err := scanTask(r.pool.QueryRow(ctx, query, id, status, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return task, nil
}

// SoftDeleteTask marks a task deleted by setting deleted_at.
// Only matches tasks that are not already deleted, so a second delete
// of the same task reports ErrTaskNotFound.
func (r *Repository) SoftDeleteTask(ctx context.Context, id string) error {
	query := `
		UPDATE tasks
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.pool.Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// scanTask scans a single row into a Task model.
func scanTask(row pgx.Row) (*model.Task, error) {
	var task model.Task
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
