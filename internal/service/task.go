package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/repository"
)

// Task service errors.
var (
	ErrTitleRequired  = errors.New("title must be a non-empty string")
	ErrUserIDRequired = errors.New("user_id is required")
	ErrInvalidStatus  = errors.New("status must be one of TO_DO, IN_PROGRESS, DONE")
	ErrInvalidTaskID  = errors.New("invalid task ID format")
	ErrTaskNotFound   = errors.New("task not found")
)

// TaskService handles task business logic.
type TaskService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo *repository.Repository, recorder metrics.Recorder) *TaskService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &TaskService{
		repo:    repo,
		metrics: recorder,
	}
}

// CreateTaskInput defines input for creating a task.
type CreateTaskInput struct {
	UserID      string
	Title       string
	Description string
}

// CreateTask creates a new task in the TO_DO state.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if input.UserID == "" {
		return nil, ErrUserIDRequired
	}

	now := time.Now().UTC()
	task := &model.Task{
		ID:          ulid.Make().String(),
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      model.StatusToDo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.metrics.IncTaskCreated()

	return task, nil
}

// ListTasks returns all non-deleted tasks owned by the user.
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	tasks, err := s.repo.ListTasksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus changes a task's status and returns the updated record.
// Soft-deleted tasks remain addressable here; only listing and delete
// honor the deleted_at flag.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID string, status model.TaskStatus) (*model.Task, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if err := validateTaskID(taskID); err != nil {
		return nil, err
	}

	task, err := s.repo.UpdateTaskStatus(ctx, taskID, status)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	s.metrics.IncTaskStatusUpdated()

	return task, nil
}

// DeleteTask soft-deletes a task. A second delete of the same task
// reports ErrTaskNotFound.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	if err := validateTaskID(taskID); err != nil {
		return err
	}

	if err := s.repo.SoftDeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.metrics.IncTaskDeleted()

	return nil
}

// validateTaskID rejects identifiers that cannot be task IDs before
// any store access. Task IDs are ULIDs.
func validateTaskID(id string) error {
	if _, err := ulid.ParseStrict(id); err != nil {
		return ErrInvalidTaskID
	}
	return nil
}
