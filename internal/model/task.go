// Package model defines domain entities for the application.
package model

import "time"

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "TO_DO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// IsValid checks if the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	return s == StatusToDo || s == StatusInProgress || s == StatusDone
}

// Task represents a unit of work owned by a user.
// UserID is a reference only; it is not enforced against the users table.
type Task struct {
	ID          string     `json:"task_id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// IsDeleted returns true if the task has been soft-deleted.
func (t *Task) IsDeleted() bool {
	return t.DeletedAt != nil
}
