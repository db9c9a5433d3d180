package model

import (
	"testing"
	"time"
)

func TestTaskStatus_IsValid(t *testing.T) {
	tests := []struct {
		status TaskStatus
		valid  bool
	}{
		{StatusToDo, true},
		{StatusInProgress, true},
		{StatusDone, true},
		{TaskStatus(""), false},
		{TaskStatus("to_do"), false},
		{TaskStatus("ARCHIVED"), false},
	}

	for _, tt := range tests {
		if got := tt.status.IsValid(); got != tt.valid {
			t.Errorf("TaskStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.valid)
		}
	}
}

func TestTask_IsDeleted(t *testing.T) {
	task := &Task{Status: StatusToDo}
	if task.IsDeleted() {
		t.Error("expected task without deleted_at to not be deleted")
	}

	now := time.Now().UTC()
	task.DeletedAt = &now
	if !task.IsDeleted() {
		t.Error("expected task with deleted_at to be deleted")
	}
}
