package service

import (
	"context"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/taskdeck/taskdeck/internal/model"
)

// Validation must reject bad input before any store access, so these
// tests run against a service with no repository behind it.

func TestTaskService_CreateTask_Validation(t *testing.T) {
	svc := NewTaskService(nil, nil)

	tests := []struct {
		name    string
		input   CreateTaskInput
		wantErr error
	}{
		{"empty title", CreateTaskInput{UserID: "u1", Title: ""}, ErrTitleRequired},
		{"whitespace title", CreateTaskInput{UserID: "u1", Title: "   "}, ErrTitleRequired},
		{"missing user_id", CreateTaskInput{UserID: "", Title: "Buy milk"}, ErrUserIDRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateTask(context.Background(), tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTaskService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewTaskService(nil, nil)

	for _, status := range []model.TaskStatus{"", "to_do", "ARCHIVED", "DELETED"} {
		if _, err := svc.UpdateStatus(context.Background(), ulid.Make().String(), status); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("status %q: expected ErrInvalidStatus, got %v", status, err)
		}
	}
}

func TestTaskService_UpdateStatus_RejectsMalformedID(t *testing.T) {
	svc := NewTaskService(nil, nil)

	if _, err := svc.UpdateStatus(context.Background(), "not-a-ulid", model.StatusDone); !errors.Is(err, ErrInvalidTaskID) {
		t.Errorf("expected ErrInvalidTaskID, got %v", err)
	}
}

func TestTaskService_DeleteTask_RejectsMalformedID(t *testing.T) {
	svc := NewTaskService(nil, nil)

	if err := svc.DeleteTask(context.Background(), "12345"); !errors.Is(err, ErrInvalidTaskID) {
		t.Errorf("expected ErrInvalidTaskID, got %v", err)
	}
}

func TestCredentials_Validation(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		wantErr error
	}{
		{"valid", Credentials{Email: "a@b.co", Password: "pw"}, nil},
		{"empty email", Credentials{Email: "", Password: "pw"}, ErrInvalidEmail},
		{"no at sign", Credentials{Email: "invalid-email", Password: "pw"}, ErrInvalidEmail},
		{"no domain", Credentials{Email: "a@b", Password: "pw"}, ErrInvalidEmail},
		{"empty password", Credentials{Email: "a@b.co", Password: ""}, ErrPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
