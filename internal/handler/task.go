package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskdeck/taskdeck/internal/handler/dto"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/service"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	svc    *service.TaskService
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /tasks/.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "Invalid request body", nil)
		return
	}

	task, err := h.svc.CreateTask(r.Context(), service.CreateTaskInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("task_created",
		"task_id", task.ID,
		"user_id", task.UserID,
	)

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// List handles GET /tasks/{user_id}.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	tasks, err := h.svc.ListTasks(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// UpdateStatus handles PUT /tasks/{task_id}/status.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "task_id")

	var req dto.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "Invalid request body", nil)
		return
	}

	task, err := h.svc.UpdateStatus(r.Context(), taskID, model.TaskStatus(req.Status))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("task_status_updated",
		"task_id", task.ID,
		"status", task.Status,
	)

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// Delete handles DELETE /tasks/{task_id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "task_id")

	if err := h.svc.DeleteTask(r.Context(), taskID); err != nil {
		// A second delete of the same task also lands here.
		if errors.Is(err, service.ErrTaskNotFound) {
			writeError(w, http.StatusNotFound, "Task not found or already deleted")
			return
		}
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("task_deleted", "task_id", taskID)

	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError maps task service errors to HTTP responses.
func (h *TaskHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		writeValidationError(w, "Invalid request", map[string]string{"title": "must be a non-empty string"})
	case errors.Is(err, service.ErrUserIDRequired):
		writeValidationError(w, "Invalid request", map[string]string{"user_id": "must not be empty"})
	case errors.Is(err, service.ErrInvalidStatus):
		writeValidationError(w, "Invalid request", map[string]string{"status": "must be one of TO_DO, IN_PROGRESS, DONE"})
	case errors.Is(err, service.ErrInvalidTaskID):
		writeError(w, http.StatusBadRequest, "Invalid task ID format")
	case errors.Is(err, service.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "Task not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
