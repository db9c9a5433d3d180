//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
}

type taskResponse struct {
	TaskID      string     `json:"task_id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// TestE2ESmoke exercises the full user journey against a running server:
// register, login, create a task, list it, move it through statuses,
// soft delete it, and verify it disappears from the list.
func TestE2ESmoke(t *testing.T) {
	baseURL := envOrDefault("TASKDECK_BASE_URL", "http://localhost:8080")

	email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())
	password := "correct horse battery staple"

	// Register
	registered := doAuth(t, baseURL, "/auth/register", email, password)
	if registered.AccessToken == "" {
		t.Fatal("register returned empty access token")
	}

	// Duplicate registration is rejected
	resp := postJSON(t, baseURL+"/auth/register", "", map[string]string{
		"email":    email,
		"password": password,
	})
	assertStatus(t, resp, http.StatusBadRequest)
	var dup errorResponse
	decodeBody(t, resp, &dup)
	if dup.Detail != "Email already registered" {
		t.Errorf("unexpected duplicate register detail: %q", dup.Detail)
	}

	// Login
	logged := doAuth(t, baseURL, "/auth/login", email, password)
	token := logged.AccessToken

	// Requests without a token are rejected
	resp = getWithToken(t, baseURL+"/tasks/"+logged.UserID, "")
	assertStatus(t, resp, http.StatusUnauthorized)
	resp.Body.Close()

	// Create a task
	resp = postJSON(t, baseURL+"/tasks/", token, map[string]string{
		"user_id":     logged.UserID,
		"title":       "Write the release notes",
		"description": "Cover the auth changes.",
	})
	assertStatus(t, resp, http.StatusOK)
	var created taskResponse
	decodeBody(t, resp, &created)
	if created.Status != "TO_DO" {
		t.Errorf("expected new task status TO_DO, got %s", created.Status)
	}

	// List tasks
	tasks := listTasks(t, baseURL, token, logged.UserID)
	if len(tasks) != 1 || tasks[0].TaskID != created.TaskID {
		t.Fatalf("expected one task %s in list, got %+v", created.TaskID, tasks)
	}

	// Move the task through its statuses
	for _, status := range []string{"IN_PROGRESS", "DONE"} {
		resp = putJSON(t, baseURL+"/tasks/"+created.TaskID+"/status", token, map[string]string{
			"status": status,
		})
		assertStatus(t, resp, http.StatusOK)
		var updated taskResponse
		decodeBody(t, resp, &updated)
		if updated.Status != status {
			t.Errorf("expected status %s, got %s", status, updated.Status)
		}
	}

	// Soft delete
	resp = deleteWithToken(t, baseURL+"/tasks/"+created.TaskID, token)
	assertStatus(t, resp, http.StatusNoContent)
	resp.Body.Close()

	// Deleted task no longer appears in the list
	tasks = listTasks(t, baseURL, token, logged.UserID)
	if len(tasks) != 0 {
		t.Errorf("expected empty task list after delete, got %+v", tasks)
	}

	// Second delete is a 404
	resp = deleteWithToken(t, baseURL+"/tasks/"+created.TaskID, token)
	assertStatus(t, resp, http.StatusNotFound)
	var gone errorResponse
	decodeBody(t, resp, &gone)
	if gone.Detail != "Task not found or already deleted" {
		t.Errorf("unexpected second delete detail: %q", gone.Detail)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func doAuth(t *testing.T, baseURL, path, email, password string) tokenResponse {
	t.Helper()

	resp := postJSON(t, baseURL+path, "", map[string]string{
		"email":    email,
		"password": password,
	})
	assertStatus(t, resp, http.StatusOK)

	var out tokenResponse
	decodeBody(t, resp, &out)
	return out
}

func listTasks(t *testing.T, baseURL, token, userID string) []taskResponse {
	t.Helper()

	resp := getWithToken(t, baseURL+"/tasks/"+userID, token)
	assertStatus(t, resp, http.StatusOK)

	var out []taskResponse
	decodeBody(t, resp, &out)
	return out
}

func postJSON(t *testing.T, url, token string, payload any) *http.Response {
	t.Helper()
	return sendJSON(t, http.MethodPost, url, token, payload)
}

func putJSON(t *testing.T, url, token string, payload any) *http.Response {
	t.Helper()
	return sendJSON(t, http.MethodPut, url, token, payload)
}

func sendJSON(t *testing.T, method, url, token string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	return resp
}

func getWithToken(t *testing.T, url, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	return resp
}

func deleteWithToken(t *testing.T, url, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s failed: %v", url, err)
	}
	return resp
}

func assertStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		t.Fatalf("expected status %d, got %d: %s", want, resp.StatusCode, body)
	}
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}
