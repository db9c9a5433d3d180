package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"
)

func newTestServer() *Server {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	return New(handler, Options{
		Port:            0,
		ShutdownTimeout: time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestServer_ShutdownFuncsRunInReverseOrder(t *testing.T) {
	srv := newTestServer()

	var order []string
	srv.OnShutdown("database", func(ctx context.Context) error {
		order = append(order, "database")
		return nil
	})
	srv.OnShutdown("redis", func(ctx context.Context) error {
		order = append(order, "redis")
		return nil
	})

	if err := srv.gracefulShutdown(); err != nil {
		t.Fatalf("graceful shutdown: %v", err)
	}

	if len(order) != 2 || order[0] != "redis" || order[1] != "database" {
		t.Errorf("expected LIFO shutdown order [redis database], got %v", order)
	}
}

func TestServer_ShutdownReportsComponentError(t *testing.T) {
	srv := newTestServer()

	closeErr := errors.New("connection already closed")
	srv.OnShutdown("redis", func(ctx context.Context) error {
		return closeErr
	})

	if err := srv.gracefulShutdown(); !errors.Is(err, closeErr) {
		t.Errorf("expected component error to surface, got %v", err)
	}
}
