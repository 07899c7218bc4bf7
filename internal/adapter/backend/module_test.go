package backend

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/butcherynv/posdesk/internal/config"
	"github.com/butcherynv/posdesk/internal/metrics"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{BackendAddress: "http://example.com", RequestTimeout: time.Second}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger, Metrics: metrics.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}

func TestNewClientRejectsBadAddress(t *testing.T) {
	cfg := &config.Config{BackendAddress: "://broken"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := newClient(clientParams{Config: cfg, Logger: logger, Metrics: metrics.New()}); err == nil {
		t.Fatal("expected error for malformed address")
	}
}
