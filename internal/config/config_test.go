package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load([]string{"-b", "http://backend:9000"}, noEnv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != ":8080" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.PageSize != 5 || cfg.CatalogPageSize != 6 {
		t.Fatalf("unexpected page sizes %d/%d", cfg.PageSize, cfg.CatalogPageSize)
	}
	if cfg.SalesWindow != 24*time.Hour {
		t.Fatalf("unexpected sales window %v", cfg.SalesWindow)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Fatalf("unexpected refresh interval %v", cfg.RefreshInterval)
	}
}

func TestLoadRequiresBackendAddress(t *testing.T) {
	if _, err := load(nil, noEnv); err == nil {
		t.Fatal("expected error when backend address is missing")
	}
}

func TestLoadEnvironmentOverridesDefaults(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"RUN_ADDRESS":     ":9090",
		"BACKEND_ADDRESS": "http://backend:9000",
		"PAGE_SIZE":       "10",
		"SALES_WINDOW":    "12h",
		"SERVICE_TOKEN":   "svc-token",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" || cfg.PageSize != 10 {
		t.Fatalf("environment not applied: %+v", cfg)
	}
	if cfg.SalesWindow != 12*time.Hour {
		t.Fatalf("unexpected sales window %v", cfg.SalesWindow)
	}
	if cfg.ServiceToken != "svc-token" {
		t.Fatalf("service token not applied")
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := load(
		[]string{"-a", ":7070", "-page-size", "3", "-window", "6h"},
		envMap(map[string]string{
			"RUN_ADDRESS":     ":9090",
			"BACKEND_ADDRESS": "http://backend:9000",
			"PAGE_SIZE":       "10",
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != ":7070" || cfg.PageSize != 3 {
		t.Fatalf("flags did not win: %+v", cfg)
	}
	if cfg.SalesWindow != 6*time.Hour {
		t.Fatalf("unexpected sales window %v", cfg.SalesWindow)
	}
}

func TestLoadAppliesYAMLFileBeneathEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posdesk.yaml")
	content := "run_address: \":6060\"\nbackend_address: \"http://file-backend:9000\"\npage_size: 7\nrefresh_interval: \"1m\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := load([]string{"-config", path}, envMap(map[string]string{
		"RUN_ADDRESS": ":9090",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Fatalf("environment should override the file, got %q", cfg.RunAddress)
	}
	if cfg.BackendAddress != "http://file-backend:9000" || cfg.PageSize != 7 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.RefreshInterval != time.Minute {
		t.Fatalf("unexpected refresh interval %v", cfg.RefreshInterval)
	}
}

func TestLoadRejectsBadDurations(t *testing.T) {
	if _, err := load([]string{"-b", "http://backend:9000", "-window", "soon"}, noEnv); err == nil {
		t.Fatal("expected error for malformed duration")
	}
}

func TestLoadRejectsMissingConfigFile(t *testing.T) {
	if _, err := load([]string{"-b", "http://backend:9000", "-config", "/does/not/exist.yaml"}, noEnv); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
