package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application level configuration. Precedence, lowest first:
// built-in defaults, YAML file, environment, flags.
type Config struct {
	RunAddress      string
	BackendAddress  string
	ServiceToken    string
	PageSize        int
	CatalogPageSize int
	SalesWindow     time.Duration
	RefreshInterval time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultPageSize        = 5
	defaultCatalogPageSize = 6
	defaultSalesWindow     = 24 * time.Hour
	defaultRefreshInterval = 30 * time.Second
	defaultRequestTimeout  = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// fileConfig is the YAML file shape; every field is optional.
type fileConfig struct {
	RunAddress      string `yaml:"run_address"`
	BackendAddress  string `yaml:"backend_address"`
	ServiceToken    string `yaml:"service_token"`
	PageSize        int    `yaml:"page_size"`
	CatalogPageSize int    `yaml:"catalog_page_size"`
	SalesWindow     string `yaml:"sales_window"`
	RefreshInterval string `yaml:"refresh_interval"`
	RequestTimeout  string `yaml:"request_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// Load parses configuration from the optional YAML file, environment
// variables and flags.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      defaultRunAddress,
		PageSize:        defaultPageSize,
		CatalogPageSize: defaultCatalogPageSize,
		SalesWindow:     defaultSalesWindow,
		RefreshInterval: defaultRefreshInterval,
		RequestTimeout:  defaultRequestTimeout,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	configPath := getString(lookup, "CONFIG_FILE", "")
	if path := flagValue(args, "config"); path != "" {
		configPath = path
	}
	if configPath != "" {
		if err := applyFile(cfg, configPath); err != nil {
			return nil, err
		}
	}

	cfg.RunAddress = getString(lookup, "RUN_ADDRESS", cfg.RunAddress)
	cfg.BackendAddress = getString(lookup, "BACKEND_ADDRESS", cfg.BackendAddress)
	cfg.ServiceToken = getString(lookup, "SERVICE_TOKEN", cfg.ServiceToken)
	cfg.PageSize = getInt(lookup, "PAGE_SIZE", cfg.PageSize)
	cfg.CatalogPageSize = getInt(lookup, "CATALOG_PAGE_SIZE", cfg.CatalogPageSize)
	cfg.SalesWindow = getDuration(lookup, "SALES_WINDOW", cfg.SalesWindow)
	cfg.RefreshInterval = getDuration(lookup, "REFRESH_INTERVAL", cfg.RefreshInterval)
	cfg.RequestTimeout = getDuration(lookup, "REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.ShutdownTimeout = getDuration(lookup, "SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)

	fs := flag.NewFlagSet("posdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		windowStr          = cfg.SalesWindow.String()
		refreshStr         = cfg.RefreshInterval.String()
		requestTimeoutStr  = cfg.RequestTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		configFlag         string
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.BackendAddress, "b", cfg.BackendAddress, "Upstream butchery API base URL")
	fs.StringVar(&cfg.ServiceToken, "service-token", cfg.ServiceToken, "Machine credential for background refreshes")
	fs.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "Orders per page")
	fs.IntVar(&cfg.CatalogPageSize, "catalog-page-size", cfg.CatalogPageSize, "Items/waiters per admin page")
	fs.StringVar(&windowStr, "window", windowStr, "Trailing sales aggregation window")
	fs.StringVar(&refreshStr, "refresh-interval", refreshStr, "Interval between snapshot refreshes")
	fs.StringVar(&requestTimeoutStr, "request-timeout", requestTimeoutStr, "Upstream request timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&configFlag, "config", configPath, "Path to YAML configuration file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SalesWindow, err = time.ParseDuration(windowStr); err != nil {
		return nil, fmt.Errorf("invalid sales window: %w", err)
	}

	if cfg.RefreshInterval, err = time.ParseDuration(refreshStr); err != nil {
		return nil, fmt.Errorf("invalid refresh interval: %w", err)
	}

	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}

	if cfg.CatalogPageSize <= 0 {
		cfg.CatalogPageSize = defaultCatalogPageSize
	}

	if cfg.SalesWindow <= 0 {
		cfg.SalesWindow = defaultSalesWindow
	}

	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.BackendAddress == "" {
		return nil, fmt.Errorf("backend address must be provided")
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if fc.RunAddress != "" {
		cfg.RunAddress = fc.RunAddress
	}
	if fc.BackendAddress != "" {
		cfg.BackendAddress = fc.BackendAddress
	}
	if fc.ServiceToken != "" {
		cfg.ServiceToken = fc.ServiceToken
	}
	if fc.PageSize > 0 {
		cfg.PageSize = fc.PageSize
	}
	if fc.CatalogPageSize > 0 {
		cfg.CatalogPageSize = fc.CatalogPageSize
	}

	durations := []struct {
		raw  string
		dst  *time.Duration
		name string
	}{
		{fc.SalesWindow, &cfg.SalesWindow, "sales_window"},
		{fc.RefreshInterval, &cfg.RefreshInterval, "refresh_interval"},
		{fc.RequestTimeout, &cfg.RequestTimeout, "request_timeout"},
		{fc.ShutdownTimeout, &cfg.ShutdownTimeout, "shutdown_timeout"},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("invalid %s in config file: %w", d.name, err)
		}
		*d.dst = parsed
	}

	return nil
}

// flagValue scans raw args for -name/--name ahead of the flag set, so file
// contents can be layered below env and flag precedence.
func flagValue(args []string, name string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		for _, prefix := range []string{"-" + name, "--" + name} {
			if arg == prefix && i+1 < len(args) {
				return args[i+1]
			}
			if len(arg) > len(prefix)+1 && arg[:len(prefix)+1] == prefix+"=" {
				return arg[len(prefix)+1:]
			}
		}
	}
	return ""
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
