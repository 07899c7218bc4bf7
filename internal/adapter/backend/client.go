package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/domain/repository"
	"github.com/butcherynv/posdesk/internal/pkg/session"
)

// NetworkError wraps a transport-level failure talking to the upstream API.
// Callers surface it as a dismissible message and keep prior state intact.
type NetworkError struct {
	Op  string
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e NetworkError) Unwrap() error { return e.Err }

// StatusError reports an unexpected HTTP status from the upstream API.
type StatusError struct {
	Op     string
	Status int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("backend %s: unexpected status %d", e.Op, e.Status)
}

// ErrUnauthorized indicates the upstream rejected the call's credentials.
var ErrUnauthorized = errors.New("backend rejected credentials")

// HTTPClient acts as the single gateway to the upstream butchery API. It owns
// no state; every call is one independent request.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	observe    func(resource string, d time.Duration)
}

type orderAPI struct {
	client *HTTPClient
}

type itemAPI struct {
	client *HTTPClient
}

type waiterAPI struct {
	client *HTTPClient
}

type authAPI struct {
	client *HTTPClient
}

// Option configures optional client behaviour.
type Option func(*HTTPClient)

// WithLatencyObserver wires a per-resource latency callback, used for metrics.
func WithLatencyObserver(fn func(resource string, d time.Duration)) Option {
	return func(c *HTTPClient) { c.observe = fn }
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewHTTPClient creates a backend client with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger, opts ...Option) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("backend url must be absolute")
	}
	c := &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Repository views over the single upstream connection.

func (c *HTTPClient) Orders() repository.OrderRepository {
	return &orderAPI{client: c}
}

func (c *HTTPClient) Items() repository.ItemRepository {
	return &itemAPI{client: c}
}

func (c *HTTPClient) Waiters() repository.WaiterRepository {
	return &waiterAPI{client: c}
}

func (c *HTTPClient) Auth() repository.AuthGateway {
	return &authAPI{client: c}
}

func (c *HTTPClient) endpoint(parts ...string) string {
	u := *c.baseURL
	u.Path = path.Join(append([]string{u.Path}, parts...)...)
	return u.String()
}

func (c *HTTPClient) do(ctx context.Context, method, op, resource, urlStr string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s: %w", op, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, reader)
	if err != nil {
		return NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess, ok := session.FromContext(ctx); ok && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.observe != nil {
		c.observe(resource, time.Since(start))
	}
	if err != nil {
		return NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		io.Copy(io.Discard, resp.Body)
		return ErrUnauthorized
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return NetworkError{Op: op, Err: err}
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s: %w", op, err)
		}
		return nil
	default:
		data, _ := io.ReadAll(resp.Body)
		c.logger.Error("backend request failed",
			slog.String("op", op),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(data)),
		)
		return StatusError{Op: op, Status: resp.StatusCode}
	}
}

// --- OrderRepository implementation ---

func (r *orderAPI) List(ctx context.Context) ([]model.Order, error) {
	var orders []wireOrder
	c := r.client
	if err := c.do(ctx, http.MethodGet, "list orders", "orders", c.endpoint("orders"), nil, &orders); err != nil {
		return nil, err
	}
	return ordersToModel(orders), nil
}

func (r *orderAPI) Create(ctx context.Context, payload model.OrderPayload) error {
	c := r.client
	return c.do(ctx, http.MethodPost, "create order", "orders", c.endpoint("orders"), payloadToWire(payload), nil)
}

func (r *orderAPI) Update(ctx context.Context, id string, payload model.OrderPayload) error {
	c := r.client
	return c.do(ctx, http.MethodPut, "update order", "orders", c.endpoint("orders", id), payloadToWire(payload), nil)
}

func (r *orderAPI) Finish(ctx context.Context, id string, finishedAt time.Time) error {
	c := r.client
	body := finishPayload{Status: string(model.OrderStatusFinished), FinishedAt: finishedAt.UTC().Format(time.RFC3339)}
	return c.do(ctx, http.MethodPut, "finish order", "orders", c.endpoint("orders", id), body, nil)
}

func (r *orderAPI) Delete(ctx context.Context, id string) error {
	c := r.client
	return c.do(ctx, http.MethodDelete, "delete order", "orders", c.endpoint("orders", id), nil, nil)
}

// --- ItemRepository implementation ---

func (r *itemAPI) List(ctx context.Context) ([]model.Item, error) {
	var items []wireNamed
	c := r.client
	if err := c.do(ctx, http.MethodGet, "list items", "items", c.endpoint("items"), nil, &items); err != nil {
		return nil, err
	}
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		out = append(out, model.Item{ID: it.ID, Name: it.Name})
	}
	return out, nil
}

func (r *itemAPI) Create(ctx context.Context, name string) error {
	c := r.client
	return c.do(ctx, http.MethodPost, "create item", "items", c.endpoint("items"), namePayload{Name: name}, nil)
}

func (r *itemAPI) Rename(ctx context.Context, id, name string) error {
	c := r.client
	return c.do(ctx, http.MethodPut, "rename item", "items", c.endpoint("items", id), namePayload{Name: name}, nil)
}

func (r *itemAPI) Delete(ctx context.Context, id string) error {
	c := r.client
	return c.do(ctx, http.MethodDelete, "delete item", "items", c.endpoint("items", id), nil, nil)
}

// --- WaiterRepository implementation ---

func (r *waiterAPI) List(ctx context.Context) ([]model.Waiter, error) {
	var waiters []wireNamed
	c := r.client
	if err := c.do(ctx, http.MethodGet, "list waiters", "waiters", c.endpoint("waiters"), nil, &waiters); err != nil {
		return nil, err
	}
	out := make([]model.Waiter, 0, len(waiters))
	for _, w := range waiters {
		out = append(out, model.Waiter{ID: w.ID, Name: w.Name})
	}
	return out, nil
}

func (r *waiterAPI) Create(ctx context.Context, name string) error {
	c := r.client
	return c.do(ctx, http.MethodPost, "create waiter", "waiters", c.endpoint("waiters"), namePayload{Name: name}, nil)
}

func (r *waiterAPI) Rename(ctx context.Context, id, name string) error {
	c := r.client
	return c.do(ctx, http.MethodPut, "rename waiter", "waiters", c.endpoint("waiters", id), namePayload{Name: name}, nil)
}

func (r *waiterAPI) Delete(ctx context.Context, id string) error {
	c := r.client
	return c.do(ctx, http.MethodDelete, "delete waiter", "waiters", c.endpoint("waiters", id), nil, nil)
}

// --- AuthGateway implementation ---

func (r *authAPI) Login(ctx context.Context, username, password string) (*model.Credential, error) {
	var result loginResult
	c := r.client
	body := loginPayload{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "login", "auth", c.endpoint("auth", "login"), body, &result); err != nil {
		return nil, err
	}
	return &model.Credential{Token: result.Token, Role: model.Role(result.Role)}, nil
}

func (r *authAPI) Register(ctx context.Context, reg model.Registration) error {
	c := r.client
	body := registerPayload{
		FullName: reg.FullName,
		Email:    reg.Email,
		Password: reg.Password,
		Role:     string(reg.Role),
	}
	return c.do(ctx, http.MethodPost, "register", "auth", c.endpoint("auth", "register"), body, nil)
}
