package backend

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/butcherynv/posdesk/internal/config"
	"github.com/butcherynv/posdesk/internal/domain/repository"
	"github.com/butcherynv/posdesk/internal/metrics"
)

// Module wires the upstream API client and its repository views.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(
		func(c *HTTPClient) repository.OrderRepository { return c.Orders() },
		func(c *HTTPClient) repository.ItemRepository { return c.Items() },
		func(c *HTTPClient) repository.WaiterRepository { return c.Waiters() },
		func(c *HTTPClient) repository.AuthGateway { return c.Auth() },
	),
)

type clientParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

func newClient(p clientParams) (*HTTPClient, error) {
	return NewHTTPClient(
		p.Config.BackendAddress,
		p.Logger,
		WithTimeout(p.Config.RequestTimeout),
		WithLatencyObserver(p.Metrics.ObserveUpstream),
	)
}
