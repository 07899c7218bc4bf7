package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/butcherynv/posdesk/internal/config"
	"github.com/butcherynv/posdesk/internal/domain/repository"
	"github.com/butcherynv/posdesk/internal/view"
)

type orderParams struct {
	fx.In

	Orders repository.OrderRepository
	Store  *view.Store
	Logger *slog.Logger
	Config *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Store, p.Logger, p.Config.SalesWindow, p.Config.PageSize)
}

type catalogParams struct {
	fx.In

	Items   repository.ItemRepository
	Waiters repository.WaiterRepository
	Store   *view.Store
	Logger  *slog.Logger
	Config  *config.Config
}

func newCatalogUseCase(p catalogParams) *CatalogUseCase {
	return NewCatalogUseCase(p.Items, p.Waiters, p.Store, p.Logger, p.Config.CatalogPageSize)
}

type authParams struct {
	fx.In

	Gateway repository.AuthGateway
	Logger  *slog.Logger
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Gateway, p.Logger)
}

// Module wires the use cases into the application graph.
var Module = fx.Options(
	fx.Provide(newOrderUseCase),
	fx.Provide(newCatalogUseCase),
	fx.Provide(newAuthUseCase),
)
