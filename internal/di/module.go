package di

import (
	"github.com/butcherynv/posdesk/internal/adapter/backend"
	"github.com/butcherynv/posdesk/internal/app"
	"github.com/butcherynv/posdesk/internal/config"
	"github.com/butcherynv/posdesk/internal/logger"
	"github.com/butcherynv/posdesk/internal/metrics"
	"github.com/butcherynv/posdesk/internal/server/http/handlers"
	"github.com/butcherynv/posdesk/internal/server/http/router"
	"github.com/butcherynv/posdesk/internal/usecase"
	"github.com/butcherynv/posdesk/internal/view"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		backend.Module,
		view.Module,
		usecase.Module,
		fx.Provide(func(facade *app.PosFacade) handlers.PosFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
