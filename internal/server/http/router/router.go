package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/metrics"
	"github.com/butcherynv/posdesk/internal/server/http/handlers"
	"github.com/butcherynv/posdesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Route groups are
// gated on the role allow-lists of the three staff roles.
func Setup(facade handlers.PosFacade, m *metrics.Metrics, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CollectMetrics(m))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	sessionHandler := handlers.NewSessionHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)

	engine.GET("/metrics", gin.WrapH(m.Handler()))

	api := engine.Group("/api")
	api.POST("/session", sessionHandler.Login)
	api.DELETE("/session", sessionHandler.Logout)

	butcher := api.Group("")
	butcher.Use(middleware.RoleRequired(model.RoleButcher, model.RoleAdmin))
	butcher.GET("/dashboard", orderHandler.Dashboard)
	butcher.POST("/orders", orderHandler.Create)
	butcher.PUT("/orders/:id", orderHandler.Update)
	butcher.DELETE("/orders/:id", orderHandler.Delete)
	// The order form needs both reference lists; admins pass through the
	// same allow-list.
	butcher.GET("/items", catalogHandler.Items)
	butcher.GET("/waiters", catalogHandler.Waiters)

	cook := api.Group("")
	cook.Use(middleware.RoleRequired(model.RoleCooker, model.RoleAdmin))
	cook.GET("/history", orderHandler.History)
	cook.GET("/orders/:id", orderHandler.Get)
	cook.POST("/orders/:id/finish", orderHandler.Finish)
	cook.GET("/orders/:id/receipt", orderHandler.Receipt)

	admin := api.Group("")
	admin.Use(middleware.RoleRequired(model.RoleAdmin))
	admin.POST("/items", catalogHandler.CreateItem)
	admin.PUT("/items/:id", catalogHandler.UpdateItem)
	admin.DELETE("/items/:id", catalogHandler.DeleteItem)
	admin.POST("/waiters", catalogHandler.CreateWaiter)
	admin.PUT("/waiters/:id", catalogHandler.UpdateWaiter)
	admin.DELETE("/waiters/:id", catalogHandler.DeleteWaiter)
	admin.GET("/report", reportHandler.Report)
	admin.POST("/staff", sessionHandler.Register)

	return engine
}
