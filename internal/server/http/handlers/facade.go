package handlers

import (
	"context"
	"time"

	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/pkg/session"
	"github.com/butcherynv/posdesk/internal/receipt"
	"github.com/butcherynv/posdesk/internal/usecase"
)

// SessionFacade describes authentication capabilities required by handlers.
type SessionFacade interface {
	Login(ctx context.Context, username, password string) (*session.Context, error)
	Register(ctx context.Context, reg model.Registration) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Dashboard(ctx context.Context, now time.Time, page int) (*usecase.DashboardView, error)
	History(ctx context.Context, now time.Time, filter usecase.HistoryFilter, page int) (*usecase.HistoryView, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	SubmitOrder(ctx context.Context, form *usecase.OrderForm) error
	FinishOrder(ctx context.Context, id string, now time.Time) (*model.Order, error)
	RemoveOrder(ctx context.Context, id string) error
	Receipt(ctx context.Context, id string) (*receipt.Document, error)
}

// CatalogFacade provides item and waiter list maintenance.
type CatalogFacade interface {
	Items(ctx context.Context) ([]model.Item, error)
	Waiters(ctx context.Context) ([]model.Waiter, error)
	ItemPage(ctx context.Context, page int) (*usecase.CatalogPage[model.Item], error)
	AddItem(ctx context.Context, name string) error
	RenameItem(ctx context.Context, id, name string) error
	RemoveItem(ctx context.Context, id string) error
	WaiterPage(ctx context.Context, page int) (*usecase.CatalogPage[model.Waiter], error)
	AddWaiter(ctx context.Context, name string) error
	RenameWaiter(ctx context.Context, id, name string) error
	RemoveWaiter(ctx context.Context, id string) error
}

// ReportFacade provides the admin sales report.
type ReportFacade interface {
	Report(ctx context.Context, now time.Time) (*usecase.ReportView, error)
}

// PosFacade aggregates the full set of operations used across handlers.
type PosFacade interface {
	SessionFacade
	OrderFacade
	CatalogFacade
	ReportFacade
}
