package test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/pkg/session"
	"github.com/butcherynv/posdesk/internal/receipt"
	"github.com/butcherynv/posdesk/internal/usecase"
)

// SessionFacadeStub simulates authentication facade interactions.
type SessionFacadeStub struct {
	LoginFn    func(context.Context, string, string) (*session.Context, error)
	RegisterFn func(context.Context, model.Registration) error
}

// Login delegates to the override or returns a butcher session.
func (s SessionFacadeStub) Login(ctx context.Context, username, password string) (*session.Context, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return &session.Context{Token: SignedToken(model.RoleButcher), Role: model.RoleButcher}, nil
}

// Register delegates to the override or succeeds.
func (s SessionFacadeStub) Register(ctx context.Context, reg model.Registration) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, reg)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	DashboardFn func(context.Context, time.Time, int) (*usecase.DashboardView, error)
	HistoryFn   func(context.Context, time.Time, usecase.HistoryFilter, int) (*usecase.HistoryView, error)
	OrderFn     func(context.Context, string) (*model.Order, error)
	SubmitFn    func(context.Context, *usecase.OrderForm) error
	FinishFn    func(context.Context, string, time.Time) (*model.Order, error)
	RemoveFn    func(context.Context, string) error
	ReceiptFn   func(context.Context, string) (*receipt.Document, error)
}

// Dashboard delegates to the override or returns an empty view.
func (s OrderFacadeStub) Dashboard(ctx context.Context, now time.Time, page int) (*usecase.DashboardView, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx, now, page)
	}
	return &usecase.DashboardView{Page: 1, ServerTime: now}, nil
}

// History delegates to the override or returns an empty view.
func (s OrderFacadeStub) History(ctx context.Context, now time.Time, filter usecase.HistoryFilter, page int) (*usecase.HistoryView, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, now, filter, page)
	}
	return &usecase.HistoryView{Filter: filter, Page: 1}, nil
}

// Order delegates to the override or returns a pending order.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
}

// SubmitOrder delegates to the override or succeeds.
func (s OrderFacadeStub) SubmitOrder(ctx context.Context, form *usecase.OrderForm) error {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, form)
	}
	return nil
}

// FinishOrder delegates to the override or returns a finished order.
func (s OrderFacadeStub) FinishOrder(ctx context.Context, id string, now time.Time) (*model.Order, error) {
	if s.FinishFn != nil {
		return s.FinishFn(ctx, id, now)
	}
	at := now
	return &model.Order{ID: id, Status: model.OrderStatusFinished, FinishedAt: &at}, nil
}

// RemoveOrder delegates to the override or succeeds.
func (s OrderFacadeStub) RemoveOrder(ctx context.Context, id string) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, id)
	}
	return nil
}

// Receipt delegates to the override or returns an empty document.
func (s OrderFacadeStub) Receipt(ctx context.Context, id string) (*receipt.Document, error) {
	if s.ReceiptFn != nil {
		return s.ReceiptFn(ctx, id)
	}
	return &receipt.Document{OrderID: id}, nil
}

// CatalogFacadeStub simulates catalog maintenance operations.
type CatalogFacadeStub struct {
	ItemsFn        func(context.Context) ([]model.Item, error)
	WaitersFn      func(context.Context) ([]model.Waiter, error)
	ItemPageFn     func(context.Context, int) (*usecase.CatalogPage[model.Item], error)
	WaiterPageFn   func(context.Context, int) (*usecase.CatalogPage[model.Waiter], error)
	AddItemFn      func(context.Context, string) error
	RenameItemFn   func(context.Context, string, string) error
	RemoveItemFn   func(context.Context, string) error
	AddWaiterFn    func(context.Context, string) error
	RenameWaiterFn func(context.Context, string, string) error
	RemoveWaiterFn func(context.Context, string) error
}

// Items delegates to the override or returns a fixed list.
func (s CatalogFacadeStub) Items(ctx context.Context) ([]model.Item, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx)
	}
	return []model.Item{{ID: "i1", Name: "Beef"}}, nil
}

// Waiters delegates to the override or returns a fixed list.
func (s CatalogFacadeStub) Waiters(ctx context.Context) ([]model.Waiter, error) {
	if s.WaitersFn != nil {
		return s.WaitersFn(ctx)
	}
	return []model.Waiter{{ID: "w1", Name: "Ann"}}, nil
}

// ItemPage delegates to the override or returns a single-entry page.
func (s CatalogFacadeStub) ItemPage(ctx context.Context, page int) (*usecase.CatalogPage[model.Item], error) {
	if s.ItemPageFn != nil {
		return s.ItemPageFn(ctx, page)
	}
	return &usecase.CatalogPage[model.Item]{
		Entries:    []model.Item{{ID: "i1", Name: "Beef"}},
		Page:       1,
		TotalPages: 1,
		Total:      1,
	}, nil
}

// WaiterPage delegates to the override or returns a single-entry page.
func (s CatalogFacadeStub) WaiterPage(ctx context.Context, page int) (*usecase.CatalogPage[model.Waiter], error) {
	if s.WaiterPageFn != nil {
		return s.WaiterPageFn(ctx, page)
	}
	return &usecase.CatalogPage[model.Waiter]{
		Entries:    []model.Waiter{{ID: "w1", Name: "Ann"}},
		Page:       1,
		TotalPages: 1,
		Total:      1,
	}, nil
}

// AddItem delegates to the override or succeeds.
func (s CatalogFacadeStub) AddItem(ctx context.Context, name string) error {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, name)
	}
	return nil
}

// RenameItem delegates to the override or succeeds.
func (s CatalogFacadeStub) RenameItem(ctx context.Context, id, name string) error {
	if s.RenameItemFn != nil {
		return s.RenameItemFn(ctx, id, name)
	}
	return nil
}

// RemoveItem delegates to the override or succeeds.
func (s CatalogFacadeStub) RemoveItem(ctx context.Context, id string) error {
	if s.RemoveItemFn != nil {
		return s.RemoveItemFn(ctx, id)
	}
	return nil
}

// AddWaiter delegates to the override or succeeds.
func (s CatalogFacadeStub) AddWaiter(ctx context.Context, name string) error {
	if s.AddWaiterFn != nil {
		return s.AddWaiterFn(ctx, name)
	}
	return nil
}

// RenameWaiter delegates to the override or succeeds.
func (s CatalogFacadeStub) RenameWaiter(ctx context.Context, id, name string) error {
	if s.RenameWaiterFn != nil {
		return s.RenameWaiterFn(ctx, id, name)
	}
	return nil
}

// RemoveWaiter delegates to the override or succeeds.
func (s CatalogFacadeStub) RemoveWaiter(ctx context.Context, id string) error {
	if s.RemoveWaiterFn != nil {
		return s.RemoveWaiterFn(ctx, id)
	}
	return nil
}

// ReportFacadeStub simulates the admin report.
type ReportFacadeStub struct {
	ReportFn func(context.Context, time.Time) (*usecase.ReportView, error)
}

// Report delegates to the override or returns an empty view.
func (s ReportFacadeStub) Report(ctx context.Context, now time.Time) (*usecase.ReportView, error) {
	if s.ReportFn != nil {
		return s.ReportFn(ctx, now)
	}
	return &usecase.ReportView{GeneratedAt: now}, nil
}

// PosFacadeStub aggregates facade dependencies for HTTP layer tests.
type PosFacadeStub struct {
	SessionFacadeStub
	OrderFacadeStub
	CatalogFacadeStub
	ReportFacadeStub
}

// RefreshFacadeStub counts snapshot refreshes for worker tests.
type RefreshFacadeStub struct {
	OrdersErr  error
	ItemsErr   error
	WaitersErr error

	OrdersCalls  atomic.Int64
	ItemsCalls   atomic.Int64
	WaitersCalls atomic.Int64
}

// RefreshOrders records the call.
func (s *RefreshFacadeStub) RefreshOrders(ctx context.Context) error {
	s.OrdersCalls.Add(1)
	return s.OrdersErr
}

// RefreshItems records the call.
func (s *RefreshFacadeStub) RefreshItems(ctx context.Context) error {
	s.ItemsCalls.Add(1)
	return s.ItemsErr
}

// RefreshWaiters records the call.
func (s *RefreshFacadeStub) RefreshWaiters(ctx context.Context) error {
	s.WaitersCalls.Add(1)
	return s.WaitersErr
}
