package app

import (
	"context"
	"time"

	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/pkg/session"
	"github.com/butcherynv/posdesk/internal/receipt"
	"github.com/butcherynv/posdesk/internal/usecase"
)

type PosFacade struct {
	auth    *usecase.AuthUseCase
	orders  *usecase.OrderUseCase
	catalog *usecase.CatalogUseCase
}

func NewPosFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, catalog *usecase.CatalogUseCase) *PosFacade {
	return &PosFacade{auth: auth, orders: orders, catalog: catalog}
}

func (f *PosFacade) Login(ctx context.Context, username, password string) (*session.Context, error) {
	return f.auth.Login(ctx, username, password)
}

func (f *PosFacade) Register(ctx context.Context, reg model.Registration) error {
	return f.auth.Register(ctx, reg)
}

func (f *PosFacade) Dashboard(ctx context.Context, now time.Time, page int) (*usecase.DashboardView, error) {
	return f.orders.Dashboard(ctx, now, page)
}

func (f *PosFacade) History(ctx context.Context, now time.Time, filter usecase.HistoryFilter, page int) (*usecase.HistoryView, error) {
	return f.orders.History(ctx, now, filter, page)
}

func (f *PosFacade) Report(ctx context.Context, now time.Time) (*usecase.ReportView, error) {
	return f.orders.Report(ctx, now)
}

func (f *PosFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *PosFacade) SubmitOrder(ctx context.Context, form *usecase.OrderForm) error {
	return f.orders.Submit(ctx, form)
}

func (f *PosFacade) FinishOrder(ctx context.Context, id string, now time.Time) (*model.Order, error) {
	return f.orders.Finish(ctx, id, now)
}

func (f *PosFacade) RemoveOrder(ctx context.Context, id string) error {
	return f.orders.Remove(ctx, id)
}

func (f *PosFacade) Receipt(ctx context.Context, id string) (*receipt.Document, error) {
	order, err := f.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := receipt.Compose(*order)
	return &doc, nil
}

func (f *PosFacade) Items(ctx context.Context) ([]model.Item, error) {
	return f.catalog.Items(ctx)
}

func (f *PosFacade) ItemPage(ctx context.Context, page int) (*usecase.CatalogPage[model.Item], error) {
	return f.catalog.ItemPage(ctx, page)
}

func (f *PosFacade) AddItem(ctx context.Context, name string) error {
	return f.catalog.AddItem(ctx, name)
}

func (f *PosFacade) RenameItem(ctx context.Context, id, name string) error {
	return f.catalog.RenameItem(ctx, id, name)
}

func (f *PosFacade) RemoveItem(ctx context.Context, id string) error {
	return f.catalog.RemoveItem(ctx, id)
}

func (f *PosFacade) Waiters(ctx context.Context) ([]model.Waiter, error) {
	return f.catalog.Waiters(ctx)
}

func (f *PosFacade) WaiterPage(ctx context.Context, page int) (*usecase.CatalogPage[model.Waiter], error) {
	return f.catalog.WaiterPage(ctx, page)
}

func (f *PosFacade) AddWaiter(ctx context.Context, name string) error {
	return f.catalog.AddWaiter(ctx, name)
}

func (f *PosFacade) RenameWaiter(ctx context.Context, id, name string) error {
	return f.catalog.RenameWaiter(ctx, id, name)
}

func (f *PosFacade) RemoveWaiter(ctx context.Context, id string) error {
	return f.catalog.RemoveWaiter(ctx, id)
}

func (f *PosFacade) RefreshOrders(ctx context.Context) error {
	return f.orders.Refresh(ctx)
}

func (f *PosFacade) RefreshItems(ctx context.Context) error {
	return f.catalog.RefreshItems(ctx)
}

func (f *PosFacade) RefreshWaiters(ctx context.Context) error {
	return f.catalog.RefreshWaiters(ctx)
}
