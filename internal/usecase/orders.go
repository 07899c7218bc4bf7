package usecase

import (
	"context"
	"log/slog"
	"time"

	domainErrors "github.com/butcherynv/posdesk/internal/domain/errors"
	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/domain/repository"
	"github.com/butcherynv/posdesk/internal/view"
)

// HistoryFilter selects which slice of the order history the cook view shows.
type HistoryFilter string

const (
	FilterToday    HistoryFilter = "today"
	FilterPrevious HistoryFilter = "previous"
)

// DashboardView is the butcher dashboard: the trailing-window order page plus
// the aggregated kilogram figures, all derived from the latest upstream
// response.
type DashboardView struct {
	Orders         []model.Order
	Page           int
	TotalPages     int
	RecentCount    int
	TotalKilograms float64
	KgByMeatType   map[string]float64
	KgByChannel    map[string]float64
	ServerTime     time.Time
}

// HistoryView is the cook's order list with per-filter counts.
type HistoryView struct {
	Orders        []model.Order
	Filter        HistoryFilter
	Page          int
	TotalPages    int
	TodayCount    int
	PreviousCount int
}

// ReportView is the admin's all-time sales report.
type ReportView struct {
	Orders         []model.Order
	KgByMeatType   map[string]float64
	TotalKilograms float64
	GeneratedAt    time.Time
}

// OrderUseCase owns the order lifecycle as seen from this gateway: submit,
// edit, finish, and the derived views. All reads come from the snapshot
// store; every mutation is followed by a full re-fetch rather than a local
// merge.
type OrderUseCase struct {
	orders   repository.OrderRepository
	store    *view.Store
	logger   *slog.Logger
	window   time.Duration
	pageSize int
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, store *view.Store, logger *slog.Logger, window time.Duration, pageSize int) *OrderUseCase {
	if window <= 0 {
		window = 24 * time.Hour
	}
	if pageSize <= 0 {
		pageSize = 5
	}
	return &OrderUseCase{
		orders:   orders,
		store:    store,
		logger:   logger,
		window:   window,
		pageSize: pageSize,
	}
}

// Refresh fetches the full order list and installs it as the latest
// snapshot. A response superseded by a newer refresh is discarded silently.
func (u *OrderUseCase) Refresh(ctx context.Context) error {
	req := u.store.Orders.Begin()
	orders, err := u.orders.List(ctx)
	if err != nil {
		return err
	}
	if !u.store.Orders.Apply(req, orders, time.Now()) {
		u.logger.Debug("stale order response discarded", slog.Uint64("req", req))
	}
	return nil
}

// List returns the current order snapshot, fetching it first if no response
// has been applied yet.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	if orders, ok := u.store.Orders.Get(); ok {
		return orders, nil
	}
	if err := u.Refresh(ctx); err != nil {
		return nil, err
	}
	orders, _ := u.store.Orders.Get()
	return orders, nil
}

// Get returns one order by identifier from the freshest available list.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	orders, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	if o := findOrder(orders, id); o != nil {
		return o, nil
	}
	// Not in the snapshot; it may have been created since the last refresh.
	if err := u.Refresh(ctx); err != nil {
		return nil, err
	}
	orders, _ = u.store.Orders.Get()
	if o := findOrder(orders, id); o != nil {
		return o, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Submit validates the form and persists it: create in normal mode, update in
// place in edit mode. On success the buffer is cleared and the order list
// re-fetched.
func (u *OrderUseCase) Submit(ctx context.Context, form *OrderForm) error {
	payload, err := form.Validate()
	if err != nil {
		return err
	}

	if form.Editing() {
		err = u.orders.Update(ctx, form.EditID(), payload)
	} else {
		err = u.orders.Create(ctx, payload)
	}
	if err != nil {
		return err
	}

	form.Reset()
	return u.Refresh(ctx)
}

// Finish transitions an order to finished and stamps its completion time.
// The transition is monotonic: finishing an already finished order fails
// with ErrAlreadyFinished and nothing is written.
func (u *OrderUseCase) Finish(ctx context.Context, id string, now time.Time) (*model.Order, error) {
	current, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Finished() {
		return nil, domainErrors.ErrAlreadyFinished
	}

	if err := u.orders.Finish(ctx, id, now); err != nil {
		return nil, err
	}
	if err := u.Refresh(ctx); err != nil {
		return nil, err
	}

	orders, _ := u.store.Orders.Get()
	if o := findOrder(orders, id); o != nil {
		return o, nil
	}

	// The refreshed list raced with another mutation; report the state we
	// just wrote.
	finished := *current
	finished.Status = model.OrderStatusFinished
	finishedAt := now
	finished.FinishedAt = &finishedAt
	return &finished, nil
}

// Remove deletes an order upstream and re-fetches the list.
func (u *OrderUseCase) Remove(ctx context.Context, id string) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	if err := u.orders.Delete(ctx, id); err != nil {
		return err
	}
	return u.Refresh(ctx)
}

// Dashboard derives the butcher view for the given instant and page.
func (u *OrderUseCase) Dashboard(ctx context.Context, now time.Time, page int) (*DashboardView, error) {
	orders, err := u.List(ctx)
	if err != nil {
		return nil, err
	}

	recent := RecentOrders(orders, now, u.window)
	pageOrders, page, totalPages := Paginate(recent, page, u.pageSize)

	return &DashboardView{
		Orders:         pageOrders,
		Page:           page,
		TotalPages:     totalPages,
		RecentCount:    len(recent),
		TotalKilograms: Round2(TotalKilograms(recent)),
		KgByMeatType:   DisplayTotals(KilogramsByMeatType(recent)),
		KgByChannel:    DisplayTotals(KilogramsByChannel(recent)),
		ServerTime:     now,
	}, nil
}

// History derives the cook view: today's orders or previous days, paginated,
// with both counters for the filter buttons.
func (u *OrderUseCase) History(ctx context.Context, now time.Time, filter HistoryFilter, page int) (*HistoryView, error) {
	orders, err := u.List(ctx)
	if err != nil {
		return nil, err
	}

	var today, previous []model.Order
	for _, o := range orders {
		switch {
		case SameDay(o.CreatedAt, now):
			today = append(today, o)
		case o.CreatedAt.Before(now):
			previous = append(previous, o)
		}
	}

	selected := today
	if filter == FilterPrevious {
		selected = previous
	}
	pageOrders, page, totalPages := Paginate(selected, page, u.pageSize)

	return &HistoryView{
		Orders:        pageOrders,
		Filter:        filter,
		Page:          page,
		TotalPages:    totalPages,
		TodayCount:    len(today),
		PreviousCount: len(previous),
	}, nil
}

// Report derives the admin's all-time report over the full order list.
func (u *OrderUseCase) Report(ctx context.Context, now time.Time) (*ReportView, error) {
	orders, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ReportView{
		Orders:         orders,
		KgByMeatType:   DisplayTotals(ReportKilograms(orders)),
		TotalKilograms: Round2(TotalKilograms(orders)),
		GeneratedAt:    now,
	}, nil
}

func findOrder(orders []model.Order, id string) *model.Order {
	for i := range orders {
		if orders[i].ID == id {
			o := orders[i]
			return &o
		}
	}
	return nil
}
