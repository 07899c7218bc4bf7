package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domainErrors "github.com/butcherynv/posdesk/internal/domain/errors"
	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/test"
	"github.com/butcherynv/posdesk/internal/usecase"
	"github.com/butcherynv/posdesk/internal/view"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrderUseCaseForTest(repo *test.OrderRepositoryStub) *usecase.OrderUseCase {
	return usecase.NewOrderUseCase(repo, view.NewStore(), discardLogger(), 24*time.Hour, 5)
}

func TestOrderUseCaseListFetchesOnce(t *testing.T) {
	repo := &test.OrderRepositoryStub{Orders: []model.Order{{ID: "o1"}}}
	uc := newOrderUseCaseForTest(repo)

	for i := 0; i < 3; i++ {
		orders, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 1 || orders[0].ID != "o1" {
			t.Fatalf("unexpected orders %v", orders)
		}
	}
	if repo.ListCalls != 1 {
		t.Fatalf("expected a single upstream fetch, got %d", repo.ListCalls)
	}
}

func TestOrderUseCaseSubmitCreatesAndResets(t *testing.T) {
	repo := &test.OrderRepositoryStub{}
	uc := newOrderUseCaseForTest(repo)

	form := usecase.NewOrderForm()
	form.MeatTypes = []string{"Beef"}
	form.WeightText = "2"
	form.WaiterName = "Ann"

	if err := uc.Submit(context.Background(), form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.Orders) != 1 {
		t.Fatalf("expected one created order, got %d", len(repo.Orders))
	}
	if form.Editing() || form.WeightText != "" {
		t.Fatalf("buffer not reset after submit")
	}
	if repo.ListCalls == 0 {
		t.Fatalf("expected a re-fetch after the write")
	}
}

func TestOrderUseCaseSubmitRejectsInvalidFormWithoutWriting(t *testing.T) {
	repo := &test.OrderRepositoryStub{
		CreateFn: func(context.Context, model.OrderPayload) error {
			t.Fatal("create should not be called for an invalid form")
			return nil
		},
	}
	uc := newOrderUseCaseForTest(repo)

	form := usecase.NewOrderForm()
	form.WeightText = "2"

	if err := uc.Submit(context.Background(), form); err != domainErrors.ErrNoItemsSelected {
		t.Fatalf("expected no items error, got %v", err)
	}
	if form.WeightText != "2" {
		t.Fatalf("failed submit must keep the buffer intact")
	}
}

func TestOrderUseCaseSubmitUpdatesInEditMode(t *testing.T) {
	repo := &test.OrderRepositoryStub{Orders: []model.Order{{
		ID:        "o1",
		MeatTypes: []string{"Beef"},
		Kilogram:  1,
		SalesType: model.ChannelOutdoor,
	}}}
	uc := newOrderUseCaseForTest(repo)

	form := usecase.FormFromOrder(repo.Orders[0])
	form.WeightText = "3"

	if err := uc.Submit(context.Background(), form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.Orders) != 1 {
		t.Fatalf("edit must not create a second order")
	}
	if repo.Orders[0].Kilogram != 3 {
		t.Fatalf("expected updated weight, got %v", repo.Orders[0].Kilogram)
	}
}

func TestOrderUseCaseFinishStampsOnce(t *testing.T) {
	now := time.Now()
	repo := &test.OrderRepositoryStub{Orders: []model.Order{{ID: "o1", CreatedAt: now.Add(-time.Hour)}}}
	uc := newOrderUseCaseForTest(repo)

	order, err := uc.Finish(context.Background(), "o1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !order.Finished() || order.FinishedAt == nil {
		t.Fatalf("order not marked finished: %+v", order)
	}

	if _, err := uc.Finish(context.Background(), "o1", now.Add(time.Minute)); err != domainErrors.ErrAlreadyFinished {
		t.Fatalf("expected already finished error, got %v", err)
	}
	if len(repo.FinishCalls) != 1 {
		t.Fatalf("second finish must not reach the repository, got %d calls", len(repo.FinishCalls))
	}
}

func TestOrderUseCaseFinishUnknownOrder(t *testing.T) {
	uc := newOrderUseCaseForTest(&test.OrderRepositoryStub{})

	if _, err := uc.Finish(context.Background(), "ghost", time.Now()); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderUseCaseDashboardFiltersAndAggregates(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	repo := &test.OrderRepositoryStub{Orders: []model.Order{
		{ID: "r1", MeatTypes: []string{"Beef"}, Kilogram: 2, SalesType: model.ChannelIndoor, CreatedAt: now.Add(-time.Hour)},
		{ID: "r2", MeatTypes: []string{"Beef", "Lamb"}, Kilogram: 4, SalesType: model.ChannelOutdoor, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "old", MeatTypes: []string{"Goat"}, Kilogram: 9, CreatedAt: now.Add(-30 * time.Hour)},
	}}
	uc := newOrderUseCaseForTest(repo)

	dash, err := uc.Dashboard(context.Background(), now, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dash.RecentCount != 2 {
		t.Fatalf("expected 2 recent orders, got %d", dash.RecentCount)
	}
	if dash.TotalKilograms != 6 {
		t.Fatalf("expected 6kg in the window, got %v", dash.TotalKilograms)
	}
	if dash.KgByMeatType["Beef"] != 4 || dash.KgByMeatType["Lamb"] != 2 {
		t.Fatalf("unexpected per-type split %v", dash.KgByMeatType)
	}
	if _, ok := dash.KgByMeatType["Goat"]; ok {
		t.Fatalf("stale order leaked into the dashboard aggregates")
	}
	if dash.KgByChannel[string(model.ChannelOutdoor)] != 4 {
		t.Fatalf("unexpected channel totals %v", dash.KgByChannel)
	}
}

func TestOrderUseCaseHistorySplitsTodayFromPrevious(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	repo := &test.OrderRepositoryStub{Orders: []model.Order{
		{ID: "t1", CreatedAt: now.Add(-time.Hour)},
		{ID: "t2", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "p1", CreatedAt: now.Add(-36 * time.Hour)},
	}}
	uc := newOrderUseCaseForTest(repo)

	today, err := uc.History(context.Background(), now, usecase.FilterToday, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if today.TodayCount != 2 || today.PreviousCount != 1 {
		t.Fatalf("unexpected counters: today %d previous %d", today.TodayCount, today.PreviousCount)
	}
	if len(today.Orders) != 2 {
		t.Fatalf("expected today's orders, got %v", today.Orders)
	}

	previous, err := uc.History(context.Background(), now, usecase.FilterPrevious, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(previous.Orders) != 1 || previous.Orders[0].ID != "p1" {
		t.Fatalf("unexpected previous orders %v", previous.Orders)
	}
}

func TestOrderUseCaseReportUsesFullWeightAttribution(t *testing.T) {
	repo := &test.OrderRepositoryStub{Orders: []model.Order{
		{ID: "o1", MeatTypes: []string{"Beef", "Lamb"}, Kilogram: 4, CreatedAt: time.Now().Add(-100 * time.Hour)},
	}}
	uc := newOrderUseCaseForTest(repo)

	report, err := uc.Report(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.KgByMeatType["Beef"] != 4 || report.KgByMeatType["Lamb"] != 4 {
		t.Fatalf("unexpected report attribution %v", report.KgByMeatType)
	}
	if len(report.Orders) != 1 {
		t.Fatalf("report must cover all orders, not a window")
	}
}
