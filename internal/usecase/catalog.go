package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainErrors "github.com/butcherynv/posdesk/internal/domain/errors"
	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/domain/repository"
	"github.com/butcherynv/posdesk/internal/view"
)

// CatalogPage is one page of a named-entry list plus its paging state.
type CatalogPage[T any] struct {
	Entries    []T
	Page       int
	TotalPages int
	Total      int
}

// CatalogUseCase manages the two admin-maintained reference lists, meat
// items and waiters. Both follow the same shape: list a page, mutate, then
// re-fetch the whole list.
type CatalogUseCase struct {
	items    repository.ItemRepository
	waiters  repository.WaiterRepository
	store    *view.Store
	logger   *slog.Logger
	pageSize int
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(items repository.ItemRepository, waiters repository.WaiterRepository, store *view.Store, logger *slog.Logger, pageSize int) *CatalogUseCase {
	if pageSize <= 0 {
		pageSize = 6
	}
	return &CatalogUseCase{
		items:    items,
		waiters:  waiters,
		store:    store,
		logger:   logger,
		pageSize: pageSize,
	}
}

// RefreshItems fetches the item list and installs it as the latest snapshot.
func (u *CatalogUseCase) RefreshItems(ctx context.Context) error {
	req := u.store.Items.Begin()
	items, err := u.items.List(ctx)
	if err != nil {
		return err
	}
	if !u.store.Items.Apply(req, items, time.Now()) {
		u.logger.Debug("stale item response discarded", slog.Uint64("req", req))
	}
	return nil
}

// RefreshWaiters fetches the waiter list and installs it as the latest
// snapshot.
func (u *CatalogUseCase) RefreshWaiters(ctx context.Context) error {
	req := u.store.Waiters.Begin()
	waiters, err := u.waiters.List(ctx)
	if err != nil {
		return err
	}
	if !u.store.Waiters.Apply(req, waiters, time.Now()) {
		u.logger.Debug("stale waiter response discarded", slog.Uint64("req", req))
	}
	return nil
}

// Items returns the full item list, fetching it first if needed.
func (u *CatalogUseCase) Items(ctx context.Context) ([]model.Item, error) {
	if items, ok := u.store.Items.Get(); ok {
		return items, nil
	}
	if err := u.RefreshItems(ctx); err != nil {
		return nil, err
	}
	items, _ := u.store.Items.Get()
	return items, nil
}

// Waiters returns the full waiter list, fetching it first if needed.
func (u *CatalogUseCase) Waiters(ctx context.Context) ([]model.Waiter, error) {
	if waiters, ok := u.store.Waiters.Get(); ok {
		return waiters, nil
	}
	if err := u.RefreshWaiters(ctx); err != nil {
		return nil, err
	}
	waiters, _ := u.store.Waiters.Get()
	return waiters, nil
}

// ItemPage returns one admin page of items.
func (u *CatalogUseCase) ItemPage(ctx context.Context, page int) (*CatalogPage[model.Item], error) {
	items, err := u.Items(ctx)
	if err != nil {
		return nil, err
	}
	entries, page, totalPages := Paginate(items, page, u.pageSize)
	return &CatalogPage[model.Item]{Entries: entries, Page: page, TotalPages: totalPages, Total: len(items)}, nil
}

// WaiterPage returns one admin page of waiters.
func (u *CatalogUseCase) WaiterPage(ctx context.Context, page int) (*CatalogPage[model.Waiter], error) {
	waiters, err := u.Waiters(ctx)
	if err != nil {
		return nil, err
	}
	entries, page, totalPages := Paginate(waiters, page, u.pageSize)
	return &CatalogPage[model.Waiter]{Entries: entries, Page: page, TotalPages: totalPages, Total: len(waiters)}, nil
}

// AddItem creates a meat item with the given name.
func (u *CatalogUseCase) AddItem(ctx context.Context, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	if err := u.items.Create(ctx, name); err != nil {
		return err
	}
	return u.RefreshItems(ctx)
}

// RenameItem changes an item's name in place.
func (u *CatalogUseCase) RenameItem(ctx context.Context, id, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	if err := u.items.Rename(ctx, id, name); err != nil {
		return err
	}
	return u.RefreshItems(ctx)
}

// RemoveItem deletes an item. Orders that referenced it keep the recorded
// name.
func (u *CatalogUseCase) RemoveItem(ctx context.Context, id string) error {
	if err := u.items.Delete(ctx, id); err != nil {
		return err
	}
	return u.RefreshItems(ctx)
}

// AddWaiter creates a waiter with the given name.
func (u *CatalogUseCase) AddWaiter(ctx context.Context, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	if err := u.waiters.Create(ctx, name); err != nil {
		return err
	}
	return u.RefreshWaiters(ctx)
}

// RenameWaiter changes a waiter's name in place.
func (u *CatalogUseCase) RenameWaiter(ctx context.Context, id, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	if err := u.waiters.Rename(ctx, id, name); err != nil {
		return err
	}
	return u.RefreshWaiters(ctx)
}

// RemoveWaiter deletes a waiter. Orders that referenced it keep the recorded
// name.
func (u *CatalogUseCase) RemoveWaiter(ctx context.Context, id string) error {
	if err := u.waiters.Delete(ctx, id); err != nil {
		return err
	}
	return u.RefreshWaiters(ctx)
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainErrors.ErrEmptyName
	}
	return name, nil
}
