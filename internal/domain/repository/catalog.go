package repository

import (
	"context"

	"github.com/butcherynv/posdesk/internal/domain/model"
)

// ItemRepository manages the meat-type catalog.
type ItemRepository interface {
	List(ctx context.Context) ([]model.Item, error)
	Create(ctx context.Context, name string) error
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

// WaiterRepository manages the waiter roster.
type WaiterRepository interface {
	List(ctx context.Context) ([]model.Waiter, error)
	Create(ctx context.Context, name string) error
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}
