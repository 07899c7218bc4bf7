package repository

import (
	"context"
	"time"

	"github.com/butcherynv/posdesk/internal/domain/model"
)

// OrderRepository abstracts order persistence. The only implementation talks
// to the upstream REST API; the gateway itself keeps no authoritative state.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, payload model.OrderPayload) error
	Update(ctx context.Context, id string, payload model.OrderPayload) error
	Finish(ctx context.Context, id string, finishedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
