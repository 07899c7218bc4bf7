package test

import (
	"context"
	"strconv"
	"time"

	domainErrors "github.com/butcherynv/posdesk/internal/domain/errors"
	"github.com/butcherynv/posdesk/internal/domain/model"
)

// OrderRepositoryStub stores orders in-memory for tests.
type OrderRepositoryStub struct {
	ListFn   func(context.Context) ([]model.Order, error)
	CreateFn func(context.Context, model.OrderPayload) error
	UpdateFn func(context.Context, string, model.OrderPayload) error
	FinishFn func(context.Context, string, time.Time) error
	DeleteFn func(context.Context, string) error

	Orders      []model.Order
	Next        int
	ListCalls   int
	FinishCalls []string
}

// List returns stored orders and counts invocations.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	s.ListCalls++
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return append([]model.Order(nil), s.Orders...), nil
}

// Create appends an order built from the payload.
func (s *OrderRepositoryStub) Create(ctx context.Context, payload model.OrderPayload) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, payload)
	}
	s.Next++
	s.Orders = append(s.Orders, model.Order{
		ID:           "o" + strconv.Itoa(s.Next),
		MeatTypes:    payload.MeatTypes,
		Kilogram:     payload.Kilogram,
		SalesType:    payload.SalesType,
		CustomerName: payload.CustomerName,
		WaiterName:   payload.WaiterName,
		Status:       model.OrderStatusPending,
		CreatedAt:    time.Now(),
	})
	return nil
}

// Update replaces the stored order's payload fields in place.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, payload model.OrderPayload) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, payload)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].MeatTypes = payload.MeatTypes
			s.Orders[i].Kilogram = payload.Kilogram
			s.Orders[i].SalesType = payload.SalesType
			s.Orders[i].CustomerName = payload.CustomerName
			s.Orders[i].WaiterName = payload.WaiterName
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Finish stamps the stored order and records the call.
func (s *OrderRepositoryStub) Finish(ctx context.Context, id string, finishedAt time.Time) error {
	s.FinishCalls = append(s.FinishCalls, id)
	if s.FinishFn != nil {
		return s.FinishFn(ctx, id, finishedAt)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			at := finishedAt
			s.Orders[i].Status = model.OrderStatusFinished
			s.Orders[i].FinishedAt = &at
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Delete removes the stored order.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// NamedRepositoryStub backs both item and waiter repositories.
type NamedRepositoryStub struct {
	CreateFn func(context.Context, string) error
	RenameFn func(context.Context, string, string) error
	DeleteFn func(context.Context, string) error

	Entries []struct {
		ID   string
		Name string
	}
	Next int
}

func (s *NamedRepositoryStub) list() []struct {
	ID   string
	Name string
} {
	return append([]struct {
		ID   string
		Name string
	}(nil), s.Entries...)
}

// Create appends a named entry.
func (s *NamedRepositoryStub) Create(ctx context.Context, name string) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name)
	}
	s.Next++
	s.Entries = append(s.Entries, struct {
		ID   string
		Name string
	}{ID: "n" + strconv.Itoa(s.Next), Name: name})
	return nil
}

// Rename changes a stored entry's name.
func (s *NamedRepositoryStub) Rename(ctx context.Context, id, name string) error {
	if s.RenameFn != nil {
		return s.RenameFn(ctx, id, name)
	}
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			s.Entries[i].Name = name
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Delete removes a stored entry.
func (s *NamedRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ItemRepositoryStub adapts the named stub to the item repository contract.
type ItemRepositoryStub struct {
	NamedRepositoryStub
	ListFn func(context.Context) ([]model.Item, error)
}

// List returns stored items.
func (s *ItemRepositoryStub) List(ctx context.Context) ([]model.Item, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	items := make([]model.Item, 0, len(s.Entries))
	for _, e := range s.list() {
		items = append(items, model.Item{ID: e.ID, Name: e.Name})
	}
	return items, nil
}

// WaiterRepositoryStub adapts the named stub to the waiter repository contract.
type WaiterRepositoryStub struct {
	NamedRepositoryStub
	ListFn func(context.Context) ([]model.Waiter, error)
}

// List returns stored waiters.
func (s *WaiterRepositoryStub) List(ctx context.Context) ([]model.Waiter, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	waiters := make([]model.Waiter, 0, len(s.Entries))
	for _, e := range s.list() {
		waiters = append(waiters, model.Waiter{ID: e.ID, Name: e.Name})
	}
	return waiters, nil
}

// AuthGatewayStub simulates the upstream login and registration endpoints.
type AuthGatewayStub struct {
	LoginFn    func(context.Context, string, string) (*model.Credential, error)
	RegisterFn func(context.Context, model.Registration) error

	Registered []model.Registration
}

// Login delegates to the override or returns a fixed credential.
func (s *AuthGatewayStub) Login(ctx context.Context, username, password string) (*model.Credential, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return &model.Credential{Token: SignedToken(model.RoleButcher), Role: model.RoleButcher}, nil
}

// Register records the registration.
func (s *AuthGatewayStub) Register(ctx context.Context, reg model.Registration) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, reg)
	}
	s.Registered = append(s.Registered, reg)
	return nil
}
