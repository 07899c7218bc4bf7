package model

import "time"

// OrderStatus describes the cooking lifecycle. The transition is monotonic:
// a finished order never returns to pending.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusFinished OrderStatus = "finished"
)

// SalesChannel is the sale context of an order.
type SalesChannel string

const (
	ChannelIndoor  SalesChannel = "INDOOR"
	ChannelOutdoor SalesChannel = "OUTDOOR"

	// ChannelOutCustomer is a legacy spelling of OUTDOOR still emitted by
	// older records; NormalizeChannel folds it away.
	ChannelOutCustomer SalesChannel = "OUT CUSTOMER"
)

// NormalizeChannel maps the legacy walk-up spelling onto OUTDOOR.
func NormalizeChannel(c SalesChannel) SalesChannel {
	if c == ChannelOutCustomer {
		return ChannelOutdoor
	}
	return c
}

// Indoor reports whether the channel requires table service by a waiter.
func (c SalesChannel) Indoor() bool {
	return c == ChannelIndoor
}

// OrderItem is an optional line-level detail carried by some order records.
// Prices are pass-through display values; the gateway computes nothing from them.
type OrderItem struct {
	Name     string
	Quantity int
	Weight   float64
	Price    string
}

// Order is a meat order as reported by the upstream API. Identifier is opaque
// and server-assigned. MeatTypes always holds at least one label; the weight is
// shared across all of them.
type Order struct {
	ID           string
	MeatTypes    []string
	Kilogram     float64
	SalesType    SalesChannel
	CustomerName string
	WaiterName   string
	Status       OrderStatus
	Items        []OrderItem
	CreatedAt    time.Time
	FinishedAt   *time.Time
}

// Finished reports whether the order completed cooking.
func (o Order) Finished() bool {
	return o.Status == OrderStatusFinished
}

// OrderPayload is the immutable write shape produced by a validated order form.
// WaiterName is empty unless the channel is INDOOR.
type OrderPayload struct {
	MeatTypes    []string
	SalesType    SalesChannel
	CustomerName string
	WaiterName   string
	Kilogram     float64
}
