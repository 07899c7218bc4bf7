package usecase

import (
	"math"
	"strconv"
	"strings"

	domainErrors "github.com/butcherynv/posdesk/internal/domain/errors"
	"github.com/butcherynv/posdesk/internal/domain/model"
)

// OrderForm is the in-progress edit buffer for a new or edited order. Weight
// is kept as entered text until validation. The zero value is a blank form
// for a new INDOOR order.
type OrderForm struct {
	MeatTypes    []string
	WeightText   string
	SalesType    model.SalesChannel
	CustomerName string
	WaiterName   string

	editID string
}

// NewOrderForm returns a blank form defaulting to the indoor channel.
func NewOrderForm() *OrderForm {
	return &OrderForm{SalesType: model.ChannelIndoor}
}

// FormFromOrder pre-populates an edit buffer from an existing order.
// Submission then updates that order in place instead of creating a new one.
func FormFromOrder(o model.Order) *OrderForm {
	return &OrderForm{
		MeatTypes:    append([]string(nil), o.MeatTypes...),
		WeightText:   strconv.FormatFloat(o.Kilogram, 'f', -1, 64),
		SalesType:    model.NormalizeChannel(o.SalesType),
		CustomerName: o.CustomerName,
		WaiterName:   o.WaiterName,
		editID:       o.ID,
	}
}

// BeginEdit switches the buffer into edit mode targeting the given order.
func (f *OrderForm) BeginEdit(id string) {
	f.editID = id
}

// Editing reports whether the buffer targets an existing order.
func (f *OrderForm) Editing() bool {
	return f.editID != ""
}

// EditID returns the target order identifier in edit mode.
func (f *OrderForm) EditID() string {
	return f.editID
}

// Reset discards the buffer and clears edit mode. The original order is not
// touched.
func (f *OrderForm) Reset() {
	*f = OrderForm{SalesType: model.ChannelIndoor}
}

// Toggle adds the meat type to the selection, or removes it when already
// selected.
func (f *OrderForm) Toggle(meatType string) {
	for i, m := range f.MeatTypes {
		if m == meatType {
			f.MeatTypes = append(f.MeatTypes[:i], f.MeatTypes[i+1:]...)
			return
		}
	}
	f.MeatTypes = append(f.MeatTypes, meatType)
}

// Validate checks the buffer and, on success, produces the immutable write
// payload. Checks run in a fixed order: weight, item selection, waiter.
// Validation never mutates the buffer, so re-validating a valid buffer
// yields an identical payload.
func (f *OrderForm) Validate() (model.OrderPayload, error) {
	// ParseFloat also accepts "NaN" and "Inf"; !(weight > 0) catches NaN
	// where weight <= 0 would not.
	weight, err := strconv.ParseFloat(strings.TrimSpace(f.WeightText), 64)
	if err != nil || !(weight > 0) || math.IsInf(weight, 0) {
		return model.OrderPayload{}, domainErrors.ErrInvalidWeight
	}

	if len(f.MeatTypes) == 0 {
		return model.OrderPayload{}, domainErrors.ErrNoItemsSelected
	}

	channel := model.NormalizeChannel(f.SalesType)
	if channel.Indoor() && f.WaiterName == "" {
		return model.OrderPayload{}, domainErrors.ErrMissingWaiter
	}

	waiter := f.WaiterName
	if !channel.Indoor() {
		waiter = ""
	}

	return model.OrderPayload{
		MeatTypes:    append([]string(nil), f.MeatTypes...),
		SalesType:    channel,
		CustomerName: strings.TrimSpace(f.CustomerName),
		WaiterName:   waiter,
		Kilogram:     weight,
	}, nil
}
