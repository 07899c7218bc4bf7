package usecase

import (
	"fmt"
	"math"
	"time"

	"github.com/butcherynv/posdesk/internal/domain/model"
)

// RecentOrders returns the orders created within the trailing window ending
// at now. Both bounds are inclusive. A nil or empty input yields an empty
// slice, not an error.
func RecentOrders(orders []model.Order, now time.Time, window time.Duration) []model.Order {
	since := now.Add(-window)
	recent := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.CreatedAt.Before(since) || o.CreatedAt.After(now) {
			continue
		}
		recent = append(recent, o)
	}
	return recent
}

// KilogramsByMeatType attributes each order's weight equally across its meat
// types: an order listing N types contributes weight/N to every one of them.
// The split keeps the per-type figures from double-counting total tonnage.
// Totals accumulate unrounded; round only at display time with DisplayTotals.
func KilogramsByMeatType(orders []model.Order) map[string]float64 {
	totals := make(map[string]float64)
	for _, o := range orders {
		if len(o.MeatTypes) == 0 {
			continue
		}
		share := o.Kilogram / float64(len(o.MeatTypes))
		for _, meat := range o.MeatTypes {
			totals[meat] += share
		}
	}
	return totals
}

// KilogramsByChannel sums order weights per sales channel.
func KilogramsByChannel(orders []model.Order) map[string]float64 {
	totals := make(map[string]float64)
	for _, o := range orders {
		totals[string(model.NormalizeChannel(o.SalesType))] += o.Kilogram
	}
	return totals
}

// ReportKilograms sums full order weights per meat type, the attribution the
// all-time report has always used: unlike the dashboard split, an order
// listing N types contributes its whole weight to each of them.
func ReportKilograms(orders []model.Order) map[string]float64 {
	totals := make(map[string]float64)
	for _, o := range orders {
		for _, meat := range o.MeatTypes {
			totals[meat] += o.Kilogram
		}
	}
	return totals
}

// TotalKilograms sums all order weights.
func TotalKilograms(orders []model.Order) float64 {
	var sum float64
	for _, o := range orders {
		sum += o.Kilogram
	}
	return sum
}

// Round2 rounds a kilogram figure to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DisplayTotals returns a copy of totals rounded for display. The input map
// keeps its unrounded values.
func DisplayTotals(totals map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(totals))
	for k, v := range totals {
		out[k] = Round2(v)
	}
	return out
}

// SameDay reports whether two instants fall on the same calendar day in t's
// location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TimeConsumed formats the duration between order creation and completion as
// the cook display does ("1h 5m", "12m"). It returns "-" when the order is
// unfinished or the timestamps are inconsistent.
func TimeConsumed(created time.Time, finished *time.Time) string {
	if finished == nil || created.IsZero() {
		return "-"
	}
	diff := finished.Sub(created)
	if diff < 0 {
		return "-"
	}
	mins := int(diff.Minutes())
	hours := mins / 60
	mins = mins % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
