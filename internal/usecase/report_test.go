package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/butcherynv/posdesk/internal/domain/model"
)

func TestRenderReport(t *testing.T) {
	view := &ReportView{
		Orders: []model.Order{
			{ID: "o1", MeatTypes: []string{"Beef", "Lamb"}, Kilogram: 3.5, SalesType: model.ChannelIndoor, Status: model.OrderStatusPending},
			{ID: "o2", MeatTypes: []string{"Beef"}, Kilogram: 1, SalesType: model.ChannelOutdoor, Status: model.OrderStatusFinished},
		},
		KgByMeatType:   map[string]float64{"Beef": 4.5, "Lamb": 3.5},
		TotalKilograms: 4.5,
		GeneratedAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	text := RenderReport(view)
	for _, want := range []string{
		"SALES REPORT",
		"Generated: 2024-03-01T10:00:00Z",
		"Beef, Lamb",
		"INDOOR",
		"TOTAL: 4.50 kg",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in report:\n%s", want, text)
		}
	}

	beefIdx := strings.Index(text, "Beef: 4.50 kg")
	lambIdx := strings.Index(text, "Lamb: 3.50 kg")
	if beefIdx == -1 || lambIdx == -1 || beefIdx > lambIdx {
		t.Fatalf("expected sorted per-type totals:\n%s", text)
	}
}

func TestRenderReportEmpty(t *testing.T) {
	text := RenderReport(&ReportView{GeneratedAt: time.Unix(0, 0).UTC()})
	if !strings.Contains(text, "TOTAL: 0.00 kg") {
		t.Fatalf("expected zero total:\n%s", text)
	}
}
