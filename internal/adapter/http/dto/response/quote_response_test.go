package response

import (
	"testing"
	"time"

	"clearview_estimator/internal/domain/booking"
	"clearview_estimator/internal/domain/entities"
	"clearview_estimator/internal/domain/quote"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:       "q-1",
		Customer: entities.Customer{Name: "Jane", Email: "jane@example.com"},
		Prices:   entities.PriceTable{BasicBoth: 264, Blinds: 75, MinimumApplied: true},
		MainService: &entities.SelectedService{
			ServiceKey: entities.ServiceBasicBoth, PackageTier: entities.PackageTierDefined, BasePrice: 264, Price: 211,
		},
		Frequency:       entities.FrequencyThreeMonths,
		DiscountPercent: 20,
		TotalPrice:      211,
		Status:          entities.QuoteStatusCompleted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res := FromQuote(q)
	if res.QuoteID != "q-1" || res.Status != "completed" || res.Frequency != "three_months" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Prices.BasicBoth != 264 || res.Prices.Blinds != 75 || !res.Prices.MinimumApplied {
		t.Fatalf("unexpected prices: %+v", res.Prices)
	}
	if res.MainService == nil || res.MainService.Price != 211 || res.MainService.PackageTier != "defined" {
		t.Fatalf("unexpected main service: %+v", res.MainService)
	}
	if res.AddOns == nil || len(res.AddOns) != 0 {
		t.Fatalf("expected empty add-ons, got %+v", res.AddOns)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromSession(t *testing.T) {
	s := quote.NewSession(entities.Quote{ID: "q-1", Prices: entities.PriceTable{Driveway: 300}}, time.Now().UTC())
	s.State.ToggleAddOn(entities.SelectedService{ServiceKey: entities.ServiceDriveway, BasePrice: 300})
	if err := s.State.SetFrequency(entities.FrequencySixMonths); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := FromSession(s)
	if res.MainService != nil {
		t.Fatalf("expected no main service, got %+v", res.MainService)
	}
	if len(res.AddOns) != 1 || res.AddOns[0].Price != 255 {
		t.Fatalf("unexpected add-ons: %+v", res.AddOns)
	}
	if res.TotalPrice != 255 || res.DiscountPercent != 15 {
		t.Fatalf("unexpected totals: %+v", res)
	}
}

func TestFromBookingLink(t *testing.T) {
	res := FromBookingLink("q-1", booking.NewDirectory("https://book.example.com").LinkFor(149))
	if res.QuoteID != "q-1" || res.Band != "under_150" || res.URL != "https://book.example.com/under-150" {
		t.Fatalf("unexpected booking link: %+v", res)
	}
}
