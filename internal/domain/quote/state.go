// Package quote assembles a customer's selections into an itemized quote.
package quote

import (
	"errors"
	"fmt"

	"clearview_estimator/internal/domain/entities"
	"clearview_estimator/internal/domain/pricing"
)

var (
	ErrEmptyQuote       = errors.New("please select at least one service before submitting")
	ErrUnknownService   = errors.New("unknown service")
	ErrTierMismatch     = errors.New("service does not belong to package tier")
	ErrInvalidFrequency = errors.New("invalid frequency")
)

// State is the estimator state of one page session.
type State struct {
	Main      *entities.SelectedService  `json:"main_service,omitempty"`
	AddOns    []entities.SelectedService `json:"add_ons"`
	Frequency entities.Frequency         `json:"frequency"`
}

// NewState returns an empty one-time state.
func NewState() State {
	return State{AddOns: []entities.SelectedService{}, Frequency: entities.FrequencyOneTime}
}

// SelectMainService replaces the main service, or clears it when the
// candidate matches the current one on key and tier.
func (s *State) SelectMainService(candidate entities.SelectedService) {
	if s.Main != nil && s.Main.ServiceKey == candidate.ServiceKey && s.Main.PackageTier == candidate.PackageTier {
		s.Main = nil
		return
	}
	candidate.Price = pricing.ApplyDiscount(candidate.BasePrice, s.frequency())
	s.Main = &candidate
}

// ToggleAddOn removes the add-on with the candidate's key, or appends it.
func (s *State) ToggleAddOn(candidate entities.SelectedService) {
	for i, a := range s.AddOns {
		if a.ServiceKey == candidate.ServiceKey {
			s.AddOns = append(s.AddOns[:i:i], s.AddOns[i+1:]...)
			return
		}
	}
	candidate.Price = pricing.ApplyDiscount(candidate.BasePrice, s.frequency())
	s.AddOns = append(s.AddOns, candidate)
}

// SetFrequency reprices every selection from its base price.
func (s *State) SetFrequency(freq entities.Frequency) error {
	if !freq.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, freq)
	}
	s.Frequency = freq
	if s.Main != nil {
		s.Main.Price = pricing.ApplyDiscount(s.Main.BasePrice, freq)
	}
	for i := range s.AddOns {
		s.AddOns[i].Price = pricing.ApplyDiscount(s.AddOns[i].BasePrice, freq)
	}
	return nil
}

// Total sums the discounted prices of every selection.
func (s State) Total() int64 {
	var total int64
	if s.Main != nil {
		total += s.Main.Price
	}
	for _, a := range s.AddOns {
		total += a.Price
	}
	return total
}

// IsEmpty reports whether nothing is selected.
func (s State) IsEmpty() bool {
	return s.Main == nil && len(s.AddOns) == 0
}

// Validate rejects submission of an empty quote.
func (s State) Validate() error {
	if s.IsEmpty() {
		return ErrEmptyQuote
	}
	return nil
}

// DiscountPercent is the discount of the active frequency.
func (s State) DiscountPercent() int {
	return pricing.DiscountPercent(s.frequency())
}

// Apply resolves a selection against the price table and runs the toggle
// rule of its variant.
func (s *State) Apply(sel Selection, prices entities.PriceTable) error {
	switch v := sel.(type) {
	case MainSelection:
		svc, err := resolveMain(v, prices)
		if err != nil {
			return err
		}
		s.SelectMainService(svc)
	case AddOnSelection:
		if s.HasAddOn(v.Key) {
			s.ToggleAddOn(entities.SelectedService{ServiceKey: v.Key})
			return nil
		}
		svc, err := resolveAddOn(v, prices)
		if err != nil {
			return err
		}
		s.ToggleAddOn(svc)
	default:
		return fmt.Errorf("%w: unsupported selection %T", ErrUnknownService, sel)
	}
	return nil
}

// Finalize copies the selections and totals into the quote record.
func (s State) Finalize(q entities.Quote) (entities.Quote, error) {
	if err := s.Validate(); err != nil {
		return q, err
	}
	return s.Mirror(q), nil
}

// Mirror copies the current selections into the quote record without validating.
func (s State) Mirror(q entities.Quote) entities.Quote {
	if s.Main != nil {
		main := *s.Main
		q.MainService = &main
	} else {
		q.MainService = nil
	}
	q.AddOns = append([]entities.SelectedService{}, s.AddOns...)
	q.Frequency = s.frequency()
	q.DiscountPercent = s.DiscountPercent()
	q.TotalPrice = s.Total()
	return q
}

// HasAddOn reports whether the add-on is currently selected.
func (s State) HasAddOn(key entities.ServiceKey) bool {
	for _, a := range s.AddOns {
		if a.ServiceKey == key {
			return true
		}
	}
	return false
}

func (s State) frequency() entities.Frequency {
	if s.Frequency == "" {
		return entities.FrequencyOneTime
	}
	return s.Frequency
}

func resolveMain(sel MainSelection, prices entities.PriceTable) (entities.SelectedService, error) {
	if !sel.Key.IsWindowCleaning() {
		return entities.SelectedService{}, fmt.Errorf("%w: %q is not a window-cleaning package", ErrUnknownService, sel.Key)
	}
	if sel.Key.Tier() != sel.Tier {
		return entities.SelectedService{}, fmt.Errorf("%w: %q / %q", ErrTierMismatch, sel.Key, sel.Tier)
	}
	price, _ := prices.Lookup(sel.Key)
	return entities.SelectedService{
		ServiceKey:  sel.Key,
		BasePrice:   price,
		Price:       price,
		PackageTier: sel.Tier,
	}, nil
}

func resolveAddOn(sel AddOnSelection, prices entities.PriceTable) (entities.SelectedService, error) {
	if !sel.Key.IsAddOn() {
		return entities.SelectedService{}, fmt.Errorf("%w: %q is not an add-on", ErrUnknownService, sel.Key)
	}
	if sel.Key.IsQuantityPriced() {
		if sel.Quantity < 1 {
			return entities.SelectedService{}, fmt.Errorf("%w: %s needs at least one screen", pricing.ErrInvalidQuantity, sel.Key)
		}
		price, _ := pricing.QuantityPrice(sel.Key, sel.Quantity)
		return entities.SelectedService{ServiceKey: sel.Key, BasePrice: price, Price: price, Quantity: sel.Quantity}, nil
	}
	price, _ := prices.Lookup(sel.Key)
	return entities.SelectedService{ServiceKey: sel.Key, BasePrice: price, Price: price}, nil
}
