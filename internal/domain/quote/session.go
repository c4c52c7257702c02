package quote

import (
	"errors"
	"time"

	"clearview_estimator/internal/domain/entities"
)

// ErrSessionConflict is returned when concurrent changes kept a session
// update from being applied.
var ErrSessionConflict = errors.New("estimator session changed concurrently")

// Session binds an estimator state to the quote it was opened for.
type Session struct {
	QuoteID   string              `json:"quote_id"`
	Prices    entities.PriceTable `json:"prices"`
	State     State               `json:"state"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// NewSession opens an empty session for a started quote.
func NewSession(q entities.Quote, now time.Time) Session {
	return Session{QuoteID: q.ID, Prices: q.Prices, State: NewState(), UpdatedAt: now}
}

// ResumeSession opens a session seeded with the selections stored on the quote.
func ResumeSession(q entities.Quote, now time.Time) Session {
	s := NewSession(q, now)
	if q.MainService != nil {
		main := *q.MainService
		s.State.Main = &main
	}
	s.State.AddOns = append(s.State.AddOns, q.AddOns...)
	if q.Frequency.Valid() {
		s.State.Frequency = q.Frequency
	}
	return s
}
