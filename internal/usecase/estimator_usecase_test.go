package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"clearview_estimator/internal/domain/booking"
	"clearview_estimator/internal/domain/entities"
	"clearview_estimator/internal/domain/pricing"
	"clearview_estimator/internal/domain/quote"
	mock_interfaces "clearview_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

var testPrices = entities.PriceTable{
	BasicBoth:            264,
	BasicExt:             150,
	StandardBoth:         150,
	StandardExt:          150,
	Driveway:             300,
	ExteriorHouseWashing: 1800,
	Blinds:               75,
}

type estimatorFixture struct {
	sessions *mock_interfaces.MockISessionStore
	repo     *mock_interfaces.MockIQuoteRepository
	uc       *EstimatorUseCase
}

func newEstimatorFixture(t *testing.T) estimatorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := mock_interfaces.NewMockISessionStore(ctrl)
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	quotes := NewQuoteUseCase(repo, nil, booking.NewDirectory(bookingBase), nil)
	uc := NewEstimatorUseCase(sessions, repo, quotes, nil)
	uc.dispatch = func(fn func()) { fn() }
	return estimatorFixture{sessions: sessions, repo: repo, uc: uc}
}

func openSession() *quote.Session {
	s := quote.NewSession(entities.Quote{ID: "q-1", Prices: testPrices}, time.Now().UTC())
	return &s
}

// expectUpdate applies the store update to sess the way the Redis store does.
func (f estimatorFixture) expectUpdate(sess *quote.Session) *gomock.Call {
	return f.sessions.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fn func(*quote.Session) error) (*quote.Session, error) {
			if sess == nil {
				return nil, nil
			}
			if err := fn(sess); err != nil {
				return nil, err
			}
			return sess, nil
		},
	)
}

// expectMirror accepts the background quote refresh after a mutation.
func (f estimatorFixture) expectMirror() {
	f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusStarted}, nil)
	f.repo.EXPECT().UpdateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			return q, nil
		},
	)
}

func TestEstimatorUseCase_Open(t *testing.T) {
	t.Run("quote not found", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := f.uc.Open(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("save error", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Prices: testPrices}, nil)
		f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis"))

		_, err := f.uc.Open(context.Background(), "q-1")
		if err == nil || err.Error() != "redis" {
			t.Fatalf("expected redis error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Prices: testPrices}, nil)
		f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		s, err := f.uc.Open(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.QuoteID != "q-1" || s.Prices != testPrices || !s.State.IsEmpty() {
			t.Fatalf("unexpected session: %+v", s)
		}
	})

	t.Run("reopen resumes stored selections", func(t *testing.T) {
		f := newEstimatorFixture(t)
		stored := entities.Quote{
			ID:          "q-1",
			Prices:      testPrices,
			Status:      entities.QuoteStatusInProgress,
			MainService: &entities.SelectedService{ServiceKey: entities.ServiceBasicBoth, BasePrice: 264, Price: 211, PackageTier: entities.PackageTierDefined},
			AddOns:      []entities.SelectedService{{ServiceKey: entities.ServiceBlinds, BasePrice: 75, Price: 60}},
			Frequency:   entities.FrequencyThreeMonths,
		}
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s quote.Session) error {
				if s.State.Total() != 271 {
					t.Fatalf("expected resumed total 271 to be saved, got %d", s.State.Total())
				}
				return nil
			},
		)

		s, err := f.uc.Open(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State.Frequency != entities.FrequencyThreeMonths || len(s.State.AddOns) != 1 || s.State.Main == nil {
			t.Fatalf("unexpected session: %+v", s)
		}
	})
}

func TestEstimatorUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newEstimatorFixture(t)
		_, err := f.uc.Get(context.Background(), "")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.sessions.EXPECT().Get(gomock.Any(), "q-1").Return(nil, nil)

		_, err := f.uc.Get(context.Background(), "q-1")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestEstimatorUseCase_SelectMainService(t *testing.T) {
	t.Run("mirrors the quote as in_progress", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.expectUpdate(openSession())
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusStarted}, nil)
		var mirroredAt time.Time
		f.repo.EXPECT().UpdateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				mirroredAt = q.UpdatedAt
				if q.Status != entities.QuoteStatusInProgress {
					t.Fatalf("expected in_progress, got %s", q.Status)
				}
				if q.MainService == nil || q.MainService.ServiceKey != entities.ServiceBasicBoth || q.TotalPrice != 264 {
					t.Fatalf("unexpected mirrored quote: %+v", q)
				}
				return q, nil
			},
		)

		s, err := f.uc.SelectMainService(context.Background(), "q-1", entities.PackageTierDefined, entities.ServiceBasicBoth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State.Total() != 264 {
			t.Fatalf("expected total 264, got %d", s.State.Total())
		}
		if mirroredAt.IsZero() || !mirroredAt.Equal(s.UpdatedAt) {
			t.Fatalf("expected mirror stamped with session change time %v, got %v", s.UpdatedAt, mirroredAt)
		}
	})

	t.Run("tier mismatch does not save", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.expectUpdate(openSession())

		_, err := f.uc.SelectMainService(context.Background(), "q-1", entities.PackageTierStandard, entities.ServiceBasicBoth)
		if !errors.Is(err, quote.ErrTierMismatch) {
			t.Fatalf("expected ErrTierMismatch, got %v", err)
		}
	})

	t.Run("mirror failure is not surfaced", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.expectUpdate(openSession())
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		if _, err := f.uc.SelectMainService(context.Background(), "q-1", entities.PackageTierDefined, entities.ServiceBasicBoth); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mirror skipped for submitted quote", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.expectUpdate(openSession())
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusCompleted}, nil)
		f.repo.EXPECT().UpdateDraft(gomock.Any(), gomock.Any()).Return(entities.Quote{}, nil)

		if _, err := f.uc.SelectMainService(context.Background(), "q-1", entities.PackageTierDefined, entities.ServiceBasicBoth); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimatorUseCase_ToggleAddOn(t *testing.T) {
	t.Run("invalid quantity does not save", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.expectUpdate(openSession())

		_, err := f.uc.ToggleAddOn(context.Background(), "q-1", entities.ServiceScreenRepair, "abc")
		if !errors.Is(err, pricing.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("quantity above the cap rejected", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.expectUpdate(openSession())

		_, err := f.uc.ToggleAddOn(context.Background(), "q-1", entities.ServiceScreenBuilding, "368934881474191034")
		if !errors.Is(err, pricing.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("adding a screen add-on needs a quantity", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.expectUpdate(openSession())

		_, err := f.uc.ToggleAddOn(context.Background(), "q-1", entities.ServiceScreenRepair, "")
		if !errors.Is(err, pricing.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("removing a screen add-on ignores quantity text", func(t *testing.T) {
		f := newEstimatorFixture(t)
		existing := openSession()
		existing.State.ToggleAddOn(entities.SelectedService{ServiceKey: entities.ServiceScreenRepair, BasePrice: 75, Quantity: 3})
		f.expectUpdate(existing)
		f.expectMirror()

		s, err := f.uc.ToggleAddOn(context.Background(), "q-1", entities.ServiceScreenRepair, "three")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.State.AddOns) != 0 {
			t.Fatalf("expected screen repair removed, got %+v", s.State.AddOns)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.expectUpdate(nil)

		_, err := f.uc.ToggleAddOn(context.Background(), "q-1", entities.ServiceBlinds, "")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("concurrent update conflict", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.sessions.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).Return(nil, quote.ErrSessionConflict)

		_, err := f.uc.ToggleAddOn(context.Background(), "q-1", entities.ServiceBlinds, "")
		if !errors.Is(err, quote.ErrSessionConflict) {
			t.Fatalf("expected ErrSessionConflict, got %v", err)
		}
	})

	t.Run("screen repair priced from quantity", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.expectUpdate(openSession())
		f.expectMirror()

		s, err := f.uc.ToggleAddOn(context.Background(), "q-1", entities.ServiceScreenRepair, " 3 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.State.AddOns) != 1 || s.State.AddOns[0].Price != 75 || s.State.AddOns[0].Quantity != 3 {
			t.Fatalf("unexpected add-ons: %+v", s.State.AddOns)
		}
	})

	t.Run("toggle off removes without quantity", func(t *testing.T) {
		f := newEstimatorFixture(t)
		existing := openSession()
		existing.State.ToggleAddOn(entities.SelectedService{ServiceKey: entities.ServiceDriveway, BasePrice: 300})
		f.expectUpdate(existing)
		f.expectMirror()

		s, err := f.uc.ToggleAddOn(context.Background(), "q-1", entities.ServiceDriveway, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.State.AddOns) != 0 {
			t.Fatalf("expected driveway removed, got %+v", s.State.AddOns)
		}
	})

	t.Run("session save error", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.sessions.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).Return(nil, errors.New("redis"))

		_, err := f.uc.ToggleAddOn(context.Background(), "q-1", entities.ServiceBlinds, "")
		if err == nil || err.Error() != "redis" {
			t.Fatalf("expected redis error, got %v", err)
		}
	})
}

func TestEstimatorUseCase_SetFrequency(t *testing.T) {
	t.Run("invalid frequency", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.expectUpdate(openSession())

		_, err := f.uc.SetFrequency(context.Background(), "q-1", entities.Frequency("weekly"))
		if !errors.Is(err, quote.ErrInvalidFrequency) {
			t.Fatalf("expected ErrInvalidFrequency, got %v", err)
		}
	})

	t.Run("reprices selections", func(t *testing.T) {
		f := newEstimatorFixture(t)
		existing := openSession()
		existing.State.SelectMainService(entities.SelectedService{ServiceKey: entities.ServiceBasicBoth, BasePrice: 264, PackageTier: entities.PackageTierDefined})
		f.expectUpdate(existing)
		f.expectMirror()

		s, err := f.uc.SetFrequency(context.Background(), "q-1", entities.FrequencyThreeMonths)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State.Total() != 211 {
			t.Fatalf("expected total 211, got %d", s.State.Total())
		}
	})
}

func TestEstimatorUseCase_Submit(t *testing.T) {
	t.Run("empty session rejected", func(t *testing.T) {
		f := newEstimatorFixture(t)
		f.sessions.EXPECT().Get(gomock.Any(), "q-1").Return(openSession(), nil)

		_, err := f.uc.Submit(context.Background(), "q-1")
		if !errors.Is(err, quote.ErrEmptyQuote) {
			t.Fatalf("expected ErrEmptyQuote, got %v", err)
		}
	})

	t.Run("success deletes session", func(t *testing.T) {
		f := newEstimatorFixture(t)
		existing := openSession()
		existing.State.SelectMainService(entities.SelectedService{ServiceKey: entities.ServiceBasicBoth, BasePrice: 264, PackageTier: entities.PackageTierDefined})
		f.sessions.EXPECT().Get(gomock.Any(), "q-1").Return(existing, nil)
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusInProgress}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				return q, nil
			},
		)
		f.sessions.EXPECT().Delete(gomock.Any(), "q-1").Return(errors.New("redis"))

		q, err := f.uc.Submit(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusCompleted || q.TotalPrice != 264 {
			t.Fatalf("unexpected quote: %+v", q)
		}
		if q.BookingURL != bookingBase+"/200-to-300" {
			t.Fatalf("unexpected booking url %q", q.BookingURL)
		}
	})
}

func TestEstimatorUseCase_MirrorOutlivesRequest(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newEstimatorFixture(t)
	var wg sync.WaitGroup
	f.uc.dispatch = func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	mirrored := make(chan entities.Quote, 1)
	f.expectUpdate(openSession())
	f.repo.EXPECT().GetByID(gomock.Any(), "q-1").DoAndReturn(
		func(ctx context.Context, _ string) (entities.Quote, error) {
			if err := ctx.Err(); err != nil {
				t.Errorf("mirror context already done: %v", err)
			}
			return entities.Quote{ID: "q-1", Status: entities.QuoteStatusStarted}, nil
		},
	)
	f.repo.EXPECT().UpdateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			mirrored <- q
			return q, nil
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	if _, err := f.uc.ToggleAddOn(ctx, "q-1", entities.ServiceBlinds, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cancel()
	wg.Wait()

	q := <-mirrored
	if len(q.AddOns) != 1 || q.AddOns[0].ServiceKey != entities.ServiceBlinds || q.TotalPrice != 75 {
		t.Fatalf("unexpected mirrored quote: %+v", q)
	}
}
