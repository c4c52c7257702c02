package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clearview_estimator/internal/domain/entities"
	"clearview_estimator/internal/domain/pricing"
	"clearview_estimator/internal/domain/quote"
	"clearview_estimator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("estimator session not found")
)

const mirrorTimeout = 5 * time.Second

//go:generate mockgen -source=estimator_usecase.go -destination=../adapter/http/handlers/mocks/mock_estimator_usecase.go -package=mocks

// IEstimatorUseCase drives the estimator page session: the customer toggles
// services and a frequency, then submits.
//
// The session store is the source of truth while the estimator is open. The
// quote record is a best-effort mirror refreshed in the background after
// every change; callers never wait for it.
//
// Open may be called again for an existing quote: the new session starts
// from the selections last mirrored into the quote record.
type IEstimatorUseCase interface {
	Open(ctx context.Context, quoteID string) (quote.Session, error)
	Get(ctx context.Context, quoteID string) (quote.Session, error)
	SelectMainService(ctx context.Context, quoteID string, tier entities.PackageTier, key entities.ServiceKey) (quote.Session, error)
	ToggleAddOn(ctx context.Context, quoteID string, key entities.ServiceKey, rawQuantity string) (quote.Session, error)
	SetFrequency(ctx context.Context, quoteID string, freq entities.Frequency) (quote.Session, error)
	Submit(ctx context.Context, quoteID string) (entities.Quote, error)
}

type EstimatorUseCase struct {
	sessions interfaces.ISessionStore
	repo     interfaces.IQuoteRepository
	quotes   IQuoteUseCase
	logger   *zap.Logger

	// dispatch runs the background mirror; tests swap it for a synchronous call.
	dispatch func(func())
}

var _ IEstimatorUseCase = (*EstimatorUseCase)(nil)

func NewEstimatorUseCase(sessions interfaces.ISessionStore, repo interfaces.IQuoteRepository, quotes IQuoteUseCase, logger *zap.Logger) *EstimatorUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimatorUseCase{
		sessions: sessions,
		repo:     repo,
		quotes:   quotes,
		logger:   logger,
		dispatch: func(fn func()) { go fn() },
	}
}

func (u *EstimatorUseCase) Open(ctx context.Context, quoteID string) (quote.Session, error) {
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return quote.Session{}, err
	}

	s := quote.ResumeSession(q, time.Now().UTC())
	if err := u.sessions.Save(ctx, s); err != nil {
		u.logger.Error("[estimator][usecase] session save failed", zap.String("quote_id", q.ID), zap.Error(err))
		return quote.Session{}, err
	}
	u.logger.Debug("[estimator][usecase] session opened", zap.String("quote_id", q.ID))
	return s, nil
}

func (u *EstimatorUseCase) Get(ctx context.Context, quoteID string) (quote.Session, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return quote.Session{}, ErrInvalidQuoteID
	}

	s, err := u.sessions.Get(ctx, quoteID)
	if err != nil {
		return quote.Session{}, err
	}
	if s == nil {
		return quote.Session{}, ErrSessionNotFound
	}
	return *s, nil
}

func (u *EstimatorUseCase) SelectMainService(ctx context.Context, quoteID string, tier entities.PackageTier, key entities.ServiceKey) (quote.Session, error) {
	return u.mutate(ctx, quoteID, func(s *quote.Session) error {
		return s.State.Apply(quote.MainSelection{Tier: tier, Key: key}, s.Prices)
	})
}

func (u *EstimatorUseCase) ToggleAddOn(ctx context.Context, quoteID string, key entities.ServiceKey, rawQuantity string) (quote.Session, error) {
	return u.mutate(ctx, quoteID, func(s *quote.Session) error {
		qty := 0
		// Removing a selected add-on ignores the quantity.
		if key.IsQuantityPriced() && !s.State.HasAddOn(key) {
			n, err := pricing.ParseQuantity(rawQuantity)
			if err != nil {
				return err
			}
			qty = n
		}
		return s.State.Apply(quote.AddOnSelection{Key: key, Quantity: qty}, s.Prices)
	})
}

func (u *EstimatorUseCase) SetFrequency(ctx context.Context, quoteID string, freq entities.Frequency) (quote.Session, error) {
	return u.mutate(ctx, quoteID, func(s *quote.Session) error {
		return s.State.SetFrequency(freq)
	})
}

func (u *EstimatorUseCase) Submit(ctx context.Context, quoteID string) (entities.Quote, error) {
	s, err := u.Get(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	q, err := u.quotes.SubmitQuote(ctx, s.QuoteID, s.State)
	if err != nil {
		return entities.Quote{}, err
	}

	if err := u.sessions.Delete(ctx, s.QuoteID); err != nil {
		u.logger.Warn("[estimator][usecase] session delete failed", zap.String("quote_id", s.QuoteID), zap.Error(err))
	}
	return q, nil
}

func (u *EstimatorUseCase) mutate(ctx context.Context, quoteID string, apply func(s *quote.Session) error) (quote.Session, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return quote.Session{}, ErrInvalidQuoteID
	}

	s, err := u.sessions.Update(ctx, quoteID, func(s *quote.Session) error {
		if err := apply(s); err != nil {
			return err
		}
		s.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		if errors.Is(err, quote.ErrSessionConflict) {
			u.logger.Warn("[estimator][usecase] session update conflict", zap.String("quote_id", quoteID), zap.Error(err))
		}
		return quote.Session{}, err
	}
	if s == nil {
		return quote.Session{}, ErrSessionNotFound
	}

	u.mirror(ctx, *s)
	return *s, nil
}

// mirror copies the session selections into the quote record in the background.
func (u *EstimatorUseCase) mirror(ctx context.Context, s quote.Session) {
	bg := context.WithoutCancel(ctx)
	u.dispatch(func() {
		ctx, cancel := context.WithTimeout(bg, mirrorTimeout)
		defer cancel()

		q, err := u.repo.GetByID(ctx, s.QuoteID)
		if err != nil {
			u.logger.Warn("[estimator][usecase] mirror load failed", zap.String("quote_id", s.QuoteID), zap.Error(err))
			return
		}
		if q.ID == "" {
			u.logger.Warn("[estimator][usecase] mirror skipped, quote missing", zap.String("quote_id", s.QuoteID))
			return
		}

		q = s.State.Mirror(q)
		q.Status = entities.QuoteStatusInProgress
		q.UpdatedAt = s.UpdatedAt

		updated, err := u.repo.UpdateDraft(ctx, q)
		if err != nil {
			u.logger.Warn("[estimator][usecase] mirror update failed", zap.String("quote_id", s.QuoteID), zap.Error(err))
			return
		}
		if updated.ID == "" {
			u.logger.Debug("[estimator][usecase] mirror skipped, quote already submitted", zap.String("quote_id", s.QuoteID))
		}
	})
}
