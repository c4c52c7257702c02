package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clearview_estimator/internal/domain/booking"
	"clearview_estimator/internal/domain/entities"
	"clearview_estimator/internal/domain/pricing"
	"clearview_estimator/internal/domain/quote"
	"clearview_estimator/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrIncompleteCustomer = errors.New("customer name and a valid email are required to send the estimate")
	ErrQuoteNotSubmitted  = errors.New("quote has not been submitted")
	ErrNotificationFailed = errors.New("estimate email could not be sent")
)

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_usecase.go -package=mocks

// IQuoteUseCase exposes the quote lifecycle:
//   - intake form => StartQuote() (status started)
//   - estimator submit => SubmitQuote() (status completed)
//   - "email me my estimate" => SendEstimateEmail() (status sent_email)
//   - "book now" => BookingLink()
type IQuoteUseCase interface {
	CalculatePrices(profile entities.HouseProfile) entities.PriceTable
	StartQuote(ctx context.Context, customer entities.Customer, profile entities.HouseProfile) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Quote, error)
	SubmitQuote(ctx context.Context, id string, state quote.State) (entities.Quote, error)
	SendEstimateEmail(ctx context.Context, id string) (entities.Quote, error)
	BookingLink(ctx context.Context, id string) (booking.Link, error)
}

type QuoteUseCase struct {
	repo      interfaces.IQuoteRepository
	notifier  interfaces.IEstimateNotifier
	directory *booking.Directory
	validate  *validator.Validate
	logger    *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, notifier interfaces.IEstimateNotifier, directory *booking.Directory, logger *zap.Logger) *QuoteUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteUseCase{
		repo:      repo,
		notifier:  notifier,
		directory: directory,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (u *QuoteUseCase) CalculatePrices(profile entities.HouseProfile) entities.PriceTable {
	return pricing.ComputePrices(profile)
}

func (u *QuoteUseCase) StartQuote(ctx context.Context, customer entities.Customer, profile entities.HouseProfile) (entities.Quote, error) {
	customer = normalizeCustomer(customer)
	if customer.Email != "" {
		if err := u.validate.Var(customer.Email, "email"); err != nil {
			return entities.Quote{}, ErrInvalidEmail
		}
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:        uuid.NewString(),
		Customer:  customer,
		House:     profile,
		Prices:    pricing.ComputePrices(profile),
		AddOns:    []entities.SelectedService{},
		Frequency: entities.FrequencyOneTime,
		Status:    entities.QuoteStatusStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.logger.Error("[quote][usecase] create failed", zap.String("quote_id", q.ID), zap.Error(err))
		return entities.Quote{}, err
	}
	u.logger.Info("[quote][usecase] quote started",
		zap.String("quote_id", created.ID),
		zap.Bool("minimum_applied", created.Prices.MinimumApplied))
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByEmail(ctx context.Context, email string) ([]entities.Quote, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || u.validate.Var(email, "email") != nil {
		return nil, ErrInvalidEmail
	}
	return u.repo.ListByEmail(ctx, email)
}

func (u *QuoteUseCase) SubmitQuote(ctx context.Context, id string, state quote.State) (entities.Quote, error) {
	if err := state.Validate(); err != nil {
		return entities.Quote{}, err
	}

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	q, err = state.Finalize(q)
	if err != nil {
		return entities.Quote{}, err
	}
	if u.directory != nil {
		q.BookingURL = u.directory.LinkFor(q.TotalPrice).URL
	}
	q.Status = entities.QuoteStatusCompleted
	q.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		u.logger.Error("[quote][usecase] submit update failed", zap.String("quote_id", q.ID), zap.Error(err))
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.logger.Info("[quote][usecase] quote submitted",
		zap.String("quote_id", updated.ID),
		zap.Int64("total_price", updated.TotalPrice),
		zap.String("frequency", string(updated.Frequency)))
	return updated, nil
}

func (u *QuoteUseCase) SendEstimateEmail(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusCompleted && q.Status != entities.QuoteStatusSentEmail {
		return entities.Quote{}, ErrQuoteNotSubmitted
	}
	if err := u.validate.Struct(q.Customer); err != nil {
		return entities.Quote{}, ErrIncompleteCustomer
	}
	if u.notifier == nil {
		u.logger.Warn("[quote][usecase] notifier not configured", zap.String("quote_id", q.ID))
		return entities.Quote{}, ErrNotificationFailed
	}

	if err := u.notifier.SendEstimateEmail(ctx, q); err != nil {
		u.logger.Error("[quote][usecase] estimate email failed", zap.String("quote_id", q.ID), zap.Error(err))
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	q.Status = entities.QuoteStatusSentEmail
	q.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		// Email already delivered: report success with the previous status.
		u.logger.Error("[quote][usecase] sent_email status update failed", zap.String("quote_id", q.ID), zap.Error(err))
		return q, nil
	}
	u.logger.Info("[quote][usecase] estimate email sent", zap.String("quote_id", q.ID))
	return updated, nil
}

func (u *QuoteUseCase) BookingLink(ctx context.Context, id string) (booking.Link, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return booking.Link{}, err
	}
	if q.Status != entities.QuoteStatusCompleted && q.Status != entities.QuoteStatusSentEmail {
		return booking.Link{}, ErrQuoteNotSubmitted
	}
	return u.directory.LinkFor(q.TotalPrice), nil
}

func normalizeCustomer(c entities.Customer) entities.Customer {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	return c
}
