package interfaces

import (
	"context"

	"clearview_estimator/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository_interface.go -package=mock_interfaces

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// A zero-value Quote (empty ID) with a nil error means "not found".
// UpdateDraft only writes while the stored quote is still started or
// in_progress, so a late estimator mirror never reopens a submitted quote.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateDraft(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Quote, error)
}
