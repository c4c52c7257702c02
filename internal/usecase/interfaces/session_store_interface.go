package interfaces

import (
	"context"

	"clearview_estimator/internal/domain/quote"
)

//go:generate mockgen -source=session_store_interface.go -destination=mocks/mock_session_store_interface.go -package=mock_interfaces

// ISessionStore keeps the estimator state of open page sessions.
//
// Get returns (nil, nil) when the session does not exist or expired.
//
// Update applies fn to the stored session and writes the result only if no
// other writer changed the session meanwhile; fn may run more than once. It
// returns (nil, nil) when the session is missing, and an error from fn
// unchanged without writing.
type ISessionStore interface {
	Save(ctx context.Context, s quote.Session) error
	Get(ctx context.Context, quoteID string) (*quote.Session, error)
	Update(ctx context.Context, quoteID string, fn func(s *quote.Session) error) (*quote.Session, error)
	Delete(ctx context.Context, quoteID string) error
}
