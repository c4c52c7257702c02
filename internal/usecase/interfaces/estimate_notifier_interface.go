package interfaces

import (
	"context"

	"clearview_estimator/internal/domain/entities"
)

//go:generate mockgen -source=estimate_notifier_interface.go -destination=mocks/mock_estimate_notifier_interface.go -package=mock_interfaces

// IEstimateNotifier delivers a finished estimate to the customer.
type IEstimateNotifier interface {
	SendEstimateEmail(ctx context.Context, q entities.Quote) error
}
