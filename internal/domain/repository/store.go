package repository

import (
	"context"

	"github.com/moriwell/storefront/internal/domain/model"
)

// StoreRepository provides global store configuration: pricing settings and
// accepted payment methods.
type StoreRepository interface {
	PricingSettings(ctx context.Context) (model.PricingSettings, error)
	ActivePayments(ctx context.Context) ([]model.Payment, error)
	PaymentByID(ctx context.Context, paymentID int64) (*model.Payment, error)
}
