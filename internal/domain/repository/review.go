package repository

import (
	"context"

	"github.com/moriwell/storefront/internal/domain/model"
)

// ReviewRepository manages product reviews.
type ReviewRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]model.Review, error)
	Create(ctx context.Context, review model.Review, act model.Activity) (*model.Review, error)
}
