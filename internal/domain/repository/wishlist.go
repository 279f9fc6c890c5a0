package repository

import (
	"context"

	"github.com/moriwell/storefront/internal/domain/model"
)

// WishlistRepository manages the user/product wishlist association.
type WishlistRepository interface {
	Add(ctx context.Context, userID, productID int64, act model.Activity) error
	ProductsByUser(ctx context.Context, userID int64) ([]model.Product, error)
}
