package repository

import (
	"context"

	"github.com/moriwell/storefront/internal/domain/model"
)

// CatalogRepository provides read access to products, inventories and the
// size/colour dictionaries.
type CatalogRepository interface {
	ProductByID(ctx context.Context, productID int64) (*model.Product, error)
	InventoryBySelection(ctx context.Context, productID, sizeID, colourID int64) (*model.Inventory, error)
	InventoriesByProduct(ctx context.Context, productID int64) ([]model.Inventory, error)
	ImagesByProduct(ctx context.Context, productID int64) ([]model.ProductImage, error)
	ActiveSizes(ctx context.Context) ([]model.Size, error)
	ActiveColours(ctx context.Context) ([]model.Colour, error)
	BestSellers(ctx context.Context, excludeProductID int64, limit int) ([]model.Product, error)
}
