package usecase

import (
	"context"

	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/domain/repository"
)

const relatedProductsLimit = 4

// CatalogUseCase serves the public product view backing the cart page.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// ProductDetail assembles the product page: images, per-combination stock,
// size/colour dictionaries and a short best-sellers strip.
func (u *CatalogUseCase) ProductDetail(ctx context.Context, productID int64) (*model.ProductDetail, error) {
	product, err := u.catalog.ProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	images, err := u.catalog.ImagesByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	inventories, err := u.catalog.InventoriesByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	sizes, err := u.catalog.ActiveSizes(ctx)
	if err != nil {
		return nil, err
	}

	colours, err := u.catalog.ActiveColours(ctx)
	if err != nil {
		return nil, err
	}

	related, err := u.catalog.BestSellers(ctx, productID, relatedProductsLimit)
	if err != nil {
		return nil, err
	}

	return &model.ProductDetail{
		Product:     product,
		Images:      images,
		Inventories: inventories,
		Sizes:       sizes,
		Colours:     colours,
		Related:     related,
	}, nil
}
