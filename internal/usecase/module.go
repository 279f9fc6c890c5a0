package usecase

import (
	"go.uber.org/fx"

	"github.com/moriwell/storefront/internal/config"
	"github.com/moriwell/storefront/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewCartUseCase,
	NewCheckoutUseCase,
	NewOrderUseCase,
	NewCatalogUseCase,
	NewReviewUseCase,
	func(cfg *config.Config) repository.WishlistClearScope {
		return repository.WishlistClearScope(cfg.WishlistClearScope)
	},
)
