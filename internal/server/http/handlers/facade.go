package handlers

import (
	"context"

	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/usecase"
)

// CartFacade covers cart ledger operations exposed via HTTP.
type CartFacade interface {
	AddToCart(ctx context.Context, userID, productID, sizeID, colourID int64, qty int) (*model.Order, error)
	Session(ctx context.Context, userID int64) (*model.CartSession, error)
	AddWishlist(ctx context.Context, userID, productID int64) error
}

// CheckoutFacade covers checkout preview and finalization.
type CheckoutFacade interface {
	CheckoutPreview(ctx context.Context, userID int64) (*model.CheckoutPreview, error)
	Checkout(ctx context.Context, userID, paymentID int64, form model.BillingForm) (*model.Order, error)
}

// OrderFacade covers the order query surface.
type OrderFacade interface {
	Orders(ctx context.Context, req usecase.ListRequest) (*model.OrderPage, error)
	OrderDetail(ctx context.Context, userID, orderID int64) (*model.OrderDetail, error)
	CancelOrder(ctx context.Context, userID, orderID int64) error
}

// CatalogFacade covers the public product and review reads plus review writes.
type CatalogFacade interface {
	ProductDetail(ctx context.Context, productID int64) (*model.ProductDetail, error)
	Reviews(ctx context.Context, productID int64) ([]model.RatedReview, error)
	CreateReview(ctx context.Context, userID, productID int64, rating int, text string) (*model.Review, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	CartFacade
	CheckoutFacade
	OrderFacade
	CatalogFacade
	ParseToken(token string) (int64, error)
}
