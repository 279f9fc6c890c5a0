package app

import (
	"context"

	"github.com/moriwell/storefront/internal/domain/model"
	pkgAuth "github.com/moriwell/storefront/internal/pkg/auth"
	"github.com/moriwell/storefront/internal/usecase"
)

// StorefrontFacade aggregates use cases behind the surface handlers consume.
type StorefrontFacade struct {
	cart     *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	orders   *usecase.OrderUseCase
	catalog  *usecase.CatalogUseCase
	reviews  *usecase.ReviewUseCase
	tokens   pkgAuth.Strategy
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(
	cart *usecase.CartUseCase,
	checkout *usecase.CheckoutUseCase,
	orders *usecase.OrderUseCase,
	catalog *usecase.CatalogUseCase,
	reviews *usecase.ReviewUseCase,
	tokens pkgAuth.Strategy,
) *StorefrontFacade {
	return &StorefrontFacade{
		cart:     cart,
		checkout: checkout,
		orders:   orders,
		catalog:  catalog,
		reviews:  reviews,
		tokens:   tokens,
	}
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.tokens.ParseToken(token)
}

func (f *StorefrontFacade) AddToCart(ctx context.Context, userID, productID, sizeID, colourID int64, qty int) (*model.Order, error) {
	return f.cart.AddToCart(ctx, userID, productID, sizeID, colourID, qty)
}

func (f *StorefrontFacade) Session(ctx context.Context, userID int64) (*model.CartSession, error) {
	return f.cart.Session(ctx, userID)
}

func (f *StorefrontFacade) AddWishlist(ctx context.Context, userID, productID int64) error {
	return f.cart.AddWishlist(ctx, userID, productID)
}

func (f *StorefrontFacade) CheckoutPreview(ctx context.Context, userID int64) (*model.CheckoutPreview, error) {
	return f.checkout.Preview(ctx, userID)
}

func (f *StorefrontFacade) Checkout(ctx context.Context, userID, paymentID int64, form model.BillingForm) (*model.Order, error) {
	return f.checkout.Checkout(ctx, userID, paymentID, form)
}

func (f *StorefrontFacade) Orders(ctx context.Context, req usecase.ListRequest) (*model.OrderPage, error) {
	return f.orders.List(ctx, req)
}

func (f *StorefrontFacade) OrderDetail(ctx context.Context, userID, orderID int64) (*model.OrderDetail, error) {
	return f.orders.Detail(ctx, userID, orderID)
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, userID, orderID int64) error {
	return f.orders.Cancel(ctx, userID, orderID)
}

func (f *StorefrontFacade) ProductDetail(ctx context.Context, productID int64) (*model.ProductDetail, error) {
	return f.catalog.ProductDetail(ctx, productID)
}

func (f *StorefrontFacade) Reviews(ctx context.Context, productID int64) ([]model.RatedReview, error) {
	return f.reviews.ListByProduct(ctx, productID)
}

func (f *StorefrontFacade) CreateReview(ctx context.Context, userID, productID int64, rating int, text string) (*model.Review, error) {
	return f.reviews.Create(ctx, userID, productID, rating, text)
}
