package test

import (
	"context"

	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/usecase"
)

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Err     error
	ParseFn func(string) (int64, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64) (string, error)
	ParseFn func(string) (int64, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// StorefrontFacadeStub simulates the full handler facade.
type StorefrontFacadeStub struct {
	AddToCartFn       func(context.Context, int64, int64, int64, int64, int) (*model.Order, error)
	SessionFn         func(context.Context, int64) (*model.CartSession, error)
	AddWishlistFn     func(context.Context, int64, int64) error
	CheckoutPreviewFn func(context.Context, int64) (*model.CheckoutPreview, error)
	CheckoutFn        func(context.Context, int64, int64, model.BillingForm) (*model.Order, error)
	OrdersFn          func(context.Context, usecase.ListRequest) (*model.OrderPage, error)
	OrderDetailFn     func(context.Context, int64, int64) (*model.OrderDetail, error)
	CancelOrderFn     func(context.Context, int64, int64) error
	ProductDetailFn   func(context.Context, int64) (*model.ProductDetail, error)
	ReviewsFn         func(context.Context, int64) ([]model.RatedReview, error)
	CreateReviewFn    func(context.Context, int64, int64, int, string) (*model.Review, error)
	ParseFn           func(string) (int64, error)
}

func (s *StorefrontFacadeStub) AddToCart(ctx context.Context, userID, productID, sizeID, colourID int64, qty int) (*model.Order, error) {
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, userID, productID, sizeID, colourID, qty)
	}
	return &model.Order{ID: 1, UserID: userID, TotalItem: qty}, nil
}

func (s *StorefrontFacadeStub) Session(ctx context.Context, userID int64) (*model.CartSession, error) {
	if s.SessionFn != nil {
		return s.SessionFn(ctx, userID)
	}
	return &model.CartSession{}, nil
}

func (s *StorefrontFacadeStub) AddWishlist(ctx context.Context, userID, productID int64) error {
	if s.AddWishlistFn != nil {
		return s.AddWishlistFn(ctx, userID, productID)
	}
	return nil
}

func (s *StorefrontFacadeStub) CheckoutPreview(ctx context.Context, userID int64) (*model.CheckoutPreview, error) {
	if s.CheckoutPreviewFn != nil {
		return s.CheckoutPreviewFn(ctx, userID)
	}
	return &model.CheckoutPreview{Order: &model.Order{ID: 1, UserID: userID}}, nil
}

func (s *StorefrontFacadeStub) Checkout(ctx context.Context, userID, paymentID int64, form model.BillingForm) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, paymentID, form)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPlaced}, nil
}

func (s *StorefrontFacadeStub) Orders(ctx context.Context, req usecase.ListRequest) (*model.OrderPage, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, req)
	}
	return &model.OrderPage{}, nil
}

func (s *StorefrontFacadeStub) OrderDetail(ctx context.Context, userID, orderID int64) (*model.OrderDetail, error) {
	if s.OrderDetailFn != nil {
		return s.OrderDetailFn(ctx, userID, orderID)
	}
	return &model.OrderDetail{Order: &model.Order{ID: orderID, UserID: userID}}, nil
}

func (s *StorefrontFacadeStub) CancelOrder(ctx context.Context, userID, orderID int64) error {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, userID, orderID)
	}
	return nil
}

func (s *StorefrontFacadeStub) ProductDetail(ctx context.Context, productID int64) (*model.ProductDetail, error) {
	if s.ProductDetailFn != nil {
		return s.ProductDetailFn(ctx, productID)
	}
	return &model.ProductDetail{Product: &model.Product{ID: productID}}, nil
}

func (s *StorefrontFacadeStub) Reviews(ctx context.Context, productID int64) ([]model.RatedReview, error) {
	if s.ReviewsFn != nil {
		return s.ReviewsFn(ctx, productID)
	}
	return nil, nil
}

func (s *StorefrontFacadeStub) CreateReview(ctx context.Context, userID, productID int64, rating int, text string) (*model.Review, error) {
	if s.CreateReviewFn != nil {
		return s.CreateReviewFn(ctx, userID, productID, rating, text)
	}
	return &model.Review{ID: 1, ProductID: productID, UserID: userID, Rating: rating, Review: text}, nil
}

func (s *StorefrontFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}
