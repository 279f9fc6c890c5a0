package test

import (
	"context"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/domain/repository"
)

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	AddToCartFn      func(context.Context, repository.AddToCartParams) (*model.Order, error)
	DraftByUserFn    func(context.Context, int64) (*model.Order, error)
	GetByIDFn        func(context.Context, int64) (*model.Order, error)
	LinesByOrderFn   func(context.Context, int64) ([]model.CartLine, error)
	CheckoutFn       func(context.Context, repository.CheckoutParams) (*model.Order, error)
	ListFn           func(context.Context, repository.ListParams) (*model.OrderPage, error)
	BillingByOrderFn func(context.Context, int64) (map[string]string, error)
	CancelFn         func(context.Context, int64, model.Activity) error

	AddCalls      []repository.AddToCartParams
	CheckoutCalls []repository.CheckoutParams
	ListCalls     []repository.ListParams
	CancelCalls   []int64
	Draft         *model.Order
	Lines         []model.CartLine
}

// AddToCart tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) AddToCart(ctx context.Context, p repository.AddToCartParams) (*model.Order, error) {
	s.AddCalls = append(s.AddCalls, p)
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, p)
	}
	return &model.Order{ID: 1, UserID: p.UserID, InvoiceNumber: p.InvoiceNumber, TotalItem: p.Qty,
		Subtotal: p.LineTotal, TotalPaid: p.LineTotal}, nil
}

// DraftByUser returns the configured draft or not found.
func (s *OrderRepositoryStub) DraftByUser(ctx context.Context, userID int64) (*model.Order, error) {
	if s.DraftByUserFn != nil {
		return s.DraftByUserFn(ctx, userID)
	}
	if s.Draft == nil {
		return nil, domainErrors.ErrNotFound
	}
	return s.Draft, nil
}

// GetByID returns the configured draft when its identifier matches.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	if s.Draft != nil && s.Draft.ID == orderID {
		return s.Draft, nil
	}
	return nil, domainErrors.ErrNotFound
}

// LinesByOrder returns configured cart lines.
func (s *OrderRepositoryStub) LinesByOrder(ctx context.Context, orderID int64) ([]model.CartLine, error) {
	if s.LinesByOrderFn != nil {
		return s.LinesByOrderFn(ctx, orderID)
	}
	return s.Lines, nil
}

// Checkout tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Checkout(ctx context.Context, p repository.CheckoutParams) (*model.Order, error) {
	s.CheckoutCalls = append(s.CheckoutCalls, p)
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, p)
	}
	if s.Draft == nil {
		return nil, domainErrors.ErrNoActiveOrder
	}
	order := *s.Draft
	order.Status = model.OrderStatusPlaced
	quote := p.Quote(order.Subtotal)
	order.TotalDiscount = quote.Discount
	order.TotalTaxes = quote.Taxes
	order.TotalShipment = quote.Shipment
	order.TotalPaid = quote.TotalPaid
	order.PaymentID = &p.PaymentID
	return &order, nil
}

// List records page requests and returns configured pages.
func (s *OrderRepositoryStub) List(ctx context.Context, p repository.ListParams) (*model.OrderPage, error) {
	s.ListCalls = append(s.ListCalls, p)
	if s.ListFn != nil {
		return s.ListFn(ctx, p)
	}
	return &model.OrderPage{}, nil
}

// BillingByOrder returns the configured billing snapshot.
func (s *OrderRepositoryStub) BillingByOrder(ctx context.Context, orderID int64) (map[string]string, error) {
	if s.BillingByOrderFn != nil {
		return s.BillingByOrderFn(ctx, orderID)
	}
	return map[string]string{}, nil
}

// Cancel records cancellations.
func (s *OrderRepositoryStub) Cancel(ctx context.Context, orderID int64, act model.Activity) error {
	s.CancelCalls = append(s.CancelCalls, orderID)
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, act)
	}
	return nil
}

// CatalogRepositoryStub serves catalog reads from in-memory data.
type CatalogRepositoryStub struct {
	ProductFn   func(context.Context, int64) (*model.Product, error)
	InventoryFn func(context.Context, int64, int64, int64) (*model.Inventory, error)

	Products    map[int64]*model.Product
	Inventories []model.Inventory
	Images      []model.ProductImage
	Sizes       []model.Size
	Colours     []model.Colour
	Best        []model.Product
}

// ProductByID resolves a product or returns not found.
func (s *CatalogRepositoryStub) ProductByID(ctx context.Context, productID int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, productID)
	}
	if p, ok := s.Products[productID]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// InventoryBySelection resolves the stock row for a combination.
func (s *CatalogRepositoryStub) InventoryBySelection(ctx context.Context, productID, sizeID, colourID int64) (*model.Inventory, error) {
	if s.InventoryFn != nil {
		return s.InventoryFn(ctx, productID, sizeID, colourID)
	}
	for _, inv := range s.Inventories {
		if inv.ProductID == productID && inv.SizeID == sizeID && inv.ColourID == colourID {
			found := inv
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// InventoriesByProduct returns stock rows for the product.
func (s *CatalogRepositoryStub) InventoriesByProduct(ctx context.Context, productID int64) ([]model.Inventory, error) {
	var result []model.Inventory
	for _, inv := range s.Inventories {
		if inv.ProductID == productID {
			result = append(result, inv)
		}
	}
	return result, nil
}

// ImagesByProduct returns configured gallery images.
func (s *CatalogRepositoryStub) ImagesByProduct(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	return s.Images, nil
}

// ActiveSizes returns the configured size dictionary.
func (s *CatalogRepositoryStub) ActiveSizes(ctx context.Context) ([]model.Size, error) {
	return s.Sizes, nil
}

// ActiveColours returns the configured colour dictionary.
func (s *CatalogRepositoryStub) ActiveColours(ctx context.Context) ([]model.Colour, error) {
	return s.Colours, nil
}

// BestSellers returns the configured best seller strip.
func (s *CatalogRepositoryStub) BestSellers(ctx context.Context, excludeProductID int64, limit int) ([]model.Product, error) {
	return s.Best, nil
}

// StoreRepositoryStub lets tests control settings and payments.
type StoreRepositoryStub struct {
	SettingsFn func(context.Context) (model.PricingSettings, error)
	Settings   model.PricingSettings
	Payments   []model.Payment
}

// PricingSettings returns configured settings.
func (s *StoreRepositoryStub) PricingSettings(ctx context.Context) (model.PricingSettings, error) {
	if s.SettingsFn != nil {
		return s.SettingsFn(ctx)
	}
	return s.Settings, nil
}

// ActivePayments returns configured payment methods.
func (s *StoreRepositoryStub) ActivePayments(ctx context.Context) ([]model.Payment, error) {
	return s.Payments, nil
}

// PaymentByID resolves a payment method or returns not found.
func (s *StoreRepositoryStub) PaymentByID(ctx context.Context, paymentID int64) (*model.Payment, error) {
	for _, p := range s.Payments {
		if p.ID == paymentID {
			found := p
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// WishlistRepositoryStub stores wishlist rows in-memory.
type WishlistRepositoryStub struct {
	AddFn    func(context.Context, int64, int64, model.Activity) error
	Added    []int64
	Products []model.Product
}

// Add records the wished product.
func (s *WishlistRepositoryStub) Add(ctx context.Context, userID, productID int64, act model.Activity) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID, act)
	}
	s.Added = append(s.Added, productID)
	return nil
}

// ProductsByUser returns configured wishlist products.
func (s *WishlistRepositoryStub) ProductsByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	return s.Products, nil
}

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByID map[int64]*model.User
	Err  error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{ByID: make(map[int64]*model.User)}
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ReviewRepositoryStub tracks created reviews.
type ReviewRepositoryStub struct {
	CreateFn func(context.Context, model.Review, model.Activity) (*model.Review, error)
	Reviews  []model.Review
	Created  []model.Review
}

// ListByProduct returns configured reviews.
func (s *ReviewRepositoryStub) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	return s.Reviews, nil
}

// Create records the review and echoes it back with an identifier.
func (s *ReviewRepositoryStub) Create(ctx context.Context, review model.Review, act model.Activity) (*model.Review, error) {
	s.Created = append(s.Created, review)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, review, act)
	}
	created := review
	created.ID = int64(len(s.Created))
	return &created, nil
}
