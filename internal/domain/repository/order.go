package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/moriwell/storefront/internal/domain/model"
)

// WishlistClearScope controls which wishlist rows checkout removes.
type WishlistClearScope string

const (
	// ClearPurchased removes only wishlist rows for products in the order.
	ClearPurchased WishlistClearScope = "purchased"
	// ClearAll removes the user's entire wishlist.
	ClearAll WishlistClearScope = "all"
	// ClearOff leaves the wishlist untouched.
	ClearOff WishlistClearScope = "off"
)

// QuoteFunc derives frozen totals from the order subtotal read under lock.
type QuoteFunc func(subtotal decimal.Decimal) model.Quote

// AddToCartParams carries one resolved add-to-cart mutation.
type AddToCartParams struct {
	UserID        int64
	InventoryID   int64
	Qty           int
	UnitPrice     decimal.Decimal
	LineTotal     decimal.Decimal
	InvoiceNumber string
	Activity      model.Activity
}

// CheckoutParams carries one checkout finalization request.
type CheckoutParams struct {
	UserID    int64
	PaymentID int64
	Billing   []model.BillingField
	Scope     WishlistClearScope
	Quote     QuoteFunc
	Activity  model.Activity
}

// ListParams describes a page of the order listing. SortColumn must be a
// column name from the query layer's allow-list, never caller input.
type ListParams struct {
	UserID     int64
	Limit      int
	Offset     int
	SortColumn string
	Desc       bool
	Search     string
}

// OrderRepository describes persistence operations with orders and cart lines.
type OrderRepository interface {
	AddToCart(ctx context.Context, p AddToCartParams) (*model.Order, error)
	DraftByUser(ctx context.Context, userID int64) (*model.Order, error)
	GetByID(ctx context.Context, orderID int64) (*model.Order, error)
	LinesByOrder(ctx context.Context, orderID int64) ([]model.CartLine, error)
	Checkout(ctx context.Context, p CheckoutParams) (*model.Order, error)
	List(ctx context.Context, p ListParams) (*model.OrderPage, error)
	BillingByOrder(ctx context.Context, orderID int64) (map[string]string, error)
	Cancel(ctx context.Context, orderID int64, act model.Activity) error
}
