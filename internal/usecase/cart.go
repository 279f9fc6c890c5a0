package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/domain/repository"
)

// Number of 100ns ticks between year 1 and the Unix epoch. Invoice numbers
// are tick counts so they stay monotonic and collision-free per user.
const unixEpochTicks int64 = 62135596800 * 10_000_000

func invoiceNumber(now time.Time) string {
	ticks := unixEpochTicks + now.Unix()*10_000_000 + int64(now.Nanosecond())/100
	return strconv.FormatInt(ticks, 10)
}

// CartUseCase covers the cart ledger: adding lines, reading the session,
// wishing products.
type CartUseCase struct {
	orders    repository.OrderRepository
	catalog   repository.CatalogRepository
	wishlists repository.WishlistRepository
	now       func() time.Time
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(
	orders repository.OrderRepository,
	catalog repository.CatalogRepository,
	wishlists repository.WishlistRepository,
) *CartUseCase {
	return &CartUseCase{orders: orders, catalog: catalog, wishlists: wishlists, now: time.Now}
}

// AddToCart resolves the (product, size, colour) selection to an inventory
// row, prices the line from the current product price, and merges it into
// the caller's draft order.
func (u *CartUseCase) AddToCart(ctx context.Context, userID, productID, sizeID, colourID int64, qty int) (*model.Order, error) {
	if qty < 1 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	product, err := u.catalog.ProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	inventory, err := u.catalog.InventoryBySelection(ctx, productID, sizeID, colourID)
	if err != nil {
		return nil, err
	}

	lineTotal := product.Price.Mul(decimal.NewFromInt(int64(qty)))
	return u.orders.AddToCart(ctx, repository.AddToCartParams{
		UserID:        userID,
		InventoryID:   inventory.ID,
		Qty:           qty,
		UnitPrice:     product.Price,
		LineTotal:     lineTotal,
		InvoiceNumber: invoiceNumber(u.now()),
		Activity: model.Activity{
			UserID:      userID,
			Subject:     "order",
			Event:       "add_to_cart",
			Description: "added " + product.Name + " to cart",
		},
	})
}

// Session returns the caller's draft order with its lines and wishlist.
// A user without a draft gets an empty session, not an error.
func (u *CartUseCase) Session(ctx context.Context, userID int64) (*model.CartSession, error) {
	session := &model.CartSession{}

	order, err := u.orders.DraftByUser(ctx, userID)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}
	if order != nil {
		session.Order = order
		if session.Carts, err = u.orders.LinesByOrder(ctx, order.ID); err != nil {
			return nil, err
		}
	}

	if session.Wishlists, err = u.wishlists.ProductsByUser(ctx, userID); err != nil {
		return nil, err
	}
	return session, nil
}

// AddWishlist records the user's interest in a product.
func (u *CartUseCase) AddWishlist(ctx context.Context, userID, productID int64) error {
	product, err := u.catalog.ProductByID(ctx, productID)
	if err != nil {
		return err
	}
	return u.wishlists.Add(ctx, userID, productID, model.Activity{
		UserID:      userID,
		Subject:     "wishlist",
		Event:       "add_wishlist",
		Description: "wished " + product.Name,
	})
}
