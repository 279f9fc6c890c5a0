package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/domain/repository"
)

// sortColumns maps caller-facing sort keys to order table columns. Unknown
// keys fall back to id; raw input never reaches SQL.
var sortColumns = map[string]string{
	"id":             "id",
	"orders.id":      "id",
	"invoice_number": "invoice_number",
	"total_item":     "total_item",
	"total_paid":     "total_paid",
	"status":         "status",
	"created_at":     "created_at",
}

const defaultPageSize = 10

// OrderUseCase serves the order query surface: listing, detail, cancel.
type OrderUseCase struct {
	orders repository.OrderRepository
	store  repository.StoreRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, store repository.StoreRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, store: store}
}

// ListRequest is a page request for the caller's orders.
type ListRequest struct {
	UserID int64
	Limit  int
	Offset int
	SortBy string
	Desc   bool
	Search string
}

// List returns one page of the caller's orders.
func (u *OrderUseCase) List(ctx context.Context, req ListRequest) (*model.OrderPage, error) {
	column, ok := sortColumns[req.SortBy]
	if !ok {
		column = "id"
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	return u.orders.List(ctx, repository.ListParams{
		UserID:     req.UserID,
		Limit:      limit,
		Offset:     offset,
		SortColumn: column,
		Desc:       req.Desc,
		Search:     req.Search,
	})
}

// Detail returns the full order view. Orders of other users are reported
// as ErrNotOwner, absent orders as ErrNotFound.
func (u *OrderUseCase) Detail(ctx context.Context, userID, orderID int64) (*model.OrderDetail, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotOwner
	}

	lines, err := u.orders.LinesByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	billing, err := u.orders.BillingByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	detail := &model.OrderDetail{
		Order:   order,
		Carts:   lines,
		Billing: billing,
	}

	if order.PaymentID != nil {
		payment, err := u.store.PaymentByID(ctx, *order.PaymentID)
		if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
		detail.Payment = payment
	}

	// Percentages are derived back from the frozen totals so the detail view
	// reflects what was charged, not the current settings.
	if !order.Subtotal.IsZero() {
		detail.DiscountPercent = order.TotalDiscount.Mul(hundred).Div(order.Subtotal)
		detail.TaxPercent = order.TotalTaxes.Mul(hundred).Div(order.Subtotal)
	}

	return detail, nil
}

// Cancel deletes the caller's order entirely.
func (u *OrderUseCase) Cancel(ctx context.Context, userID, orderID int64) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return domainErrors.ErrNotOwner
	}

	return u.orders.Cancel(ctx, orderID, model.Activity{
		UserID:      userID,
		Subject:     "order",
		Event:       "cancel",
		Description: "cancelled order " + order.InvoiceNumber,
	})
}
