package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/domain/repository"
)

// CheckoutUseCase turns a draft order into a placed one.
type CheckoutUseCase struct {
	orders repository.OrderRepository
	store  repository.StoreRepository
	users  repository.UserRepository
	scope  repository.WishlistClearScope
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	orders repository.OrderRepository,
	store repository.StoreRepository,
	users repository.UserRepository,
	scope repository.WishlistClearScope,
) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, store: store, users: users, scope: scope}
}

// Preview assembles the pre-checkout view: the draft order, its lines, a
// quote from current settings, the buyer's profile and the active payment
// methods. Without a draft order there is nothing to check out.
func (u *CheckoutUseCase) Preview(ctx context.Context, userID int64) (*model.CheckoutPreview, error) {
	order, err := u.orders.DraftByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNoActiveOrder
		}
		return nil, err
	}

	lines, err := u.orders.LinesByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	settings, err := u.store.PricingSettings(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := u.store.ActivePayments(ctx)
	if err != nil {
		return nil, err
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalItem := 0
	for _, line := range lines {
		totalItem += line.Qty
	}

	return &model.CheckoutPreview{
		Order: order,
		Carts: lines,
		User: model.BuyerContact{
			Email:     user.Email,
			Phone:     user.Phone,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Gender:    user.Gender,
			Country:   user.Country,
			City:      user.City,
			ZipCode:   user.ZipCode,
			Address:   user.Address,
		},
		Payments:  payments,
		Quote:     ComputeQuote(order.Subtotal, settings),
		TotalItem: totalItem,
		Settings:  settings,
	}, nil
}

// Checkout finalizes the caller's draft order with the submitted billing
// form. Pricing settings are read up front; the quote itself is computed
// from the subtotal the storage layer reads under lock.
func (u *CheckoutUseCase) Checkout(ctx context.Context, userID, paymentID int64, form model.BillingForm) (*model.Order, error) {
	if _, err := u.store.PaymentByID(ctx, paymentID); err != nil {
		return nil, err
	}

	settings, err := u.store.PricingSettings(ctx)
	if err != nil {
		return nil, err
	}

	return u.orders.Checkout(ctx, repository.CheckoutParams{
		UserID:    userID,
		PaymentID: paymentID,
		Billing:   billingFields(form),
		Scope:     u.scope,
		Quote: func(subtotal decimal.Decimal) model.Quote {
			return ComputeQuote(subtotal, settings)
		},
		Activity: model.Activity{
			UserID:      userID,
			Subject:     "order",
			Event:       "checkout",
			Description: "order placed",
		},
	})
}

// billingFields flattens the form into the denormalized name/value rows
// stored with the order. Field order is stable.
func billingFields(form model.BillingForm) []model.BillingField {
	return []model.BillingField{
		{Name: "first_name", Value: form.FirstName},
		{Name: "last_name", Value: form.LastName},
		{Name: "gender", Value: form.Gender},
		{Name: "email", Value: form.Email},
		{Name: "phone", Value: form.Phone},
		{Name: "address", Value: form.Address},
		{Name: "country", Value: form.Country},
		{Name: "city", Value: form.City},
		{Name: "zip_code", Value: form.ZipCode},
		{Name: "notes", Value: form.Notes},
	}
}
