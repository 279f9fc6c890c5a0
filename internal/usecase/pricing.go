package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/moriwell/storefront/internal/domain/model"
)

var hundred = decimal.NewFromInt(100)

// ComputeQuote derives order totals from a subtotal and the pricing settings.
// Discount and taxes are percentages of the subtotal; the tax base is the
// undiscounted subtotal. Shipment is a flat fee.
func ComputeQuote(subtotal decimal.Decimal, settings model.PricingSettings) model.Quote {
	discount := subtotal.Mul(settings.DiscountPercent).Div(hundred)
	taxes := subtotal.Mul(settings.TaxPercent).Div(hundred)
	total := subtotal.Sub(discount).Add(taxes).Add(settings.ShipmentFee)

	return model.Quote{
		Discount:  discount,
		Taxes:     taxes,
		Shipment:  settings.ShipmentFee,
		TotalPaid: total,
	}
}
