package model

import "github.com/shopspring/decimal"

// Setting keys read by the pricing calculator.
const (
	SettingDiscount = "discount_value"
	SettingTaxes    = "taxes_value"
	SettingShipment = "total_shipment"
)

// PricingSettings is the snapshot of global settings a quote is computed from.
// Percentages are plain numbers: 10 means 10%. Missing settings load as zero.
type PricingSettings struct {
	DiscountPercent decimal.Decimal
	TaxPercent      decimal.Decimal
	ShipmentFee     decimal.Decimal
}
