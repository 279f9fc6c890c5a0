package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order lifecycle.
type OrderStatus int16

const (
	// OrderStatusDraft marks an in-progress cart, at most one per user.
	OrderStatusDraft OrderStatus = 0
	// OrderStatusPlaced marks a completed checkout with frozen totals.
	OrderStatusPlaced OrderStatus = 1
)

// Order describes one purchasing session of a user.
type Order struct {
	ID            int64
	UserID        int64
	PaymentID     *int64
	InvoiceNumber string
	TotalItem     int
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalTaxes    decimal.Decimal
	TotalShipment decimal.Decimal
	TotalPaid     decimal.Decimal
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CartLine is an order detail joined with product data for display.
type CartLine struct {
	ID           int64
	OrderID      int64
	InventoryID  int64
	ProductID    int64
	ProductName  string
	ProductImage string
	Price        decimal.Decimal
	Qty          int
	Total        decimal.Decimal
}

// Quote holds the totals derived from an order subtotal and pricing settings.
type Quote struct {
	Discount  decimal.Decimal
	Taxes     decimal.Decimal
	Shipment  decimal.Decimal
	TotalPaid decimal.Decimal
}

// BillingField is one denormalized billing attribute captured at checkout.
type BillingField struct {
	Name  string
	Value string
}

// BillingForm carries the buyer contact details submitted with a checkout.
type BillingForm struct {
	FirstName string
	LastName  string
	Gender    string
	Email     string
	Phone     string
	Address   string
	Country   string
	City      string
	ZipCode   string
	Notes     string
}

// OrderPage is one page of a filtered order listing.
type OrderPage struct {
	Orders        []Order
	TotalAll      int64
	TotalFiltered int64
}

// OrderDetail aggregates everything shown on the order detail view.
type OrderDetail struct {
	Order           *Order
	Carts           []CartLine
	Payment         *Payment
	Billing         map[string]string
	DiscountPercent decimal.Decimal
	TaxPercent      decimal.Decimal
}

// CartSession is the caller's draft order with its lines and wishlist.
type CartSession struct {
	Order     *Order
	Carts     []CartLine
	Wishlists []Product
}

// CheckoutPreview is the quote view shown before checkout is submitted.
type CheckoutPreview struct {
	Order     *Order
	Carts     []CartLine
	User      BuyerContact
	Payments  []Payment
	Quote     Quote
	TotalItem int
	Settings  PricingSettings
}

// BuyerContact is the user profile slice prefilled into the checkout form.
type BuyerContact struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
	Gender    string
	Country   string
	City      string
	ZipCode   string
	Address   string
	Notes     string
}
