package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddToCartRequest is the payload of POST /api/order/cart/:productId.
type AddToCartRequest struct {
	SizeID   int64 `json:"size_id" binding:"required"`
	ColourID int64 `json:"colour_id" binding:"required"`
	Qty      int   `json:"qty" binding:"required"`
}

// CheckoutRequest is the payload of POST /api/order/checkout. Contact
// fields are mandatory, shipping address fields are not.
type CheckoutRequest struct {
	PaymentID int64  `json:"payment_id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Gender    string `json:"gender" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address"`
	Country   string `json:"country"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
	Notes     string `json:"notes"`
}

// OrderResponse is the serialized order with decimal amounts as strings.
type OrderResponse struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	TotalItem     int             `json:"total_item"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	TotalTaxes    decimal.Decimal `json:"total_taxes"`
	TotalShipment decimal.Decimal `json:"total_shipment"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Status        int16           `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CartLineResponse is one order line with product data for display.
type CartLineResponse struct {
	ID           int64           `json:"id"`
	InventoryID  int64           `json:"inventory_id"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image"`
	Price        decimal.Decimal `json:"price"`
	Qty          int             `json:"qty"`
	Total        decimal.Decimal `json:"total"`
}

// SessionResponse is the cart session view.
type SessionResponse struct {
	Order     *OrderResponse     `json:"order"`
	Carts     []CartLineResponse `json:"carts"`
	Wishlists []ProductResponse  `json:"wishlists"`
}

// QuoteResponse carries the totals derived for the checkout preview.
type QuoteResponse struct {
	Discount  decimal.Decimal `json:"discount"`
	Taxes     decimal.Decimal `json:"taxes"`
	Shipment  decimal.Decimal `json:"shipment"`
	TotalPaid decimal.Decimal `json:"total_paid"`
}

// CheckoutPreviewResponse is the pre-checkout view.
type CheckoutPreviewResponse struct {
	Order     OrderResponse      `json:"order"`
	Carts     []CartLineResponse `json:"carts"`
	User      BuyerResponse      `json:"user"`
	Payments  []PaymentResponse  `json:"payments"`
	Quote     QuoteResponse      `json:"quote"`
	Settings  SettingsResponse   `json:"settings"`
	TotalItem int                `json:"total_item"`
}

// SettingsResponse echoes the pricing settings the quote was computed from.
type SettingsResponse struct {
	Discount decimal.Decimal `json:"discount"`
	Taxes    decimal.Decimal `json:"taxes"`
	Shipment decimal.Decimal `json:"shipment"`
}

// BuyerResponse prefills the checkout form from the user profile.
type BuyerResponse struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Country   string `json:"country"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}

// PaymentResponse is an accepted payment method.
type PaymentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OrderPageResponse is one page of the order listing.
type OrderPageResponse struct {
	Orders        []OrderResponse `json:"list"`
	TotalAll      int64           `json:"total_all"`
	TotalFiltered int64           `json:"total_filtered"`
	Limit         int             `json:"limit"`
}

// OrderDetailResponse is the full order view.
type OrderDetailResponse struct {
	Order           OrderResponse      `json:"order"`
	Carts           []CartLineResponse `json:"carts"`
	Payment         *PaymentResponse   `json:"payment"`
	Billing         map[string]string  `json:"billing"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	TaxPercent      decimal.Decimal    `json:"tax_percent"`
}
