package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse is the serialized catalog product.
type ProductResponse struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	TotalOrder  int             `json:"total_order"`
	TotalRating int             `json:"total_rating"`
	Details     string          `json:"details"`
	Description string          `json:"description"`
}

// ProductDetailResponse is the public product page.
type ProductDetailResponse struct {
	Product     ProductResponse     `json:"product"`
	Images      []ImageResponse     `json:"images"`
	Inventories []InventoryResponse `json:"inventories"`
	Sizes       []SizeResponse      `json:"sizes"`
	Colours     []ColourResponse    `json:"colours"`
	Related     []ProductResponse   `json:"related"`
}

// ImageResponse is one gallery image.
type ImageResponse struct {
	ID   int64  `json:"id"`
	Path string `json:"path"`
	Sort int    `json:"sort"`
}

// InventoryResponse exposes stock per (size, colour) combination.
type InventoryResponse struct {
	ID       int64 `json:"id"`
	SizeID   int64 `json:"size_id"`
	ColourID int64 `json:"colour_id"`
	Stock    int   `json:"stock"`
}

// SizeResponse is a size dictionary entry.
type SizeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ColourResponse is a colour dictionary entry.
type ColourResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// ReviewRequest is the payload of POST /api/order/review/:productId.
type ReviewRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}

// ReviewResponse is one review with its normalized rating.
type ReviewResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Rating      int       `json:"rating"`
	RatingIndex float64   `json:"rating_index"`
	Percentage  int       `json:"percentage"`
	Review      string    `json:"review"`
	CreatedAt   time.Time `json:"created_at"`
}