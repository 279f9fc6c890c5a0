package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog item.
type Product struct {
	ID            int64
	SKU           string
	Name          string
	Image         string
	Price         decimal.Decimal
	TotalOrder    int
	TotalRating   int
	Details       string
	Description   string
	Status        int16
	PublishedDate *time.Time
	CreatedAt     time.Time
}

// ProductImage is a gallery entry for a product.
type ProductImage struct {
	ID        int64
	ProductID int64
	Path      string
	Sort      int
}

// Size is a wearable size option.
type Size struct {
	ID   int64
	Name string
}

// Colour is a colour option.
type Colour struct {
	ID   int64
	Code string
	Name string
}

// Inventory is the stock record for one (product, size, colour) combination.
type Inventory struct {
	ID        int64
	ProductID int64
	SizeID    int64
	ColourID  int64
	Stock     int
}

// ProductDetail aggregates the public cart/product view.
type ProductDetail struct {
	Product     *Product
	Images      []ProductImage
	Inventories []Inventory
	Sizes       []Size
	Colours     []Colour
	Related     []Product
}
