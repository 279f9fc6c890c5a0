package model

import "time"

// Review is one product review left by a user.
type Review struct {
	ID        int64
	ProductID int64
	UserID    int64
	Rating    int
	Review    string
	CreatedAt time.Time
}

// RatedReview is a review with its rating normalized against the product's
// top rating: index on a 0..5 scale, percentage rounded up.
type RatedReview struct {
	Review
	RatingIndex float64
	Percentage  int
}
