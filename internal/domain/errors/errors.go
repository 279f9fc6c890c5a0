package errors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidRating     = errors.New("invalid rating")
	ErrReviewTooShort    = errors.New("review text too short")
	ErrNoActiveOrder     = errors.New("no active order")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNotOwner          = errors.New("order belongs to another user")
)
