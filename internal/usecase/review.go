package usecase

import (
	"context"
	"math"
	"unicode/utf8"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/domain/repository"
)

const (
	minRating       = 1
	maxRating       = 5
	minReviewLength = 2
)

// ReviewUseCase lists and creates product reviews.
type ReviewUseCase struct {
	reviews repository.ReviewRepository
	catalog repository.CatalogRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository, catalog repository.CatalogRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, catalog: catalog}
}

// ListByProduct returns the product's reviews with ratings normalized
// against the product's top rating.
func (u *ReviewUseCase) ListByProduct(ctx context.Context, productID int64) ([]model.RatedReview, error) {
	product, err := u.catalog.ProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	reviews, err := u.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	rated := make([]model.RatedReview, 0, len(reviews))
	for _, review := range reviews {
		r := model.RatedReview{Review: review}
		if product.TotalRating > 0 {
			percentage := float64(review.Rating) / float64(product.TotalRating) * 100
			r.RatingIndex = percentage / 20
			r.Percentage = int(math.Ceil(percentage))
		}
		rated = append(rated, r)
	}
	return rated, nil
}

// Create stores a review for the product. Ratings are bounded 1..5, the
// text must be at least two characters.
func (u *ReviewUseCase) Create(ctx context.Context, userID, productID int64, rating int, text string) (*model.Review, error) {
	if rating < minRating || rating > maxRating {
		return nil, domainErrors.ErrInvalidRating
	}
	if utf8.RuneCountInString(text) < minReviewLength {
		return nil, domainErrors.ErrReviewTooShort
	}
	product, err := u.catalog.ProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return u.reviews.Create(ctx, model.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Review:    text,
	}, model.Activity{
		UserID:      userID,
		Subject:     "review",
		Event:       "create_review",
		Description: "reviewed " + product.Name,
	})
}
