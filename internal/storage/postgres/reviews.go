package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/moriwell/storefront/internal/domain/model"
)

func (r *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	const query = `SELECT id, product_id, user_id, rating, review, created_at
                   FROM product_reviews WHERE product_id = $1 ORDER BY id DESC`
	rows, err := r.storage.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.Rating, &rev.Review, &rev.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rev)
	}
	return result, rows.Err()
}

// Create inserts a review and lifts the product's top rating when the new
// rating exceeds it, in one transaction.
func (r *reviewRepository) Create(ctx context.Context, review model.Review, act model.Activity) (*model.Review, error) {
	var created model.Review
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO product_reviews (product_id, user_id, rating, review)
                        VALUES ($1, $2, $3, $4)
                        RETURNING id, product_id, user_id, rating, review, created_at`
		err := tx.QueryRow(ctx, insert, review.ProductID, review.UserID, review.Rating, review.Review).
			Scan(&created.ID, &created.ProductID, &created.UserID, &created.Rating, &created.Review, &created.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert review: %w", err)
		}

		const lift = `UPDATE products SET total_rating = $2, updated_at = NOW()
                      WHERE id = $1 AND total_rating < $2`
		if _, err := tx.Exec(ctx, lift, review.ProductID, review.Rating); err != nil {
			return fmt.Errorf("lift product rating: %w", err)
		}

		return r.storage.recordActivityTx(ctx, tx, act)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
