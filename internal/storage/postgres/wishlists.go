package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/moriwell/storefront/internal/domain/model"
)

// Add inserts the wishlist association. Re-adding an already wished product
// is a no-op; the activity is still recorded.
func (r *wishlistRepository) Add(ctx context.Context, userID, productID int64, act model.Activity) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO wishlists (user_id, product_id) VALUES ($1, $2)
                       ON CONFLICT (user_id, product_id) DO NOTHING`
		if _, err := tx.Exec(ctx, query, userID, productID); err != nil {
			return fmt.Errorf("add wishlist: %w", err)
		}
		return r.storage.recordActivityTx(ctx, tx, act)
	})
}

func (r *wishlistRepository) ProductsByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	query := `SELECT ` + productColumnsPrefixed("p") + `
              FROM wishlists w
              JOIN products p ON p.id = w.product_id
              WHERE w.user_id = $1 AND p.status = 1
              ORDER BY p.id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *product)
	}
	return result, rows.Err()
}
