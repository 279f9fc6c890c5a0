package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
)

const productColumns = `id, sku, name, COALESCE(image, ''), price::text, total_order,
        total_rating, details, description, status, published_date, created_at`

// productColumnsPrefixed qualifies productColumns with a table alias for joins.
func productColumnsPrefixed(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.sku, %[1]s.name, COALESCE(%[1]s.image, ''), %[1]s.price::text,
        %[1]s.total_order, %[1]s.total_rating, %[1]s.details, %[1]s.description,
        %[1]s.status, %[1]s.published_date, %[1]s.created_at`, alias)
}

func scanProduct(row rowScanner) (*model.Product, error) {
	var (
		p     model.Product
		price string
	)
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Image, &price, &p.TotalOrder,
		&p.TotalRating, &p.Details, &p.Description, &p.Status, &p.PublishedDate, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if p.Price, err = parseDecimal(price); err != nil {
		return nil, fmt.Errorf("parse product price: %w", err)
	}
	return &p, nil
}

func (r *catalogRepository) ProductByID(ctx context.Context, productID int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND status = 1`
	product, err := scanProduct(r.storage.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *catalogRepository) InventoryBySelection(ctx context.Context, productID, sizeID, colourID int64) (*model.Inventory, error) {
	const query = `SELECT id, product_id, size_id, colour_id, stock
                   FROM product_inventories
                   WHERE product_id = $1 AND size_id = $2 AND colour_id = $3`
	var inv model.Inventory
	err := r.storage.pool.QueryRow(ctx, query, productID, sizeID, colourID).
		Scan(&inv.ID, &inv.ProductID, &inv.SizeID, &inv.ColourID, &inv.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *catalogRepository) InventoriesByProduct(ctx context.Context, productID int64) ([]model.Inventory, error) {
	const query = `SELECT id, product_id, size_id, colour_id, stock
                   FROM product_inventories WHERE product_id = $1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Inventory
	for rows.Next() {
		var inv model.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.SizeID, &inv.ColourID, &inv.Stock); err != nil {
			return nil, err
		}
		result = append(result, inv)
	}
	return result, rows.Err()
}

func (r *catalogRepository) ImagesByProduct(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	const query = `SELECT id, product_id, path, sort
                   FROM product_images WHERE product_id = $1 ORDER BY sort, id`
	rows, err := r.storage.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ProductImage
	for rows.Next() {
		var img model.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Path, &img.Sort); err != nil {
			return nil, err
		}
		result = append(result, img)
	}
	return result, rows.Err()
}

func (r *catalogRepository) ActiveSizes(ctx context.Context) ([]model.Size, error) {
	const query = `SELECT id, name FROM sizes WHERE status = 1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Size
	for rows.Next() {
		var s model.Size
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *catalogRepository) ActiveColours(ctx context.Context) ([]model.Colour, error) {
	const query = `SELECT id, code, name FROM colours WHERE status = 1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Colour
	for rows.Next() {
		var c model.Colour
		if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *catalogRepository) BestSellers(ctx context.Context, excludeProductID int64, limit int) ([]model.Product, error) {
	query := `SELECT ` + productColumns + `
              FROM products
              WHERE status = 1 AND id <> $1
              ORDER BY total_order DESC, id
              LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, excludeProductID, limit)
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
