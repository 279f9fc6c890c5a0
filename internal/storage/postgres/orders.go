package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/domain/repository"
)

const orderColumns = `id, user_id, payment_id, invoice_number, total_item,
        subtotal::text, total_discount::text, total_taxes::text,
        total_shipment::text, total_paid::text, status, created_at, updated_at`

func scanOrder(row rowScanner) (*model.Order, error) {
	var (
		o        model.Order
		subtotal string
		discount string
		taxes    string
		shipment string
		paid     string
	)
	err := row.Scan(&o.ID, &o.UserID, &o.PaymentID, &o.InvoiceNumber, &o.TotalItem,
		&subtotal, &discount, &taxes, &shipment, &paid, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if o.Subtotal, err = parseDecimal(subtotal); err != nil {
		return nil, fmt.Errorf("parse subtotal: %w", err)
	}
	if o.TotalDiscount, err = parseDecimal(discount); err != nil {
		return nil, fmt.Errorf("parse total_discount: %w", err)
	}
	if o.TotalTaxes, err = parseDecimal(taxes); err != nil {
		return nil, fmt.Errorf("parse total_taxes: %w", err)
	}
	if o.TotalShipment, err = parseDecimal(shipment); err != nil {
		return nil, fmt.Errorf("parse total_shipment: %w", err)
	}
	if o.TotalPaid, err = parseDecimal(paid); err != nil {
		return nil, fmt.Errorf("parse total_paid: %w", err)
	}
	return &o, nil
}

// AddToCart locates or creates the user's draft order and merges the line
// inside one transaction. The partial unique index on (user_id) WHERE status=0
// makes the find-or-create race-free; the FOR UPDATE lock serializes merges.
func (r *orderRepository) AddToCart(ctx context.Context, p repository.AddToCartParams) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertDraft = `INSERT INTO orders (user_id, invoice_number, status)
                             VALUES ($1, $2, 0)
                             ON CONFLICT (user_id) WHERE status = 0 DO NOTHING`
		if _, err := tx.Exec(ctx, insertDraft, p.UserID, p.InvoiceNumber); err != nil {
			return fmt.Errorf("create draft order: %w", err)
		}

		const lockDraft = `SELECT id FROM orders WHERE user_id = $1 AND status = 0 FOR UPDATE`
		var orderID int64
		if err := tx.QueryRow(ctx, lockDraft, p.UserID).Scan(&orderID); err != nil {
			return fmt.Errorf("lock draft order: %w", err)
		}

		const upsertLine = `INSERT INTO order_details (order_id, inventory_id, price, qty, total)
                            VALUES ($1, $2, $3::numeric, $4, $5::numeric)
                            ON CONFLICT (order_id, inventory_id) DO UPDATE
                            SET price = EXCLUDED.price,
                                qty = order_details.qty + EXCLUDED.qty,
                                total = order_details.total + EXCLUDED.total,
                                updated_at = NOW()`
		if _, err := tx.Exec(ctx, upsertLine, orderID, p.InventoryID, p.UnitPrice.String(), p.Qty, p.LineTotal.String()); err != nil {
			return fmt.Errorf("upsert cart line: %w", err)
		}

		updateOrder := `UPDATE orders
                        SET total_item = total_item + $2,
                            subtotal = subtotal + $3::numeric,
                            total_paid = total_paid + $3::numeric,
                            updated_at = NOW()
                        WHERE id = $1
                        RETURNING ` + orderColumns
		var err error
		if order, err = scanOrder(tx.QueryRow(ctx, updateOrder, orderID, p.Qty, p.LineTotal.String())); err != nil {
			return fmt.Errorf("update order aggregates: %w", err)
		}

		return r.storage.recordActivityTx(ctx, tx, p.Activity)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) DraftByUser(ctx context.Context, userID int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 AND status = 0 ORDER BY id DESC LIMIT 1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) LinesByOrder(ctx context.Context, orderID int64) ([]model.CartLine, error) {
	const query = `SELECT od.id, od.order_id, od.inventory_id, pi.product_id,
                          p.name, COALESCE(p.image, ''), od.price::text, od.qty, od.total::text
                   FROM order_details od
                   JOIN product_inventories pi ON pi.id = od.inventory_id
                   JOIN products p ON p.id = pi.product_id
                   WHERE od.order_id = $1
                   ORDER BY od.id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartLine
	for rows.Next() {
		var (
			line  model.CartLine
			price string
			total string
		)
		if err := rows.Scan(&line.ID, &line.OrderID, &line.InventoryID, &line.ProductID,
			&line.ProductName, &line.ProductImage, &price, &line.Qty, &total); err != nil {
			return nil, err
		}
		if line.Price, err = parseDecimal(price); err != nil {
			return nil, fmt.Errorf("parse line price: %w", err)
		}
		if line.Total, err = parseDecimal(total); err != nil {
			return nil, fmt.Errorf("parse line total: %w", err)
		}
		result = append(result, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Checkout transitions the user's draft order to placed: stock decremented
// with a floor check, wishlist cleared per scope, totals frozen from the
// quote, billing snapshot written. All or nothing.
func (r *orderRepository) Checkout(ctx context.Context, p repository.CheckoutParams) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockDraft = `SELECT id, subtotal::text FROM orders WHERE user_id = $1 AND status = 0 FOR UPDATE`
		var (
			orderID     int64
			subtotalRaw string
		)
		if err := tx.QueryRow(ctx, lockDraft, p.UserID).Scan(&orderID, &subtotalRaw); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNoActiveOrder
			}
			return fmt.Errorf("lock draft order: %w", err)
		}
		subtotal, err := parseDecimal(subtotalRaw)
		if err != nil {
			return fmt.Errorf("parse subtotal: %w", err)
		}

		const selectLines = `SELECT od.inventory_id, od.qty, pi.product_id
                             FROM order_details od
                             JOIN product_inventories pi ON pi.id = od.inventory_id
                             WHERE od.order_id = $1`
		rows, err := tx.Query(ctx, selectLines, orderID)
		if err != nil {
			return fmt.Errorf("select order lines: %w", err)
		}
		type checkoutLine struct {
			inventoryID int64
			qty         int
			productID   int64
		}
		var lines []checkoutLine
		for rows.Next() {
			var line checkoutLine
			if err := rows.Scan(&line.inventoryID, &line.qty, &line.productID); err != nil {
				rows.Close()
				return err
			}
			lines = append(lines, line)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if len(lines) == 0 {
			return domainErrors.ErrEmptyOrder
		}

		totalItem := 0
		for _, line := range lines {
			totalItem += line.qty

			const decrementStock = `UPDATE product_inventories
                                    SET stock = stock - $2, updated_at = NOW()
                                    WHERE id = $1 AND stock >= $2`
			tag, err := tx.Exec(ctx, decrementStock, line.inventoryID, line.qty)
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrInsufficientStock
			}

			const bumpProduct = `UPDATE products SET total_order = total_order + $2, updated_at = NOW() WHERE id = $1`
			if _, err := tx.Exec(ctx, bumpProduct, line.productID, line.qty); err != nil {
				return fmt.Errorf("bump product order counter: %w", err)
			}
		}

		switch p.Scope {
		case repository.ClearAll:
			const clearWishlist = `DELETE FROM wishlists WHERE user_id = $1`
			if _, err := tx.Exec(ctx, clearWishlist, p.UserID); err != nil {
				return fmt.Errorf("clear wishlist: %w", err)
			}
		case repository.ClearPurchased:
			const clearWishlist = `DELETE FROM wishlists
                                   WHERE user_id = $1 AND product_id IN (
                                       SELECT pi.product_id FROM order_details od
                                       JOIN product_inventories pi ON pi.id = od.inventory_id
                                       WHERE od.order_id = $2)`
			if _, err := tx.Exec(ctx, clearWishlist, p.UserID, orderID); err != nil {
				return fmt.Errorf("clear wishlist: %w", err)
			}
		}

		quote := p.Quote(subtotal)
		finalize := `UPDATE orders
                     SET total_item = $2,
                         total_discount = $3::numeric,
                         total_taxes = $4::numeric,
                         total_shipment = $5::numeric,
                         total_paid = $6::numeric,
                         payment_id = $7,
                         status = 1,
                         updated_at = NOW()
                     WHERE id = $1 AND status = 0
                     RETURNING ` + orderColumns
		order, err = scanOrder(tx.QueryRow(ctx, finalize, orderID, totalItem,
			quote.Discount.String(), quote.Taxes.String(), quote.Shipment.String(),
			quote.TotalPaid.String(), p.PaymentID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNoActiveOrder
			}
			return fmt.Errorf("finalize order: %w", err)
		}

		const insertBilling = `INSERT INTO order_billings (order_id, name, description) VALUES ($1, $2, $3)`
		for _, field := range p.Billing {
			if _, err := tx.Exec(ctx, insertBilling, orderID, field.Name, field.Value); err != nil {
				return fmt.Errorf("insert billing %s: %w", field.Name, err)
			}
		}

		return r.storage.recordActivityTx(ctx, tx, p.Activity)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, p repository.ListParams) (*model.OrderPage, error) {
	page := &model.OrderPage{}

	const countAll = `SELECT COUNT(*) FROM orders WHERE user_id = $1`
	if err := r.storage.pool.QueryRow(ctx, countAll, p.UserID).Scan(&page.TotalAll); err != nil {
		return nil, err
	}

	where := `user_id = $1`
	args := []any{p.UserID}
	if p.Search != "" {
		where += ` AND invoice_number ILIKE '%' || $2 || '%'`
		args = append(args, p.Search)
	}

	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE `+where, args...).Scan(&page.TotalFiltered); err != nil {
		return nil, err
	}

	// SortColumn comes from the query layer's allow-list, never raw input.
	column := p.SortColumn
	if column == "" {
		column = "id"
	}
	direction := "ASC"
	if p.Desc {
		direction = "DESC"
	}
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE %s ORDER BY %s %s LIMIT %d OFFSET %d`,
		orderColumns, where, column, direction, p.Limit, p.Offset)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		page.Orders = append(page.Orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return page, nil
}

func (r *orderRepository) BillingByOrder(ctx context.Context, orderID int64) (map[string]string, error) {
	const query = `SELECT name, description FROM order_billings WHERE order_id = $1`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	billing := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		billing[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return billing, nil
}

// Cancel removes the order with its lines and billing snapshot.
func (r *orderRepository) Cancel(ctx context.Context, orderID int64, act model.Activity) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const deleteLines = `DELETE FROM order_details WHERE order_id = $1`
		if _, err := tx.Exec(ctx, deleteLines, orderID); err != nil {
			return fmt.Errorf("delete order lines: %w", err)
		}

		const deleteBilling = `DELETE FROM order_billings WHERE order_id = $1`
		if _, err := tx.Exec(ctx, deleteBilling, orderID); err != nil {
			return fmt.Errorf("delete order billing: %w", err)
		}

		const deleteOrder = `DELETE FROM orders WHERE id = $1`
		tag, err := tx.Exec(ctx, deleteOrder, orderID)
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		return r.storage.recordActivityTx(ctx, tx, act)
	})
}
