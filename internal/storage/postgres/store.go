package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
)

// PricingSettings loads the three pricing keys in one pass. Keys missing from
// the settings table stay zero.
func (r *storeRepository) PricingSettings(ctx context.Context) (model.PricingSettings, error) {
	const query = `SELECT key_name, key_value FROM settings WHERE key_name = ANY($1)`
	keys := []string{model.SettingDiscount, model.SettingTaxes, model.SettingShipment}

	rows, err := r.storage.pool.Query(ctx, query, keys)
	if err != nil {
		return model.PricingSettings{}, err
	}
	defer rows.Close()

	var settings model.PricingSettings
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return model.PricingSettings{}, err
		}
		parsed, err := parseDecimal(value)
		if err != nil {
			return model.PricingSettings{}, fmt.Errorf("parse setting %s: %w", name, err)
		}
		switch name {
		case model.SettingDiscount:
			settings.DiscountPercent = parsed
		case model.SettingTaxes:
			settings.TaxPercent = parsed
		case model.SettingShipment:
			settings.ShipmentFee = parsed
		}
	}
	return settings, rows.Err()
}

func (r *storeRepository) ActivePayments(ctx context.Context) ([]model.Payment, error) {
	const query = `SELECT id, name, COALESCE(description, ''), status FROM payments WHERE status = 1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Status); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *storeRepository) PaymentByID(ctx context.Context, paymentID int64) (*model.Payment, error) {
	const query = `SELECT id, name, COALESCE(description, ''), status FROM payments WHERE id = $1 AND status = 1`
	var p model.Payment
	err := r.storage.pool.QueryRow(ctx, query, paymentID).Scan(&p.ID, &p.Name, &p.Description, &p.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
