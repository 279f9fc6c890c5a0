package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
)

func (r *userRepository) GetByID(ctx context.Context, userID int64) (*model.User, error) {
	const query = `SELECT id, email, COALESCE(phone, ''), COALESCE(image, ''),
                          COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(gender, ''),
                          COALESCE(address, ''), COALESCE(country, ''), COALESCE(city, ''),
                          COALESCE(zip_code, ''), created_at
                   FROM users WHERE id = $1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&u.ID, &u.Email, &u.Phone, &u.Image,
		&u.FirstName, &u.LastName, &u.Gender, &u.Address, &u.Country, &u.City, &u.ZipCode, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
