package repository

import (
	"context"

	"github.com/moriwell/storefront/internal/domain/model"
)

// UserRepository resolves user profiles for authenticated requests.
type UserRepository interface {
	GetByID(ctx context.Context, userID int64) (*model.User, error)
}
