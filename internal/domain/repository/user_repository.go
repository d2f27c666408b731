package repository

import (
	"context"

	"github.com/matrikabazaar/marketplace-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Create enforces email uniqueness atomically and surfaces a violation
// as ErrDuplicateEmail.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
