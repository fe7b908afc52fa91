package repository

import (
	"context"
	"errors"

	"okean/internal/domain/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserListQuery struct {
	Page  int
	Limit int
	Q     string // matches email, full name or phone
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Update persists profile, role and activity changes.
	Update(ctx context.Context, user *model.User) error
	IncrementTokenVersion(ctx context.Context, userID string) error
	List(ctx context.Context, q UserListQuery) ([]model.User, int64, error)
	Count(ctx context.Context) (int64, error)
}
