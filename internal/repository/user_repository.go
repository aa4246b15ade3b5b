package repository

import (
	"context"

	"agrimart/internal/domain/model"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}
