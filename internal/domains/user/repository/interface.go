package repository

import (
	"context"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/user/model"
)

// RepositoryInterface is the user data-access contract.
type RepositoryInterface interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
