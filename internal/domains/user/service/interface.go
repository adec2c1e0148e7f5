package service

import (
	"context"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.Summary, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*model.LoginResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
