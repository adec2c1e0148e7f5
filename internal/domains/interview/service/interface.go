package service

import (
	"context"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/interview/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, isStaff bool, req model.CreateInterviewRequest) (*model.InterviewRequest, error)
	GetByID(ctx context.Context, userID uuid.UUID, isStaff bool, id uuid.UUID) (*model.InterviewRequest, error)
	List(ctx context.Context, userID uuid.UUID, isStaff bool, limit, offset int) ([]model.InterviewRequest, int64, error)
}
