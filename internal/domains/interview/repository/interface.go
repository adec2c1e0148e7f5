package repository

import (
	"context"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/interview/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, req *model.InterviewRequest) error
	GetByID(ctx context.Context, id uuid.UUID, scope model.Scope) (*model.InterviewRequest, error)
	List(ctx context.Context, scope model.Scope, limit, offset int) ([]model.InterviewRequest, int64, error)
	// MarkNotified persists the two notification flags and nothing else.
	MarkNotified(ctx context.Context, id uuid.UUID, emailSent, smsSent bool) error
}
