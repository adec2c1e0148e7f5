package repository

import (
	"context"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/artist/model"
)

// RepositoryInterface is the artist data-access contract. The public API is
// read-only; rows are managed out of band.
type RepositoryInterface interface {
	List(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	// GetByUserID resolves a caller's artist profile, used for
	// interview-request scoping. Returns ErrArtistNotFound when the user has
	// no profile.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Artist, error)
}
