package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	artistmodel "deadparty-backend/internal/domains/artist/model"
	artistrepo "deadparty-backend/internal/domains/artist/repository"
	"deadparty-backend/internal/domains/interview/model"
	"deadparty-backend/internal/domains/interview/repository"
	"deadparty-backend/pkg/logger"
)

type interviewService struct {
	repo     repository.RepositoryInterface
	artists  artistrepo.RepositoryInterface
	notifier *Notifier
}

func NewInterviewService(repo repository.RepositoryInterface, artists artistrepo.RepositoryInterface, notifier *Notifier) ServiceInterface {
	return &interviewService{repo: repo, artists: artists, notifier: notifier}
}

func (s *interviewService) Create(ctx context.Context, userID uuid.UUID, isStaff bool, req model.CreateInterviewRequest) (*model.InterviewRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	artist, err := s.artists.GetByID(ctx, req.ArtistID)
	if err != nil {
		if errors.Is(err, artistmodel.ErrArtistNotFound) {
			return nil, model.ErrArtistNotFound
		}
		return nil, err
	}

	ir := &model.InterviewRequest{
		ArtistID:    req.ArtistID,
		RequesterID: &userID,
		Message:     req.Message,
	}
	if err := s.repo.Create(ctx, ir); err != nil {
		return nil, err
	}

	// Notification is synchronous and best-effort: the request is already
	// persisted, so only the sent flags ride on the outcome.
	s.notifier.Notify(ctx, ir, artist)
	if ir.EmailSent || ir.SmsSent {
		if err := s.repo.MarkNotified(ctx, ir.ID, ir.EmailSent, ir.SmsSent); err != nil {
			logger.Error("failed to persist notification flags", err)
		}
	}

	// The caller is the requester of the row just persisted, so the hydrating
	// re-read uses requester scope. Resolving an artist profile here could
	// narrow visibility to that artist and hide a request made for another.
	return s.repo.GetByID(ctx, ir.ID, model.ScopeFor(userID, false, nil))
}

func (s *interviewService) GetByID(ctx context.Context, userID uuid.UUID, isStaff bool, id uuid.UUID) (*model.InterviewRequest, error) {
	return s.repo.GetByID(ctx, id, s.scopeFor(ctx, userID, isStaff))
}

func (s *interviewService) List(ctx context.Context, userID uuid.UUID, isStaff bool, limit, offset int) ([]model.InterviewRequest, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, s.scopeFor(ctx, userID, isStaff), limit, offset)
}

// scopeFor resolves the caller's visibility. An artist-profile lookup
// failure degrades to requester scope rather than erroring the read.
func (s *interviewService) scopeFor(ctx context.Context, userID uuid.UUID, isStaff bool) model.Scope {
	if isStaff {
		return model.ScopeFor(userID, true, nil)
	}
	artist, err := s.artists.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, artistmodel.ErrArtistNotFound) {
			logger.Error("failed to resolve artist profile for scope", err)
		}
		return model.ScopeFor(userID, false, nil)
	}
	return model.ScopeFor(userID, false, &artist.ID)
}
