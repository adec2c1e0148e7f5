package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	artistmodel "deadparty-backend/internal/domains/artist/model"
	"deadparty-backend/internal/domains/interview/model"
	"deadparty-backend/internal/domains/interview/service"
)

type fakeInterviewRepo struct {
	requests  map[uuid.UUID]*model.InterviewRequest
	lastScope model.Scope
	marked    map[uuid.UUID][2]bool
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{
		requests: make(map[uuid.UUID]*model.InterviewRequest),
		marked:   make(map[uuid.UUID][2]bool),
	}
}

func (f *fakeInterviewRepo) Create(ctx context.Context, req *model.InterviewRequest) error {
	req.ID = uuid.New()
	copied := *req
	f.requests[req.ID] = &copied
	return nil
}

func (f *fakeInterviewRepo) visible(req *model.InterviewRequest, scope model.Scope) bool {
	switch scope.Role {
	case model.RoleStaff:
		return true
	case model.RoleArtistOwner:
		return req.ArtistID == scope.ArtistID
	default:
		return req.RequesterID != nil && *req.RequesterID == scope.UserID
	}
}

func (f *fakeInterviewRepo) GetByID(ctx context.Context, id uuid.UUID, scope model.Scope) (*model.InterviewRequest, error) {
	f.lastScope = scope
	req, ok := f.requests[id]
	if !ok || !f.visible(req, scope) {
		return nil, model.ErrInterviewNotFound
	}
	copied := *req
	return &copied, nil
}

func (f *fakeInterviewRepo) List(ctx context.Context, scope model.Scope, limit, offset int) ([]model.InterviewRequest, int64, error) {
	f.lastScope = scope
	var out []model.InterviewRequest
	for _, req := range f.requests {
		if f.visible(req, scope) {
			out = append(out, *req)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeInterviewRepo) MarkNotified(ctx context.Context, id uuid.UUID, emailSent, smsSent bool) error {
	req, ok := f.requests[id]
	if !ok {
		return model.ErrInterviewNotFound
	}
	req.EmailSent = emailSent
	req.SmsSent = smsSent
	f.marked[id] = [2]bool{emailSent, smsSent}
	return nil
}

type fakeArtistRepo struct {
	artists map[uuid.UUID]*artistmodel.Artist
}

func (f *fakeArtistRepo) List(ctx context.Context, filter artistmodel.ArtistFilter) ([]artistmodel.Artist, int64, error) {
	return nil, 0, nil
}

func (f *fakeArtistRepo) GetByID(ctx context.Context, id uuid.UUID) (*artistmodel.Artist, error) {
	a, ok := f.artists[id]
	if !ok {
		return nil, artistmodel.ErrArtistNotFound
	}
	return a, nil
}

func (f *fakeArtistRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*artistmodel.Artist, error) {
	for _, a := range f.artists {
		if a.UserID != nil && *a.UserID == userID {
			return a, nil
		}
	}
	return nil, artistmodel.ErrArtistNotFound
}

func newTestService(artists *fakeArtistRepo) (service.ServiceInterface, *fakeInterviewRepo) {
	repo := newFakeInterviewRepo()
	notifier := service.NewNotifier(&fakeEmailSender{}, &fakeSMSSender{}, &fakeUserRepo{})
	return service.NewInterviewService(repo, artists, notifier), repo
}

func TestCreateStampsRequesterAndPersists(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()
	artist := &artistmodel.Artist{ID: uuid.New(), Name: "Boneyard", UserID: &ownerID}
	svc, repo := newTestService(&fakeArtistRepo{artists: map[uuid.UUID]*artistmodel.Artist{artist.ID: artist}})
	ctx := context.Background()

	requester := uuid.New()
	ir, err := svc.Create(ctx, requester, false, model.CreateInterviewRequest{
		ArtistID: artist.ID,
		Message:  "Would love a word.",
	})
	require.NoError(t, err)
	require.NotNil(t, ir.RequesterID)
	require.Equal(t, requester, *ir.RequesterID)
	require.Len(t, repo.requests, 1)
}

func TestCreateByArtistOwnerForAnotherArtist(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()
	own := &artistmodel.Artist{ID: uuid.New(), Name: "Boneyard", UserID: &ownerID}
	other := &artistmodel.Artist{ID: uuid.New(), Name: "Gravel Pit"}
	svc, repo := newTestService(&fakeArtistRepo{artists: map[uuid.UUID]*artistmodel.Artist{
		own.ID:   own,
		other.ID: other,
	}})

	// The owner of one artist profile requests an interview with another
	// artist. The created request must come back even though it falls
	// outside the owner's artist scope.
	ir, err := svc.Create(context.Background(), ownerID, false, model.CreateInterviewRequest{
		ArtistID: other.ID,
		Message:  "Crossover piece?",
	})
	require.NoError(t, err)
	require.Equal(t, other.ID, ir.ArtistID)
	require.NotNil(t, ir.RequesterID)
	require.Equal(t, ownerID, *ir.RequesterID)
	require.Len(t, repo.requests, 1)
}

func TestCreateUnknownArtist(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(&fakeArtistRepo{artists: map[uuid.UUID]*artistmodel.Artist{}})

	_, err := svc.Create(context.Background(), uuid.New(), false, model.CreateInterviewRequest{
		ArtistID: uuid.New(),
		Message:  "anyone there?",
	})
	require.ErrorIs(t, err, model.ErrArtistNotFound)
}

func TestListScopeDispatch(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()
	artist := &artistmodel.Artist{ID: uuid.New(), Name: "Boneyard", UserID: &ownerID}
	svc, repo := newTestService(&fakeArtistRepo{artists: map[uuid.UUID]*artistmodel.Artist{artist.ID: artist}})
	ctx := context.Background()

	// Staff sees everything.
	_, _, err := svc.List(ctx, uuid.New(), true, 20, 0)
	require.NoError(t, err)
	require.Equal(t, model.RoleStaff, repo.lastScope.Role)

	// The artist-profile owner is scoped to their artist.
	_, _, err = svc.List(ctx, ownerID, false, 20, 0)
	require.NoError(t, err)
	require.Equal(t, model.RoleArtistOwner, repo.lastScope.Role)
	require.Equal(t, artist.ID, repo.lastScope.ArtistID)

	// Everyone else is scoped to their own requests.
	plainUser := uuid.New()
	_, _, err = svc.List(ctx, plainUser, false, 20, 0)
	require.NoError(t, err)
	require.Equal(t, model.RoleRequester, repo.lastScope.Role)
	require.Equal(t, plainUser, repo.lastScope.UserID)
}

func TestGetByIDOutsideScopeReadsAsNotFound(t *testing.T) {
	t.Parallel()
	artist := &artistmodel.Artist{ID: uuid.New(), Name: "Boneyard"}
	svc, _ := newTestService(&fakeArtistRepo{artists: map[uuid.UUID]*artistmodel.Artist{artist.ID: artist}})
	ctx := context.Background()

	requester := uuid.New()
	ir, err := svc.Create(ctx, requester, false, model.CreateInterviewRequest{
		ArtistID: artist.ID,
		Message:  "mine",
	})
	require.NoError(t, err)

	// The requester can read it back.
	got, err := svc.GetByID(ctx, requester, false, ir.ID)
	require.NoError(t, err)
	require.Equal(t, ir.ID, got.ID)

	// A different user cannot.
	_, err = svc.GetByID(ctx, uuid.New(), false, ir.ID)
	require.ErrorIs(t, err, model.ErrInterviewNotFound)

	// Staff can.
	_, err = svc.GetByID(ctx, uuid.New(), true, ir.ID)
	require.NoError(t, err)
}
