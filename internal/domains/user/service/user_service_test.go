package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"deadparty-backend/internal/domains/user/model"
	"deadparty-backend/internal/domains/user/service"
	"deadparty-backend/pkg/jwt"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) (*model.User, error) {
	u.ID = uuid.New()
	u.DateJoined = time.Now()
	copied := *u
	f.users[u.ID] = &copied
	return &copied, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func newUserService() (service.ServiceInterface, *fakeUserRepo, *jwt.Manager) {
	repo := newFakeUserRepo()
	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return service.NewUserService(repo, manager), repo, manager
}

func registerReq() model.RegisterRequest {
	return model.RegisterRequest{
		Username:  "fan123",
		Email:     "Fan@DeadParty.example",
		Password:  "correct horse battery",
		FirstName: "Pat",
		LastName:  "Doe",
	}
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newUserService()

	summary, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	require.Equal(t, "fan@deadparty.example", summary.Email)

	stored := repo.users[summary.ID]
	require.NotNil(t, stored)
	require.NotEqual(t, "correct horse battery", stored.PasswordHash)
	require.True(t, strings.HasPrefix(stored.PasswordHash, "$2"))
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	t.Parallel()
	svc, _, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq())
	require.ErrorIs(t, err, model.ErrDuplicateEmail)

	req := registerReq()
	req.Email = "other@deadparty.example"
	_, err = svc.Register(ctx, req)
	require.ErrorIs(t, err, model.ErrDuplicateUsername)
}

func TestLoginAndRefresh(t *testing.T) {
	t.Parallel()
	svc, _, manager := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, model.LoginRequest{
		Email:    "fan@deadparty.example",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	claims, err := manager.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "user", claims.Role)

	refreshed, err := svc.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)

	// An access token is not accepted as a refresh token.
	_, err = svc.RefreshToken(ctx, resp.AccessToken)
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	t.Parallel()
	svc, _, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	respA, errA := svc.Login(ctx, model.LoginRequest{Email: "fan@deadparty.example", Password: "wrong"})
	respB, errB := svc.Login(ctx, model.LoginRequest{Email: "ghost@deadparty.example", Password: "wrong"})
	require.Nil(t, respA)
	require.Nil(t, respB)
	require.ErrorIs(t, errA, model.ErrInvalidCredentials)
	require.ErrorIs(t, errB, model.ErrInvalidCredentials)
}
