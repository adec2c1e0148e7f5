package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	artistmodel "deadparty-backend/internal/domains/artist/model"
	"deadparty-backend/internal/domains/interview/model"
	"deadparty-backend/internal/domains/interview/service"
	usermodel "deadparty-backend/internal/domains/user/model"
)

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

type fakeEmailSender struct {
	sent []sentEmail
	err  error
}

func (f *fakeEmailSender) Send(ctx context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}

type fakeSMSSender struct {
	configured bool
	sent       []string
	err        error
}

func (f *fakeSMSSender) Configured() bool { return f.configured }

func (f *fakeSMSSender) Send(ctx context.Context, to, body string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, body)
	return "SM123", nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*usermodel.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *usermodel.User) (*usermodel.User, error) {
	if f.users == nil {
		f.users = make(map[uuid.UUID]*usermodel.User)
	}
	user.ID = uuid.New()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*usermodel.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, usermodel.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*usermodel.User, error) {
	return nil, usermodel.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func notifiableArtist(email, phone string) (*artistmodel.Artist, *fakeUserRepo) {
	userID := uuid.New()
	users := &fakeUserRepo{users: map[uuid.UUID]*usermodel.User{}}
	user := &usermodel.User{ID: userID, Username: "boneyard"}
	if phone != "" {
		user.Phone = &phone
	}
	users.users[userID] = user

	artist := &artistmodel.Artist{ID: uuid.New(), Name: "Boneyard", UserID: &userID}
	if email != "" {
		artist.Email = &email
	}
	return artist, users
}

func TestNotifySendsEmail(t *testing.T) {
	t.Parallel()
	artist, users := notifiableArtist("band@boneyard.example", "")
	emailSender := &fakeEmailSender{}
	smsSender := &fakeSMSSender{}
	n := service.NewNotifier(emailSender, smsSender, users)

	req := &model.InterviewRequest{ID: uuid.New(), ArtistID: artist.ID, Message: "Let's talk."}
	n.Notify(context.Background(), req, artist)

	require.True(t, req.EmailSent)
	require.False(t, req.SmsSent)
	require.Len(t, emailSender.sent, 1)
	require.Equal(t, "band@boneyard.example", emailSender.sent[0].To)
	require.Equal(t, "Interview Request from Dead Party Media", emailSender.sent[0].Subject)
	require.Contains(t, emailSender.sent[0].Body, "Hi Boneyard,")
	require.Contains(t, emailSender.sent[0].Body, "Let's talk.")
}

func TestNotifyEmailFailureLeavesFlagUnset(t *testing.T) {
	t.Parallel()
	artist, users := notifiableArtist("band@boneyard.example", "")
	emailSender := &fakeEmailSender{err: errors.New("smtp down")}
	n := service.NewNotifier(emailSender, &fakeSMSSender{}, users)

	req := &model.InterviewRequest{ID: uuid.New(), ArtistID: artist.ID, Message: "hello"}
	n.Notify(context.Background(), req, artist)

	require.False(t, req.EmailSent)
	require.Empty(t, emailSender.sent)
}

func TestNotifyTruncatesSMSBody(t *testing.T) {
	t.Parallel()
	artist, users := notifiableArtist("", "+15551234567")
	smsSender := &fakeSMSSender{configured: true}
	n := service.NewNotifier(&fakeEmailSender{}, smsSender, users)

	message := strings.Repeat("x", 150)
	req := &model.InterviewRequest{ID: uuid.New(), ArtistID: artist.ID, Message: message}
	n.Notify(context.Background(), req, artist)

	require.True(t, req.SmsSent)
	require.Len(t, smsSender.sent, 1)
	want := "New interview request from Dead Party Media: " + strings.Repeat("x", 100) + "..."
	require.Equal(t, want, smsSender.sent[0])
}

func TestNotifySkipsSMSWithoutPhoneOrConfig(t *testing.T) {
	t.Parallel()

	// Twilio not configured.
	artist, users := notifiableArtist("", "+15551234567")
	smsSender := &fakeSMSSender{configured: false}
	n := service.NewNotifier(&fakeEmailSender{}, smsSender, users)
	req := &model.InterviewRequest{ID: uuid.New(), ArtistID: artist.ID, Message: "m"}
	n.Notify(context.Background(), req, artist)
	require.False(t, req.SmsSent)
	require.Empty(t, smsSender.sent)

	// Account has no phone number.
	artist, users = notifiableArtist("", "")
	smsSender = &fakeSMSSender{configured: true}
	n = service.NewNotifier(&fakeEmailSender{}, smsSender, users)
	req = &model.InterviewRequest{ID: uuid.New(), ArtistID: artist.ID, Message: "m"}
	n.Notify(context.Background(), req, artist)
	require.False(t, req.SmsSent)
	require.Empty(t, smsSender.sent)
}

func TestNotifySkipsAlreadySentChannels(t *testing.T) {
	t.Parallel()
	artist, users := notifiableArtist("band@boneyard.example", "+15551234567")
	emailSender := &fakeEmailSender{}
	smsSender := &fakeSMSSender{configured: true}
	n := service.NewNotifier(emailSender, smsSender, users)

	req := &model.InterviewRequest{
		ID:        uuid.New(),
		ArtistID:  artist.ID,
		Message:   "already handled",
		EmailSent: true,
		SmsSent:   true,
	}
	n.Notify(context.Background(), req, artist)

	require.Empty(t, emailSender.sent)
	require.Empty(t, smsSender.sent)
}
