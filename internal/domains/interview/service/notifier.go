package service

import (
	"context"
	"fmt"

	artistmodel "deadparty-backend/internal/domains/artist/model"
	"deadparty-backend/internal/domains/interview/model"
	userrepo "deadparty-backend/internal/domains/user/repository"
	"deadparty-backend/internal/infrastructure/email"
	"deadparty-backend/internal/infrastructure/sms"
	"deadparty-backend/internal/shared/utils"
	"deadparty-backend/pkg/logger"
)

const (
	emailSubject = "Interview Request from Dead Party Media"
	smsPrefix    = "New interview request from Dead Party Media: "
	smsBodyLimit = 100
)

// Notifier tells the artist about a new interview request over email and
// SMS. Both channels are best-effort: a failed send is logged and the flag
// stays false, but the request itself always stands.
type Notifier struct {
	email email.Sender
	sms   sms.Sender
	users userrepo.RepositoryInterface
}

func NewNotifier(emailSender email.Sender, smsSender sms.Sender, users userrepo.RepositoryInterface) *Notifier {
	return &Notifier{email: emailSender, sms: smsSender, users: users}
}

// Notify sends whatever channels are still pending and flips the sent flags
// on req in place. Already-sent channels are skipped, so re-delivery after a
// partial failure does not double-send.
func (n *Notifier) Notify(ctx context.Context, req *model.InterviewRequest, artist *artistmodel.Artist) {
	if !req.EmailSent && artist.Email != nil && *artist.Email != "" {
		body := fmt.Sprintf(
			"Hi %s,\n\nYou have received a new interview request:\n\n%s\n\nDead Party Media",
			artist.Name, req.Message,
		)
		if err := n.email.Send(ctx, *artist.Email, emailSubject, body); err != nil {
			logger.Error("failed to send interview request email", err)
		} else {
			req.EmailSent = true
		}
	}

	if !req.SmsSent && n.sms.Configured() && artist.UserID != nil {
		if phone := n.artistPhone(ctx, artist); phone != "" {
			body := smsPrefix + utils.TruncateRunes(req.Message, smsBodyLimit) + "..."
			if _, err := n.sms.Send(ctx, phone, body); err != nil {
				logger.Error("failed to send interview request sms", err)
			} else {
				req.SmsSent = true
			}
		}
	}
}

func (n *Notifier) artistPhone(ctx context.Context, artist *artistmodel.Artist) string {
	user, err := n.users.GetByID(ctx, *artist.UserID)
	if err != nil {
		logger.Error("failed to load artist account for sms", err)
		return ""
	}
	if user.Phone == nil {
		return ""
	}
	return *user.Phone
}
