package email

import (
	"context"
	"fmt"
	"net/smtp"

	"deadparty-backend/internal/config"
)

// Sender delivers a plain-text email. Used by the interview-request notifier.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpSender struct {
	addr string
	from string
}

// NewSMTPSender builds the production sender. All mail goes out from the
// fixed site identity.
func NewSMTPSender(cfg config.SMTPConfig) Sender {
	return &smtpSender{
		addr: cfg.Host + ":" + cfg.Port,
		from: cfg.From,
	}
}

func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.from, to, subject, body))

	if err := smtp.SendMail(s.addr, nil, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
