package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"deadparty-backend/internal/config"
)

// Sender delivers a text message and reports the provider message id.
type Sender interface {
	Send(ctx context.Context, to, body string) (messageID string, err error)
	// Configured reports whether the provider has credentials. Unconfigured
	// senders are skipped entirely by the notifier.
	Configured() bool
}

// =====================================================
// TWILIO SMS SERVICE
// =====================================================

type TwilioSender struct {
	config     config.TwilioConfig
	httpClient *http.Client
	apiBase    string
}

func NewTwilioSender(cfg config.TwilioConfig) *TwilioSender {
	return &TwilioSender{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiBase: "https://api.twilio.com",
	}
}

func (s *TwilioSender) Configured() bool {
	return s.config.Configured()
}

// Send posts to the Twilio Messages API using account-SID basic auth.
func (s *TwilioSender) Send(ctx context.Context, to, body string) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("twilio credentials not configured")
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.apiBase, s.config.AccountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.config.FromNumber)
	form.Set("Body", body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.SetBasicAuth(s.config.AccountSID, s.config.AuthToken)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call Twilio API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read Twilio response: %w", err)
	}

	var respData struct {
		SID     string `json:"sid"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(bodyBytes, &respData); err != nil {
		return "", fmt.Errorf("failed to unmarshal Twilio response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("Twilio API error (%d): %s", resp.StatusCode, respData.Message)
	}

	return respData.SID, nil
}
