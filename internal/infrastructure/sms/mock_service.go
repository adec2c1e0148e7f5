package sms

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ================================================
// MOCK SMS SERVICE (for development)
// ================================================

type MockSender struct{}

func NewMockSender() *MockSender {
	return &MockSender{}
}

func (s *MockSender) Configured() bool {
	return true
}

func (s *MockSender) Send(ctx context.Context, to, body string) (string, error) {
	log.Info().
		Str("to", to).
		Str("body", body).
		Msg("[MOCK] SMS sent successfully")

	return fmt.Sprintf("mock-sms-%d", time.Now().Unix()), nil
}
