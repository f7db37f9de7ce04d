package ai

import (
	"context"
	"fmt"
)

// MockResponder returns a canned bot response. Used in tests and as the
// local development fallback when no Gemini api key is configured.
type MockResponder struct{}

func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

func (m *MockResponder) GenerateReply(_ context.Context, userMessage string) (string, error) {
	return fmt.Sprintf("You said %q. I am a canned response, configure GEMINI_API_KEY for real ones.", userMessage), nil
}
