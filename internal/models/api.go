package models

import (
	"time"

	"github.com/google/uuid"
)

// --- Request Structs ---

// SendMessageRequest defines the expected body for the send endpoint.
// The bot response is generated server-side, so only the user message
// is accepted.
type SendMessageRequest struct {
	Message string `json:"message"`
}

// --- Response Structs ---

// ChatMessageResponse defines the chat exchange returned by the API.
type ChatMessageResponse struct {
	ID          uuid.UUID `json:"id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListMessagesResponse defines the response body for listing stored exchanges.
type ListMessagesResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

// ErrorResponse defines the standard structure for API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
