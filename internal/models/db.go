package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatMessage represents one stored chat exchange: a user message, the
// bot response generated for it, and the time the record was created.
type ChatMessage struct {
	ID          uuid.UUID `db:"id"`
	UserMessage string    `db:"user_message"`
	BotResponse string    `db:"bot_response"`
	CreatedAt   time.Time `db:"created_at"`
}

// String returns a short diagnostic form containing both texts.
func (m ChatMessage) String() string {
	return fmt.Sprintf("User: %s, Bot: %s", m.UserMessage, m.BotResponse)
}
