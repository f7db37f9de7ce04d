package store

import (
	"context"
	"errors"

	"chatbot-backend/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a specific record is not found.
var ErrNotFound = errors.New("record not found")

// CreateChatMessageParams contains parameters for creating a chat message.
// CreatedAt is deliberately absent: the storage layer assigns it at
// insertion time and it is immutable afterwards.
type CreateChatMessageParams struct {
	ID          uuid.UUID
	UserMessage string
	BotResponse string
}

// Store defines the interface for database operations.
// This allows for mocking in tests and potential DB backend switching.
type Store interface {
	// CreateChatMessage inserts a new chat exchange and returns the
	// stored record, including the assigned id and created_at.
	CreateChatMessage(ctx context.Context, arg CreateChatMessageParams) (*models.ChatMessage, error)

	// ListChatMessages returns stored exchanges in creation order
	// (oldest first). A limit <= 0 means no limit.
	ListChatMessages(ctx context.Context, limit, offset int) ([]models.ChatMessage, error)

	// GetChatMessageByID returns a single exchange, or ErrNotFound.
	GetChatMessageByID(ctx context.Context, id uuid.UUID) (*models.ChatMessage, error)
}
