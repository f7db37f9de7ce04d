package memory

import (
	"context"
	"sync"
	"time"

	"chatbot-backend/internal/models"
	"chatbot-backend/internal/store"

	"github.com/google/uuid"
)

// Compile-time check to ensure Store implements store.Store
var _ store.Store = (*Store)(nil)

// Store is an in-memory store.Store implementation. It backs tests and
// the local development fallback when DATABASE_URL is not set.
type Store struct {
	mu       sync.RWMutex
	messages []models.ChatMessage
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) CreateChatMessage(_ context.Context, arg store.CreateChatMessageParams) (*models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := arg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	msg := models.ChatMessage{
		ID:          id,
		UserMessage: arg.UserMessage,
		BotResponse: arg.BotResponse,
		CreatedAt:   time.Now().UTC(),
	}
	s.messages = append(s.messages, msg)

	return &msg, nil
}

func (s *Store) ListChatMessages(_ context.Context, limit, offset int) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.messages) {
		return nil, nil
	}

	msgs := s.messages[offset:]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[:limit]
	}

	out := make([]models.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *Store) GetChatMessageByID(_ context.Context, id uuid.UUID) (*models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			msg := s.messages[i]
			return &msg, nil
		}
	}
	return nil, store.ErrNotFound
}
