package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chatbot-backend/internal/models"
	"chatbot-backend/internal/store"

	"github.com/google/uuid"
)

// ErrEmptyMessage is returned when the send request carries no message text.
var ErrEmptyMessage = errors.New("message must not be empty")

// ErrBotResponse wraps responder failures so handlers can map them to 502.
var ErrBotResponse = errors.New("failed to generate bot response")

// Responder generates the bot side of a chat exchange.
type Responder interface {
	GenerateReply(ctx context.Context, userMessage string) (string, error)
}

// ChatService handles chat-related business logic.
type ChatService struct {
	store     store.Store
	responder Responder
}

// NewChatService creates a new ChatService.
func NewChatService(store store.Store, responder Responder) *ChatService {
	return &ChatService{
		store:     store,
		responder: responder,
	}
}

// mapMessageToResponse converts a DB chat message to an API response DTO.
func mapMessageToResponse(msg *models.ChatMessage) models.ChatMessageResponse {
	return models.ChatMessageResponse{
		ID:          msg.ID,
		UserMessage: msg.UserMessage,
		BotResponse: msg.BotResponse,
		CreatedAt:   msg.CreatedAt,
	}
}

// SendMessage generates a bot response for the user message and stores
// the resulting exchange. Nothing is persisted when generation fails.
func (s *ChatService) SendMessage(ctx context.Context, req models.SendMessageRequest) (*models.ChatMessageResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	reply, err := s.responder.GenerateReply(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBotResponse, err)
	}

	created, err := s.store.CreateChatMessage(ctx, store.CreateChatMessageParams{
		ID:          uuid.New(),
		UserMessage: message,
		BotResponse: reply,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat message in store: %w", err)
	}

	resp := mapMessageToResponse(created)
	return &resp, nil
}

// ListMessages retrieves stored exchanges in creation order (oldest
// first). A limit <= 0 returns everything.
func (s *ChatService) ListMessages(ctx context.Context, limit, offset int) (*models.ListMessagesResponse, error) {
	if offset < 0 {
		offset = 0
	}

	dbMsgs, err := s.store.ListChatMessages(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages from store: %w", err)
	}

	responseMsgs := make([]models.ChatMessageResponse, 0, len(dbMsgs))
	for i := range dbMsgs {
		responseMsgs = append(responseMsgs, mapMessageToResponse(&dbMsgs[i]))
	}

	return &models.ListMessagesResponse{Messages: responseMsgs}, nil
}

// GetMessageByID retrieves a single stored exchange.
// Propagates store.ErrNotFound when the id is unknown.
func (s *ChatService) GetMessageByID(ctx context.Context, id uuid.UUID) (*models.ChatMessageResponse, error) {
	dbMsg, err := s.store.GetChatMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err // Propagate not found error
		}
		return nil, fmt.Errorf("failed to get chat message from store: %w", err)
	}

	resp := mapMessageToResponse(dbMsg)
	return &resp, nil
}
