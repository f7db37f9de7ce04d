package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"chatbot-backend/internal/models"
	"chatbot-backend/internal/services"
	"chatbot-backend/internal/store"
	"chatbot-backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ChatHandlers handles HTTP requests related to chat messages.
type ChatHandlers struct {
	chatService *services.ChatService
}

// NewChatHandlers creates a new ChatHandlers instance.
func NewChatHandlers(chatService *services.ChatService) *ChatHandlers {
	return &ChatHandlers{
		chatService: chatService,
	}
}

// HandleSendMessage handles POST /send. It stores the user message with
// a generated bot response and returns the stored exchange.
func (h *ChatHandlers) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.chatService.SendMessage(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessage):
			httputil.RespondError(w, http.StatusBadRequest, services.ErrEmptyMessage.Error())
		case errors.Is(err, services.ErrBotResponse):
			log.Printf("ERROR [ChatHandlers] HandleSendMessage: %v", err)
			httputil.RespondError(w, http.StatusBadGateway, "Failed to generate bot response")
		default:
			log.Printf("ERROR [ChatHandlers] HandleSendMessage: %v", err)
			httputil.RespondError(w, http.StatusInternalServerError, "Failed to store message")
		}
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, msg)
}

// HandleListMessages handles GET /. It returns stored exchanges in
// creation order. limit and offset query params are optional; invalid
// values fall back to the defaults (no limit, offset 0).
func (h *ChatHandlers) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	limit := 0
	offset := 0

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	msgs, err := h.chatService.ListMessages(r.Context(), limit, offset)
	if err != nil {
		log.Printf("ERROR [ChatHandlers] HandleListMessages: %v", err)
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to list messages")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, msgs)
}

// HandleGetMessageByID handles GET /messages/{messageID}.
func (h *ChatHandlers) HandleGetMessageByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "messageID")
	id, err := uuid.Parse(idStr)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid message ID")
		return
	}

	msg, err := h.chatService.GetMessageByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.RespondError(w, http.StatusNotFound, "Message not found")
			return
		}
		log.Printf("ERROR [ChatHandlers] HandleGetMessageByID: %v", err)
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to get message")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, msg)
}
