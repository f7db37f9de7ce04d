package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"chatbot-backend/internal/models"
	"chatbot-backend/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Compile-time check to ensure PostgresStore implements store.Store
var _ store.Store = (*PostgresStore)(nil)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const createChatMessage = `-- name: CreateChatMessage :one
INSERT INTO chat_messages (id, user_message, bot_response)
VALUES ($1, $2, $3)
RETURNING id, user_message, bot_response, created_at;
`

// CreateChatMessage inserts a new chat exchange. created_at is assigned
// by the database default at insertion time.
func (s *PostgresStore) CreateChatMessage(ctx context.Context, arg store.CreateChatMessageParams) (*models.ChatMessage, error) {
	// Generate UUID if not provided
	id := arg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := s.db.QueryRow(ctx, createChatMessage, id, arg.UserMessage, arg.BotResponse)

	var msg models.ChatMessage
	err := row.Scan(
		&msg.ID,
		&msg.UserMessage,
		&msg.BotResponse,
		&msg.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			log.Printf("ERROR [PostgresStore] CreateChatMessage: PostgreSQL error executing insert: Code=%s, Message=%s, Detail=%s", pgErr.Code, pgErr.Message, pgErr.Detail)
		}
		return nil, fmt.Errorf("database error creating chat message: %w", err)
	}

	return &msg, nil
}

const listChatMessages = `-- name: ListChatMessages :many
SELECT id, user_message, bot_response, created_at
FROM chat_messages
ORDER BY created_at ASC, id ASC
LIMIT $1 OFFSET $2;
`

// ListChatMessages returns exchanges in creation order. A nil limit is
// passed to the query when no limit was requested (LIMIT NULL means
// "all rows" in Postgres).
func (s *PostgresStore) ListChatMessages(ctx context.Context, limit, offset int) ([]models.ChatMessage, error) {
	if offset < 0 {
		offset = 0
	}
	var lim *int
	if limit > 0 {
		lim = &limit
	}

	rows, err := s.db.Query(ctx, listChatMessages, lim, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying chat messages: %w", err)
	}
	defer rows.Close()

	var msgs []models.ChatMessage
	for rows.Next() {
		var msg models.ChatMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.UserMessage,
			&msg.BotResponse,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning chat message row: %w", err)
		}
		msgs = append(msgs, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat message rows: %w", err)
	}

	return msgs, nil
}

const getChatMessageByID = `-- name: GetChatMessageByID :one
SELECT id, user_message, bot_response, created_at
FROM chat_messages
WHERE id = $1;
`

func (s *PostgresStore) GetChatMessageByID(ctx context.Context, id uuid.UUID) (*models.ChatMessage, error) {
	row := s.db.QueryRow(ctx, getChatMessageByID, id)

	var msg models.ChatMessage
	err := row.Scan(
		&msg.ID,
		&msg.UserMessage,
		&msg.BotResponse,
		&msg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning chat message: %w", err)
	}

	return &msg, nil
}
