package memory

import (
	"context"
	"errors"
	"testing"

	"chatbot-backend/internal/store"

	"github.com/google/uuid"
)

func TestCreateAndListInCreationOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	first, err := s.CreateChatMessage(ctx, store.CreateChatMessageParams{UserMessage: "one", BotResponse: "uno"})
	if err != nil {
		t.Fatalf("CreateChatMessage failed: %v", err)
	}
	second, err := s.CreateChatMessage(ctx, store.CreateChatMessageParams{UserMessage: "two", BotResponse: "dos"})
	if err != nil {
		t.Fatalf("CreateChatMessage failed: %v", err)
	}

	if first.CreatedAt.IsZero() || second.CreatedAt.IsZero() {
		t.Fatalf("expected non-zero created_at")
	}
	if second.CreatedAt.Before(first.CreatedAt) {
		t.Fatalf("created_at not monotonic: %v before %v", second.CreatedAt, first.CreatedAt)
	}

	msgs, err := s.ListChatMessages(ctx, 0, 0)
	if err != nil {
		t.Fatalf("ListChatMessages failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].UserMessage != "one" || msgs[1].UserMessage != "two" {
		t.Fatalf("unexpected order: %v, %v", msgs[0], msgs[1])
	}
}

func TestListLimitAndOffset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	for _, text := range []string{"a", "b", "c"} {
		if _, err := s.CreateChatMessage(ctx, store.CreateChatMessageParams{UserMessage: text, BotResponse: "r"}); err != nil {
			t.Fatalf("CreateChatMessage failed: %v", err)
		}
	}

	msgs, err := s.ListChatMessages(ctx, 1, 1)
	if err != nil {
		t.Fatalf("ListChatMessages failed: %v", err)
	}
	if len(msgs) != 1 || msgs[0].UserMessage != "b" {
		t.Fatalf("expected single message %q, got %#v", "b", msgs)
	}

	msgs, err = s.ListChatMessages(ctx, 0, 10)
	if err != nil {
		t.Fatalf("ListChatMessages failed: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected empty result for offset past end, got %d", len(msgs))
	}
}

func TestDuplicateContentGetsDistinctIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	first, err := s.CreateChatMessage(ctx, store.CreateChatMessageParams{UserMessage: "same", BotResponse: "same"})
	if err != nil {
		t.Fatalf("CreateChatMessage failed: %v", err)
	}
	second, err := s.CreateChatMessage(ctx, store.CreateChatMessageParams{UserMessage: "same", BotResponse: "same"})
	if err != nil {
		t.Fatalf("CreateChatMessage failed: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both %s", first.ID)
	}

	msgs, err := s.ListChatMessages(ctx, 0, 0)
	if err != nil {
		t.Fatalf("ListChatMessages failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(msgs))
	}
}

func TestGetChatMessageByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	created, err := s.CreateChatMessage(ctx, store.CreateChatMessageParams{UserMessage: "find me", BotResponse: "ok"})
	if err != nil {
		t.Fatalf("CreateChatMessage failed: %v", err)
	}

	got, err := s.GetChatMessageByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetChatMessageByID failed: %v", err)
	}
	if got.UserMessage != "find me" {
		t.Fatalf("unexpected message: %#v", got)
	}

	_, err = s.GetChatMessageByID(ctx, uuid.New())
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
