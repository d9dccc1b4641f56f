package message

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/gramcare/sahayak/internal/domain"
)

func newTestRepo(t *testing.T) MessageRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.ChatMessage{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewMessageRepository(db)
}

func TestCreateAndFindRecentRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	in := &domain.ChatMessage{
		UserID:    "anonymous",
		SessionID: "session_1_abc",
		Role:      domain.RoleUser,
		Content:   "I have a fever",
		Language:  "english",
	}
	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindRecent(ctx, "anonymous", "session_1_abc", 1)
	if err != nil {
		t.Fatalf("find recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d messages, want 1", len(got))
	}
	if got[0].Role != in.Role || got[0].Content != in.Content {
		t.Fatalf("round trip mismatch: %+v", got[0])
	}
}

func TestFindRecentOrderAndLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		_, err := repo.Create(ctx, &domain.ChatMessage{
			UserID:    "u1",
			SessionID: "s1",
			Role:      role,
			Content:   fmt.Sprintf("turn %d", i),
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	got, err := repo.FindRecent(ctx, "u1", "s1", 4)
	if err != nil {
		t.Fatalf("find recent: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d messages, want 4", len(got))
	}
	// Oldest first within the window: turns 2..5.
	for i, m := range got {
		want := fmt.Sprintf("turn %d", i+2)
		if m.Content != want {
			t.Errorf("position %d: got %q, want %q", i, m.Content, want)
		}
	}
}

func TestFindRecentScopedToSession(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, _ = repo.Create(ctx, &domain.ChatMessage{UserID: "u1", SessionID: "s1", Role: domain.RoleUser, Content: "mine"})
	_, _ = repo.Create(ctx, &domain.ChatMessage{UserID: "u2", SessionID: "s1", Role: domain.RoleUser, Content: "other user"})
	_, _ = repo.Create(ctx, &domain.ChatMessage{UserID: "u1", SessionID: "s2", Role: domain.RoleUser, Content: "other session"})

	got, err := repo.FindRecent(ctx, "u1", "s1", 10)
	if err != nil {
		t.Fatalf("find recent: %v", err)
	}
	if len(got) != 1 || got[0].Content != "mine" {
		t.Fatalf("expected only the (u1, s1) message, got %+v", got)
	}
}

func TestCreateRejectsInvalid(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	cases := []*domain.ChatMessage{
		{UserID: "u1", SessionID: "s1", Role: domain.RoleUser, Content: "   "},
		{UserID: "u1", SessionID: "s1", Role: "system", Content: "hi"},
		{UserID: "", SessionID: "s1", Role: domain.RoleUser, Content: "hi"},
	}
	for i, m := range cases {
		if _, err := repo.Create(ctx, m); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestCountBySession(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, _ = repo.Create(ctx, &domain.ChatMessage{UserID: "u1", SessionID: "s1", Role: domain.RoleUser, Content: "a"})
	_, _ = repo.Create(ctx, &domain.ChatMessage{UserID: "u1", SessionID: "s1", Role: domain.RoleAssistant, Content: "b"})

	n, err := repo.CountBySession(ctx, "u1", "s1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
}
