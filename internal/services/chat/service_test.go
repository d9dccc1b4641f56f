package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gramcare/sahayak/internal/domain"
	"github.com/gramcare/sahayak/internal/services/directory"
	"github.com/gramcare/sahayak/internal/services/language"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{})  {}

// memRepo is an in-memory MessageRepository for tests.
type memRepo struct {
	mu        sync.Mutex
	msgs      []domain.ChatMessage
	failReads bool
	failAll   bool
}

func (r *memRepo) Create(_ context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return nil, errors.New("store down")
	}
	m.ID = uint(len(r.msgs) + 1)
	r.msgs = append(r.msgs, *m)
	return m, nil
}

func (r *memRepo) FindRecent(_ context.Context, userID, sessionID string, limit int) ([]domain.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failReads || r.failAll {
		return nil, errors.New("store down")
	}
	var out []domain.ChatMessage
	for _, m := range r.msgs {
		if m.UserID == userID && m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r *memRepo) FindBySession(_ context.Context, userID, sessionID string) ([]domain.ChatMessage, error) {
	return r.FindRecent(context.Background(), userID, sessionID, 1<<30)
}

func (r *memRepo) CountBySession(_ context.Context, userID, sessionID string) (int64, error) {
	msgs, err := r.FindBySession(context.Background(), userID, sessionID)
	return int64(len(msgs)), err
}

// fakeProvider scripts the LLM behavior.
type fakeProvider struct {
	reply      string
	err        error
	deltas     []string
	streamErr  error
	lastPrompt string
}

func (f *fakeProvider) ModelName() string { return "test-model" }

func (f *fakeProvider) GetCompletion(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeProvider) StreamCompletion(_ context.Context, prompt string, onDelta func(string) error) error {
	f.lastPrompt = prompt
	for _, d := range f.deltas {
		if err := onDelta(d); err != nil {
			return err
		}
	}
	return f.streamErr
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.FallbackWordDelay = time.Millisecond
	return cfg
}

func newTestService(t *testing.T, repo *memRepo, provider *fakeProvider) *Service {
	t.Helper()
	svc, err := NewService(testConfig(), repo, provider, directory.NewService(), noopLogger{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestRespondFeverRateLimitScenario(t *testing.T) {
	repo := &memRepo{}
	provider := &fakeProvider{err: errors.New("request failed: 429 Too Many Requests")}
	svc := newTestService(t, repo, provider)

	reply, err := svc.Respond(context.Background(), Request{UserID: "anonymous", Message: "I have a fever"})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}

	const want = "For fever: Rest, drink water, and contact a doctor if temperature is above 102°F."
	if reply.Message != want {
		t.Fatalf("message = %q, want %q", reply.Message, want)
	}
	if reply.DetectedLanguage != language.English {
		t.Fatalf("detected language = %q, want english", reply.DetectedLanguage)
	}
	if !reply.FromFallback || reply.ModelName != "fallback-bank" {
		t.Fatalf("expected fallback metadata, got %+v", reply)
	}
	if reply.SessionID == "" || !strings.HasPrefix(reply.SessionID, "session_") {
		t.Fatalf("bad session id %q", reply.SessionID)
	}

	// Both halves of the turn persisted, not marked as errors.
	if len(repo.msgs) != 2 {
		t.Fatalf("persisted %d messages, want 2", len(repo.msgs))
	}
	if repo.msgs[0].Role != domain.RoleUser || repo.msgs[1].Role != domain.RoleAssistant {
		t.Fatalf("unexpected roles: %+v", repo.msgs)
	}
	if repo.msgs[1].IsError {
		t.Fatal("fallback reply must not be marked as an error")
	}
}

func TestRespondDoctorListScenario(t *testing.T) {
	repo := &memRepo{}
	provider := &fakeProvider{reply: "should not be called"}
	svc := newTestService(t, repo, provider)

	reply, err := svc.Respond(context.Background(), Request{UserID: "anonymous", Message: "Show me doctor list"})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}

	if !strings.Contains(reply.Message, "Dr. Rajesh Kumar") {
		t.Fatalf("expected general physician listing, got:\n%s", reply.Message)
	}
	if reply.DoctorSuggestion == nil || reply.DoctorSuggestion.Category != "general" {
		t.Fatalf("expected general suggestion, got %+v", reply.DoctorSuggestion)
	}
	if provider.lastPrompt != "" {
		t.Fatal("directory intents must not call the LLM")
	}
	if repo.msgs[1].DoctorName == "" {
		t.Fatal("suggestion should be persisted with the assistant message")
	}
}

func TestRespondHindiFeverFallback(t *testing.T) {
	repo := &memRepo{}
	provider := &fakeProvider{err: errors.New("You exceeded your current quota")}
	svc := newTestService(t, repo, provider)

	reply, err := svc.Respond(context.Background(), Request{UserID: "anonymous", Message: "मुझे बुखार है"})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply.DetectedLanguage != language.Hindi {
		t.Fatalf("detected = %q, want hindi", reply.DetectedLanguage)
	}
	if !strings.Contains(reply.Message, "बुखार के लिए") {
		t.Fatalf("expected hindi fever advice, got %q", reply.Message)
	}
}

func TestRespondTruncatesLongReplies(t *testing.T) {
	repo := &memRepo{}
	provider := &fakeProvider{reply: strings.Repeat("a", 400)}
	svc := newTestService(t, repo, provider)

	reply, err := svc.Respond(context.Background(), Request{UserID: "u1", Message: "tell me about hydration"})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if len(reply.Message) != 303 || !strings.HasSuffix(reply.Message, "...") {
		t.Fatalf("expected 300 runes plus ellipsis, got %d chars", len(reply.Message))
	}
	if reply.ModelName != "test-model" || reply.FromFallback {
		t.Fatalf("unexpected metadata: %+v", reply)
	}
}

func TestRespondEmptyMessage(t *testing.T) {
	svc := newTestService(t, &memRepo{}, &fakeProvider{})
	_, err := svc.Respond(context.Background(), Request{UserID: "u1", Message: "   "})
	if err == nil || !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRespondSurvivesStoreFailure(t *testing.T) {
	repo := &memRepo{failAll: true}
	provider := &fakeProvider{reply: "Drink plenty of water."}
	svc := newTestService(t, repo, provider)

	reply, err := svc.Respond(context.Background(), Request{UserID: "u1", SessionID: "session_1_x", Message: "water advice please"})
	if err != nil {
		t.Fatalf("persistence failure must not abort the turn: %v", err)
	}
	if reply.Message != "Drink plenty of water." {
		t.Fatalf("unexpected reply %q", reply.Message)
	}
}

func TestRespondUsesStoredHistory(t *testing.T) {
	repo := &memRepo{}
	provider := &fakeProvider{reply: "ok"}
	svc := newTestService(t, repo, provider)

	seed := []domain.ChatMessage{
		{UserID: "u1", SessionID: "s1", Role: domain.RoleUser, Content: "first question"},
		{UserID: "u1", SessionID: "s1", Role: domain.RoleAssistant, Content: strings.Repeat("x", 150)},
	}
	for i := range seed {
		if _, err := repo.Create(context.Background(), &seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	_, err := svc.Respond(context.Background(), Request{UserID: "u1", SessionID: "s1", Message: "follow up question"})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}

	if !strings.Contains(provider.lastPrompt, "first question") {
		t.Fatal("prompt should embed stored history")
	}
	// Embedded history messages are truncated to 100 runes.
	if strings.Contains(provider.lastPrompt, strings.Repeat("x", 101)) {
		t.Fatal("embedded history message was not truncated")
	}
	if !strings.Contains(provider.lastPrompt, strings.Repeat("x", 100)) {
		t.Fatal("expected truncated history message in prompt")
	}
}

func TestRecordFailure(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo, &fakeProvider{})

	svc.RecordFailure("u1", "s1", language.English, "Sorry, something went wrong. Please try again.")
	if len(repo.msgs) != 1 || !repo.msgs[0].IsError {
		t.Fatalf("expected one error-marked message, got %+v", repo.msgs)
	}
}
