// File: internal/services/chat/service.go
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/gramcare/sahayak/internal/domain"
	"github.com/gramcare/sahayak/internal/repository/message"
	"github.com/gramcare/sahayak/internal/services/ai"
	"github.com/gramcare/sahayak/internal/services/directory"
	"github.com/gramcare/sahayak/internal/services/fallback"
	"github.com/gramcare/sahayak/internal/services/intent"
	"github.com/gramcare/sahayak/internal/services/language"
)

// Service runs one chat turn: language detection, intent routing, and
// either a directory listing or an LLM completion with the canned-advice
// fallback. Every turn is independent; the message repository is the only
// stateful dependency.
type Service struct {
	config      *Config
	messageRepo message.MessageRepository
	provider    ai.CompletionProvider
	directory   *directory.Service
	logger      Logger
}

func NewService(
	config *Config,
	messageRepo message.MessageRepository,
	provider ai.CompletionProvider,
	dir *directory.Service,
	logger Logger,
) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, &ChatError{Type: ErrTypeConfig, Operation: "config", Message: err.Error()}
	}
	return &Service{
		config:      config,
		messageRepo: messageRepo,
		provider:    provider,
		directory:   dir,
		logger:      logger,
	}, nil
}

// Respond handles a non-streaming chat turn. Provider failures never
// surface to the caller; they are substituted with the advice bank. The
// only error returned is input validation.
func (s *Service) Respond(ctx context.Context, req Request) (*Reply, error) {
	start := time.Now()

	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, NewValidationError("respond", "message is required")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = NewSessionID()
	}

	lang := s.resolveLanguage(req.Lang, msg)
	reply := &Reply{SessionID: sessionID, DetectedLanguage: lang}

	kind, spec := intent.Classify(msg, lang)
	switch kind {
	case intent.DoctorRequest:
		reply.Message = s.directory.DoctorListing(lang, spec)
		reply.DoctorSuggestion = s.directory.Suggest(lang, spec)
	case intent.ASHARequest:
		reply.Message = s.directory.ASHAListing(lang)
	default:
		text, fromFallback := s.complete(ctx, req, sessionID, lang, msg)
		reply.Message = text
		reply.FromFallback = fromFallback
		if fromFallback {
			reply.ModelName = "fallback-bank"
		} else {
			reply.ModelName = s.provider.ModelName()
		}
	}

	reply.ResponseTime = time.Since(start)
	s.persistTurn(req.UserID, sessionID, msg, lang, reply)

	s.logger.Info("chat turn completed",
		"session_id", sessionID,
		"intent", string(kind),
		"language", string(lang),
		"fallback", reply.FromFallback,
		"duration_ms", reply.ResponseTime.Milliseconds())
	return reply, nil
}

// complete runs the conversational path: prompt from trimmed history, one
// LLM call under a timeout, advice bank on any provider error.
func (s *Service) complete(ctx context.Context, req Request, sessionID string, lang language.Language, msg string) (string, bool) {
	prompt := BuildPrompt(lang, s.recentHistory(ctx, req, sessionID), msg, s.config.HistoryTurnMaxRunes)

	llmCtx, cancel := context.WithTimeout(ctx, s.config.LLMTimeout)
	defer cancel()

	text, err := s.provider.GetCompletion(llmCtx, prompt)
	if err != nil {
		if ai.IsRateLimit(err) {
			s.logger.Warn("provider rate limited, serving advice bank", "session_id", sessionID)
		} else {
			s.logger.Error("provider call failed, serving advice bank", "session_id", sessionID, "error", err)
		}
		return fallback.Advice(msg, lang), true
	}

	return TruncateWithEllipsis(strings.TrimSpace(text), s.config.ReplyMaxRunes), false
}

// recentHistory prefers client-supplied history and otherwise replays the
// last turns from the store. Read failures degrade to an empty context,
// never an error.
func (s *Service) recentHistory(ctx context.Context, req Request, sessionID string) []Turn {
	if len(req.History) > 0 {
		if len(req.History) > s.config.HistoryLimit {
			return req.History[len(req.History)-s.config.HistoryLimit:]
		}
		return req.History
	}
	if req.SessionID == "" {
		// Fresh session, nothing to replay.
		return nil
	}

	stored, err := s.messageRepo.FindRecent(ctx, req.UserID, sessionID, s.config.HistoryLimit)
	if err != nil {
		s.logger.Warn("history read failed, continuing without context",
			"session_id", sessionID, "error", err)
		return nil
	}

	turns := make([]Turn, 0, len(stored))
	for _, m := range stored {
		turns = append(turns, Turn{Role: m.Role, Message: m.Content})
	}
	return turns
}

// persistTurn appends the inbound and outbound messages. Writes are
// best-effort: failures are logged and the turn still succeeds. A fresh
// timeout context is used so a cancelled request cannot abort the write.
func (s *Service) persistTurn(userID, sessionID, userMsg string, lang language.Language, reply *Reply) {
	saveCtx, cancel := context.WithTimeout(context.Background(), s.config.SaveTimeout)
	defer cancel()

	s.saveMessage(saveCtx, &domain.ChatMessage{
		UserID:           userID,
		SessionID:        sessionID,
		Role:             domain.RoleUser,
		Content:          userMsg,
		Language:         string(lang),
		DetectedLanguage: string(reply.DetectedLanguage),
	})

	out := &domain.ChatMessage{
		UserID:         userID,
		SessionID:      sessionID,
		Role:           domain.RoleAssistant,
		Content:        reply.Message,
		Language:       string(lang),
		ResponseTimeMs: reply.ResponseTime.Milliseconds(),
		ModelName:      reply.ModelName,
	}
	if reply.DoctorSuggestion != nil {
		out.DoctorName = reply.DoctorSuggestion.Name
		out.DoctorCategory = reply.DoctorSuggestion.Category
		out.DoctorReason = reply.DoctorSuggestion.Reason
	}
	s.saveMessage(saveCtx, out)
}

func (s *Service) saveMessage(ctx context.Context, m *domain.ChatMessage) {
	if strings.TrimSpace(m.Content) == "" {
		// Absent directory data renders as an empty listing; there is
		// nothing to persist for such a turn.
		return
	}
	if _, err := s.messageRepo.Create(ctx, m); err != nil {
		s.logger.Error("failed to persist chat message",
			"session_id", m.SessionID, "role", m.Role, "error", err)
	}
}

// RecordFailure appends a best-effort error marker to the session log when
// the transport catches an internal failure.
func (s *Service) RecordFailure(userID, sessionID string, lang language.Language, apology string) {
	if sessionID == "" {
		return
	}
	saveCtx, cancel := context.WithTimeout(context.Background(), s.config.SaveTimeout)
	defer cancel()

	s.saveMessage(saveCtx, &domain.ChatMessage{
		UserID:    userID,
		SessionID: sessionID,
		Role:      domain.RoleAssistant,
		Content:   apology,
		Language:  string(lang),
		IsError:   true,
	})
}

// Transcript returns the full message log for a session, oldest first.
func (s *Service) Transcript(ctx context.Context, userID, sessionID string) ([]domain.ChatMessage, error) {
	return s.messageRepo.FindBySession(ctx, userID, sessionID)
}

func (s *Service) resolveLanguage(tag, msg string) language.Language {
	if lang, ok := language.Parse(tag); ok {
		return lang
	}
	return language.Detect(msg)
}
