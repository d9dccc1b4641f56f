// File: internal/services/chat/streaming.go
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/gramcare/sahayak/internal/services/ai"
	"github.com/gramcare/sahayak/internal/services/fallback"
	"github.com/gramcare/sahayak/internal/services/intent"
	"github.com/gramcare/sahayak/internal/services/language"
)

// Stream handles an incremental chat turn. Each piece of assistant text is
// forwarded to onChunk as it is produced; concatenating the chunks yields
// exactly the text persisted for the turn. A non-nil error from onChunk
// aborts the stream (client gone), skipping the final persistence write.
//
// On a mid-stream provider failure the accumulated partial text is
// discarded and the advice-bank text is emitted word by word with a small
// delay, so the client sees a uniform streaming experience on both paths.
func (s *Service) Stream(ctx context.Context, req Request, onChunk func(string) error) (*Reply, error) {
	start := time.Now()

	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, NewValidationError("stream", "message is required")
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
		if err := s.emit(ctx, onChunk, reply.Message); err != nil {
			return nil, err
		}
	case intent.ASHARequest:
		reply.Message = s.directory.ASHAListing(lang)
		if err := s.emit(ctx, onChunk, reply.Message); err != nil {
			return nil, err
		}
	default:
		text, fromFallback, err := s.streamCompletion(ctx, req, sessionID, lang, msg, onChunk)
		if err != nil {
			return nil, err
		}
		reply.Message = text
		reply.FromFallback = fromFallback
		if fromFallback {
			reply.ModelName = "fallback-bank"
		} else {
			reply.ModelName = s.provider.ModelName()
		}
	}

	reply.ResponseTime = time.Since(start)

	// The accumulated text is written exactly once, after streaming ends.
	// A cancelled client skips the write.
	if ctx.Err() != nil {
		return nil, &ChatError{Type: ErrTypeCancelled, Operation: "stream", Message: "client disconnected", SessionID: sessionID, Cause: ctx.Err()}
	}
	s.persistTurn(req.UserID, sessionID, msg, lang, reply)

	s.logger.Info("stream turn completed",
		"session_id", sessionID,
		"intent", string(kind),
		"language", string(lang),
		"fallback", reply.FromFallback,
		"duration_ms", reply.ResponseTime.Milliseconds())
	return reply, nil
}

// streamCompletion runs the conversational streaming path.
func (s *Service) streamCompletion(ctx context.Context, req Request, sessionID string, lang language.Language, msg string, onChunk func(string) error) (string, bool, error) {
	prompt := BuildPrompt(lang, s.recentHistory(ctx, req, sessionID), msg, s.config.HistoryTurnMaxRunes)

	llmCtx, cancel := context.WithTimeout(ctx, s.config.LLMTimeout)
	defer cancel()

	var acc strings.Builder
	streamErr := s.provider.StreamCompletion(llmCtx, prompt, func(delta string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		acc.WriteString(delta)
		return onChunk(delta)
	})

	if streamErr == nil {
		return acc.String(), false, nil
	}
	if ctx.Err() != nil {
		// Client disconnect, not a provider failure.
		return "", false, &ChatError{Type: ErrTypeCancelled, Operation: "stream", Message: "client disconnected", SessionID: sessionID, Cause: ctx.Err()}
	}

	if ai.IsRateLimit(streamErr) {
		s.logger.Warn("provider rate limited mid-stream, serving advice bank", "session_id", sessionID)
	} else {
		s.logger.Error("provider stream failed, serving advice bank", "session_id", sessionID, "error", streamErr)
	}

	// Discard the partial text; the fallback is streamed from scratch.
	text := fallback.Advice(msg, lang)
	if err := s.emitWordByWord(ctx, onChunk, text); err != nil {
		return "", true, err
	}
	return text, true, nil
}

// emitWordByWord renders canned text as a synthetic stream. The delay is a
// pacing device, not a correctness mechanism; the context is checked before
// every word so a disconnected client stops the loop.
func (s *Service) emitWordByWord(ctx context.Context, onChunk func(string) error, text string) error {
	if err := ctx.Err(); err != nil {
		return &ChatError{Type: ErrTypeCancelled, Operation: "stream", Message: "client disconnected", Cause: err}
	}
	words := strings.Fields(text)
	for i, w := range words {
		if i > 0 {
			select {
			case <-ctx.Done():
				return &ChatError{Type: ErrTypeCancelled, Operation: "stream", Message: "client disconnected", Cause: ctx.Err()}
			case <-time.After(s.config.FallbackWordDelay):
			}
			w = " " + w
		}
		if err := onChunk(w); err != nil {
			return NewStreamingError("emit", "client write failed", "", err)
		}
	}
	return nil
}

func (s *Service) emit(ctx context.Context, onChunk func(string) error, text string) error {
	if text == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return &ChatError{Type: ErrTypeCancelled, Operation: "stream", Message: "client disconnected", Cause: err}
	}
	if err := onChunk(text); err != nil {
		return NewStreamingError("emit", "client write failed", "", err)
	}
	return nil
}
