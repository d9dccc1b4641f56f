// File: internal/handlers/chat_handler.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"

	"github.com/gramcare/sahayak/internal/domain"
	"github.com/gramcare/sahayak/internal/middleware"
	"github.com/gramcare/sahayak/internal/services/chat"
)

const apologyMessage = "Sorry, something went wrong. Please try again."

type ChatHandler struct {
	ChatService *chat.Service
	Logger      chat.Logger
}

func NewChatHandler(cs *chat.Service, logger chat.Logger) *ChatHandler {
	return &ChatHandler{ChatService: cs, Logger: logger}
}

// chatRequest is the JSON body of both chat endpoints.
type chatRequest struct {
	Message   string      `json:"message"`
	SessionID string      `json:"sessionId"`
	Lang      string      `json:"lang"`
	History   []chat.Turn `json:"conversationHistory"`
}

// chatResponse is the JSON body of the non-streaming endpoint.
type chatResponse struct {
	Success          bool                     `json:"success"`
	Message          string                   `json:"message,omitempty"`
	DoctorSuggestion *domain.DoctorSuggestion `json:"doctorSuggestion,omitempty"`
	DetectedLanguage string                   `json:"detectedLanguage,omitempty"`
	SessionID        string                   `json:"sessionId,omitempty"`
	Error            string                   `json:"error,omitempty"`
}

// HandleChat processes one chat turn and replies with the full answer.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFrom(r.Context())

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	reply, err := h.ChatService.Respond(r.Context(), chat.Request{
		UserID:    userID,
		SessionID: req.SessionID,
		Message:   req.Message,
		Lang:      req.Lang,
		History:   req.History,
	})
	if err != nil {
		if chat.IsValidation(err) {
			writeError(w, "Message is required", http.StatusBadRequest)
			return
		}
		h.Logger.Error("chat turn failed", "user_id", userID, "error", err)
		h.ChatService.RecordFailure(userID, req.SessionID, "", apologyMessage)
		writeJSON(w, http.StatusInternalServerError, chatResponse{
			Success:   false,
			Message:   apologyMessage,
			SessionID: req.SessionID,
			Error:     "internal error",
		})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Success:          true,
		Message:          reply.Message,
		DoctorSuggestion: reply.DoctorSuggestion,
		DetectedLanguage: string(reply.DetectedLanguage),
		SessionID:        reply.SessionID,
	})
}

// HandleChatStream processes one chat turn over Server-Sent Events.
func (h *ChatHandler) HandleChatStream(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFrom(r.Context())

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}
	setupSSEHeaders(w)

	// Mint the session id up front so every chunk frame carries it, not
	// just the completion frame.
	if req.SessionID == "" {
		req.SessionID = chat.NewSessionID()
	}

	reply, err := h.ChatService.Stream(r.Context(), chat.Request{
		UserID:    userID,
		SessionID: req.SessionID,
		Message:   req.Message,
		Lang:      req.Lang,
		History:   req.History,
	}, func(chunk string) error {
		sendSSEChunk(w, flusher, sseEvent{Type: "chunk", Content: chunk, SessionID: req.SessionID})
		return nil
	})
	if err != nil {
		if ce, isChat := err.(*chat.ChatError); isChat && ce.Type == chat.ErrTypeCancelled {
			// Client gone, nothing left to write.
			return
		}
		msg := "internal error"
		if chat.IsValidation(err) {
			msg = "Message is required"
		} else {
			h.Logger.Error("chat stream failed", "user_id", userID, "error", err)
		}
		sendSSEChunk(w, flusher, sseEvent{Type: "error", Error: msg, SessionID: req.SessionID})
		return
	}

	sendSSEChunk(w, flusher, sseEvent{
		Type:             "complete",
		SessionID:        reply.SessionID,
		DetectedLanguage: string(reply.DetectedLanguage),
	})
}

// historyMessage is one transcript entry; assistant markdown is also
// rendered to HTML for clients that display rich text.
type historyMessage struct {
	Role             string `json:"role"`
	Content          string `json:"content"`
	ContentHTML      string `json:"contentHtml,omitempty"`
	Language         string `json:"language"`
	DetectedLanguage string `json:"detectedLanguage,omitempty"`
	DoctorName       string `json:"doctorName,omitempty"`
	IsError          bool   `json:"isError,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

// HandleChatHistory returns the full transcript of one session.
func (h *ChatHandler) HandleChatHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFrom(r.Context())

	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		writeError(w, "Session ID is required", http.StatusBadRequest)
		return
	}

	messages, err := h.ChatService.Transcript(r.Context(), userID, sessionID)
	if err != nil {
		h.Logger.Error("history read failed", "user_id", userID, "session_id", sessionID, "error", err)
		writeError(w, "Could not retrieve history", http.StatusInternalServerError)
		return
	}

	out := make([]historyMessage, 0, len(messages))
	for _, m := range messages {
		entry := historyMessage{
			Role:             m.Role,
			Content:          m.Content,
			Language:         m.Language,
			DetectedLanguage: m.DetectedLanguage,
			DoctorName:       m.DoctorName,
			IsError:          m.IsError,
			CreatedAt:        m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if m.Role == domain.RoleAssistant {
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(m.Content), &buf); err == nil {
				entry.ContentHTML = buf.String()
			}
		}
		out = append(out, entry)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"sessionId": sessionID,
		"messages":  out,
	})
}

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]interface{}{"success": false, "error": message})
}
