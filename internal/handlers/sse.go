// File: internal/handlers/sse.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// setupSSEHeaders prepares the response for a Server-Sent Events stream.
func setupSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
}

// sendSSEChunk writes one JSON payload as an SSE data frame and flushes it.
func sendSSEChunk(w http.ResponseWriter, flusher http.Flusher, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("failed to marshal sse payload: %v", err)
		return
	}
	if _, err := w.Write([]byte("data: ")); err != nil {
		return
	}
	if _, err := w.Write(data); err != nil {
		return
	}
	if _, err := w.Write([]byte("\n\n")); err != nil {
		return
	}
	flusher.Flush()
}

// sseEvent is the wire shape of every stream frame.
type sseEvent struct {
	Type             string `json:"type"`
	Content          string `json:"content,omitempty"`
	SessionID        string `json:"sessionId,omitempty"`
	DetectedLanguage string `json:"detectedLanguage,omitempty"`
	Error            string `json:"error,omitempty"`
}
