package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetCompletionAgainstCompatibleBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Drink water."}}]}`))
	}))
	defer backend.Close()

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = backend.URL

	provider, err := NewOpenAIProvider(cfg)
	if err != nil {
		t.Fatalf("provider: %v", err)
	}

	text, err := provider.GetCompletion(context.Background(), "hello")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if text != "Drink water." {
		t.Fatalf("text = %q", text)
	}
}

func TestGetCompletionConfiguredTimeout(t *testing.T) {
	release := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer backend.Close()
	defer close(release)

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = backend.URL
	cfg.Timeout = 50 * time.Millisecond

	provider, err := NewOpenAIProvider(cfg)
	if err != nil {
		t.Fatalf("provider: %v", err)
	}

	start := time.Now()
	_, err = provider.GetCompletion(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("call did not honor the configured timeout, took %v", elapsed)
	}
}

func TestNewOpenAIProviderRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := NewOpenAIProvider(cfg); err == nil {
		t.Fatal("expected missing api key to be rejected")
	}
}
