// File: internal/services/chat/config.go
package chat

import (
	"fmt"
	"time"
)

type Config struct {
	// Context Configuration
	HistoryLimit        int // messages of replayed context (4 = last 2 exchanges)
	HistoryTurnMaxRunes int // per-message cap when embedded in the prompt

	// Response Configuration
	ReplyMaxRunes int // non-streaming replies are truncated to this length

	// Streaming Configuration
	FallbackWordDelay time.Duration // pause between words of a synthetic stream

	// Performance Configuration
	LLMTimeout  time.Duration // per-call timeout on the completion endpoint
	SaveTimeout time.Duration // timeout for best-effort persistence writes
}

func (c *Config) Validate() error {
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive")
	}
	if c.HistoryTurnMaxRunes <= 0 {
		return fmt.Errorf("history_turn_max_runes must be positive")
	}
	if c.ReplyMaxRunes <= 0 {
		return fmt.Errorf("reply_max_runes must be positive")
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("llm_timeout must be positive")
	}
	if c.SaveTimeout <= 0 {
		return fmt.Errorf("save_timeout must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		HistoryLimit:        4,
		HistoryTurnMaxRunes: 100,
		ReplyMaxRunes:       300,
		FallbackWordDelay:   40 * time.Millisecond,
		LLMTimeout:          30 * time.Second,
		SaveTimeout:         5 * time.Second,
	}
}
