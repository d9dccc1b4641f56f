// File: internal/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Config holds the fixed-window limiter settings.
type Config struct {
	WindowSize    time.Duration
	MaxRequests   int
	CleanupPeriod time.Duration
	BanDuration   time.Duration
}

// DefaultChatConfig allows a steady conversational pace per client while
// keeping one misbehaving client from monopolizing the LLM budget.
func DefaultChatConfig() *Config {
	return &Config{
		WindowSize:    time.Minute,
		MaxRequests:   20,
		CleanupPeriod: 10 * time.Minute,
		BanDuration:   5 * time.Minute,
	}
}

// DefaultAuthConfig is stricter: login and registration see far fewer
// legitimate requests per client.
func DefaultAuthConfig() *Config {
	return &Config{
		WindowSize:    15 * time.Minute,
		MaxRequests:   5,
		CleanupPeriod: 30 * time.Minute,
		BanDuration:   30 * time.Minute,
	}
}

type window struct {
	count    int
	start    time.Time
	bannedAt *time.Time
}

// Limiter is an in-memory fixed-window rate limiter keyed by client
// identifier, with a temporary ban once the window is exceeded.
type Limiter struct {
	config  *Config
	windows map[string]*window
	mu      sync.Mutex
	stopCh  chan struct{}
}

// Decision reports the outcome of an Allow call, with the fields the
// transport needs for X-RateLimit-* and Retry-After headers.
type Decision struct {
	Allowed    bool
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
	Banned     bool
}

func New(config *Config) *Limiter {
	l := &Limiter{
		config:  config,
		windows: make(map[string]*window),
		stopCh:  make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow records one request for the identifier and reports whether it may
// proceed.
func (l *Limiter) Allow(identifier string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[identifier]
	if !ok {
		l.windows[identifier] = &window{count: 1, start: now}
		return Decision{
			Allowed:   true,
			Remaining: l.config.MaxRequests - 1,
			ResetTime: now.Add(l.config.WindowSize),
		}
	}

	if w.bannedAt != nil {
		if left := l.config.BanDuration - now.Sub(*w.bannedAt); left > 0 {
			return Decision{
				ResetTime:  w.bannedAt.Add(l.config.BanDuration),
				RetryAfter: left,
				Banned:     true,
			}
		}
		w.bannedAt = nil
		w.count = 0
		w.start = now
	}

	if now.Sub(w.start) > l.config.WindowSize {
		w.count = 0
		w.start = now
	}

	w.count++
	if w.count > l.config.MaxRequests {
		banned := now
		w.bannedAt = &banned
		return Decision{
			ResetTime:  now.Add(l.config.BanDuration),
			RetryAfter: l.config.BanDuration,
			Banned:     true,
		}
	}

	return Decision{
		Allowed:   true,
		Remaining: l.config.MaxRequests - w.count,
		ResetTime: w.start.Add(l.config.WindowSize),
	}
}

// Reset forgets the identifier, e.g. after a successful login.
func (l *Limiter) Reset(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, identifier)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stopCh:
			return
		}
	}
}

func (l *Limiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for identifier, w := range l.windows {
		windowExpired := w.bannedAt == nil && now.Sub(w.start) > l.config.WindowSize
		banExpired := w.bannedAt != nil && now.Sub(*w.bannedAt) > l.config.BanDuration
		if windowExpired || banExpired {
			delete(l.windows, identifier)
		}
	}
}

// Close stops the cleanup goroutine.
func (l *Limiter) Close() {
	close(l.stopCh)
}

// GetClientIP extracts the client IP, honoring proxy headers.
func GetClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
