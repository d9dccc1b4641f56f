package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAllowWithinWindow(t *testing.T) {
	l := New(&Config{WindowSize: time.Minute, MaxRequests: 3, CleanupPeriod: time.Hour, BanDuration: time.Minute})
	defer l.Close()

	for i := 0; i < 3; i++ {
		if d := l.Allow("1.2.3.4"); !d.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	d := l.Allow("1.2.3.4")
	if d.Allowed || !d.Banned {
		t.Fatalf("fourth request should be banned, got %+v", d)
	}
	if d.RetryAfter <= 0 {
		t.Fatal("banned decision should carry a retry delay")
	}
}

func TestIdentifiersAreIndependent(t *testing.T) {
	l := New(&Config{WindowSize: time.Minute, MaxRequests: 1, CleanupPeriod: time.Hour, BanDuration: time.Minute})
	defer l.Close()

	l.Allow("a")
	if d := l.Allow("b"); !d.Allowed {
		t.Fatal("a different client must not inherit another client's count")
	}
}

func TestResetForgetsClient(t *testing.T) {
	l := New(&Config{WindowSize: time.Minute, MaxRequests: 1, CleanupPeriod: time.Hour, BanDuration: time.Minute})
	defer l.Close()

	l.Allow("a")
	l.Allow("a")
	l.Reset("a")
	if d := l.Allow("a"); !d.Allowed {
		t.Fatal("reset should clear the ban")
	}
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	if ip := GetClientIP(r); ip != "10.0.0.1" {
		t.Fatalf("ip = %q", ip)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if ip := GetClientIP(r); ip != "203.0.113.9" {
		t.Fatalf("forwarded ip = %q", ip)
	}
}
