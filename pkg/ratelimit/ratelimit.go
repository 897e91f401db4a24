// Package ratelimit provides a pluggable request rate limiter keyed by
// client identity. The Store decides whether a request is allowed; the
// bundled in-memory store counts requests in fixed one-minute windows.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/asifrahman/medibook/pkg/utils"
)

// Outcome reports a single admission decision.
type Outcome struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Store decides whether the request identified by key is admitted.
type Store interface {
	Check(key string) Outcome
}

type window struct {
	start time.Time
	count int
}

// MemoryStore is a fixed-window counter held in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	windows map[string]*window
	now     func() time.Time
}

func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{
		limit:   limit,
		period:  time.Minute,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (s *MemoryStore) Check(key string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= s.period {
		w = &window{start: now}
		s.windows[key] = w
	}

	if w.count >= s.limit {
		return Outcome{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: s.period - now.Sub(w.start),
		}
	}
	w.count++
	return Outcome{Allowed: true, Remaining: s.limit - w.count}
}

// Middleware rejects requests over the limit with 429. Keys by remote IP.
func Middleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				key = r.RemoteAddr
			}
			out := store.Check(key)
			if !out.Allowed {
				w.Header().Set("Retry-After", out.RetryAfter.Round(time.Second).String())
				utils.RespondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
