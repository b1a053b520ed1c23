package ratelimit

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// GlobalKey is the admission key used when the limiter runs with one
// shared budget for all callers.
const GlobalKey = "global"

// Config holds sliding-window limiter configuration.
type Config struct {
	// Limit is the maximum number of requests admitted per Window.
	Limit int
	// Window is the trailing interval the limit applies to.
	Window time.Duration
	// CleanupInterval controls how often idle keys are pruned.
	CleanupInterval time.Duration
}

// DefaultConfig mirrors the production budget: 60 requests per 20 seconds.
func DefaultConfig() Config {
	return Config{
		Limit:           60,
		Window:          20 * time.Second,
		CleanupInterval: 5 * time.Minute,
	}
}

// Limiter is an in-memory sliding-window rate limiter. Admission counts
// requests within the trailing window rather than fixed buckets: the
// 61st request inside any rolling 20-second span is denied while the 60
// before it were admitted.
type Limiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time

	limit  int
	window time.Duration

	now          func() time.Time
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

// NewLimiter creates a limiter and starts its background cleanup.
func NewLimiter(cfg Config) *Limiter {
	if cfg.Limit <= 0 || cfg.Window <= 0 {
		cfg = DefaultConfig()
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}

	l := &Limiter{
		windows:     make(map[string][]time.Time),
		limit:       cfg.Limit,
		window:      cfg.Window,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go l.startCleanup(cfg.CleanupInterval)
	return l
}

// Admit reports whether a request under the given key fits the trailing
// window budget. Denied requests are not recorded, so a rejected caller
// does not push its own window further out.
func (l *Limiter) Admit(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.windows[key][:0]
	for _, ts := range l.windows[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.limit {
		l.windows[key] = kept
		return false
	}

	l.windows[key] = append(kept, now)
	return true
}

// RetryAfter returns the window length in whole seconds, suitable for a
// Retry-After header.
func (l *Limiter) RetryAfter() string {
	secs := int(l.window / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

func (l *Limiter) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanupIdleKeys()
		case <-l.stopCleanup:
			return
		}
	}
}

// cleanupIdleKeys drops keys whose entire window has expired.
func (l *Limiter) cleanupIdleKeys() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	for key, stamps := range l.windows {
		if len(stamps) == 0 || !stamps[len(stamps)-1].After(cutoff) {
			delete(l.windows, key)
		}
	}
}

// ActiveKeys returns the number of currently tracked keys.
func (l *Limiter) ActiveKeys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// Stop shuts down the cleanup goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.shutdownOnce.Do(func() {
		close(l.stopCleanup)
	})
}

// Middleware gates every request through the limiter before any other
// handling. keyFunc picks the admission key per request; use a constant
// function for one shared budget, or derive the key from the client
// address for per-caller budgets.
func (l *Limiter) Middleware(keyFunc func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Admit(keyFunc(r)) {
				w.Header().Set("Retry-After", l.RetryAfter())
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"message":"Too many requests, please try again later"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP extracts the caller address for per-IP limiting, honoring
// proxy headers the way the reverse proxy sets them.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// Each proxy hop appends its address; the originating client
		// is the first entry.
		ip, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(ip)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
