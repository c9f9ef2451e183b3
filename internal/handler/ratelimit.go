package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowStore counts requests per key within a time window. Implementations
// must be safe for concurrent use.
type WindowStore interface {
	// Take records one request for key and reports whether it is within
	// limit. When the limit is exceeded retryAfter says how long until the
	// window frees up.
	Take(ctx context.Context, key string, limit int, window time.Duration) (ok bool, retryAfter time.Duration, err error)
}

// RateLimiter provides per-client-IP rate limiting over a WindowStore.
// A store error fails open: the request is allowed and the error logged,
// so a Redis outage never takes the site down with it.
type RateLimiter struct {
	name  string
	limit int
	store WindowStore

	// OnLimit handles rejected requests. Defaults to a JSON 429 with a
	// Retry-After header; the browser-facing contact route replaces it
	// with a flash-and-redirect.
	OnLimit func(w http.ResponseWriter, r *http.Request, retryAfter time.Duration)
}

// NewRateLimiter creates a limiter allowing perMinute requests per client
// IP over a one-minute window. name namespaces keys so limiters sharing a
// store do not count each other's traffic.
func NewRateLimiter(name string, perMinute int, store WindowStore) *RateLimiter {
	return &RateLimiter{name: name, limit: perMinute, store: store}
}

// Middleware returns an http.Handler that enforces the limit.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.name + ":" + ClientIP(r)
		ok, retryAfter, err := rl.store.Take(r.Context(), key, rl.limit, time.Minute)
		if err != nil {
			slog.ErrorContext(r.Context(), "rate limit store failed, allowing request", "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if !ok {
			slog.WarnContext(r.Context(), "rate limit exceeded", "limiter", rl.name, "ip", ClientIP(r))
			if rl.OnLimit != nil {
				rl.OnLimit(w, r, retryAfter)
				return
			}
			w.Header().Set("Retry-After", retryAfterSeconds(retryAfter))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// ---------------------------------------------------------------------------
// In-memory sliding window
// ---------------------------------------------------------------------------

// MemoryWindowStore keeps per-key sliding windows of request timestamps in
// process memory. It is the default store when no Redis URL is configured.
type MemoryWindowStore struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
}

type clientWindow struct {
	timestamps []time.Time
}

// NewMemoryWindowStore creates an in-memory store and starts its cleanup
// loop.
func NewMemoryWindowStore() *MemoryWindowStore {
	s := &MemoryWindowStore{clients: make(map[string]*clientWindow)}
	go s.cleanupLoop()
	return s
}

func (s *MemoryWindowStore) Take(_ context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	now := time.Now()
	windowStart := now.Add(-window)

	s.mu.Lock()
	defer s.mu.Unlock()

	cw, ok := s.clients[key]
	if !ok {
		cw = &clientWindow{}
		s.clients[key] = cw
	}

	// Prune timestamps outside the window; in-place filter on shared backing array
	valid := cw.timestamps[:0]
	for _, ts := range cw.timestamps {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}
	cw.timestamps = valid

	if len(cw.timestamps) >= limit {
		oldest := cw.timestamps[0]
		return false, oldest.Add(window).Sub(now), nil
	}

	cw.timestamps = append(cw.timestamps, now)
	return true, 0, nil
}

// cleanupLoop periodically removes stale entries from the clients map.
func (s *MemoryWindowStore) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		windowStart := time.Now().Add(-time.Minute)
		s.mu.Lock()
		for key, cw := range s.clients {
			valid := cw.timestamps[:0]
			for _, ts := range cw.timestamps {
				if ts.After(windowStart) {
					valid = append(valid, ts)
				}
			}
			cw.timestamps = valid
			if len(cw.timestamps) == 0 {
				delete(s.clients, key)
			}
		}
		s.mu.Unlock()
	}
}

// ---------------------------------------------------------------------------
// Redis fixed window
// ---------------------------------------------------------------------------

// RedisWindowStore counts requests in Redis so limits hold across restarts
// and replicas. Uses a fixed window per key (INCR + EXPIRE).
type RedisWindowStore struct {
	rdb *redis.Client
}

// NewRedisWindowStore creates a Redis-backed store from the given client.
func NewRedisWindowStore(rdb *redis.Client) *RedisWindowStore {
	return &RedisWindowStore{rdb: rdb}
}

func (s *RedisWindowStore) Take(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	k := "ratelimit:" + key

	count, err := s.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit INCR: %w", err)
	}
	if count == 1 {
		if err := s.rdb.PExpire(ctx, k, window).Err(); err != nil {
			return false, 0, fmt.Errorf("rate limit EXPIRE: %w", err)
		}
	}
	if count > int64(limit) {
		ttl, err := s.rdb.PTTL(ctx, k).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}
		return false, ttl, nil
	}
	return true, 0, nil
}
