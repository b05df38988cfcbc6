// Package limiter implements fixed-window request counting for rate limiting.
//
// Counters live in Redis so the limit holds across replicas. When Redis is
// not reachable the limiter falls back to an in-process window so a broken
// Redis never takes the API down with it.
package limiter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artcocktail/artcocktail/config"
)

// Limiter counts hits per key inside a fixed time window.
type Limiter struct {
	rdb    *redis.Client
	window time.Duration
	max    int

	mu     sync.Mutex
	local  map[string]*window
	stopGC chan struct{}
	gcOnce sync.Once
}

type window struct {
	count   int
	resetAt time.Time
}

// New builds a Limiter allowing max hits per window. Redis connectivity is
// checked once at construction; on failure the limiter runs purely in memory.
func New(max int, windowDur time.Duration) *Limiter {
	l := &Limiter{
		window: windowDur,
		max:    max,
		local:  make(map[string]*window),
		stopGC: make(chan struct{}),
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err == nil {
		l.rdb = rdb
	} else {
		_ = rdb.Close()
	}

	return l
}

// NewInMemory builds a Limiter that never touches Redis. Used in tests.
func NewInMemory(max int, windowDur time.Duration) *Limiter {
	return &Limiter{
		window: windowDur,
		max:    max,
		local:  make(map[string]*window),
		stopGC: make(chan struct{}),
	}
}

// Allow records one hit for key and reports whether it is within the limit.
func (l *Limiter) Allow(key string) bool {
	if l.rdb != nil {
		if ok, err := l.allowRedis(key); err == nil {
			return ok
		}
		// Redis hiccup: fall through to the local window.
	}
	return l.allowLocal(key)
}

func (l *Limiter) allowRedis(key string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	rkey := fmt.Sprintf("ratelimit:%s", key)
	count, err := l.rdb.Incr(ctx, rkey).Result()
	if err != nil {
		return false, err
	}
	// The expiry marks the start of the window, so it is set only when the
	// key is created. Refreshing it on every hit would extend the window
	// forever under steady traffic.
	if count == 1 {
		if err := l.rdb.Expire(ctx, rkey, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.max), nil
}

func (l *Limiter) allowLocal(key string) bool {
	l.gcOnce.Do(func() { go l.gc() })

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.local[key]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(l.window)}
		l.local[key] = w
	}
	w.count++
	return w.count <= l.max
}

// gc evicts expired local windows so long-running servers do not grow
// unbounded.
func (l *Limiter) gc() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			l.mu.Lock()
			for key, w := range l.local {
				if now.After(w.resetAt) {
					delete(l.local, key)
				}
			}
			l.mu.Unlock()
		case <-l.stopGC:
			return
		}
	}
}

// Close releases the Redis connection and stops the local GC loop.
func (l *Limiter) Close() error {
	close(l.stopGC)
	if l.rdb != nil {
		return l.rdb.Close()
	}
	return nil
}
