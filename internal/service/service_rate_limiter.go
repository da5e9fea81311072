package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-code-tutor/internal/config"
)

// RateLimiter enforces the per-user chat budget: a token bucket refilled at
// RequestsPerMinute and a daily counter capped at DailyRequests. Non-positive
// limits disable the respective check. State lives in memory only.
type RateLimiter struct {
	mu sync.Mutex

	every time.Duration
	burst int
	daily int

	limiters map[int64]*limiterEntry
	counters map[int64]*dailyCounter

	now func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type dailyCounter struct {
	day   string
	count int
}

// NewRateLimiter constructs a limiter from cfg.
func NewRateLimiter(cfg config.Limits) *RateLimiter {
	l := &RateLimiter{
		daily:    cfg.DailyRequests,
		limiters: make(map[int64]*limiterEntry),
		counters: make(map[int64]*dailyCounter),
		now:      time.Now,
	}
	if cfg.RequestsPerMinute > 0 {
		l.every = time.Minute / time.Duration(cfg.RequestsPerMinute)
		l.burst = cfg.RequestsPerMinute
	}
	return l
}

// Allow records one request of userID. It returns ErrDailyQuotaExceeded or
// ErrRateLimited when the request must be rejected; a rejected request does
// not count against the daily quota.
func (l *RateLimiter) Allow(userID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	today := now.UTC().Format(time.DateOnly)

	counter, ok := l.counters[userID]
	if !ok || counter.day != today {
		counter = &dailyCounter{day: today}
		l.counters[userID] = counter
	}
	if l.daily > 0 && counter.count >= l.daily {
		return ErrDailyQuotaExceeded
	}

	if l.burst > 0 {
		entry, ok := l.limiters[userID]
		if !ok {
			entry = &limiterEntry{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
			l.limiters[userID] = entry
		}
		entry.lastSeen = now

		if !entry.limiter.AllowN(now, 1) {
			return ErrRateLimited
		}
	}

	counter.count++
	return nil
}

// Sweep evicts token buckets unused for longer than idle and daily counters
// of past days. It returns the number of evicted entries.
func (l *RateLimiter) Sweep(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	today := now.UTC().Format(time.DateOnly)
	evicted := 0

	for id, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > idle {
			delete(l.limiters, id)
			evicted++
		}
	}
	for id, counter := range l.counters {
		if counter.day != today {
			delete(l.counters, id)
			evicted++
		}
	}

	return evicted
}

// Len reports how many users currently hold limiter state.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return max(len(l.limiters), len(l.counters))
}
