package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(perMinute, daily int) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := NewRateLimiter(config.Limits{RequestsPerMinute: perMinute, DailyRequests: daily})
	l.now = clock.now
	return l, clock
}

func TestRateLimiter_BurstThenRefill(t *testing.T) {
	l, clock := newTestLimiter(3, 0)

	for range 3 {
		require.NoError(t, l.Allow(1))
	}
	assert.ErrorIs(t, l.Allow(1), ErrRateLimited)

	// other users have their own bucket
	assert.NoError(t, l.Allow(2))

	clock.advance(20 * time.Second)
	assert.NoError(t, l.Allow(1))
	assert.ErrorIs(t, l.Allow(1), ErrRateLimited)
}

func TestRateLimiter_DailyQuota(t *testing.T) {
	l, clock := newTestLimiter(0, 2)

	require.NoError(t, l.Allow(1))
	require.NoError(t, l.Allow(1))
	assert.ErrorIs(t, l.Allow(1), ErrDailyQuotaExceeded)

	clock.advance(12 * time.Hour)
	assert.NoError(t, l.Allow(1), "quota resets on the next UTC day")
}

func TestRateLimiter_RejectedRequestsDoNotSpendQuota(t *testing.T) {
	l, clock := newTestLimiter(1, 2)

	require.NoError(t, l.Allow(1))
	assert.ErrorIs(t, l.Allow(1), ErrRateLimited)
	assert.ErrorIs(t, l.Allow(1), ErrRateLimited)

	clock.advance(time.Minute)
	assert.NoError(t, l.Allow(1))

	clock.advance(time.Minute)
	assert.ErrorIs(t, l.Allow(1), ErrDailyQuotaExceeded)
}

func TestRateLimiter_Unlimited(t *testing.T) {
	l, _ := newTestLimiter(0, 0)

	for range 1000 {
		require.NoError(t, l.Allow(1))
	}
}

func TestRateLimiter_Sweep(t *testing.T) {
	l, clock := newTestLimiter(10, 100)

	require.NoError(t, l.Allow(1))
	clock.advance(20 * time.Minute)
	require.NoError(t, l.Allow(2))

	clock.advance(15 * time.Minute)
	// user 1 idle for 35m, user 2 for 15m; counters are from today
	assert.Equal(t, 1, l.Sweep(30*time.Minute))
	assert.Equal(t, 2, l.Len())

	clock.advance(24 * time.Hour)
	assert.Equal(t, 3, l.Sweep(30*time.Minute))
	assert.Equal(t, 0, l.Len())
}
