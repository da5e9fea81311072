package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
)

const (
	defaultJanitorInterval = 5 * time.Minute
	defaultLimiterIdleTTL  = 30 * time.Minute
)

// Sweeper drops limiter state unused for longer than idle and reports how
// many entries it removed.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

type limiterJanitor struct {
	sweeper  Sweeper
	interval time.Duration
	idle     time.Duration
	logger   *logger.Logger
}

// NewLimiterJanitor creates a worker that calls sweeper.Sweep every
// cfg.JanitorInterval. Non-positive settings fall back to 5m / 30m.
func NewLimiterJanitor(sweeper Sweeper, cfg config.Workers, logger *logger.Logger) Worker {
	j := &limiterJanitor{
		sweeper:  sweeper,
		interval: cfg.JanitorInterval,
		idle:     cfg.LimiterIdleTTL,
		logger:   logger,
	}
	if j.interval <= 0 {
		j.interval = defaultJanitorInterval
	}
	if j.idle <= 0 {
		j.idle = defaultLimiterIdleTTL
	}
	return j
}

func (j *limiterJanitor) Run(ctx context.Context) {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	j.logger.Info().Dur("interval", j.interval).Dur("idle_ttl", j.idle).Msg("limiter janitor started")

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("limiter janitor stopped")
			return
		case <-t.C:
			if n := j.sweeper.Sweep(j.idle); n > 0 {
				j.logger.Debug().Int("evicted", n).Msg("evicted idle limiter state")
			}
		}
	}
}
