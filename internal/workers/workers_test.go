// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/stretchr/testify/assert"
)

// countingWorker counts Run calls and blocks until ctx is done.
type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_RunStartsAllAndWaitReturnsAfterCancel(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	ws.Run(ctx)

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()

	done := make(chan struct{})
	go func() {
		ws.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancel")
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic or block on an empty set
	ws.Run(context.Background())
	ws.Wait()
}

type fakeSweeper struct {
	calls atomic.Int32
	idle  atomic.Int64
}

func (f *fakeSweeper) Sweep(idle time.Duration) int {
	f.calls.Add(1)
	f.idle.Store(int64(idle))
	return 1
}

func TestLimiterJanitor_SweepsOnTick(t *testing.T) {
	sweeper := &fakeSweeper{}
	j := NewLimiterJanitor(sweeper, config.Workers{JanitorInterval: 5 * time.Millisecond, LimiterIdleTTL: time.Minute}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(time.Minute), sweeper.idle.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestLimiterJanitor_Defaults(t *testing.T) {
	j := NewLimiterJanitor(&fakeSweeper{}, config.Workers{}, logger.Nop()).(*limiterJanitor)

	assert.Equal(t, defaultJanitorInterval, j.interval)
	assert.Equal(t, defaultLimiterIdleTTL, j.idle)
}
