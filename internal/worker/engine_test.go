package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingResolver struct{ calls atomic.Int64 }

func (r *countingResolver) Resolve(ctx context.Context, now time.Time) error {
	r.calls.Add(1)
	return nil
}

type countingScanner struct{ calls atomic.Int64 }

func (s *countingScanner) Scan(ctx context.Context, now time.Time) error {
	s.calls.Add(1)
	return nil
}

func TestEngine_TicksBothPasses(t *testing.T) {
	resolver := &countingResolver{}
	scanner := &countingScanner{}

	engine := NewEngine(resolver, scanner, 10*time.Millisecond, nil, nopLogger{})
	engine.Start()
	defer engine.Stop()

	// The immediate tick plus at least two interval ticks
	assert.Eventually(t, func() bool {
		return resolver.calls.Load() >= 3 && scanner.calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestEngine_StopHaltsTicking(t *testing.T) {
	resolver := &countingResolver{}
	scanner := &countingScanner{}

	engine := NewEngine(resolver, scanner, 10*time.Millisecond, nil, nopLogger{})
	engine.Start()
	engine.Stop()

	settled := resolver.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, resolver.calls.Load())
}

func TestEngine_StopIsIdempotent(t *testing.T) {
	engine := NewEngine(&countingResolver{}, &countingScanner{}, 10*time.Millisecond, nil, nopLogger{})
	engine.Start()
	engine.Stop()
	assert.NotPanics(t, func() { engine.Stop() })
}

func TestEngine_StopWithoutStartReturns(t *testing.T) {
	resolver := &countingResolver{}
	engine := NewEngine(resolver, &countingScanner{}, 10*time.Millisecond, nil, nopLogger{})

	done := make(chan struct{})
	go func() {
		engine.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop without Start did not return")
	}

	// A Start after Stop must not bring the loop up
	engine.Start()
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, resolver.calls.Load())
}
