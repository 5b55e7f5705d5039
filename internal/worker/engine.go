package worker

import (
	"context"
	"sync"
	"time"

	"github.com/labcentral/facility-service/pkg/metrics"
)

// Engine is the periodic reconciliation loop of the service.
//
// Every tick it recomputes equipment availability and scans for
// overdue bookings, in that order. One tick runs immediately on Start
// so the system is consistent before the first interval elapses.
type Engine struct {
	availability AvailabilityResolver
	overdue      OverdueScanner
	interval     time.Duration
	timeProvider TimeProvider
	collectors   *metrics.Metrics
	logger       Logger

	started   bool
	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewEngine creates a new reconciliation engine.
// collectors may be nil when metrics are disabled.
func NewEngine(
	availability AvailabilityResolver,
	overdue OverdueScanner,
	interval time.Duration,
	collectors *metrics.Metrics,
	logger Logger,
) *Engine {
	return &Engine{
		availability: availability,
		overdue:      overdue,
		interval:     interval,
		timeProvider: &RealTimeProvider{},
		collectors:   collectors,
		logger:       logger,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Start launches the tick loop in its own goroutine
func (e *Engine) Start() {
	e.startOnce.Do(func() {
		e.started = true
		go e.run()
	})
}

// Stop terminates the loop and waits for the in-flight tick to finish.
// Safe to call without a prior Start; the engine then simply refuses to
// start later.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		e.startOnce.Do(func() {}) // Start after Stop becomes a no-op
		close(e.stopCh)
		if e.started {
			<-e.doneCh
		}
	})
}

func (e *Engine) run() {
	defer close(e.doneCh)

	e.logger.Info("Engine: started, interval=%s", e.interval)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	e.tick()

	for {
		select {
		case <-e.stopCh:
			e.logger.Info("Engine: stopped")
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

func (e *Engine) tick() {
	ctx := context.Background()
	now := e.timeProvider.Now()

	if err := e.availability.Resolve(ctx, now); err != nil {
		e.logger.Error("Engine: availability resolve failed: %v", err)
	}

	if err := e.overdue.Scan(ctx, now); err != nil {
		e.logger.Error("Engine: overdue scan failed: %v", err)
	}

	if e.collectors != nil {
		e.collectors.EngineTicksTotal.Inc()
	}
}
