package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/junie-fighter/status"
)

// ErrSchedulerRunning is returned by Start when the loop is already active
var ErrSchedulerRunning = errors.New("scheduler already running")

// Ticker is advanced once per scheduler period with the measured delta in seconds
type Ticker interface {
	AdvanceTick(dt float64)
}

// ClockScheduler drives a Ticker at a fixed cadence
// A tick that finishes early idles for the remainder of the period
// An overrun is absorbed by the next measured delta
type ClockScheduler struct {
	target       Ticker
	clock        TimeProvider
	tickInterval time.Duration

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control
	mu       sync.Mutex
	running  atomic.Bool
	stopChan chan struct{}
	wg       sync.WaitGroup

	// Optional hooks, set before Start
	updateDone   chan<- struct{} // Non-blocking signal after each tick
	crashHandler func(any)

	// Cached metric pointers
	statTicks *atomic.Int64
	statDtMs  *status.Float
}

// NewClockScheduler creates a stopped scheduler
// reg may be nil when metrics are not needed
func NewClockScheduler(target Ticker, clock TimeProvider, tickInterval time.Duration, reg *status.Registry) *ClockScheduler {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &ClockScheduler{
		target:       target,
		clock:        clock,
		tickInterval: tickInterval,
		statTicks:    reg.Ints.Get("engine.ticks"),
		statDtMs:     reg.Floats.Get("engine.dt_ms"),
	}
}

// SetUpdateDone installs a channel signaled (non-blocking) after every tick
func (cs *ClockScheduler) SetUpdateDone(ch chan<- struct{}) {
	cs.updateDone = ch
}

// SetCrashHandler installs a handler for panics escaping the tick loop
// Without one the panic propagates
func (cs *ClockScheduler) SetCrashHandler(fn func(any)) {
	cs.crashHandler = fn
}

// Start launches the loop goroutine
func (cs *ClockScheduler) Start() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}

	stop := make(chan struct{})
	cs.stopChan = stop
	cs.wg.Add(1)
	go cs.schedulerLoop(stop)
	return nil
}

// Stop halts the loop and waits for it to exit
// Safe to call repeatedly; a stopped scheduler can be started again
func (cs *ClockScheduler) Stop() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.running.CompareAndSwap(true, false) {
		return
	}
	close(cs.stopChan)
	cs.wg.Wait()
}

// Run starts the loop and blocks until ctx is done
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if err := cs.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	cs.Stop()
	return nil
}

// IsRunning reports whether the loop is active
func (cs *ClockScheduler) IsRunning() bool {
	return cs.running.Load()
}

// TickCount returns the number of ticks since construction
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop(stop <-chan struct{}) {
	defer cs.wg.Done()
	if cs.crashHandler != nil {
		defer func() {
			if r := recover(); r != nil {
				cs.crashHandler(r)
			}
		}()
	}

	last := cs.clock.Now()
	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.C:
		}

		now := cs.clock.Now()
		dt := now.Sub(last)
		last = now

		cs.target.AdvanceTick(dt.Seconds())

		cs.tickCount.Add(1)
		cs.statTicks.Add(1)
		cs.statDtMs.Store(float64(dt) / float64(time.Millisecond))

		if cs.updateDone != nil {
			select {
			case cs.updateDone <- struct{}{}:
			default:
			}
		}

		sleep := cs.tickInterval - cs.clock.Now().Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
