package tabu

import (
	"sync"
	"time"
)

// Scheduler starts repeating timers for the Engine.
type Scheduler interface {
	Every(d time.Duration, fn func()) Timer
}

// Timer is a cancellable handle returned by a Scheduler. Stop may be called
// more than once.
type Timer interface {
	Stop()
}

// ClockScheduler runs timers on the wall clock. Post, when set, receives
// every tick callback instead of it being called on the ticker goroutine,
// which lets a single event loop own all Engine calls.
type ClockScheduler struct {
	Post func(fn func())
}

func (s ClockScheduler) Every(d time.Duration, fn func()) Timer {
	t := &clockTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-t.done:
				return
			case <-t.ticker.C:
				if s.Post != nil {
					s.Post(fn)
				} else {
					fn()
				}
			}
		}
	}()

	return t
}

type clockTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *clockTimer) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
