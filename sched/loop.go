// Package sched provides a single-threaded event loop with cancellable timers.
//
// Timers and posted functions always run on the goroutine that drives the
// loop, either through RunDue (from a frame callback) or Run (blocking).
package sched

import (
	"context"
	"time"
)

// Handle identifies a scheduled timer. The zero Handle is never issued.
type Handle uint64

type timer struct {
	deadline time.Time
	seq      uint64
	fn       func()
}

// Loop is a cooperative scheduler. Only Post may be called from other
// goroutines.
type Loop struct {
	now    func() time.Time
	seq    uint64
	timers map[Handle]*timer
	posted chan func()
}

// Option configures a Loop
type Option func(*Loop)

// WithClock replaces time.Now as the loop's time source
func WithClock(now func() time.Time) Option {
	return func(l *Loop) {
		l.now = now
	}
}

// NewLoop creates an idle loop
func NewLoop(opts ...Option) *Loop {
	l := &Loop{
		now:    time.Now,
		timers: make(map[Handle]*timer),
		posted: make(chan func(), 64),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// After schedules fn to run once d has elapsed
func (l *Loop) After(d time.Duration, fn func()) Handle {
	l.seq++
	h := Handle(l.seq)
	l.timers[h] = &timer{deadline: l.now().Add(d), seq: l.seq, fn: fn}
	return h
}

// Cancel drops a timer that has not fired yet and reports whether it did
func (l *Loop) Cancel(h Handle) bool {
	if _, ok := l.timers[h]; !ok {
		return false
	}
	delete(l.timers, h)
	return true
}

// Pending returns the number of timers waiting to fire
func (l *Loop) Pending() int {
	return len(l.timers)
}

// Post queues fn to run on the loop goroutine. Safe for concurrent use.
func (l *Loop) Post(fn func()) {
	l.posted <- fn
}

// earliest returns the timer with the smallest deadline, ties broken by
// scheduling order
func (l *Loop) earliest() (Handle, *timer) {
	var (
		bestH Handle
		best  *timer
	)
	for h, t := range l.timers {
		if best == nil || t.deadline.Before(best.deadline) ||
			(t.deadline.Equal(best.deadline) && t.seq < best.seq) {
			bestH, best = h, t
		}
	}
	return bestH, best
}

// RunDue runs every posted function, then every timer whose deadline is not
// after now, in deadline order. It returns how many callbacks ran.
func (l *Loop) RunDue(now time.Time) int {
	ran := 0
drain:
	for {
		select {
		case fn := <-l.posted:
			fn()
			ran++
		default:
			break drain
		}
	}

	for {
		h, t := l.earliest()
		if t == nil || t.deadline.After(now) {
			return ran
		}
		delete(l.timers, h)
		t.fn()
		ran++
	}
}

// Run drives the loop until ctx is done, sleeping until the next deadline or
// posted function
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.RunDue(l.now())

		wait := time.Hour
		if _, t := l.earliest(); t != nil {
			wait = t.deadline.Sub(l.now())
		}
		if wait < 0 {
			wait = 0
		}

		sleep := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			sleep.Stop()
			return ctx.Err()
		case fn := <-l.posted:
			sleep.Stop()
			fn()
		case <-sleep.C:
		}
	}
}
