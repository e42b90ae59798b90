package engine

import (
	"sort"
	"time"
)

// Token identifies a scheduled callback so it can be cancelled.
// The zero Token never refers to a live timer.
type Token uint64

// Scheduler runs one-shot callbacks against a virtual clock that only moves
// when Advance is called. The platform advances it once per simulation tick,
// which keeps every game deterministic under a fixed tick rate.
type Scheduler struct {
	now    time.Duration
	nextID Token
	timers []timer
}

type timer struct {
	id Token
	at time.Duration
	fn func()
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once the clock has advanced by d.
// A non-positive d fires on the next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) Token {
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := timer{id: s.nextID, at: s.now + d, fn: fn}

	// Keep timers ordered by deadline, FIFO for equal deadlines.
	i := sort.Search(len(s.timers), func(i int) bool {
		return s.timers[i].at > t.at
	})
	s.timers = append(s.timers, timer{})
	copy(s.timers[i+1:], s.timers[i:])
	s.timers[i] = t

	return t.id
}

// Cancel removes a pending timer. Returns false if it already fired or was
// cancelled.
func (s *Scheduler) Cancel(tok Token) bool {
	for i, t := range s.timers {
		if t.id == tok {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Pending reports whether tok is still waiting to fire.
func (s *Scheduler) Pending(tok Token) bool {
	for _, t := range s.timers {
		if t.id == tok {
			return true
		}
	}
	return false
}

// Remaining returns how long until tok fires, or 0 if it is not pending.
func (s *Scheduler) Remaining(tok Token) time.Duration {
	for _, t := range s.timers {
		if t.id == tok {
			return t.at - s.now
		}
	}
	return 0
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Advance moves the clock forward by dt, firing due timers in deadline
// order. The clock reads each timer's own deadline while its callback runs,
// and timers scheduled by a callback fire in the same call if they fall
// inside the window.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	for len(s.timers) > 0 && s.timers[0].at <= target {
		t := s.timers[0]
		s.timers = s.timers[1:]
		if t.at > s.now {
			s.now = t.at
		}
		t.fn()
	}

	s.now = target
}
