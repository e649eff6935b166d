package defender

import "time"

// TimerID identifies a scheduled timer. The zero value is never issued.
type TimerID uint64

type timer struct {
	id       TimerID
	due      time.Duration
	interval time.Duration // Zero for one-shot timers
	fn       func()
}

// Scheduler is a deterministic virtual clock with recurring and one-shot timers.
// The game owns one scheduler and advances it once per frame; every callback
// runs to completion on the caller's goroutine before the next one fires.
type Scheduler struct {
	now    time.Duration
	nextID TimerID
	timers map[TimerID]*timer
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[TimerID]*timer)}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, delay from now.
func (s *Scheduler) After(delay time.Duration, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	return s.add(s.now+delay, 0, fn)
}

// Every schedules fn to run every interval, first firing one interval from now.
func (s *Scheduler) Every(interval time.Duration, fn func()) TimerID {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(s.now+interval, interval, fn)
}

func (s *Scheduler) add(due, interval time.Duration, fn func()) TimerID {
	s.nextID++
	s.timers[s.nextID] = &timer{id: s.nextID, due: due, interval: interval, fn: fn}
	return s.nextID
}

// Cancel disarms a timer. Unknown or already fired one-shot IDs are ignored.
func (s *Scheduler) Cancel(id TimerID) {
	delete(s.timers, id)
}

// Pending reports whether the timer is still armed.
func (s *Scheduler) Pending(id TimerID) bool {
	_, ok := s.timers[id]
	return ok
}

// Len returns the number of armed timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Advance moves the clock forward by d, firing every timer that falls due,
// in due-time order (ties broken by creation order). Callbacks may schedule
// or cancel timers; a timer scheduled inside the window fires in the same call.
func (s *Scheduler) Advance(d time.Duration) {
	target := s.now + d

	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}

		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			delete(s.timers, t.id)
		}
		t.fn()
	}

	s.now = target
}

// nextDue returns the earliest timer due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}
