package defender

import (
	"testing"
	"time"
)

func TestSchedulerFiresInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(2*time.Second, func() { order = append(order, "b") })
	s.After(time.Second, func() { order = append(order, "a") })
	s.After(2*time.Second, func() { order = append(order, "c") }) // Same due as "b", created later

	s.Advance(3 * time.Second)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("fired %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, expected %q", i, order[i], want[i])
		}
	}

	if s.Now() != 3*time.Second {
		t.Errorf("Now() = %v, expected 3s", s.Now())
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0 after one-shots fired", s.Len())
	}
}

func TestSchedulerRecurring(t *testing.T) {
	s := NewScheduler()
	var fired []time.Duration

	s.Every(time.Second, func() { fired = append(fired, s.Now()) })
	s.Advance(3500 * time.Millisecond)

	if len(fired) != 3 {
		t.Fatalf("recurring timer fired %d times, expected 3", len(fired))
	}
	for i, at := range fired {
		if want := time.Duration(i+1) * time.Second; at != want {
			t.Errorf("fire %d at %v, expected %v", i, at, want)
		}
	}

	// Next fire is at 4s, not 4.5s
	s.Advance(500 * time.Millisecond)
	if len(fired) != 4 {
		t.Errorf("recurring timer fired %d times after 4s, expected 4", len(fired))
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	count := 0

	id := s.Every(time.Second, func() { count++ })
	s.Advance(2 * time.Second)
	s.Cancel(id)
	s.Advance(5 * time.Second)

	if count != 2 {
		t.Errorf("count = %d, expected 2", count)
	}
	if s.Pending(id) {
		t.Error("cancelled timer should not be pending")
	}

	// Unknown IDs are ignored
	s.Cancel(TimerID(999))
	s.Cancel(0)
}

func TestSchedulerCallbackSchedules(t *testing.T) {
	s := NewScheduler()
	var fired []string

	var self TimerID
	self = s.Every(time.Second, func() {
		fired = append(fired, "tick")
		s.Cancel(self)
		s.After(500*time.Millisecond, func() { fired = append(fired, "followup") })
	})

	s.Advance(2 * time.Second)

	if len(fired) != 2 || fired[0] != "tick" || fired[1] != "followup" {
		t.Errorf("fired = %v, expected [tick followup]", fired)
	}
}

func TestSchedulerNonPositiveDelays(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(-time.Second, func() { fired = true })
	s.Advance(0)
	if !fired {
		t.Error("negative delay should fire on the next Advance")
	}

	count := 0
	s.Every(0, func() { count++ })
	s.Advance(5 * time.Millisecond)
	if count != 5 {
		t.Errorf("zero interval should clamp to 1ms, fired %d times in 5ms", count)
	}
}
