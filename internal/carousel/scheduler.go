package carousel

import "time"

// Scheduler is a deadline queue for a single logical timeline.
// Tasks never run on their own goroutine: the host calls Advance from its
// frame or event loop and due tasks run there, in deadline order.
type Scheduler struct {
	clock Clock
	tasks []*Timer
	seq   uint64
}

// Timer is a cancelable handle to a scheduled task.
type Timer struct {
	sched    *Scheduler
	deadline time.Time
	period   time.Duration
	fn       func()
	seq      uint64
	stopped  bool
}

// NewScheduler creates a Scheduler reading time from clock.
// A nil clock uses SystemClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// AfterFunc schedules fn to run once, d after now.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	return s.add(d, 0, fn)
}

// Every schedules fn to run every d, first firing d after now.
// A non-positive period yields an already stopped timer.
func (s *Scheduler) Every(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		return &Timer{sched: s, stopped: true}
	}
	return s.add(d, d, fn)
}

func (s *Scheduler) add(d, period time.Duration, fn func()) *Timer {
	s.seq++
	t := &Timer{
		sched:    s,
		deadline: s.clock.Now().Add(d),
		period:   period,
		fn:       fn,
		seq:      s.seq,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance runs every task whose deadline is at or before now and returns
// how many callbacks fired. Interval timers that fell behind catch up one
// period at a time.
func (s *Scheduler) Advance() int {
	now := s.clock.Now()
	fired := 0
	for {
		t := s.nextDue(now)
		if t == nil {
			break
		}
		if t.period > 0 {
			t.deadline = t.deadline.Add(t.period)
		} else {
			t.stopped = true
		}
		fired++
		t.fn()
	}
	s.compact()
	return fired
}

func (s *Scheduler) nextDue(now time.Time) *Timer {
	var due *Timer
	for _, t := range s.tasks {
		if t.stopped || t.deadline.After(now) {
			continue
		}
		if due == nil || t.deadline.Before(due.deadline) ||
			(t.deadline.Equal(due.deadline) && t.seq < due.seq) {
			due = t
		}
	}
	return due
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Stop cancels the timer. It reports whether the timer was still pending.
// Stop is safe on a nil or already stopped timer.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Active reports whether the timer will still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// Deadline returns the next firing time of an active timer.
func (t *Timer) Deadline() time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.deadline
}
