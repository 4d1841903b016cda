package testing

import (
	"sort"
	"sync"
	"time"
)

// FakeScheduler queues delayed callbacks until Advance moves its virtual
// time past their due time. All methods are safe for concurrent use;
// callbacks run on the goroutine calling Advance.
type FakeScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []scheduledCall
}

type scheduledCall struct {
	due time.Duration
	seq int
	fn  func()
}

// NewFakeScheduler returns a scheduler at virtual time zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// After implements fave.Scheduler.
func (s *FakeScheduler) After(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.pending = append(s.pending, scheduledCall{due: s.now + delay, seq: s.seq, fn: fn})
}

// Pending returns the number of callbacks not yet run.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Advance moves virtual time forward by d and runs every callback that is
// now due, in due-time order.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due, rest []scheduledCall
	for _, c := range s.pending {
		if c.due <= s.now {
			due = append(due, c)
		} else {
			rest = append(rest, c)
		}
	}
	s.pending = rest
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, c := range due {
		c.fn()
	}
}
