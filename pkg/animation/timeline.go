package animation

import "time"

// Playable is anything a Timeline can run: it only needs to know how long it
// lasts from its own t=0.
type Playable interface {
	Duration() time.Duration
}

type timelineEntry[T Playable] struct {
	item  T
	start time.Time
}

// Timeline plays scheduled items against the animation clock.
//
// Each item gets its own t=0 at the moment it is scheduled. Items overlap
// freely; scheduling never cancels or merges what is already playing. An
// item is dropped on the first tick at or after its duration.
//
// Timeline is not safe for concurrent use; drive it from the UI goroutine.
type Timeline[T Playable] struct {
	entries        []timelineEntry[T]
	ticker         *Ticker
	listeners      map[int]func()
	nextListenerID int
}

// NewTimeline creates an empty timeline.
func NewTimeline[T Playable]() *Timeline[T] {
	return &Timeline[T]{
		listeners: make(map[int]func()),
	}
}

// Schedule starts playing item at the current clock time and returns
// immediately.
func (tl *Timeline[T]) Schedule(item T) {
	tl.entries = append(tl.entries, timelineEntry[T]{item: item, start: Now()})
	if tl.ticker == nil {
		tl.ticker = NewTicker(tl.tick)
	}
	tl.ticker.Start()
	tl.notifyListeners()
}

// Len returns the number of items still playing.
func (tl *Timeline[T]) Len() int {
	return len(tl.entries)
}

// IsAnimating reports whether anything is playing.
func (tl *Timeline[T]) IsAnimating() bool {
	return len(tl.entries) > 0
}

// Each calls fn for every playing item, oldest first, with the time elapsed
// since it was scheduled.
func (tl *Timeline[T]) Each(fn func(item T, elapsed time.Duration)) {
	now := Now()
	for _, e := range tl.entries {
		fn(e.item, now.Sub(e.start))
	}
}

func (tl *Timeline[T]) tick(time.Duration) {
	now := Now()
	kept := tl.entries[:0]
	for _, e := range tl.entries {
		if now.Sub(e.start) < e.item.Duration() {
			kept = append(kept, e)
		}
	}
	clear(tl.entries[len(kept):])
	tl.entries = kept

	tl.notifyListeners()
	if len(tl.entries) == 0 && tl.ticker != nil {
		tl.ticker.Stop()
	}
}

// AddListener adds a callback that fires after every tick and schedule.
// Returns an unsubscribe function.
func (tl *Timeline[T]) AddListener(fn func()) func() {
	id := tl.nextListenerID
	tl.nextListenerID++
	tl.listeners[id] = fn
	return func() {
		delete(tl.listeners, id)
	}
}

func (tl *Timeline[T]) notifyListeners() {
	for _, listener := range tl.listeners {
		listener()
	}
}

// Dispose stops the timeline and drops everything still playing.
func (tl *Timeline[T]) Dispose() {
	if tl.ticker != nil {
		tl.ticker.Stop()
		tl.ticker = nil
	}
	tl.entries = nil
	tl.listeners = nil
}
