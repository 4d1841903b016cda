// Package animation provides the timing and easing primitives behind the
// fave burst.
//
// # Core Components
//
//   - [ElasticOut]: a damped sinusoidal overshoot curve in the classic
//     (t, b, c, d) easing form.
//
//   - [SampleTween]: drives ElasticOut at a fixed frame rate and returns the
//     eagerly materialized sample buffer used as keyframe data.
//
//   - [Keyframes]: plays an evenly spaced sample buffer over a duration.
//
//   - [Timeline]: the host-side animation clock. Items scheduled on a
//     timeline share one t=0 each and are dropped once their duration has
//     elapsed. Timelines advance on [Ticker] callbacks driven by the frame
//     loop through [StepTickers].
//
// # Basic Usage
//
//	tl := animation.NewTimeline[*fave.Burst]()
//	tl.AddListener(func() { requestRedraw() })
//	button := fave.NewButton(fave.WithHost(tl), ...)
//
//	// Once per frame
//	animation.StepTickers()
//	tl.Each(func(b *fave.Burst, elapsed time.Duration) {
//	    fave.PaintBurst(painter, center, b, elapsed)
//	})
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Since(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks may start or stop tickers.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(Since(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
