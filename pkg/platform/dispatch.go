package platform

import (
	stderrors "errors"
	"sync"
	"time"

	"github.com/go-drift/fave/pkg/errors"
)

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the dispatch function used to schedule callbacks on the UI thread.
// Hosts call this once during initialization; nil unregisters.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread.
// Returns true if the callback was successfully scheduled, false if no dispatch function
// is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// ErrNoDispatch is reported when a delayed callback comes due and no
// dispatch function is registered to carry it to the UI thread.
var ErrNoDispatch = stderrors.New("no dispatch function registered")

// DispatchAfter runs callback on the UI thread once delay has passed.
// Callbacks never run on the timer goroutine: if no dispatch function is
// registered when the delay expires, the call is dropped and reported to
// the error handler as a KindDispatch error. The returned timer may be used
// to stop a pending call.
func DispatchAfter(delay time.Duration, callback func()) *time.Timer {
	if callback == nil {
		return nil
	}
	return time.AfterFunc(delay, func() {
		if !Dispatch(callback) {
			errors.Report(errors.New("platform.DispatchAfter", errors.KindDispatch, ErrNoDispatch))
		}
	})
}

// TimerScheduler schedules delayed callbacks through DispatchAfter, so a
// host must call RegisterDispatch before using it.
// The zero value is ready to use.
type TimerScheduler struct{}

// After implements fave.Scheduler.
func (TimerScheduler) After(delay time.Duration, fn func()) {
	DispatchAfter(delay, fn)
}
