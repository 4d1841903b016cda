// Package testing provides fakes for exercising fave buttons without a
// real host.
//
//	func TestFavorite(t *testing.T) {
//	    host := &favetest.RecordingHost{}
//	    sched := favetest.NewFakeScheduler()
//	    b := fave.NewButton(
//	        fave.WithImages(favetest.Icon(), favetest.Icon()),
//	        fave.WithHost(host),
//	        fave.WithScheduler(sched),
//	    )
//
//	    b.Toggle()
//	    if host.Len() != 1 {
//	        t.Fatal("expected one burst")
//	    }
//	    sched.Advance(fave.BurstDuration) // delivers the delegate callback
//	}
//
// [FakeClock] drives [animation.Timeline] deterministically when installed
// with animation.SetClock.
package testing
