// Package fave implements an animated "favorite" toggle button.
//
// Selecting the button fires a burst: a ring expands from the button center
// and collapses into a hollow band, a ring of two-tone sparks ignites around
// it, and the icon pops in with an elastic scale bounce. Deselecting is
// silent.
//
// # Collaborators
//
// The package does not draw or run timers itself. A host supplies:
//
//   - [Host]: receives each [Burst] and plays it on its own clock. An
//     [animation.Timeline] of *Burst satisfies it.
//   - [Scheduler]: runs the delayed delegate callback on the UI thread. The
//     default is [platform.TimerScheduler], which needs the host to call
//     [platform.RegisterDispatch]; without it the callback is dropped and
//     reported.
//   - [Painter]: draws circles; [PaintBurst] renders one frame of a burst.
//
// # Usage
//
//	timeline := animation.NewTimeline[*fave.Burst]()
//	button := fave.NewButton(
//	    fave.WithImages(heartOutline, heartFilled),
//	    fave.WithSize(graphics.Size{Width: 64, Height: 64}),
//	    fave.WithHost(timeline),
//	)
//	remove := button.SetDelegate(fave.DelegateFunc(func(b *fave.Button, on bool) {
//	    store.SetFavorite(id, on)
//	}))
//	defer remove()
//
// Programmatic state changes that must not animate, such as restoring saved
// state, use SetSelected with animated=false.
package fave
