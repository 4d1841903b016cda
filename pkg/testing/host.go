package testing

import (
	"image"
	"image/color"
	"sync"

	"github.com/go-drift/fave/pkg/fave"
)

// RecordingHost is a fave.Host that keeps every scheduled burst.
type RecordingHost struct {
	mu     sync.Mutex
	bursts []*fave.Burst
}

// Schedule implements fave.Host.
func (h *RecordingHost) Schedule(b *fave.Burst) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bursts = append(h.bursts, b)
}

// Bursts returns the bursts scheduled so far, oldest first.
func (h *RecordingHost) Bursts() []*fave.Burst {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*fave.Burst(nil), h.bursts...)
}

// Len returns the number of scheduled bursts.
func (h *RecordingHost) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.bursts)
}

// Last returns the most recent burst or nil.
func (h *RecordingHost) Last() *fave.Burst {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.bursts) == 0 {
		return nil
	}
	return h.bursts[len(h.bursts)-1]
}

// Reset forgets recorded bursts.
func (h *RecordingHost) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bursts = nil
}

// Icon returns a small opaque image usable as a button icon.
func Icon() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 0xDD, G: 0x46, B: 0x88, A: 0xFF})
		}
	}
	return img
}
