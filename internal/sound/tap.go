package sound

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap passes audio through unchanged while keeping the most recent left
// channel samples for the waveform overlay. Stream runs on the speaker
// goroutine and Snapshot on the render loop.
type Tap struct {
	src beep.Streamer

	mu     sync.Mutex
	window []float64
	head   int // next write position
	filled int
}

// NewTap records up to size samples of src.
func NewTap(src beep.Streamer, size int) *Tap {
	if size < 0 {
		size = 0
	}
	return &Tap{src: src, window: make([]float64, size)}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	if n == 0 || len(t.window) == 0 {
		return n, ok
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range samples[:n] {
		t.window[t.head] = s[0]
		t.head = (t.head + 1) % len(t.window)
	}
	t.filled = min(t.filled+n, len(t.window))
	return n, ok
}

func (t *Tap) Err() error { return t.src.Err() }

// Snapshot returns up to the last n recorded samples, oldest first.
func (t *Tap) Snapshot(n int) []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	n = max(0, min(n, t.filled))
	out := make([]float64, n)
	start := t.head - n
	if start < 0 {
		start += len(t.window)
	}
	for i := range out {
		out[i] = t.window[(start+i)%len(t.window)]
	}
	return out
}
