package clock

import (
	"sync"
	"time"
)

// Wall is a pausable wall clock for sessions without an audio track. Time
// does not advance before Start or while paused.
type Wall struct {
	mu sync.Mutex

	length   time.Duration
	now      func() time.Time
	started  bool
	start    time.Time
	paused   bool
	pausedAt time.Time
	pausedBy time.Duration // Cumulative pause duration
}

func NewWall(length time.Duration) *Wall {
	return &Wall{length: length, now: time.Now}
}

func (w *Wall) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		w.started = true
		w.start = w.now()
	}
}

func (w *Wall) Pause() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started && !w.paused {
		w.paused = true
		w.pausedAt = w.now()
	}
}

func (w *Wall) Resume() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.paused {
		w.paused = false
		w.pausedBy += w.now().Sub(w.pausedAt)
	}
}

func (w *Wall) Tick() Tick {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		return Tick{}
	}
	at := w.now()
	if w.paused {
		at = w.pausedAt
	}
	elapsed := at.Sub(w.start) - w.pausedBy
	return Tick{Time: elapsed, Ended: w.length > 0 && elapsed >= w.length}
}
