package tracking

import (
	"sync"
	"time"

	"git.lost.host/meutraa/sabers/internal/game"
)

// Source supplies the hand snapshot for the frame at clock time now.
type Source interface {
	Hands(now time.Duration) game.HandState
}

// Frame is one tracking sample as sent over the wire and stored in takes.
type Frame struct {
	Time  time.Duration  `msgpack:"time"`
	Hands game.HandState `msgpack:"hands"`
}

// Latest holds the most recent snapshot pushed by a live tracker. It is safe
// for one writer goroutine and the frame loop to use concurrently.
type Latest struct {
	mu     sync.RWMutex
	hands  game.HandState
	frames uint64
}

func (l *Latest) Set(hands game.HandState) {
	l.mu.Lock()
	l.hands = hands
	l.frames++
	l.mu.Unlock()
}

// Hands ignores now, a live tracker is always current.
func (l *Latest) Hands(time.Duration) game.HandState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hands
}

// Frames is the number of snapshots received so far.
func (l *Latest) Frames() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.frames
}
