package clock

import "time"

// Tick is one reading of the audio clock, polled once per frame.
type Tick struct {
	Time  time.Duration
	Ended bool
}

type Clock interface {
	Tick() Tick
}

// Manual is a clock advanced explicitly by the caller, used for headless
// replays and tests. A zero length never ends on its own.
type Manual struct {
	now    time.Duration
	length time.Duration
	ended  bool
}

func NewManual(length time.Duration) *Manual {
	return &Manual{length: length}
}

func (m *Manual) Advance(d time.Duration) { m.now += d }
func (m *Manual) Set(t time.Duration)     { m.now = t }
func (m *Manual) End()                    { m.ended = true }

func (m *Manual) Tick() Tick {
	return Tick{
		Time:  m.now,
		Ended: m.ended || (m.length > 0 && m.now >= m.length),
	}
}
