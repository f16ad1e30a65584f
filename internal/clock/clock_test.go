package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func TestManual(t *testing.T) {
	m := NewManual(2 * time.Second)
	m.Advance(1500 * time.Millisecond)
	if tick := m.Tick(); tick.Time != 1500*time.Millisecond || tick.Ended {
		t.Errorf("tick = %+v", tick)
	}
	m.Advance(time.Second)
	if !m.Tick().Ended {
		t.Error("clock past its length should be ended")
	}

	open := NewManual(0)
	open.Set(time.Hour)
	if open.Tick().Ended {
		t.Error("zero length clock ended on its own")
	}
	open.End()
	if !open.Tick().Ended {
		t.Error("End did not end the clock")
	}
}

func silence(format beep.Format, d time.Duration) beep.StreamSeeker {
	buf := beep.NewBuffer(format)
	buf.Append(beep.Silence(format.SampleRate.N(d)))
	return buf.Streamer(0, buf.Len())
}

func TestStream(t *testing.T) {
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	s := NewStream(silence(format, time.Second), format, -20*time.Millisecond, &sync.Mutex{})

	if tick := s.Tick(); tick.Time != -20*time.Millisecond || tick.Ended {
		t.Fatalf("initial tick = %+v", tick)
	}
	if n := s.Pump(500 * time.Millisecond); n != 22050 {
		t.Fatalf("pumped %d samples", n)
	}
	if tick := s.Tick(); tick.Time != 480*time.Millisecond {
		t.Errorf("tick after pump = %v", tick.Time)
	}
	s.Pump(time.Second)
	if !s.Tick().Ended {
		t.Error("drained stream should be ended")
	}
}

func TestWallPause(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	w := NewWall(10 * time.Second)
	w.now = func() time.Time { return now }

	now = now.Add(time.Second)
	if w.Tick().Time != 0 {
		t.Error("clock advanced before Start")
	}
	w.Start()
	now = now.Add(2 * time.Second)
	w.Pause()
	now = now.Add(5 * time.Second)
	if got := w.Tick().Time; got != 2*time.Second {
		t.Errorf("paused tick = %v", got)
	}
	w.Resume()
	now = now.Add(time.Second)
	if got := w.Tick().Time; got != 3*time.Second {
		t.Errorf("resumed tick = %v", got)
	}
	now = now.Add(7 * time.Second)
	if !w.Tick().Ended {
		t.Error("clock should end at its length")
	}
}
