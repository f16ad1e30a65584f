package clock

import (
	"sync"
	"time"

	"github.com/faiface/beep"
)

// Stream reads time from the playback position of a beep stream. When the
// stream is being played by the speaker, lock must guard it.
type Stream struct {
	streamer beep.StreamSeeker
	rate     beep.SampleRate
	offset   time.Duration
	lock     sync.Locker
	buf      [][2]float64
}

func NewStream(streamer beep.StreamSeeker, format beep.Format, offset time.Duration, lock sync.Locker) *Stream {
	return &Stream{
		streamer: streamer,
		rate:     format.SampleRate,
		offset:   offset,
		lock:     lock,
	}
}

func (s *Stream) Tick() Tick {
	if nil != s.lock {
		s.lock.Lock()
		defer s.lock.Unlock()
	}
	pos := s.streamer.Position()
	return Tick{
		Time:  s.rate.D(pos) + s.offset,
		Ended: pos >= s.streamer.Len(),
	}
}

// Pump consumes d worth of samples without playing them, advancing the
// clock for headless runs. It returns the number of samples consumed.
func (s *Stream) Pump(d time.Duration) int {
	if nil == s.buf {
		s.buf = make([][2]float64, 512)
	}
	if nil != s.lock {
		s.lock.Lock()
		defer s.lock.Unlock()
	}
	total := 0
	for remaining := s.rate.N(d); remaining > 0; {
		k := remaining
		if k > len(s.buf) {
			k = len(s.buf)
		}
		n, ok := s.streamer.Stream(s.buf[:k])
		total += n
		remaining -= n
		if !ok || n == 0 {
			break
		}
	}
	return total
}
