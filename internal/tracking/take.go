package tracking

import (
	"fmt"
	"sort"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"git.lost.host/meutraa/sabers/internal/game"
)

// Take is a recorded hand track ordered by time.
type Take struct {
	Frames []Frame `msgpack:"frames"`
}

// Hands returns the latest frame at or before now. Before the first frame
// both hands are untracked.
func (t *Take) Hands(now time.Duration) game.HandState {
	i := sort.Search(len(t.Frames), func(i int) bool {
		return t.Frames[i].Time > now
	})
	if i == 0 {
		return game.HandState{}
	}
	return t.Frames[i-1].Hands
}

func (t *Take) Duration() time.Duration {
	if len(t.Frames) == 0 {
		return 0
	}
	return t.Frames[len(t.Frames)-1].Time
}

func (t *Take) Marshal() ([]byte, error) {
	return msgpack.Marshal(t)
}

func UnmarshalTake(data []byte) (*Take, error) {
	var t Take
	if err := msgpack.Unmarshal(data, &t); nil != err {
		return nil, fmt.Errorf("unable to decode take: %w", err)
	}
	if !sort.SliceIsSorted(t.Frames, func(i, j int) bool { return t.Frames[i].Time < t.Frames[j].Time }) {
		return nil, fmt.Errorf("take frames are not ordered by time")
	}
	return &t, nil
}

// Recorder captures the snapshots a session actually used, so the session
// can be replayed against the same chart later.
type Recorder struct {
	Source Source
	take   Take
}

func (r *Recorder) Hands(now time.Duration) game.HandState {
	hands := r.Source.Hands(now)
	n := len(r.take.Frames)
	if n == 0 || r.take.Frames[n-1].Time < now {
		r.take.Frames = append(r.take.Frames, Frame{Time: now, Hands: hands})
	}
	return hands
}

func (r *Recorder) Take() *Take {
	return &r.take
}
