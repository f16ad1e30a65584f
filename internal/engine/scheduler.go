package engine

import (
	"time"

	"git.lost.host/meutraa/sabers/internal/game"
)

// scheduler promotes pending notes into the active set. The cursor only moves
// forward so no note is visited twice.
type scheduler struct {
	ahead  time.Duration
	cursor int
}

func (s *scheduler) promote(chart *game.Chart, now time.Duration, active []int) []int {
	for ; s.cursor < len(chart.Notes); s.cursor++ {
		n := &chart.Notes[s.cursor]
		if n.Time-s.ahead > now {
			break
		}
		if err := n.Activate(); nil != err {
			// Only reachable if the chart was shared with another engine
			continue
		}
		active = append(active, s.cursor)
	}
	return active
}

// next returns the index of the first note not yet activated.
func (s *scheduler) next() int {
	return s.cursor
}
