package score

import (
	"math"
	"time"

	"git.lost.host/meutraa/sabers/internal/game"
)

const maxMultiplier = 8

var points = [...]int64{game.Bad: 30, game.Good: 70, game.Perfect: 115}

// DefaultScorer counts grades with a combo multiplier that doubles after
// 2, 4 and 8 consecutive hits and halves on a miss.
type DefaultScorer struct {
	score    Score
	progress int
	offsets  []time.Duration
	ended    bool
}

func NewDefaultScorer() *DefaultScorer {
	return &DefaultScorer{score: Score{Multiplier: 1}}
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

func (s *DefaultScorer) OnNoteHit(note *game.Note, accuracy game.Accuracy) {
	sc := &s.score
	sc.Counts[accuracy]++
	sc.Points += points[accuracy] * int64(sc.Multiplier)
	sc.Combo++
	if sc.Combo > sc.MaxCombo {
		sc.MaxCombo = sc.Combo
	}
	if sc.Multiplier < maxMultiplier {
		s.progress++
		if s.progress >= 2*sc.Multiplier {
			sc.Multiplier *= 2
			s.progress = 0
		}
	}

	if at, ok := note.HitTime(); ok {
		offset := at - note.Time
		s.offsets = append(s.offsets, offset)
		sc.TotalError += abs(offset)
	}
}

func (s *DefaultScorer) OnNoteMiss(_ *game.Note) {
	sc := &s.score
	sc.MissCount++
	sc.Combo = 0
	s.progress = 0
	if sc.Multiplier > 1 {
		sc.Multiplier /= 2
	}
}

func (s *DefaultScorer) OnSongEnd() {
	s.ended = true
}

// Score returns the running tally with hit offset statistics.
func (s *DefaultScorer) Score() Score {
	sc := s.score
	n := len(s.offsets)
	if n == 0 {
		return sc
	}
	sum := 0.0
	for _, o := range s.offsets {
		sum += float64(o)
	}
	mean := sum / float64(n)
	sc.Mean = time.Duration(math.Round(mean))
	if n > 1 {
		stdev := 0.0
		for _, o := range s.offsets {
			xi := float64(o) - mean
			stdev += xi * xi
		}
		stdev /= float64(n - 1)
		sc.Stdev = time.Duration(math.Round(math.Sqrt(stdev)))
	}
	return sc
}

// Finalize applies the pending policy to notes the chart left unresolved.
// The notes themselves are not touched.
func (s *DefaultScorer) Finalize(chart *game.Chart, policy PendingPolicy) Score {
	sc := s.Score()
	for i := range chart.Notes {
		if chart.Notes[i].Terminal() {
			continue
		}
		switch policy {
		case PendingAsMiss:
			sc.MissCount++
			sc.Combo = 0
		default:
			sc.Pending++
		}
	}
	return sc
}

// Ended reports whether the song end was observed.
func (s *DefaultScorer) Ended() bool {
	return s.ended
}
