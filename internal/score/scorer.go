package score

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/sabers/internal/game"
)

// PendingPolicy decides how notes still unresolved at song end are scored.
// The engine leaves them pending; scoring them is up to the host.
type PendingPolicy uint8

const (
	PendingIgnored PendingPolicy = iota
	PendingAsMiss
)

var pendingNames = map[string]PendingPolicy{
	"ignore": PendingIgnored,
	"miss":   PendingAsMiss,
}

func ParsePendingPolicy(s string) (PendingPolicy, error) {
	p, ok := pendingNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown pending policy %q", s)
	}
	return p, nil
}

func (p PendingPolicy) String() string {
	for name, v := range pendingNames {
		if v == p {
			return name
		}
	}
	return "unknown"
}

type Score struct {
	Points     int64
	Counts     [len(game.Accuracies)]int // Hits per grade
	MissCount  int
	Pending    int // Unresolved at song end under PendingIgnored
	Combo      int
	MaxCombo   int
	Multiplier int

	// Hit offsets, positive is late
	TotalError time.Duration
	Mean       time.Duration
	Stdev      time.Duration
}

func (s Score) Hits() int {
	total := 0
	for _, c := range s.Counts {
		total += c
	}
	return total
}

// Scorer tallies engine events into a Score.
type Scorer interface {
	OnNoteHit(note *game.Note, accuracy game.Accuracy)
	OnNoteMiss(note *game.Note)
	OnSongEnd()

	Score() Score
	Finalize(chart *game.Chart, policy PendingPolicy) Score
}
