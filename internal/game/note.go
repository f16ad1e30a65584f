package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the lifecycle tag of a note: Pending -> Active -> Hit|Missed.
type State uint8

const (
	Pending State = iota
	Active
	Hit
	Missed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Active:
		return "active"
	case Hit:
		return "hit"
	case Missed:
		return "missed"
	}
	return "unknown"
}

var ErrTransition = errors.New("invalid note transition")

// Spec is the immutable part of a note as supplied by the chart.
type Spec struct {
	Time         time.Duration // When the note crosses the player plane
	LineIndex    int
	LineLayer    int
	Type         Saber
	CutDirection CutDirection
}

type Note struct {
	ID int
	Spec

	// This is state
	state    State
	hitTime  time.Duration
	accuracy Accuracy
}

// transitions[from] holds the states a note may move to from that state.
var transitions = [...][]State{
	Pending: {Active},
	Active:  {Hit, Missed},
}

func (n *Note) transition(to State) error {
	if int(n.state) < len(transitions) {
		for _, s := range transitions[n.state] {
			if s == to {
				n.state = to
				return nil
			}
		}
	}
	return fmt.Errorf("note %d %v -> %v: %w", n.ID, n.state, to, ErrTransition)
}

// Activate moves a pending note into simulation range.
func (n *Note) Activate() error {
	return n.transition(Active)
}

// Hit resolves an active note as cut at the given clock time.
func (n *Note) Hit(at time.Duration, accuracy Accuracy) error {
	if err := n.transition(Hit); nil != err {
		return err
	}
	n.hitTime = at
	n.accuracy = accuracy
	return nil
}

// Miss resolves an active note as missed.
func (n *Note) Miss() error {
	return n.transition(Missed)
}

func (n *Note) State() State   { return n.state }
func (n *Note) IsHit() bool    { return n.state == Hit }
func (n *Note) IsMissed() bool { return n.state == Missed }
func (n *Note) Terminal() bool { return n.state == Hit || n.state == Missed }

// HitTime is only defined for hit notes.
func (n *Note) HitTime() (time.Duration, bool) {
	return n.hitTime, n.state == Hit
}

// Accuracy is only defined for hit notes.
func (n *Note) Accuracy() (Accuracy, bool) {
	return n.accuracy, n.state == Hit
}

// Position places the note in world space at the given depth.
func (n *Note) Position(depth float64) mgl64.Vec3 {
	return mgl64.Vec3{LaneX(n.LineIndex), LayerY(n.LineLayer), depth}
}
