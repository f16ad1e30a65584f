package engine

import (
	"math"
	"time"

	"git.lost.host/meutraa/sabers/internal/game"
)

type verdict uint8

const (
	undecided verdict = iota
	cut
	missed
)

// judge decides the outcome for one active note this frame. Every gate except
// the miss depth defers the decision, the player may still be mid swing.
func (c Config) judge(n *game.Note, now time.Duration, hands game.HandState) (verdict, game.Accuracy) {
	depth := c.Depth(n.Time, now)
	if depth > c.PlayerDepth+c.MissDepth {
		return missed, game.Bad
	}
	if depth < c.PlayerDepth-c.WindowAhead || depth > c.PlayerDepth+c.WindowBehind {
		return undecided, game.Bad
	}

	hand := hands.Hand(n.Type)
	if !hand.Tracked {
		return undecided, game.Bad
	}
	if hand.Position.Sub(n.Position(depth)).Len() >= c.HitRadius {
		return undecided, game.Bad
	}

	speed := hand.Velocity.Len()
	if speed <= c.MinSwingSpeed {
		return undecided, game.Bad
	}

	angle := AngleScore(n.CutDirection, hand)
	if angle <= c.MinAngleScore {
		return undecided, game.Bad
	}

	return cut, c.Grade(math.Abs(depth-c.PlayerDepth), angle)
}

// AngleScore is the cosine between the swing and the required cut direction,
// 1 for a perfectly aligned swing. A note accepting any direction always
// scores 1.
func AngleScore(d game.CutDirection, hand game.Pose) float64 {
	dir, ok := d.Direction()
	if !ok {
		return 1
	}
	speed := hand.Velocity.Len()
	if speed == 0 {
		return 0
	}
	return hand.Velocity.Mul(1 / speed).Dot(dir)
}
