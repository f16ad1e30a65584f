package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"git.lost.host/meutraa/sabers/internal/game"
)

// Depth projects a note scheduled at noteTime to its depth at clock time now.
// The note sits exactly on the player plane when now equals noteTime.
func (c Config) Depth(noteTime, now time.Duration) float64 {
	return c.PlayerDepth - (noteTime-now).Seconds()*c.NoteSpeed
}

// Position is the world position of a note at clock time now.
func (c Config) Position(n *game.Note, now time.Duration) mgl64.Vec3 {
	return n.Position(c.Depth(n.Time, now))
}
