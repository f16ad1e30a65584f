package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Saber identifies which hand must cut a note.
type Saber uint8

const (
	Left Saber = iota
	Right
)

func (s Saber) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// CutDirection is the swing direction a note demands. Any accepts every swing.
type CutDirection uint8

const (
	Up CutDirection = iota
	Down
	LeftCut
	RightCut
	UpLeft
	UpRight
	DownLeft
	DownRight
	Any
)

var cutNames = [...]string{"up", "down", "left", "right", "up-left", "up-right", "down-left", "down-right", "any"}

func (d CutDirection) String() string {
	if int(d) < len(cutNames) {
		return cutNames[d]
	}
	return "unknown"
}

const (
	Lanes  = 4
	Layers = 3
)

var (
	// World x of each lane, left to right.
	laneX = [Lanes]float64{-0.9, -0.3, 0.3, 0.9}
	// World y of each layer, bottom to top.
	layerY = [Layers]float64{0.8, 1.4, 2.0}

	diagonal   = 1 / math.Sqrt2
	directions = [...]mgl64.Vec3{
		Up:        {0, 1, 0},
		Down:      {0, -1, 0},
		LeftCut:   {-1, 0, 0},
		RightCut:  {1, 0, 0},
		UpLeft:    {-diagonal, diagonal, 0},
		UpRight:   {diagonal, diagonal, 0},
		DownLeft:  {-diagonal, -diagonal, 0},
		DownRight: {diagonal, -diagonal, 0},
	}
)

// LaneX returns the world x coordinate of a lane index.
func LaneX(index int) float64 { return laneX[index] }

// LayerY returns the world y coordinate of a layer index.
func LayerY(layer int) float64 { return layerY[layer] }

// Direction returns the unit vector of a cut direction. The second value is
// false for Any, which has no direction.
func (d CutDirection) Direction() (mgl64.Vec3, bool) {
	if d >= Any {
		return mgl64.Vec3{}, false
	}
	return directions[d], true
}
