package game

import "github.com/go-gl/mathgl/mgl64"

// Pose is one hand as reported by the tracking subsystem for a single frame.
// Position is meaningless unless Tracked is set.
type Pose struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Tracked  bool
}

// HandState is a read-only snapshot of both hands for one frame.
type HandState struct {
	Left, Right Pose
}

// Hand returns the pose of the hand holding saber s.
func (h HandState) Hand(s Saber) Pose {
	if s == Right {
		return h.Right
	}
	return h.Left
}
