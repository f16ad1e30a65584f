package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"git.lost.host/meutraa/sabers/internal/game"
)

// Config holds every tuning constant of the simulation. Distances are world
// units, speeds are world units per second. It is copied into the engine at
// construction and never changes afterwards.
type Config struct {
	SpawnDistance float64 // Signed depth offset from the player plane where notes appear
	PlayerDepth   float64 // Depth of the player plane
	NoteSpeed     float64

	MissDepth    float64 // How far past the player plane a note is missed
	WindowAhead  float64 // Collision band in front of the player plane
	WindowBehind float64 // Collision band behind the player plane

	HitRadius     float64
	MinSwingSpeed float64
	MinAngleScore float64

	PerfectTiming float64
	PerfectAngle  float64
	GoodTiming    float64
	GoodAngle     float64

	VisibleAhead  time.Duration
	VisibleBehind time.Duration
	HitFade       time.Duration
}

func DefaultConfig() Config {
	return Config{
		SpawnDistance: -20,
		PlayerDepth:   0,
		NoteSpeed:     10,

		MissDepth:    2,
		WindowAhead:  1,
		WindowBehind: 1.5,

		HitRadius:     1.2,
		MinSwingSpeed: 0.5,
		MinAngleScore: 0.1,

		PerfectTiming: 0.5,
		PerfectAngle:  0.5,
		GoodTiming:    1,
		GoodAngle:     0.3,

		VisibleAhead:  5 * time.Second,
		VisibleBehind: 2 * time.Second,
		HitFade:       800 * time.Millisecond,
	}
}

var ErrConfig = errors.New("invalid engine config")

func (c Config) Validate() error {
	check := func(ok bool, format string, args ...interface{}) error {
		if ok {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
	}
	inUnit := func(v float64) bool { return v >= -1 && v <= 1 }

	for _, err := range []error{
		check(c.NoteSpeed > 0, "note speed %v must be positive", c.NoteSpeed),
		check(c.SpawnDistance != 0, "spawn distance must not be zero"),
		check(c.HitRadius > 0, "hit radius %v must be positive", c.HitRadius),
		check(c.MissDepth > 0, "miss depth %v must be positive", c.MissDepth),
		check(c.WindowAhead >= 0 && c.WindowBehind >= 0, "collision window must not be negative"),
		check(c.WindowBehind > c.WindowAhead, "collision window behind %v must exceed window ahead %v", c.WindowBehind, c.WindowAhead),
		check(c.WindowBehind < c.MissDepth, "collision window %v reaches the miss depth %v", c.WindowBehind, c.MissDepth),
		check(c.MinSwingSpeed >= 0, "min swing speed %v must not be negative", c.MinSwingSpeed),
		check(inUnit(c.MinAngleScore) && inUnit(c.PerfectAngle) && inUnit(c.GoodAngle), "angle thresholds must lie in [-1, 1]"),
		check(c.PerfectTiming <= c.GoodTiming, "perfect timing %v exceeds good timing %v", c.PerfectTiming, c.GoodTiming),
		check(c.PerfectAngle >= c.GoodAngle, "perfect angle %v is below good angle %v", c.PerfectAngle, c.GoodAngle),
		check(c.HitFade >= 0 && c.VisibleAhead >= 0 && c.VisibleBehind >= 0, "visibility windows must not be negative"),
	} {
		if nil != err {
			return err
		}
	}
	return nil
}

// SpawnAhead is how long a note takes to travel from its spawn depth to the
// player plane.
func (c Config) SpawnAhead() time.Duration {
	return time.Duration(math.Abs(c.SpawnDistance) / c.NoteSpeed * float64(time.Second))
}

// Grade classifies a hit. The perfect region is nested inside the good region
// as long as the config validates.
func (c Config) Grade(timingError, angleScore float64) game.Accuracy {
	switch {
	case timingError < c.PerfectTiming && angleScore > c.PerfectAngle:
		return game.Perfect
	case timingError < c.GoodTiming && angleScore > c.GoodAngle:
		return game.Good
	}
	return game.Bad
}
