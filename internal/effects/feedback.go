package effects

import (
	"math/rand"

	"git.lost.host/meutraa/sabers/internal/game"
)

const (
	DefaultDecay   = 0.9
	DefaultEpsilon = 0.001
	DefaultShake   = 0.05 // World units of camera offset at full impact
)

var (
	impacts = [...]float64{game.Bad: 0.3, game.Good: 0.6, game.Perfect: 1}
	pulses  = [...]float64{game.Bad: 0.2, game.Good: 0.5, game.Perfect: 1}
)

// Impact maps a grade to the intensity of the reaction it triggers.
func Impact(a game.Accuracy) float64 {
	if int(a) < len(impacts) {
		return impacts[a]
	}
	return 0
}

// Feedback holds the presentation reactions to engine events: camera shake,
// a light pulse on hits and a flash on misses. It never feeds back into the
// simulation and keeps decaying while the engine is paused.
type Feedback struct {
	Impact float64
	Pulse  float64
	Flash  float64

	Decay      float64
	Epsilon    float64
	ShakeScale float64

	rng *rand.Rand
}

func New(seed int64) *Feedback {
	return &Feedback{
		Decay:      DefaultDecay,
		Epsilon:    DefaultEpsilon,
		ShakeScale: DefaultShake,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

func raise(v *float64, to float64) {
	if to > *v {
		*v = to
	}
}

func (f *Feedback) OnNoteHit(_ *game.Note, a game.Accuracy) {
	raise(&f.Impact, Impact(a))
	if int(a) < len(pulses) {
		raise(&f.Pulse, pulses[a])
	}
}

func (f *Feedback) OnNoteMiss(_ *game.Note) {
	f.Flash = 1
}

func (f *Feedback) OnSongEnd() {}

func (f *Feedback) decay(v *float64) {
	*v *= f.Decay
	if *v < f.Epsilon {
		*v = 0
	}
}

// Step decays every reaction by one frame.
func (f *Feedback) Step() {
	f.decay(&f.Impact)
	f.decay(&f.Pulse)
	f.decay(&f.Flash)
}

// Shake returns this frame's camera offset, bounded by the current impact.
func (f *Feedback) Shake() (x, y float64) {
	if f.Impact == 0 {
		return 0, 0
	}
	mag := f.Impact * f.ShakeScale
	return (f.rng.Float64()*2 - 1) * mag, (f.rng.Float64()*2 - 1) * mag
}

// Light returns the ambient light level with the hit pulse applied.
func (f *Feedback) Light(base float64) float64 {
	return base + (1-base)*f.Pulse
}

// Active reports whether any reaction is still visible.
func (f *Feedback) Active() bool {
	return f.Impact > 0 || f.Pulse > 0 || f.Flash > 0
}
