package render

import (
	"time"

	"git.lost.host/meutraa/sabers/internal/effects"
	"git.lost.host/meutraa/sabers/internal/engine"
	"git.lost.host/meutraa/sabers/internal/game"
	"git.lost.host/meutraa/sabers/internal/score"
)

// Scene is the read-only view of the simulation a renderer draws.
type Scene interface {
	Config() engine.Config
	Visible() []*game.Note
	Depth(n *game.Note) float64
	Now() time.Duration
	Status() engine.Status
}

type Renderer interface {
	Init() error
	Deinit() error
	Draw(scene Scene, sc score.Score, fb *effects.Feedback)
	engine.Listener
}
