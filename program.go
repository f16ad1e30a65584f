package main

import (
	"time"

	"git.lost.host/meutraa/sabers/internal/clock"
	"git.lost.host/meutraa/sabers/internal/config"
	"git.lost.host/meutraa/sabers/internal/effects"
	"git.lost.host/meutraa/sabers/internal/engine"
	"git.lost.host/meutraa/sabers/internal/game"
	"git.lost.host/meutraa/sabers/internal/input"
	"git.lost.host/meutraa/sabers/internal/render"
	"git.lost.host/meutraa/sabers/internal/score"
	"git.lost.host/meutraa/sabers/internal/tracking"
)

// Notes are missed shortly after the last one crosses the player plane, so
// a clock without a track runs a little past the chart.
const songTail = 3 * time.Second

// Pauser is implemented by clocks the host can stop while paused.
type Pauser interface {
	Pause()
	Resume()
}

type Program struct {
	Options  *config.Options
	Scorer   *score.DefaultScorer
	Feedback *effects.Feedback
	Renderer render.Renderer // nil when headless
	Controls input.Source    // nil when not interactive
	Clock    clock.Clock
	Hands    tracking.Source
	Pauser   Pauser

	chart  *game.Chart
	engine *engine.Engine
	quit   bool
}

func (p *Program) Init(chart *game.Chart) error {
	p.chart = chart
	p.Scorer = score.NewDefaultScorer()
	p.Feedback = effects.New(p.Options.Seed)

	listeners := engine.Listeners{p.Scorer, p.Feedback}
	if nil != p.Renderer {
		listeners = append(listeners, p.Renderer)
	}
	e, err := engine.New(chart, p.Options.Engine, listeners)
	if nil != err {
		return err
	}
	p.engine = e
	p.engine.SetStatus(engine.Playing)
	return nil
}

func (p *Program) togglePause() {
	switch p.engine.Status() {
	case engine.Playing:
		p.engine.SetStatus(engine.Paused)
		if nil != p.Pauser {
			p.Pauser.Pause()
		}
	case engine.Paused:
		if nil != p.Pauser {
			p.Pauser.Resume()
		}
		p.engine.SetStatus(engine.Playing)
	}
}

// Update runs one frame and reports whether the session continues.
func (p *Program) Update() bool {
	if nil != p.Controls {
		for _, cmd := range p.Controls.Poll() {
			switch cmd {
			case input.TogglePause:
				p.togglePause()
			case input.Quit:
				p.quit = true
			}
		}
	}
	if p.quit {
		return false
	}

	tick := p.Clock.Tick()
	p.engine.Update(tick, p.Hands.Hands(tick.Time))

	// Presentation keeps running while paused
	p.Feedback.Step()
	if nil != p.Renderer {
		p.Renderer.Draw(p.engine, p.Scorer.Score(), p.Feedback)
	}
	return !p.engine.Ended()
}

// RenderLoop runs frames at the configured rate until the song ends or the
// player quits.
func (p *Program) RenderLoop() {
	period := p.Options.FramePeriod()
	for {
		now := time.Now()
		deadline := now.Add(period)
		if !p.Update() {
			return
		}
		time.Sleep(deadline.Sub(time.Now()))
	}
}

// Replay drives the program with a manual clock as fast as possible.
func (p *Program) Replay(clk *clock.Manual) {
	p.Clock = clk
	period := p.Options.FramePeriod()
	for p.Update() {
		clk.Advance(period)
	}
}

func (p *Program) Summary() score.Score {
	return p.Scorer.Finalize(p.chart, p.Options.PendingPolicy())
}
