package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"git.lost.host/meutraa/sabers/internal/clock"
	"git.lost.host/meutraa/sabers/internal/game"
)

type Status uint8

const (
	NotStarted Status = iota
	Playing
	Paused
	Ended
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Engine runs the per frame simulation for one chart. It owns the runtime
// state of the chart's notes and is not safe for concurrent use; the host
// calls Update once per frame from its own loop.
type Engine struct {
	cfg      Config
	chart    *game.Chart
	listener Listener

	status  Status
	now     time.Duration
	started bool // now holds an evaluated tick
	ended   bool

	sched  scheduler
	active []int // Chart indices in activation order
}

var ErrChartInUse = errors.New("chart already has runtime state")

// New builds an engine for a chart whose notes are all pending. listener may
// be nil when the host only consumes the events returned by Update.
func New(chart *game.Chart, cfg Config, listener Listener) (*Engine, error) {
	if err := cfg.Validate(); nil != err {
		return nil, err
	}
	for i := range chart.Notes {
		if chart.Notes[i].State() != game.Pending {
			return nil, fmt.Errorf("note %d is %v: %w", i, chart.Notes[i].State(), ErrChartInUse)
		}
	}
	return &Engine{
		cfg:      cfg,
		chart:    chart,
		listener: listener,
		sched:    scheduler{ahead: cfg.SpawnAhead()},
	}, nil
}

func (e *Engine) Config() Config     { return e.cfg }
func (e *Engine) Chart() *game.Chart { return e.chart }
func (e *Engine) Status() Status     { return e.status }

// Now is the last evaluated clock time, zero before the first tick. It is
// negative while a negative audio offset is being played through.
func (e *Engine) Now() time.Duration { return e.now }
func (e *Engine) Ended() bool        { return e.ended }
func (e *Engine) Upcoming() int      { return len(e.chart.Notes) - e.sched.next() }

// SetStatus is the host's status signal. Leaving Playing suspends spawning
// and collision while keeping the active set intact. Nothing changes once
// the song has ended.
func (e *Engine) SetStatus(s Status) {
	if e.ended {
		return
	}
	e.status = s
}

// Update advances the simulation to the clock tick and evaluates every active
// note against the hand snapshot. The returned events have already been
// delivered to the listener.
func (e *Engine) Update(tick clock.Tick, hands game.HandState) []Event {
	if e.ended {
		return nil
	}
	if tick.Ended {
		e.ended = true
		e.status = Ended
		return e.emit(nil, Event{Kind: SongEnd, Time: e.now})
	}
	if e.status != Playing || (e.started && tick.Time < e.now) {
		return nil
	}
	e.now = tick.Time
	e.started = true

	e.active = e.sched.promote(e.chart, e.now, e.active)

	var events []Event
	for i := len(e.active) - 1; i >= 0; i-- {
		n := &e.chart.Notes[e.active[i]]
		if n.Terminal() {
			continue
		}

		v, acc := e.cfg.judge(n, e.now, hands)
		switch v {
		case missed:
			if err := n.Miss(); nil != err {
				continue
			}
			events = e.emit(events, Event{Kind: NoteMiss, Note: n, Time: e.now})
		case cut:
			if err := n.Hit(e.now, acc); nil != err {
				continue
			}
			events = e.emit(events, Event{Kind: NoteHit, Note: n, Accuracy: acc, Time: e.now})
		default:
			continue
		}
		e.active = append(e.active[:i], e.active[i+1:]...)
	}
	return events
}

func (e *Engine) emit(events []Event, ev Event) []Event {
	ev.dispatch(e.listener)
	return append(events, ev)
}

// Active returns the notes currently eligible for evaluation, in activation
// order.
func (e *Engine) Active() []*game.Note {
	notes := make([]*game.Note, len(e.active))
	for i, idx := range e.active {
		notes[i] = &e.chart.Notes[idx]
	}
	return notes
}

// Depth is the current depth of a note.
func (e *Engine) Depth(n *game.Note) float64 {
	return e.cfg.Depth(n.Time, e.now)
}

// Position is the current world position of a note, for presentation.
func (e *Engine) Position(n *game.Note) mgl64.Vec3 {
	return e.cfg.Position(n, e.now)
}

// Visible returns the notes a presentation layer should draw: not missed,
// not hit longer ago than the fade window, and scheduled close enough to the
// current time.
func (e *Engine) Visible() []*game.Note {
	var visible []*game.Note
	for i := range e.chart.Notes {
		n := &e.chart.Notes[i]
		until := n.Time - e.now
		if until > e.cfg.VisibleAhead {
			break
		}
		if until < -e.cfg.VisibleBehind || n.IsMissed() {
			continue
		}
		if at, ok := n.HitTime(); ok && e.now-at > e.cfg.HitFade {
			continue
		}
		visible = append(visible, n)
	}
	return visible
}
