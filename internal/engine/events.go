package engine

import (
	"time"

	"git.lost.host/meutraa/sabers/internal/game"
)

type EventKind uint8

const (
	NoteHit EventKind = iota
	NoteMiss
	SongEnd
)

func (k EventKind) String() string {
	switch k {
	case NoteHit:
		return "hit"
	case NoteMiss:
		return "miss"
	case SongEnd:
		return "song-end"
	}
	return "unknown"
}

// Event is one outcome of an update step. Note is nil for SongEnd and
// Accuracy is only meaningful for NoteHit.
type Event struct {
	Kind     EventKind
	Note     *game.Note
	Accuracy game.Accuracy
	Time     time.Duration
}

// Listener receives engine outcomes as they happen. Every note produces at
// most one OnNoteHit or OnNoteMiss and OnSongEnd is called once.
type Listener interface {
	OnNoteHit(note *game.Note, accuracy game.Accuracy)
	OnNoteMiss(note *game.Note)
	OnSongEnd()
}

// Listeners fans every callback out in order.
type Listeners []Listener

func (ls Listeners) OnNoteHit(note *game.Note, accuracy game.Accuracy) {
	for _, l := range ls {
		l.OnNoteHit(note, accuracy)
	}
}

func (ls Listeners) OnNoteMiss(note *game.Note) {
	for _, l := range ls {
		l.OnNoteMiss(note)
	}
}

func (ls Listeners) OnSongEnd() {
	for _, l := range ls {
		l.OnSongEnd()
	}
}

// Callbacks adapts plain functions to a Listener. Nil fields are skipped.
type Callbacks struct {
	Hit  func(note *game.Note, accuracy game.Accuracy)
	Miss func(note *game.Note)
	End  func()
}

func (c Callbacks) OnNoteHit(note *game.Note, accuracy game.Accuracy) {
	if c.Hit != nil {
		c.Hit(note, accuracy)
	}
}

func (c Callbacks) OnNoteMiss(note *game.Note) {
	if c.Miss != nil {
		c.Miss(note)
	}
}

func (c Callbacks) OnSongEnd() {
	if c.End != nil {
		c.End()
	}
}

func (e Event) dispatch(l Listener) {
	if l == nil {
		return
	}
	switch e.Kind {
	case NoteHit:
		l.OnNoteHit(e.Note, e.Accuracy)
	case NoteMiss:
		l.OnNoteMiss(e.Note)
	case SongEnd:
		l.OnSongEnd()
	}
}
