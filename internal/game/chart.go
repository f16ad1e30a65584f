package game

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrEmptyChart = errors.New("chart has no notes")

// Chart is the note arena for one session. Notes are ordered by time and a
// note's ID is its index.
type Chart struct {
	Notes      []Note
	NoteCount  int64
	LeftCount  int64
	RightCount int64
	Difficulty Difficulty
}

func validate(i int, s *Spec) error {
	switch {
	case s.LineIndex < 0 || s.LineIndex >= Lanes:
		return fmt.Errorf("note %d: line index %d out of range", i, s.LineIndex)
	case s.LineLayer < 0 || s.LineLayer >= Layers:
		return fmt.Errorf("note %d: line layer %d out of range", i, s.LineLayer)
	case s.Type != Left && s.Type != Right:
		return fmt.Errorf("note %d: unknown saber %d", i, s.Type)
	case s.CutDirection > Any:
		return fmt.Errorf("note %d: unknown cut direction %d", i, s.CutDirection)
	case s.Time < 0:
		return fmt.Errorf("note %d: negative time %v", i, s.Time)
	}
	return nil
}

// NewChart validates the specs and builds a time ordered chart. Specs sharing
// a time keep their relative order.
func NewChart(specs []Spec, difficulty Difficulty) (*Chart, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyChart
	}
	for i := range specs {
		if err := validate(i, &specs[i]); nil != err {
			return nil, err
		}
	}

	ordered := make([]Spec, len(specs))
	copy(ordered, specs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Time < ordered[j].Time
	})

	c := &Chart{
		Notes:      make([]Note, len(ordered)),
		NoteCount:  int64(len(ordered)),
		Difficulty: difficulty,
	}
	for i, s := range ordered {
		c.Notes[i] = Note{ID: i, Spec: s}
		if s.Type == Left {
			c.LeftCount++
		} else {
			c.RightCount++
		}
	}
	return c, nil
}

// Duration is the time of the last note.
func (c *Chart) Duration() time.Duration {
	if len(c.Notes) == 0 {
		return 0
	}
	return c.Notes[len(c.Notes)-1].Time
}

// Resolved reports whether every note is hit or missed.
func (c *Chart) Resolved() bool {
	for i := range c.Notes {
		if !c.Notes[i].Terminal() {
			return false
		}
	}
	return true
}
