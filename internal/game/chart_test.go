package game

import (
	"errors"
	"testing"
	"time"
)

func TestNewChartOrdersNotes(t *testing.T) {
	specs := []Spec{
		{Time: 3 * time.Second, Type: Right},
		{Time: time.Second, LineIndex: 1},
		{Time: 3 * time.Second, LineIndex: 2, Type: Right},
		{Time: 2 * time.Second},
	}
	c, err := NewChart(specs, Difficulty{Name: "Expert"})
	if nil != err {
		t.Fatal(err)
	}
	want := []time.Duration{time.Second, 2 * time.Second, 3 * time.Second, 3 * time.Second}
	for i, n := range c.Notes {
		if n.ID != i {
			t.Errorf("note %d has id %d", i, n.ID)
		}
		if n.Time != want[i] {
			t.Errorf("note %d time %v, want %v", i, n.Time, want[i])
		}
	}
	// stable among equal times
	if c.Notes[2].LineIndex != 0 || c.Notes[3].LineIndex != 2 {
		t.Error("notes sharing a time were reordered")
	}
	if c.LeftCount != 2 || c.RightCount != 2 || c.NoteCount != 4 {
		t.Errorf("counts %v/%v/%v", c.LeftCount, c.RightCount, c.NoteCount)
	}
	if c.Duration() != 3*time.Second {
		t.Errorf("duration %v", c.Duration())
	}
}

func TestNewChartRejects(t *testing.T) {
	bad := map[string]Spec{
		"lane":      {LineIndex: Lanes},
		"layer":     {LineLayer: -1},
		"saber":     {Type: 2},
		"direction": {CutDirection: Any + 1},
		"time":      {Time: -time.Millisecond},
	}
	for name, s := range bad {
		if _, err := NewChart([]Spec{s}, Difficulty{}); nil == err {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := NewChart(nil, Difficulty{}); !errors.Is(err, ErrEmptyChart) {
		t.Errorf("empty chart: got %v", err)
	}
}
