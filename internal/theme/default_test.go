package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"git.lost.host/meutraa/sabers/internal/game"
)

func TestGlyphs(t *testing.T) {
	th := DefaultTheme{}
	seen := map[rune]bool{}
	for d := game.Up; d <= game.Any; d++ {
		g := th.Glyph(d)
		if g == '?' || seen[g] {
			t.Errorf("%v has glyph %q", d, g)
		}
		seen[g] = true
	}
	if th.Glyph(game.Any+1) != '?' {
		t.Error("unknown direction has a glyph")
	}
}

func TestSabersDiffer(t *testing.T) {
	th := DefaultTheme{}
	l, _, _ := th.Note(game.Left).Decompose()
	r, _, _ := th.Note(game.Right).Decompose()
	if l == r {
		t.Error("both sabers share a color")
	}
	dim, _, _ := th.HitBar(0.2, false).Decompose()
	bright, _, _ := th.HitBar(1, false).Decompose()
	if dim == bright {
		t.Error("light level does not change the hit bar")
	}
	flash, _, _ := th.HitBar(1, true).Decompose()
	if flash != tcell.NewRGBColor(236, 30, 0) {
		t.Errorf("flash color = %v", flash)
	}
}
