package theme

import (
	"github.com/gdamore/tcell/v2"

	"git.lost.host/meutraa/sabers/internal/game"
)

type Theme interface {
	Note(saber game.Saber) tcell.Style
	Glyph(direction game.CutDirection) rune
	Grade(accuracy game.Accuracy) tcell.Style
	HitBar(light float64, flash bool) tcell.Style
	Text() tcell.Style
}
