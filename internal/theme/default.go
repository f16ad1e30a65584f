package theme

import (
	"github.com/gdamore/tcell/v2"

	"git.lost.host/meutraa/sabers/internal/game"
)

type rgb struct {
	R, G, B int32
}

func (c rgb) color() tcell.Color {
	return tcell.NewRGBColor(c.R, c.G, c.B)
}

func (c rgb) scale(f float64) tcell.Color {
	return tcell.NewRGBColor(int32(float64(c.R)*f), int32(float64(c.G)*f), int32(float64(c.B)*f))
}

var (
	saberColors = [...]rgb{
		game.Left:  {236, 30, 0},  // red
		game.Right: {0, 118, 236}, // blue
	}
	gradeColors = [...]rgb{
		game.Bad:     {236, 128, 0}, // orange
		game.Good:    {236, 195, 0}, // yellow
		game.Perfect: {0, 236, 128}, // green
	}
	barColor  = rgb{255, 255, 255}
	missColor = rgb{236, 30, 0}
	glyphs    = [...]rune{
		game.Up:        '↑',
		game.Down:      '↓',
		game.LeftCut:   '←',
		game.RightCut:  '→',
		game.UpLeft:    '↖',
		game.UpRight:   '↗',
		game.DownLeft:  '↙',
		game.DownRight: '↘',
		game.Any:       '⬤',
	}
)

type DefaultTheme struct{}

func (t *DefaultTheme) Note(saber game.Saber) tcell.Style {
	if int(saber) >= len(saberColors) {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(saberColors[saber].color()).Bold(true)
}

func (t *DefaultTheme) Glyph(direction game.CutDirection) rune {
	if int(direction) >= len(glyphs) {
		return '?'
	}
	return glyphs[direction]
}

func (t *DefaultTheme) Grade(accuracy game.Accuracy) tcell.Style {
	if int(accuracy) >= len(gradeColors) {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(gradeColors[accuracy].color())
}

// HitBar dims the bar to the light level, or turns it red on a miss flash.
func (t *DefaultTheme) HitBar(light float64, flash bool) tcell.Style {
	if flash {
		return tcell.StyleDefault.Foreground(missColor.color())
	}
	return tcell.StyleDefault.Foreground(barColor.scale(light))
}

func (t *DefaultTheme) Text() tcell.Style {
	return tcell.StyleDefault
}
