package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"git.lost.host/meutraa/sabers/internal/effects"
	"git.lost.host/meutraa/sabers/internal/engine"
	"git.lost.host/meutraa/sabers/internal/game"
	"git.lost.host/meutraa/sabers/internal/score"
	"git.lost.host/meutraa/sabers/internal/theme"
)

const (
	laneWidth   = 6
	barOffset   = 4 // Rows between the hit bar and the bottom edge
	labelFrames = 30
	colsPerUnit = laneWidth / 0.6 // Lanes are 0.6 world units apart
)

type decoration struct {
	X, Y    int
	Content string
	Style   tcell.Style
	Frames  int // remaining frames until removed, negative never expires
}

// DefaultRenderer draws a top down view of the lanes: notes scroll from the
// top towards the hit bar as their depth approaches the player plane.
type DefaultRenderer struct {
	Screen tcell.Screen
	Theme  theme.Theme

	width, height int
	decorations   []*decoration
}

func New(screen tcell.Screen, th theme.Theme) *DefaultRenderer {
	return &DefaultRenderer{Screen: screen, Theme: th}
}

func (r *DefaultRenderer) Init() error {
	if err := r.Screen.Init(); nil != err {
		return err
	}
	r.Screen.HideCursor()
	r.Screen.Clear()
	r.width, r.height = r.Screen.Size()
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	r.Screen.Fini()
	return nil
}

func (r *DefaultRenderer) hitRow() int {
	return r.height - barOffset
}

func (r *DefaultRenderer) laneCol(lane int) int {
	left := (r.width - game.Lanes*laneWidth) / 2
	return left + lane*laneWidth + laneWidth/2
}

// row maps a depth to a screen row, the spawn depth on row 1 and the player
// plane on the hit bar.
func (r *DefaultRenderer) row(cfg engine.Config, depth float64) int {
	span := math.Abs(cfg.SpawnDistance)
	rows := float64(r.hitRow() - 1)
	return r.hitRow() - int(math.Round((cfg.PlayerDepth-depth)/span*rows))
}

func (r *DefaultRenderer) fill(row, col int, message string, style tcell.Style) {
	for _, c := range message {
		if col >= 0 && col < r.width && row >= 0 && row < r.height {
			r.Screen.SetContent(col, row, c, nil, style)
		}
		col++
	}
}

func (r *DefaultRenderer) addDecoration(col, row int, content string, style tcell.Style, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Style:   style,
		Frames:  frames,
	})
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			continue
		}
		r.fill(d.Y, d.X, d.Content, d.Style)
		d.Frames--
		nd = append(nd, d)
	}
	r.decorations = nd
}

func (r *DefaultRenderer) label(n *game.Note, text string, style tcell.Style) {
	col := r.laneCol(n.LineIndex) - len(text)/2
	r.addDecoration(col, r.hitRow()+1+n.LineLayer%2, text, style, labelFrames)
}

func (r *DefaultRenderer) OnNoteHit(n *game.Note, a game.Accuracy) {
	r.label(n, a.String(), r.Theme.Grade(a))
}

func (r *DefaultRenderer) OnNoteMiss(n *game.Note) {
	r.label(n, "MISS", r.Theme.HitBar(1, true))
}

func (r *DefaultRenderer) OnSongEnd() {
	r.addDecoration(r.laneCol(0), r.height/2, "SONG END", r.Theme.Text().Bold(true), -1)
}

func (r *DefaultRenderer) Draw(scene Scene, sc score.Score, fb *effects.Feedback) {
	r.width, r.height = r.Screen.Size()
	r.Screen.Clear()

	cfg := scene.Config()
	dx, _ := fb.Shake()
	shift := int(math.Round(dx * colsPerUnit))

	// Render the hit bar
	bar := r.Theme.HitBar(fb.Light(0.4), fb.Flash > 0.5)
	for i := 0; i < game.Lanes; i++ {
		r.fill(r.hitRow(), r.laneCol(i)-laneWidth/2+1+shift, "─────", bar)
	}

	// Render notes
	for _, n := range scene.Visible() {
		col := r.laneCol(n.LineIndex) + shift
		if a, ok := n.Accuracy(); ok {
			r.fill(r.hitRow(), col, string(r.Theme.Glyph(n.CutDirection)), r.Theme.Grade(a))
			continue
		}
		row := r.row(cfg, scene.Depth(n))
		if row < 1 || row >= r.height {
			continue
		}
		r.fill(row, col, string(r.Theme.Glyph(n.CutDirection)), r.Theme.Note(n.Type))
	}

	r.tickDecorations()
	r.drawStats(scene, sc)
	r.Screen.Show()
}

func (r *DefaultRenderer) drawStats(scene Scene, sc score.Score) {
	text := r.Theme.Text()
	lines := []string{
		fmt.Sprintf("       Time: %8.2f s", scene.Now().Seconds()),
		fmt.Sprintf("     Status: %8v", scene.Status()),
		fmt.Sprintf("      Score: %8v", sc.Points),
		fmt.Sprintf("      Combo: %8v", sc.Combo),
		fmt.Sprintf(" Multiplier: %7vx", sc.Multiplier),
		fmt.Sprintf("       Mean: %6.2f ms", float64(sc.Mean)/float64(time.Millisecond)),
		fmt.Sprintf("      Stdev: %6.2f ms", float64(sc.Stdev)/float64(time.Millisecond)),
	}
	for i, l := range lines {
		r.fill(2+i, 2, l, text)
	}
	row := 3 + len(lines)
	for i := len(game.Accuracies) - 1; i >= 0; i-- {
		a := game.Accuracies[i]
		r.fill(row, 2, fmt.Sprintf("%11s: %8v", a, sc.Counts[a]), r.Theme.Grade(a))
		row++
	}
	r.fill(row, 2, fmt.Sprintf("%11s: %8v", "MISS", sc.MissCount), r.Theme.HitBar(1, true))
}
