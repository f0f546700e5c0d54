// Package render draws the game onto a tcell screen
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tilechase/engine"
	"github.com/lixenwraith/tilechase/grid"
	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/status"
	"github.com/lixenwraith/tilechase/vmath"
)

// View is everything a frame shows besides the board itself
type View struct {
	Game      *engine.Game
	Best      int
	AudioOn   bool
	Muted     bool
	ShowStats bool
	Stats     []status.Metric
}

// Layout places the board on screen
type Layout struct {
	X0, Y0           int // top-left of tile (0,0)
	Width            int // board side in tiles
	ScreenW, ScreenH int
}

// TileOrigin is the screen column and row of tile p
func (l Layout) TileOrigin(p vmath.Pos) (int, int) {
	return l.X0 + p.X*parameter.CellWidth, l.Y0 + p.Y
}

// Renderer owns no game state; Draw reads the game on the caller's goroutine
type Renderer struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Layout centres a board of width tiles between the status bar and help line
func (r *Renderer) Layout(width int) Layout {
	w, h := r.screen.Size()
	l := Layout{Width: width, ScreenW: w, ScreenH: h}
	l.X0 = max(0, (w-width*parameter.CellWidth)/2)
	avail := h - parameter.TopMargin - parameter.BottomMargin
	l.Y0 = parameter.TopMargin + max(0, (avail-width)/2)
	return l
}

// Draw renders one full frame and shows it
func (r *Renderer) Draw(v View) {
	r.screen.SetStyle(styleOf(RgbLabel, RgbBackground))
	r.screen.Clear()

	l := r.Layout(v.Game.Width())
	r.drawBoard(l, v.Game)

	switch {
	case !v.Game.Started():
		r.drawPrompt(l, parameter.PromptStart)
	case v.Game.Over():
		r.drawPrompt(l, parameter.PromptGameOver)
	}

	r.drawStatus(l, v)
	r.drawHelp(l)
	if v.ShowStats {
		r.drawStats(l, v.Stats)
	}
	r.screen.Show()
}

func (r *Renderer) drawBoard(l Layout, g *engine.Game) {
	live := g.LivePlayers()
	for _, c := range g.Grid().Cells() {
		x, y := l.TileOrigin(c.Pos)
		fg, bg := cellColors(c.Category)
		text := c.Label

		switch {
		case c.Category == grid.Player:
			text = c.Glyph
			fg = PlayerColor(playerAt(g, c.Pos))
		case c.Category.IsCharacter():
			text = c.Glyph
		case c.Category == grid.Corrupt:
			text = c.Seq
		default:
			fg = Blend(bg, fg, lightAt(live, c.Pos))
		}
		r.fill(x, y, parameter.CellWidth, bg)
		r.text(x, y, text, styleOf(fg, bg))
	}
}

// lightAt is the spotlight level at p; everything is lit with nobody alive
func lightAt(live []*engine.Player, p vmath.Pos) float64 {
	if len(live) == 0 {
		return 1
	}
	dist := math.Inf(1)
	for _, pl := range live {
		dist = min(dist, pl.Pos.Sub(p).Norm())
	}
	return Spotlight(dist)
}

func playerAt(g *engine.Game, p vmath.Pos) int {
	for _, pl := range g.Players() {
		if pl.Alive && pl.Pos == p {
			return pl.Num
		}
	}
	return 0
}

// drawPrompt writes one word per row, one letter per tile, across the board centre
func (r *Renderer) drawPrompt(l Layout, words []string) {
	st := styleOf(RgbPrompt, RgbBackground).Bold(true)
	top := l.Width/2 - len(words)/2
	for i, word := range words {
		letters := []rune(word)
		left := l.Width/2 - len(letters)/2
		for j, ch := range letters {
			x, y := l.TileOrigin(vmath.P(left+j, top+i))
			r.fill(x, y, parameter.CellWidth, RgbBackground)
			r.screen.SetContent(x, y, ch, nil, st)
		}
	}
}

func (r *Renderer) drawHelp(l Layout) {
	y := l.ScreenH - 1
	if y < parameter.TopMargin {
		return
	}
	help := runewidth.Truncate(parameter.HelpText, l.ScreenW, "…")
	r.text(max(0, (l.ScreenW-runewidth.StringWidth(help))/2), y, help, styleOf(RgbHelp, RgbBackground))
}

// text draws s from column x and returns the column after it
func (r *Renderer) text(x, y int, s string, st tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x += max(1, runewidth.RuneWidth(ch))
	}
	return x
}

func (r *Renderer) fill(x, y, n int, bg RGB) {
	st := styleOf(bg, bg)
	for i := 0; i < n; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, st)
	}
}

func styleOf(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Tcell()).Background(bg.Tcell())
}
