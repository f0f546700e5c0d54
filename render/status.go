package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tilechase/parameter"
	"github.com/lixenwraith/tilechase/status"
)

// drawStatus fills the top row: scores and speed on the left, pause and audio on the right
func (r *Renderer) drawStatus(l Layout, v View) {
	g := v.Game
	base := styleOf(RgbStatusText, RgbStatusBg)
	r.fill(0, 0, l.ScreenW, RgbStatusBg)

	x := 1
	for _, p := range g.Players() {
		label := fmt.Sprintf("P%d %d", p.Num+1, p.Score)
		if g.Started() && !p.Alive {
			label += " dead"
		}
		x = r.text(x, 0, label, base.Foreground(PlayerColor(p.Num).Tcell()).Bold(true))
		x = r.text(x, 0, "  ", base)
	}
	x = r.text(x, 0, fmt.Sprintf("misses %d  ", g.Misses()), base)
	x = r.progress(x, g.Progress())
	r.text(x, 0, fmt.Sprintf("  best %d", max(v.Best, g.BestScore())), base)

	audio := ""
	if v.AudioOn {
		audio = parameter.AudioStr
		if v.Muted {
			audio = parameter.MutedText
		}
	}
	rx := l.ScreenW - 1 - runewidth.StringWidth(audio)
	r.text(rx, 0, audio, base)

	if g.Started() && g.Paused() && !g.Over() {
		paused := styleOf(RgbPausedFg, RgbPausedBg).Bold(true)
		r.text(rx-runewidth.StringWidth(parameter.PausedText)-1, 0, parameter.PausedText, paused)
	}
}

// progress draws the speed bar and returns the column after it
func (r *Renderer) progress(x int, p float64) int {
	filled := int(min(max(p, 0), 1)*parameter.ProgressWidth + 0.5)
	on := styleOf(RgbProgressFill, RgbStatusBg)
	off := styleOf(RgbProgressRest, RgbStatusBg)
	for i := 0; i < parameter.ProgressWidth; i++ {
		st, ch := off, '░'
		if i < filled {
			st, ch = on, '█'
		}
		r.screen.SetContent(x+i, 0, ch, nil, st)
	}
	return x + parameter.ProgressWidth
}

// drawStats lists metrics in a box at the top-left of the board area
func (r *Renderer) drawStats(l Layout, metrics []status.Metric) {
	if len(metrics) == 0 {
		return
	}
	keyW, valW := 0, 0
	for _, m := range metrics {
		keyW = max(keyW, runewidth.StringWidth(m.Key))
		valW = max(valW, runewidth.StringWidth(m.Value))
	}
	boxW := keyW + valW + 3
	rows := min(len(metrics), l.ScreenH-parameter.TopMargin-parameter.BottomMargin)
	st := styleOf(RgbStatusText, RgbStatusBg)
	for i := 0; i < rows; i++ {
		y := parameter.TopMargin + i
		r.fill(0, y, boxW+1, RgbStatusBg)
		m := metrics[i]
		r.text(1, y, m.Key, st)
		r.text(boxW-runewidth.StringWidth(m.Value), y, m.Value, st.Bold(true))
	}
}
