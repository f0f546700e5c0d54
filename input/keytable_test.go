package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/tilechase/engine"
)

func TestTranslate(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Command
	}{
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Command{Kind: Quit}},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Command{Kind: Quit}},
		{"enter pauses", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Command{Kind: Pause}},
		{"shift-enter restarts", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModShift), Command{Kind: Restart}},
		{"ctrl-r restarts", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), Command{Kind: Restart}},
		{"ctrl-s spices", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), Command{Kind: Spice}},
		{"ctrl-n mutes", tcell.NewEventKey(tcell.KeyCtrlN, 0, tcell.ModCtrl), Command{Kind: Mute}},
		{"tab shows stats", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), Command{Kind: Stats}},
		{"space backtracks", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), Command{Kind: Backtrack, Key: engine.BacktrackKey}},
		{"alt-space backtracks p2", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModAlt), Command{Kind: Backtrack, Player: 1, Key: engine.BacktrackKey}},
		{"letter types", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), Command{Kind: Type, Key: "k"}},
		{"capital lowers", tcell.NewEventKey(tcell.KeyRune, 'K', tcell.ModShift), Command{Kind: Type, Key: "k"}},
		{"alt routes to p2", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt), Command{Kind: Type, Player: 1, Key: "a"}},
		{"arrow unbound", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Command{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Translate(tt.ev))
		})
	}
}

func TestTranslateNil(t *testing.T) {
	assert.Equal(t, Command{}, DefaultKeyTable().Translate(nil))
}

func TestCommandIsPlayer(t *testing.T) {
	assert.True(t, Command{Kind: Type}.IsPlayer())
	assert.True(t, Command{Kind: Backtrack}.IsPlayer())
	assert.False(t, Command{Kind: Pause}.IsPlayer())
	assert.Equal(t, "restart", Restart.String())
	assert.Equal(t, "unknown", Kind(200).String())
}
