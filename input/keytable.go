package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilechase/engine"
)

// KeyTable maps special keys to system commands
type KeyTable struct {
	Keys map[tcell.Key]Kind

	// ShiftKeys override Keys when Shift is held
	ShiftKeys map[tcell.Key]Kind

	// AltPlayer is the player that Alt-modified keys belong to
	AltPlayer int
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Kind{
			tcell.KeyCtrlC:  Quit,
			tcell.KeyEscape: Quit,
			tcell.KeyEnter:  Pause,
			tcell.KeyCtrlR:  Restart,
			tcell.KeyCtrlS:  Spice,
			tcell.KeyCtrlN:  Mute,
			tcell.KeyTab:    Stats,
		},
		ShiftKeys: map[tcell.Key]Kind{
			tcell.KeyEnter: Restart,
		},
		AltPlayer: 1,
	}
}

// Translate maps ev to a command; unbound keys give a None command
func (kt *KeyTable) Translate(ev *tcell.EventKey) Command {
	if ev == nil {
		return Command{}
	}
	mod := ev.Modifiers()
	key := ev.Key()

	if key != tcell.KeyRune {
		if mod&tcell.ModShift != 0 {
			if k, ok := kt.ShiftKeys[key]; ok {
				return Command{Kind: k}
			}
		}
		if k, ok := kt.Keys[key]; ok {
			return Command{Kind: k}
		}
		return Command{}
	}

	player := 0
	if mod&tcell.ModAlt != 0 {
		player = kt.AltPlayer
	}
	r := ev.Rune()
	switch {
	case string(r) == engine.BacktrackKey:
		return Command{Kind: Backtrack, Player: player, Key: engine.BacktrackKey}
	case unicode.IsPrint(r) && !unicode.IsSpace(r):
		return Command{Kind: Type, Player: player, Key: string(unicode.ToLower(r))}
	}
	return Command{}
}
