package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/whale-simulator/engine"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]engine.Intent

	// Printable rune bindings
	Runes map[rune]engine.Intent
}

// DefaultKeyTable returns arrows, WASD and hjkl for movement plus q/Esc/Ctrl+C to quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Intent{
			tcell.KeyUp:     engine.IntentUp,
			tcell.KeyDown:   engine.IntentDown,
			tcell.KeyLeft:   engine.IntentLeft,
			tcell.KeyRight:  engine.IntentRight,
			tcell.KeyEscape: engine.IntentQuit,
			tcell.KeyCtrlC:  engine.IntentQuit,
			tcell.KeyCtrlQ:  engine.IntentQuit,
		},
		Runes: map[rune]engine.Intent{
			'w': engine.IntentUp,
			'k': engine.IntentUp,
			's': engine.IntentDown,
			'j': engine.IntentDown,
			'a': engine.IntentLeft,
			'h': engine.IntentLeft,
			'd': engine.IntentRight,
			'l': engine.IntentRight,
			'W': engine.IntentUp,
			'S': engine.IntentDown,
			'A': engine.IntentLeft,
			'D': engine.IntentRight,
			'q': engine.IntentQuit,
			'Q': engine.IntentQuit,
		},
	}
}

// Lookup returns the intent bound to a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) engine.Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
