// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special key events to editor actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps plain rune presses to actions.
type RuneKeymap map[rune]Action

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Special Keys ---
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyUp] = ActionPalettePrev
	p.keymap[tcell.KeyDown] = ActionPaletteNext
	p.keymap[tcell.KeyTab] = ActionPaletteNext
	p.keymap[tcell.KeyBacktab] = ActionPalettePrev

	// --- Rune Mappings ---
	p.runeKeymap['q'] = ActionQuit
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['c'] = ActionClear
	p.runeKeymap['e'] = ActionExport
	p.runeKeymap['i'] = ActionImport
	p.runeKeymap['t'] = ActionToggleLetters
	p.runeKeymap['j'] = ActionPaletteNext
	p.runeKeymap['k'] = ActionPalettePrev
}

// ProcessEvent takes a tcell key event and returns the corresponding
// ActionEvent. Unmapped input resolves to ActionNone with the raw rune.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()

	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action}
	}

	if key == tcell.KeyRune {
		r := ev.Rune()
		if action, ok := p.runeKeymap[r]; ok {
			return ActionEvent{Action: action, Rune: r}
		}
		return ActionEvent{Action: ActionNone, Rune: r}
	}

	return ActionEvent{Action: ActionNone}
}
