// internal/input/action.go
package input

// Action represents an editor operation triggered by input.
type Action int

const (
	ActionNone Action = iota

	ActionQuit
	ActionUndo
	ActionClear
	ActionExport
	ActionImport
	ActionToggleLetters

	ActionPaletteNext
	ActionPalettePrev
)

// ActionEvent carries a resolved action plus the rune that produced it
// (useful for prompts that consume raw characters).
type ActionEvent struct {
	Action Action
	Rune   rune
}
