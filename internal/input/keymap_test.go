package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestProcessEventSpecialKeys(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		key  tcell.Key
		want Action
	}{
		{tcell.KeyEscape, ActionQuit},
		{tcell.KeyCtrlC, ActionQuit},
		{tcell.KeyCtrlZ, ActionUndo},
		{tcell.KeyTab, ActionPaletteNext},
		{tcell.KeyBacktab, ActionPalettePrev},
		{tcell.KeyUp, ActionPalettePrev},
		{tcell.KeyDown, ActionPaletteNext},
	}
	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, 0, tcell.ModNone)
		if got := p.ProcessEvent(ev); got.Action != tt.want {
			t.Errorf("key %v -> %v, want %v", tt.key, got.Action, tt.want)
		}
	}
}

func TestProcessEventRunes(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		r    rune
		want Action
	}{
		{'q', ActionQuit},
		{'u', ActionUndo},
		{'c', ActionClear},
		{'e', ActionExport},
		{'i', ActionImport},
		{'t', ActionToggleLetters},
		{'j', ActionPaletteNext},
		{'k', ActionPalettePrev},
	}
	for _, tt := range tests {
		ev := tcell.NewEventKey(tcell.KeyRune, tt.r, tcell.ModNone)
		if got := p.ProcessEvent(ev); got.Action != tt.want {
			t.Errorf("rune %q -> %v, want %v", tt.r, got.Action, tt.want)
		}
	}
}

func TestProcessEventUnmappedRunePassesThrough(t *testing.T) {
	p := NewInputProcessor()
	ev := tcell.NewEventKey(tcell.KeyRune, 'Z', tcell.ModNone)
	got := p.ProcessEvent(ev)
	if got.Action != ActionNone {
		t.Errorf("Action = %v, want ActionNone", got.Action)
	}
	if got.Rune != 'Z' {
		t.Errorf("Rune = %q, want 'Z'", got.Rune)
	}
}
