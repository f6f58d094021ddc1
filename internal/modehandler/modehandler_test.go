package modehandler

import (
	"strings"
	"testing"

	"github.com/bethropolis/gridmap/internal/config"
	"github.com/bethropolis/gridmap/internal/core"
	"github.com/bethropolis/gridmap/internal/core/clipboard"
	"github.com/bethropolis/gridmap/internal/event"
	"github.com/bethropolis/gridmap/internal/input"
	"github.com/bethropolis/gridmap/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

type fixture struct {
	mh    *ModeHandler
	model *core.Model
	clip  *clipboard.Manager
	quit  chan struct{}
}

func newFixture(t *testing.T, editorCfg *config.EditorConfig) *fixture {
	t.Helper()
	if editorCfg == nil {
		editorCfg = &config.EditorConfig{Rows: 3, Cols: 4}
	}

	model := core.NewModel(editorCfg.Rows, editorCfg.Cols)
	eventManager := event.NewManager()
	model.SetEventManager(eventManager)
	clip := clipboard.NewManager(false) // internal register only
	quit := make(chan struct{})

	mh := New(Config{
		Model:          model,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusbar.New(statusbar.DefaultConfig()),
		Clipboard:      clip,
		EditorConfig:   editorCfg,
		QuitSignal:     quit,
	})
	return &fixture{mh: mh, model: model, clip: clip, quit: quit}
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestQuitClosesSignalOnce(t *testing.T) {
	f := newFixture(t, nil)
	f.mh.HandleKeyEvent(keyRune('q'))
	select {
	case <-f.quit:
	default:
		t.Fatal("quit signal not closed")
	}
	// A second quit must not panic on the closed channel.
	f.mh.HandleKeyEvent(keyRune('q'))
}

func TestMarkerPromptSetsCustomTile(t *testing.T) {
	f := newFixture(t, nil)

	// Cycling backwards from '#' lands on the empty tile, then the GO
	// sentinel, which opens the prompt.
	f.mh.HandleKeyEvent(keyRune('k'))
	f.mh.HandleKeyEvent(keyRune('k'))
	if f.mh.GetCurrentMode() != ModeMarkerPrompt {
		t.Fatalf("mode = %v, want ModeMarkerPrompt", f.mh.GetCurrentMode())
	}

	f.mh.HandleKeyEvent(keyRune('X'))
	if f.mh.GetCurrentMode() != ModeGrid {
		t.Errorf("mode = %v after marker entry, want ModeGrid", f.mh.GetCurrentMode())
	}
	if f.model.SelectedTile() != "X" {
		t.Errorf("SelectedTile() = %q, want %q", f.model.SelectedTile(), "X")
	}
}

func TestMarkerPromptEscapeCancels(t *testing.T) {
	f := newFixture(t, nil)
	f.mh.HandleKeyEvent(keyRune('k'))
	f.mh.HandleKeyEvent(keyRune('k'))

	f.mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if f.mh.GetCurrentMode() != ModeGrid {
		t.Errorf("mode = %v after escape, want ModeGrid", f.mh.GetCurrentMode())
	}
	// The cancelled prompt leaves the prior selection (the empty tile
	// reached on the way to the sentinel) in place.
	if f.model.SelectedTile() != " " {
		t.Errorf("SelectedTile() = %q, want %q", f.model.SelectedTile(), " ")
	}
}

func TestExportAlwaysAddZero(t *testing.T) {
	f := newFixture(t, &config.EditorConfig{Rows: 2, Cols: 3, AlwaysAddZero: true})

	f.mh.HandleKeyEvent(keyRune('e'))

	if sym, _ := f.model.Cell(0, 0); sym != '0' {
		t.Errorf("cell (0,0) = %q, want '0'", sym)
	}
	// The anchor write is a regular gesture, so it stays undoable.
	if f.model.History().Len() != 1 {
		t.Errorf("history depth = %d, want 1", f.model.History().Len())
	}

	text, err := f.clip.Read()
	if err != nil {
		t.Fatalf("clipboard read failed: %v", err)
	}
	if !strings.Contains(text, "0  *") {
		t.Errorf("exported text missing zero anchor row: %q", text)
	}
}

func TestExportConfirmDeclined(t *testing.T) {
	f := newFixture(t, &config.EditorConfig{Rows: 2, Cols: 3})

	f.mh.HandleKeyEvent(keyRune('e'))
	if f.mh.GetCurrentMode() != ModeExportConfirm {
		t.Fatalf("mode = %v, want ModeExportConfirm", f.mh.GetCurrentMode())
	}

	f.mh.HandleKeyEvent(keyRune('n'))
	if f.mh.GetCurrentMode() != ModeGrid {
		t.Errorf("mode = %v after answer, want ModeGrid", f.mh.GetCurrentMode())
	}
	if sym, _ := f.model.Cell(0, 0); sym != ' ' {
		t.Errorf("cell (0,0) = %q, want untouched space", sym)
	}
	if text, err := f.clip.Read(); err != nil || text != f.model.ExportText() {
		t.Errorf("clipboard = (%q, %v), want the exported literal", text, err)
	}
}

func TestExportConfirmEscapeCancels(t *testing.T) {
	f := newFixture(t, &config.EditorConfig{Rows: 2, Cols: 3})
	f.mh.HandleKeyEvent(keyRune('e'))
	f.mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	if f.mh.GetCurrentMode() != ModeGrid {
		t.Errorf("mode = %v, want ModeGrid", f.mh.GetCurrentMode())
	}
	if _, err := f.clip.Read(); err == nil {
		t.Error("export ran despite being cancelled")
	}
}

func TestExportSkipsConfirmWhenZeroPresent(t *testing.T) {
	f := newFixture(t, &config.EditorConfig{Rows: 2, Cols: 3})
	f.model.BeginGesture()
	f.model.PaintCell(0, 0, '0')
	f.model.EndGesture()

	f.mh.HandleKeyEvent(keyRune('e'))
	if f.mh.GetCurrentMode() != ModeGrid {
		t.Errorf("mode = %v, export should not have prompted", f.mh.GetCurrentMode())
	}
	if _, err := f.clip.Read(); err != nil {
		t.Errorf("clipboard read failed: %v", err)
	}
}

func TestImportFromClipboard(t *testing.T) {
	f := newFixture(t, &config.EditorConfig{Rows: 2, Cols: 3})
	if err := f.clip.Write("\"\\\n#~W*\\\n   *\\\n\";"); err != nil {
		t.Fatal(err)
	}

	f.mh.HandleKeyEvent(keyRune('i'))

	if got := string(f.model.Snapshot()[0]); got != "#~W" {
		t.Errorf("row 0 = %q, want %q", got, "#~W")
	}
}

func TestImportBadLiteralKeepsGrid(t *testing.T) {
	f := newFixture(t, &config.EditorConfig{Rows: 2, Cols: 3})
	before := f.model.ExportText()
	if err := f.clip.Write("not a map literal"); err != nil {
		t.Fatal(err)
	}

	f.mh.HandleKeyEvent(keyRune('i'))

	if f.model.ExportText() != before {
		t.Error("failed import modified the grid")
	}
}

func TestToggleLetters(t *testing.T) {
	f := newFixture(t, nil)
	if f.mh.ShowTileLetters() {
		t.Fatal("letters should start off")
	}
	f.mh.HandleKeyEvent(keyRune('t'))
	if !f.mh.ShowTileLetters() {
		t.Error("toggle did not enable letters")
	}
	f.mh.HandleKeyEvent(keyRune('t'))
	if f.mh.ShowTileLetters() {
		t.Error("toggle did not disable letters")
	}
}

func TestMouseDragIsOneGesture(t *testing.T) {
	f := newFixture(t, nil)

	// Press at cell (0,0), drag across the row, release.
	f.mh.HandleMouseEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	f.mh.HandleMouseEvent(tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone))
	f.mh.HandleMouseEvent(tcell.NewEventMouse(4, 0, tcell.Button1, tcell.ModNone))
	f.mh.HandleMouseEvent(tcell.NewEventMouse(4, 0, tcell.ButtonNone, tcell.ModNone))

	for c := 0; c < 3; c++ {
		if sym, _ := f.model.Cell(0, c); sym != '#' {
			t.Errorf("cell (0,%d) = %q, want '#'", c, sym)
		}
	}
	if f.model.History().Len() != 1 {
		t.Errorf("history depth = %d, want 1 (one drag, one undo unit)", f.model.History().Len())
	}
}

func TestQuickEraseRestoresSelection(t *testing.T) {
	f := newFixture(t, nil)
	f.model.SetSelectedTile("~")
	f.model.BeginGesture()
	f.model.PaintCell(0, 0, '~')
	f.model.EndGesture()

	// Right-button drag erases without losing the tile selection.
	f.mh.HandleMouseEvent(tcell.NewEventMouse(0, 0, tcell.Button2, tcell.ModNone))
	f.mh.HandleMouseEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))

	if sym, _ := f.model.Cell(0, 0); sym != ' ' {
		t.Errorf("cell (0,0) = %q after quick erase, want space", sym)
	}
	if f.model.SelectedTile() != "~" {
		t.Errorf("SelectedTile() = %q, want the saved %q", f.model.SelectedTile(), "~")
	}
}

func TestMousePaletteClickSelects(t *testing.T) {
	f := newFixture(t, nil)
	x0 := f.model.Cols()*2 + 2 // palette column origin

	// Row 6 of the catalog is the water tile.
	f.mh.HandleMouseEvent(tcell.NewEventMouse(x0, 6, tcell.Button1, tcell.ModNone))
	f.mh.HandleMouseEvent(tcell.NewEventMouse(x0, 6, tcell.ButtonNone, tcell.ModNone))

	if f.model.SelectedTile() != "~" {
		t.Errorf("SelectedTile() = %q, want %q", f.model.SelectedTile(), "~")
	}
}
