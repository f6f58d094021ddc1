// Package modehandler routes input to the grid model. It owns the input
// modes (normal grid editing, the single-character game-object prompt,
// and the export confirmation), drives paint gestures from mouse state,
// and runs the export/import flows against the clipboard.
package modehandler

import (
	"sync"

	"github.com/bethropolis/gridmap/internal/config"
	"github.com/bethropolis/gridmap/internal/core"
	"github.com/bethropolis/gridmap/internal/core/clipboard"
	"github.com/bethropolis/gridmap/internal/event"
	"github.com/bethropolis/gridmap/internal/input"
	"github.com/bethropolis/gridmap/internal/logger"
	"github.com/bethropolis/gridmap/internal/statusbar"
	"github.com/bethropolis/gridmap/internal/tiles"
	"github.com/bethropolis/gridmap/internal/tui"
	"github.com/bethropolis/gridmap/internal/types"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeGrid InputMode = iota
	ModeMarkerPrompt  // awaiting one character for a custom game object
	ModeExportConfirm // awaiting y/n for the top-left '0' convenience
)

// ModeHandler manages input modes and command execution.
type ModeHandler struct {
	model          *core.Model
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	clip           *clipboard.Manager
	editorCfg      *config.EditorConfig
	quitSignal     chan<- struct{}
	quitOnce       sync.Once

	currentMode InputMode
	showLetters bool

	// Mouse gesture state. quickErase is the right-button temporary
	// space-tile selection; savedTile is restored on release.
	dragging   bool
	quickErase bool
	savedTile  string
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Model          *core.Model
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Clipboard      *clipboard.Manager
	EditorConfig   *config.EditorConfig
	QuitSignal     chan<- struct{}
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Model == nil || cfg.InputProcessor == nil || cfg.EventManager == nil ||
		cfg.StatusBar == nil || cfg.Clipboard == nil || cfg.EditorConfig == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		model:          cfg.Model,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		clip:           cfg.Clipboard,
		editorCfg:      cfg.EditorConfig,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeGrid,
		showLetters:    cfg.EditorConfig.ShowTileLetters,
	}
}

// ShowTileLetters reports whether tile glyphs should be drawn.
func (mh *ModeHandler) ShowTileLetters() bool {
	return mh.showLetters
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	switch mh.currentMode {
	case ModeMarkerPrompt:
		return mh.handleMarkerPromptKey(ev)
	case ModeExportConfirm:
		return mh.handleExportConfirmKey(ev)
	default:
		return mh.handleActionGrid(mh.inputProcessor.ProcessEvent(ev))
	}
}

func (mh *ModeHandler) handleActionGrid(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionQuit:
		mh.quitOnce.Do(func() { close(mh.quitSignal) })
		return true

	case input.ActionUndo:
		if !mh.model.History().CanUndo() {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
			return true
		}
		mh.model.Undo()
		return true

	case input.ActionClear:
		mh.model.Clear()
		mh.statusBar.SetTemporaryMessage("Grid cleared (u to undo)")
		return true

	case input.ActionExport:
		mh.startExport()
		return true

	case input.ActionImport:
		mh.doImport()
		return true

	case input.ActionToggleLetters:
		mh.showLetters = !mh.showLetters
		return true

	case input.ActionPaletteNext:
		mh.cyclePalette(1)
		return true

	case input.ActionPalettePrev:
		mh.cyclePalette(-1)
		return true
	}
	return false
}

// cyclePalette moves the tile selection through the catalog. Landing on
// the GO sentinel opens the marker prompt instead of selecting it.
func (mh *ModeHandler) cyclePalette(delta int) {
	idx := mh.catalogIndexOfSelection()
	idx = (idx + delta + len(tiles.Catalog)) % len(tiles.Catalog)
	mh.selectCatalogEntry(idx)
}

func (mh *ModeHandler) catalogIndexOfSelection() int {
	selected := mh.model.SelectedTile()
	for i, t := range tiles.Catalog {
		if t.Symbol == selected {
			return i
		}
	}
	// A custom marker is selected; treat it as sitting on the GO entry.
	return len(tiles.Catalog) - 1
}

func (mh *ModeHandler) selectCatalogEntry(idx int) {
	if idx < 0 || idx >= len(tiles.Catalog) {
		return
	}
	entry := tiles.Catalog[idx]
	if tiles.IsSentinel(entry.Symbol) {
		mh.enterMarkerPrompt()
		return
	}
	mh.model.SetSelectedTile(entry.Symbol)
}

// --- Game object marker prompt ---

func (mh *ModeHandler) enterMarkerPrompt() {
	mh.currentMode = ModeMarkerPrompt
	mh.statusBar.SetPrompt("Game object: press a single character (Esc cancels)")
	logger.DebugTagf("modehandler", "Entering marker prompt mode")
}

func (mh *ModeHandler) handleMarkerPromptKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		mh.currentMode = ModeGrid
		mh.statusBar.ClearPrompt()
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}

	marker, err := tiles.ValidateMarker(string(ev.Rune()))
	if err != nil {
		mh.statusBar.SetPrompt("Not a usable marker (%v) -- try another key, Esc cancels", err)
		return true
	}
	mh.currentMode = ModeGrid
	mh.statusBar.ClearPrompt()
	mh.model.SetSelectedTile(string(marker))
	mh.statusBar.SetTemporaryMessage("Painting game object %q", string(marker))
	return true
}

// --- Export flow ---

// startExport runs the top-left '0' convenience before exporting: the
// runtime uses '0' to locate the background and camera.
func (mh *ModeHandler) startExport() {
	zero, _ := mh.model.Cell(0, 0)
	if mh.editorCfg.AlwaysAddZero {
		mh.ensureZeroAnchor()
		mh.doExport()
		return
	}
	if zero != '0' {
		mh.currentMode = ModeExportConfirm
		mh.statusBar.SetPrompt("'0' anchors the background/camera. Add to top-left? (y/n, Esc cancels)")
		return
	}
	mh.doExport()
}

func (mh *ModeHandler) handleExportConfirmKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		mh.currentMode = ModeGrid
		mh.statusBar.ClearPrompt()
		mh.statusBar.SetTemporaryMessage("Export cancelled")
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch ev.Rune() {
	case 'y', 'Y':
		mh.currentMode = ModeGrid
		mh.statusBar.ClearPrompt()
		mh.ensureZeroAnchor()
		mh.doExport()
		return true
	case 'n', 'N':
		mh.currentMode = ModeGrid
		mh.statusBar.ClearPrompt()
		mh.doExport()
		return true
	}
	return false
}

// ensureZeroAnchor paints '0' at (0,0) as a regular one-cell gesture, so
// the convenience write stays undoable.
func (mh *ModeHandler) ensureZeroAnchor() {
	if sym, ok := mh.model.Cell(0, 0); ok && sym != '0' {
		mh.model.BeginGesture()
		mh.model.PaintCell(0, 0, '0')
		mh.model.EndGesture()
	}
}

func (mh *ModeHandler) doExport() {
	text := mh.model.ExportText()
	if err := mh.clip.Write(text); err != nil {
		mh.statusBar.SetErrorMessage("Export: %v", err)
		return
	}
	mh.eventManager.Dispatch(event.TypeMapExported, event.MapExportedData{Length: len(text)})
	mh.statusBar.SetTemporaryMessage("Map copied to clipboard (%d bytes)", len(text))
}

func (mh *ModeHandler) doImport() {
	text, err := mh.clip.Read()
	if err != nil {
		mh.statusBar.SetErrorMessage("Import: %v", err)
		return
	}
	if err := mh.model.ImportText(text); err != nil {
		mh.statusBar.SetErrorMessage("Failed to import map: %v", err)
		return
	}
	mh.statusBar.SetTemporaryMessage("Map imported from clipboard")
}

// --- Mouse handling ---

// HandleMouseEvent drives paint gestures from button state: press opens
// a gesture, movement with a held button paints, release closes the
// gesture as one undo unit. The secondary button is quick erase.
func (mh *ModeHandler) HandleMouseEvent(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()
	needsRedraw := false

	if row, col, ok := tui.CellAt(x, y, mh.model.Rows(), mh.model.Cols()); ok {
		mh.statusBar.SetCellInfo(types.CellPos{Row: row, Col: col})
	}

	// Prompt modes ignore the mouse.
	if mh.currentMode != ModeGrid {
		return false
	}

	primary := buttons&tcell.Button1 != 0
	secondary := buttons&tcell.Button2 != 0

	if primary || secondary {
		if idx, ok := tui.PaletteIndexAt(x, y, mh.model.Cols()); ok && primary && !mh.dragging {
			mh.selectCatalogEntry(idx)
			return true
		}

		row, col, overGrid := tui.CellAt(x, y, mh.model.Rows(), mh.model.Cols())
		if !overGrid {
			return needsRedraw
		}

		if !mh.dragging {
			mh.dragging = true
			if secondary {
				mh.quickErase = true
				mh.savedTile = mh.model.SelectedTile()
				mh.model.SetSelectedTile(string(tiles.Empty))
			}
			mh.model.BeginGesture()
		}

		selected := []rune(mh.model.SelectedTile())
		if len(selected) == 1 {
			mh.model.PaintCell(row, col, selected[0])
			needsRedraw = true
		}
		return needsRedraw
	}

	// All buttons released: close any open gesture.
	if mh.dragging {
		mh.dragging = false
		mh.model.EndGesture()
		if mh.quickErase {
			mh.quickErase = false
			mh.model.SetSelectedTile(mh.savedTile)
		}
		needsRedraw = true
	}
	return needsRedraw
}

// GetCurrentMode returns the active input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}
