// Package core owns the grid data model: the rows×cols character matrix,
// the selected-tile cursor, the open paint gesture, and the undo history.
// It has no rendering or input knowledge; the UI layer drives it through
// discrete commands so the whole model is testable headless.
package core

import (
	"github.com/bethropolis/gridmap/internal/core/history"
	"github.com/bethropolis/gridmap/internal/event"
	"github.com/bethropolis/gridmap/internal/logger"
	"github.com/bethropolis/gridmap/internal/mapcodec"
	"github.com/bethropolis/gridmap/internal/tiles"
	"github.com/bethropolis/gridmap/internal/types"
)

// DefaultRows and DefaultCols are the grid dimensions used when the
// configuration supplies none. They match the runtime's map size.
const (
	DefaultRows = 18
	DefaultCols = 32
)

// Model is the grid document. Dimensions are fixed for its lifetime.
//
// Model performs no internal locking: it is owned by a single logical
// actor (the UI event loop, or the calling test). Concurrent callers must
// add their own mutual exclusion around each instance.
type Model struct {
	rows  int
	cols  int
	cells [][]rune

	selected string // tile symbol to paint; may be the GO sentinel

	historyMgr *history.Manager

	// Open gesture state. pendingSeen enforces first-write-wins: a cell's
	// previous value is recorded at most once per gesture.
	gestureOpen bool
	pending     history.Unit
	pendingSeen map[types.CellPos]struct{}

	eventManager *event.Manager
}

// NewModel creates a blank rows×cols grid (all cells hold the space
// character). Non-positive dimensions fall back to the defaults.
func NewModel(rows, cols int) *Model {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	return &Model{
		rows:       rows,
		cols:       cols,
		cells:      blankCells(rows, cols),
		selected:   "#",
		historyMgr: history.NewManager(),
	}
}

func blankCells(rows, cols int) [][]rune {
	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = make([]rune, cols)
		for c := range cells[r] {
			cells[r][c] = tiles.Empty
		}
	}
	return cells
}

// SetEventManager sets the event manager for dispatching change events.
func (m *Model) SetEventManager(mgr *event.Manager) {
	m.eventManager = mgr
}

// Rows returns the fixed row count.
func (m *Model) Rows() int { return m.rows }

// Cols returns the fixed column count.
func (m *Model) Cols() int { return m.cols }

// Cell returns the symbol at (row, col). ok is false outside the grid.
func (m *Model) Cell(row, col int) (sym rune, ok bool) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, false
	}
	return m.cells[row][col], true
}

// Cells exposes the underlying matrix for rendering. Callers must treat
// it as read-only; all mutation goes through the command methods.
func (m *Model) Cells() [][]rune {
	return m.cells
}

// Snapshot returns a deep copy of the matrix.
func (m *Model) Snapshot() [][]rune {
	out := make([][]rune, m.rows)
	for r := range m.cells {
		out[r] = make([]rune, m.cols)
		copy(out[r], m.cells[r])
	}
	return out
}

// SelectedTile returns the current tile symbol to paint.
func (m *Model) SelectedTile() string {
	return m.selected
}

// SetSelectedTile changes the tile symbol to paint. The selection is not
// part of the undo history.
func (m *Model) SetSelectedTile(symbol string) {
	if symbol == m.selected {
		return
	}
	m.selected = symbol
	if m.eventManager != nil {
		m.eventManager.Dispatch(event.TypeTileSelected, event.TileSelectedData{Symbol: symbol})
	}
}

// History exposes the undo stack (read-mostly; used by the UI to report
// depth and by tests).
func (m *Model) History() *history.Manager {
	return m.historyMgr
}

// BeginGesture opens a paint gesture, clearing the pending change list.
// One gesture becomes one undo unit on EndGesture.
func (m *Model) BeginGesture() {
	m.gestureOpen = true
	m.pending = m.pending[:0]
	m.pendingSeen = make(map[types.CellPos]struct{})
}

// EndGesture closes the open gesture. A non-empty pending change list is
// pushed onto the history as a single unit.
func (m *Model) EndGesture() {
	if len(m.pending) > 0 {
		unit := make(history.Unit, len(m.pending))
		copy(unit, m.pending)
		m.historyMgr.Push(unit)
	}
	m.gestureOpen = false
	m.pending = m.pending[:0]
	m.pendingSeen = nil
}

// PaintCell overwrites the cell at (row, col) with sym. Out-of-bounds
// coordinates are a silent no-op, not an error. Within an open gesture
// the cell's prior value is recorded once (first-write-wins) so the whole
// gesture reverts as one undo step.
func (m *Model) PaintCell(row, col int, sym rune) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return
	}

	if m.gestureOpen {
		pos := types.CellPos{Row: row, Col: col}
		if _, seen := m.pendingSeen[pos]; !seen {
			m.pendingSeen[pos] = struct{}{}
			m.pending = append(m.pending, history.CellChange{Row: row, Col: col, Prev: m.cells[row][col]})
		}
	}

	m.cells[row][col] = sym
	m.dispatchModified([]types.CellPos{{Row: row, Col: col}})
}

// Undo pops the most recent unit and writes each recorded previous value
// back into the grid. Empty history is a silent no-op. There is no redo.
func (m *Model) Undo() {
	unit, ok := m.historyMgr.Pop()
	if !ok {
		return
	}
	changed := make([]types.CellPos, 0, len(unit))
	for _, ch := range unit {
		m.cells[ch.Row][ch.Col] = ch.Prev
		changed = append(changed, types.CellPos{Row: ch.Row, Col: ch.Col})
	}
	m.dispatchModified(changed)
}

// Clear resets every cell to the space character as a single undoable
// unit covering the whole grid.
func (m *Model) Clear() {
	unit := make(history.Unit, 0, m.rows*m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			unit = append(unit, history.CellChange{Row: r, Col: c, Prev: m.cells[r][c]})
			m.cells[r][c] = tiles.Empty
		}
	}
	m.historyMgr.Push(unit)

	if m.eventManager != nil {
		m.eventManager.Dispatch(event.TypeGridCleared, event.GridClearedData{})
	}
	m.dispatchModified(nil)
}

// ExportText serializes the grid into the map literal format.
func (m *Model) ExportText() string {
	return mapcodec.Encode(m.cells)
}

// ImportText replaces the grid wholesale with the decoded literal. The
// replacement is not recorded in history, so an import cannot be undone.
// On decode failure the grid is left unmodified and the error propagates
// unchanged.
func (m *Model) ImportText(text string) error {
	cells, err := mapcodec.Decode(text, m.rows, m.cols)
	if err != nil {
		logger.Debugf("Model: import rejected: %v", err)
		return err
	}
	m.cells = cells

	if m.eventManager != nil {
		m.eventManager.Dispatch(event.TypeMapImported, event.MapImportedData{})
	}
	m.dispatchModified(nil)
	return nil
}

func (m *Model) dispatchModified(cells []types.CellPos) {
	if m.eventManager != nil {
		m.eventManager.Dispatch(event.TypeGridModified, event.GridModifiedData{Cells: cells})
	}
}
