// Package history provides the undo stack for paint gestures.
package history

import (
	"sync"

	"github.com/bethropolis/gridmap/internal/logger"
)

// CellChange records one cell's value before a gesture touched it.
type CellChange struct {
	Row  int
	Col  int
	Prev rune
}

// Unit is one undoable step: every cell touched during a single paint
// gesture (or one bulk clear), recorded first-write-wins. All changes in
// a unit address distinct cells, so replay order is immaterial.
type Unit []CellChange

// Manager owns the undo stack. There is no redo stack; undoing a unit is
// destructive. Depth is bounded only by memory.
type Manager struct {
	mutex sync.Mutex
	units []Unit
}

// NewManager creates a history manager.
func NewManager() *Manager {
	return &Manager{
		units: make([]Unit, 0, 64),
	}
}

// Push records a completed gesture as one undo unit. Empty units are
// dropped silently.
func (m *Manager) Push(u Unit) {
	if len(u) == 0 {
		return
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.units = append(m.units, u)
	logger.Debugf("History: pushed unit with %d change(s). Depth: %d", len(u), len(m.units))
}

// Pop removes and returns the most recent unit. ok is false when the
// stack is empty.
func (m *Manager) Pop() (unit Unit, ok bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.units) == 0 {
		return nil, false
	}
	unit = m.units[len(m.units)-1]
	m.units = m.units[:len(m.units)-1]
	logger.Debugf("History: popped unit with %d change(s). Depth: %d", len(unit), len(m.units))
	return unit, true
}

// CanUndo returns true if at least one unit can be undone.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.units) > 0
}

// Len returns the current undo depth.
func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.units)
}

// Clear resets the stack while keeping allocated capacity.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.units = m.units[:0]
	logger.Debugf("History: cleared.")
}
