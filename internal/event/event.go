// internal/event/event.go
package event

import (
	"github.com/bethropolis/gridmap/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Core Grid Events
	TypeGridModified // Fired when cell contents change (paint/undo/clear/import)
	TypeGridCleared  // Fired after a bulk clear
	TypeTileSelected // Fired when the selected tile symbol changes
	TypeMapExported  // Fired after a successful export
	TypeMapImported  // Fired after a successful import

	// Input Events
	TypeKeyPressed // Raw key press event forwarded

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before termination begins
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{} // Payload carrying event-specific data
}

// GridModifiedData describes a grid mutation. Cells is nil for whole-grid
// changes (clear, undo of a clear, import).
type GridModifiedData struct {
	Cells []types.CellPos
}

// GridClearedData accompanies TypeGridCleared.
type GridClearedData struct{}

// TileSelectedData carries the newly selected tile symbol.
type TileSelectedData struct {
	Symbol string
}

// MapExportedData carries the size of the exported literal.
type MapExportedData struct {
	Length int
}

// MapImportedData accompanies TypeMapImported.
type MapImportedData struct{}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppReadyData accompanies TypeAppReady.
type AppReadyData struct{}

// AppQuitData accompanies TypeAppQuit.
type AppQuitData struct{}
