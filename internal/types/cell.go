// internal/types/cell.go
package types

// CellPos identifies a single cell in the grid.
// Row and Col are 0-based indices.
type CellPos struct {
	Row int
	Col int
}

// RGB is a platform-neutral color value carried by the tile catalog.
// The presentation layer converts it into whatever its render target
// needs; the core never interprets it.
type RGB struct {
	R, G, B uint8
}
