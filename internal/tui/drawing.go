// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/gridmap/internal/core"
	"github.com/bethropolis/gridmap/internal/theme"
	"github.com/bethropolis/gridmap/internal/tiles"
	"github.com/gdamore/tcell/v2"
)

// Each grid cell is drawn as a 2-column block so the map keeps roughly
// square proportions in a terminal.
const CellWidth = 2

// PaletteGap is the blank space between the grid and the palette column.
const PaletteGap = 2

// CellAt maps screen coordinates to a grid cell. ok is false outside the
// drawn grid area.
func CellAt(x, y, rows, cols int) (row, col int, ok bool) {
	row = y
	col = x / CellWidth
	if row < 0 || row >= rows || col < 0 || col >= cols || x < 0 || x >= cols*CellWidth {
		return 0, 0, false
	}
	return row, col, true
}

// PaletteIndexAt maps screen coordinates to a catalog index. ok is false
// outside the palette column.
func PaletteIndexAt(x, y, cols int) (index int, ok bool) {
	if x < cols*CellWidth+PaletteGap {
		return 0, false
	}
	if y < 0 || y >= len(tiles.Catalog) {
		return 0, false
	}
	return y, true
}

// DrawEditor renders the grid and the tile palette. showLetters controls
// whether catalog tile glyphs are drawn on their cells; AlwaysShow
// symbols and custom game-object markers are drawn regardless.
func DrawEditor(t *TUI, m *core.Model, activeTheme *theme.Theme, selected string, showLetters bool) {
	if activeTheme == nil {
		activeTheme = theme.GetCurrentTheme()
	}
	screen := t.GetScreen()
	width, height := t.Size()
	if width <= 0 || height <= 1 {
		return
	}

	drawGrid(screen, m, activeTheme, showLetters, width, height)
	drawPalette(screen, m, activeTheme, selected, width, height)
}

func drawGrid(screen tcell.Screen, m *core.Model, activeTheme *theme.Theme, showLetters bool, width, height int) {
	cells := m.Cells()
	for row := 0; row < m.Rows() && row < height-1; row++ {
		for col := 0; col < m.Cols(); col++ {
			x := col * CellWidth
			if x+CellWidth > width {
				break
			}
			sym := cells[row][col]
			style := activeTheme.TileStyleFor(sym)

			glyph := ' '
			_, inCatalog := tiles.Lookup(sym)
			if sym != tiles.Empty && (showLetters || tiles.AlwaysShow[sym] || !inCatalog) {
				glyph = sym
			}

			screen.SetContent(x, row, glyph, nil, style)
			screen.SetContent(x+1, row, ' ', nil, style)
		}
	}
}

func drawPalette(screen tcell.Screen, m *core.Model, activeTheme *theme.Theme, selected string, width, height int) {
	x0 := m.Cols()*CellWidth + PaletteGap
	if x0 >= width {
		return
	}

	entryStyle := activeTheme.GetStyle("PaletteEntry")
	selectedStyle := activeTheme.GetStyle("PaletteSelected")

	// When a custom marker is selected, highlight the GO entry.
	_, selectedInCatalog := catalogIndex(selected)

	for i, tile := range tiles.Catalog {
		if i >= height-1 {
			break
		}

		isSelected := tile.Symbol == selected ||
			(!selectedInCatalog && tiles.IsSentinel(tile.Symbol))

		// Color swatch with the tile's symbol on it.
		swatch := activeTheme.SwatchStyleFor(tile)
		swatchGlyphs := []rune(tile.Symbol)
		screen.SetContent(x0, i, swatchGlyphs[0], nil, swatch)
		second := ' '
		if len(swatchGlyphs) > 1 {
			second = swatchGlyphs[1]
		}
		screen.SetContent(x0+1, i, second, nil, swatch)

		style := entryStyle
		if isSelected {
			style = selectedStyle
		}
		label := " " + tile.Description
		x := x0 + CellWidth
		for _, r := range label {
			if x >= width {
				break
			}
			screen.SetContent(x, i, r, nil, style)
			x++
		}
	}
}

// catalogIndex finds the catalog position of a tile symbol.
func catalogIndex(symbol string) (int, bool) {
	for i, t := range tiles.Catalog {
		if t.Symbol == symbol {
			return i, true
		}
	}
	return 0, false
}
