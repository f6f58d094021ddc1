package tui

import (
	"testing"

	"github.com/bethropolis/gridmap/internal/tiles"
)

func TestCellAt(t *testing.T) {
	rows, cols := 18, 32
	tests := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{1, 0, 0, 0, true}, // second column of the same 2-wide cell
		{2, 0, 0, 1, true},
		{63, 17, 17, 31, true},
		{64, 0, 0, 0, false}, // past the right edge of the grid
		{0, 18, 0, 0, false},
		{-1, 0, 0, 0, false},
		{0, -1, 0, 0, false},
	}
	for _, tt := range tests {
		row, col, ok := CellAt(tt.x, tt.y, rows, cols)
		if ok != tt.ok || row != tt.row || col != tt.col {
			t.Errorf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)",
				tt.x, tt.y, row, col, ok, tt.row, tt.col, tt.ok)
		}
	}
}

func TestPaletteIndexAt(t *testing.T) {
	cols := 32
	x0 := cols*CellWidth + PaletteGap

	if _, ok := PaletteIndexAt(x0-1, 0, cols); ok {
		t.Error("position left of the palette reported a hit")
	}

	idx, ok := PaletteIndexAt(x0, 3, cols)
	if !ok || idx != 3 {
		t.Errorf("PaletteIndexAt(x0, 3) = (%d,%v), want (3,true)", idx, ok)
	}

	if _, ok := PaletteIndexAt(x0, len(tiles.Catalog), cols); ok {
		t.Error("row below the last catalog entry reported a hit")
	}
	if _, ok := PaletteIndexAt(x0, -1, cols); ok {
		t.Error("negative row reported a hit")
	}
}
