package theme

import (
	"testing"

	"github.com/bethropolis/gridmap/internal/types"
	"github.com/gdamore/tcell/v2"
)

func TestContrastColor(t *testing.T) {
	tests := []struct {
		name string
		in   types.RGB
		want types.RGB
	}{
		{"black gets white text", types.RGB{R: 0, G: 0, B: 0}, types.RGB{R: 255, G: 255, B: 255}},
		{"white gets black text", types.RGB{R: 255, G: 255, B: 255}, types.RGB{R: 0, G: 0, B: 0}},
		{"navy gets white text", types.RGB{R: 0, G: 0, B: 128}, types.RGB{R: 255, G: 255, B: 255}},
		{"yellow gets black text", types.RGB{R: 255, G: 255, B: 0}, types.RGB{R: 0, G: 0, B: 0}},
	}
	for _, tt := range tests {
		if got := ContrastColor(tt.in); got != tt.want {
			t.Errorf("%s: ContrastColor(%+v) = %+v, want %+v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestTileStyleForCatalogEntry(t *testing.T) {
	th := &Theme{Styles: map[string]tcell.Style{}, TileColors: map[string]types.RGB{}}
	style := th.TileStyleFor('#')
	fg, bg, _ := style.Decompose()
	if bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("background = %v, want black", bg)
	}
	if fg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("foreground = %v, want white", fg)
	}
}

func TestTileStyleForCustomMarker(t *testing.T) {
	// Markers without a catalog entry get the white block treatment.
	th := &Theme{Styles: map[string]tcell.Style{}, TileColors: map[string]types.RGB{}}
	style := th.TileStyleFor('Z')
	fg, bg, _ := style.Decompose()
	if bg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("background = %v, want white", bg)
	}
	if fg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("foreground = %v, want black", fg)
	}
}

func TestTileColorOverride(t *testing.T) {
	th := &Theme{
		Styles:     map[string]tcell.Style{},
		TileColors: map[string]types.RGB{"#": {R: 10, G: 200, B: 10}},
	}
	style := th.TileStyleFor('#')
	_, bg, _ := style.Decompose()
	if bg != tcell.NewRGBColor(10, 200, 10) {
		t.Errorf("background = %v, want the override color", bg)
	}
}

func TestGetStyleFallback(t *testing.T) {
	def := tcell.StyleDefault.Bold(true)
	th := &Theme{Styles: map[string]tcell.Style{"Default": def}}
	if th.GetStyle("NoSuchStyle") != def {
		t.Error("GetStyle should fall back to Default")
	}

	empty := &Theme{Styles: map[string]tcell.Style{}}
	if empty.GetStyle("NoSuchStyle") != tcell.StyleDefault {
		t.Error("GetStyle should fall back to tcell.StyleDefault")
	}
}
