// internal/theme/theme.go
package theme

import (
	"sync"

	"github.com/bethropolis/gridmap/internal/tiles"
	"github.com/bethropolis/gridmap/internal/types"
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme bundles the UI styles and any per-tile color overrides.
type Theme struct {
	Name   string
	IsDark bool
	// Styles holds named UI styles ("Default", "StatusBar", ...).
	Styles map[string]tcell.Style
	// TileColors overrides catalog colors, keyed by tile symbol.
	TileColors map[string]types.RGB
}

// GetStyle returns a named UI style, falling back to "Default" and then
// to tcell's default style.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if defStyle, ok := t.Styles["Default"]; ok {
		return defStyle
	}
	return tcell.StyleDefault
}

// TileStyleFor builds the style for a stored cell symbol: catalog (or
// override) color as background, contrast color as the glyph foreground.
// Symbols without a catalog entry — custom game-object markers — render
// as dark text on a white block, matching the Empty tile.
func (t *Theme) TileStyleFor(sym rune) tcell.Style {
	var bg types.RGB
	if tile, ok := tiles.Lookup(sym); ok {
		bg = tile.Color
	} else {
		bg = types.RGB{R: 255, G: 255, B: 255}
	}
	if override, ok := t.TileColors[string(sym)]; ok {
		bg = override
	}
	fg := ContrastColor(bg)
	return tcell.StyleDefault.
		Background(toTcell(bg)).
		Foreground(toTcell(fg))
}

// SwatchStyleFor is TileStyleFor for catalog entries, used by the palette
// where the sentinel (a 2-character pseudo-symbol) also needs a swatch.
func (t *Theme) SwatchStyleFor(tile tiles.Tile) tcell.Style {
	bg := tile.Color
	if override, ok := t.TileColors[tile.Symbol]; ok {
		bg = override
	}
	fg := ContrastColor(bg)
	return tcell.StyleDefault.
		Background(toTcell(bg)).
		Foreground(toTcell(fg))
}

// ContrastColor picks black or white, whichever reads better over c,
// based on perceptual lightness (CIE Lab).
func ContrastColor(c types.RGB) types.RGB {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	l, _, _ := col.Lab()
	if l < 0.5 {
		return types.RGB{R: 255, G: 255, B: 255}
	}
	return types.RGB{R: 0, G: 0, B: 0}
}

func toTcell(c types.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// --- Default theme ---

// GridmapDark is the built-in theme.
var GridmapDark Theme

func init() {
	bg := tcell.NewHexColor(0x2a2f38)     // muted dark blue/grey
	fg := tcell.NewHexColor(0xc5cdd9)     // soft off-white
	accent := tcell.NewHexColor(0x61afef) // soft blue
	green := tcell.NewHexColor(0x98c379)
	yellow := tcell.NewHexColor(0xe5c07b)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)

	GridmapDark = Theme{
		Name:   "Gridmap Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":          baseStyle,
			"GridBorder":       baseStyle.Foreground(tcell.NewHexColor(0x5c6370)),
			"PaletteEntry":     baseStyle,
			"PaletteSelected":  baseStyle.Foreground(accent).Bold(true).Reverse(true),
			"StatusBar":        tcell.StyleDefault.Background(bg).Foreground(fg),
			"StatusBarMessage": tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true),
			"StatusBarPrompt":  tcell.StyleDefault.Background(bg).Foreground(green).Bold(true),
			"StatusBarError":   tcell.StyleDefault.Background(bg).Foreground(yellow).Bold(true),
		},
		TileColors: map[string]types.RGB{},
	}
}

// --- Current theme registry ---

var (
	currentMu    sync.RWMutex
	currentTheme = &GridmapDark
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() *Theme {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Nil is ignored.
func SetCurrentTheme(t *Theme) {
	if t == nil {
		return
	}
	currentMu.Lock()
	defer currentMu.Unlock()
	currentTheme = t
}
