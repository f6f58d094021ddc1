// Package tiles defines the tile catalog: the ordered set of symbols a
// map may contain, their display colors, and their human descriptions.
//
// Catalog order is significant for UI listing only; serialization never
// consults the catalog. Cells may also hold arbitrary single printable
// characters ("game object" markers) that have no catalog entry.
package tiles

import (
	"fmt"
	"unicode"

	"github.com/bethropolis/gridmap/internal/types"
	"github.com/rivo/uniseg"
)

// Sentinel is the catalog pseudo-symbol meaning "prompt the user for a
// custom game-object marker". It is never itself written into a cell.
const Sentinel = "GO"

// Empty is the symbol every cell holds at document open.
const Empty = ' '

// Tile describes one catalog entry.
type Tile struct {
	Symbol      string // single character, except the GO sentinel
	Description string
	Color       types.RGB
}

// Catalog is the ordered tile listing shown in the palette.
var Catalog = []Tile{
	{Symbol: " ", Description: "Empty Space", Color: types.RGB{R: 255, G: 255, B: 255}},
	{Symbol: "#", Description: "Solid Block", Color: types.RGB{R: 0, G: 0, B: 0}},
	{Symbol: "@", Description: "Drop-down block", Color: types.RGB{R: 160, G: 160, B: 164}},
	{Symbol: "W", Description: "Block: upward passage only", Color: types.RGB{R: 0, G: 0, B: 255}},
	{Symbol: "!", Description: "Block no slide", Color: types.RGB{R: 255, G: 0, B: 255}},
	{Symbol: "^", Description: "Deadly pit", Color: types.RGB{R: 192, G: 192, B: 192}},
	{Symbol: "~", Description: "Water", Color: types.RGB{R: 173, G: 216, B: 230}},
	{Symbol: "&", Description: "Fire", Color: types.RGB{R: 255, G: 0, B: 0}},
	{Symbol: "$", Description: "Deadly water", Color: types.RGB{R: 128, G: 0, B: 0}},
	{Symbol: "(", Description: "Bubble Type 1", Color: types.RGB{R: 128, G: 0, B: 128}},
	{Symbol: "<", Description: "Respawn face left", Color: types.RGB{R: 192, G: 192, B: 192}},
	{Symbol: ">", Description: "Respawn face right", Color: types.RGB{R: 192, G: 192, B: 192}},
	{Symbol: ".", Description: "Placeholder", Color: types.RGB{R: 255, G: 255, B: 255}},
	{Symbol: Sentinel, Description: "Game Object (custom)", Color: types.RGB{R: 255, G: 255, B: 255}},
}

// AlwaysShow lists symbols whose glyph is drawn even when tile letters
// are toggled off.
var AlwaysShow = map[rune]bool{
	'<': true,
	'>': true,
	'.': true,
}

// Lookup returns the catalog entry for a stored cell symbol.
func Lookup(sym rune) (Tile, bool) {
	for _, t := range Catalog {
		if t.Symbol == string(sym) {
			return t, true
		}
	}
	return Tile{}, false
}

// IsSentinel reports whether symbol is the GO pseudo-symbol.
func IsSentinel(symbol string) bool {
	return symbol == Sentinel
}

// ValidateMarker checks a user-supplied game-object marker. A valid marker
// is exactly one printable grapheme cluster occupying one terminal cell;
// the returned rune is what gets stored in the grid.
func ValidateMarker(s string) (rune, error) {
	if s == "" {
		return 0, fmt.Errorf("marker is empty")
	}
	if uniseg.GraphemeClusterCount(s) != 1 {
		return 0, fmt.Errorf("marker %q must be a single character", s)
	}
	if uniseg.StringWidth(s) != 1 {
		return 0, fmt.Errorf("marker %q must be one cell wide", s)
	}
	r := []rune(s)[0]
	if !unicode.IsPrint(r) {
		return 0, fmt.Errorf("marker %q is not printable", s)
	}
	return r, nil
}
