// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/gridmap/internal/logger"
	"github.com/bethropolis/gridmap/internal/types"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef represents a single UI style definition in the theme file.
type TomlStyleDef struct {
	Fg      *string `toml:"fg"` // pointers detect missing values
	Bg      *string `toml:"bg"`
	Bold    *bool   `toml:"bold"`
	Reverse *bool   `toml:"reverse"`
}

// TomlTheme represents the structure of a theme file. The [tiles] table
// maps tile symbols to hex colors, overriding the catalog defaults.
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
	Tiles  map[string]string       `toml:"tiles"`
}

// LoadThemeFromFile parses a TOML file and converts it to a Theme.
// Unknown style names are kept (GetStyle simply never asks for them);
// invalid colors are skipped with a warning rather than failing the load.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}

	var tomlTheme TomlTheme
	metadata, err := toml.Decode(string(data), &tomlTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Theme '%s': Unrecognized keys in file '%s': %v", tomlTheme.Name, filePath, metadata.Undecoded())
	}

	if tomlTheme.Name == "" {
		tomlTheme.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	t := &Theme{
		Name:       tomlTheme.Name,
		IsDark:     tomlTheme.IsDark,
		Styles:     make(map[string]tcell.Style),
		TileColors: make(map[string]types.RGB),
	}

	// Start every style from the built-in theme so a partial file works.
	for name, style := range GridmapDark.Styles {
		t.Styles[name] = style
	}

	baseStyle := t.Styles["Default"]
	if defaultToml, ok := tomlTheme.Styles["Default"]; ok {
		converted, convErr := convertTomlStyle(defaultToml, tcell.StyleDefault)
		if convErr != nil {
			logger.Warnf("Theme '%s': Failed to parse 'Default' style: %v", t.Name, convErr)
		} else {
			baseStyle = converted
		}
	}
	t.Styles["Default"] = baseStyle

	for name, tomlStyle := range tomlTheme.Styles {
		if name == "Default" {
			continue
		}
		style, convErr := convertTomlStyle(tomlStyle, baseStyle)
		if convErr != nil {
			logger.Warnf("Theme '%s': Failed to parse style '%s', skipping: %v", t.Name, name, convErr)
			continue
		}
		t.Styles[name] = style
	}

	for symbol, hex := range tomlTheme.Tiles {
		rgb, parseErr := parseHexRGB(hex)
		if parseErr != nil {
			logger.Warnf("Theme '%s': Invalid tile color for %q, skipping: %v", t.Name, symbol, parseErr)
			continue
		}
		t.TileColors[symbol] = rgb
	}

	logger.Debugf("Successfully loaded theme '%s' from '%s'", t.Name, filePath)
	return t, nil
}

// convertTomlStyle converts a TOML definition to a tcell.Style,
// inheriting unset properties from the base.
func convertTomlStyle(tomlStyle TomlStyleDef, baseStyle tcell.Style) (tcell.Style, error) {
	style := baseStyle

	if tomlStyle.Fg != nil {
		color, err := parseColorString(*tomlStyle.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color '%s': %w", *tomlStyle.Fg, err)
		}
		style = style.Foreground(color)
	}
	if tomlStyle.Bg != nil {
		color, err := parseColorString(*tomlStyle.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color '%s': %w", *tomlStyle.Bg, err)
		}
		style = style.Background(color)
	}
	if tomlStyle.Bold != nil {
		style = style.Bold(*tomlStyle.Bold)
	}
	if tomlStyle.Reverse != nil {
		style = style.Reverse(*tomlStyle.Reverse)
	}
	return style, nil
}

// parseColorString accepts "#rrggbb" hex values or tcell color names.
func parseColorString(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		v, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("bad hex color: %w", err)
		}
		return tcell.NewHexColor(int32(v)), nil
	}
	color := tcell.GetColor(strings.ToLower(s))
	if color == tcell.ColorDefault && strings.ToLower(s) != "default" {
		return tcell.ColorDefault, fmt.Errorf("unknown color name '%s'", s)
	}
	return color, nil
}

func parseHexRGB(s string) (types.RGB, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "#"))
	if len(s) != 6 {
		return types.RGB{}, fmt.Errorf("expected 6 hex digits, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return types.RGB{}, fmt.Errorf("bad hex color: %w", err)
	}
	return types.RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
