// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/gridmap/internal/config"
	"github.com/bethropolis/gridmap/internal/theme"
	"github.com/bethropolis/gridmap/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		MessageTimeout: config.MessageTimeout,
	}
}

type messageKind int

const (
	msgInfo messageKind = iota
	msgError
)

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	// Content fields, updated externally.
	tileSymbol string
	tileDesc   string
	hoverCell  types.CellPos
	hoverValid bool
	undoDepth  int

	// Sticky prompt (mode input), shown until cleared.
	prompt string

	// Temporary message state.
	tempMessage     string
	tempMessageKind messageKind
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(cfg Config) *StatusBar {
	return &StatusBar{config: cfg}
}

// SetTileInfo updates the selected tile shown in the status bar.
func (sb *StatusBar) SetTileInfo(symbol, description string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tileSymbol = symbol
	sb.tileDesc = description
}

// SetCellInfo updates the hovered cell position.
func (sb *StatusBar) SetCellInfo(pos types.CellPos) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.hoverCell = pos
	sb.hoverValid = true
}

// SetUndoDepth updates the displayed undo depth.
func (sb *StatusBar) SetUndoDepth(depth int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.undoDepth = depth
}

// SetPrompt displays a sticky prompt line until ClearPrompt is called.
// Prompts take precedence over temporary messages.
func (sb *StatusBar) SetPrompt(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.prompt = fmt.Sprintf(format, args...)
}

// ClearPrompt removes the sticky prompt.
func (sb *StatusBar) ClearPrompt() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.prompt = ""
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageKind = msgInfo
	sb.tempMessageTime = time.Now()
}

// SetErrorMessage displays an error-styled message for the configured
// duration.
func (sb *StatusBar) SetErrorMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageKind = msgError
	sb.tempMessageTime = time.Now()
}

// getDefaultDisplayText builds the default status line text.
func (sb *StatusBar) getDefaultDisplayText() string {
	symbol := sb.tileSymbol
	if symbol == " " {
		symbol = "␣"
	}
	cellInfo := ""
	if sb.hoverValid {
		cellInfo = fmt.Sprintf(" -- Cell: %d,%d", sb.hoverCell.Row, sb.hoverCell.Col)
	}
	return fmt.Sprintf("%s v%s -- Tile: %s (%s)%s -- Undo: %d",
		config.AppName, config.Version, sb.tileDesc, symbol, cellInfo, sb.undoDepth)
}

// Draw renders the status bar onto the last screen line.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, activeTheme *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string
	switch {
	case sb.prompt != "":
		text = sb.prompt
		style = activeTheme.GetStyle("StatusBarPrompt")
	case isTempMsgActive && sb.tempMessageKind == msgError:
		text = sb.tempMessage
		style = activeTheme.GetStyle("StatusBarError")
	case isTempMsgActive:
		text = sb.tempMessage
		style = activeTheme.GetStyle("StatusBarMessage")
	default:
		text = sb.getDefaultDisplayText()
		style = activeTheme.GetStyle("StatusBar")
	}
	sb.mu.Unlock()

	// Fill background first.
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	// Draw text using uniseg for width calculation.
	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			mainRune := runes[0]
			var combiningRunes []rune
			if len(runes) > 1 {
				combiningRunes = runes[1:]
			}
			screen.SetContent(currentX, y, mainRune, combiningRunes, style)
		}
		currentX += clusterWidth
	}
}
