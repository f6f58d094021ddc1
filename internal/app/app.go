// internal/app/app.go
package app

import (
	"fmt"

	"github.com/bethropolis/gridmap/internal/config"
	"github.com/bethropolis/gridmap/internal/core"
	"github.com/bethropolis/gridmap/internal/core/clipboard"
	"github.com/bethropolis/gridmap/internal/event"
	"github.com/bethropolis/gridmap/internal/input"
	"github.com/bethropolis/gridmap/internal/logger"
	"github.com/bethropolis/gridmap/internal/modehandler"
	"github.com/bethropolis/gridmap/internal/statusbar"
	"github.com/bethropolis/gridmap/internal/theme"
	"github.com/bethropolis/gridmap/internal/tiles"
	"github.com/bethropolis/gridmap/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager   *tui.TUI
	model        *core.Model
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	clip         *clipboard.Manager
	activeTheme  *theme.Theme
	cfg          *config.Config

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance.
func NewApp(cfg *config.Config) (*App, error) {
	// Load an override theme before the screen takes its default style.
	if cfg.Editor.ThemeFile != "" {
		loaded, err := theme.LoadThemeFromFile(cfg.Editor.ThemeFile)
		if err != nil {
			logger.Warnf("App: theme file rejected, using built-in: %v", err)
		} else {
			theme.SetCurrentTheme(loaded)
		}
	}

	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	model := core.NewModel(cfg.Editor.Rows, cfg.Editor.Cols)
	eventManager := event.NewManager()
	model.SetEventManager(eventManager)

	clip := clipboard.NewManager(cfg.Editor.SystemClipboard)
	inputProcessor := input.NewInputProcessor()
	statusBar := statusbar.New(statusbar.DefaultConfig())
	quitChan := make(chan struct{})

	modeHandler := modehandler.New(modehandler.Config{
		Model:          model,
		InputProcessor: inputProcessor,
		EventManager:   eventManager,
		StatusBar:      statusBar,
		Clipboard:      clip,
		EditorConfig:   &cfg.Editor,
		QuitSignal:     quitChan,
	})

	appInstance := &App{
		tuiManager:    tuiManager,
		model:         model,
		statusBar:     statusBar,
		eventManager:  eventManager,
		modeHandler:   modeHandler,
		clip:          clip,
		activeTheme:   theme.GetCurrentTheme(),
		cfg:           cfg,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
	}

	// --- Subscribe Core Components (App level wiring) ---
	eventManager.Subscribe(event.TypeGridModified, appInstance.handleGridModified)
	eventManager.Subscribe(event.TypeTileSelected, appInstance.handleTileSelected)
	eventManager.Subscribe(event.TypeMapImported, appInstance.handleMapImported)

	appInstance.pushTileInfo(model.SelectedTile())
	statusBar.SetUndoDepth(model.History().Len())

	return appInstance, nil
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("left-drag paint | right-drag erase | u undo | c clear | e export | i import | q quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// eventLoop handles TUI events, delegating to the ModeHandler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true

		case *tcell.EventKey:
			needsRedraw = a.modeHandler.HandleKeyEvent(eventData)

		case *tcell.EventMouse:
			needsRedraw = a.modeHandler.HandleMouseEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// requestRedraw asks the drawing loop for a repaint without blocking.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // redraw already pending
	}
}

// drawEditor clears the screen and redraws all components.
func (a *App) drawEditor() {
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	tui.DrawEditor(a.tuiManager, a.model, a.activeTheme, a.model.SelectedTile(), a.modeHandler.ShowTileLetters())
	a.statusBar.Draw(screen, width, height, a.activeTheme)
	a.tuiManager.Show()
}

// --- Event Handlers (App reacts to events) ---

func (a *App) handleGridModified(e event.Event) bool {
	a.statusBar.SetUndoDepth(a.model.History().Len())
	a.requestRedraw()
	return false
}

func (a *App) handleTileSelected(e event.Event) bool {
	if data, ok := e.Data.(event.TileSelectedData); ok {
		a.pushTileInfo(data.Symbol)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleMapImported(e event.Event) bool {
	a.requestRedraw()
	return false
}

// pushTileInfo updates the status bar with the selected tile. Custom
// markers have no catalog entry and are described as game objects.
func (a *App) pushTileInfo(symbol string) {
	runes := []rune(symbol)
	if len(runes) == 1 {
		if tile, ok := tiles.Lookup(runes[0]); ok {
			a.statusBar.SetTileInfo(tile.Symbol, tile.Description)
			return
		}
	}
	a.statusBar.SetTileInfo(symbol, "Game Object")
}
