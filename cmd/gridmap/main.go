// cmd/gridmap/main.go
package main

import (
	"fmt"
	"io"
	stlog "log" // standard log for fatal errors before the logger is ready
	"os"
	"runtime"

	"github.com/bethropolis/gridmap/internal/app"
	"github.com/bethropolis/gridmap/internal/config"
	"github.com/bethropolis/gridmap/internal/logger"
)

func main() {
	// --- Flag & Config Parsing ---
	flags := &config.Flags{}
	flags.ParseFlags()

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Warning: %v", err)
	}

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s %s\n", config.AppName, config.Version, runtime.GOOS)
		os.Exit(0)
	}

	// --- Logger Initialization ---
	var logOutput io.Writer
	var logFile *os.File
	switch cfg.Logger.LogFilePath {
	case "-":
		logOutput = os.Stderr
	case "":
		cfg.Logger.LogFilePath = config.DefaultLogFileName
		fallthrough
	default:
		logFile, err = os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger.Init(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	logger.Debugf("Grid size: %dx%d", cfg.Editor.Rows, cfg.Editor.Cols)

	// --- Create and Run App ---
	gridApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := gridApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
