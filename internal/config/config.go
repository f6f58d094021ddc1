// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/gridmap/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // logger settings under [logger]
	Editor EditorConfig  `toml:"editor"` // editor settings under [editor]
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	Rows            int    `toml:"rows"` // grid height, fixed per document
	Cols            int    `toml:"cols"` // grid width, fixed per document
	SystemClipboard bool   `toml:"system_clipboard"`
	ShowTileLetters bool   `toml:"show_tile_letters"`
	AlwaysAddZero   bool   `toml:"always_add_zero"` // place '0' at top-left on export without asking
	ThemeFile       string `toml:"theme_file"`      // optional TOML theme override
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			Rows:            DefaultRows,
			Cols:            DefaultCols,
			SystemClipboard: SystemClipboard,
			ShowTileLetters: ShowTileLetters,
			AlwaysAddZero:   AlwaysAddZero,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file. A missing
// file is not an error; the defaults simply stand.
func loadFromFile(filePath string) (*Config, error) {
	cfg := &Config{}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.Rows <= 0 {
		c.Editor.Rows = defaults.Editor.Rows
	}
	if c.Editor.Cols <= 0 {
		c.Editor.Cols = defaults.Editor.Cols
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig orchestrates loading defaults, the config file, flag
// overrides, and validation. Called once from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				if fileCfg.Logger.LogLevel != "" {
					cfg.Logger = fileCfg.Logger
				}
				if fileCfg.Editor.Rows > 0 {
					cfg.Editor.Rows = fileCfg.Editor.Rows
				}
				if fileCfg.Editor.Cols > 0 {
					cfg.Editor.Cols = fileCfg.Editor.Cols
				}
				if fileCfg.Editor.ThemeFile != "" {
					cfg.Editor.ThemeFile = fileCfg.Editor.ThemeFile
				}
				cfg.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
				cfg.Editor.ShowTileLetters = fileCfg.Editor.ShowTileLetters
				cfg.Editor.AlwaysAddZero = fileCfg.Editor.AlwaysAddZero
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig
// wasn't called; that is a programming error, not a runtime condition.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
