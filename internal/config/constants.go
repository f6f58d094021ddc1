package config

import "time"

// Base application details
const AppName = "gridmap"
const ConfigDirName = "gridmap"
const DefaultConfigFileName = "config.toml"
const DefaultThemeFileName = "theme.toml"
const DefaultLogFileName = "gridmap.log"

// Version of the editor, shown by -version and in the status bar.
const Version = "1.1.0"

// Grid dimensions expected by the game runtime.
const DefaultRows = 18
const DefaultCols = 32

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Defaults for editor behavior
const SystemClipboard = true
const ShowTileLetters = false
const AlwaysAddZero = false
