// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags.
// Pointers distinguish unset flags from zero-value flags.
type Flags struct {
	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	Rows           *int
	Cols           *int
	ThemeFile      *string

	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	SystemClipboard *bool
	ShowTileLetters *bool
	AlwaysAddZero   *bool
}

// DefineFlags sets up the command-line flags.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = flag.Bool("version", false, "Show version information and exit")
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.Rows = flag.Int("rows", 0, "Grid row count - Overrides config file")
	f.Cols = flag.Int("cols", 0, "Grid column count - Overrides config file")
	f.ThemeFile = flag.String("theme", "", "Path to TOML theme file - Overrides config file")
	f.EnableTags = flag.String("log-tags", "", "Comma-separated list of log tags to enable - Overrides config file")
	f.DisableTags = flag.String("log-disable-tags", "", "Comma-separated list of log tags to disable - Overrides config file")
	f.EnablePkgs = flag.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = flag.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.SystemClipboard = flag.Bool("system-clipboard", true, "Use the system clipboard for export/import - Overrides config file")
	f.ShowTileLetters = flag.Bool("show-letters", false, "Draw tile letters on the grid - Overrides config file")
	f.AlwaysAddZero = flag.Bool("always-add-zero", false, "Always place '0' at the top-left corner on export - Overrides config file")
}

// ParseFlags parses the defined command-line flags.
// It returns the remaining non-flag arguments.
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config with values from flags *if* they were
// set on the command line.
func (f *Flags) ApplyOverrides(cfg *Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil {
				cfg.Logger.LogFilePath = *f.LogFilePath
			}
		case "rows":
			if f.Rows != nil && *f.Rows > 0 {
				cfg.Editor.Rows = *f.Rows
			}
		case "cols":
			if f.Cols != nil && *f.Cols > 0 {
				cfg.Editor.Cols = *f.Cols
			}
		case "theme":
			if f.ThemeFile != nil && *f.ThemeFile != "" {
				cfg.Editor.ThemeFile = *f.ThemeFile
			}
		case "system-clipboard":
			if f.SystemClipboard != nil {
				cfg.Editor.SystemClipboard = *f.SystemClipboard
			}
		case "show-letters":
			if f.ShowTileLetters != nil {
				cfg.Editor.ShowTileLetters = *f.ShowTileLetters
			}
		case "always-add-zero":
			if f.AlwaysAddZero != nil {
				cfg.Editor.AlwaysAddZero = *f.AlwaysAddZero
			}
		case "log-tags":
			if f.EnableTags != nil && *f.EnableTags != "" {
				cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
			}
		case "log-disable-tags":
			if f.DisableTags != nil && *f.DisableTags != "" {
				cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
			}
		case "log-packages":
			if f.EnablePkgs != nil && *f.EnablePkgs != "" {
				cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
			}
		case "log-disable-packages":
			if f.DisablePkgs != nil && *f.DisablePkgs != "" {
				cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
			}
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
