// Package clipboard moves exported map literals between gridmap and the
// host system. When the system clipboard is disabled or unavailable it
// falls back to an internal register, so export/import keeps working in
// headless or clipboard-less environments.
package clipboard

import (
	"fmt"

	sysclip "github.com/atotto/clipboard"
	"github.com/bethropolis/gridmap/internal/logger"
)

// Manager handles clipboard operations.
type Manager struct {
	useSystem bool
	register  string // internal fallback register
}

// NewManager creates a clipboard manager. useSystem selects the OS
// clipboard; the internal register is always maintained as a fallback.
func NewManager(useSystem bool) *Manager {
	if useSystem && sysclip.Unsupported {
		logger.Warnf("Clipboard: system clipboard unsupported on this platform, using internal register")
		useSystem = false
	}
	return &Manager{useSystem: useSystem}
}

// Write stores text on the clipboard.
func (m *Manager) Write(text string) error {
	m.register = text
	if !m.useSystem {
		logger.Debugf("Clipboard: wrote %d bytes to internal register", len(text))
		return nil
	}
	if err := sysclip.WriteAll(text); err != nil {
		logger.Warnf("Clipboard: system write failed, kept internal register: %v", err)
		return fmt.Errorf("system clipboard write failed: %w", err)
	}
	logger.Debugf("Clipboard: wrote %d bytes to system clipboard", len(text))
	return nil
}

// Read returns the clipboard contents. A failing system clipboard falls
// back to the internal register.
func (m *Manager) Read() (string, error) {
	if m.useSystem {
		text, err := sysclip.ReadAll()
		if err == nil {
			return text, nil
		}
		logger.Warnf("Clipboard: system read failed, falling back to internal register: %v", err)
	}
	if m.register == "" {
		return "", fmt.Errorf("clipboard is empty")
	}
	return m.register, nil
}
