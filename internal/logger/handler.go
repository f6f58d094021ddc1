package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // slog attribute key used for tag filtering

// filteringHandler wraps a base slog.Handler to drop records by tag or
// originating package before they reach the sink.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{baseHandler: base, cfg: cfg}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// Handle applies the filter lists, then passes the record through.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	// Package filtering, resolved from the record's PC.
	if r.PC != 0 && (h.cfg.enabledPackagesSet != nil || h.cfg.disabledPackagesSet != nil) {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			pkg := strings.ToLower(filepath.Base(filepath.Dir(frame.File)))
			if foundInSet(h.cfg.disabledPackagesSet, pkg) {
				return nil
			}
			if h.cfg.enabledPackagesSet != nil && !foundInSet(h.cfg.enabledPackagesSet, pkg) {
				return nil
			}
		}
	}

	// Tag filtering.
	var tag string
	var tagged bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			tagged = true
			return false
		}
		return true
	})

	if tagged {
		if foundInSet(h.cfg.disabledTagsSet, tag) {
			return nil
		}
		if h.cfg.enabledTagsSet != nil && !foundInSet(h.cfg.enabledTagsSet, tag) {
			return nil
		}
	} else if h.cfg.enabledTagsSet != nil {
		// Specific tags requested and this record has none.
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

func foundInSet(set map[string]struct{}, key string) bool {
	if set == nil {
		return false
	}
	_, found := set[key]
	return found
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
