// Package logfields centralizes slog attribute names used across the build.
package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyRecipe     = "recipe"
	KeyFile       = "file"
	KeyPage       = "page"
	KeyPages      = "pages"
	KeyCount      = "count"
	KeyPath       = "path"
	KeyTemplate   = "template"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Recipe(name string) slog.Attr    { return slog.String(KeyRecipe, name) }
func File(path string) slog.Attr      { return slog.String(KeyFile, path) }
func Page(n int) slog.Attr            { return slog.Int(KeyPage, n) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Template(id string) slog.Attr    { return slog.String(KeyTemplate, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
