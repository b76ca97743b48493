// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and the search locations for names.
func ForConfigNotFound(name string) string {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return format("check the path passed to --config")
	}
	return format(fmt.Sprintf("create %s.yaml in the site root or ~/.config/studyindex/, or pass a path", name))
}

// ForMissingAssets returns hints when the assets root cannot be listed.
func ForMissingAssets(root string) string {
	var hints []string
	if root == "" {
		hints = append(hints, "pass --root with the directory holding the assets folder")
	} else {
		hints = append(hints, fmt.Sprintf("looked under %s", root))
		hints = append(hints, "pass --root or place the binary next to the assets folder")
	}
	return formatHints(hints)
}

// ForWriteIndex returns hints for page write errors.
func ForWriteIndex() string {
	return format("check the site root and category folders are writable")
}

// ForCheckFailed returns a hint for pages that no longer match the assets.
func ForCheckFailed() string {
	return format("run 'studyindex generate' to refresh the pages")
}

// ForInvalidConfig returns hints for config files that fail validation.
func ForInvalidConfig() string {
	return format("paths are relative to the site root; extensions start with a dot")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
