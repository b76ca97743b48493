package main

import (
	"errors"
	"os"

	studyindex "github.com/USTC-CS-Debate/go-studyindex"
	"github.com/USTC-CS-Debate/go-studyindex/internal/config"
)

// Exit codes for the studyindex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess     = 0 // Pages generated or checked without problems
	ExitGeneral     = 1 // General/unexpected error
	ExitUsage       = 2 // Invalid flags or config
	ExitIO          = 3 // Missing assets root, unreadable or unwritable page
	ExitCheckFailed = 4 // Check found problems
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrCheckFailed) {
		return ExitCheckFailed
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidAssetsDir) ||
		errors.Is(err, config.ErrInvalidExtension) ||
		errors.Is(err, config.ErrInvalidFileName) ||
		errors.Is(err, config.ErrDuplicateIcon) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, studyindex.ErrNotDirectory) ||
		errors.Is(err, studyindex.ErrListAssets) ||
		errors.Is(err, studyindex.ErrListFolder) ||
		errors.Is(err, studyindex.ErrWriteIndex) ||
		errors.Is(err, studyindex.ErrReadPage) {
		return ExitIO
	}

	return ExitGeneral
}
