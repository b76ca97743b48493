package main

import (
	"io"
	"os"
)

// Dependencies holds injectable dependencies for testability.
type Dependencies struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Executable func() (string, error) // Default root lookup
	Getwd      func() (string, error) // Config search fallback
}

// DefaultDeps returns production dependencies.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Executable: os.Executable,
		Getwd:      os.Getwd,
	}
}
