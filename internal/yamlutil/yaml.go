// Package yamlutil wraps YAML encoding to isolate the external dependency.
// Config loading and front matter emission both go through here, so the
// underlying YAML library can be swapped without touching callers.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// FrontMatterDelimiter opens and closes a Markdown front matter block.
const FrontMatterDelimiter = "---"

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v as YAML.
func Marshal(v any) ([]byte, error) {
	result, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// FrontMatterLines encodes v and returns it as lines framed by "---"
// delimiters, ready to be joined into a Markdown document.
func FrontMatterLines(v any) ([]string, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}

	body := bytes.TrimRight(data, "\n")
	lines := []string{FrontMatterDelimiter}
	if len(body) > 0 {
		for _, line := range bytes.Split(body, []byte("\n")) {
			lines = append(lines, string(line))
		}
	}
	return append(lines, FrontMatterDelimiter), nil
}
