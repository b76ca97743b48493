package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"config name", "site", "create site.yaml"},
		{"config path", "conf/site.yaml", "check the path"},
		{"windows path", "conf\\site.yaml", "check the path"},
		{"empty", "", "check the path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.in)
			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint %q should start with the hint prefix", hint)
			}
			if !strings.Contains(hint, tt.want) {
				t.Errorf("ForConfigNotFound(%q) = %q, want it to contain %q", tt.in, hint, tt.want)
			}
		})
	}
}

func TestForMissingAssets(t *testing.T) {
	t.Parallel()

	hint := ForMissingAssets("/srv/site")
	if !strings.Contains(hint, "/srv/site") || !strings.Contains(hint, "--root") {
		t.Errorf("ForMissingAssets() = %q, want root and --root suggestion", hint)
	}
	if strings.Count(hint, "hint:") != 1 {
		t.Errorf("multiple hints should be joined into one line, got %q", hint)
	}

	if hint := ForMissingAssets(""); !strings.Contains(hint, "--root") {
		t.Errorf("ForMissingAssets(\"\") = %q, want --root suggestion", hint)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func() string
		want string
	}{
		{"write index", ForWriteIndex, "writable"},
		{"check failed", ForCheckFailed, "studyindex generate"},
		{"invalid config", ForInvalidConfig, "relative to the site root"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.fn(); !strings.Contains(got, tt.want) {
				t.Errorf("hint = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints() = %q, want %q", got, "\n  hint: a; b")
	}
}
