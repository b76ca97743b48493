package studyindex

import "testing"

// ---------------------------------------------------------------------------
// TestIconResolver_Resolve - Case-insensitive icon lookup
// ---------------------------------------------------------------------------

func TestIconResolver_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		folder string
		want   string
	}{
		{name: "cs lower case", folder: "cs", want: "code"},
		{name: "cs upper case", folder: "CS", want: "code"},
		{name: "cs mixed case", folder: "Cs", want: "code"},
		{name: "math", folder: "math", want: "calculator"},
		{name: "physics", folder: "Physics", want: "atom"},
		{name: "english", folder: "ENGLISH", want: "language"},
		{name: "unknown folder", folder: "history", want: DefaultIcon},
		{name: "empty name", folder: "", want: DefaultIcon},
		{name: "non-ASCII name", folder: "数学", want: DefaultIcon},
	}

	r := DefaultIconResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := r.Resolve(tt.folder); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.folder, got, tt.want)
			}
		})
	}
}

func TestResolveIcon_MatchesDefaultResolver(t *testing.T) {
	t.Parallel()

	if ResolveIcon("CS") != ResolveIcon("cs") {
		t.Errorf("ResolveIcon(%q) = %q, ResolveIcon(%q) = %q, want equal",
			"CS", ResolveIcon("CS"), "cs", ResolveIcon("cs"))
	}
}

// ---------------------------------------------------------------------------
// TestNewIconResolver - Custom tables and fallbacks
// ---------------------------------------------------------------------------

func TestNewIconResolver(t *testing.T) {
	t.Parallel()

	t.Run("keys are matched case-insensitively", func(t *testing.T) {
		t.Parallel()

		r := NewIconResolver(map[string]string{"Chem": "flask"}, "book")
		if got := r.Resolve("CHEM"); got != "flask" {
			t.Errorf("Resolve(%q) = %q, want %q", "CHEM", got, "flask")
		}
		if got := r.Resolve("biology"); got != "book" {
			t.Errorf("Resolve(%q) = %q, want fallback %q", "biology", got, "book")
		}
	})

	t.Run("colliding keys resolve deterministically", func(t *testing.T) {
		t.Parallel()

		icons := map[string]string{"CS": "laptop", "Cs": "terminal", "cs": "code"}
		for range 20 {
			r := NewIconResolver(icons, "")
			if got := r.Resolve("CS"); got != "code" {
				t.Fatalf("Resolve(%q) = %q, want %q", "CS", got, "code")
			}
		}
	})

	t.Run("empty fallback uses default icon", func(t *testing.T) {
		t.Parallel()

		r := NewIconResolver(nil, "")
		if got := r.Resolve("cs"); got != DefaultIcon {
			t.Errorf("Resolve(%q) = %q, want %q", "cs", got, DefaultIcon)
		}
	})

	t.Run("zero value resolves to default icon", func(t *testing.T) {
		t.Parallel()

		var r IconResolver
		if got := r.Resolve("math"); got != DefaultIcon {
			t.Errorf("Resolve(%q) = %q, want %q", "math", got, DefaultIcon)
		}
	})

	t.Run("caller map is not retained", func(t *testing.T) {
		t.Parallel()

		table := map[string]string{"art": "palette"}
		r := NewIconResolver(table, "")
		table["art"] = "brush"
		if got := r.Resolve("art"); got != "palette" {
			t.Errorf("Resolve(%q) = %q, want %q", "art", got, "palette")
		}
	})
}

func TestDefaultIcons_ReturnsCopy(t *testing.T) {
	t.Parallel()

	icons := DefaultIcons()
	icons["cs"] = "terminal"
	if got := ResolveIcon("cs"); got != "code" {
		t.Errorf("ResolveIcon(%q) = %q after mutating copy, want %q", "cs", got, "code")
	}
}
