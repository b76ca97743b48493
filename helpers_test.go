package studyindex

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// newTree builds an in-memory filesystem holding dirs (created empty) and
// files (path -> content).
func newTree(t *testing.T, dirs []string, files map[string]string) billy.Filesystem {
	t.Helper()

	fsys := memfs.New()
	for _, dir := range dirs {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): %v", dir, err)
		}
	}
	for name, content := range files {
		if err := util.WriteFile(fsys, name, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): %v", name, err)
		}
	}
	return fsys
}

// scenarioTree is the documented example: math holds two PDFs, cs is empty.
func scenarioTree(t *testing.T) billy.Filesystem {
	t.Helper()

	return newTree(t,
		[]string{"assert/cs", "assert/math"},
		map[string]string{
			"assert/math/calc.pdf":    "%PDF-1.4 calc",
			"assert/math/algebra.pdf": "%PDF-1.4 algebra",
		},
	)
}

// readFile returns the content of name or fails the test.
func readFile(t *testing.T, fsys billy.Filesystem, name string) string {
	t.Helper()

	data, err := util.ReadFile(fsys, name)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", name, err)
	}
	return string(data)
}
