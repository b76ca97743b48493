package studyindex

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ProblemKind classifies a finding of Check.
type ProblemKind string

const (
	ProblemMissingPage  ProblemKind = "missing-page"
	ProblemMissingTitle ProblemKind = "missing-title"
	ProblemBrokenLink   ProblemKind = "broken-link"
)

// Problem is one finding on a generated page.
type Problem struct {
	Page   string
	Kind   ProblemKind
	Detail string
}

func (p Problem) String() string {
	if p.Detail == "" {
		return fmt.Sprintf("%s: %s", p.Page, p.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", p.Page, p.Kind, p.Detail)
}

// CheckReport summarizes a Check run.
type CheckReport struct {
	Pages    int
	Links    int
	Problems []Problem
}

// OK reports whether no problems were found.
func (r *CheckReport) OK() bool {
	return len(r.Problems) == 0
}

// Checker re-reads generated pages and verifies their front matter and links.
type Checker struct {
	fs billy.Filesystem
	md goldmark.Markdown
}

// NewChecker creates a Checker over fsys.
func NewChecker(fsys billy.Filesystem) *Checker {
	return &Checker{fs: fsys, md: goldmark.New()}
}

// Check verifies each page, given as a path relative to the filesystem root.
// Unreadable pages abort the check; missing pages are reported as problems.
func (c *Checker) Check(pages []string) (*CheckReport, error) {
	if c.fs == nil {
		return nil, ErrNilFilesystem
	}

	report := &CheckReport{}
	for _, page := range pages {
		if err := c.checkPage(page, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func (c *Checker) checkPage(page string, report *CheckReport) error {
	source, err := util.ReadFile(c.fs, page)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			report.Problems = append(report.Problems, Problem{Page: page, Kind: ProblemMissingPage})
			return nil
		}
		return fmt.Errorf("%w: %s: %w", ErrReadPage, page, err)
	}
	report.Pages++

	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParsePage, page, err)
	}
	if strings.TrimSpace(meta.Title) == "" {
		report.Problems = append(report.Problems, Problem{Page: page, Kind: ProblemMissingTitle})
	}

	dir := filepath.Dir(page)
	for _, dest := range c.links(unwrapMarkdownBlocks(body)) {
		report.Links++
		if !isLocalLink(dest) {
			continue
		}
		if !c.linkExists(dir, dest) {
			report.Problems = append(report.Problems, Problem{Page: page, Kind: ProblemBrokenLink, Detail: dest})
		}
	}
	return nil
}

// links returns every link destination in a Markdown body. Generated list
// items carry file names verbatim, so a "* [text](target)" line whose target
// holds spaces or unbalanced parentheses is not a link to goldmark; its
// destination is taken from the raw line instead.
func (c *Checker) links(body []byte) []string {
	doc := c.md.Parser().Parse(text.NewReader(body))

	var out []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if link, ok := n.(*ast.Link); ok && entering {
			out = append(out, string(link.Destination))
		}
		return ast.WalkContinue, nil
	})

	parsed := make(map[string]int, len(out))
	for _, dest := range out {
		parsed[dest]++
	}
	for _, dest := range listItemLinks(body) {
		if parsed[dest] > 0 {
			parsed[dest]--
			continue
		}
		out = append(out, dest)
	}
	return out
}

// listItemLinks extracts the target of every "* [text](target)" line.
func listItemLinks(body []byte) []string {
	var out []string
	for _, line := range bytes.Split(body, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if !bytes.HasPrefix(line, []byte("* [")) || !bytes.HasSuffix(line, []byte(")")) {
			continue
		}
		i := bytes.Index(line, []byte("]("))
		if i < 0 {
			continue
		}
		dest := string(line[i+2 : len(line)-1])
		if strings.HasPrefix(dest, "<") && strings.HasSuffix(dest, ">") {
			dest = dest[1 : len(dest)-1]
		}
		out = append(out, dest)
	}
	return out
}

// linkExists resolves dest against dir. A trailing slash requires a directory.
// Both the percent-decoded and the literal destination are tried, since
// generated links carry file names verbatim.
func (c *Checker) linkExists(dir, dest string) bool {
	candidates := []string{dest}
	if u, err := url.Parse(dest); err == nil && u.Path != dest {
		candidates = append([]string{u.Path}, candidates...)
	}

	for _, candidate := range candidates {
		info, err := c.fs.Stat(c.fs.Join(dir, filepath.FromSlash(candidate)))
		if err != nil {
			continue
		}
		if strings.HasSuffix(candidate, "/") && !info.IsDir() {
			continue
		}
		return true
	}
	return false
}

func isLocalLink(dest string) bool {
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "/") {
		return false
	}
	if u, err := url.Parse(dest); err == nil && u.Scheme != "" {
		return false
	}
	return true
}

// unwrapMarkdownBlocks drops the tag lines of <div ... markdown> blocks so
// their content is parsed as Markdown, as MkDocs md_in_html does.
func unwrapMarkdownBlocks(body []byte) []byte {
	lines := bytes.Split(body, []byte("\n"))
	out := make([][]byte, 0, len(lines))
	depth := 0
	for _, line := range lines {
		trimmed := bytes.TrimSpace(line)
		switch {
		case isMarkdownDivOpen(trimmed):
			depth++
			continue
		case depth > 0 && bytes.Equal(trimmed, []byte(cardGridClose)):
			depth--
			continue
		}
		out = append(out, line)
	}
	return bytes.Join(out, []byte("\n"))
}

func isMarkdownDivOpen(line []byte) bool {
	if !bytes.HasPrefix(line, []byte("<div")) || !bytes.HasSuffix(line, []byte(">")) {
		return false
	}
	for _, field := range bytes.Fields(bytes.TrimSuffix(line, []byte(">"))) {
		if bytes.Equal(field, []byte("markdown")) || bytes.HasPrefix(field, []byte("markdown=")) {
			return true
		}
	}
	return false
}
