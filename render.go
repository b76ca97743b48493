package studyindex

import (
	"fmt"
	"path"
	"strings"

	"github.com/USTC-CS-Debate/go-studyindex/internal/yamlutil"
)

// Markdown fragments shared by both page kinds.
const (
	cardGridOpen  = `<div class="grid cards" markdown>`
	cardGridClose = `</div>`
	iconPrefix    = ":fontawesome-solid-"
)

// RenderIndex composes the top-level index page: front matter, a card per
// category folder, then a detail section per folder listing its documents.
// Links are relative to the directory holding the index page.
func RenderIndex(catalog *Catalog, layout Layout, icons IconResolver) (string, error) {
	if catalog == nil {
		return "", ErrNilCatalog
	}

	lines, err := yamlutil.FrontMatterLines(layout.frontMatter(layout.Title))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderIndex, err)
	}

	lines = append(lines, "")
	if layout.Intro != "" {
		lines = append(lines, layout.Intro, "")
	}
	lines = append(lines, "## "+layout.CardsHeading, cardGridOpen)

	for _, f := range catalog.Folders {
		lines = append(lines, fmt.Sprintf("* [%s%s:  %s](%s/)",
			iconPrefix, icons.Resolve(f.Name), layout.label(f.Name), path.Join(catalog.AssetsDir, f.Name)))
	}
	lines = append(lines, cardGridClose, "")

	for _, f := range catalog.Folders {
		lines = append(lines, "## "+layout.label(f.Name)+layout.DetailSuffix, "")
		if len(f.Documents) == 0 {
			lines = append(lines, "* "+layout.EmptyIndexPlaceholder)
		}
		for _, d := range f.Documents {
			lines = append(lines, listLink(d.Title, path.Join(catalog.AssetsDir, f.Name, d.FileName)))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n"), nil
}

// RenderFolderIndex composes the index page stored inside a category folder.
// Document links are bare file names, relative to the folder itself.
func RenderFolderIndex(folder Folder, layout Layout) (string, error) {
	title := layout.label(folder.Name)

	lines, err := yamlutil.FrontMatterLines(layout.frontMatter(title))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderIndex, err)
	}

	lines = append(lines, "", "# "+title, "", "## "+layout.MaterialsHeading, "")
	if len(folder.Documents) == 0 {
		lines = append(lines, "* "+layout.EmptyFolderPlaceholder)
	}
	for _, d := range folder.Documents {
		lines = append(lines, listLink(d.Title, d.FileName))
	}

	return strings.Join(lines, "\n"), nil
}

func listLink(text, target string) string {
	return "* [" + text + "](" + target + ")"
}
