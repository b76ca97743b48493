package studyindex

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/USTC-CS-Debate/go-studyindex/internal/fileutil"
)

// Document is a listable study file inside a category folder.
type Document struct {
	FileName string // Name on disk, used as the link target
	Title    string // FileName without extension, used as the link text
}

// Folder is a category folder directly under the assets root.
type Folder struct {
	Name      string
	Dir       string // Path relative to the filesystem root
	Documents []Document
}

// Catalog is a snapshot of the assets root, taken once per run.
type Catalog struct {
	AssetsDir string
	Folders   []Folder
}

// DocumentCount returns the number of documents across all folders.
func (c *Catalog) DocumentCount() int {
	n := 0
	for _, f := range c.Folders {
		n += len(f.Documents)
	}
	return n
}

// Scan lists the category folders under assetsDir and the documents with the
// given extension inside each one. Both listings are sorted by name.
func Scan(fsys billy.Filesystem, assetsDir, extension string) (*Catalog, error) {
	if fsys == nil {
		return nil, ErrNilFilesystem
	}

	names, err := ListFolders(fsys, assetsDir)
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{AssetsDir: assetsDir, Folders: make([]Folder, 0, len(names))}
	for _, name := range names {
		dir := fsys.Join(assetsDir, name)
		docs, err := ListDocuments(fsys, dir, extension)
		if err != nil {
			return nil, err
		}
		catalog.Folders = append(catalog.Folders, Folder{Name: name, Dir: dir, Documents: docs})
	}
	return catalog, nil
}

// ListFolders returns the sorted names of the immediate subdirectories of assetsDir.
func ListFolders(fsys billy.Filesystem, assetsDir string) ([]string, error) {
	info, err := fsys.Stat(assetsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListAssets, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %w: %s", ErrListAssets, ErrNotDirectory, assetsDir)
	}

	entries, err := fsys.ReadDir(assetsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListAssets, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ListDocuments returns the regular files directly inside dir whose name ends
// with extension, sorted by file name. Subdirectories are not traversed.
func ListDocuments(fsys billy.Filesystem, dir, extension string) ([]Document, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFolder, err)
	}

	docs := make([]Document, 0, len(entries))
	for _, e := range entries {
		if !isDocument(e, extension) {
			continue
		}
		docs = append(docs, Document{FileName: e.Name(), Title: fileutil.Stem(e.Name())})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].FileName < docs[j].FileName })
	return docs, nil
}

func isDocument(info os.FileInfo, extension string) bool {
	return !info.IsDir() && strings.HasSuffix(info.Name(), extension)
}
