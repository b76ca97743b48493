package studyindex

import (
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/sirupsen/logrus"
)

// Default locations, relative to the generator root.
const (
	DefaultAssetsDir       = "assert"
	DefaultIndexFile       = "index.md"
	DefaultFolderIndexFile = "index.md"
	DefaultExtension       = ".pdf"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// Generator writes the top-level index and one index per category folder.
type Generator struct {
	fs              billy.Filesystem
	assetsDir       string
	indexFile       string
	folderIndexFile string
	extension       string
	layout          Layout
	icons           IconResolver
	log             logrus.FieldLogger
}

// Option configures a Generator.
type Option func(*Generator)

// WithAssetsDir sets the assets root, relative to the filesystem root.
func WithAssetsDir(dir string) Option {
	return func(g *Generator) { g.assetsDir = dir }
}

// WithIndexFile sets the top-level index file name.
func WithIndexFile(name string) Option {
	return func(g *Generator) { g.indexFile = name }
}

// WithFolderIndexFile sets the file name written inside each category folder.
func WithFolderIndexFile(name string) Option {
	return func(g *Generator) { g.folderIndexFile = name }
}

// WithExtension sets the document file suffix, including the leading dot.
func WithExtension(ext string) Option {
	return func(g *Generator) { g.extension = ext }
}

// WithLayout replaces the page texts.
func WithLayout(l Layout) Option {
	return func(g *Generator) { g.layout = l }
}

// WithIcons replaces the icon resolver.
func WithIcons(r IconResolver) Option {
	return func(g *Generator) { g.icons = r }
}

// WithLogger sets the progress logger.
// Panics if log is nil (programmer error).
func WithLogger(log logrus.FieldLogger) Option {
	if log == nil {
		panic("studyindex: WithLogger logger must not be nil")
	}
	return func(g *Generator) { g.log = log }
}

// New creates a Generator over fsys. Paths are resolved against the root of fsys.
// Panics if fsys is nil (programmer error).
func New(fsys billy.Filesystem, opts ...Option) *Generator {
	if fsys == nil {
		panic("studyindex: New filesystem must not be nil")
	}

	g := &Generator{
		fs:              fsys,
		assetsDir:       DefaultAssetsDir,
		indexFile:       DefaultIndexFile,
		folderIndexFile: DefaultFolderIndexFile,
		extension:       DefaultExtension,
		layout:          DefaultLayout(),
		icons:           DefaultIconResolver(),
		log:             discardLogger(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Report lists the pages written by a run, in write order.
type Report struct {
	Index       string
	FolderIndex []string
	Folders     int
	Documents   int
}

// Written returns every path in the report, top-level index first.
func (r *Report) Written() []string {
	out := make([]string, 0, len(r.FolderIndex)+1)
	if r.Index != "" {
		out = append(out, r.Index)
	}
	return append(out, r.FolderIndex...)
}

// Run scans the assets root once and regenerates every index page from that
// snapshot. The first failure aborts the run.
func (g *Generator) Run() (*Report, error) {
	g.log.Info("Generating study resource index...")

	catalog, err := g.Scan()
	if err != nil {
		return nil, err
	}

	report := &Report{Folders: len(catalog.Folders), Documents: catalog.DocumentCount()}

	report.Index, err = g.GenerateIndex(catalog)
	if err != nil {
		return nil, err
	}

	for _, f := range catalog.Folders {
		written, err := g.GenerateFolderIndex(f)
		if err != nil {
			return nil, err
		}
		report.FolderIndex = append(report.FolderIndex, written)
	}

	g.log.WithFields(logrus.Fields{
		"folders":   report.Folders,
		"documents": report.Documents,
	}).Info("All indexes generated")
	return report, nil
}

// Scan snapshots the assets root.
func (g *Generator) Scan() (*Catalog, error) {
	catalog, err := Scan(g.fs, g.assetsDir, g.extension)
	if err != nil {
		return nil, err
	}

	for _, f := range catalog.Folders {
		g.log.WithFields(logrus.Fields{
			"folder":    f.Name,
			"documents": len(f.Documents),
		}).Debug("Scanned category folder")
	}
	return catalog, nil
}

// GenerateIndex renders the top-level index and writes it, replacing any
// existing file. It returns the written path.
func (g *Generator) GenerateIndex(catalog *Catalog) (string, error) {
	content, err := RenderIndex(catalog, g.layout, g.icons)
	if err != nil {
		return "", err
	}

	if err := g.write(g.indexFile, content); err != nil {
		return "", err
	}

	written := g.displayPath(g.indexFile)
	g.log.WithField("path", written).Info("Updated index file")
	return written, nil
}

// GenerateFolderIndex renders the index for one category folder and writes it
// inside that folder, replacing any existing file. It returns the written path.
func (g *Generator) GenerateFolderIndex(folder Folder) (string, error) {
	content, err := RenderFolderIndex(folder, g.layout)
	if err != nil {
		return "", err
	}

	name := g.fs.Join(folder.Dir, g.folderIndexFile)
	if err := g.write(name, content); err != nil {
		return "", err
	}

	written := g.displayPath(name)
	g.log.WithFields(logrus.Fields{
		"path":   written,
		"folder": folder.Name,
	}).Info("Created folder index")
	return written, nil
}

// Pages returns the filesystem-relative paths a run over catalog writes.
func (g *Generator) Pages(catalog *Catalog) []string {
	pages := []string{g.indexFile}
	for _, f := range catalog.Folders {
		pages = append(pages, g.fs.Join(f.Dir, g.folderIndexFile))
	}
	return pages
}

// Filesystem returns the filesystem the generator reads and writes.
func (g *Generator) Filesystem() billy.Filesystem {
	return g.fs
}

func (g *Generator) write(name, content string) error {
	if err := util.WriteFile(g.fs, name, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteIndex, g.displayPath(name), err)
	}
	return nil
}

// displayPath joins name onto the filesystem root for operator messages.
func (g *Generator) displayPath(name string) string {
	return g.fs.Join(g.fs.Root(), name)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
