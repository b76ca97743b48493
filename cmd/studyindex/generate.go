package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	studyindex "github.com/USTC-CS-Debate/go-studyindex"
	"github.com/USTC-CS-Debate/go-studyindex/internal/config"
	"github.com/USTC-CS-Debate/go-studyindex/internal/fileutil"
	"github.com/USTC-CS-Debate/go-studyindex/internal/hints"
)

// runGenerate executes the generate command.
func runGenerate(args []string, deps *Dependencies) error {
	f, err := parseCommonFlags(cmdGenerate, args, deps.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	s, err := newSession(f, deps)
	if err != nil {
		return withHint(err, "", f.config)
	}

	if _, err := s.gen.Run(); err != nil {
		return withHint(err, s.root, f.config)
	}
	return nil
}

// session is the state shared by generate and check.
type session struct {
	gen  *studyindex.Generator
	log  *logrus.Logger
	root string
}

// newSession resolves the root, loads the optional config and builds a
// Generator over the root with a logger honoring --quiet and --verbose.
func newSession(f *commonFlags, deps *Dependencies) (*session, error) {
	log := newLogger(deps.Stdout, f)

	root, err := resolveRoot(f.root, deps)
	if err != nil {
		return nil, err
	}
	log.WithField("path", root).Debug("Using root directory")

	cfg, err := loadConfig(f.config, root, deps)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		log.WithField("config", f.config).Debug("Loaded config")
	}

	opts := append(generatorOptions(cfg), studyindex.WithLogger(log))
	return &session{
		gen:  studyindex.New(osfs.New(root), opts...),
		log:  log,
		root: root,
	}, nil
}

// withHint appends an actionable hint to known failures. The error chain is kept.
func withHint(err error, root, configName string) error {
	var hint string
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		hint = hints.ForConfigNotFound(configName)
	case errors.Is(err, config.ErrInvalidAssetsDir),
		errors.Is(err, config.ErrInvalidExtension),
		errors.Is(err, config.ErrInvalidFileName),
		errors.Is(err, config.ErrDuplicateIcon):
		hint = hints.ForInvalidConfig()
	case errors.Is(err, studyindex.ErrListAssets):
		hint = hints.ForMissingAssets(root)
	case errors.Is(err, studyindex.ErrWriteIndex):
		hint = hints.ForWriteIndex()
	case errors.Is(err, ErrCheckFailed):
		hint = hints.ForCheckFailed()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// newLogger writes plain text entries without timestamps.
// --quiet takes precedence over --verbose.
func newLogger(w io.Writer, f *commonFlags) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	switch {
	case f.quiet:
		log.SetLevel(logrus.ErrorLevel)
	case f.verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// resolveRoot returns the absolute root directory: the --root value when
// given, otherwise the directory holding the executable.
func resolveRoot(flagValue string, deps *Dependencies) (string, error) {
	if flagValue == "" {
		return fileutil.ExecutableDir(deps.Executable)
	}
	root, err := filepath.Abs(flagValue)
	if err != nil {
		return "", fmt.Errorf("resolving root %q: %w", flagValue, err)
	}
	return root, nil
}

// loadConfig loads the config named by --config, searching the root first and
// then the working directory. It returns nil when no config was requested.
func loadConfig(nameOrPath, root string, deps *Dependencies) (*config.Config, error) {
	if nameOrPath == "" {
		return nil, nil
	}

	dirs := []string{root}
	if deps.Getwd != nil {
		if wd, err := deps.Getwd(); err == nil && wd != root {
			dirs = append(dirs, wd)
		}
	}
	return config.LoadConfig(nameOrPath, dirs...)
}

// generatorOptions merges non-empty config values over the defaults.
func generatorOptions(cfg *config.Config) []studyindex.Option {
	if cfg == nil {
		return nil
	}

	var opts []studyindex.Option
	if cfg.AssetsDir != "" {
		opts = append(opts, studyindex.WithAssetsDir(cfg.AssetsDir))
	}
	if cfg.IndexFile != "" {
		opts = append(opts, studyindex.WithIndexFile(cfg.IndexFile))
	}
	if cfg.FolderIndexFile != "" {
		opts = append(opts, studyindex.WithFolderIndexFile(cfg.FolderIndexFile))
	}
	if cfg.Extension != "" {
		opts = append(opts, studyindex.WithExtension(cfg.Extension))
	}
	if cfg.Icons.Default != "" || len(cfg.Icons.Map) > 0 {
		icons := studyindex.DefaultIcons()
		names := make([]string, 0, len(cfg.Icons.Map))
		for name := range cfg.Icons.Map {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			icons[strings.ToLower(name)] = cfg.Icons.Map[name]
		}
		opts = append(opts, studyindex.WithIcons(studyindex.NewIconResolver(icons, cfg.Icons.Default)))
	}

	return append(opts, studyindex.WithLayout(mergeLayout(studyindex.DefaultLayout(), cfg.Page)))
}

// mergeLayout overrides layout texts with non-empty page settings.
func mergeLayout(l studyindex.Layout, p config.PageConfig) studyindex.Layout {
	mergeString(&l.Title, p.Title)
	mergeString(&l.Intro, p.Intro)
	mergeString(&l.CardsHeading, p.CardsHeading)
	mergeString(&l.LabelSuffix, p.LabelSuffix)
	mergeString(&l.DetailSuffix, p.DetailSuffix)
	mergeString(&l.EmptyIndexPlaceholder, p.EmptyIndexPlaceholder)
	mergeString(&l.MaterialsHeading, p.MaterialsHeading)
	mergeString(&l.EmptyFolderPlaceholder, p.EmptyFolderPlaceholder)
	mergeString(&l.Template, p.Template)
	if p.Comments != nil {
		l.Comments = *p.Comments
	}
	return l
}

func mergeString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
