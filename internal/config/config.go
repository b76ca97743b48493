package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/USTC-CS-Debate/go-studyindex/internal/fileutil"
	"github.com/USTC-CS-Debate/go-studyindex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrInvalidAssetsDir = errors.New("invalid assets directory")
	ErrInvalidExtension = errors.New("invalid document extension")
	ErrInvalidFileName  = errors.New("invalid index file name")
	ErrDuplicateIcon    = errors.New("duplicate icon category")
)

// Field length limits.
const (
	MaxPathLength  = 255  // Single path component or short relative path
	MaxTitleLength = 200  // Page title, headings, suffixes
	MaxTextLength  = 1000 // Intro paragraph
	MaxIconLength  = 64   // FontAwesome icon name
)

// Config holds the optional settings read from a YAML file.
// Zero values mean "keep the default".
type Config struct {
	AssetsDir       string      `yaml:"assetsDir"`
	IndexFile       string      `yaml:"indexFile"`
	FolderIndexFile string      `yaml:"folderIndexFile"`
	Extension       string      `yaml:"extension"`
	Icons           IconsConfig `yaml:"icons"`
	Page            PageConfig  `yaml:"page"`
}

// IconsConfig extends the built-in category icon table.
type IconsConfig struct {
	Default string            `yaml:"default"` // Fallback icon (default: "folder")
	Map     map[string]string `yaml:"map"`     // Category name -> icon, merged over defaults
}

// PageConfig overrides the texts of generated pages.
type PageConfig struct {
	Title                  string `yaml:"title"`
	Intro                  string `yaml:"intro"`
	CardsHeading           string `yaml:"cardsHeading"`
	LabelSuffix            string `yaml:"labelSuffix"`
	DetailSuffix           string `yaml:"detailSuffix"`
	EmptyIndexPlaceholder  string `yaml:"emptyIndexPlaceholder"`
	MaterialsHeading       string `yaml:"materialsHeading"`
	EmptyFolderPlaceholder string `yaml:"emptyFolderPlaceholder"`
	Template               string `yaml:"template"`
	Comments               *bool  `yaml:"comments"` // nil = keep default (true)
}

// Validate checks paths and field lengths.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.AssetsDir != "" {
		if err := validateAssetsDir(c.AssetsDir); err != nil {
			return err
		}
	}
	if c.Extension != "" {
		if err := fileutil.ValidateExtension(c.Extension); err != nil {
			return fmt.Errorf("%w: extension: %w", ErrInvalidExtension, err)
		}
	}
	if err := validateIndexFile("indexFile", c.IndexFile); err != nil {
		return err
	}
	if err := validateIndexFile("folderIndexFile", c.FolderIndexFile); err != nil {
		return err
	}

	if err := validateFieldLength("icons.default", c.Icons.Default, MaxIconLength); err != nil {
		return err
	}
	if err := validateIconMap(c.Icons.Map); err != nil {
		return err
	}

	if err := validateFieldLength("page.intro", c.Page.Intro, MaxTextLength); err != nil {
		return err
	}
	titles := []struct {
		field string
		value string
	}{
		{"page.title", c.Page.Title},
		{"page.cardsHeading", c.Page.CardsHeading},
		{"page.labelSuffix", c.Page.LabelSuffix},
		{"page.detailSuffix", c.Page.DetailSuffix},
		{"page.emptyIndexPlaceholder", c.Page.EmptyIndexPlaceholder},
		{"page.materialsHeading", c.Page.MaterialsHeading},
		{"page.emptyFolderPlaceholder", c.Page.EmptyFolderPlaceholder},
		{"page.template", c.Page.Template},
	}
	for _, f := range titles {
		if err := validateFieldLength(f.field, f.value, MaxTitleLength); err != nil {
			return err
		}
	}

	return nil
}

// validateIconMap checks icon lengths and rejects category names that only
// differ in case, since lookups ignore case.
func validateIconMap(icons map[string]string) error {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := make(map[string]string, len(names))
	for _, name := range names {
		if err := validateFieldLength(fmt.Sprintf("icons.map[%s]", name), icons[name], MaxIconLength); err != nil {
			return err
		}
		key := strings.ToLower(name)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: icons.map keys %q and %q", ErrDuplicateIcon, prev, name)
		}
		seen[key] = name
	}
	return nil
}

// validateAssetsDir accepts a relative, slash-separated path that stays
// inside the root directory.
func validateAssetsDir(dir string) error {
	if len(dir) > MaxPathLength {
		return fmt.Errorf("%w: assetsDir (%d chars, max %d)", ErrFieldTooLong, len(dir), MaxPathLength)
	}
	if strings.ContainsAny(dir, "\\\x00") || path.IsAbs(dir) || filepath.IsAbs(dir) {
		return fmt.Errorf("%w: %q must be a relative slash-separated path", ErrInvalidAssetsDir, dir)
	}
	cleaned := path.Clean(dir)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%w: %q must name a directory inside the root", ErrInvalidAssetsDir, dir)
	}
	return nil
}

// validateIndexFile accepts an empty value or a bare file name.
func validateIndexFile(field, value string) error {
	if value == "" {
		return nil
	}
	if err := validateFieldLength(field, value, MaxPathLength); err != nil {
		return err
	}
	if err := fileutil.ValidateFileName(value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidFileName, field, err)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in searchDirs,
// then in the user config directory.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string, searchDirs ...string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath, searchDirs)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: each of dirs, then ~/.config/studyindex/
func resolveConfigPath(name string, dirs []string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	locations := append([]string(nil), dirs...)
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		locations = append(locations, filepath.Join(userConfigDir, "studyindex"))
	}

	triedPaths := make([]string, 0, len(extensions)*len(locations))
	for _, dir := range locations {
		for _, ext := range extensions {
			candidate := filepath.Join(dir, name+ext)
			if fileutil.FileExists(candidate) {
				return candidate, nil
			}
			triedPaths = append(triedPaths, candidate)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
