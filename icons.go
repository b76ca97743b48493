package studyindex

import (
	"sort"
	"strings"
)

// DefaultIcon is returned for category names missing from the icon table.
const DefaultIcon = "folder"

// defaultIcons maps known category names to FontAwesome solid icon names.
var defaultIcons = map[string]string{
	"cs":      "code",
	"math":    "calculator",
	"physics": "atom",
	"english": "language",
}

// DefaultIcons returns a copy of the built-in category icon table.
func DefaultIcons() map[string]string {
	out := make(map[string]string, len(defaultIcons))
	for name, icon := range defaultIcons {
		out[name] = icon
	}
	return out
}

// IconResolver maps category folder names to icon identifiers.
// Lookups are case-insensitive; the zero value resolves everything to DefaultIcon.
type IconResolver struct {
	icons    map[string]string
	fallback string
}

// NewIconResolver builds a resolver from icons. An empty fallback means DefaultIcon.
// When names collide ignoring case, the lexically greatest wins, so an
// all lower-case name takes precedence.
func NewIconResolver(icons map[string]string, fallback string) IconResolver {
	if fallback == "" {
		fallback = DefaultIcon
	}
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	sort.Strings(names)
	table := make(map[string]string, len(icons))
	for _, name := range names {
		table[strings.ToLower(name)] = icons[name]
	}
	return IconResolver{icons: table, fallback: fallback}
}

// DefaultIconResolver returns a resolver over the built-in table.
func DefaultIconResolver() IconResolver {
	return NewIconResolver(defaultIcons, DefaultIcon)
}

// Resolve returns the icon for a category name.
func (r IconResolver) Resolve(name string) string {
	if icon, ok := r.icons[strings.ToLower(name)]; ok {
		return icon
	}
	if r.fallback == "" {
		return DefaultIcon
	}
	return r.fallback
}

// ResolveIcon resolves name against the built-in table.
func ResolveIcon(name string) string {
	return DefaultIconResolver().Resolve(name)
}
