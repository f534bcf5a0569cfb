package theme

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Catalog maps theme names to themes.
var Catalog = map[string]Theme{}

func init() {
	register(CatppuccinMocha)
	register(CatppuccinLatte)
	register(Nord)
	register(Dracula)
	register(GruvboxDark)
	register(TokyoNight)
}

func register(t Theme) {
	Catalog[normalizeKey(t.Name)] = t
}

// Get returns a theme by name.
func Get(name string) (Theme, bool) {
	t, ok := Catalog[normalizeKey(name)]
	return t, ok
}

// Names returns all registered theme names, sorted.
func Names() []string {
	var names []string
	for _, t := range Catalog {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// Next returns the theme after name in Names order, wrapping around.
func Next(name string) Theme {
	names := Names()
	key := normalizeKey(name)
	for i, n := range names {
		if normalizeKey(n) == key {
			t, _ := Get(names[(i+1)%len(names)])
			return t
		}
	}
	t, _ := Get(names[0])
	return t
}

// Resolve looks up a theme by name: catalog -> custom themes -> fallback to Mocha.
func Resolve(name string) Theme {
	if t, ok := Get(name); ok {
		return t
	}

	home, err := os.UserHomeDir()
	if err == nil {
		custom := LoadCustomThemes(filepath.Join(home, ".config", "sashay", "themes"))
		if t, ok := custom[normalizeKey(name)]; ok {
			return t
		}
	}

	return Default()
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
