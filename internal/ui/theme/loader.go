package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// yamlTheme is the YAML representation of a theme.
type yamlTheme struct {
	Name    string `yaml:"name"`
	Base    string `yaml:"base"`
	Surface string `yaml:"surface"`

	Text    string `yaml:"text"`
	Subtext string `yaml:"subtext"`
	Muted   string `yaml:"muted"`

	Sash       string `yaml:"sash"`
	SashActive string `yaml:"sash_active"`
	Accent     string `yaml:"accent"`

	Panes []string `yaml:"panes"`

	StatusOK    string `yaml:"status_ok"`
	StatusError string `yaml:"status_error"`

	Syntax string `yaml:"syntax"`
}

// LoadCustomTheme loads a theme from a YAML file. Colors missing from the
// file are taken from the default theme.
func LoadCustomTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	if yt.Name == "" {
		base := filepath.Base(path)
		yt.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	t := Default()
	t.Name = yt.Name
	set(&t.Base, yt.Base)
	set(&t.Surface, yt.Surface)
	set(&t.Text, yt.Text)
	set(&t.Subtext, yt.Subtext)
	set(&t.Muted, yt.Muted)
	set(&t.Sash, yt.Sash)
	set(&t.SashActive, yt.SashActive)
	set(&t.Accent, yt.Accent)
	set(&t.StatusOK, yt.StatusOK)
	set(&t.StatusError, yt.StatusError)
	if yt.Syntax != "" {
		t.Syntax = yt.Syntax
	}
	if len(yt.Panes) > 0 {
		t.Panes = make([]lipgloss.Color, len(yt.Panes))
		for i, c := range yt.Panes {
			t.Panes[i] = lipgloss.Color(c)
		}
	}
	return t, nil
}

func set(dst *lipgloss.Color, v string) {
	if v != "" {
		*dst = lipgloss.Color(v)
	}
}

// LoadCustomThemes loads all YAML themes from a directory.
func LoadCustomThemes(dir string) map[string]Theme {
	themes := make(map[string]Theme)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return themes
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadCustomTheme(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		themes[normalizeKey(t.Name)] = t
	}
	return themes
}
