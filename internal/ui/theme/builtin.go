package theme

import "github.com/charmbracelet/lipgloss"

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Syntax:  "catppuccin-mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Surface: lipgloss.Color("#313244"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Sash:       lipgloss.Color("#6c7086"),
	SashActive: lipgloss.Color("#cba6f7"),
	Accent:     lipgloss.Color("#cba6f7"),

	Panes: []lipgloss.Color{"#45475a", "#585b70", "#313244", "#6c7086"},

	StatusOK:    lipgloss.Color("#a6e3a1"),
	StatusError: lipgloss.Color("#f38ba8"),
}

var CatppuccinLatte = Theme{
	Name:    "Catppuccin Latte",
	Syntax:  "catppuccin-latte",
	Base:    lipgloss.Color("#eff1f5"),
	Surface: lipgloss.Color("#ccd0da"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Muted:   lipgloss.Color("#9ca0b0"),

	Sash:       lipgloss.Color("#8c8fa1"),
	SashActive: lipgloss.Color("#8839ef"),
	Accent:     lipgloss.Color("#8839ef"),

	Panes: []lipgloss.Color{"#dce0e8", "#bcc0cc", "#e6e9ef", "#acb0be"},

	StatusOK:    lipgloss.Color("#40a02b"),
	StatusError: lipgloss.Color("#d20f39"),
}

var Nord = Theme{
	Name:    "Nord",
	Syntax:  "nord",
	Base:    lipgloss.Color("#2e3440"),
	Surface: lipgloss.Color("#3b4252"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Muted:   lipgloss.Color("#4c566a"),

	Sash:       lipgloss.Color("#4c566a"),
	SashActive: lipgloss.Color("#88c0d0"),
	Accent:     lipgloss.Color("#88c0d0"),

	Panes: []lipgloss.Color{"#3b4252", "#434c5e", "#4c566a", "#5e81ac"},

	StatusOK:    lipgloss.Color("#a3be8c"),
	StatusError: lipgloss.Color("#bf616a"),
}

var Dracula = Theme{
	Name:    "Dracula",
	Syntax:  "dracula",
	Base:    lipgloss.Color("#282a36"),
	Surface: lipgloss.Color("#44475a"),

	Text:    lipgloss.Color("#f8f8f2"),
	Subtext: lipgloss.Color("#bfbfbf"),
	Muted:   lipgloss.Color("#6272a4"),

	Sash:       lipgloss.Color("#6272a4"),
	SashActive: lipgloss.Color("#ff79c6"),
	Accent:     lipgloss.Color("#bd93f9"),

	Panes: []lipgloss.Color{"#44475a", "#6272a4", "#343746", "#21222c"},

	StatusOK:    lipgloss.Color("#50fa7b"),
	StatusError: lipgloss.Color("#ff5555"),
}

var GruvboxDark = Theme{
	Name:    "Gruvbox Dark",
	Syntax:  "gruvbox",
	Base:    lipgloss.Color("#282828"),
	Surface: lipgloss.Color("#3c3836"),

	Text:    lipgloss.Color("#ebdbb2"),
	Subtext: lipgloss.Color("#d5c4a1"),
	Muted:   lipgloss.Color("#665c54"),

	Sash:       lipgloss.Color("#665c54"),
	SashActive: lipgloss.Color("#fe8019"),
	Accent:     lipgloss.Color("#fabd2f"),

	Panes: []lipgloss.Color{"#3c3836", "#504945", "#665c54", "#7c6f64"},

	StatusOK:    lipgloss.Color("#b8bb26"),
	StatusError: lipgloss.Color("#fb4934"),
}

var TokyoNight = Theme{
	Name:    "Tokyo Night",
	Syntax:  "tokyonight-night",
	Base:    lipgloss.Color("#1a1b26"),
	Surface: lipgloss.Color("#24283b"),

	Text:    lipgloss.Color("#c0caf5"),
	Subtext: lipgloss.Color("#a9b1d6"),
	Muted:   lipgloss.Color("#565f89"),

	Sash:       lipgloss.Color("#565f89"),
	SashActive: lipgloss.Color("#7aa2f7"),
	Accent:     lipgloss.Color("#bb9af7"),

	Panes: []lipgloss.Color{"#24283b", "#292e42", "#414868", "#3b4261"},

	StatusOK:    lipgloss.Color("#9ece6a"),
	StatusError: lipgloss.Color("#f7768e"),
}
