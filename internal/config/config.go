package config

// Config holds the application configuration.
type Config struct {
	Theme   string `yaml:"theme"`
	LogFile string `yaml:"log_file"`
	Debug   bool   `yaml:"debug"`
	Layout  *Node  `yaml:"layout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:   "catppuccin-mocha",
		LogFile: "",
		Debug:   false,
		Layout:  DefaultLayout(),
	}
}

// Validate checks the layout tree.
func (c Config) Validate() error {
	if c.Layout == nil {
		return ErrNoLayout
	}
	return c.Layout.Validate()
}
