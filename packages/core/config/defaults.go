package config

// DefaultDebounce is the watch-mode debounce in milliseconds.
const DefaultDebounce = 200

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Dir:      ".",
		Debounce: DefaultDebounce,
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.Dir == defaults.Dir &&
		c.Debounce == defaults.Debounce &&
		len(c.Targets) == 0 &&
		c.GetVerbose() == defaults.GetVerbose() &&
		c.GetNoColor() == defaults.GetNoColor()
}

// Example is the configuration written by expectgen init.
func Example() *Config {
	c := DefaultConfig()
	c.Targets = []Target{{
		Package: "./internal/domain",
		Types:   []string{"Order"},
	}}
	return c
}
