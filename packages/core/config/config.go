package config

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Target names the types of one package to generate wrappers for.
type Target struct {
	// Package is a go/packages pattern, usually a relative directory.
	Package string   `yaml:"package"`
	Types   []string `yaml:"types"`
	// Output is the directory the wrappers are written to; the package
	// directory when empty.
	Output string `yaml:"output,omitempty"`
	// OutputPackage and OutputPath name the package the wrappers belong to
	// when it is not the target package.
	OutputPackage string `yaml:"outputPackage,omitempty"`
	OutputPath    string `yaml:"outputPath,omitempty"`
}

// Config is the contents of an expectgen.yaml file.
type Config struct {
	// Dir is the directory package patterns are resolved from.
	Dir      string   `yaml:"dir,omitempty"`
	Targets  []Target `yaml:"targets,omitempty"`
	Debounce int      `yaml:"debounce,omitempty"` // milliseconds, watch mode
	Verbose  *bool    `yaml:"verbose,omitempty"`
	NoColor  *bool    `yaml:"noColor,omitempty"`
}

// BoolPtr is used to set the tri-state switches of Config.
func BoolPtr(b bool) *bool {
	return &b
}

func getBool(b *bool, fallback bool) bool {
	if b != nil {
		return *b
	}
	return fallback
}

func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// ConfigFilenames are tried in order by FindAndLoadConfig.
var ConfigFilenames = []string{
	"expectgen.yaml",
	".expectgen.yaml",
	".expectgen.yml",
}

// LoadConfig reads path, or looks for a config file in the working
// directory when path is empty.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig loads the first of ConfigFilenames found in dir, or the
// defaults when there is none.
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, name := range ConfigFilenames {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		return loadConfigFromFile(candidate)
	}
	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Merge returns a copy of c overlaid with the fields set in other. c itself
// is returned when other is nil.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c
	if other.Dir != "" {
		result.Dir = other.Dir
	}
	if other.Debounce > 0 {
		result.Debounce = other.Debounce
	}
	// Targets given on the command line replace the configured ones
	if len(other.Targets) > 0 {
		result.Targets = other.Targets
	}

	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	return &result
}

// Validate reports the first target that cannot be generated.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return errors.New("no targets configured")
	}
	for i, t := range c.Targets {
		if t.Package == "" {
			return fmt.Errorf("target %d: package is required", i)
		}
		if len(t.Types) == 0 {
			return fmt.Errorf("target %d (%s): at least one type is required", i, t.Package)
		}
		for _, name := range t.Types {
			if !token.IsIdentifier(name) {
				return fmt.Errorf("target %d (%s): %q is not a type name", i, t.Package, name)
			}
		}
		if (t.OutputPackage == "") != (t.OutputPath == "") {
			return fmt.Errorf("target %d (%s): outputPackage and outputPath go together", i, t.Package)
		}
	}
	return nil
}

// SaveConfig writes c to path as YAML.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
