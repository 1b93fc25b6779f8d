// Package config loads the optional devman settings file
// (~/.devman/config.yaml). Every field has a default, so a missing file is
// a normal, fully-configured state.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures user-tunable settings for devman.
type Config struct {
	Version   int             `yaml:"version"`
	StoreRoot string          `yaml:"store_root,omitempty"`
	EnvFile   string          `yaml:"env_file,omitempty"`
	Delegates DelegatesConfig `yaml:"delegates"`
	Mirrors   MirrorsConfig   `yaml:"mirrors"`
}

// DelegatesConfig overrides how the external version managers are invoked.
// nvm is a shell function sourced from a directory rather than a binary, so
// node takes a directory where python takes a command.
type DelegatesConfig struct {
	NodeDir       string `yaml:"node_dir,omitempty"`
	PythonCommand string `yaml:"python_command"`
}

// MirrorsConfig overrides the upstream endpoints used for version indexes
// and artifact downloads.
type MirrorsConfig struct {
	Go     string `yaml:"go,omitempty"`
	Java   string `yaml:"java,omitempty"`
	Maven  string `yaml:"maven,omitempty"`
	Gradle string `yaml:"gradle,omitempty"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
		Delegates: DelegatesConfig{
			PythonCommand: "pyenv",
		},
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise
// returns the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyDefaults ensures fields fall back when the YAML omits them.
func (c *Config) ApplyDefaults() {
	defaults := Default()
	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Delegates.PythonCommand == "" {
		c.Delegates.PythonCommand = defaults.Delegates.PythonCommand
	}
}

// Validate rejects configurations devman cannot honour.
func (c Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version %d", c.Version)
	}
	return nil
}
