package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// OutputConfig controls how extracted metadata is rendered.
type OutputConfig struct {
	// Format is "text", "json", or "yaml". Empty means text.
	Format string `yaml:"format,omitempty"`
	// Color is "auto", "always", or "never". Empty means auto.
	Color string `yaml:"color,omitempty"`
}

// ProjectConfig is the content of mockhouse.yaml.
type ProjectConfig struct {
	Output  OutputConfig `yaml:"output"`
	DistDir string       `yaml:"dist_dir,omitempty"`
}

const ConfigFileName = "mockhouse.yaml"

// Load reads mockhouse.yaml from sourcePath. A missing file returns
// ErrConfigNotFound so callers can fall back to defaults.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", mockhouse.ErrInvalidConfig, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enum fields against their allowed values.
func (c *ProjectConfig) Validate() error {
	switch c.Output.Format {
	case "", "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: output.format %q must be text, json, or yaml", mockhouse.ErrInvalidConfig, c.Output.Format)
	}
	switch c.Output.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%w: output.color %q must be auto, always, or never", mockhouse.ErrInvalidConfig, c.Output.Color)
	}
	return nil
}
