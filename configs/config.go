package configs

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

//go:embed defaults.yaml
var defaultsYAML embed.FS

// Config names the files and table a conversion works on.
type Config struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Table  string `yaml:"table"`
	Index  bool   `yaml:"index"`
}

// Defaults returns the settings used by the fixed-name variant.
func Defaults() (Config, error) {
	var cfg Config
	data, err := defaultsYAML.ReadFile("defaults.yaml")
	if err != nil {
		return cfg, fmt.Errorf("read defaults: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode defaults: %w", err)
	}
	return cfg, nil
}

// Load overlays the YAML file at path on top of Defaults.
// Keys missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every empty field of c.
func (c Config) Validate() error {
	var errs []error
	if c.Source == "" {
		errs = append(errs, errors.New("source is empty"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output is empty"))
	}
	if c.Table == "" {
		errs = append(errs, errors.New("table is empty"))
	}
	return errors.Join(errs...)
}
