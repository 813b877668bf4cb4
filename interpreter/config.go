package interpreter

import (
	"io"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables of an Interpreter.
type Config struct {
	// MaxDepth bounds the number of nested calls. Zero means unbounded.
	MaxDepth int `yaml:"max_depth"`
}

func (c Config) validate() error {
	if c.MaxDepth < 0 {
		return xerrors.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// LoadConfig reads a YAML config file. Unknown keys are rejected and an empty
// file yields the zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, xerrors.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, xerrors.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, xerrors.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}
