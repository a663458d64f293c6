package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a Config from a YAML file at path, starting
// from DefaultConfig and applying any opts after the file is parsed so
// programmatic overrides win over the file's values.
func Load(path string, opts ...Option) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadFrom(f, opts...)
}

// LoadFrom reads and validates a Config from an arbitrary reader, useful
// for tests and for embedding a config document in another artifact.
func LoadFrom(r io.Reader, opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
