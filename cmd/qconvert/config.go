package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qinterop/qinterop/unitary"
)

// config tunes the verification oracle. Zero values fall back to the
// package defaults.
type config struct {
	Atol      float64 `yaml:"atol"`
	MaxQubits int     `yaml:"max_qubits"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Atol < 0 {
		return cfg, fmt.Errorf("config %s: atol must be non-negative", path)
	}
	if cfg.MaxQubits < 0 {
		return cfg, fmt.Errorf("config %s: max_qubits must be non-negative", path)
	}
	return cfg, nil
}

func (c config) options() unitary.Options {
	return unitary.Options{
		Atol:      c.Atol,
		MaxQubits: c.MaxQubits,
	}
}
