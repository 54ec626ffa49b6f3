// Package config reads and writes the ledgerbook.yaml project file used by
// the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the project
// directory.
const FileName = "ledgerbook.yaml"

// Config is the top-level ledgerbook.yaml configuration.
type Config struct {
	Book BookConfig `yaml:"book"`
}

// BookConfig locates the book data file and sets its amount precision.
type BookConfig struct {
	// File is the book data file, relative to the project directory.
	File string `yaml:"file"`
	// Precision is the number of decimal places amounts are rounded to.
	Precision int32 `yaml:"precision"`
	// Years are the fiscal years of the book, in the order they were
	// added. The book data file does not carry fiscal years, so they
	// live here.
	Years []YearConfig `yaml:"years,omitempty"`
}

// YearConfig declares one fiscal year by its inclusive date range.
type YearConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Load reads a ledgerbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration written by "ledgerbook init".
func Default() *Config {
	return &Config{
		Book: BookConfig{
			File:      "book.json",
			Precision: 2,
		},
	}
}
