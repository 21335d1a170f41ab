// Package config provides configuration defaults and loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application name.
	AppName = "countrygen"

	// DefaultLocation is the ISO 3166 semicolon-delimited country list.
	DefaultLocation = "http://www.iso.org/iso/list-en1-semic-3.txt"

	// DefaultFilename is the generated file path, relative to the project root.
	DefaultFilename = "src/logbook/countries.cpp"

	// DefaultEncoding is used when the source does not declare a charset.
	DefaultEncoding = "ISO-8859-1"

	// DefaultFormat is the output template.
	DefaultFormat = "cpp"

	// DefaultPackage is the package clause for the go output format.
	DefaultPackage = "countries"

	// DefaultTimeout for fetching the source list.
	DefaultTimeout = 30 * time.Second

	// UserAgent sent with HTTP requests.
	UserAgent = "countrygen/1.0"
)

// Formats lists the supported output formats.
var Formats = []string{"cpp", "go"}

// Config holds runtime configuration.
type Config struct {
	Location        string        `yaml:"location"`
	Filename        string        `yaml:"filename"`
	DefaultEncoding string        `yaml:"default_encoding"`
	Format          string        `yaml:"format"`
	Package         string        `yaml:"package"`
	Timeout         time.Duration `yaml:"timeout"`
	Manifest        string        `yaml:"manifest"`
	DryRun          bool          `yaml:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Location:        DefaultLocation,
		Filename:        DefaultFilename,
		DefaultEncoding: DefaultEncoding,
		Format:          DefaultFormat,
		Package:         DefaultPackage,
		Timeout:         DefaultTimeout,
	}
}

// Load reads a YAML configuration file on top of the defaults.
// Environment variables in the file are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Location == "" {
		return fmt.Errorf("location must not be empty")
	}
	if c.Filename == "" && !c.DryRun {
		return fmt.Errorf("filename must not be empty")
	}
	if c.DefaultEncoding == "" {
		return fmt.Errorf("default encoding must not be empty")
	}
	if !IsFormat(c.Format) {
		return fmt.Errorf("invalid format: %s (use cpp or go)", c.Format)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// IsFormat reports whether name is a supported output format.
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// EnsureParentDir creates the parent directory of path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return EnsureDir(dir)
}
