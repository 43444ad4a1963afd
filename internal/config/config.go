// Package config holds the process-wide defaults. Values are fixed at
// startup: the tool is a one-shot CLI, so nothing is reconfigured while a
// batch is running.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/menta2k/photobatch/pkg/imageio"
)

// DefaultQuality is the encoder quality used when no flag is given.
const DefaultQuality = 85

// OutputDirSuffix is appended to the input directory name when no output
// directory is given: "photos" writes to "photos_processed".
const OutputDirSuffix = "_processed"

// Config holds the optional user configuration file.
type Config struct {
	Quality int    `json:"quality"`
	Format  string `json:"format"`
	Workers int    `json:"workers"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Quality: DefaultQuality,
		Format:  "",
		Workers: 0,
	}
}

// LoadFromFile loads configuration from a JSON file.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Quality < 0 || c.Quality > 100 {
		return fmt.Errorf("quality must be between 0 and 100")
	}
	if c.Format != "" {
		if _, err := imageio.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	return nil
}

// DefaultOutputDir derives the fallback output directory from the input
// directory: a sibling named after the input with OutputDirSuffix appended.
func DefaultOutputDir(inputDir string) string {
	clean := filepath.Clean(inputDir)
	return filepath.Join(filepath.Dir(clean), filepath.Base(clean)+OutputDirSuffix)
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "photobatch", "config.json")
}
