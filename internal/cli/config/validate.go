package config

import (
	"fmt"
	"os"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	info, err := os.Stat(c.OutputDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("output directory does not exist: %s\nHint: Create the directory or use --output-dir to specify a different path", c.OutputDir)
	}
	if err != nil {
		return fmt.Errorf("cannot access output directory %s: %w", c.OutputDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path is not a directory: %s", c.OutputDir)
	}
	return nil
}
