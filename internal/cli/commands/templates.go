package commands

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/dbscript/internal/cli/config"
)

//go:embed templates/dbscript.yaml
var templateFS embed.FS

// configTemplate returns the default configuration file contents.
func configTemplate() ([]byte, error) {
	return templateFS.ReadFile("templates/" + config.ConfigFileName)
}

// writeConfigTemplate writes the default configuration into dir and returns
// the path written. An existing file is only replaced when force is set.
func writeConfigTemplate(dir string, force bool) (string, error) {
	target := filepath.Join(dir, config.ConfigFileName)

	if !force {
		if _, err := os.Stat(target); err == nil {
			return "", fmt.Errorf("%s already exists. Use --force to overwrite", config.ConfigFileName)
		}
	}

	content, err := configTemplate()
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(target, content, 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	return target, nil
}
