// Package config provides configuration management for the dbscript CLI.
//
// Values are layered with koanf, lowest to highest precedence: built-in
// defaults, the dbscript.yaml config file, DBSCRIPT_* environment variables,
// and explicitly set command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	OutputDir string `koanf:"output_dir"`
	Verbose   bool   `koanf:"verbose"`
	NoColor   bool   `koanf:"no_color"`
	Verify    bool   `koanf:"verify"`
	Preview   bool   `koanf:"preview"`
	Plain     bool   `koanf:"plain"`

	// ConfigDir is the directory of the config file in use, if any.
	ConfigDir string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultOutputDir = "."
	EnvPrefix        = "DBSCRIPT_"
)

// Config file names, in lookup order.
const (
	ConfigFileName    = "dbscript.yaml"
	ConfigFileNameAlt = "dbscript.yml"
)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{OutputDir: DefaultOutputDir}
}
