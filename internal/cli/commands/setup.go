package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/dbscript/internal/cli/config"
	"github.com/leapstack-labs/dbscript/internal/console"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Styles  console.Styles
	Printer *console.Printer
}

// NewCommandContext collects the config, logger and console styling for cmd.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	styles := console.DefaultStyles()
	if cfg.NoColor {
		styles = console.PlainStyles()
	}

	return &CommandContext{
		Cfg:     cfg,
		Logger:  logger,
		Styles:  styles,
		Printer: console.NewPrinter(cmd.OutOrStdout(), styles),
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	cfg := config.Default()
	cfg.OutputDir = getEnvOrDefault(config.EnvPrefix+"OUTPUT_DIR", cfg.OutputDir)
	cfg.Verbose = os.Getenv(config.EnvPrefix+"VERBOSE") == "true"
	cfg.NoColor = os.Getenv(config.EnvPrefix+"NO_COLOR") == "true"
	cfg.Verify = os.Getenv(config.EnvPrefix+"VERIFY") == "true"
	cfg.Preview = os.Getenv(config.EnvPrefix+"PREVIEW") == "true"
	cfg.Plain = os.Getenv(config.EnvPrefix+"PLAIN") == "true"
	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
