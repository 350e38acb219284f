// Package cli provides the command-line interface for dbscript.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/dbscript/internal/cli/commands"
	"github.com/leapstack-labs/dbscript/internal/cli/config"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dbscript",
		Short: "dbscript - interactive SQL script builder",
		Long: `dbscript walks you through defining a database in the terminal: tables,
columns with their types and primary keys, and sample rows.

Saving writes <database-name>.sql containing CREATE DATABASE, USE,
CREATE TABLE and INSERT statements, ready to feed to a MySQL-style server.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, config.LoggerKey(), logger))

			if cfg.NoColor || termenv.EnvNoColor() {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunBuild(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Interactive SQL script builder
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./dbscript.yaml)")
	rootCmd.PersistentFlags().StringP("output-dir", "d", "", "Directory to write <database>.sql to")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colors and styling")
	rootCmd.PersistentFlags().Bool("verify", false, "Run the script against in-memory SQLite before writing it")
	rootCmd.PersistentFlags().Bool("preview", false, "Show a schema summary before saving")
	rootCmd.PersistentFlags().Bool("plain", false, "Use numbered line prompts instead of arrow-key menus")

	_ = rootCmd.MarkPersistentFlagDirname("output-dir")
	_ = rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")

	// Add subcommands
	rootCmd.AddCommand(commands.NewBuildCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(commands.BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
	}))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for dbscript.

To load completions:

Bash:
  $ source <(dbscript completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ dbscript completion bash > /etc/bash_completion.d/dbscript
  # macOS:
  $ dbscript completion bash > $(brew --prefix)/etc/bash_completion.d/dbscript

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ dbscript completion zsh > "${fpath[1]}/_dbscript"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ dbscript completion fish | source

  # To load completions for each session, execute once:
  $ dbscript completion fish > ~/.config/fish/completions/dbscript.fish

PowerShell:
  PS> dbscript completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> dbscript completion powershell > dbscript.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
