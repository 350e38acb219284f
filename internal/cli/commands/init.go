package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a default dbscript.yaml",
		Long: `Write a commented dbscript.yaml with every setting at its default value.

dbscript looks for this file in the working directory and its parents, so
placing it at the root of a project applies it to every build run below.`,
		Example: `  # Create dbscript.yaml in the current directory
  dbscript init

  # Create it in a new directory
  dbscript init sql

  # Replace an existing file
  dbscript init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(NewCommandContext(cmd), dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmdCtx *CommandContext, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	path, err := writeConfigTemplate(dir, force)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("config written", "path", path)

	cmdCtx.Printer.Success("Created %s", path)
	cmdCtx.Printer.Info("")
	cmdCtx.Printer.Info("Next steps:")
	cmdCtx.Printer.Info("  1. Adjust output_dir and the other settings")
	cmdCtx.Printer.Info("  2. Run 'dbscript' to build a database")

	return nil
}
