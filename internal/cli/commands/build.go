package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/leapstack-labs/dbscript/internal/builder"
	"github.com/leapstack-labs/dbscript/internal/cli/config"
	"github.com/leapstack-labs/dbscript/internal/console"
	"github.com/leapstack-labs/dbscript/internal/emit"
	"github.com/leapstack-labs/dbscript/internal/menu"
	"github.com/leapstack-labs/dbscript/internal/schema"
	"github.com/leapstack-labs/dbscript/internal/verify"
	"github.com/spf13/cobra"
)

const banner = "dbscript: build a database, get a SQL script"

// Interaction is the pair of input sources the builder reads from.
type Interaction struct {
	Selector menu.Selector
	Prompter console.Prompter
	Close    func()
}

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Interactively define a database and write its SQL script",
		Long: `Walk through defining a database: tables, columns, types, primary keys
and sample rows. Choosing "Save and exit" writes <database-name>.sql to the
output directory with CREATE DATABASE, USE, CREATE TABLE and INSERT statements.

Menus are navigated with the arrow keys (or j/k) and confirmed with enter.
When stdin is not a terminal, or with --plain, menus are numbered and read
line by line instead.

This is also what running dbscript without a subcommand does.`,
		Example: `  # Start the interactive builder
  dbscript build

  # Write the script into ./sql and show a summary first
  dbscript build --output-dir sql --preview

  # Dry-run the script against in-memory SQLite before writing it
  dbscript build --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunBuild(cmd)
		},
	}

	return cmd
}

// RunBuild runs an interactive session on the command's stdin and stdout.
func RunBuild(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	if err := cmdCtx.Cfg.Validate(); err != nil {
		return err
	}

	ui, err := newInteraction(cmd, cmdCtx)
	if err != nil {
		return err
	}
	defer ui.Close()

	return runBuild(cmd.Context(), cmdCtx, ui)
}

func newInteraction(cmd *cobra.Command, cmdCtx *CommandContext) (*Interaction, error) {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	theme := cmdCtx.Styles.MenuTheme()

	if !cmdCtx.Cfg.Plain && isTerminal(in) && isTerminal(out) {
		cmdCtx.Logger.Debug("using terminal UI")
		return &Interaction{
			Selector: menu.NewTUISelector(in, out, theme),
			Prompter: console.NewTUIPrompter(in, out, cmdCtx.Styles),
			Close:    func() {},
		}, nil
	}

	cmdCtx.Logger.Debug("using line input", "plain", cmdCtx.Cfg.Plain)
	lp, err := console.NewLinePrompter(in, out, isTerminal(in), cmdCtx.Styles)
	if err != nil {
		return nil, err
	}
	return &Interaction{
		Selector: menu.NewLineSelector(lp, out, theme),
		Prompter: lp,
		Close:    func() { _ = lp.Close() },
	}, nil
}

func runBuild(ctx context.Context, cmdCtx *CommandContext, ui *Interaction) error {
	logger := cmdCtx.Logger.With("session", uuid.NewString())
	printer := cmdCtx.Printer

	b := builder.New(builder.Options{
		Selector: ui.Selector,
		Prompter: ui.Prompter,
		Printer:  printer,
		Logger:   logger,
		Save:     newSaveFunc(cmdCtx.Cfg, printer, logger),
	})

	printer.Banner(banner)

	db, err := b.PromptDatabase(ctx)
	if errors.Is(err, schema.ErrEmptyName) {
		printer.Error("Database name cannot be empty.")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Debug("database created", "database", db.Name())

	if err := b.Run(ctx, db); err != nil {
		if errors.Is(err, menu.ErrAborted) {
			return fmt.Errorf("nothing was written: %w", err)
		}
		return err
	}
	return nil
}

// newSaveFunc previews, verifies and writes the script according to cfg.
func newSaveFunc(cfg *config.Config, printer *console.Printer, logger *slog.Logger) builder.SaveFunc {
	return func(ctx context.Context, db *schema.Database) error {
		if cfg.Preview {
			console.RenderSummary(printer.Writer(), db)
		}

		if cfg.Verify {
			if err := verify.InMemory(ctx, db); err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}
			printer.Success("Script verified against SQLite.")
		}

		path, err := emit.WriteFile(cfg.OutputDir, db)
		if err != nil {
			return err
		}
		logger.Info("script written", "path", path, "tables", len(db.Tables()))
		printer.Success("SQL file '%s' created successfully.", path)
		return nil
	}
}
