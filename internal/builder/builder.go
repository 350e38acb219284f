// Package builder drives the interactive construction of a schema.Database.
//
// Every discrete decision goes through a menu.Selector and every free-text
// answer through a console.Prompter, so the whole flow runs unchanged against
// a terminal or a scripted test double.
package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/dbscript/internal/console"
	"github.com/leapstack-labs/dbscript/internal/menu"
	"github.com/leapstack-labs/dbscript/internal/schema"
)

// ErrNoTables is returned when data is requested before any table exists.
var ErrNoTables = errors.New("no tables available to add data to")

// Main menu options.
const (
	OptionAddTable = iota
	OptionAddData
	OptionSave
)

// Menu labels.
var (
	MainMenu  = []string{"Add table", "Add data to table", "Save and exit"}
	TableMenu = []string{"Add column", "Finish table"}
)

// Menu titles.
const (
	TitleMain      = "Main menu"
	TitleTable     = "Table %q"
	TitleDataType  = "Choose a data type for column %q"
	TitlePickTable = "Choose a table to add data to"
)

// SaveFunc persists the finished database. It runs once, on "Save and exit".
type SaveFunc func(ctx context.Context, db *schema.Database) error

// Options configures a Builder.
type Options struct {
	Selector menu.Selector
	Prompter console.Prompter
	Printer  *console.Printer
	Logger   *slog.Logger
	Save     SaveFunc
}

// Builder runs the interactive schema-building loop.
type Builder struct {
	selector menu.Selector
	prompter console.Prompter
	printer  *console.Printer
	logger   *slog.Logger
	save     SaveFunc
	state    State
}

// New creates a Builder. A nil Logger discards logs.
func New(opts Options) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{
		selector: opts.Selector,
		prompter: opts.Prompter,
		printer:  opts.Printer,
		logger:   logger,
		save:     opts.Save,
		state:    StateIdle,
	}
}

// State returns the current state.
func (b *Builder) State() State {
	return b.state
}

func (b *Builder) setState(s State) {
	if b.state == s {
		return
	}
	b.logger.Debug("state transition", "from", b.state.String(), "to", s.String())
	b.state = s
}

// PromptDatabase asks for the database name. An empty answer returns
// schema.ErrEmptyName.
func (b *Builder) PromptDatabase(ctx context.Context) (*schema.Database, error) {
	name, err := b.prompter.Prompt(ctx, "Enter the database name: ")
	if err != nil {
		return nil, err
	}
	return schema.NewDatabase(name)
}

// Run shows the main menu until the user saves. It returns nil once the save
// hook succeeds, menu.ErrAborted if the user quits, or the save error.
func (b *Builder) Run(ctx context.Context, db *schema.Database) error {
	b.setState(StateIdle)
	for {
		choice, err := b.selector.Select(ctx, TitleMain, MainMenu)
		if err != nil {
			return err
		}

		switch choice {
		case OptionAddTable:
			b.setState(StateBuildingTable)
			table, err := b.CreateTable(ctx, db)
			var dup *schema.DuplicateTableError
			switch {
			case errors.As(err, &dup):
				b.printer.Error("Table not added: %v", err)
			case err != nil:
				return err
			default:
				b.addTable(db, table)
			}
			b.setState(StateIdle)

		case OptionAddData:
			b.setState(StateAddingData)
			err := b.AddDataToTable(ctx, db)
			switch {
			case errors.Is(err, ErrNoTables):
				b.printer.Error("No tables available. Add a table first.")
			case err != nil:
				return err
			default:
				b.printer.Success("Data added successfully.")
			}
			b.setState(StateIdle)

		case OptionSave:
			b.setState(StateSaving)
			if b.save != nil {
				if err := b.save(ctx, db); err != nil {
					return fmt.Errorf("save failed: %w", err)
				}
			}
			b.setState(StateTerminated)
			return nil

		default:
			b.logger.Warn("selector returned out-of-range choice", "choice", choice)
			b.printer.Error("Invalid choice, try again.")
		}
	}
}

func (b *Builder) addTable(db *schema.Database, table *schema.Table) {
	if err := db.AddTable(table); err != nil {
		b.printer.Error("Table not added: %v", err)
		return
	}
	b.logger.Debug("table added", "table", table.Name, "columns", len(table.Columns))
	b.printer.Success("Table %q created with %d columns.", table.Name, len(table.Columns))
}

// CreateTable prompts for a table name and then for columns until the user
// finishes the table. A name already used in db returns a
// *schema.DuplicateTableError before any column is asked for.
func (b *Builder) CreateTable(ctx context.Context, db *schema.Database) (*schema.Table, error) {
	name, err := b.prompter.Prompt(ctx, "Enter the table name: ")
	if err != nil {
		return nil, err
	}
	if _, ok := db.Table(name); ok {
		return nil, &schema.DuplicateTableError{Name: name}
	}
	table := schema.NewTable(name)

	for {
		choice, err := b.selector.Select(ctx, fmt.Sprintf(TitleTable, name), TableMenu)
		if err != nil {
			return nil, err
		}
		if choice == 1 {
			return table, nil
		}
		if choice != 0 {
			b.printer.Error("Invalid choice, try again.")
			continue
		}

		col, err := b.CreateColumn(ctx)
		if err != nil {
			return nil, err
		}
		if err := table.AddColumn(col); err != nil {
			b.printer.Error("Column not added: %v", err)
			continue
		}
		b.logger.Debug("column added", "table", name, "column", col.Name, "type", col.Type.String(), "primary_key", col.PrimaryKey)
	}
}

// CreateColumn prompts for a column name, data type and primary-key flag.
func (b *Builder) CreateColumn(ctx context.Context) (schema.Column, error) {
	name, err := b.prompter.Prompt(ctx, "Enter the column name: ")
	if err != nil {
		return schema.Column{}, err
	}

	types := schema.DataTypes()
	idx, err := b.selectIndex(ctx, fmt.Sprintf(TitleDataType, name), schema.DataTypeLabels())
	if err != nil {
		return schema.Column{}, err
	}

	answer, err := b.prompter.Prompt(ctx, "Is this column a PRIMARY KEY? (y/n): ")
	if err != nil {
		return schema.Column{}, err
	}

	return schema.Column{
		Name:       name,
		Type:       types[idx],
		PrimaryKey: strings.EqualFold(strings.TrimSpace(answer), "y"),
	}, nil
}

// AddDataToTable asks which table to fill and prompts for one value per
// column. With no tables it returns ErrNoTables and changes nothing.
func (b *Builder) AddDataToTable(ctx context.Context, db *schema.Database) error {
	tables := db.Tables()
	if len(tables) == 0 {
		return ErrNoTables
	}

	idx, err := b.selectIndex(ctx, TitlePickTable, db.TableNames())
	if err != nil {
		return err
	}
	table := tables[idx]

	values := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		v, err := b.prompter.Prompt(ctx, fmt.Sprintf("Enter value for %s (%s): ", col.Name, col.Type))
		if err != nil {
			return err
		}
		values = append(values, v)
	}

	if err := table.AddRow(schema.Row{Values: values}); err != nil {
		return err
	}
	b.logger.Debug("row added", "table", table.Name, "rows", len(table.Rows))
	return nil
}

// selectIndex asks until the selector returns an index within options.
func (b *Builder) selectIndex(ctx context.Context, title string, options []string) (int, error) {
	for {
		idx, err := b.selector.Select(ctx, title, options)
		if err != nil {
			return -1, err
		}
		if idx >= 0 && idx < len(options) {
			return idx, nil
		}
		b.logger.Warn("selector returned out-of-range choice", "menu", title, "choice", idx)
		b.printer.Error("Invalid choice, try again.")
	}
}
