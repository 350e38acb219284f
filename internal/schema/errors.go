package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName is returned when a database is created without a name.
	ErrEmptyName = errors.New("database name cannot be empty")

	// ErrNilTable is returned when a nil table is added to a database.
	ErrNilTable = errors.New("table is nil")

	// ErrColumnsFrozen is returned when a column is added to a table that already has rows.
	ErrColumnsFrozen = errors.New("cannot add columns to a table that already has rows")
)

// DuplicateTableError is returned when a table name is already taken.
type DuplicateTableError struct {
	Name string
}

func (e *DuplicateTableError) Error() string {
	return fmt.Sprintf("table %q already exists", e.Name)
}

// DuplicateColumnError is returned when a column name is already taken in its table.
type DuplicateColumnError struct {
	Table  string
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("column %q already exists in table %q", e.Column, e.Table)
}

// UnknownTypeError is returned for a data type outside the supported set.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	labels := DataTypeLabels()
	return fmt.Sprintf("unknown data type %q\nSupported types: %s", e.Type, strings.Join(labels, ", "))
}

// RowLengthError is returned when a row does not have one value per column.
type RowLengthError struct {
	Table   string
	Columns int
	Values  int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("table %q has %d columns but row has %d values", e.Table, e.Columns, e.Values)
}
