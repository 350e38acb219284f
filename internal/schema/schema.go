// Package schema holds the in-memory model of the database being authored.
//
// A Database owns an ordered list of Tables; each Table owns its Columns and
// Rows. Everything is append-only: nothing is edited or removed once added.
// Rows are aligned to columns by position, so a table's columns are frozen as
// soon as its first row is stored.
package schema

// Database is the top-level named collection of tables.
type Database struct {
	name   string
	tables []*Table
}

// Table is a named collection of columns and rows.
type Table struct {
	Name    string
	Columns []Column
	Rows    []Row
}

// Column is a named, typed field, optionally marked as primary key.
type Column struct {
	Name       string
	Type       DataType
	PrimaryKey bool
}

// Row is one ordered set of values, positionally aligned to the table's columns.
type Row struct {
	Values []string
}

// NewDatabase creates an empty database. The name is used verbatim as the SQL
// identifier and as the output file stem.
func NewDatabase(name string) (*Database, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Database{name: name}, nil
}

// Name returns the database name.
func (d *Database) Name() string {
	return d.name
}

// Tables returns the tables in insertion order.
func (d *Database) Tables() []*Table {
	return d.tables
}

// TableNames returns table names in insertion order.
func (d *Database) TableNames() []string {
	names := make([]string, len(d.tables))
	for i, t := range d.tables {
		names[i] = t.Name
	}
	return names
}

// Table looks up a table by exact name.
func (d *Database) Table(name string) (*Table, bool) {
	for _, t := range d.tables {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// AddTable appends t. Table names must be unique within the database.
func (d *Database) AddTable(t *Table) error {
	if t == nil {
		return ErrNilTable
	}
	if _, exists := d.Table(t.Name); exists {
		return &DuplicateTableError{Name: t.Name}
	}
	d.tables = append(d.tables, t)
	return nil
}

// NewTable creates a table with no columns or rows.
func NewTable(name string) *Table {
	return &Table{Name: name}
}

// AddColumn appends c. It fails for duplicate names, unsupported types, and
// once the table holds rows.
func (t *Table) AddColumn(c Column) error {
	if len(t.Rows) > 0 {
		return ErrColumnsFrozen
	}
	if !c.Type.Valid() {
		return &UnknownTypeError{Type: string(c.Type)}
	}
	for _, existing := range t.Columns {
		if existing.Name == c.Name {
			return &DuplicateColumnError{Table: t.Name, Column: c.Name}
		}
	}
	t.Columns = append(t.Columns, c)
	return nil
}

// AddRow appends r. The row must carry exactly one value per column.
func (t *Table) AddRow(r Row) error {
	if len(r.Values) != len(t.Columns) {
		return &RowLengthError{Table: t.Name, Columns: len(t.Columns), Values: len(r.Values)}
	}
	values := make([]string, len(r.Values))
	copy(values, r.Values)
	t.Rows = append(t.Rows, Row{Values: values})
	return nil
}

// ColumnNames returns column names in definition order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// PrimaryKey returns the names of columns flagged as primary key.
func (t *Table) PrimaryKey() []string {
	var keys []string
	for _, c := range t.Columns {
		if c.PrimaryKey {
			keys = append(keys, c.Name)
		}
	}
	return keys
}
