package emit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dbscript/internal/schema"
)

// peopleTable builds the two-column table used across these tests.
func peopleTable(t *testing.T, name string, rows ...[]string) *schema.Table {
	t.Helper()
	table := schema.NewTable(name)
	require.NoError(t, table.AddColumn(schema.Column{Name: "id", Type: schema.TypeInt, PrimaryKey: true}))
	require.NoError(t, table.AddColumn(schema.Column{Name: "name", Type: schema.TypeVarchar}))
	for _, r := range rows {
		require.NoError(t, table.AddRow(schema.Row{Values: r}))
	}
	return table
}

func newDB(t *testing.T, name string, tables ...*schema.Table) *schema.Database {
	t.Helper()
	db, err := schema.NewDatabase(name)
	require.NoError(t, err)
	for _, table := range tables {
		require.NoError(t, db.AddTable(table))
	}
	return db
}

func TestCreateTable(t *testing.T) {
	want := "CREATE TABLE `t` (\n" +
		"  `id` INT PRIMARY KEY,\n" +
		"  `name` VARCHAR(255)\n" +
		");"
	assert.Equal(t, want, CreateTable(peopleTable(t, "t")))
}

func TestCreateTable_NoColumns(t *testing.T) {
	assert.Equal(t, "CREATE TABLE `empty` (\n\n);", CreateTable(schema.NewTable("empty")))
}

func TestInsert(t *testing.T) {
	table := peopleTable(t, "t", []string{"1", "Alice"})
	assert.Equal(t,
		"INSERT INTO `t` (`id`, `name`) VALUES ('1', 'Alice');",
		Insert(table, table.Rows[0]))
}

func TestQuoting(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{name: "plain identifier", fn: QuoteIdent, in: "users", want: "`users`"},
		{name: "identifier with backtick", fn: QuoteIdent, in: "we`ird", want: "`we``ird`"},
		{name: "empty identifier", fn: QuoteIdent, in: "", want: "``"},
		{name: "plain value", fn: QuoteValue, in: "Alice", want: "'Alice'"},
		{name: "empty value", fn: QuoteValue, in: "", want: "''"},
		{name: "value with quote", fn: QuoteValue, in: "O'Brien", want: "'O''Brien'"},
		{name: "value with backslash", fn: QuoteValue, in: `C:\tmp`, want: `'C:\\tmp'`},
		{name: "injection attempt", fn: QuoteValue, in: "x'); DROP TABLE t; --", want: "'x''); DROP TABLE t; --'"},
		{name: "unicode value", fn: QuoteValue, in: "Привет", want: "'Привет'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestScript_NoTables(t *testing.T) {
	db := newDB(t, "shop")
	assert.Equal(t, "CREATE DATABASE `shop`;\nUSE `shop`;\n\n", Script(db))
}

func TestScript_Full(t *testing.T) {
	orders := schema.NewTable("orders")
	require.NoError(t, orders.AddColumn(schema.Column{Name: "placed", Type: schema.TypeDate}))
	require.NoError(t, orders.AddColumn(schema.Column{Name: "total", Type: schema.TypeFloat}))
	require.NoError(t, orders.AddRow(schema.Row{Values: []string{"2024-01-02", "9.5"}}))

	db := newDB(t, "shop",
		peopleTable(t, "people", []string{"1", "Alice"}, []string{"2", "Bob"}),
		orders,
	)

	want := strings.Join([]string{
		"CREATE DATABASE `shop`;",
		"USE `shop`;",
		"",
		"CREATE TABLE `people` (",
		"  `id` INT PRIMARY KEY,",
		"  `name` VARCHAR(255)",
		");",
		"",
		"INSERT INTO `people` (`id`, `name`) VALUES ('1', 'Alice');",
		"INSERT INTO `people` (`id`, `name`) VALUES ('2', 'Bob');",
		"CREATE TABLE `orders` (",
		"  `placed` DATE,",
		"  `total` FLOAT",
		");",
		"",
		"INSERT INTO `orders` (`placed`, `total`) VALUES ('2024-01-02', '9.5');",
		"",
	}, "\n")

	assert.Equal(t, want, Script(db))
}

func TestStatements(t *testing.T) {
	db := newDB(t, "shop",
		peopleTable(t, "a", []string{"1", "x"}),
		peopleTable(t, "b"),
	)

	stmts := Statements(db)
	kinds := make([]Kind, len(stmts))
	tables := make([]string, len(stmts))
	for i, s := range stmts {
		kinds[i] = s.Kind
		tables[i] = s.Table
	}

	assert.Equal(t, []Kind{KindCreateDatabase, KindUse, KindCreateTable, KindInsert, KindCreateTable}, kinds)
	assert.Equal(t, []string{"", "", "a", "a", "b"}, tables)
	for _, s := range stmts {
		assert.True(t, strings.HasSuffix(s.SQL, ";"), "statement %q must end with a semicolon", s.SQL)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "create table", KindCreateTable.String())
	assert.Equal(t, "insert", KindInsert.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestScript_Idempotent(t *testing.T) {
	db := newDB(t, "shop", peopleTable(t, "t", []string{"1", "Alice"}))
	assert.Equal(t, Script(db), Script(db))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_PropagatesErrors(t *testing.T) {
	db := newDB(t, "shop")
	err := Write(failingWriter{}, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	db := newDB(t, "shop", peopleTable(t, "t", []string{"1", "Alice"}))

	path, err := WriteFile(dir, db)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shop.sql"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Script(db), string(content))

	// A second save overwrites with identical bytes.
	_, err = WriteFile(dir, db)
	require.NoError(t, err)
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, again)
}

func TestWriteFile_MissingDir(t *testing.T) {
	db := newDB(t, "shop")
	_, err := WriteFile(filepath.Join(t.TempDir(), "missing"), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create")
}
