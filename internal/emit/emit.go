// Package emit serializes a schema.Database into a SQL script.
//
// The script layout is fixed:
//
//	CREATE DATABASE `shop`;
//	USE `shop`;
//
//	CREATE TABLE `t` (
//	  `id` INT PRIMARY KEY,
//	  `name` VARCHAR(255)
//	);
//
//	INSERT INTO `t` (`id`, `name`) VALUES ('1', 'Alice');
//
// Identifiers are backtick-quoted and string values single-quoted. Output is
// deterministic for an unchanged database.
package emit

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/dbscript/internal/schema"
)

// Kind classifies an emitted statement.
type Kind int

// Statement kinds in script order.
const (
	KindCreateDatabase Kind = iota
	KindUse
	KindCreateTable
	KindInsert
)

func (k Kind) String() string {
	switch k {
	case KindCreateDatabase:
		return "create database"
	case KindUse:
		return "use"
	case KindCreateTable:
		return "create table"
	case KindInsert:
		return "insert"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Statement is a single SQL statement, terminated by a semicolon.
type Statement struct {
	Kind  Kind
	Table string
	SQL   string
}

// QuoteIdent wraps name in backticks, doubling any embedded backtick.
func QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

var valueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`)

// QuoteValue wraps v in single quotes, doubling embedded quotes and backslashes.
func QuoteValue(v string) string {
	return "'" + valueEscaper.Replace(v) + "'"
}

// CreateDatabase returns the CREATE DATABASE statement.
func CreateDatabase(name string) string {
	return "CREATE DATABASE " + QuoteIdent(name) + ";"
}

// Use returns the USE statement.
func Use(name string) string {
	return "USE " + QuoteIdent(name) + ";"
}

// CreateTable returns the multi-line CREATE TABLE statement for t.
func CreateTable(t *schema.Table) string {
	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		def := "  " + QuoteIdent(c.Name) + " " + string(c.Type)
		if c.PrimaryKey {
			def += " PRIMARY KEY"
		}
		defs[i] = def
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(QuoteIdent(t.Name))
	b.WriteString(" (\n")
	b.WriteString(strings.Join(defs, ",\n"))
	b.WriteString("\n);")
	return b.String()
}

// Insert returns the single-line INSERT statement for row r of t.
func Insert(t *schema.Table, r schema.Row) string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = QuoteIdent(c.Name)
	}
	vals := make([]string, len(r.Values))
	for i, v := range r.Values {
		vals[i] = QuoteValue(v)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		QuoteIdent(t.Name), strings.Join(cols, ", "), strings.Join(vals, ", "))
}

// Statements returns every statement of the script in order.
func Statements(db *schema.Database) []Statement {
	stmts := []Statement{
		{Kind: KindCreateDatabase, SQL: CreateDatabase(db.Name())},
		{Kind: KindUse, SQL: Use(db.Name())},
	}
	for _, t := range db.Tables() {
		stmts = append(stmts, Statement{Kind: KindCreateTable, Table: t.Name, SQL: CreateTable(t)})
		for _, r := range t.Rows {
			stmts = append(stmts, Statement{Kind: KindInsert, Table: t.Name, SQL: Insert(t, r)})
		}
	}
	return stmts
}

// Write writes the full script for db to w.
func Write(w io.Writer, db *schema.Database) error {
	bw := bufio.NewWriter(w)
	for _, s := range Statements(db) {
		if _, err := bw.WriteString(s.SQL + "\n"); err != nil {
			return err
		}
		// The header and every CREATE TABLE are followed by a blank line.
		if s.Kind == KindUse || s.Kind == KindCreateTable {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Script returns the full script for db as a string.
func Script(db *schema.Database) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = Write(&b, db)
	return b.String()
}
