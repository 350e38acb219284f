package emit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/leapstack-labs/dbscript/internal/schema"
)

// buildDatabase creates a database with one table per name, each with a
// single TEXT column and the given number of rows.
func buildDatabase(names []string, rows int) (*schema.Database, error) {
	db, err := schema.NewDatabase("prop")
	if err != nil {
		return nil, err
	}
	for i, name := range names {
		// Suffix keeps generated names unique.
		table := schema.NewTable(fmt.Sprintf("%s_%d", name, i))
		if err := table.AddColumn(schema.Column{Name: "v", Type: schema.TypeText}); err != nil {
			return nil, err
		}
		for r := 0; r < rows; r++ {
			if err := table.AddRow(schema.Row{Values: []string{name}}); err != nil {
				return nil, err
			}
		}
		if err := db.AddTable(table); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func TestProperty_Script(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("emitting twice yields identical output", prop.ForAll(
		func(names []string, rows int) bool {
			db, err := buildDatabase(names, rows)
			if err != nil {
				return false
			}
			return Script(db) == Script(db)
		},
		gen.SliceOf(gen.AnyString()),
		gen.IntRange(0, 5),
	))

	properties.Property("one CREATE TABLE per table in insertion order", prop.ForAll(
		func(names []string) bool {
			db, err := buildDatabase(names, 0)
			if err != nil {
				return false
			}
			script := Script(db)
			if strings.Count(script, "CREATE TABLE ") != len(names) {
				return false
			}
			last := -1
			for _, table := range db.Tables() {
				pos := strings.Index(script, "CREATE TABLE "+QuoteIdent(table.Name)+" (")
				if pos <= last {
					return false
				}
				last = pos
			}
			return true
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.Property("one INSERT line per row", prop.ForAll(
		func(names []string, rows int) bool {
			db, err := buildDatabase(names, rows)
			if err != nil {
				return false
			}
			count := 0
			for _, line := range strings.Split(Script(db), "\n") {
				if strings.HasPrefix(line, "INSERT INTO ") {
					count++
				}
			}
			return count == len(names)*rows
		},
		gen.SliceOf(gen.Identifier()),
		gen.IntRange(0, 5),
	))

	properties.Property("quoted values never leave an odd quote run", prop.ForAll(
		func(v string) bool {
			inner := strings.TrimSuffix(strings.TrimPrefix(QuoteValue(v), "'"), "'")
			return !strings.Contains(strings.ReplaceAll(inner, "''", ""), "'")
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
