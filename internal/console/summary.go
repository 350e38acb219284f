package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/leapstack-labs/dbscript/internal/schema"
)

// RenderSummary prints one line per table: its columns, primary key and row count.
func RenderSummary(w io.Writer, db *schema.Database) {
	tables := db.Tables()
	if len(tables) == 0 {
		_, _ = fmt.Fprintf(w, "Database %s: (0 tables)\n", db.Name())
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetTitle("Database " + db.Name())
	t.AppendHeader(table.Row{"Table", "Columns", "Primary key", "Rows"})

	totalRows := 0
	for _, tbl := range tables {
		cols := make([]string, len(tbl.Columns))
		for i, c := range tbl.Columns {
			cols[i] = c.Name + " " + string(c.Type)
		}
		pk := strings.Join(tbl.PrimaryKey(), ", ")
		if pk == "" {
			pk = "-"
		}
		t.AppendRow(table.Row{tbl.Name, strings.Join(cols, ", "), pk, len(tbl.Rows)})
		totalRows += len(tbl.Rows)
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d tables", len(tables)), "", "", totalRows})
	t.Render()
}
