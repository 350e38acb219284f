package console

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dbscript/internal/schema"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, PlainStyles())

	p.Banner("dbscript")
	p.Info("plain %d", 1)
	p.Success("saved %s", "shop.sql")
	p.Error("no tables")

	assert.Equal(t, "dbscript\nplain 1\nsaved shop.sql\nno tables\n", buf.String())
	assert.Same(t, &buf, p.Writer())
}

func TestRenderSummary(t *testing.T) {
	db, err := schema.NewDatabase("shop")
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderSummary(&buf, db)
	assert.Equal(t, "Database shop: (0 tables)\n", buf.String())

	people := schema.NewTable("people")
	require.NoError(t, people.AddColumn(schema.Column{Name: "id", Type: schema.TypeInt, PrimaryKey: true}))
	require.NoError(t, people.AddColumn(schema.Column{Name: "name", Type: schema.TypeVarchar}))
	require.NoError(t, people.AddRow(schema.Row{Values: []string{"1", "Alice"}}))
	require.NoError(t, db.AddTable(people))
	require.NoError(t, db.AddTable(schema.NewTable("notes")))

	buf.Reset()
	RenderSummary(&buf, db)
	out := buf.String()

	for _, want := range []string{"Database shop", "people", "id INT, name VARCHAR(255)", "notes", "2 tables"} {
		assert.Contains(t, out, want)
	}
	for _, want := range []string{"Table", "Columns", "Primary key", "Rows"} {
		assert.Contains(t, out, want, "headers keep their case")
	}
	assert.NotContains(t, out, "TABLES")
	assert.True(t, strings.Index(out, "people") < strings.Index(out, "notes"), "tables keep insertion order")
}

func TestPromptModel(t *testing.T) {
	m := newPromptModel("Enter table name: ", PlainStyles())

	for _, r := range "users" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Contains(t, m.View(), "Enter table name: ")
	assert.Equal(t, "users", m.input.Value())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.True(t, m.done)
	assert.Equal(t, "Enter table name: users\n", m.View())
}

func TestPromptModel_Abort(t *testing.T) {
	m := newPromptModel("Name: ", PlainStyles())
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.aborted)
	assert.False(t, m.done)
	assert.Empty(t, m.View())
}
