package components

import (
	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/tag"
)

// Table accumulates rows under a fixed set of columns and renders them as a
// <table> with a header row. It implements tag.Renderable and can be used as
// a child of any element.
type Table struct {
	columns []string
	rows    [][]string
}

// NewTable creates a table with the given columns.
func NewTable(columns ...string) *Table {
	return &Table{columns: append([]string(nil), columns...)}
}

// Columns returns the column names.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// SetColumns replaces the columns. It fails with ErrValidation once rows
// have been added; call ClearRows first.
func (t *Table) SetColumns(columns ...string) error {
	if len(t.rows) > 0 {
		return errors.New("T008").
			WithDetailf("%d rows present", len(t.rows)).
			WithSuggestion("Call ClearRows before changing columns")
	}
	t.columns = append([]string(nil), columns...)
	return nil
}

// AddRow appends a row. Short rows are padded with empty cells; cells
// beyond the last column are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// AddRows appends several rows.
func (t *Table) AddRows(rows ...[]string) {
	for _, r := range rows {
		t.AddRow(r...)
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// ClearRows removes all rows.
func (t *Table) ClearRows() {
	t.rows = nil
}

// Node builds the table element.
func (t *Table) Node() *tag.Node {
	header := tag.Tr(tag.Range(t.columns, func(c string, _ int) *tag.Node {
		return tag.Th(c)
	}))
	body := tag.Tbody(tag.Range(t.rows, func(row []string, _ int) *tag.Node {
		return tag.Tr(tag.Range(row, func(cell string, _ int) *tag.Node {
			return tag.Td(cell)
		}))
	}))
	return tag.Table(tag.Thead(header), body)
}

// Render renders the table element.
func (t *Table) Render() (string, error) {
	return t.Node().Render()
}
