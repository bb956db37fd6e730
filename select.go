package dynsql

import (
	"strings"

	"github.com/zoobzio/dynsql/internal/render"
)

// SelectStatement is a minimal select used as the source of a select
// mapping.
type SelectStatement struct {
	columns []Column
	table   Table
	where   WhereModel
}

// Select starts a select of the given columns.
func Select(columns ...Column) SelectStatement {
	c := make([]Column, len(columns))
	copy(c, columns)
	return SelectStatement{columns: c}
}

// From returns a copy selecting from table.
func (s SelectStatement) From(table Table) SelectStatement {
	s.table = table
	return s
}

// Where returns a copy filtered by where.
func (s SelectStatement) Where(where WhereModel) SelectStatement {
	s.where = where
	return s
}

// RenderSelect renders "select c1, c2 from t[ where ...]" drawing parameter
// names from the enclosing statement's sequence.
func (s SelectStatement) RenderSelect(strategy Strategy, seq *Sequence) (FragmentAndParameters, error) {
	if len(s.columns) == 0 {
		return FragmentAndParameters{}, render.NewInvalidSQLError("select has no columns")
	}
	if s.table.Name == "" {
		return FragmentAndParameters{}, render.NewInvalidSQLError("select has no table")
	}

	names := make([]string, len(s.columns))
	for i, col := range s.columns {
		names[i] = col.QualifiedName()
	}

	var sb strings.Builder
	sb.WriteString("select ")
	sb.WriteString(strings.Join(names, ", "))
	sb.WriteString(" from ")
	sb.WriteString(s.table.Reference())

	c := render.NewCollector("select")
	if err := appendWhere(&sb, c, s.where, strategy, seq); err != nil {
		return FragmentAndParameters{}, err
	}
	return FragmentAndParameters{Fragment: sb.String(), Parameters: c.Parameters()}, nil
}

var _ SelectModel = SelectStatement{}
