package dynsql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// rowLocator addresses the row of single-record and batch inserts.
const rowLocator = "row"

// recordLocator addresses the i-th record of a multi-row insert.
func recordLocator(i int) string {
	return fmt.Sprintf("records[%d]", i)
}

// visitRecordValue renders m as a value of a record-based insert. Property
// placeholders address the record through locator and produce no
// parameters; the record itself is the binding source. It reports false
// when a conditional mapping is dropped.
func (ctx *renderContext) visitRecordValue(m Mapping, locator string, record any) (string, bool, error) {
	if err := render.Check(ctx.kind, m); err != nil {
		return "", false, err
	}
	column := m.TargetColumn()

	switch m := m.(type) {
	case types.ConstantMapping:
		return m.Constant, true, nil

	case types.NullMapping:
		return "null", true, nil

	case types.PropertyMapping:
		return ctx.strategy.PlaceholderForRowInsert(column, locator, m.Property), true, nil

	case types.ConditionalMapping:
		value, err := resolveProperty(record, m.Property)
		if err != nil {
			return "", false, fmt.Errorf("column %s: %w", column.Name, err)
		}
		ok, err := m.Condition(value)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return "", false, nil
		}
		return ctx.strategy.PlaceholderForRowInsert(column, locator, m.Property), true, nil

	case types.RowMapping:
		return ctx.strategy.PlaceholderForWholeRow(column, locator), true, nil
	}

	return "", false, render.NewIllegalMappingError(render.CodeUnknownMapping, string(ctx.kind), types.MappingKind(m), column.Name)
}

// recordValues renders the column list and the values group of one record.
func (ctx *renderContext) recordValues(mappings []Mapping, locator string, record any) ([]string, string, error) {
	columns := make([]string, 0, len(mappings))
	values := make([]string, 0, len(mappings))
	for _, m := range mappings {
		value, ok, err := ctx.visitRecordValue(m, locator, record)
		if err != nil {
			return nil, "", err
		}
		if !ok {
			continue
		}
		columns = append(columns, m.TargetColumn().Name)
		values = append(values, value)
	}
	return columns, "(" + strings.Join(values, ", ") + ")", nil
}
