package types

// Condition decides at render time whether a conditional mapping takes
// part in the statement. It receives the resolved property value and is
// called exactly once per mapping per render.
type Condition func(value any) (bool, error)

// Mapping associates a target column with the source of its value.
// The set of implementations is closed; renderers switch over it
// exhaustively.
type Mapping interface {
	TargetColumn() Column
	isMapping()
}

// ConstantMapping renders a caller-trusted literal verbatim.
type ConstantMapping struct {
	Column   Column
	Constant string
}

// PropertyMapping binds a property of the statement's row.
type PropertyMapping struct {
	Column   Column
	Property string
}

// ConditionalMapping binds a property of the statement's row when its
// condition holds and is dropped entirely otherwise.
type ConditionalMapping struct {
	Column    Column
	Property  string
	Condition Condition
}

// ValueMapping binds a runtime value directly.
type ValueMapping struct {
	Column Column
	Value  any
}

// NullMapping sets the column to null.
type NullMapping struct {
	Column Column
}

// SelectMapping sets the column from a nested select.
type SelectMapping struct {
	Column Column
	Select SelectModel
}

// ColumnToColumnMapping sets the column from another column.
type ColumnToColumnMapping struct {
	Column Column
	Source Column
}

// RowMapping binds the entire row as a single value.
type RowMapping struct {
	Column Column
}

func (m ConstantMapping) TargetColumn() Column       { return m.Column }
func (m PropertyMapping) TargetColumn() Column       { return m.Column }
func (m ConditionalMapping) TargetColumn() Column    { return m.Column }
func (m ValueMapping) TargetColumn() Column          { return m.Column }
func (m NullMapping) TargetColumn() Column           { return m.Column }
func (m SelectMapping) TargetColumn() Column         { return m.Column }
func (m ColumnToColumnMapping) TargetColumn() Column { return m.Column }
func (m RowMapping) TargetColumn() Column            { return m.Column }

func (ConstantMapping) isMapping()       {}
func (PropertyMapping) isMapping()       {}
func (ConditionalMapping) isMapping()    {}
func (ValueMapping) isMapping()          {}
func (NullMapping) isMapping()           {}
func (SelectMapping) isMapping()         {}
func (ColumnToColumnMapping) isMapping() {}
func (RowMapping) isMapping()            {}

// MappingKind names a mapping variant for diagnostics.
func MappingKind(m Mapping) string {
	switch m.(type) {
	case ConstantMapping:
		return "constant"
	case PropertyMapping:
		return "property"
	case ConditionalMapping:
		return "conditional property"
	case ValueMapping:
		return "value"
	case NullMapping:
		return "null"
	case SelectMapping:
		return "select"
	case ColumnToColumnMapping:
		return "column to column"
	case RowMapping:
		return "row"
	default:
		return "unknown"
	}
}
