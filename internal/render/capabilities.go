package render

import "github.com/zoobzio/dynsql/internal/types"

// StatementKind identifies the statement a mapping is rendered into.
type StatementKind string

const (
	KindUpdate         StatementKind = "update"
	KindGeneralInsert  StatementKind = "general insert"
	KindInsert         StatementKind = "insert"
	KindBatchInsert    StatementKind = "batch insert"
	KindMultiRowInsert StatementKind = "multi-row insert"
)

// Capabilities describes the mapping variants a statement kind accepts.
// Constant, null and property mappings are accepted everywhere.
type Capabilities struct {
	Conditional    bool
	Value          bool
	Select         bool
	ColumnToColumn bool
	Row            bool
}

var capabilities = map[StatementKind]Capabilities{
	KindUpdate: {
		Conditional: true, Value: true,
		Select: true, ColumnToColumn: true, Row: true,
	},
	KindGeneralInsert: {
		Conditional: true, Value: true,
		Select: true, ColumnToColumn: true,
	},
	KindInsert: {
		Conditional: true, Row: true,
	},
	KindBatchInsert: {
		Row: true,
	},
	KindMultiRowInsert: {
		Row: true,
	},
}

// CapabilitiesFor returns the capabilities of a statement kind.
func CapabilitiesFor(kind StatementKind) Capabilities {
	return capabilities[kind]
}

// Check returns an InternalError when m may not appear in a statement of
// the given kind.
func Check(kind StatementKind, m types.Mapping) error {
	c := CapabilitiesFor(kind)
	column := m.TargetColumn().Name
	illegal := func(code int) error {
		return NewIllegalMappingError(code, string(kind), types.MappingKind(m), column)
	}

	switch m.(type) {
	case types.ConstantMapping, types.NullMapping, types.PropertyMapping:
		return nil
	case types.ConditionalMapping:
		if !c.Conditional {
			return illegal(CodeConditionalInRecordInsert)
		}
	case types.ValueMapping:
		if !c.Value {
			return illegal(CodeValueInRecordInsert)
		}
	case types.SelectMapping:
		if !c.Select {
			return illegal(CodeSelectInRecordInsert)
		}
	case types.ColumnToColumnMapping:
		if !c.ColumnToColumn {
			return illegal(CodeColumnInRecordInsert)
		}
	case types.RowMapping:
		if !c.Row {
			return illegal(CodeRowInGeneralInsert)
		}
	default:
		return illegal(CodeUnknownMapping)
	}
	return nil
}
