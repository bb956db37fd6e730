package dynsql

import (
	"fmt"

	"github.com/zoobzio/dynsql/internal/types"
)

// MappingBuilder starts a mapping for one target column.
type MappingBuilder struct {
	column Column
}

// Map begins a mapping targeting column.
func Map(column Column) MappingBuilder {
	return MappingBuilder{column: column}
}

// ToConstant maps the column to a literal rendered verbatim into the
// statement. The constant must come from trusted code, never from input.
func (b MappingBuilder) ToConstant(constant string) Mapping {
	return types.ConstantMapping{Column: b.column, Constant: constant}
}

// ToProperty maps the column to a property of the statement's row.
func (b MappingBuilder) ToProperty(property string) Mapping {
	mustProperty(property)
	return types.PropertyMapping{Column: b.column, Property: property}
}

// ToPropertyWhen maps the column to a property of the row, dropping the
// mapping when condition reports false for the property's value.
func (b MappingBuilder) ToPropertyWhen(property string, condition Condition) Mapping {
	mustProperty(property)
	if condition == nil {
		panic(fmt.Errorf("conditional mapping for column %s requires a condition", b.column.Name))
	}
	return types.ConditionalMapping{Column: b.column, Property: property, Condition: condition}
}

// ToPropertyWhenPresent maps the column to a property of the row when the
// property value is not nil.
func (b MappingBuilder) ToPropertyWhenPresent(property string) Mapping {
	return b.ToPropertyWhen(property, IsPresent)
}

// ToValue binds value to the column.
func (b MappingBuilder) ToValue(value any) Mapping {
	return types.ValueMapping{Column: b.column, Value: value}
}

// ToNull sets the column to null.
func (b MappingBuilder) ToNull() Mapping {
	return types.NullMapping{Column: b.column}
}

// ToColumn sets the column from another column.
func (b MappingBuilder) ToColumn(source Column) Mapping {
	return types.ColumnToColumnMapping{Column: b.column, Source: source}
}

// ToSelect sets the column from a nested select.
func (b MappingBuilder) ToSelect(sel SelectModel) Mapping {
	if sel == nil {
		panic(fmt.Errorf("select mapping for column %s requires a select", b.column.Name))
	}
	return types.SelectMapping{Column: b.column, Select: sel}
}

// ToRow binds the entire row to the column.
func (b MappingBuilder) ToRow() Mapping {
	return types.RowMapping{Column: b.column}
}

func mustProperty(property string) {
	if !isValidPropertyPath(property) {
		panic(fmt.Errorf("invalid property path: %q", property))
	}
}

// checkMappings enforces one mapping per target column.
func checkMappings(mappings []Mapping) error {
	seen := make(map[string]bool, len(mappings))
	for i, m := range mappings {
		if m == nil {
			return fmt.Errorf("mapping %d is nil", i)
		}
		name := m.TargetColumn().Name
		if name == "" {
			return fmt.Errorf("mapping %d has no target column", i)
		}
		if seen[name] {
			return fmt.Errorf("column %s is mapped more than once", name)
		}
		seen[name] = true
	}
	return nil
}

func copyMappings(mappings []Mapping) []Mapping {
	out := make([]Mapping, len(mappings))
	copy(out, mappings)
	return out
}
