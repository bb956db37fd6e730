package dynsql

import (
	"fmt"

	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// setPhrase is the rendering of one mapping in a statement with flat
// parameters: the target column and the value side of the phrase.
type setPhrase struct {
	column Column
	value  FragmentAndParameters
}

// visitSetPhrase renders m for an update or general insert. It reports
// false when a conditional mapping is dropped; a dropped mapping consumes
// no parameter name. Errors returned by a condition are passed through
// as they are.
func (ctx *renderContext) visitSetPhrase(m Mapping, row any) (setPhrase, bool, error) {
	if err := render.Check(ctx.kind, m); err != nil {
		return setPhrase{}, false, err
	}
	column := m.TargetColumn()

	switch m := m.(type) {
	case types.ConstantMapping:
		return setPhrase{column, types.Fragment(m.Constant)}, true, nil

	case types.NullMapping:
		return setPhrase{column, types.Fragment("null")}, true, nil

	case types.PropertyMapping:
		value, err := resolveProperty(row, m.Property)
		if err != nil {
			return setPhrase{}, false, fmt.Errorf("column %s: %w", column.Name, err)
		}
		return setPhrase{column, ctx.bind(column, value)}, true, nil

	case types.ConditionalMapping:
		value, err := resolveProperty(row, m.Property)
		if err != nil {
			return setPhrase{}, false, fmt.Errorf("column %s: %w", column.Name, err)
		}
		ok, err := m.Condition(value)
		if err != nil {
			return setPhrase{}, false, err
		}
		if !ok {
			return setPhrase{}, false, nil
		}
		return setPhrase{column, ctx.bind(column, value)}, true, nil

	case types.ValueMapping:
		return setPhrase{column, ctx.bind(column, m.Value)}, true, nil

	case types.SelectMapping:
		nested, err := m.Select.RenderSelect(ctx.strategy, ctx.seq)
		if err != nil {
			return setPhrase{}, false, fmt.Errorf("column %s: failed to render select: %w", column.Name, err)
		}
		return setPhrase{column, nested.WithFragment("(" + nested.Fragment + ")")}, true, nil

	case types.ColumnToColumnMapping:
		return setPhrase{column, types.Fragment(m.Source.QualifiedName())}, true, nil

	case types.RowMapping:
		return setPhrase{column, ctx.bind(column, row)}, true, nil
	}

	return setPhrase{}, false, render.NewIllegalMappingError(render.CodeUnknownMapping, string(ctx.kind), types.MappingKind(m), column.Name)
}

// collectSetPhrases visits every mapping in order, skipping dropped ones.
func (ctx *renderContext) collectSetPhrases(mappings []Mapping, row any) ([]setPhrase, error) {
	phrases := make([]setPhrase, 0, len(mappings))
	for _, m := range mappings {
		phrase, ok, err := ctx.visitSetPhrase(m, row)
		if err != nil {
			return nil, err
		}
		if ok {
			phrases = append(phrases, phrase)
		}
	}
	return phrases, nil
}
