package dynsql

import (
	"fmt"

	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// Criterion is a single comparison in a where clause.
type Criterion struct {
	Column   Column
	Operator Operator
	Value    any
}

// IsEqualTo compares column to a bound value.
func IsEqualTo(column Column, value any) Criterion {
	return Criterion{Column: column, Operator: EQ, Value: value}
}

// IsNotEqualTo compares column to a bound value.
func IsNotEqualTo(column Column, value any) Criterion {
	return Criterion{Column: column, Operator: NE, Value: value}
}

// IsGreaterThan compares column to a bound value.
func IsGreaterThan(column Column, value any) Criterion {
	return Criterion{Column: column, Operator: GT, Value: value}
}

// IsGreaterThanOrEqualTo compares column to a bound value.
func IsGreaterThanOrEqualTo(column Column, value any) Criterion {
	return Criterion{Column: column, Operator: GE, Value: value}
}

// IsLessThan compares column to a bound value.
func IsLessThan(column Column, value any) Criterion {
	return Criterion{Column: column, Operator: LT, Value: value}
}

// IsLessThanOrEqualTo compares column to a bound value.
func IsLessThanOrEqualTo(column Column, value any) Criterion {
	return Criterion{Column: column, Operator: LE, Value: value}
}

// IsNull matches rows where column is null.
func IsNull(column Column) Criterion {
	return Criterion{Column: column, Operator: Null}
}

// IsNotNull matches rows where column is not null.
func IsNotNull(column Column) Criterion {
	return Criterion{Column: column, Operator: NotNull}
}

// WhereClause is an AND-joined list of criteria.
type WhereClause struct {
	criteria []Criterion
}

// Where creates a where clause. A clause with no criteria renders nothing.
func Where(criteria ...Criterion) WhereClause {
	c := make([]Criterion, len(criteria))
	copy(c, criteria)
	return WhereClause{criteria: c}
}

// And returns a copy of the clause with more criteria appended.
func (w WhereClause) And(criteria ...Criterion) WhereClause {
	c := make([]Criterion, 0, len(w.criteria)+len(criteria))
	c = append(c, w.criteria...)
	c = append(c, criteria...)
	return WhereClause{criteria: c}
}

// Criteria returns the clause's criteria in order.
func (w WhereClause) Criteria() []Criterion {
	c := make([]Criterion, len(w.criteria))
	copy(c, w.criteria)
	return c
}

// RenderWhere renders "where a = ? and b is null". Bound values draw their
// names from seq, so a where clause shares numbering with the statement
// that owns it.
func (w WhereClause) RenderWhere(strategy Strategy, seq *Sequence) (FragmentAndParameters, error) {
	if len(w.criteria) == 0 {
		return FragmentAndParameters{}, nil
	}

	c := render.NewCollector("where")
	for _, criterion := range w.criteria {
		fp, err := renderCriterion(criterion, strategy, seq)
		if err != nil {
			return FragmentAndParameters{}, err
		}
		if err := c.Add(fp); err != nil {
			return FragmentAndParameters{}, err
		}
	}
	return FragmentAndParameters{
		Fragment:   c.Join("where ", " and "),
		Parameters: c.Parameters(),
	}, nil
}

func renderCriterion(criterion Criterion, strategy Strategy, seq *Sequence) (FragmentAndParameters, error) {
	if criterion.Column.Name == "" {
		return FragmentAndParameters{}, fmt.Errorf("where criterion has no column")
	}
	switch criterion.Operator {
	case EQ, NE, GT, GE, LT, LE, Null, NotNull:
	default:
		return FragmentAndParameters{}, fmt.Errorf("unsupported operator: %q", criterion.Operator)
	}

	lhs := criterion.Column.QualifiedName() + " " + string(criterion.Operator)
	if !criterion.Operator.binds() {
		return types.Fragment(lhs), nil
	}

	name := strategy.NextParameterName(seq)
	placeholder := strategy.PlaceholderForColumn(criterion.Column, DefaultParameterPrefix, name)
	return types.FragmentWith(lhs+" "+placeholder, name, criterion.Value), nil
}

var _ WhereModel = WhereClause{}
