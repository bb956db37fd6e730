package dynsql

// Operator is a comparison operator of a where criterion.
type Operator string

// Comparison operators.
const (
	EQ      Operator = "="
	NE      Operator = "<>"
	GT      Operator = ">"
	GE      Operator = ">="
	LT      Operator = "<"
	LE      Operator = "<="
	Null    Operator = "is null"
	NotNull Operator = "is not null"
)

// binds reports whether the operator takes a bound value.
func (o Operator) binds() bool {
	return o != Null && o != NotNull
}
