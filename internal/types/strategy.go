package types

// Strategy formats the placeholders embedded in rendered SQL for a target
// execution framework. Implementations are stateless apart from the
// Sequence handed to NextParameterName, so one instance may be shared by
// concurrent renders.
type Strategy interface {
	// PlaceholderForColumn renders a binding for a parameter targeting a
	// known column. Type-aware strategies encode the column's type metadata.
	PlaceholderForColumn(column Column, prefix, parameterName string) string

	// PlaceholderForValue renders a binding with no column context, such
	// as a limit or offset value.
	PlaceholderForValue(prefix, parameterName string) string

	// PlaceholderForRowInsert renders a binding for a property of a row
	// object. The prefix is a row locator ("row", "records[2]") rather
	// than a parameter map.
	PlaceholderForRowInsert(column Column, prefix, parameterName string) string

	// PlaceholderForWholeRow renders a binding for the row object itself.
	PlaceholderForWholeRow(column Column, locator string) string

	// NextParameterName draws the next generated name from seq.
	NextParameterName(seq *Sequence) string
}

// ArgumentBinder is implemented by strategies whose placeholders can be bound
// through database/sql. Args converts rendered parameters to driver arguments
// in placeholder order.
type ArgumentBinder interface {
	Args(params Parameters) []any
}

// SelectModel renders a nested select. The sequence is the one owned by the
// enclosing render.
type SelectModel interface {
	RenderSelect(strategy Strategy, seq *Sequence) (FragmentAndParameters, error)
}

// WhereModel renders a where clause, including the leading keyword.
type WhereModel interface {
	RenderWhere(strategy Strategy, seq *Sequence) (FragmentAndParameters, error)
}
