// Package positional provides the ? binding strategy for dynsql.
//
// Every placeholder is a bare ?. Values are bound in the order of the
// rendered parameter mapping, which is the order the placeholders appear in
// the statement text.
package positional

import "github.com/zoobzio/dynsql/internal/types"

const placeholder = "?"

// Strategy implements the positional binding strategy.
type Strategy struct{}

// New creates a new positional strategy.
func New() *Strategy {
	return &Strategy{}
}

// PlaceholderForColumn renders ?.
func (*Strategy) PlaceholderForColumn(types.Column, string, string) string {
	return placeholder
}

// PlaceholderForValue renders ?.
func (*Strategy) PlaceholderForValue(string, string) string {
	return placeholder
}

// PlaceholderForRowInsert renders ?.
func (*Strategy) PlaceholderForRowInsert(types.Column, string, string) string {
	return placeholder
}

// PlaceholderForWholeRow renders ?.
func (*Strategy) PlaceholderForWholeRow(types.Column, string) string {
	return placeholder
}

// NextParameterName returns the next generated name. Names never appear in
// the text but still key the parameter mapping.
func (*Strategy) NextParameterName(seq *types.Sequence) string {
	return types.FormatParameterName(seq)
}

// Args returns the bound values in placeholder order.
func (*Strategy) Args(params types.Parameters) []any {
	return params.Values()
}

var (
	_ types.Strategy       = (*Strategy)(nil)
	_ types.ArgumentBinder = (*Strategy)(nil)
)
