// Package spring provides the Spring named-parameter binding strategy for dynsql.
//
// Placeholders are flat named markers. Prefixes and type metadata are ignored,
// except in record-based inserts where the row locator is part of the path:
//
//	:p1
//	:row.id2
//	:records[0]
package spring

import (
	"database/sql"

	"github.com/zoobzio/dynsql/internal/types"
)

// Strategy implements the Spring named-parameter binding strategy.
type Strategy struct{}

// New creates a new Spring strategy.
func New() *Strategy {
	return &Strategy{}
}

// PlaceholderForColumn renders :name.
func (*Strategy) PlaceholderForColumn(_ types.Column, _, parameterName string) string {
	return ":" + parameterName
}

// PlaceholderForValue renders :name.
func (*Strategy) PlaceholderForValue(_, parameterName string) string {
	return ":" + parameterName
}

// PlaceholderForRowInsert renders :prefix.name.
func (*Strategy) PlaceholderForRowInsert(_ types.Column, prefix, parameterName string) string {
	return ":" + prefix + "." + parameterName
}

// PlaceholderForWholeRow renders :locator.
func (*Strategy) PlaceholderForWholeRow(_ types.Column, locator string) string {
	return ":" + locator
}

// NextParameterName returns the next generated name.
func (*Strategy) NextParameterName(seq *types.Sequence) string {
	return types.FormatParameterName(seq)
}

// Args binds each parameter by name.
func (*Strategy) Args(params types.Parameters) []any {
	args := make([]any, 0, params.Len())
	for _, p := range params.All() {
		args = append(args, sql.Named(p.Name, p.Value))
	}
	return args
}

var (
	_ types.Strategy       = (*Strategy)(nil)
	_ types.ArgumentBinder = (*Strategy)(nil)
)
