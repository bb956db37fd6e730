// Package named provides an @-prefixed named-parameter binding strategy for
// dynsql. The markers are understood by pgx.NamedArgs and by SQL Server
// drivers accepting sql.Named arguments.
package named

import (
	"database/sql"

	"github.com/zoobzio/dynsql/internal/types"
)

// Strategy implements the @name binding strategy.
type Strategy struct{}

// New creates a new @name strategy.
func New() *Strategy {
	return &Strategy{}
}

// PlaceholderForColumn renders @name.
func (*Strategy) PlaceholderForColumn(_ types.Column, _, parameterName string) string {
	return "@" + parameterName
}

// PlaceholderForValue renders @name.
func (*Strategy) PlaceholderForValue(_, parameterName string) string {
	return "@" + parameterName
}

// PlaceholderForRowInsert renders @prefix.name.
func (*Strategy) PlaceholderForRowInsert(_ types.Column, prefix, parameterName string) string {
	return "@" + prefix + "." + parameterName
}

// PlaceholderForWholeRow renders @locator.
func (*Strategy) PlaceholderForWholeRow(_ types.Column, locator string) string {
	return "@" + locator
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

// NamedArgs returns the parameters as a plain map, the shape pgx.NamedArgs
// converts from.
func (*Strategy) NamedArgs(params types.Parameters) map[string]any {
	return params.Map()
}

var (
	_ types.Strategy       = (*Strategy)(nil)
	_ types.ArgumentBinder = (*Strategy)(nil)
)
