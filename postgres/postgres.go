// Package postgres provides the PostgreSQL numbered binding strategy for
// dynsql.
//
// Generated parameters render as $1, $2, ... where the ordinal is the
// parameter's sequence number:
//
//	update foo set id2 = $1 where id1 = $2
//
// Record inserts address properties of the record rather than numbered
// arguments and render in the sqlx named form (:row.id2, :records[0]).
package postgres

import (
	"strconv"
	"strings"

	"github.com/zoobzio/dynsql/internal/types"
)

// Strategy implements the PostgreSQL binding strategy.
type Strategy struct{}

// New creates a new PostgreSQL strategy.
func New() *Strategy {
	return &Strategy{}
}

// PlaceholderForColumn renders $n.
func (*Strategy) PlaceholderForColumn(_ types.Column, _, parameterName string) string {
	return numbered(parameterName)
}

// PlaceholderForValue renders $n.
func (*Strategy) PlaceholderForValue(_, parameterName string) string {
	return numbered(parameterName)
}

// PlaceholderForRowInsert renders :locator.name.
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

// Args returns the bound values indexed by ordinal, so $n receives the
// value of the n-th generated parameter. Parameters whose names carry no
// ordinal are bound in mapping order.
func (*Strategy) Args(params types.Parameters) []any {
	args := make([]any, params.Len())
	for _, p := range params.All() {
		n, ok := ordinal(p.Name)
		if !ok || n > len(args) {
			return params.Values()
		}
		args[n-1] = p.Value
	}
	return args
}

func numbered(parameterName string) string {
	if n, ok := ordinal(parameterName); ok {
		return "$" + strconv.Itoa(n)
	}
	return ":" + parameterName
}

// ordinal extracts n from a generated name "p<n>".
func ordinal(parameterName string) (int, bool) {
	digits, ok := strings.CutPrefix(parameterName, "p")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

var (
	_ types.Strategy       = (*Strategy)(nil)
	_ types.ArgumentBinder = (*Strategy)(nil)
)
