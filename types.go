package dynsql

import (
	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// Strategy selects the placeholder syntax of a target execution framework.
// See the mybatis, spring, named and positional packages.
type Strategy = types.Strategy

// Core value types, re-exported for callers.
type (
	Table                 = types.Table
	Column                = types.Column
	JDBCType              = types.JDBCType
	Mapping               = types.Mapping
	Condition             = types.Condition
	Sequence              = types.Sequence
	Parameter             = types.Parameter
	Parameters            = types.Parameters
	FragmentAndParameters = types.FragmentAndParameters
	Statement             = types.Statement
	SelectModel           = types.SelectModel
	WhereModel            = types.WhereModel
)

// Error types, re-exported so callers can match them with errors.As.
type (
	ConfigurationError = render.ConfigurationError
	InternalError      = render.InternalError
	InvalidSQLError    = render.InvalidSQLError
)

// Re-export JDBC type descriptors for public API.
const (
	Integer   = types.JDBCTypeInteger
	BigInt    = types.JDBCTypeBigInt
	SmallInt  = types.JDBCTypeSmallInt
	VarChar   = types.JDBCTypeVarChar
	Char      = types.JDBCTypeChar
	Boolean   = types.JDBCTypeBoolean
	Timestamp = types.JDBCTypeTimestamp
	Date      = types.JDBCTypeDate
	Numeric   = types.JDBCTypeNumeric
	Double    = types.JDBCTypeDouble
	Binary    = types.JDBCTypeBinary
	Other     = types.JDBCTypeOther
)

// DefaultParameterPrefix is the root under which generated parameters live.
const DefaultParameterPrefix = types.DefaultParameterPrefix

// NewSequence returns a fresh parameter sequence.
func NewSequence() *Sequence {
	return types.NewSequence()
}

// IsInternal reports whether err is an internal consistency error.
func IsInternal(err error) bool {
	return render.IsInternal(err)
}

// NewParameters builds an ordered parameter mapping. It reports false if a
// name appears more than once.
func NewParameters(params ...Parameter) (Parameters, bool) {
	return types.NewParameters(params...)
}
