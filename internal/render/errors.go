package render

import (
	"errors"
	"fmt"
)

// ConfigurationError indicates a required renderer input was not supplied.
// It is raised when a renderer is constructed, before anything is rendered.
type ConfigurationError struct {
	Component string
	Field     string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s is required", e.Component, e.Field)
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(component, field string) error {
	return ConfigurationError{Component: component, Field: field}
}

// Internal error codes. Each identifies one consistency check that a
// correctly built model can never fail.
const (
	CodeValueInRecordInsert       = 5
	CodeConditionalInRecordInsert = 7
	CodeSelectInRecordInsert      = 8
	CodeColumnInRecordInsert      = 9
	CodeRowInGeneralInsert        = 10
	CodeDuplicateParameter        = 20
	CodeUnknownMapping            = 30
)

// InternalError indicates a defect in model construction: a mapping variant
// reached a statement kind that cannot render it, or two renderings produced
// the same parameter name. Internal errors are never retried.
type InternalError struct {
	Code      int
	Statement string
	Mapping   string
	Column    string
	Parameter string
}

func (e InternalError) Error() string {
	switch {
	case e.Parameter != "":
		return fmt.Sprintf("internal error %d: %s: duplicate parameter %q", e.Code, e.Statement, e.Parameter)
	case e.Column != "":
		return fmt.Sprintf("internal error %d: %s: %s mapping is not allowed (column %s)", e.Code, e.Statement, e.Mapping, e.Column)
	default:
		return fmt.Sprintf("internal error %d: %s: %s mapping is not allowed", e.Code, e.Statement, e.Mapping)
	}
}

// NewIllegalMappingError reports a mapping variant illegal for the statement.
func NewIllegalMappingError(code int, statement, mapping, column string) error {
	return InternalError{Code: code, Statement: statement, Mapping: mapping, Column: column}
}

// NewDuplicateParameterError reports a parameter name produced twice.
func NewDuplicateParameterError(statement, parameter string) error {
	return InternalError{Code: CodeDuplicateParameter, Statement: statement, Parameter: parameter}
}

// InvalidSQLError indicates the model would render to something that is not
// a statement, such as an update whose every set phrase was dropped.
type InvalidSQLError struct {
	Reason string
}

func (e InvalidSQLError) Error() string {
	return "invalid SQL: " + e.Reason
}

// NewInvalidSQLError creates a new invalid SQL error.
func NewInvalidSQLError(reason string) error {
	return InvalidSQLError{Reason: reason}
}

// IsInternal reports whether err is or wraps an InternalError.
func IsInternal(err error) bool {
	var ie InternalError
	return errors.As(err, &ie)
}
