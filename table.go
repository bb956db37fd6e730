package dynsql

import (
	"fmt"

	"github.com/zoobzio/dynsql/internal/types"
)

// TryT creates a table reference, returning an error if the name or alias
// is not a plain identifier.
func TryT(name string, alias ...string) (Table, error) {
	if !isValidSQLIdentifier(name) {
		return Table{}, fmt.Errorf("invalid table name: %q", name)
	}

	t := types.Table{Name: name}
	if len(alias) > 0 {
		if len(alias) > 1 {
			return Table{}, fmt.Errorf("only one alias allowed")
		}
		if !isValidSQLIdentifier(alias[0]) {
			return Table{}, fmt.Errorf("invalid table alias: %q", alias[0])
		}
		t.Alias = alias[0]
	}
	return t, nil
}

// T creates a table reference.
func T(name string, alias ...string) Table {
	table, err := TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return table
}

// ColumnOption sets optional column metadata.
type ColumnOption func(*Column)

// WithJDBCType sets the column's JDBC type descriptor.
func WithJDBCType(t JDBCType) ColumnOption {
	return func(c *Column) { c.JDBCType = t }
}

// WithTypeHandler sets the column's type handler.
func WithTypeHandler(handler string) ColumnOption {
	return func(c *Column) { c.TypeHandler = handler }
}

// WithJavaType sets the column's Java type.
func WithJavaType(javaType string) ColumnOption {
	return func(c *Column) { c.JavaType = javaType }
}

// TryC creates a column of table, returning an error if the name is invalid.
func TryC(table Table, name string, opts ...ColumnOption) (Column, error) {
	if !isValidSQLIdentifier(name) {
		return Column{}, fmt.Errorf("invalid column name: %q", name)
	}
	c := types.Column{Table: table, Name: name}
	for _, opt := range opts {
		opt(&c)
	}
	return c, nil
}

// C creates a column of table.
func C(table Table, name string, opts ...ColumnOption) Column {
	c, err := TryC(table, name, opts...)
	if err != nil {
		panic(err)
	}
	return c
}
