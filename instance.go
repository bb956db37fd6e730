package dynsql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/dynsql/internal/types"
)

// Schema is a column catalog built from a DBML project. Tables and columns
// taken from a Schema are checked against it and carry the JDBC type
// derived from the DBML column type.
type Schema struct {
	project *dbml.Project
	// Internal indexes for fast lookup
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column // table -> column -> definition
}

// NewFromDBML creates a schema from a DBML project.
func NewFromDBML(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		s.tables[table.Name] = table
		s.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			s.columns[table.Name][col.Name] = col
		}
	}

	return s, nil
}

// Project returns the DBML project the schema was built from.
func (s *Schema) Project() *dbml.Project {
	return s.project
}

// TryT returns a table of the schema, optionally aliased.
func (s *Schema) TryT(name string, alias ...string) (Table, error) {
	if _, ok := s.tables[name]; !ok {
		return Table{}, fmt.Errorf("table '%s' not found in schema", name)
	}
	return TryT(name, alias...)
}

// T returns a table of the schema, optionally aliased.
func (s *Schema) T(name string, alias ...string) Table {
	t, err := s.TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC returns a column of table typed from its DBML definition. Options
// are applied after the derived type and may override it.
func (s *Schema) TryC(table Table, name string, opts ...ColumnOption) (Column, error) {
	cols, ok := s.columns[table.Name]
	if !ok {
		return Column{}, fmt.Errorf("table '%s' not found in schema", table.Name)
	}
	def, ok := cols[name]
	if !ok {
		return Column{}, fmt.Errorf("column '%s' not found in table '%s'", name, table.Name)
	}
	return TryC(table, name, append([]ColumnOption{WithJDBCType(JDBCTypeOf(def.Type))}, opts...)...)
}

// C returns a column of table typed from its DBML definition.
func (s *Schema) C(table Table, name string, opts ...ColumnOption) Column {
	c, err := s.TryC(table, name, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// JDBCTypeOf maps a DBML column type to a JDBC type descriptor. Size and
// precision arguments such as varchar(255) are ignored.
func JDBCTypeOf(dbmlType string) JDBCType {
	t := strings.ToLower(strings.TrimSpace(dbmlType))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}

	switch t {
	case "int", "integer", "int4", "serial":
		return types.JDBCTypeInteger
	case "bigint", "int8", "bigserial":
		return types.JDBCTypeBigInt
	case "smallint", "int2":
		return types.JDBCTypeSmallInt
	case "varchar", "text", "string", "uuid":
		return types.JDBCTypeVarChar
	case "char":
		return types.JDBCTypeChar
	case "boolean", "bool":
		return types.JDBCTypeBoolean
	case "timestamp", "timestamptz", "datetime":
		return types.JDBCTypeTimestamp
	case "date":
		return types.JDBCTypeDate
	case "numeric", "decimal":
		return types.JDBCTypeNumeric
	case "double", "float", "float8", "real":
		return types.JDBCTypeDouble
	case "bytea", "blob", "binary", "varbinary":
		return types.JDBCTypeBinary
	default:
		return types.JDBCTypeOther
	}
}
