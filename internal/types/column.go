package types

// JDBCType is the type descriptor carried by a bindable column.
// Only type-aware binding strategies render it.
type JDBCType string

const (
	JDBCTypeNone      JDBCType = ""
	JDBCTypeInteger   JDBCType = "INTEGER"
	JDBCTypeBigInt    JDBCType = "BIGINT"
	JDBCTypeSmallInt  JDBCType = "SMALLINT"
	JDBCTypeVarChar   JDBCType = "VARCHAR"
	JDBCTypeChar      JDBCType = "CHAR"
	JDBCTypeBoolean   JDBCType = "BOOLEAN"
	JDBCTypeTimestamp JDBCType = "TIMESTAMP"
	JDBCTypeDate      JDBCType = "DATE"
	JDBCTypeNumeric   JDBCType = "NUMERIC"
	JDBCTypeDouble    JDBCType = "DOUBLE"
	JDBCTypeBinary    JDBCType = "VARBINARY"
	JDBCTypeOther     JDBCType = "OTHER"
)

// Column is a bindable column: a name within a table plus the optional
// type metadata used by type-aware strategies. Columns are values and are
// never modified after construction.
type Column struct {
	Table       Table
	Name        string
	JDBCType    JDBCType
	TypeHandler string
	JavaType    string
}

// QualifiedName returns the column name prefixed with its table alias, if any.
func (c Column) QualifiedName() string {
	if q := c.Table.Qualifier(); q != "" {
		return q + "." + c.Name
	}
	return c.Name
}
