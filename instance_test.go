package dynsql_test

import (
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/dynsql"
	"github.com/zoobzio/dynsql/mybatis"
)

func createTestSchema(t *testing.T) *dynsql.Schema {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	users.AddColumn(dbml.NewColumn("balance", "numeric(10,2)"))
	users.AddColumn(dbml.NewColumn("settings", "jsonb"))
	project.AddTable(users)

	schema, err := dynsql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return schema
}

func TestNewFromDBML_Nil(t *testing.T) {
	if _, err := dynsql.NewFromDBML(nil); err == nil {
		t.Error("Expected error for nil project")
	}
}

func TestSchema_ColumnTypes(t *testing.T) {
	schema := createTestSchema(t)
	users := schema.T("users")

	tests := []struct {
		column   string
		expected dynsql.JDBCType
	}{
		{"id", dynsql.BigInt},
		{"username", dynsql.VarChar},
		{"active", dynsql.Boolean},
		{"age", dynsql.Integer},
		{"created_at", dynsql.Timestamp},
		{"balance", dynsql.Numeric},
		{"settings", dynsql.Other},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			c := schema.C(users, tt.column)
			if c.JDBCType != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, c.JDBCType)
			}
		})
	}
}

func TestSchema_Unknown(t *testing.T) {
	schema := createTestSchema(t)

	if _, err := schema.TryT("orders"); err == nil {
		t.Error("Expected error for unknown table")
	}
	if _, err := schema.TryC(schema.T("users"), "missing"); err == nil {
		t.Error("Expected error for unknown column")
	}
	if _, err := schema.TryC(dynsql.T("orders"), "id"); err == nil {
		t.Error("Expected error for column of unknown table")
	}
}

func TestSchema_OptionsOverrideDerivedType(t *testing.T) {
	schema := createTestSchema(t)
	c := schema.C(schema.T("users", "u"), "settings", dynsql.WithJDBCType(dynsql.VarChar), dynsql.WithTypeHandler("JsonHandler"))
	if c.JDBCType != dynsql.VarChar || c.TypeHandler != "JsonHandler" {
		t.Errorf("Options not applied: %+v", c)
	}
}

func TestSchema_RenderWithDerivedTypes(t *testing.T) {
	schema := createTestSchema(t)
	users := schema.T("users")

	model, err := dynsql.Update(users,
		dynsql.Map(schema.C(users, "username")).ToValue("fred"),
		dynsql.Map(schema.C(users, "active")).ToValue(true),
	)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	stmt, err := model.WithWhere(dynsql.Where(dynsql.IsEqualTo(schema.C(users, "id"), int64(1)))).Render(mybatis.New())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	assertSQL(t, "update users set username = #{parameters.p1,jdbcType=VARCHAR}, active = #{parameters.p2,jdbcType=BOOLEAN} where id = #{parameters.p3,jdbcType=BIGINT}", stmt.SQL())
}

func TestJDBCTypeOf(t *testing.T) {
	tests := map[string]dynsql.JDBCType{
		"int":          dynsql.Integer,
		"INTEGER":      dynsql.Integer,
		"varchar(255)": dynsql.VarChar,
		"text":         dynsql.VarChar,
		"bigint":       dynsql.BigInt,
		"timestamptz":  dynsql.Timestamp,
		"bytea":        dynsql.Binary,
		"point":        dynsql.Other,
	}
	for in, expected := range tests {
		if got := dynsql.JDBCTypeOf(in); got != expected {
			t.Errorf("JDBCTypeOf(%q) = %s, want %s", in, got, expected)
		}
	}
}
