// Package testing provides test utilities for dynsql.
package testing

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/dynsql"
)

// TestSchema creates a schema for testing with foo, bar, users and orders
// tables.
func TestSchema(t testing.TB) *dynsql.Schema {
	t.Helper()

	project := dbml.NewProject("test")

	foo := dbml.NewTable("foo")
	foo.AddColumn(dbml.NewColumn("id1", "int"))
	foo.AddColumn(dbml.NewColumn("id2", "int"))
	foo.AddColumn(dbml.NewColumn("name", "varchar"))
	project.AddTable(foo)

	bar := dbml.NewTable("bar")
	bar.AddColumn(dbml.NewColumn("id", "int"))
	bar.AddColumn(dbml.NewColumn("foo_id", "int"))
	bar.AddColumn(dbml.NewColumn("v", "text"))
	project.AddTable(bar)

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(users)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	schema, err := dynsql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return schema
}

// AssertSQL compares expected and actual SQL.
func AssertSQL(t testing.TB, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertParams checks that params carries exactly the expected names, in
// order.
func AssertParams(t testing.TB, params dynsql.Parameters, expected ...string) {
	t.Helper()
	actual := params.Names()
	if strings.Join(actual, ",") != strings.Join(expected, ",") {
		t.Errorf("Param mismatch:\nExpected: %v\nActual:   %v", expected, actual)
	}
}

// AssertParam checks that name is bound to value.
func AssertParam(t testing.TB, params dynsql.Parameters, name string, value any) {
	t.Helper()
	got, ok := params.Get(name)
	if !ok {
		t.Errorf("Expected param %q not found in %v", name, params.Names())
		return
	}
	if got != value {
		t.Errorf("Param %q: expected %v, got %v", name, value, got)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertErrorContains checks that the error message contains substr.
func AssertErrorContains(t testing.TB, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertInternalError checks that err is an internal error with code.
func AssertInternalError(t testing.TB, err error, code int) {
	t.Helper()
	var ie dynsql.InternalError
	if !errors.As(err, &ie) {
		t.Fatalf("Expected internal error %d, got: %v", code, err)
	}
	if ie.Code != code {
		t.Errorf("Expected internal error %d, got %d", code, ie.Code)
	}
}

// AssertPanics verifies that fn panics.
func AssertPanics(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}
