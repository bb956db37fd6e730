package dynsql_test

import (
	"testing"

	"github.com/zoobzio/dynsql"
)

// Fixtures shared by the rendering tests.

type record struct {
	ID1  int     `db:"id1"`
	ID2  int     `db:"id2"`
	Name *string `db:"name"`
}

var (
	foo   = dynsql.T("foo")
	bar   = dynsql.T("bar", "b")
	id1   = dynsql.C(foo, "id1", dynsql.WithJDBCType(dynsql.Integer))
	id2   = dynsql.C(foo, "id2", dynsql.WithJDBCType(dynsql.Integer))
	name  = dynsql.C(foo, "name", dynsql.WithJDBCType(dynsql.VarChar))
	barID = dynsql.C(bar, "id", dynsql.WithJDBCType(dynsql.Integer))
	barV  = dynsql.C(bar, "v")
)

func strPtr(s string) *string {
	return &s
}

func threeRecords() []any {
	return dynsql.Records([]record{{ID2: 1}, {ID2: 2}, {ID2: 3}})
}

func assertSQL(t *testing.T, expected, got string) {
	t.Helper()
	if got != expected {
		t.Errorf("Expected SQL:\n%s\nGot:\n%s", expected, got)
	}
}

func assertParams(t *testing.T, params dynsql.Parameters, expected ...dynsql.Parameter) {
	t.Helper()
	if params.Len() != len(expected) {
		t.Fatalf("Expected %d params, got %d: %v", len(expected), params.Len(), params.Names())
	}
	for i, p := range params.All() {
		if p.Name != expected[i].Name {
			t.Errorf("param %d: expected name %q, got %q", i, expected[i].Name, p.Name)
		}
		if p.Value != expected[i].Value {
			t.Errorf("param %q: expected value %v, got %v", p.Name, expected[i].Value, p.Value)
		}
	}
}

func mustUpdate(t *testing.T, table dynsql.Table, mappings ...dynsql.Mapping) *dynsql.UpdateModel {
	t.Helper()
	m, err := dynsql.Update(table, mappings...)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	return m
}
