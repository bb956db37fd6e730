// Package dynsql renders SQL statements from column mappings.
//
// A statement model lists one mapping per target column. Each mapping says
// where the column's value comes from: a constant, a property of the
// statement's row, a property that is only set when a condition holds, a
// bound value, null, a nested select, another column, or the whole row.
// Rendering turns a model into SQL text plus the ordered parameters its
// placeholders refer to.
//
// # Basic Usage
//
//	foo := dynsql.T("foo")
//	id := dynsql.C(foo, "id", dynsql.WithJDBCType(dynsql.Integer))
//	name := dynsql.C(foo, "name", dynsql.WithJDBCType(dynsql.VarChar))
//
//	model, err := dynsql.Update(foo, dynsql.Map(name).ToProperty("name"))
//	if err != nil {
//		return err
//	}
//	stmt, err := model.
//		WithRow(row).
//		WithWhere(dynsql.Where(dynsql.IsEqualTo(id, 7))).
//		Render(mybatis.New())
//	// stmt.SQL(): update foo set name = #{parameters.p1,jdbcType=VARCHAR} where id = #{parameters.p2,jdbcType=INTEGER}
//	// stmt.Params(): p1 -> row.name, p2 -> 7
//
// # Binding Strategies
//
// Placeholder syntax is chosen by the Strategy passed to Render:
//
//	mybatis     #{parameters.p1,jdbcType=INTEGER}
//	spring      :p1
//	named       @p1
//	positional  ?
//
// Switching strategy changes placeholder text only. Parameter names are
// drawn from a sequence created fresh for every render and shared with any
// nested select and the where clause, so names never collide.
//
// # Record Inserts
//
// InsertInto, InsertBatch and InsertMultiple render placeholders that
// address properties of the records themselves ("row.id", "records[2].id")
// and carry no parameters. GeneralInsertInto binds values as parameters
// like an update.
//
// # Schema-Backed Columns
//
// A Schema built from a DBML project looks up tables and columns and types
// columns from their DBML definitions:
//
//	schema, err := dynsql.NewFromDBML(project)
//	users := schema.T("users")
//	id := schema.C(users, "id") // jdbcType=BIGINT
package dynsql
