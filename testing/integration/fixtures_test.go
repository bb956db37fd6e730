package integration

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/dynsql"
	"github.com/zoobzio/dynsql/executor"
)

// userRow is the row bound by update and general insert statements.
type userRow struct {
	ID       int64   `db:"id"`
	Username string  `db:"username"`
	Email    *string `db:"email"`
	Age      *int    `db:"age"`
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// createTestSchema builds the catalog matching the tables every engine creates.
func createTestSchema(t *testing.T) *dynsql.Schema {
	t.Helper()

	project := dbml.NewProject("integration")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	project.AddTable(users)

	profiles := dbml.NewTable("profiles")
	profiles.AddColumn(dbml.NewColumn("user_id", "bigint"))
	profiles.AddColumn(dbml.NewColumn("nickname", "varchar"))
	project.AddTable(profiles)

	schema, err := dynsql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return schema
}

// schemaDDL recreates the users and profiles tables. Every engine under test
// accepts it unchanged.
var schemaDDL = []string{
	`DROP TABLE IF EXISTS profiles`,
	`DROP TABLE IF EXISTS users`,
	`CREATE TABLE users (
		id BIGINT PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		age INT
	)`,
	`CREATE TABLE profiles (
		user_id BIGINT PRIMARY KEY,
		nickname VARCHAR(255) NOT NULL
	)`,
}

// userColumns holds the columns of the users and profiles tables.
type userColumns struct {
	users, profiles                dynsql.Table
	id, username, email, age       dynsql.Column
	profileUserID, profileNickname dynsql.Column
}

func columnsOf(s *dynsql.Schema) userColumns {
	users := s.T("users")
	profiles := s.T("profiles")
	return userColumns{
		users:           users,
		profiles:        profiles,
		id:              s.C(users, "id"),
		username:        s.C(users, "username"),
		email:           s.C(users, "email"),
		age:             s.C(users, "age"),
		profileUserID:   s.C(profiles, "user_id"),
		profileNickname: s.C(profiles, "nickname"),
	}
}

// seedRows are the users present before every scenario.
var seedRows = []userRow{
	{ID: 1, Username: "alice", Email: strPtr("alice@example.com"), Age: intPtr(30)},
	{ID: 2, Username: "bob", Email: strPtr("bob@example.com"), Age: intPtr(25)},
	{ID: 3, Username: "charlie", Email: nil, Age: intPtr(35)},
}

// seedUsers inserts seedRows through general insert statements.
func seedUsers(ctx context.Context, t *testing.T, exec *executor.Executor, c userColumns) {
	t.Helper()

	for _, row := range seedRows {
		model, err := dynsql.GeneralInsertInto(c.users,
			dynsql.Map(c.id).ToProperty("id"),
			dynsql.Map(c.username).ToProperty("username"),
			dynsql.Map(c.email).ToPropertyWhenPresent("email"),
			dynsql.Map(c.age).ToPropertyWhenPresent("age"),
		)
		if err != nil {
			t.Fatalf("Failed to build insert: %v", err)
		}
		stmt, err := model.WithRow(row).Render(exec.Strategy())
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if _, err := exec.Exec(ctx, stmt); err != nil {
			t.Fatalf("Insert failed: %v\nSQL: %s", err, stmt.SQL())
		}
	}
}

// runExecutorScenarios exercises every flat-parameter statement against db
// through an executor bound to strategy. The users and profiles tables must
// exist and be empty.
func runExecutorScenarios(t *testing.T, db *sql.DB, strategy dynsql.Strategy) {
	t.Helper()

	ctx := context.Background()
	c := columnsOf(createTestSchema(t))

	exec, err := executor.New(db, strategy, executor.WithCacheSize(8))
	if err != nil {
		t.Fatalf("Failed to create executor: %v", err)
	}
	t.Cleanup(func() { _ = exec.Close() })

	seedUsers(ctx, t, exec, c)

	t.Run("GeneralInsertSkipsAbsentProperties", func(t *testing.T) {
		var email sql.NullString
		if err := db.QueryRowContext(ctx, "select email from users where id = 3").Scan(&email); err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if email.Valid {
			t.Errorf("Expected NULL email, got %q", email.String)
		}
	})

	t.Run("UpdateWithConditionalMapping", func(t *testing.T) {
		model, err := dynsql.Update(c.users,
			dynsql.Map(c.username).ToProperty("username"),
			dynsql.Map(c.email).ToPropertyWhenPresent("email"),
			dynsql.Map(c.age).ToPropertyWhen("age", func(v any) (bool, error) {
				age, ok := v.(*int)
				return ok && age != nil && *age > 0, nil
			}),
		)
		if err != nil {
			t.Fatalf("Failed to build update: %v", err)
		}
		stmt, err := model.
			WithRow(userRow{Username: "alice2", Email: nil, Age: intPtr(31)}).
			WithWhere(dynsql.Where(dynsql.IsEqualTo(c.id, int64(1)))).
			Render(strategy)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}

		result, err := exec.Exec(ctx, stmt)
		if err != nil {
			t.Fatalf("Update failed: %v\nSQL: %s", err, stmt.SQL())
		}
		if n, _ := result.RowsAffected(); n != 1 {
			t.Errorf("Expected 1 row affected, got %d", n)
		}

		var username, email string
		var age int
		if err := db.QueryRowContext(ctx, "select username, email, age from users where id = 1").Scan(&username, &email, &age); err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if username != "alice2" || age != 31 {
			t.Errorf("Expected alice2/31, got %s/%d", username, age)
		}
		if email != "alice@example.com" {
			t.Errorf("Absent email should be left untouched, got %q", email)
		}
	})

	t.Run("UpdateWithSubSelect", func(t *testing.T) {
		insert, err := dynsql.GeneralInsertInto(c.profiles,
			dynsql.Map(c.profileUserID).ToValue(int64(2)),
			dynsql.Map(c.profileNickname).ToValue("bobby"),
		)
		if err != nil {
			t.Fatalf("Failed to build insert: %v", err)
		}
		insertStmt, err := insert.Render(strategy)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if _, err := exec.Exec(ctx, insertStmt); err != nil {
			t.Fatalf("Insert failed: %v\nSQL: %s", err, insertStmt.SQL())
		}

		nickname := dynsql.Select(c.profileNickname).
			From(c.profiles).
			Where(dynsql.Where(dynsql.IsEqualTo(c.profileUserID, int64(2))))
		model, err := dynsql.Update(c.users, dynsql.Map(c.username).ToSelect(nickname))
		if err != nil {
			t.Fatalf("Failed to build update: %v", err)
		}
		stmt, err := model.
			WithWhere(dynsql.Where(dynsql.IsEqualTo(c.id, int64(2)))).
			Render(strategy)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if stmt.Params().Len() != 2 {
			t.Fatalf("Expected 2 params, got %d", stmt.Params().Len())
		}
		if _, err := exec.Exec(ctx, stmt); err != nil {
			t.Fatalf("Update failed: %v\nSQL: %s", err, stmt.SQL())
		}

		var username string
		if err := db.QueryRowContext(ctx, "select username from users where id = 2").Scan(&username); err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if username != "bobby" {
			t.Errorf("Expected bobby, got %s", username)
		}
	})

	t.Run("UpdateToNull", func(t *testing.T) {
		model, err := dynsql.Update(c.users, dynsql.Map(c.age).ToNull())
		if err != nil {
			t.Fatalf("Failed to build update: %v", err)
		}
		stmt, err := model.WithWhere(dynsql.Where(dynsql.IsEqualTo(c.id, int64(3)))).Render(strategy)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if _, err := exec.Exec(ctx, stmt); err != nil {
			t.Fatalf("Update failed: %v\nSQL: %s", err, stmt.SQL())
		}

		var age sql.NullInt64
		if err := db.QueryRowContext(ctx, "select age from users where id = 3").Scan(&age); err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if age.Valid {
			t.Errorf("Expected NULL age, got %d", age.Int64)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		model, err := dynsql.DeleteFrom(c.users)
		if err != nil {
			t.Fatalf("Failed to build delete: %v", err)
		}
		stmt, err := model.
			WithWhere(dynsql.Where(dynsql.IsNull(c.age)).And(dynsql.IsGreaterThan(c.id, int64(2)))).
			Render(strategy)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		result, err := exec.Exec(ctx, stmt)
		if err != nil {
			t.Fatalf("Delete failed: %v\nSQL: %s", err, stmt.SQL())
		}
		if n, _ := result.RowsAffected(); n != 1 {
			t.Errorf("Expected 1 row affected, got %d", n)
		}

		var count int
		if err := db.QueryRowContext(ctx, "select count(*) from users").Scan(&count); err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if count != 2 {
			t.Errorf("Expected 2 users left, got %d", count)
		}
	})

	t.Run("QuerySelect", func(t *testing.T) {
		sel := dynsql.Select(c.id, c.username).
			From(c.users).
			Where(dynsql.Where(dynsql.IsGreaterThanOrEqualTo(c.id, int64(1))))
		stmt, err := selectStatement(sel, strategy)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		rows, err := exec.Query(ctx, stmt)
		if err != nil {
			t.Fatalf("Query failed: %v\nSQL: %s", err, stmt.SQL())
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			count++
		}
		if err := rows.Err(); err != nil {
			t.Fatalf("Rows error: %v", err)
		}
		if count != 2 {
			t.Errorf("Expected 2 rows, got %d", count)
		}
	})

	t.Run("StatementsAreCached", func(t *testing.T) {
		if exec.Len() == 0 {
			t.Error("Expected prepared statements to be cached")
		}
	})

	t.Run("BadStatementIsWrapped", func(t *testing.T) {
		missing := dynsql.T("no_such_table")
		model, err := dynsql.DeleteFrom(missing)
		if err != nil {
			t.Fatalf("Failed to build delete: %v", err)
		}
		stmt, err := model.Render(strategy)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		_, err = exec.Exec(ctx, stmt)
		if err == nil {
			t.Fatal("Expected error for missing table")
		}
		var cfg dynsql.ConfigurationError
		if errors.As(err, &cfg) {
			t.Errorf("Driver errors should not be configuration errors: %v", err)
		}
	})
}

// renderedSelect adapts a rendered select to the executor's statement shape.
type renderedSelect struct {
	sql    string
	params dynsql.Parameters
}

func (s renderedSelect) SQL() string               { return s.sql }
func (s renderedSelect) Params() dynsql.Parameters { return s.params }

func selectStatement(sel dynsql.SelectStatement, strategy dynsql.Strategy) (renderedSelect, error) {
	fp, err := sel.RenderSelect(strategy, dynsql.NewSequence())
	if err != nil {
		return renderedSelect{}, err
	}
	return renderedSelect{sql: fp.Fragment, params: fp.Parameters}, nil
}
