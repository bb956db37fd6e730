// Package integration runs rendered dynsql statements against real databases.
//
// SQLite runs in memory. PostgreSQL, MariaDB and SQL Server run in
// containers started on first use and shared by every test in the package;
// tests needing them skip in -short mode.
package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mariadb"
	"github.com/testcontainers/testcontainers-go/modules/mssql"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// lazy starts a shared resource once and remembers the outcome.
type lazy[T any] struct {
	once  sync.Once
	value T
	err   error
}

func (l *lazy[T]) get(t *testing.T, name string, start func(context.Context) (T, error)) T {
	t.Helper()
	l.once.Do(func() {
		l.value, l.err = start(context.Background())
	})
	if l.err != nil {
		t.Fatalf("Failed to start %s: %v", name, l.err)
	}
	return l.value
}

var (
	pgShared      lazy[*PostgresContainer]
	mariadbShared lazy[*DBContainer]
	mssqlShared   lazy[*DBContainer]

	cleanupMu sync.Mutex
	cleanups  []func(context.Context)
)

// onShutdown registers fn to run after every test has finished.
func onShutdown(fn func(context.Context)) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanups = append(cleanups, fn)
}

// TestMain terminates the containers the tests started.
func TestMain(m *testing.M) {
	code := m.Run()

	ctx := context.Background()
	cleanupMu.Lock()
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i](ctx)
	}
	cleanupMu.Unlock()

	os.Exit(code)
}

// DBContainer is a containerized database reached through database/sql.
type DBContainer struct {
	container testcontainers.Container
	db        *sql.DB
	connStr   string
}

// Exec executes a SQL statement.
func (dc *DBContainer) Exec(ctx context.Context, t *testing.T, query string, args ...any) {
	t.Helper()
	if _, err := dc.db.ExecContext(ctx, query, args...); err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, query)
	}
}

// openAndPing opens driver on connStr and waits until the server answers.
func openAndPing(ctx context.Context, driver, connStr string, attempts int) (*sql.DB, error) {
	db, err := sql.Open(driver, connStr)
	if err != nil {
		return nil, err
	}
	for i := 0; ; i++ {
		err = db.PingContext(ctx)
		if err == nil {
			return db, nil
		}
		if i == attempts {
			_ = db.Close()
			return nil, fmt.Errorf("%s did not answer: %w", driver, err)
		}
		time.Sleep(time.Second)
	}
}

func register(c testcontainers.Container, closeFn func(context.Context)) {
	onShutdown(func(ctx context.Context) {
		closeFn(ctx)
		_ = c.Terminate(ctx)
	})
}

// getPostgresContainer returns the shared PostgreSQL container.
func getPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	return pgShared.get(t, "postgres", func(ctx context.Context) (*PostgresContainer, error) {
		container, err := postgres.Run(ctx,
			"docker.io/postgres:16-alpine",
			postgres.WithDatabase("dynsql_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			return nil, err
		}
		connStr, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			_ = container.Terminate(ctx)
			return nil, err
		}
		conn, err := pgx.Connect(ctx, connStr)
		if err != nil {
			_ = container.Terminate(ctx)
			return nil, err
		}
		register(container, func(ctx context.Context) { _ = conn.Close(ctx) })
		return &PostgresContainer{container: container, conn: conn, connStr: connStr}, nil
	})
}

// getMariaDBContainer returns the shared MariaDB container.
func getMariaDBContainer(t *testing.T) *DBContainer {
	t.Helper()
	return mariadbShared.get(t, "mariadb", func(ctx context.Context) (*DBContainer, error) {
		container, err := mariadb.Run(ctx,
			"docker.io/mariadb:11",
			mariadb.WithDatabase("dynsql_test"),
			mariadb.WithUsername("test"),
			mariadb.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("mariadbd: ready for connections").
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			return nil, err
		}
		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			_ = container.Terminate(ctx)
			return nil, err
		}
		db, err := openAndPing(ctx, "mysql", connStr, 30)
		if err != nil {
			_ = container.Terminate(ctx)
			return nil, err
		}
		register(container, func(context.Context) { _ = db.Close() })
		return &DBContainer{container: container, db: db, connStr: connStr}, nil
	})
}

// getMSSQLContainer returns the shared SQL Server container.
func getMSSQLContainer(t *testing.T) *DBContainer {
	t.Helper()
	return mssqlShared.get(t, "mssql", func(ctx context.Context) (*DBContainer, error) {
		container, err := mssql.Run(ctx,
			"mcr.microsoft.com/mssql/server:2022-latest",
			mssql.WithAcceptEULA(),
			mssql.WithPassword("Test@12345"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("SQL Server is now ready for client connections").
					WithStartupTimeout(120*time.Second),
			),
		)
		if err != nil {
			return nil, err
		}
		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			_ = container.Terminate(ctx)
			return nil, err
		}
		db, err := openAndPing(ctx, "sqlserver", connStr, 60)
		if err != nil {
			_ = container.Terminate(ctx)
			return nil, err
		}
		register(container, func(context.Context) { _ = db.Close() })
		return &DBContainer{container: container, db: db, connStr: connStr}, nil
	})
}
