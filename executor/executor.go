// Package executor runs rendered dynsql statements through database/sql.
//
// Statements are prepared once per distinct SQL text and kept in an LRU
// cache; a statement evicted from the cache is closed once no call is still
// using it. The strategy the statements were rendered with must bind
// arguments (spring, named, positional or postgres); mybatis placeholders
// cannot be executed here.
package executor

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// DefaultCacheSize is the number of prepared statements kept by default.
const DefaultCacheSize = 64

// Executor executes flat-parameter statements (update, delete and general
// insert) against a database. It is safe for concurrent use.
type Executor struct {
	db        *sql.DB
	strategy  types.Strategy
	binder    types.ArgumentBinder
	logger    *slog.Logger
	cacheSize int

	mu    sync.RWMutex
	cache *lru.Cache[string, *cachedStmt]
}

// Option configures an Executor.
type Option func(*Executor)

// WithCacheSize sets the number of prepared statements kept.
func WithCacheSize(n int) Option {
	return func(e *Executor) { e.cacheSize = n }
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an executor. The strategy must be the one statements passed
// to Exec and Query were rendered with.
func New(db *sql.DB, strategy types.Strategy, opts ...Option) (*Executor, error) {
	if db == nil {
		return nil, render.NewConfigurationError("executor", "db")
	}
	if strategy == nil {
		return nil, render.NewConfigurationError("executor", "strategy")
	}
	binder, ok := strategy.(types.ArgumentBinder)
	if !ok {
		return nil, render.NewConfigurationError("executor", "argument binding strategy")
	}

	e := &Executor{
		db:        db,
		strategy:  strategy,
		binder:    binder,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cacheSize < 1 {
		return nil, fmt.Errorf("executor: cache size must be positive, got %d", e.cacheSize)
	}

	cache, err := lru.NewWithEvict(e.cacheSize, func(query string, entry *cachedStmt) {
		e.logger.Debug("evicting statement", "sql", query)
		entry.evict()
	})
	if err != nil {
		return nil, fmt.Errorf("executor: %w", err)
	}
	e.cache = cache
	return e, nil
}

// Strategy returns the strategy statements must be rendered with.
func (e *Executor) Strategy() types.Strategy {
	return e.strategy
}

// Exec executes stmt.
func (e *Executor) Exec(ctx context.Context, stmt types.Statement) (sql.Result, error) {
	entry, args, err := e.bind(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer entry.release()

	result, err := entry.stmt.ExecContext(ctx, args...)
	if err != nil {
		e.logger.Error("statement failed", "sql", stmt.SQL(), "error", err)
		return nil, fmt.Errorf("exec failed: %w", err)
	}
	return result, nil
}

// Query executes stmt and returns its rows. Open rows keep the prepared
// statement usable even if it leaves the cache before they are closed.
func (e *Executor) Query(ctx context.Context, stmt types.Statement) (*sql.Rows, error) {
	entry, args, err := e.bind(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer entry.release()

	rows, err := entry.stmt.QueryContext(ctx, args...)
	if err != nil {
		e.logger.Error("query failed", "sql", stmt.SQL(), "error", err)
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return rows, nil
}

// Len returns the number of cached statements.
func (e *Executor) Len() int {
	return e.cache.Len()
}

// Close empties the cache. Statements still in use are closed when their
// last caller finishes. The database is left open.
func (e *Executor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cache.Purge()
	return nil
}

// bind acquires the prepared statement for stmt. The caller must release it.
func (e *Executor) bind(ctx context.Context, stmt types.Statement) (*cachedStmt, []any, error) {
	if stmt == nil {
		return nil, nil, fmt.Errorf("statement is required")
	}
	entry, err := e.prepare(ctx, stmt.SQL())
	if err != nil {
		return nil, nil, err
	}
	args := e.binder.Args(stmt.Params())
	e.logger.Debug("executing statement", "sql", stmt.SQL(), "params", len(args))
	return entry, args, nil
}

// prepare returns the cached statement for query, preparing it on a miss.
// The returned entry is acquired; evictions happen only under the write
// lock, so an entry found here cannot be closed before release.
func (e *Executor) prepare(ctx context.Context, query string) (*cachedStmt, error) {
	e.mu.RLock()
	if entry, ok := e.cache.Get(query); ok {
		entry.acquire()
		e.mu.RUnlock()
		e.logger.Debug("statement cache hit", "sql", query)
		return entry, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if entry, ok := e.cache.Get(query); ok {
		entry.acquire()
		return entry, nil
	}

	stmt, err := e.db.PrepareContext(ctx, query)
	if err != nil {
		e.logger.Error("prepare failed", "sql", query, "error", err)
		return nil, fmt.Errorf("prepare failed: %w", err)
	}
	entry := &cachedStmt{query: query, stmt: stmt, logger: e.logger}
	entry.acquire()
	e.cache.Add(query, entry)
	return entry, nil
}

// cachedStmt counts the callers using a prepared statement. The statement is
// closed once it has left the cache and no caller holds it.
type cachedStmt struct {
	query  string
	stmt   *sql.Stmt
	logger *slog.Logger

	users   atomic.Int64
	evicted atomic.Bool
	once    sync.Once
}

func (c *cachedStmt) acquire() {
	c.users.Add(1)
}

func (c *cachedStmt) release() {
	if c.users.Add(-1) == 0 && c.evicted.Load() {
		c.close()
	}
}

func (c *cachedStmt) evict() {
	c.evicted.Store(true)
	if c.users.Load() == 0 {
		c.close()
	}
}

func (c *cachedStmt) close() {
	c.once.Do(func() {
		c.logger.Debug("closing statement", "sql", c.query)
		if err := c.stmt.Close(); err != nil {
			c.logger.Error("failed to close statement", "sql", c.query, "error", err)
		}
	})
}
