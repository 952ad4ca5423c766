package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/config"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const defaultDBTimeout = config.DefaultStatementTimeout

// Database is the interval store. It owns the SQLite handle for the
// lifetime of the process.
type Database struct {
	DB      *sql.DB
	dbFile  string
	now     func() time.Time
	log     *zap.Logger
	timeout time.Duration
}

// Option configures a Database at Open time.
type Option func(*Database)

// WithClock replaces the wall-clock source used to stamp start and end times.
func WithClock(now func() time.Time) Option {
	return func(d *Database) {
		if now != nil {
			d.now = now
		}
	}
}

// WithLogger attaches a logger for write operations.
func WithLogger(log *zap.Logger) Option {
	return func(d *Database) {
		if log != nil {
			d.log = log
		}
	}
}

// WithStatementTimeout bounds each operation that arrives without a deadline.
func WithStatementTimeout(timeout time.Duration) Option {
	return func(d *Database) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// Open opens (creating if needed) the SQLite file at path, enables WAL and
// applies migrations.
func Open(ctx context.Context, path string, opts ...Option) (*Database, error) {
	if path == "" {
		return nil, wrapErr(EntityDatabase, "open", 0, fmt.Errorf("database path is required"))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, wrapErr(EntityDatabase, "open", 0, err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=%d&_txlock=immediate",
		path, config.DefaultBusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, wrapErr(EntityDatabase, "open", 0, err)
	}

	d := &Database{
		DB:      db,
		dbFile:  path,
		now:     time.Now,
		log:     zap.NewNop(),
		timeout: defaultDBTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.withDBContext(ctx, func(ctx context.Context) error {
		return db.PingContext(ctx)
	}); err != nil {
		_ = db.Close()
		return nil, wrapErr(EntityDatabase, "open", 0, err)
	}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	d.log.Debug("interval store opened", zap.String("path", path))
	return d, nil
}

// Path returns the file backing the store.
func (d *Database) Path() string {
	return d.dbFile
}

// Close flushes the write-ahead log into the main file and closes the handle.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	if _, err := d.DB.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		d.log.Warn("wal checkpoint failed", zap.Error(err))
	}
	if err := d.DB.Close(); err != nil {
		return wrapErr(EntityDatabase, "close", 0, err)
	}
	return nil
}

func (d *Database) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS time_slots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_name TEXT NOT NULL,
			start_time DATETIME NOT NULL,
			end_time DATETIME,
			duration_seconds INTEGER DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_start_time ON time_slots(start_time);`,
		`CREATE INDEX IF NOT EXISTS idx_task_name ON time_slots(task_name);`,
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		for _, query := range queries {
			if _, err := d.DB.ExecContext(ctx, query); err != nil {
				return wrapErr(EntityDatabase, "migrate", 0, err)
			}
		}
		return nil
	})
}

// withTimeout applies timeout unless the caller already set a deadline.
func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok || timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, d.timeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx, d.timeout)
	defer cancel()
	return fn(ctx)
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return d.rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

func (d *Database) rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
		d.log.Error("rollback failed", zap.Error(rbErr))
	}
	return err
}

// clock returns the current wall-clock time at second precision.
func (d *Database) clock() time.Time {
	return d.now().In(time.Local).Truncate(time.Second)
}
