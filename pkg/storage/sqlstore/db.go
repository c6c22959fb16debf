// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package sqlstore implements the storage interfaces on database/sql. The
// same statements run on SQLite, PostgreSQL and MySQL; dialect differences
// are limited to placeholders, generated-key retrieval and migrations.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"github.com/stacklok/oauthstore/pkg/config"
	"github.com/stacklok/oauthstore/pkg/logger"
)

// Dialect identifies the SQL flavour of a connection.
type Dialect string

// Supported dialects.
const (
	DialectSQLite   Dialect = config.DriverSQLite
	DialectPostgres Dialect = config.DriverPostgres
	DialectMySQL    Dialect = config.DriverMySQL
)

// driverName returns the database/sql driver registered for d.
func (d Dialect) driverName() (string, error) {
	switch d {
	case DialectSQLite:
		return "sqlite", nil
	case DialectPostgres:
		return "pgx", nil
	case DialectMySQL:
		return "mysql", nil
	default:
		return "", fmt.Errorf("unsupported database dialect %q", d)
	}
}

// DB wraps a *sql.DB with the dialect the stores need to build statements.
type DB struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

// NewDB wraps an already opened connection pool.
func NewDB(db *sql.DB, dialect Dialect) (*DB, error) {
	if _, err := dialect.driverName(); err != nil {
		return nil, err
	}
	return &DB{db: db, dialect: dialect, logger: logger.ForComponent("sqlstore")}, nil
}

// Open connects to the database described by cfg, waits for it to answer
// and applies migrations when cfg.Migrate is set.
func Open(ctx context.Context, cfg config.Database) (*DB, error) {
	dialect := Dialect(cfg.Driver)
	driver, err := dialect.driverName()
	if err != nil {
		return nil, err
	}

	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", dialect, err)
	}

	if dialect == DialectSQLite {
		// SQLite allows a single writer; one connection avoids SQLITE_BUSY
		// and keeps the per-connection pragmas in force.
		sqlDB.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	db, err := NewDB(sqlDB, dialect)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	if err := db.waitReady(ctx, cfg.ConnectTimeout); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	if cfg.Migrate {
		if err := db.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	return db, nil
}

// buildDSN renders the driver-specific data source name.
func buildDSN(cfg config.Database) (string, error) {
	switch Dialect(cfg.Driver) {
	case DialectSQLite:
		if cfg.DSN != "" {
			return cfg.DSN, nil
		}
		return sqliteDSN(cfg.Path), nil
	case DialectPostgres:
		return cfg.DSN, nil
	case DialectMySQL:
		return mysqlDSN(cfg)
	default:
		return "", fmt.Errorf("unsupported database dialect %q", cfg.Driver)
	}
}

// sqliteDSN enables foreign keys, which the cascading deletes rely on, and
// WAL so readers do not block the writer.
func sqliteDSN(path string) string {
	return "file:" + path +
		"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

// mysqlDSN builds the MySQL DSN. ClientFoundRows makes UPDATE report matched
// rather than changed rows, so a guarded update that rewrites identical
// values is not mistaken for a guard mismatch.
func mysqlDSN(cfg config.Database) (string, error) {
	var mc *mysql.Config
	if cfg.DSN != "" {
		parsed, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return "", fmt.Errorf("parsing mysql dsn: %w", err)
		}
		mc = parsed
	} else {
		mc = mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		port := cfg.Port
		if port == 0 {
			port = 3306
		}
		mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(port))
		mc.DBName = cfg.Name
		mc.Timeout = cfg.ConnectTimeout
	}
	mc.ClientFoundRows = true
	mc.ParseTime = true
	return mc.FormatDSN(), nil
}

// waitReady pings the database with exponential backoff until it answers
// or timeout elapses.
func (d *DB) waitReady(ctx context.Context, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.MaxInterval = 5 * time.Second

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, d.db.PingContext(ctx)
	},
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxElapsedTime(timeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			d.logger.Warn("database not ready, retrying",
				"dialect", string(d.dialect), "error", err, "next_attempt", next)
		}),
	)
	if err != nil {
		return fmt.Errorf("connecting to %s database: %w", d.dialect, err)
	}
	return nil
}

// DB returns the underlying connection pool.
func (d *DB) DB() *sql.DB {
	return d.db
}

// Dialect returns the SQL flavour of the connection.
func (d *DB) Dialect() Dialect {
	return d.dialect
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.db.Close()
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (d *DB) exec(ctx context.Context, q querier, query string, args ...any) (sql.Result, error) {
	return q.ExecContext(ctx, d.rebind(query), args...)
}

func (d *DB) query(ctx context.Context, q querier, query string, args ...any) (*sql.Rows, error) {
	return q.QueryContext(ctx, d.rebind(query), args...)
}

func (d *DB) queryRow(ctx context.Context, q querier, query string, args ...any) *sql.Row {
	return q.QueryRowContext(ctx, d.rebind(query), args...)
}

// rebind rewrites ? placeholders to $n for PostgreSQL. Statements in this
// package never contain a literal question mark.
func (d *DB) rebind(query string) string {
	if d.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// insertReturningID runs an INSERT and reports the generated id. ok is
// false when the statement succeeded but the database did not report a key.
func (d *DB) insertReturningID(ctx context.Context, tx *sql.Tx, query string, args ...any) (int64, bool, error) {
	if d.dialect == DialectMySQL {
		res, err := d.exec(ctx, tx, query, args...)
		if err != nil {
			return 0, false, err
		}
		id, err := res.LastInsertId()
		if err != nil || id == 0 {
			return 0, false, nil
		}
		return id, true, nil
	}

	var id int64
	err := d.queryRow(ctx, tx, query+" RETURNING id", args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// rollback rolls back tx, ignoring errors (tx may already be committed).
func rollback(tx *sql.Tx) { _ = tx.Rollback() }
