// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sqlstore

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/VividCortex/mysqlerr"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/oauthstore/pkg/config"
	oserrors "github.com/stacklok/oauthstore/pkg/errors"
	"github.com/stacklok/oauthstore/pkg/storage"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	version, err := db.SchemaVersion(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.Equal(t, DialectSQLite, db.Dialect())

	// migrating twice is a no-op
	require.NoError(t, db.Migrate(t.Context()))

	var fk int
	require.NoError(t, db.DB().QueryRowContext(t.Context(), `PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(t.Context(), config.Database{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database dialect")
}

func TestNewDB_UnsupportedDialect(t *testing.T) {
	t.Parallel()

	_, err := NewDB(nil, Dialect("mssql"))
	require.Error(t, err)
}

func TestRebind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dialect Dialect
		want    string
	}{
		{DialectSQLite, `UPDATE t SET a = ? WHERE b = ? AND c = ?`},
		{DialectMySQL, `UPDATE t SET a = ? WHERE b = ? AND c = ?`},
		{DialectPostgres, `UPDATE t SET a = $1 WHERE b = $2 AND c = $3`},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			t.Parallel()
			db, err := NewDB(nil, tt.dialect)
			require.NoError(t, err)
			assert.Equal(t, tt.want, db.rebind(`UPDATE t SET a = ? WHERE b = ? AND c = ?`))
		})
	}
}

func TestBuildDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      config.Database
		contains []string
		wantErr  bool
	}{
		{
			name:     "sqlite path",
			cfg:      config.Database{Driver: config.DriverSQLite, Path: "/var/lib/oauthstore.db"},
			contains: []string{"file:/var/lib/oauthstore.db", "foreign_keys(1)", "journal_mode(WAL)"},
		},
		{
			name:     "sqlite dsn wins",
			cfg:      config.Database{Driver: config.DriverSQLite, DSN: "file::memory:", Path: "ignored.db"},
			contains: []string{"file::memory:"},
		},
		{
			name:     "postgres",
			cfg:      config.Database{Driver: config.DriverPostgres, DSN: "postgres://localhost/identity"},
			contains: []string{"postgres://localhost/identity"},
		},
		{
			name: "mysql fields",
			cfg: config.Database{
				Driver: config.DriverMySQL, Host: "db.internal", User: "wso2", Password: "pw", Name: "identity",
				ConnectTimeout: 5 * time.Second,
			},
			contains: []string{"wso2:pw@tcp(db.internal:3306)/identity", "clientFoundRows=true", "parseTime=true"},
		},
		{
			name:     "mysql dsn",
			cfg:      config.Database{Driver: config.DriverMySQL, DSN: "u:p@tcp(localhost:3307)/idp"},
			contains: []string{"u:p@tcp(localhost:3307)/idp", "clientFoundRows=true"},
		},
		{
			name:    "mysql bad dsn",
			cfg:     config.Database{Driver: config.DriverMySQL, DSN: "not a dsn"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dsn, err := buildDSN(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, c := range tt.contains {
				assert.Contains(t, dsn, c)
			}
		})
	}
}

func TestStorageErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cause      error
		wantExists bool
	}{
		{name: "mysql duplicate", cause: &mysql.MySQLError{Number: mysqlerr.ER_DUP_ENTRY}, wantExists: true},
		{name: "mysql other", cause: &mysql.MySQLError{Number: mysqlerr.ER_NO_SUCH_TABLE}},
		{name: "postgres duplicate", cause: &pgconn.PgError{Code: "23505"}, wantExists: true},
		{name: "postgres fk", cause: &pgconn.PgError{Code: "23503"}},
		{name: "wrapped postgres duplicate", cause: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), wantExists: true},
		{name: "plain", cause: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := storageErr("inserting", tt.cause)
			assert.True(t, oserrors.IsStorage(err))
			assert.Equal(t, tt.wantExists, errors.Is(err, storage.ErrAlreadyExists))
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}
