// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sqlstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stacklok/oauthstore/pkg/config"
	"github.com/stacklok/oauthstore/pkg/storage"
)

// newTestDB opens a migrated SQLite database in a per-test directory.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.Context(), config.Database{
		Driver:         config.DriverSQLite,
		Path:           filepath.Join(t.TempDir(), "oauthstore.db"),
		ConnectTimeout: 5 * time.Second,
		Migrate:        true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// countRows returns the number of rows in table matching where.
func countRows(t *testing.T, db *DB, table, where string, args ...any) int {
	t.Helper()
	query := `SELECT COUNT(*) FROM ` + table
	if where != "" {
		query += ` WHERE ` + where
	}
	var n int
	require.NoError(t, db.queryRow(t.Context(), db.db, query, args...).Scan(&n))
	return n
}

func testApp(key string) *storage.ClientApplication {
	return &storage.ClientApplication{
		ConsumerKey:           key,
		ConsumerSecret:        "secret-" + key,
		Username:              "alice",
		UserDomain:            "PRIMARY",
		TenantID:              -1234,
		AppName:               "app-" + key,
		OAuthVersion:          "OAuth-2.0",
		CallbackURL:           "https://rp.example.com/callback",
		GrantTypes:            []string{"authorization_code", "refresh_token"},
		UserAccessTokenExpiry: 3600000,
		AppAccessTokenExpiry:  3600000,
		RefreshTokenExpiry:    84600000,
	}
}

func registerTestApp(t *testing.T, store *ClientStore, key string) *storage.ClientApplication {
	t.Helper()
	app := testApp(key)
	require.NoError(t, store.Register(t.Context(), app, storage.RegisterOptions{WithPKCE: true}))
	return app
}
