// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oauthstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "oauthstore.db", cfg.Database.Path)
	assert.Equal(t, 30*time.Second, cfg.Database.ConnectTimeout)
	assert.True(t, cfg.Database.Migrate)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "oauthstore:", cfg.Cache.KeyPrefix)
	assert.Equal(t, OnMissingKeyDrop, cfg.RequestObject.OnMissingKey)
	assert.Equal(t, UnknownClaimTypeUnspecified, cfg.RequestObject.UnknownClaimType)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
database:
  driver: mysql
  host: db.internal
  port: 3306
  user: wso2
  name: identity
  connect_timeout: 5s
cache:
  enabled: true
  addr: localhost:6379
  ttl: 1m
request_object:
  on_missing_key: fail
  unknown_claim_type: reject
`)

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, OnMissingKeyFail, cfg.RequestObject.OnMissingKey)
	assert.Equal(t, UnknownClaimTypeReject, cfg.RequestObject.UnknownClaimType)
}

func TestLoad_EnvOverride(t *testing.T) { //nolint:paralleltest // uses t.Setenv
	t.Setenv("OAUTHSTORE_DATABASE_DRIVER", "postgres")
	t.Setenv("OAUTHSTORE_DATABASE_DSN", "postgres://localhost/identity")
	t.Setenv("OAUTHSTORE_REQUEST_OBJECT_ON_MISSING_KEY", "fail")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/identity", cfg.Database.DSN)
	assert.Equal(t, OnMissingKeyFail, cfg.RequestObject.OnMissingKey)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "oracle" }, wantErr: "Driver"},
		{name: "sqlite without path", mutate: func(c *Config) { c.Database.Path = "" }, wantErr: "database.path"},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Database.Driver = DriverPostgres }, wantErr: "database.dsn"},
		{
			name:    "mysql without host",
			mutate:  func(c *Config) { c.Database.Driver = DriverMySQL; c.Database.Name = "identity" },
			wantErr: "database.host",
		},
		{
			name: "mysql with dsn",
			mutate: func(c *Config) {
				c.Database.Driver = DriverMySQL
				c.Database.DSN = "user:pw@tcp(localhost:3306)/identity"
			},
		},
		{name: "cache without addr", mutate: func(c *Config) { c.Cache.Enabled = true }, wantErr: "Addr"},
		{name: "bad missing key policy", mutate: func(c *Config) { c.RequestObject.OnMissingKey = "ignore" }, wantErr: "OnMissingKey"},
		{name: "bad claim policy", mutate: func(c *Config) { c.RequestObject.UnknownClaimType = "drop" }, wantErr: "UnknownClaimType"},
		{name: "negative port", mutate: func(c *Config) { c.Database.Port = -1 }, wantErr: "Port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
