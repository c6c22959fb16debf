// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/oauthstore/pkg/config"
	"github.com/stacklok/oauthstore/pkg/storage"
	"github.com/stacklok/oauthstore/pkg/storage/sqlstore"
	"github.com/stacklok/oauthstore/pkg/versions"
)

// writeConfig writes a configuration selecting a fresh SQLite database and
// returns its path.
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(dir, "oauthstore.db")

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, out, 0o600))
	return path
}

// run executes the CLI with args and returns what it wrote to stdout.
func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func mustRun(t *testing.T, cfgPath string, args ...string) string {
	t.Helper()
	out, err := run(t, cfgPath, args...)
	require.NoError(t, err, "oauthstore %s", strings.Join(args, " "))
	return out
}

func TestMigrate(t *testing.T) { //nolint:paralleltest // commands reinitialize the global logger
	cfgPath := writeConfig(t)
	assert.Contains(t, mustRun(t, cfgPath, "migrate"), "Database schema is at version 1")
	// idempotent
	assert.Contains(t, mustRun(t, cfgPath, "migrate"), "version 1")
}

func TestClientLifecycle(t *testing.T) { //nolint:paralleltest // commands reinitialize the global logger
	cfgPath := writeConfig(t)

	out := mustRun(t, cfgPath, "client", "register",
		"--owner", "alice", "--name", "app1",
		"--consumer-key", "c1", "--consumer-secret", "s1",
		"--callback", "https://rp.example.com/callback",
		"--pkce-mandatory", "--audience", "https://api.example.com",
		"--format", "json")
	var registered storage.ClientApplication
	require.NoError(t, json.Unmarshal([]byte(out), &registered))
	assert.Equal(t, "c1", registered.ConsumerKey)
	assert.Equal(t, "s1", registered.ConsumerSecret)
	assert.Equal(t, storage.AppStateActive, registered.State)

	out = mustRun(t, cfgPath, "client", "get", "c1", "--format", "yaml")
	var got storage.ClientApplication
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "app1", got.AppName)
	assert.Empty(t, got.ConsumerSecret)
	assert.True(t, got.PKCEMandatory)
	assert.Equal(t, []string{"authorization_code", "refresh_token"}, got.GrantTypes)
	assert.Equal(t, []string{"https://api.example.com"}, got.Audiences)

	_, err := run(t, cfgPath, "client", "register", "--owner", "alice", "--name", "app1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	assert.Contains(t, mustRun(t, cfgPath, "client", "list", "--owner", "alice"), "app1")

	mustRun(t, cfgPath, "client", "rename", "c1", "renamed")
	mustRun(t, cfgPath, "client", "set-state", "c1", "revoked")
	out = mustRun(t, cfgPath, "client", "get", "c1", "--format", "json")
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "renamed", got.AppName)
	assert.Equal(t, storage.AppStateRevoked, got.State)

	rotated := strings.TrimSpace(mustRun(t, cfgPath, "client", "rotate-secret", "c1"))
	assert.NotEmpty(t, rotated)
	out = mustRun(t, cfgPath, "client", "get", "c1", "--show-secret", "--format", "json")
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, rotated, got.ConsumerSecret)

	mustRun(t, cfgPath, "client", "delete", "c1")
	_, err = run(t, cfgPath, "client", "get", "c1")
	require.ErrorIs(t, err, storage.ErrUnknownConsumer)

	assert.Contains(t, mustRun(t, cfgPath, "client", "list", "--owner", "alice"), "No client applications found")
}

func TestClientRegisterGeneratesCredentials(t *testing.T) { //nolint:paralleltest // global logger
	cfgPath := writeConfig(t)

	out := mustRun(t, cfgPath, "client", "register", "--owner", "bob", "--name", "generated", "--format", "json")
	var app storage.ClientApplication
	require.NoError(t, json.Unmarshal([]byte(out), &app))
	assert.Len(t, app.ConsumerKey, 22)
	assert.Len(t, app.ConsumerSecret, 43)
}

func TestAudienceCommands(t *testing.T) { //nolint:paralleltest // global logger
	cfgPath := writeConfig(t)
	mustRun(t, cfgPath, "client", "register", "--owner", "alice", "--name", "app1", "--consumer-key", "c1",
		"--audience", "aud-1", "--audience", "aud-2")

	out := mustRun(t, cfgPath, "audience", "list", "c1", "--format", "json")
	var audiences []string
	require.NoError(t, json.Unmarshal([]byte(out), &audiences))
	assert.ElementsMatch(t, []string{"aud-1", "aud-2"}, audiences)

	mustRun(t, cfgPath, "audience", "remove", "c1", "aud-1")

	out = mustRun(t, cfgPath, "audience", "list", "app1", "--by-name", "--format", "json")
	require.NoError(t, json.Unmarshal([]byte(out), &audiences))
	assert.Equal(t, []string{"aud-2"}, audiences)

	assert.Contains(t, mustRun(t, cfgPath, "audience", "list", "c1"), "aud-2")
}

func TestConsumerCommands(t *testing.T) { //nolint:paralleltest // global logger
	cfgPath := writeConfig(t)

	out := mustRun(t, cfgPath, "consumer", "register", "--owner", "carol", "--consumer-key", "k1", "--format", "json")
	var app storage.ClientApplication
	require.NoError(t, json.Unmarshal([]byte(out), &app))
	assert.Equal(t, "k1", app.ConsumerKey)
	assert.NotEmpty(t, app.ConsumerSecret)

	rotated := strings.TrimSpace(mustRun(t, cfgPath, "consumer", "rotate-secret", "k1", "--owner", "carol"))
	assert.NotEqual(t, app.ConsumerSecret, rotated)

	_, err := run(t, cfgPath, "consumer", "rotate-secret", "k1", "--owner", "mallory")
	assert.ErrorIs(t, err, storage.ErrUnknownConsumer)
}

func TestConsumerTokenLifecycle(t *testing.T) { //nolint:paralleltest // global logger
	cfgPath := writeConfig(t)
	mustRun(t, cfgPath, "consumer", "register", "--owner", "carol", "--consumer-key", "k1")

	out := mustRun(t, cfgPath, "consumer", "token", "issue", "k1", "--scope", "read", "--format", "json")
	var rt storage.RequestToken
	require.NoError(t, json.Unmarshal([]byte(out), &rt))
	assert.NotEmpty(t, rt.Token)
	assert.NotEmpty(t, rt.Secret)
	assert.Equal(t, "read", rt.Scope)
	assert.False(t, rt.Authorized)

	_, err := run(t, cfgPath, "consumer", "token", "redeem", rt.Token)
	require.ErrorIs(t, err, storage.ErrTokenNotAuthorized)

	verifier := strings.TrimSpace(mustRun(t, cfgPath, "consumer", "token", "authorize", rt.Token, "--user", "carol"))
	assert.NotEmpty(t, verifier)

	out = mustRun(t, cfgPath, "consumer", "token", "redeem", rt.Token, "--format", "json")
	var at storage.AccessToken
	require.NoError(t, json.Unmarshal([]byte(out), &at))
	assert.NotEmpty(t, at.Token)
	assert.Equal(t, "carol", at.AuthorizedUser)

	_, err = run(t, cfgPath, "consumer", "token", "redeem", rt.Token)
	require.ErrorIs(t, err, storage.ErrTokenNotFound)

	out = mustRun(t, cfgPath, "consumer", "token", "dereference", at.Token, "--format", "json")
	var info storage.AccessTokenInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, storage.AccessTokenInfo{Scope: "read", Secret: at.Secret, AuthorizedUser: "carol"}, info)

	_, err = run(t, cfgPath, "consumer", "token", "dereference", "unknown")
	require.ErrorIs(t, err, storage.ErrTokenNotFound)

	_, err = run(t, cfgPath, "consumer", "token", "issue", "unknown-consumer")
	require.ErrorIs(t, err, storage.ErrUnknownConsumer)
}

func TestRequestObjectCommands(t *testing.T) { //nolint:paralleltest // global logger
	cfgPath := writeConfig(t)
	mustRun(t, cfgPath, "client", "register", "--owner", "alice", "--name", "app1", "--consumer-key", "c1")

	// seed a session the way the authorization endpoint would
	cfg, err := config.Load(viper.New(), cfgPath)
	require.NoError(t, err)
	db, err := sqlstore.Open(t.Context(), cfg.Database)
	require.NoError(t, err)
	store := sqlstore.NewRequestObjectStore(db)
	_, err = store.InsertReference(t.Context(), "c1", "S1", [][]storage.RequestedClaim{{
		{Name: "email", Essential: true, Type: storage.ClaimTypeUserInfo},
		{Name: "acr", Type: storage.ClaimTypeIDToken, Values: []string{"urn:a", "urn:b"}},
	}})
	require.NoError(t, err)
	require.NoError(t, store.BindToToken(t.Context(), "S1", "TOK1"))
	require.NoError(t, db.Close())

	out := mustRun(t, cfgPath, "requestobject", "claims", "--session", "S1", "--userinfo", "--format", "json")
	var claims []storage.RequestedClaim
	require.NoError(t, json.Unmarshal([]byte(out), &claims))
	require.Len(t, claims, 1)
	assert.Equal(t, "email", claims[0].Name)
	assert.True(t, claims[0].Essential)

	out = mustRun(t, cfgPath, "ro", "claims", "--access-token", "TOK1")
	assert.Contains(t, out, "acr")
	assert.Contains(t, out, "urn:a, urn:b")

	assert.Contains(t, mustRun(t, cfgPath, "ro", "claims", "--session", "unknown"), "No claims requested")

	out = mustRun(t, cfgPath, "requestobject", "reference", "--access-token", "TOK1", "--format", "json")
	var ref storage.RequestObjectReference
	require.NoError(t, json.Unmarshal([]byte(out), &ref))
	assert.Equal(t, "S1", ref.SessionDataKey)
	assert.Equal(t, "c1", ref.ConsumerKey)

	_, err = run(t, cfgPath, "requestobject", "claims")
	require.Error(t, err)
	_, err = run(t, cfgPath, "requestobject", "reference", "--session", "unknown")
	require.Error(t, err)
}

func TestInvalidFormat(t *testing.T) { //nolint:paralleltest // global logger
	cfgPath := writeConfig(t)
	_, err := run(t, cfgPath, "client", "list", "--owner", "alice", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestMissingConfigFile(t *testing.T) { //nolint:paralleltest // global logger
	_, err := run(t, filepath.Join(t.TempDir(), "missing.yaml"), "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestVersion(t *testing.T) { //nolint:paralleltest // global logger
	out := mustRun(t, writeConfig(t), "version", "--json")
	var info versions.VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, versions.GetVersionInfo(), info)

	assert.Contains(t, mustRun(t, writeConfig(t), "version"), "Go version:")
}
