// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/oauthstore/pkg/config"
	"github.com/stacklok/oauthstore/pkg/storage"
)

func TestOpenStores_CacheAndTelemetry(t *testing.T) {
	t.Parallel()
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "oauthstore.db")
	cfg.Cache.Enabled = true
	cfg.Cache.Addr = mr.Addr()
	cfg.Telemetry.Enabled = true

	ctx := t.Context()
	s, err := openStores(ctx, cfg)
	require.NoError(t, err)

	app := &storage.ClientApplication{ConsumerKey: "c1", ConsumerSecret: "s1", Username: "alice", AppName: "app1"}
	require.NoError(t, s.clients.Register(ctx, app, storage.RegisterOptions{WithPKCE: true}))

	got, err := s.clients.GetByConsumerKey(ctx, "c1", true)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "app1", got.AppName)
	assert.True(t, mr.Exists(cfg.Cache.KeyPrefix+"client:pkce:c1"), "lookup should populate the cache")

	require.NoError(t, s.clients.UpdateName(ctx, "c1", "renamed"))
	assert.False(t, mr.Exists(cfg.Cache.KeyPrefix+"client:pkce:c1"), "write should invalidate the cache")

	require.NoError(t, s.Close(ctx))
}

func TestOpenStores_CacheUnreachable(t *testing.T) {
	t.Parallel()
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "oauthstore.db")
	cfg.Cache.Enabled = true
	cfg.Cache.Addr = addr

	_, err := openStores(t.Context(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}
