// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package cache provides a Redis read-through cache in front of a
// storage.ClientStore.
//
// Only GetByConsumerKey is cached. Every write that can change a cached
// application deletes its entries after the write commits; entries also
// expire after the configured TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stacklok/oauthstore/pkg/config"
	oserrors "github.com/stacklok/oauthstore/pkg/errors"
	"github.com/stacklok/oauthstore/pkg/logger"
	"github.com/stacklok/oauthstore/pkg/storage"
)

// Default timeouts for Redis operations.
const (
	DefaultDialTimeout  = 5 * time.Second
	DefaultReadTimeout  = 3 * time.Second
	DefaultWriteTimeout = 3 * time.Second
)

// DefaultTTL applies when Options.TTL is zero.
const DefaultTTL = 5 * time.Minute

// Options configures a ClientCache.
type Options struct {
	// KeyPrefix namespaces every key, e.g. "oauthstore:".
	KeyPrefix string
	TTL       time.Duration
}

// ClientCache decorates a storage.ClientStore. Methods it does not override
// go straight to the wrapped store.
type ClientCache struct {
	storage.ClientStore

	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
	logger    *slog.Logger
}

var _ storage.ClientStore = (*ClientCache)(nil)

// New wraps inner with a cache backed by client.
func New(inner storage.ClientStore, client redis.UniversalClient, opts Options) *ClientCache {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ClientCache{
		ClientStore: inner,
		client:      client,
		keyPrefix:   opts.KeyPrefix,
		ttl:         ttl,
		logger:      logger.ForComponent("cache.clients"),
	}
}

// NewFromConfig connects to the Redis server described by cfg and wraps inner.
// The returned close function releases the connection.
func NewFromConfig(
	ctx context.Context, inner storage.ClientStore, cfg config.Cache,
) (*ClientCache, func() error, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  DefaultDialTimeout,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return New(inner, client, Options{KeyPrefix: cfg.KeyPrefix, TTL: cfg.TTL}), client.Close, nil
}

func (c *ClientCache) appKey(consumerKey string, withPKCE bool) string {
	if withPKCE {
		return c.keyPrefix + "client:pkce:" + consumerKey
	}
	return c.keyPrefix + "client:" + consumerKey
}

// GetByConsumerKey serves from Redis when possible. Redis failures are
// logged and the read falls through to the wrapped store.
func (c *ClientCache) GetByConsumerKey(
	ctx context.Context, consumerKey string, withPKCE bool,
) (*storage.ClientApplication, error) {
	key := c.appKey(consumerKey, withPKCE)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var app storage.ClientApplication
		if err := json.Unmarshal(data, &app); err == nil {
			return &app, nil
		}
		c.logger.Warn("discarding undecodable cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("client cache read failed", "key", key, "error", err)
	}

	app, err := c.ClientStore.GetByConsumerKey(ctx, consumerKey, withPKCE)
	if err != nil || app == nil {
		return app, err
	}

	if data, err := json.Marshal(app); err != nil {
		c.logger.Warn("failed to marshal client application for cache", "error", err)
	} else if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("client cache write failed", "key", key, "error", err)
	}
	return app, nil
}

// invalidate drops both cached forms of consumerKey. A failure here means
// the cache may serve the pre-write value until it expires, so it is
// reported to the caller.
func (c *ClientCache) invalidate(ctx context.Context, consumerKey string) error {
	if err := c.client.Del(ctx, c.appKey(consumerKey, false), c.appKey(consumerKey, true)).Err(); err != nil {
		return oserrors.NewStorageError(
			fmt.Sprintf("write to %q committed but cache invalidation failed", consumerKey), err)
	}
	return nil
}

// UpdateMetadata updates the wrapped store and invalidates the application.
func (c *ClientCache) UpdateMetadata(ctx context.Context, app *storage.ClientApplication, withPKCE bool) error {
	if err := c.ClientStore.UpdateMetadata(ctx, app, withPKCE); err != nil {
		return err
	}
	return c.invalidate(ctx, app.ConsumerKey)
}

// UpdateSecret updates the wrapped store and invalidates the application.
func (c *ClientCache) UpdateSecret(ctx context.Context, consumerKey, newSecret string) error {
	if err := c.ClientStore.UpdateSecret(ctx, consumerKey, newSecret); err != nil {
		return err
	}
	return c.invalidate(ctx, consumerKey)
}

// UpdateConsumerSecret updates the wrapped store and invalidates the application.
func (c *ClientCache) UpdateConsumerSecret(
	ctx context.Context, consumerKey, username string, tenantID int, userDomain, newSecret string,
) error {
	if err := c.ClientStore.UpdateConsumerSecret(ctx, consumerKey, username, tenantID, userDomain, newSecret); err != nil {
		return err
	}
	return c.invalidate(ctx, consumerKey)
}

// UpdateName updates the wrapped store and invalidates the application.
func (c *ClientCache) UpdateName(ctx context.Context, consumerKey, appName string) error {
	if err := c.ClientStore.UpdateName(ctx, consumerKey, appName); err != nil {
		return err
	}
	return c.invalidate(ctx, consumerKey)
}

// UpdateState updates the wrapped store and invalidates the application.
func (c *ClientCache) UpdateState(ctx context.Context, consumerKey string, state storage.AppState) error {
	if err := c.ClientStore.UpdateState(ctx, consumerKey, state); err != nil {
		return err
	}
	return c.invalidate(ctx, consumerKey)
}

// Deregister removes the application from the wrapped store and the cache.
func (c *ClientCache) Deregister(ctx context.Context, consumerKey string) error {
	if err := c.ClientStore.Deregister(ctx, consumerKey); err != nil {
		return err
	}
	return c.invalidate(ctx, consumerKey)
}
