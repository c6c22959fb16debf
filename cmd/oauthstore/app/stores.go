// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/oauthstore/pkg/config"
	"github.com/stacklok/oauthstore/pkg/logger"
	"github.com/stacklok/oauthstore/pkg/storage"
	"github.com/stacklok/oauthstore/pkg/storage/cache"
	"github.com/stacklok/oauthstore/pkg/storage/sqlstore"
	"github.com/stacklok/oauthstore/pkg/storage/telemetry"
)

// storeSet is the wired stack of stores a command works with. Client lookups
// go through the Redis cache when it is enabled; telemetry wraps the outside.
type storeSet struct {
	db             *sqlstore.DB
	clients        storage.ClientStore
	oauth1         storage.OAuth1TokenStore
	requestObjects storage.RequestObjectStore

	// closers run in reverse order.
	closers []func(context.Context) error
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(viper.New(), path)
}

func openStores(ctx context.Context, cfg *config.Config) (*storeSet, error) {
	db, err := sqlstore.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	s := &storeSet{
		db:      db,
		clients: sqlstore.NewClientStore(db),
		oauth1:  sqlstore.NewOAuth1Store(db),
		requestObjects: sqlstore.NewRequestObjectStore(db,
			sqlstore.WithMissingKeyPolicy(sqlstore.MissingKeyPolicy(cfg.RequestObject.OnMissingKey)),
			sqlstore.WithUnknownClaimTypePolicy(sqlstore.UnknownClaimTypePolicy(cfg.RequestObject.UnknownClaimType)),
		),
	}
	s.closers = append(s.closers, func(context.Context) error { return db.Close() })

	if cfg.Cache.Enabled {
		cached, closeCache, err := cache.NewFromConfig(ctx, s.clients, cfg.Cache)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.clients = cached
		s.closers = append(s.closers, func(context.Context) error { return closeCache() })
	}

	if cfg.Telemetry.Enabled {
		providers := telemetry.NewLoggingProviders(cfg.Telemetry.ServiceName, logger.ForComponent("telemetry"))
		s.closers = append(s.closers, providers.Shutdown)

		decorator, err := telemetry.NewDecorator(providers.MeterProvider, providers.TracerProvider)
		if err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("failed to create telemetry decorator: %w", err)
		}
		s.clients = decorator.ClientStore(s.clients)
		s.oauth1 = decorator.OAuth1TokenStore(s.oauth1)
		s.requestObjects = decorator.RequestObjectStore(s.requestObjects)
	}

	logger.Debugw("stores opened",
		"driver", cfg.Database.Driver,
		"cache", cfg.Cache.Enabled,
		"telemetry", cfg.Telemetry.Enabled)
	return s, nil
}

// Close releases everything openStores acquired.
func (s *storeSet) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// withStores loads the configuration, opens the stores and runs fn with a
// context cancelled on SIGINT or SIGTERM.
func withStores(cmd *cobra.Command, fn func(context.Context, *storeSet) error) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(context.WithoutCancel(ctx)); err != nil {
			logger.Warnf("Failed to close stores: %v", err)
		}
	}()

	return fn(ctx, s)
}
