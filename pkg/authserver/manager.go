// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package authserver adapts the client registry to the storage interfaces
// of the fosite OAuth 2.0 framework.
package authserver

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ory/fosite"
	"golang.org/x/crypto/bcrypt"

	"github.com/stacklok/oauthstore/pkg/logger"
	"github.com/stacklok/oauthstore/pkg/storage"
)

// DefaultScopes are granted to every client unless WithScopes overrides them.
var DefaultScopes = []string{"openid", "profile", "email", "offline_access"}

// ClientManager implements fosite.ClientManager on a storage.ClientStore.
//
// fosite compares client secrets against a bcrypt hash, while the registry
// stores the secret itself. Hashes are computed on first use and reused
// until the stored secret changes.
type ClientManager struct {
	store      storage.ClientStore
	scopes     []string
	bcryptCost int
	logger     *slog.Logger

	mu     sync.Mutex
	hashes map[string]hashedSecret
	// jtis maps a client assertion JTI to its expiry.
	jtis map[string]time.Time
}

type hashedSecret struct {
	secret string
	hash   []byte
}

// Option configures a ClientManager.
type Option func(*ClientManager)

// WithScopes sets the scopes every client may request.
func WithScopes(scopes ...string) Option {
	return func(m *ClientManager) { m.scopes = scopes }
}

// WithBcryptCost sets the cost used to hash client secrets.
func WithBcryptCost(cost int) Option {
	return func(m *ClientManager) { m.bcryptCost = cost }
}

// NewClientManager creates a ClientManager reading from store.
func NewClientManager(store storage.ClientStore, opts ...Option) *ClientManager {
	m := &ClientManager{
		store:      store,
		scopes:     DefaultScopes,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger.ForComponent("authserver.clients"),
		hashes:     make(map[string]hashedSecret),
		jtis:       make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ fosite.ClientManager = (*ClientManager)(nil)

// GetClient loads the client registered under id. Unknown clients return
// fosite.ErrNotFound and revoked clients fosite.ErrInvalidClient.
func (m *ClientManager) GetClient(ctx context.Context, id string) (fosite.Client, error) {
	app, err := m.store.GetByConsumerKey(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if app == nil {
		m.logger.Debug("client not found", "client_id", id)
		return nil, fmt.Errorf("%w: %w", storage.ErrUnknownConsumer, fosite.ErrNotFound.WithHint("Client not found"))
	}
	if app.State == storage.AppStateRevoked {
		return nil, fosite.ErrInvalidClient.WithHint("The client has been revoked.")
	}

	audiences, err := m.store.ListAudiences(ctx, app.TenantID, app.ConsumerKey)
	if err != nil {
		return nil, err
	}
	app.Audiences = audiences

	client := &Client{app: *app, scopes: m.scopes}
	if app.ConsumerSecret != "" {
		hash, err := m.hashFor(app.ConsumerKey, app.ConsumerSecret)
		if err != nil {
			return nil, err
		}
		client.hashedSecret = hash
	}
	return client, nil
}

func (m *ClientManager) hashFor(consumerKey, secret string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.hashes[consumerKey]; ok && subtle.ConstantTimeCompare([]byte(h.secret), []byte(secret)) == 1 {
		return h.hash, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), m.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash client secret: %w", err)
	}
	m.hashes[consumerKey] = hashedSecret{secret: secret, hash: hash}
	return hash, nil
}

// ClientAssertionJWTValid returns fosite.ErrJTIKnown if jti was seen and has
// not expired.
func (m *ClientManager) ClientAssertionJWTValid(_ context.Context, jti string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if exp, ok := m.jtis[jti]; ok && time.Now().Before(exp) {
		return fosite.ErrJTIKnown
	}
	return nil
}

// SetClientAssertionJWT marks jti as used until exp. Expired entries are
// dropped first.
func (m *ClientManager) SetClientAssertionJWT(_ context.Context, jti string, exp time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for k, v := range m.jtis {
		if now.After(v) {
			delete(m.jtis, k)
		}
	}
	m.jtis[jti] = exp
	return nil
}
