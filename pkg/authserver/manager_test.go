// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package authserver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ory/fosite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	oserrors "github.com/stacklok/oauthstore/pkg/errors"
	"github.com/stacklok/oauthstore/pkg/storage"
	"github.com/stacklok/oauthstore/pkg/storage/mocks"
)

func testApplication() *storage.ClientApplication {
	return &storage.ClientApplication{
		ConsumerKey:    "c1",
		ConsumerSecret: "my-secret",
		Username:       "alice",
		TenantID:       -1234,
		CallbackURL:    "https://rp.example.com/callback",
		GrantTypes:     []string{"authorization_code", "refresh_token"},
		PKCEMandatory:  true,
		State:          storage.AppStateActive,
	}
}

func newTestManager(t *testing.T) (*ClientManager, *mocks.MockClientStore) {
	t.Helper()
	store := mocks.NewMockClientStore(gomock.NewController(t))
	return NewClientManager(store, WithBcryptCost(bcrypt.MinCost)), store
}

func TestClientManager_GetClient(t *testing.T) {
	t.Parallel()
	m, store := newTestManager(t)

	store.EXPECT().GetByConsumerKey(gomock.Any(), "c1", true).Return(testApplication(), nil)
	store.EXPECT().ListAudiences(gomock.Any(), -1234, "c1").Return([]string{"https://api.example.com"}, nil)

	got, err := m.GetClient(t.Context(), "c1")
	require.NoError(t, err)

	assert.Equal(t, "c1", got.GetID())
	assert.False(t, got.IsPublic())
	assert.Equal(t, []string{"https://rp.example.com/callback"}, got.GetRedirectURIs())
	assert.ElementsMatch(t, []string{"authorization_code", "refresh_token"}, got.GetGrantTypes())
	assert.ElementsMatch(t, []string{"code"}, got.GetResponseTypes())
	assert.ElementsMatch(t, DefaultScopes, got.GetScopes())
	assert.ElementsMatch(t, []string{"https://api.example.com"}, got.GetAudience())

	// the stored secret is exposed only as a bcrypt hash
	require.NoError(t, bcrypt.CompareHashAndPassword(got.GetHashedSecret(), []byte("my-secret")))

	client, ok := got.(*Client)
	require.True(t, ok)
	assert.True(t, client.PKCEMandatory())
	assert.False(t, client.PKCESupportsPlain())
}

func TestClientManager_HashReusedUntilSecretChanges(t *testing.T) {
	t.Parallel()
	m, store := newTestManager(t)
	ctx := t.Context()

	rotated := testApplication()
	rotated.ConsumerSecret = "rotated"
	gomock.InOrder(
		store.EXPECT().GetByConsumerKey(gomock.Any(), "c1", true).Return(testApplication(), nil),
		store.EXPECT().GetByConsumerKey(gomock.Any(), "c1", true).Return(testApplication(), nil),
		store.EXPECT().GetByConsumerKey(gomock.Any(), "c1", true).Return(rotated, nil),
	)
	store.EXPECT().ListAudiences(gomock.Any(), gomock.Any(), "c1").Return([]string{}, nil).Times(3)

	first, err := m.GetClient(ctx, "c1")
	require.NoError(t, err)
	second, err := m.GetClient(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, first.GetHashedSecret(), second.GetHashedSecret())

	third, err := m.GetClient(ctx, "c1")
	require.NoError(t, err)
	assert.NotEqual(t, first.GetHashedSecret(), third.GetHashedSecret())
	require.NoError(t, bcrypt.CompareHashAndPassword(third.GetHashedSecret(), []byte("rotated")))
}

func TestClientManager_PublicClient(t *testing.T) {
	t.Parallel()
	m, store := newTestManager(t)

	app := testApplication()
	app.ConsumerSecret = ""
	store.EXPECT().GetByConsumerKey(gomock.Any(), "c1", true).Return(app, nil)
	store.EXPECT().ListAudiences(gomock.Any(), gomock.Any(), "c1").Return([]string{}, nil)

	got, err := m.GetClient(t.Context(), "c1")
	require.NoError(t, err)
	assert.True(t, got.IsPublic())
	assert.Nil(t, got.GetHashedSecret())
}

func TestClientManager_GetClientErrors(t *testing.T) {
	t.Parallel()

	revoked := testApplication()
	revoked.State = storage.AppStateRevoked
	storeErr := oserrors.NewStorageError("reading", errors.New("db down"))

	tests := []struct {
		name    string
		app     *storage.ClientApplication
		err     error
		wantErr error
	}{
		{name: "unknown", wantErr: fosite.ErrNotFound},
		{name: "revoked", app: revoked, wantErr: fosite.ErrInvalidClient},
		{name: "store failure", err: storeErr, wantErr: storeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, store := newTestManager(t)
			store.EXPECT().GetByConsumerKey(gomock.Any(), "c1", true).Return(tt.app, tt.err)

			_, err := m.GetClient(t.Context(), "c1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientManager_ClientAssertionJWT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(context.Context, *ClientManager)
		jti     string
		wantErr error
	}{
		{"unknown JTI is valid", nil, "unknown-jti", nil},
		{"known JTI is invalid", func(ctx context.Context, m *ClientManager) {
			_ = m.SetClientAssertionJWT(ctx, "test-jti", time.Now().Add(time.Hour))
		}, "test-jti", fosite.ErrJTIKnown},
		{"expired JTI is valid", func(ctx context.Context, m *ClientManager) {
			_ = m.SetClientAssertionJWT(ctx, "expired-jti", time.Now().Add(-time.Hour))
		}, "expired-jti", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, _ := newTestManager(t)
			ctx := t.Context()
			if tt.setup != nil {
				tt.setup(ctx, m)
			}
			err := m.ClientAssertionJWTValid(ctx, tt.jti)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}

	t.Run("cleanup expired JTIs on set", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestManager(t)
		m.mu.Lock()
		m.jtis["old-jti"] = time.Now().Add(-time.Hour)
		m.mu.Unlock()

		require.NoError(t, m.SetClientAssertionJWT(t.Context(), "new-jti", time.Now().Add(time.Hour)))

		m.mu.Lock()
		_, exists := m.jtis["old-jti"]
		m.mu.Unlock()
		assert.False(t, exists, "expired JTI should have been cleaned up")
	})
}
