// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oserrors "github.com/stacklok/oauthstore/pkg/errors"
	"github.com/stacklok/oauthstore/pkg/storage"
)

func newOAuth1Fixture(t *testing.T) (*DB, *OAuth1Store, *storage.ClientApplication) {
	t.Helper()
	db := newTestDB(t)
	app := registerTestApp(t, NewClientStore(db), "consumer-1")
	return db, NewOAuth1Store(db), app
}

func TestOAuth1Store_IssueForUnknownConsumer(t *testing.T) {
	t.Parallel()
	db, store, _ := newOAuth1Fixture(t)

	err := store.IssueRequestToken(t.Context(), storage.RequestTokenParams{
		ConsumerKey: "unknown", Token: "rt", Secret: "rs",
	})
	require.Error(t, err)
	assert.True(t, oserrors.IsAdmin(err))
	assert.ErrorIs(t, err, storage.ErrUnknownConsumer)
	assert.Equal(t, 0, countRows(t, db, "oauth1a_request_token", ""))
}

func TestOAuth1Store_IssueValidation(t *testing.T) {
	t.Parallel()
	_, store, _ := newOAuth1Fixture(t)

	err := store.IssueRequestToken(t.Context(), storage.RequestTokenParams{ConsumerKey: "consumer-1", Token: "rt"})
	assert.ErrorIs(t, err, storage.ErrInvalidInput)
}

func TestOAuth1Store_Lifecycle(t *testing.T) {
	t.Parallel()
	db, store, app := newOAuth1Fixture(t)
	ctx := t.Context()

	require.NoError(t, store.IssueRequestToken(ctx, storage.RequestTokenParams{
		ConsumerKey: "consumer-1",
		Token:       "rt-1",
		Secret:      "rs-1",
		CallbackURL: "https://rp.example.com/oauth1",
		Scope:       "read",
	}))

	rt, err := store.GetRequestToken(ctx, "rt-1")
	require.NoError(t, err)
	assert.Equal(t, &storage.RequestToken{
		Token:         "rt-1",
		Secret:        "rs-1",
		ConsumerKeyID: app.ID,
		CallbackURL:   "https://rp.example.com/oauth1",
		Scope:         "read",
	}, rt)

	callback, err := store.GetRequestTokenCallback(ctx, "rt-1")
	require.NoError(t, err)
	assert.Equal(t, "https://rp.example.com/oauth1", callback)

	secret, err := store.GetRequestTokenSecret(ctx, "rt-1")
	require.NoError(t, err)
	assert.Equal(t, "rs-1", secret)

	key, scope, err := store.GetConsumerKeyForRequestToken(ctx, "rt-1")
	require.NoError(t, err)
	assert.Equal(t, "consumer-1", key)
	assert.Equal(t, "read", scope)

	require.NoError(t, store.AuthorizeRequestToken(ctx, "rt-1", "verifier-1", "bob"))
	// re-authorizing overwrites the verifier and user
	require.NoError(t, store.AuthorizeRequestToken(ctx, "rt-1", "verifier-2", "carol"))

	rt, err = store.GetRequestToken(ctx, "rt-1")
	require.NoError(t, err)
	assert.True(t, rt.Authorized)
	assert.Equal(t, "verifier-2", rt.Verifier)
	assert.Equal(t, "carol", rt.AuthorizedUser)

	at, err := store.RedeemForAccessToken(ctx, "rt-1", "at-1", "as-1")
	require.NoError(t, err)
	assert.Equal(t, &storage.AccessToken{
		Token:          "at-1",
		Secret:         "as-1",
		ConsumerKeyID:  app.ID,
		Scope:          "read",
		AuthorizedUser: "carol",
	}, at)
	assert.Equal(t, 0, countRows(t, db, "oauth1a_request_token", ""))

	info, err := store.Dereference(ctx, "at-1")
	require.NoError(t, err)
	assert.Equal(t, &storage.AccessTokenInfo{Scope: "read", Secret: "as-1", AuthorizedUser: "carol"}, info)
}

func TestOAuth1Store_RedeemRequiresAuthorization(t *testing.T) {
	t.Parallel()
	db, store, _ := newOAuth1Fixture(t)
	ctx := t.Context()

	require.NoError(t, store.IssueRequestToken(ctx, storage.RequestTokenParams{
		ConsumerKey: "consumer-1", Token: "rt-1", Secret: "rs-1",
	}))

	_, err := store.RedeemForAccessToken(ctx, "rt-1", "at-1", "as-1")
	assert.True(t, oserrors.IsAdmin(err))
	assert.ErrorIs(t, err, storage.ErrTokenNotAuthorized)
	assert.Equal(t, 1, countRows(t, db, "oauth1a_request_token", ""))
	assert.Equal(t, 0, countRows(t, db, "oauth1a_access_token", ""))

	_, err = store.RedeemForAccessToken(ctx, "missing", "at-1", "as-1")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	_, err = store.RedeemForAccessToken(ctx, "rt-1", "", "as-1")
	assert.ErrorIs(t, err, storage.ErrInvalidInput)
}

func TestOAuth1Store_RedeemDuplicateAccessTokenRollsBack(t *testing.T) {
	t.Parallel()
	db, store, _ := newOAuth1Fixture(t)
	ctx := t.Context()

	for _, token := range []string{"rt-1", "rt-2"} {
		require.NoError(t, store.IssueRequestToken(ctx, storage.RequestTokenParams{
			ConsumerKey: "consumer-1", Token: token, Secret: "secret",
		}))
		require.NoError(t, store.AuthorizeRequestToken(ctx, token, "v", "bob"))
	}
	_, err := store.RedeemForAccessToken(ctx, "rt-1", "at-1", "as-1")
	require.NoError(t, err)

	_, err = store.RedeemForAccessToken(ctx, "rt-2", "at-1", "as-2")
	require.Error(t, err)
	assert.True(t, oserrors.IsStorage(err))
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	// the second request token survives the failed exchange
	rt, err := store.GetRequestToken(ctx, "rt-2")
	require.NoError(t, err)
	assert.NotNil(t, rt)
	assert.Equal(t, 1, countRows(t, db, "oauth1a_access_token", ""))
}

func TestOAuth1Store_Misses(t *testing.T) {
	t.Parallel()
	_, store, _ := newOAuth1Fixture(t)
	ctx := t.Context()

	rt, err := store.GetRequestToken(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, rt)

	secret, err := store.GetRequestTokenSecret(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, secret)

	key, scope, err := store.GetConsumerKeyForRequestToken(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, key)
	assert.Empty(t, scope)

	info, err := store.Dereference(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, info)

	err = store.AuthorizeRequestToken(ctx, "missing", "v", "bob")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestOAuth1Store_RemoveRequestToken(t *testing.T) {
	t.Parallel()
	_, store, _ := newOAuth1Fixture(t)
	ctx := t.Context()

	require.NoError(t, store.IssueRequestToken(ctx, storage.RequestTokenParams{
		ConsumerKey: "consumer-1", Token: "rt-1", Secret: "rs-1",
	}))
	require.NoError(t, store.RemoveRequestToken(ctx, "rt-1"))
	require.NoError(t, store.RemoveRequestToken(ctx, "rt-1"))

	rt, err := store.GetRequestToken(ctx, "rt-1")
	require.NoError(t, err)
	assert.Nil(t, rt)
}
