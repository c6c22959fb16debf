// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"

	"github.com/stacklok/oauthstore/pkg/storage"
)

// ClientStore wraps inner so every call is traced and counted.
func (d *Decorator) ClientStore(inner storage.ClientStore) storage.ClientStore {
	return telemetryClientStore{d: d, inner: inner}
}

// OAuth1TokenStore wraps inner so every call is traced and counted.
func (d *Decorator) OAuth1TokenStore(inner storage.OAuth1TokenStore) storage.OAuth1TokenStore {
	return telemetryOAuth1Store{d: d, inner: inner}
}

// RequestObjectStore wraps inner so every call is traced and counted.
func (d *Decorator) RequestObjectStore(inner storage.RequestObjectStore) storage.RequestObjectStore {
	return telemetryRequestObjectStore{d: d, inner: inner}
}

type telemetryClientStore struct {
	d     *Decorator
	inner storage.ClientStore
}

var _ storage.ClientStore = telemetryClientStore{}

func (t telemetryClientStore) Register(
	ctx context.Context, app *storage.ClientApplication, opts storage.RegisterOptions,
) (retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "register", &retErr)
	defer done()
	return t.inner.Register(ctx, app, opts)
}

func (t telemetryClientStore) RegisterConsumer(ctx context.Context, app *storage.ClientApplication) (retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "register_consumer", &retErr)
	defer done()
	return t.inner.RegisterConsumer(ctx, app)
}

func (t telemetryClientStore) GetByConsumerKey(
	ctx context.Context, consumerKey string, withPKCE bool,
) (_ *storage.ClientApplication, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "get_by_consumer_key", &retErr)
	defer done()
	return t.inner.GetByConsumerKey(ctx, consumerKey, withPKCE)
}

func (t telemetryClientStore) GetByAppName(
	ctx context.Context, appName string, tenantID int, withPKCE bool,
) (_ *storage.ClientApplication, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "get_by_app_name", &retErr)
	defer done()
	return t.inner.GetByAppName(ctx, appName, tenantID, withPKCE)
}

func (t telemetryClientStore) ListByOwner(
	ctx context.Context, username, userDomain string, tenantID int, withPKCE bool,
) (_ []storage.ClientApplication, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "list_by_owner", &retErr)
	defer done()
	return t.inner.ListByOwner(ctx, username, userDomain, tenantID, withPKCE)
}

func (t telemetryClientStore) ListByOwnerUsernames(
	ctx context.Context, tenantAwareUsername, tenantUnawareUsername string, tenantID int, withPKCE bool,
) (_ []storage.ClientApplication, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "list_by_owner_usernames", &retErr)
	defer done()
	return t.inner.ListByOwnerUsernames(ctx, tenantAwareUsername, tenantUnawareUsername, tenantID, withPKCE)
}

func (t telemetryClientStore) ListAudiences(
	ctx context.Context, tenantID int, consumerKey string,
) (_ []string, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "list_audiences", &retErr)
	defer done()
	return t.inner.ListAudiences(ctx, tenantID, consumerKey)
}

func (t telemetryClientStore) ListAudiencesByAppName(
	ctx context.Context, tenantID int, appName string,
) (_ []string, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "list_audiences_by_app_name", &retErr)
	defer done()
	return t.inner.ListAudiencesByAppName(ctx, tenantID, appName)
}

func (t telemetryClientStore) RemoveAudience(
	ctx context.Context, tenantID int, consumerKey, audience string,
) (retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "remove_audience", &retErr)
	defer done()
	return t.inner.RemoveAudience(ctx, tenantID, consumerKey, audience)
}

func (t telemetryClientStore) UpdateMetadata(
	ctx context.Context, app *storage.ClientApplication, withPKCE bool,
) (retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "update_metadata", &retErr)
	defer done()
	return t.inner.UpdateMetadata(ctx, app, withPKCE)
}

func (t telemetryClientStore) UpdateSecret(ctx context.Context, consumerKey, newSecret string) (retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "update_secret", &retErr)
	defer done()
	return t.inner.UpdateSecret(ctx, consumerKey, newSecret)
}

func (t telemetryClientStore) UpdateConsumerSecret(
	ctx context.Context, consumerKey, username string, tenantID int, userDomain, newSecret string,
) (retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "update_consumer_secret", &retErr)
	defer done()
	return t.inner.UpdateConsumerSecret(ctx, consumerKey, username, tenantID, userDomain, newSecret)
}

func (t telemetryClientStore) UpdateName(ctx context.Context, consumerKey, appName string) (retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "update_name", &retErr)
	defer done()
	return t.inner.UpdateName(ctx, consumerKey, appName)
}

func (t telemetryClientStore) UpdateState(
	ctx context.Context, consumerKey string, state storage.AppState,
) (retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "update_state", &retErr)
	defer done()
	return t.inner.UpdateState(ctx, consumerKey, state)
}

func (t telemetryClientStore) GetState(ctx context.Context, consumerKey string) (_ storage.AppState, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "get_state", &retErr)
	defer done()
	return t.inner.GetState(ctx, consumerKey)
}

func (t telemetryClientStore) GetAppName(ctx context.Context, consumerKey string) (_ string, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "get_app_name", &retErr)
	defer done()
	return t.inner.GetAppName(ctx, consumerKey)
}

func (t telemetryClientStore) GetConsumerSecret(ctx context.Context, consumerKey string) (_ string, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "get_consumer_secret", &retErr)
	defer done()
	return t.inner.GetConsumerSecret(ctx, consumerKey)
}

func (t telemetryClientStore) GetCallbackURL(ctx context.Context, consumerKey string) (_ string, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "get_callback_url", &retErr)
	defer done()
	return t.inner.GetCallbackURL(ctx, consumerKey)
}

func (t telemetryClientStore) GetUsernameForKeyAndSecret(
	ctx context.Context, consumerKey, consumerSecret string,
) (_ string, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "get_username_for_key_and_secret", &retErr)
	defer done()
	return t.inner.GetUsernameForKeyAndSecret(ctx, consumerKey, consumerSecret)
}

func (t telemetryClientStore) Deregister(ctx context.Context, consumerKey string) (retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "deregister", &retErr)
	defer done()
	return t.inner.Deregister(ctx, consumerKey)
}

func (t telemetryClientStore) ExistsByNameAndOwner(
	ctx context.Context, username string, tenantID int, userDomain, appName string,
) (_ bool, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "exists_by_name_and_owner", &retErr)
	defer done()
	return t.inner.ExistsByNameAndOwner(ctx, username, tenantID, userDomain, appName)
}

func (t telemetryClientStore) ExistsByConsumerKey(ctx context.Context, consumerKey string) (_ bool, retErr error) {
	ctx, done := t.d.record(ctx, StoreClients, "exists_by_consumer_key", &retErr)
	defer done()
	return t.inner.ExistsByConsumerKey(ctx, consumerKey)
}

type telemetryOAuth1Store struct {
	d     *Decorator
	inner storage.OAuth1TokenStore
}

var _ storage.OAuth1TokenStore = telemetryOAuth1Store{}

func (t telemetryOAuth1Store) IssueRequestToken(
	ctx context.Context, params storage.RequestTokenParams,
) (retErr error) {
	ctx, done := t.d.record(ctx, StoreOAuth1, "issue_request_token", &retErr)
	defer done()
	return t.inner.IssueRequestToken(ctx, params)
}

func (t telemetryOAuth1Store) AuthorizeRequestToken(
	ctx context.Context, token, verifier, authorizedUser string,
) (retErr error) {
	ctx, done := t.d.record(ctx, StoreOAuth1, "authorize_request_token", &retErr)
	defer done()
	return t.inner.AuthorizeRequestToken(ctx, token, verifier, authorizedUser)
}

func (t telemetryOAuth1Store) GetRequestToken(
	ctx context.Context, token string,
) (_ *storage.RequestToken, retErr error) {
	ctx, done := t.d.record(ctx, StoreOAuth1, "get_request_token", &retErr)
	defer done()
	return t.inner.GetRequestToken(ctx, token)
}

func (t telemetryOAuth1Store) GetRequestTokenCallback(ctx context.Context, token string) (_ string, retErr error) {
	ctx, done := t.d.record(ctx, StoreOAuth1, "get_request_token_callback", &retErr)
	defer done()
	return t.inner.GetRequestTokenCallback(ctx, token)
}

func (t telemetryOAuth1Store) GetRequestTokenSecret(ctx context.Context, token string) (_ string, retErr error) {
	ctx, done := t.d.record(ctx, StoreOAuth1, "get_request_token_secret", &retErr)
	defer done()
	return t.inner.GetRequestTokenSecret(ctx, token)
}

func (t telemetryOAuth1Store) GetConsumerKeyForRequestToken(
	ctx context.Context, token string,
) (_, _ string, retErr error) {
	ctx, done := t.d.record(ctx, StoreOAuth1, "get_consumer_key_for_request_token", &retErr)
	defer done()
	return t.inner.GetConsumerKeyForRequestToken(ctx, token)
}

func (t telemetryOAuth1Store) RemoveRequestToken(ctx context.Context, token string) (retErr error) {
	ctx, done := t.d.record(ctx, StoreOAuth1, "remove_request_token", &retErr)
	defer done()
	return t.inner.RemoveRequestToken(ctx, token)
}

func (t telemetryOAuth1Store) RedeemForAccessToken(
	ctx context.Context, requestToken, accessToken, accessSecret string,
) (_ *storage.AccessToken, retErr error) {
	ctx, done := t.d.record(ctx, StoreOAuth1, "redeem_for_access_token", &retErr)
	defer done()
	return t.inner.RedeemForAccessToken(ctx, requestToken, accessToken, accessSecret)
}

func (t telemetryOAuth1Store) Dereference(
	ctx context.Context, accessToken string,
) (_ *storage.AccessTokenInfo, retErr error) {
	ctx, done := t.d.record(ctx, StoreOAuth1, "dereference", &retErr)
	defer done()
	return t.inner.Dereference(ctx, accessToken)
}

type telemetryRequestObjectStore struct {
	d     *Decorator
	inner storage.RequestObjectStore
}

var _ storage.RequestObjectStore = telemetryRequestObjectStore{}

func (t telemetryRequestObjectStore) InsertReference(
	ctx context.Context, consumerKey, sessionDataKey string, claims [][]storage.RequestedClaim,
) (_ int64, retErr error) {
	ctx, done := t.d.record(ctx, StoreRequestObjects, "insert_reference", &retErr)
	defer done()
	return t.inner.InsertReference(ctx, consumerKey, sessionDataKey, claims)
}

func (t telemetryRequestObjectStore) BindToCode(ctx context.Context, sessionDataKey, codeID string) (retErr error) {
	ctx, done := t.d.record(ctx, StoreRequestObjects, "bind_to_code", &retErr)
	defer done()
	return t.inner.BindToCode(ctx, sessionDataKey, codeID)
}

func (t telemetryRequestObjectStore) BindToToken(ctx context.Context, sessionDataKey, tokenID string) (retErr error) {
	ctx, done := t.d.record(ctx, StoreRequestObjects, "bind_to_token", &retErr)
	defer done()
	return t.inner.BindToToken(ctx, sessionDataKey, tokenID)
}

func (t telemetryRequestObjectStore) PromoteCodeToToken(ctx context.Context, codeID, tokenID string) (retErr error) {
	ctx, done := t.d.record(ctx, StoreRequestObjects, "promote_code_to_token", &retErr)
	defer done()
	return t.inner.PromoteCodeToToken(ctx, codeID, tokenID)
}

func (t telemetryRequestObjectStore) Refresh(ctx context.Context, oldTokenID, newTokenID string) (retErr error) {
	ctx, done := t.d.record(ctx, StoreRequestObjects, "refresh", &retErr)
	defer done()
	return t.inner.Refresh(ctx, oldTokenID, newTokenID)
}

func (t telemetryRequestObjectStore) DeleteByTokenID(ctx context.Context, tokenID string) (retErr error) {
	ctx, done := t.d.record(ctx, StoreRequestObjects, "delete_by_token_id", &retErr)
	defer done()
	return t.inner.DeleteByTokenID(ctx, tokenID)
}

func (t telemetryRequestObjectStore) DeleteByCodeID(ctx context.Context, codeID string) (retErr error) {
	ctx, done := t.d.record(ctx, StoreRequestObjects, "delete_by_code_id", &retErr)
	defer done()
	return t.inner.DeleteByCodeID(ctx, codeID)
}

func (t telemetryRequestObjectStore) ClaimsBySessionKey(
	ctx context.Context, sessionDataKey string, isUserInfo bool,
) (_ []storage.RequestedClaim, retErr error) {
	ctx, done := t.d.record(ctx, StoreRequestObjects, "claims_by_session_key", &retErr)
	defer done()
	return t.inner.ClaimsBySessionKey(ctx, sessionDataKey, isUserInfo)
}

func (t telemetryRequestObjectStore) ClaimsByAccessToken(
	ctx context.Context, accessToken string, isUserInfo bool,
) (_ []storage.RequestedClaim, retErr error) {
	ctx, done := t.d.record(ctx, StoreRequestObjects, "claims_by_access_token", &retErr)
	defer done()
	return t.inner.ClaimsByAccessToken(ctx, accessToken, isUserInfo)
}

func (t telemetryRequestObjectStore) GetReferenceBySessionKey(
	ctx context.Context, sessionDataKey string,
) (_ *storage.RequestObjectReference, retErr error) {
	ctx, done := t.d.record(ctx, StoreRequestObjects, "get_reference_by_session_key", &retErr)
	defer done()
	return t.inner.GetReferenceBySessionKey(ctx, sessionDataKey)
}

func (t telemetryRequestObjectStore) GetReferenceByTokenID(
	ctx context.Context, tokenID string,
) (_ *storage.RequestObjectReference, retErr error) {
	ctx, done := t.d.record(ctx, StoreRequestObjects, "get_reference_by_token_id", &retErr)
	defer done()
	return t.inner.GetReferenceByTokenID(ctx, tokenID)
}
