// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package storage defines the persistence contract for OAuth client
// registrations, OAuth 1.0a tokens and OIDC request-object claims.
//
// Lookups that match no row return a nil record or an empty slice, not an
// error. Every error returned by an implementation is an *errors.Error of
// type admin or storage (see pkg/errors).
package storage

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks -source=interfaces.go

// ClientStore manages registered OAuth client applications.
type ClientStore interface {
	// Register stores a new client application in one transaction.
	Register(ctx context.Context, app *ClientApplication, opts RegisterOptions) error
	// RegisterConsumer stores a bare OAuth consumer without application metadata.
	RegisterConsumer(ctx context.Context, app *ClientApplication) error

	// GetByConsumerKey returns the application for a consumer key, or nil.
	GetByConsumerKey(ctx context.Context, consumerKey string, withPKCE bool) (*ClientApplication, error)
	// GetByAppName returns the application registered under a name in a tenant, or nil.
	GetByAppName(ctx context.Context, appName string, tenantID int, withPKCE bool) (*ClientApplication, error)
	// ListByOwner returns the applications owned by a user.
	ListByOwner(ctx context.Context, username, userDomain string, tenantID int, withPKCE bool) ([]ClientApplication, error)
	// ListByOwnerUsernames returns the applications owned by either form of a
	// username (tenant-aware or tenant-unaware) in a tenant.
	ListByOwnerUsernames(
		ctx context.Context, tenantAwareUsername, tenantUnawareUsername string, tenantID int, withPKCE bool,
	) ([]ClientApplication, error)

	// ListAudiences returns the audience values of an application.
	ListAudiences(ctx context.Context, tenantID int, consumerKey string) ([]string, error)
	// ListAudiencesByAppName returns the audience values of a named application.
	ListAudiencesByAppName(ctx context.Context, tenantID int, appName string) ([]string, error)
	// RemoveAudience deletes a single audience value.
	RemoveAudience(ctx context.Context, tenantID int, consumerKey, audience string) error

	// UpdateMetadata rewrites the mutable metadata of an application. The
	// update only applies while app.ConsumerSecret matches the stored secret.
	UpdateMetadata(ctx context.Context, app *ClientApplication, withPKCE bool) error
	// UpdateSecret replaces the consumer secret.
	UpdateSecret(ctx context.Context, consumerKey, newSecret string) error
	// UpdateConsumerSecret replaces the secret of a consumer owned by the given user.
	UpdateConsumerSecret(ctx context.Context, consumerKey, username string, tenantID int, userDomain, newSecret string) error
	// UpdateName renames an application.
	UpdateName(ctx context.Context, consumerKey, appName string) error
	// UpdateState changes the lifecycle state of an application.
	UpdateState(ctx context.Context, consumerKey string, state AppState) error

	// GetState returns the lifecycle state, or "" when the key is unknown.
	GetState(ctx context.Context, consumerKey string) (AppState, error)
	// GetAppName returns the application name, or "" when the key is unknown.
	GetAppName(ctx context.Context, consumerKey string) (string, error)
	// GetConsumerSecret returns the consumer secret, or "" when the key is unknown.
	GetConsumerSecret(ctx context.Context, consumerKey string) (string, error)
	// GetCallbackURL returns the registered callback URL, or "" when the key is unknown.
	GetCallbackURL(ctx context.Context, consumerKey string) (string, error)
	// GetUsernameForKeyAndSecret returns the owner of a key/secret pair, or "".
	GetUsernameForKeyAndSecret(ctx context.Context, consumerKey, consumerSecret string) (string, error)

	// Deregister removes an application together with its audiences, its
	// request-object references and its dependent tokens in one transaction.
	Deregister(ctx context.Context, consumerKey string) error

	// ExistsByNameAndOwner reports whether the owner already registered appName.
	ExistsByNameAndOwner(ctx context.Context, username string, tenantID int, userDomain, appName string) (bool, error)
	// ExistsByConsumerKey reports whether the consumer key is taken.
	ExistsByConsumerKey(ctx context.Context, consumerKey string) (bool, error)
}

// OAuth1TokenStore manages OAuth 1.0a request and access tokens.
type OAuth1TokenStore interface {
	// IssueRequestToken stores an unauthorized request token for a consumer.
	IssueRequestToken(ctx context.Context, params RequestTokenParams) error
	// AuthorizeRequestToken records the verifier and approving user.
	AuthorizeRequestToken(ctx context.Context, token, verifier, authorizedUser string) error
	// GetRequestToken returns the full request token row, or nil.
	GetRequestToken(ctx context.Context, token string) (*RequestToken, error)
	// GetRequestTokenCallback returns the callback URL of a request token, or "".
	GetRequestTokenCallback(ctx context.Context, token string) (string, error)
	// GetRequestTokenSecret returns the secret of a request token, or "".
	GetRequestTokenSecret(ctx context.Context, token string) (string, error)
	// GetConsumerKeyForRequestToken returns the consumer key and scope of a request token.
	GetConsumerKeyForRequestToken(ctx context.Context, token string) (consumerKey, scope string, err error)
	// RemoveRequestToken deletes a request token.
	RemoveRequestToken(ctx context.Context, token string) error
	// RedeemForAccessToken exchanges an authorized request token for an access token.
	RedeemForAccessToken(ctx context.Context, requestToken, accessToken, accessSecret string) (*AccessToken, error)
	// Dereference returns scope, secret and authorizing user of an access token, or nil.
	Dereference(ctx context.Context, accessToken string) (*AccessTokenInfo, error)
}

// RequestObjectStore manages OIDC request-object references and their claims.
type RequestObjectStore interface {
	// InsertReference stores the reference for an authorization session and
	// the claims its request object demanded. It returns the reference id.
	InsertReference(ctx context.Context, consumerKey, sessionDataKey string, claims [][]RequestedClaim) (int64, error)
	// BindToCode points the session's reference at an authorization code.
	BindToCode(ctx context.Context, sessionDataKey, codeID string) error
	// BindToToken points the session's reference at an access token.
	BindToToken(ctx context.Context, sessionDataKey, tokenID string) error
	// PromoteCodeToToken moves the reference of a redeemed code to its token.
	PromoteCodeToToken(ctx context.Context, codeID, tokenID string) error
	// Refresh moves a reference from a refreshed token to its replacement.
	Refresh(ctx context.Context, oldTokenID, newTokenID string) error
	// DeleteByTokenID removes the reference bound to a token.
	DeleteByTokenID(ctx context.Context, tokenID string) error
	// DeleteByCodeID removes the reference bound to a code.
	DeleteByCodeID(ctx context.Context, codeID string) error
	// ClaimsBySessionKey returns the userinfo or id_token claims of a session.
	ClaimsBySessionKey(ctx context.Context, sessionDataKey string, isUserInfo bool) ([]RequestedClaim, error)
	// ClaimsByAccessToken returns the userinfo or id_token claims bound to an access token.
	ClaimsByAccessToken(ctx context.Context, accessToken string, isUserInfo bool) ([]RequestedClaim, error)
	// GetReferenceBySessionKey returns the reference of a session, or nil.
	GetReferenceBySessionKey(ctx context.Context, sessionDataKey string) (*RequestObjectReference, error)
	// GetReferenceByTokenID returns the reference bound to a token, or nil.
	GetReferenceByTokenID(ctx context.Context, tokenID string) (*RequestObjectReference, error)
}

// TokenIDResolver maps an access token string to the internal token id the
// token-issuance layer stored it under.
type TokenIDResolver interface {
	TokenIDByAccessToken(ctx context.Context, accessToken string) (string, error)
}

// TokenIDResolverFunc adapts a function to TokenIDResolver.
type TokenIDResolverFunc func(ctx context.Context, accessToken string) (string, error)

// TokenIDByAccessToken calls f.
func (f TokenIDResolverFunc) TokenIDByAccessToken(ctx context.Context, accessToken string) (string, error) {
	return f(ctx, accessToken)
}

// IdentityTokenIDResolver treats the access token string as its own id.
var IdentityTokenIDResolver TokenIDResolver = TokenIDResolverFunc(
	func(_ context.Context, accessToken string) (string, error) { return accessToken, nil },
)
