// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stacklok/oauthstore/pkg/logger"
	"github.com/stacklok/oauthstore/pkg/storage"
)

// OAuth1Store implements storage.OAuth1TokenStore.
type OAuth1Store struct {
	db     *DB
	logger *slog.Logger
}

// NewOAuth1Store creates an OAuth1Store on db.
func NewOAuth1Store(db *DB) *OAuth1Store {
	return &OAuth1Store{db: db, logger: logger.ForComponent("sqlstore.oauth1")}
}

var _ storage.OAuth1TokenStore = (*OAuth1Store)(nil)

// IssueRequestToken stores an unauthorized request token. The consumer row
// is resolved inside the INSERT, so an unknown consumer key inserts nothing
// and is reported as storage.ErrUnknownConsumer.
func (s *OAuth1Store) IssueRequestToken(ctx context.Context, params storage.RequestTokenParams) error {
	if err := storage.ValidateRequestTokenParams(&params); err != nil {
		return err
	}

	res, err := s.db.exec(ctx, s.db.db,
		`INSERT INTO oauth1a_request_token (
			request_token, request_token_secret, consumer_key_id, callback_url, scope, authorized
		)
		SELECT ?, ?, id, ?, ?, ? FROM oauth_consumer_apps WHERE consumer_key = ?`,
		params.Token, params.Secret, nullString(params.CallbackURL), nullString(params.Scope), false,
		params.ConsumerKey,
	)
	if err != nil {
		return storageErr("inserting oauth1a request token", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("checking rows affected", err)
	}
	if affected == 0 {
		return adminErr(fmt.Sprintf("issuing request token for %q", params.ConsumerKey), storage.ErrUnknownConsumer)
	}

	s.logger.Debug("issued oauth1a request token", "consumer_key", params.ConsumerKey)
	return nil
}

// AuthorizeRequestToken marks token authorized by authorizedUser.
// Re-authorizing overwrites the verifier and user.
func (s *OAuth1Store) AuthorizeRequestToken(ctx context.Context, token, verifier, authorizedUser string) error {
	res, err := s.db.exec(ctx, s.db.db,
		`UPDATE oauth1a_request_token SET authorized = ?, oauth_verifier = ?, authz_user = ?
		WHERE request_token = ?`,
		true, verifier, authorizedUser, token,
	)
	if err != nil {
		return storageErr("authorizing oauth1a request token", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("checking rows affected", err)
	}
	if affected == 0 {
		return adminErr("authorizing oauth1a request token", storage.ErrTokenNotFound)
	}
	return nil
}

// GetRequestToken returns the request token row, or nil.
func (s *OAuth1Store) GetRequestToken(ctx context.Context, token string) (*storage.RequestToken, error) {
	rt, err := s.getRequestToken(ctx, s.db.db, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("reading oauth1a request token", err)
	}
	return rt, nil
}

func (s *OAuth1Store) getRequestToken(ctx context.Context, q querier, token string) (*storage.RequestToken, error) {
	var (
		rt                                  storage.RequestToken
		callback, scope, verifier, authUser sql.NullString
	)
	err := s.db.queryRow(ctx, q,
		`SELECT request_token, request_token_secret, consumer_key_id, callback_url, scope,
			authorized, oauth_verifier, authz_user
		FROM oauth1a_request_token WHERE request_token = ?`,
		token,
	).Scan(&rt.Token, &rt.Secret, &rt.ConsumerKeyID, &callback, &scope, &rt.Authorized, &verifier, &authUser)
	if err != nil {
		return nil, err
	}
	rt.CallbackURL = callback.String
	rt.Scope = scope.String
	rt.Verifier = verifier.String
	rt.AuthorizedUser = authUser.String
	return &rt, nil
}

// GetRequestTokenCallback returns the callback URL of token, or "".
func (s *OAuth1Store) GetRequestTokenCallback(ctx context.Context, token string) (string, error) {
	return s.scalar(ctx, "reading request token callback",
		`SELECT callback_url FROM oauth1a_request_token WHERE request_token = ?`, token)
}

// GetRequestTokenSecret returns the secret of token, or "".
func (s *OAuth1Store) GetRequestTokenSecret(ctx context.Context, token string) (string, error) {
	return s.scalar(ctx, "reading request token secret",
		`SELECT request_token_secret FROM oauth1a_request_token WHERE request_token = ?`, token)
}

// GetConsumerKeyForRequestToken returns the consumer key and scope of token.
// Both are empty when the token is unknown.
func (s *OAuth1Store) GetConsumerKeyForRequestToken(
	ctx context.Context, token string,
) (consumerKey, scope string, err error) {
	var sc sql.NullString
	err = s.db.queryRow(ctx, s.db.db,
		`SELECT apps.consumer_key, rt.scope
		FROM oauth_consumer_apps apps
		JOIN oauth1a_request_token rt ON apps.id = rt.consumer_key_id
		WHERE rt.request_token = ?`,
		token,
	).Scan(&consumerKey, &sc)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", nil
	}
	if err != nil {
		return "", "", storageErr("reading request token consumer", err)
	}
	return consumerKey, sc.String, nil
}

// RemoveRequestToken deletes token. Removing an unknown token is not an error.
func (s *OAuth1Store) RemoveRequestToken(ctx context.Context, token string) error {
	if _, err := s.db.exec(ctx, s.db.db,
		`DELETE FROM oauth1a_request_token WHERE request_token = ?`, token,
	); err != nil {
		return storageErr("removing oauth1a request token", err)
	}
	return nil
}

// RedeemForAccessToken exchanges an authorized request token for an access
// token. The request token is read, the access token inserted and the
// request token deleted in one transaction. Verifier checks are the
// caller's job and must happen before this call.
func (s *OAuth1Store) RedeemForAccessToken(
	ctx context.Context, requestToken, accessToken, accessSecret string,
) (*storage.AccessToken, error) {
	if accessToken == "" || accessSecret == "" {
		return nil, adminErr("access token and secret are required", storage.ErrInvalidInput)
	}

	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("beginning transaction", err)
	}
	defer rollback(tx)

	rt, err := s.getRequestToken(ctx, tx, requestToken)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, adminErr("redeeming oauth1a request token", storage.ErrTokenNotFound)
	}
	if err != nil {
		return nil, storageErr("reading oauth1a request token", err)
	}
	if !rt.Authorized {
		return nil, adminErr("redeeming oauth1a request token", storage.ErrTokenNotAuthorized)
	}

	at := &storage.AccessToken{
		Token:          accessToken,
		Secret:         accessSecret,
		ConsumerKeyID:  rt.ConsumerKeyID,
		Scope:          rt.Scope,
		AuthorizedUser: rt.AuthorizedUser,
	}
	if _, err := s.db.exec(ctx, tx,
		`INSERT INTO oauth1a_access_token (
			access_token, access_token_secret, consumer_key_id, scope, authz_user
		) VALUES (?, ?, ?, ?, ?)`,
		at.Token, at.Secret, at.ConsumerKeyID, nullString(at.Scope), nullString(at.AuthorizedUser),
	); err != nil {
		return nil, storageErr("inserting oauth1a access token", err)
	}

	if _, err := s.db.exec(ctx, tx,
		`DELETE FROM oauth1a_request_token WHERE request_token = ?`, requestToken,
	); err != nil {
		return nil, storageErr("removing redeemed request token", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("committing transaction", err)
	}

	s.logger.Debug("redeemed oauth1a request token", "consumer_key_id", at.ConsumerKeyID)
	return at, nil
}

// Dereference returns what a resource server needs to validate a request
// signed with accessToken, or nil when the token is unknown. The scope and
// secret lookups share one read transaction; if the secret cannot be read
// back after the token row was found, storage.ErrInconsistentToken is returned.
func (s *OAuth1Store) Dereference(ctx context.Context, accessToken string) (*storage.AccessTokenInfo, error) {
	tx, err := s.db.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: s.db.dialect != DialectSQLite})
	if err != nil {
		return nil, storageErr("beginning transaction", err)
	}
	defer rollback(tx)

	var scope, authUser sql.NullString
	err = s.db.queryRow(ctx, tx,
		`SELECT scope, authz_user FROM oauth1a_access_token WHERE access_token = ?`, accessToken,
	).Scan(&scope, &authUser)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("reading oauth1a access token", err)
	}

	var secret string
	err = s.db.queryRow(ctx, tx,
		`SELECT access_token_secret FROM oauth1a_access_token WHERE access_token = ?`, accessToken,
	).Scan(&secret)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storageErr("reading oauth1a access token secret", storage.ErrInconsistentToken)
	}
	if err != nil {
		return nil, storageErr("reading oauth1a access token secret", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("committing transaction", err)
	}

	return &storage.AccessTokenInfo{
		Scope:          scope.String,
		Secret:         secret,
		AuthorizedUser: authUser.String,
	}, nil
}

func (s *OAuth1Store) scalar(ctx context.Context, what, query string, args ...any) (string, error) {
	var v sql.NullString
	err := s.db.queryRow(ctx, s.db.db, query, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", storageErr(what, err)
	}
	return v.String, nil
}
