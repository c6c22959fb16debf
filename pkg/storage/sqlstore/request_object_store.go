// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stacklok/oauthstore/pkg/config"
	"github.com/stacklok/oauthstore/pkg/logger"
	"github.com/stacklok/oauthstore/pkg/storage"
)

// MissingKeyPolicy decides what InsertReference does when the database does
// not report the id of an inserted row.
type MissingKeyPolicy string

const (
	// MissingKeyDrop logs a warning and commits what was written; the
	// dependent claims or claim values are dropped.
	MissingKeyDrop MissingKeyPolicy = config.OnMissingKeyDrop
	// MissingKeyFail rolls the whole insert back.
	MissingKeyFail MissingKeyPolicy = config.OnMissingKeyFail
)

// UnknownClaimTypePolicy decides what happens to claims that are neither
// userinfo nor id_token claims.
type UnknownClaimTypePolicy string

const (
	// UnknownClaimTypeUnspecified stores the claim with no category. Such
	// claims are never returned by the userinfo or id_token filters.
	UnknownClaimTypeUnspecified UnknownClaimTypePolicy = config.UnknownClaimTypeUnspecified
	// UnknownClaimTypeReject fails the insert before anything is written.
	UnknownClaimTypeReject UnknownClaimTypePolicy = config.UnknownClaimTypeReject
)

// is_userinfo column values.
const (
	categoryUserInfo = "1"
	categoryIDToken  = "0"
)

// insertIDFunc matches DB.insertReturningID.
type insertIDFunc func(ctx context.Context, tx *sql.Tx, query string, args ...any) (int64, bool, error)

// RequestObjectStore implements storage.RequestObjectStore.
type RequestObjectStore struct {
	db               *DB
	logger           *slog.Logger
	resolver         storage.TokenIDResolver
	onMissingKey     MissingKeyPolicy
	unknownClaimType UnknownClaimTypePolicy
	insertID         insertIDFunc
}

// RequestObjectOption configures a RequestObjectStore.
type RequestObjectOption func(*RequestObjectStore)

// WithTokenIDResolver sets how ClaimsByAccessToken maps an access token to
// the token id references are bound to. The default treats them as equal.
func WithTokenIDResolver(r storage.TokenIDResolver) RequestObjectOption {
	return func(s *RequestObjectStore) { s.resolver = r }
}

// WithMissingKeyPolicy sets the missing generated key policy.
func WithMissingKeyPolicy(p MissingKeyPolicy) RequestObjectOption {
	return func(s *RequestObjectStore) { s.onMissingKey = p }
}

// WithUnknownClaimTypePolicy sets the unknown claim type policy.
func WithUnknownClaimTypePolicy(p UnknownClaimTypePolicy) RequestObjectOption {
	return func(s *RequestObjectStore) { s.unknownClaimType = p }
}

// NewRequestObjectStore creates a RequestObjectStore on db.
func NewRequestObjectStore(db *DB, opts ...RequestObjectOption) *RequestObjectStore {
	s := &RequestObjectStore{
		db:               db,
		logger:           logger.ForComponent("sqlstore.requestobject"),
		resolver:         storage.IdentityTokenIDResolver,
		onMissingKey:     MissingKeyDrop,
		unknownClaimType: UnknownClaimTypeUnspecified,
		insertID:         db.insertReturningID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ storage.RequestObjectStore = (*RequestObjectStore)(nil)

// InsertReference stores the reference row of an authorization session, the
// claims its request object demanded and the values of multi-valued claims,
// all in one transaction. It returns the reference id, which is zero when
// the database did not report it and the drop policy is in effect.
func (s *RequestObjectStore) InsertReference(
	ctx context.Context, consumerKey, sessionDataKey string, claims [][]storage.RequestedClaim,
) (int64, error) {
	if consumerKey == "" || sessionDataKey == "" {
		return 0, adminErr("consumer key and session data key are required", storage.ErrInvalidInput)
	}
	if err := storage.ValidateRequestedClaims(claims); err != nil {
		return 0, err
	}
	if s.unknownClaimType == UnknownClaimTypeReject {
		for _, group := range claims {
			for _, c := range group {
				if !c.Type.Known() {
					return 0, adminErr(fmt.Sprintf("claim %q has type %q", c.Name, c.Type), storage.ErrUnknownClaimType)
				}
			}
		}
	}

	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageErr("beginning transaction", err)
	}
	defer rollback(tx)

	refID, ok, err := s.insertID(ctx, tx,
		`INSERT INTO oidc_req_object_reference (consumer_key, session_data_key) VALUES (?, ?)`,
		consumerKey, sessionDataKey,
	)
	if err != nil {
		return 0, storageErr("inserting request object reference", err)
	}
	if !ok {
		if s.onMissingKey == MissingKeyFail {
			return 0, storageErr("inserting request object reference", storage.ErrMissingGeneratedKey)
		}
		s.logger.Warn("no generated key for request object reference, dropping its claims",
			"session_data_key", sessionDataKey)
		if err := tx.Commit(); err != nil {
			return 0, storageErr("committing transaction", err)
		}
		return 0, nil
	}

	for _, group := range claims {
		for _, claim := range group {
			if err := s.insertClaim(ctx, tx, refID, claim); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("committing transaction", err)
	}

	s.logger.Debug("stored request object reference",
		"id", refID, "session_data_key", sessionDataKey, "claim_groups", len(claims))
	return refID, nil
}

func (s *RequestObjectStore) insertClaim(
	ctx context.Context, tx *sql.Tx, refID int64, claim storage.RequestedClaim,
) error {
	essential := "0"
	if claim.Essential {
		essential = "1"
	}

	claimID, ok, err := s.insertID(ctx, tx,
		`INSERT INTO oidc_req_object_claims (req_object_id, claim_attribute, essential, value, is_userinfo)
		VALUES (?, ?, ?, ?, ?)`,
		refID, claim.Name, essential, nullString(claim.Value), claimCategory(claim.Type),
	)
	if err != nil {
		return storageErr(fmt.Sprintf("inserting requested claim %q", claim.Name), err)
	}
	if len(claim.Values) == 0 {
		return nil
	}
	if !ok {
		if s.onMissingKey == MissingKeyFail {
			return storageErr(fmt.Sprintf("inserting requested claim %q", claim.Name), storage.ErrMissingGeneratedKey)
		}
		s.logger.Warn("no generated key for requested claim, dropping its values",
			"claim", claim.Name, "values", len(claim.Values))
		return nil
	}

	for _, v := range claim.Values {
		if _, err := s.db.exec(ctx, tx,
			`INSERT INTO oidc_req_obj_claim_values (req_object_claims_id, claim_values) VALUES (?, ?)`,
			claimID, v,
		); err != nil {
			return storageErr(fmt.Sprintf("inserting value of claim %q", claim.Name), err)
		}
	}
	return nil
}

// claimCategory maps a claim type to the is_userinfo column. Unrecognized
// types are stored as NULL.
func claimCategory(t storage.ClaimType) sql.NullString {
	switch t {
	case storage.ClaimTypeUserInfo:
		return sql.NullString{String: categoryUserInfo, Valid: true}
	case storage.ClaimTypeIDToken:
		return sql.NullString{String: categoryIDToken, Valid: true}
	default:
		return sql.NullString{}
	}
}

// BindToCode points the session's reference at codeID and clears any token binding.
func (s *RequestObjectStore) BindToCode(ctx context.Context, sessionDataKey, codeID string) error {
	if _, err := s.db.exec(ctx, s.db.db,
		`UPDATE oidc_req_object_reference SET code_id = ?, token_id = NULL WHERE session_data_key = ?`,
		codeID, sessionDataKey,
	); err != nil {
		return storageErr("binding request object to code", err)
	}
	return nil
}

// BindToToken points the session's reference at tokenID and clears any code binding.
func (s *RequestObjectStore) BindToToken(ctx context.Context, sessionDataKey, tokenID string) error {
	if _, err := s.db.exec(ctx, s.db.db,
		`UPDATE oidc_req_object_reference SET token_id = ?, code_id = NULL WHERE session_data_key = ?`,
		tokenID, sessionDataKey,
	); err != nil {
		return storageErr("binding request object to token", err)
	}
	return nil
}

// PromoteCodeToToken moves the reference bound to codeID over to tokenID.
// A stale reference already bound to tokenID is deleted first; both steps
// commit together.
func (s *RequestObjectStore) PromoteCodeToToken(ctx context.Context, codeID, tokenID string) error {
	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("beginning transaction", err)
	}
	defer rollback(tx)

	if _, err := s.db.exec(ctx, tx,
		`DELETE FROM oidc_req_object_reference
		WHERE token_id = ? AND (code_id IS NULL OR code_id <> ?)`,
		tokenID, codeID,
	); err != nil {
		return storageErr(fmt.Sprintf("deleting stale reference for token %q", tokenID), err)
	}

	if _, err := s.db.exec(ctx, tx,
		`UPDATE oidc_req_object_reference SET code_id = NULL, token_id = ? WHERE code_id = ?`,
		tokenID, codeID,
	); err != nil {
		return storageErr(fmt.Sprintf("updating token for code %q", codeID), err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("committing transaction", err)
	}
	return nil
}

// Refresh repoints the reference of oldTokenID to newTokenID.
func (s *RequestObjectStore) Refresh(ctx context.Context, oldTokenID, newTokenID string) error {
	if _, err := s.db.exec(ctx, s.db.db,
		`UPDATE oidc_req_object_reference SET token_id = ? WHERE token_id = ?`,
		newTokenID, oldTokenID,
	); err != nil {
		return storageErr("updating refreshed token id", err)
	}
	return nil
}

// DeleteByTokenID removes the reference bound to tokenID. Claims and claim
// values go with it by foreign key cascade.
func (s *RequestObjectStore) DeleteByTokenID(ctx context.Context, tokenID string) error {
	if _, err := s.db.exec(ctx, s.db.db,
		`DELETE FROM oidc_req_object_reference WHERE token_id = ?`, tokenID,
	); err != nil {
		return storageErr("deleting request object by token id", err)
	}
	return nil
}

// DeleteByCodeID removes the reference bound to codeID.
func (s *RequestObjectStore) DeleteByCodeID(ctx context.Context, codeID string) error {
	if _, err := s.db.exec(ctx, s.db.db,
		`DELETE FROM oidc_req_object_reference WHERE code_id = ?`, codeID,
	); err != nil {
		return storageErr("deleting request object by code id", err)
	}
	return nil
}

// claimSelect joins claims with their values; readClaims folds the rows.
const claimSelect = `SELECT c.id, c.claim_attribute, c.essential, c.value, v.claim_values
	FROM oidc_req_object_reference r
	JOIN oidc_req_object_claims c ON c.req_object_id = r.id
	LEFT JOIN oidc_req_obj_claim_values v ON v.req_object_claims_id = c.id `

// ClaimsBySessionKey returns the userinfo (isUserInfo) or id_token claims
// recorded for the session, with the values of multi-valued claims.
func (s *RequestObjectStore) ClaimsBySessionKey(
	ctx context.Context, sessionDataKey string, isUserInfo bool,
) ([]storage.RequestedClaim, error) {
	return s.readClaims(ctx, claimSelect+
		`WHERE r.session_data_key = ? AND c.is_userinfo = ? ORDER BY c.id, v.id`,
		sessionDataKey, isUserInfo,
	)
}

// ClaimsByAccessToken returns the userinfo or id_token claims of the
// reference bound to accessToken.
func (s *RequestObjectStore) ClaimsByAccessToken(
	ctx context.Context, accessToken string, isUserInfo bool,
) ([]storage.RequestedClaim, error) {
	tokenID, err := s.resolver.TokenIDByAccessToken(ctx, accessToken)
	if err != nil {
		return nil, storageErr("resolving access token id", err)
	}
	if tokenID == "" {
		return []storage.RequestedClaim{}, nil
	}
	return s.readClaims(ctx, claimSelect+
		`WHERE r.token_id = ? AND c.is_userinfo = ? ORDER BY c.id, v.id`,
		tokenID, isUserInfo,
	)
}

func (s *RequestObjectStore) readClaims(
	ctx context.Context, query, key string, isUserInfo bool,
) ([]storage.RequestedClaim, error) {
	category, claimType := categoryIDToken, storage.ClaimTypeIDToken
	if isUserInfo {
		category, claimType = categoryUserInfo, storage.ClaimTypeUserInfo
	}

	rows, err := s.db.query(ctx, s.db.db, query, key, category)
	if err != nil {
		return nil, storageErr("querying requested claims", err)
	}
	defer func() { _ = rows.Close() }()

	claims := []storage.RequestedClaim{}
	for rows.Next() {
		var (
			id                      int64
			name, essential         string
			value, multiValueMember sql.NullString
		)
		if err := rows.Scan(&id, &name, &essential, &value, &multiValueMember); err != nil {
			return nil, storageErr("scanning requested claim", err)
		}

		// Rows of one claim are adjacent because of ORDER BY c.id.
		if n := len(claims); n == 0 || claims[n-1].ID != id {
			claims = append(claims, storage.RequestedClaim{
				ID:        id,
				Name:      name,
				Essential: essential != "0",
				Value:     value.String,
				Type:      claimType,
			})
		}
		if multiValueMember.Valid {
			last := &claims[len(claims)-1]
			last.Values = append(last.Values, multiValueMember.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating requested claim rows", err)
	}
	return claims, nil
}

const referenceSelect = `SELECT id, consumer_key, session_data_key, code_id, token_id
	FROM oidc_req_object_reference `

// GetReferenceBySessionKey returns the newest reference of the session, or nil.
func (s *RequestObjectStore) GetReferenceBySessionKey(
	ctx context.Context, sessionDataKey string,
) (*storage.RequestObjectReference, error) {
	return s.getReference(ctx, referenceSelect+
		`WHERE session_data_key = ? ORDER BY id DESC LIMIT 1`, sessionDataKey)
}

// GetReferenceByTokenID returns the newest reference bound to tokenID, or nil.
func (s *RequestObjectStore) GetReferenceByTokenID(
	ctx context.Context, tokenID string,
) (*storage.RequestObjectReference, error) {
	return s.getReference(ctx, referenceSelect+
		`WHERE token_id = ? ORDER BY id DESC LIMIT 1`, tokenID)
}

func (s *RequestObjectStore) getReference(
	ctx context.Context, query, key string,
) (*storage.RequestObjectReference, error) {
	var (
		ref           storage.RequestObjectReference
		codeID, token sql.NullString
	)
	err := s.db.queryRow(ctx, s.db.db, query, key).
		Scan(&ref.ID, &ref.ConsumerKey, &ref.SessionDataKey, &codeID, &token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("reading request object reference", err)
	}
	ref.CodeID = codeID.String
	ref.TokenID = token.String
	return &ref, nil
}
