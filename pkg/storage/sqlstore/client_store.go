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

// DependentTokenRemover deletes tokens owned by other stores when a client
// is deregistered. It runs inside the deregistration transaction.
type DependentTokenRemover interface {
	RemoveClientTokens(ctx context.Context, tx *sql.Tx, consumerKey string, tenantID int) error
}

// ClientStore implements storage.ClientStore.
type ClientStore struct {
	db           *DB
	logger       *slog.Logger
	tokenRemover DependentTokenRemover
}

// ClientStoreOption configures a ClientStore.
type ClientStoreOption func(*ClientStore)

// WithDependentTokenRemover makes Deregister also call r.
func WithDependentTokenRemover(r DependentTokenRemover) ClientStoreOption {
	return func(s *ClientStore) { s.tokenRemover = r }
}

// NewClientStore creates a ClientStore on db.
func NewClientStore(db *DB, opts ...ClientStoreOption) *ClientStore {
	s := &ClientStore{db: db, logger: logger.ForComponent("sqlstore.clients")}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ storage.ClientStore = (*ClientStore)(nil)

// appColumns is the SELECT column list shared by every application lookup.
// scanApp depends on its order.
const appColumns = `id, consumer_key, consumer_secret, username, tenant_id, user_domain,
	app_name, oauth_version, callback_url, grant_types, app_state,
	user_access_token_expire_time, app_access_token_expire_time, refresh_token_expire_time`

const pkceColumns = `, pkce_mandatory, pkce_support_plain`

func selectApps(withPKCE bool) string {
	if withPKCE {
		return `SELECT ` + appColumns + pkceColumns + ` FROM oauth_consumer_apps `
	}
	return `SELECT ` + appColumns + ` FROM oauth_consumer_apps `
}

// Register stores a new client application and, when requested, its audiences.
func (s *ClientStore) Register(ctx context.Context, app *storage.ClientApplication, opts storage.RegisterOptions) error {
	if err := storage.ValidateClientApplication(app); err != nil {
		return err
	}

	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("beginning transaction", err)
	}
	defer rollback(tx)

	state := app.State
	if state == "" {
		state = storage.AppStateActive
	}

	var (
		query string
		args  []any
	)
	if opts.WithPKCE {
		query = `INSERT INTO oauth_consumer_apps (
			consumer_key, consumer_secret, username, tenant_id, user_domain, app_name,
			oauth_version, callback_url, grant_types, pkce_mandatory, pkce_support_plain, app_state,
			user_access_token_expire_time, app_access_token_expire_time, refresh_token_expire_time
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		args = []any{
			app.ConsumerKey, nullString(app.ConsumerSecret), app.Username, app.TenantID, app.UserDomain,
			nullString(app.AppName), nullString(app.OAuthVersion), nullString(app.CallbackURL),
			nullString(storage.JoinGrantTypes(app.GrantTypes)), app.PKCEMandatory, app.PKCESupportPlain,
			string(state), app.UserAccessTokenExpiry, app.AppAccessTokenExpiry, app.RefreshTokenExpiry,
		}
	} else {
		query = `INSERT INTO oauth_consumer_apps (
			consumer_key, consumer_secret, username, tenant_id, user_domain, app_name,
			oauth_version, callback_url, grant_types, app_state,
			user_access_token_expire_time, app_access_token_expire_time, refresh_token_expire_time
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		args = []any{
			app.ConsumerKey, nullString(app.ConsumerSecret), app.Username, app.TenantID, app.UserDomain,
			nullString(app.AppName), nullString(app.OAuthVersion), nullString(app.CallbackURL),
			nullString(storage.JoinGrantTypes(app.GrantTypes)), string(state),
			app.UserAccessTokenExpiry, app.AppAccessTokenExpiry, app.RefreshTokenExpiry,
		}
	}

	id, ok, err := s.db.insertReturningID(ctx, tx, query, args...)
	if err != nil {
		return storageErr(fmt.Sprintf("inserting client application %q", app.ConsumerKey), err)
	}

	if opts.WithAudiences {
		if err := s.insertAudiences(ctx, tx, app.TenantID, app.ConsumerKey, app.Audiences); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("committing transaction", err)
	}

	if ok {
		app.ID = id
	}
	app.State = state
	s.logger.Debug("registered client application",
		"consumer_key", app.ConsumerKey, "tenant_id", app.TenantID, "audiences", len(app.Audiences))
	return nil
}

// RegisterConsumer stores a bare OAuth consumer: credentials, owner and
// token lifetimes only.
func (s *ClientStore) RegisterConsumer(ctx context.Context, app *storage.ClientApplication) error {
	if err := storage.ValidateClientApplication(app); err != nil {
		return err
	}

	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("beginning transaction", err)
	}
	defer rollback(tx)

	id, ok, err := s.db.insertReturningID(ctx, tx, `INSERT INTO oauth_consumer_apps (
			consumer_key, consumer_secret, username, tenant_id, user_domain, oauth_version,
			user_access_token_expire_time, app_access_token_expire_time, refresh_token_expire_time
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		app.ConsumerKey, nullString(app.ConsumerSecret), app.Username, app.TenantID, app.UserDomain,
		nullString(app.OAuthVersion), app.UserAccessTokenExpiry, app.AppAccessTokenExpiry, app.RefreshTokenExpiry,
	)
	if err != nil {
		return storageErr(fmt.Sprintf("inserting oauth consumer %q", app.ConsumerKey), err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("committing transaction", err)
	}

	if ok {
		app.ID = id
	}
	app.State = storage.AppStateActive
	s.logger.Debug("registered oauth consumer", "consumer_key", app.ConsumerKey)
	return nil
}

// GetByConsumerKey returns the application for consumerKey, or nil.
func (s *ClientStore) GetByConsumerKey(
	ctx context.Context, consumerKey string, withPKCE bool,
) (*storage.ClientApplication, error) {
	row := s.db.queryRow(ctx, s.db.db, selectApps(withPKCE)+`WHERE consumer_key = ?`, consumerKey)
	app, err := scanApp(row, withPKCE)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(fmt.Sprintf("reading client application %q", consumerKey), err)
	}
	return app, nil
}

// GetByAppName returns the oldest application named appName in the tenant, or nil.
func (s *ClientStore) GetByAppName(
	ctx context.Context, appName string, tenantID int, withPKCE bool,
) (*storage.ClientApplication, error) {
	row := s.db.queryRow(ctx, s.db.db,
		selectApps(withPKCE)+`WHERE app_name = ? AND tenant_id = ? ORDER BY id LIMIT 1`,
		appName, tenantID,
	)
	app, err := scanApp(row, withPKCE)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(fmt.Sprintf("reading client application by name %q", appName), err)
	}
	return app, nil
}

// ListByOwner returns the applications owned by username in the user domain and tenant.
func (s *ClientStore) ListByOwner(
	ctx context.Context, username, userDomain string, tenantID int, withPKCE bool,
) ([]storage.ClientApplication, error) {
	return s.listApps(ctx, withPKCE,
		`WHERE username = ? AND user_domain = ? AND tenant_id = ? ORDER BY id`,
		username, userDomain, tenantID,
	)
}

// ListByOwnerUsernames returns the applications owned by either username
// form in the tenant. Each row matches at most once.
func (s *ClientStore) ListByOwnerUsernames(
	ctx context.Context, tenantAwareUsername, tenantUnawareUsername string, tenantID int, withPKCE bool,
) ([]storage.ClientApplication, error) {
	return s.listApps(ctx, withPKCE,
		`WHERE (username = ? OR username = ?) AND tenant_id = ? ORDER BY id`,
		tenantAwareUsername, tenantUnawareUsername, tenantID,
	)
}

func (s *ClientStore) listApps(
	ctx context.Context, withPKCE bool, where string, args ...any,
) ([]storage.ClientApplication, error) {
	rows, err := s.db.query(ctx, s.db.db, selectApps(withPKCE)+where, args...)
	if err != nil {
		return nil, storageErr("querying client applications", err)
	}
	defer func() { _ = rows.Close() }()

	apps := []storage.ClientApplication{}
	for rows.Next() {
		app, err := scanApp(rows, withPKCE)
		if err != nil {
			return nil, storageErr("scanning client application", err)
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating client application rows", err)
	}
	return apps, nil
}

// ListAudiences returns the audience values of consumerKey in the tenant.
func (s *ClientStore) ListAudiences(ctx context.Context, tenantID int, consumerKey string) ([]string, error) {
	return s.listStrings(ctx, s.db.db,
		`SELECT property_value FROM oidc_property
		WHERE tenant_id = ? AND consumer_key = ? AND property_key = ?
		ORDER BY property_value`,
		tenantID, consumerKey, storage.AudiencePropertyKey,
	)
}

// ListAudiencesByAppName returns the audience values of the applications
// named appName in the tenant.
func (s *ClientStore) ListAudiencesByAppName(ctx context.Context, tenantID int, appName string) ([]string, error) {
	return s.listStrings(ctx, s.db.db,
		`SELECT property_value FROM oidc_property
		WHERE tenant_id = ? AND property_key = ? AND consumer_key IN (
			SELECT consumer_key FROM oauth_consumer_apps WHERE tenant_id = ? AND app_name = ?
		)
		ORDER BY property_value`,
		tenantID, storage.AudiencePropertyKey, tenantID, appName,
	)
}

// RemoveAudience deletes one audience value. Removing an absent value is not an error.
func (s *ClientStore) RemoveAudience(ctx context.Context, tenantID int, consumerKey, audience string) error {
	if _, err := s.db.exec(ctx, s.db.db,
		`DELETE FROM oidc_property
		WHERE tenant_id = ? AND consumer_key = ? AND property_key = ? AND property_value = ?`,
		tenantID, consumerKey, storage.AudiencePropertyKey, audience,
	); err != nil {
		return storageErr(fmt.Sprintf("removing audience from %q", consumerKey), err)
	}
	return nil
}

// secretGuard matches the stored secret. Public clients are stored with a
// NULL secret and match the empty string.
const secretGuard = `COALESCE(consumer_secret, '') = ?`

// UpdateMetadata rewrites the mutable metadata of app. The statement is
// guarded by the consumer secret; a mismatch (including a concurrent secret
// rotation) leaves the row unchanged and returns storage.ErrSecretMismatch.
// A non-nil app.Audiences replaces the stored audience set.
func (s *ClientStore) UpdateMetadata(ctx context.Context, app *storage.ClientApplication, withPKCE bool) error {
	if err := storage.ValidateClientApplication(app); err != nil {
		return err
	}

	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("beginning transaction", err)
	}
	defer rollback(tx)

	var res sql.Result
	if withPKCE {
		res, err = s.db.exec(ctx, tx, `UPDATE oauth_consumer_apps SET
				app_name = ?, callback_url = ?, grant_types = ?, pkce_mandatory = ?, pkce_support_plain = ?,
				user_access_token_expire_time = ?, app_access_token_expire_time = ?, refresh_token_expire_time = ?
			WHERE consumer_key = ? AND `+secretGuard,
			nullString(app.AppName), nullString(app.CallbackURL), nullString(storage.JoinGrantTypes(app.GrantTypes)),
			app.PKCEMandatory, app.PKCESupportPlain,
			app.UserAccessTokenExpiry, app.AppAccessTokenExpiry, app.RefreshTokenExpiry,
			app.ConsumerKey, app.ConsumerSecret,
		)
	} else {
		res, err = s.db.exec(ctx, tx, `UPDATE oauth_consumer_apps SET
				app_name = ?, callback_url = ?, grant_types = ?,
				user_access_token_expire_time = ?, app_access_token_expire_time = ?, refresh_token_expire_time = ?
			WHERE consumer_key = ? AND `+secretGuard,
			nullString(app.AppName), nullString(app.CallbackURL), nullString(storage.JoinGrantTypes(app.GrantTypes)),
			app.UserAccessTokenExpiry, app.AppAccessTokenExpiry, app.RefreshTokenExpiry,
			app.ConsumerKey, app.ConsumerSecret,
		)
	}
	if err != nil {
		return storageErr(fmt.Sprintf("updating client application %q", app.ConsumerKey), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("checking rows affected", err)
	}
	if affected == 0 {
		return adminErr(fmt.Sprintf("updating client application %q", app.ConsumerKey), storage.ErrSecretMismatch)
	}

	if app.Audiences != nil {
		var tenantID int
		if err := s.db.queryRow(ctx, tx,
			`SELECT tenant_id FROM oauth_consumer_apps WHERE consumer_key = ?`, app.ConsumerKey,
		).Scan(&tenantID); err != nil {
			return storageErr("reading application tenant", err)
		}
		if _, err := s.db.exec(ctx, tx,
			`DELETE FROM oidc_property WHERE tenant_id = ? AND consumer_key = ? AND property_key = ?`,
			tenantID, app.ConsumerKey, storage.AudiencePropertyKey,
		); err != nil {
			return storageErr("deleting audiences", err)
		}
		if err := s.insertAudiences(ctx, tx, tenantID, app.ConsumerKey, app.Audiences); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("committing transaction", err)
	}
	s.logger.Debug("updated client application", "consumer_key", app.ConsumerKey)
	return nil
}

// UpdateSecret replaces the consumer secret of consumerKey.
func (s *ClientStore) UpdateSecret(ctx context.Context, consumerKey, newSecret string) error {
	return s.updateOne(ctx, "updating consumer secret",
		`UPDATE oauth_consumer_apps SET consumer_secret = ? WHERE consumer_key = ?`,
		newSecret, consumerKey,
	)
}

// UpdateConsumerSecret replaces the secret of a consumer owned by the given user.
func (s *ClientStore) UpdateConsumerSecret(
	ctx context.Context, consumerKey, username string, tenantID int, userDomain, newSecret string,
) error {
	return s.updateOne(ctx, "updating owned consumer secret",
		`UPDATE oauth_consumer_apps SET consumer_secret = ?
		WHERE consumer_key = ? AND username = ? AND tenant_id = ? AND user_domain = ?`,
		newSecret, consumerKey, username, tenantID, userDomain,
	)
}

// UpdateName renames the application of consumerKey.
func (s *ClientStore) UpdateName(ctx context.Context, consumerKey, appName string) error {
	return s.updateOne(ctx, "renaming client application",
		`UPDATE oauth_consumer_apps SET app_name = ? WHERE consumer_key = ?`,
		appName, consumerKey,
	)
}

// UpdateState changes the lifecycle state of consumerKey.
func (s *ClientStore) UpdateState(ctx context.Context, consumerKey string, state storage.AppState) error {
	if state != storage.AppStateActive && state != storage.AppStateRevoked {
		return adminErr(fmt.Sprintf("unknown application state %q", state), storage.ErrInvalidInput)
	}
	return s.updateOne(ctx, "updating application state",
		`UPDATE oauth_consumer_apps SET app_state = ? WHERE consumer_key = ?`,
		string(state), consumerKey,
	)
}

// updateOne runs a single-row update. Zero matched rows means the key is unknown.
func (s *ClientStore) updateOne(ctx context.Context, what, query string, args ...any) error {
	res, err := s.db.exec(ctx, s.db.db, query, args...)
	if err != nil {
		return storageErr(what, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("checking rows affected", err)
	}
	if affected == 0 {
		return adminErr(what, storage.ErrUnknownConsumer)
	}
	return nil
}

// GetState returns the lifecycle state of consumerKey, or "".
func (s *ClientStore) GetState(ctx context.Context, consumerKey string) (storage.AppState, error) {
	state, err := s.scalar(ctx, "reading application state",
		`SELECT app_state FROM oauth_consumer_apps WHERE consumer_key = ?`, consumerKey)
	return storage.AppState(state), err
}

// GetAppName returns the application name of consumerKey, or "".
func (s *ClientStore) GetAppName(ctx context.Context, consumerKey string) (string, error) {
	return s.scalar(ctx, "reading application name",
		`SELECT app_name FROM oauth_consumer_apps WHERE consumer_key = ?`, consumerKey)
}

// GetConsumerSecret returns the secret of consumerKey, or "".
func (s *ClientStore) GetConsumerSecret(ctx context.Context, consumerKey string) (string, error) {
	return s.scalar(ctx, "reading consumer secret",
		`SELECT consumer_secret FROM oauth_consumer_apps WHERE consumer_key = ?`, consumerKey)
}

// GetCallbackURL returns the registered callback URL of consumerKey, or "".
func (s *ClientStore) GetCallbackURL(ctx context.Context, consumerKey string) (string, error) {
	return s.scalar(ctx, "reading callback url",
		`SELECT callback_url FROM oauth_consumer_apps WHERE consumer_key = ?`, consumerKey)
}

// GetUsernameForKeyAndSecret returns the owner of the key/secret pair, or "".
func (s *ClientStore) GetUsernameForKeyAndSecret(ctx context.Context, consumerKey, consumerSecret string) (string, error) {
	return s.scalar(ctx, "reading consumer owner",
		`SELECT username FROM oauth_consumer_apps WHERE consumer_key = ? AND consumer_secret = ?`,
		consumerKey, consumerSecret)
}

// Deregister removes consumerKey with its audiences, request-object
// references, OAuth 1.0a tokens and, through the configured
// DependentTokenRemover, tokens held elsewhere. All of it commits together.
func (s *ClientStore) Deregister(ctx context.Context, consumerKey string) error {
	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("beginning transaction", err)
	}
	defer rollback(tx)

	var (
		appID    int64
		tenantID int
	)
	err = s.db.queryRow(ctx, tx,
		`SELECT id, tenant_id FROM oauth_consumer_apps WHERE consumer_key = ?`, consumerKey,
	).Scan(&appID, &tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return adminErr(fmt.Sprintf("deregistering %q", consumerKey), storage.ErrUnknownConsumer)
	}
	if err != nil {
		return storageErr(fmt.Sprintf("looking up client application %q", consumerKey), err)
	}

	steps := []struct {
		what  string
		query string
		args  []any
	}{
		{"deleting audiences", `DELETE FROM oidc_property WHERE tenant_id = ? AND consumer_key = ?`,
			[]any{tenantID, consumerKey}},
		{"deleting request object references", `DELETE FROM oidc_req_object_reference WHERE consumer_key = ?`,
			[]any{consumerKey}},
		{"deleting oauth1a request tokens", `DELETE FROM oauth1a_request_token WHERE consumer_key_id = ?`,
			[]any{appID}},
		{"deleting oauth1a access tokens", `DELETE FROM oauth1a_access_token WHERE consumer_key_id = ?`,
			[]any{appID}},
	}
	for _, step := range steps {
		if _, err := s.db.exec(ctx, tx, step.query, step.args...); err != nil {
			return storageErr(step.what, err)
		}
	}

	if s.tokenRemover != nil {
		if err := s.tokenRemover.RemoveClientTokens(ctx, tx, consumerKey, tenantID); err != nil {
			return storageErr("removing dependent tokens", err)
		}
	}

	if _, err := s.db.exec(ctx, tx, `DELETE FROM oauth_consumer_apps WHERE id = ?`, appID); err != nil {
		return storageErr(fmt.Sprintf("deleting client application %q", consumerKey), err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("committing transaction", err)
	}
	s.logger.Debug("deregistered client application", "consumer_key", consumerKey)
	return nil
}

// ExistsByNameAndOwner reports whether the owner already registered appName.
func (s *ClientStore) ExistsByNameAndOwner(
	ctx context.Context, username string, tenantID int, userDomain, appName string,
) (bool, error) {
	return s.exists(ctx, "checking application name",
		`SELECT 1 FROM oauth_consumer_apps
		WHERE username = ? AND tenant_id = ? AND user_domain = ? AND app_name = ?`,
		username, tenantID, userDomain, appName)
}

// ExistsByConsumerKey reports whether consumerKey is registered.
func (s *ClientStore) ExistsByConsumerKey(ctx context.Context, consumerKey string) (bool, error) {
	return s.exists(ctx, "checking consumer key",
		`SELECT 1 FROM oauth_consumer_apps WHERE consumer_key = ?`, consumerKey)
}

func (s *ClientStore) exists(ctx context.Context, what, query string, args ...any) (bool, error) {
	var one int
	err := s.db.queryRow(ctx, s.db.db, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storageErr(what, err)
	}
	return true, nil
}

func (s *ClientStore) scalar(ctx context.Context, what, query string, args ...any) (string, error) {
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

func (s *ClientStore) listStrings(ctx context.Context, q querier, query string, args ...any) ([]string, error) {
	rows, err := s.db.query(ctx, q, query, args...)
	if err != nil {
		return nil, storageErr("querying audiences", err)
	}
	defer func() { _ = rows.Close() }()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, storageErr("scanning audience", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating audience rows", err)
	}
	return values, nil
}

func (s *ClientStore) insertAudiences(
	ctx context.Context, tx *sql.Tx, tenantID int, consumerKey string, audiences []string,
) error {
	for _, aud := range audiences {
		if _, err := s.db.exec(ctx, tx,
			`INSERT INTO oidc_property (tenant_id, consumer_key, property_key, property_value)
			VALUES (?, ?, ?, ?)`,
			tenantID, consumerKey, storage.AudiencePropertyKey, aud,
		); err != nil {
			return storageErr(fmt.Sprintf("inserting audience %q", aud), err)
		}
	}
	return nil
}

// scanner is an interface satisfied by both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

// scanApp scans a row selected with appColumns (and pkceColumns when withPKCE).
func scanApp(sc scanner, withPKCE bool) (*storage.ClientApplication, error) {
	var (
		app                                                 storage.ClientApplication
		secret, appName, oauthVersion, callback, grantTypes sql.NullString
		state                                               string
	)
	dest := []any{
		&app.ID, &app.ConsumerKey, &secret, &app.Username, &app.TenantID, &app.UserDomain,
		&appName, &oauthVersion, &callback, &grantTypes, &state,
		&app.UserAccessTokenExpiry, &app.AppAccessTokenExpiry, &app.RefreshTokenExpiry,
	}
	if withPKCE {
		dest = append(dest, &app.PKCEMandatory, &app.PKCESupportPlain)
	}
	if err := sc.Scan(dest...); err != nil {
		return nil, err
	}

	app.ConsumerSecret = secret.String
	app.AppName = appName.String
	app.OAuthVersion = oauthVersion.String
	app.CallbackURL = callback.String
	if grantTypes.String != "" {
		app.GrantTypes = storage.SplitGrantTypes(grantTypes.String)
	}
	app.State = storage.AppState(state)
	return &app, nil
}

// nullString stores empty strings as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
