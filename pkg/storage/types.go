// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package storage

import "strings"

// AppState is the lifecycle state of a registered client application.
type AppState string

const (
	// AppStateActive is the state of a usable registration.
	AppStateActive AppState = "ACTIVE"
	// AppStateRevoked marks a registration whose credentials must be refused.
	AppStateRevoked AppState = "REVOKED"
)

// AudiencePropertyKey is the property key under which audience values are
// stored in the tenant-scoped OIDC property table.
const AudiencePropertyKey = "audience"

// grantTypeSeparator joins grant types into the single persisted column.
const grantTypeSeparator = " "

// ClientApplication is one registered OAuth/OIDC client.
type ClientApplication struct {
	// ID is the generated row identifier. Zero until persisted.
	ID int64 `json:"id,omitempty" yaml:"id,omitempty"`

	ConsumerKey    string `json:"consumer_key" yaml:"consumer_key" validate:"required,max=255"`
	ConsumerSecret string `json:"consumer_secret,omitempty" yaml:"consumer_secret,omitempty" validate:"max=2048"`

	// Username, UserDomain and TenantID identify the owning principal.
	Username   string `json:"username" yaml:"username" validate:"required,max=255"`
	UserDomain string `json:"user_domain" yaml:"user_domain" validate:"max=50"`
	TenantID   int    `json:"tenant_id" yaml:"tenant_id"`

	AppName      string   `json:"app_name,omitempty" yaml:"app_name,omitempty" validate:"max=255"`
	OAuthVersion string   `json:"oauth_version" yaml:"oauth_version" validate:"omitempty,oneof=OAuth-1.0a OAuth-2.0"`
	CallbackURL  string   `json:"callback_url,omitempty" yaml:"callback_url,omitempty" validate:"max=2048"`
	GrantTypes   []string `json:"grant_types,omitempty" yaml:"grant_types,omitempty" validate:"dive,required,max=100"`

	PKCEMandatory    bool `json:"pkce_mandatory" yaml:"pkce_mandatory"`
	PKCESupportPlain bool `json:"pkce_support_plain" yaml:"pkce_support_plain"`

	// Token lifetimes in milliseconds.
	UserAccessTokenExpiry int64 `json:"user_access_token_expire_time" yaml:"user_access_token_expire_time" validate:"gte=0"`
	AppAccessTokenExpiry  int64 `json:"app_access_token_expire_time" yaml:"app_access_token_expire_time" validate:"gte=0"`
	RefreshTokenExpiry    int64 `json:"refresh_token_expire_time" yaml:"refresh_token_expire_time" validate:"gte=0"`

	State AppState `json:"app_state,omitempty" yaml:"app_state,omitempty" validate:"omitempty,oneof=ACTIVE REVOKED"`

	// Audiences are written by Register and UpdateMetadata. The lookups
	// leave them nil; read them with ListAudiences.
	Audiences []string `json:"audiences,omitempty" yaml:"audiences,omitempty" validate:"unique,dive,required,max=255"`
}

// JoinGrantTypes renders grant types as the persisted delimited string.
func JoinGrantTypes(grantTypes []string) string {
	return strings.Join(grantTypes, grantTypeSeparator)
}

// SplitGrantTypes parses the persisted grant type column.
func SplitGrantTypes(column string) []string {
	return strings.Fields(column)
}

// RegisterOptions selects the optional column groups written by Register.
type RegisterOptions struct {
	// WithPKCE persists the PKCE policy flags.
	WithPKCE bool
	// WithAudiences persists ClientApplication.Audiences as property rows.
	WithAudiences bool
}

// RequestToken is an OAuth 1.0a request token.
type RequestToken struct {
	Token          string `json:"request_token"`
	Secret         string `json:"request_token_secret"`
	ConsumerKeyID  int64  `json:"consumer_key_id"`
	CallbackURL    string `json:"callback_url,omitempty"`
	Scope          string `json:"scope,omitempty"`
	Authorized     bool   `json:"authorized"`
	Verifier       string `json:"oauth_verifier,omitempty"`
	AuthorizedUser string `json:"authz_user,omitempty"`
}

// RequestTokenParams are the inputs for issuing a request token.
type RequestTokenParams struct {
	ConsumerKey string `validate:"required"`
	Token       string `validate:"required,max=512"`
	Secret      string `validate:"required,max=512"`
	CallbackURL string `validate:"max=2048"`
	Scope       string `validate:"max=2048"`
}

// AccessToken is an OAuth 1.0a access token.
type AccessToken struct {
	Token          string `json:"access_token"`
	Secret         string `json:"access_token_secret"`
	ConsumerKeyID  int64  `json:"consumer_key_id"`
	Scope          string `json:"scope,omitempty"`
	AuthorizedUser string `json:"authz_user,omitempty"`
}

// AccessTokenInfo is what a resource server needs to validate an OAuth 1.0a
// signed request.
type AccessTokenInfo struct {
	Scope          string `json:"scope,omitempty"`
	Secret         string `json:"access_token_secret"`
	AuthorizedUser string `json:"authz_user,omitempty"`
}

// ClaimType is the response a requested claim belongs to.
type ClaimType string

const (
	// ClaimTypeUserInfo marks a claim requested for the userinfo response.
	ClaimTypeUserInfo ClaimType = "userinfo"
	// ClaimTypeIDToken marks a claim requested for the ID token.
	ClaimTypeIDToken ClaimType = "id_token"
	// ClaimTypeUnspecified is stored for claims whose category was not recognized.
	ClaimTypeUnspecified ClaimType = ""
)

// Known reports whether t is one of the two filterable categories.
func (t ClaimType) Known() bool {
	return t == ClaimTypeUserInfo || t == ClaimTypeIDToken
}

// RequestedClaim is one claim demanded by an OIDC request object.
type RequestedClaim struct {
	// ID is the generated row identifier. Zero until persisted.
	ID        int64     `json:"id,omitempty"`
	Name      string    `json:"name" validate:"required,max=255"`
	Essential bool      `json:"essential"`
	Value     string    `json:"value,omitempty"`
	Type      ClaimType `json:"type,omitempty"`
	// Values holds the members of a multi-valued claim.
	Values []string `json:"values,omitempty"`
}

// RequestObjectReference links an authorization session to the code or
// token it produced.
type RequestObjectReference struct {
	ID             int64  `json:"id"`
	ConsumerKey    string `json:"consumer_key"`
	SessionDataKey string `json:"session_data_key"`
	CodeID         string `json:"code_id,omitempty"`
	TokenID        string `json:"token_id,omitempty"`
}
