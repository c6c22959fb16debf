// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oserrors "github.com/stacklok/oauthstore/pkg/errors"
)

func validApp() *ClientApplication {
	return &ClientApplication{
		ConsumerKey:    "key-1",
		ConsumerSecret: "secret-1",
		Username:       "alice",
		UserDomain:     "PRIMARY",
		TenantID:       -1234,
		AppName:        "console",
		OAuthVersion:   "OAuth-2.0",
		CallbackURL:    "https://example.com/cb",
		GrantTypes:     []string{"authorization_code", "refresh_token"},
	}
}

func TestValidateClientApplication(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*ClientApplication)
		wantErr string
	}{
		{name: "valid", mutate: func(*ClientApplication) {}},
		{name: "missing consumer key", mutate: func(a *ClientApplication) { a.ConsumerKey = "" }, wantErr: "consumer_key"},
		{name: "missing username", mutate: func(a *ClientApplication) { a.Username = "" }, wantErr: "username"},
		{name: "unknown oauth version", mutate: func(a *ClientApplication) { a.OAuthVersion = "OAuth-3" }, wantErr: "oauth_version"},
		{name: "empty oauth version allowed", mutate: func(a *ClientApplication) { a.OAuthVersion = "" }},
		{name: "empty grant type", mutate: func(a *ClientApplication) { a.GrantTypes = []string{"implicit", ""} }, wantErr: "grant_types"},
		{name: "negative expiry", mutate: func(a *ClientApplication) { a.RefreshTokenExpiry = -1 }, wantErr: "refresh_token_expire_time"},
		{name: "bad state", mutate: func(a *ClientApplication) { a.State = "PAUSED" }, wantErr: "app_state"},
		{name: "duplicate audience", mutate: func(a *ClientApplication) { a.Audiences = []string{"a", "a"} }, wantErr: "audiences"},
		{name: "oversized name", mutate: func(a *ClientApplication) { a.AppName = strings.Repeat("x", 256) }, wantErr: "app_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			app := validApp()
			tt.mutate(app)

			err := ValidateClientApplication(app)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, oserrors.IsAdmin(err))
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateRequestTokenParams(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateRequestTokenParams(&RequestTokenParams{
		ConsumerKey: "key-1", Token: "rt", Secret: "rs",
	}))

	err := ValidateRequestTokenParams(&RequestTokenParams{ConsumerKey: "key-1", Token: "rt"})
	require.Error(t, err)
	assert.True(t, oserrors.IsAdmin(err))
	assert.Contains(t, err.Error(), "Secret")
}

func TestValidateRequestedClaims(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateRequestedClaims(nil))
	require.NoError(t, ValidateRequestedClaims([][]RequestedClaim{
		{{Name: "email", Essential: true, Type: ClaimTypeUserInfo}},
		{{Name: "acr", Values: []string{"urn:mace:incommon:iap:silver"}, Type: ClaimTypeIDToken}},
	}))

	err := ValidateRequestedClaims([][]RequestedClaim{{{Name: "email"}, {Name: ""}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestGrantTypesRoundTrip(t *testing.T) {
	t.Parallel()

	joined := JoinGrantTypes([]string{"authorization_code", "refresh_token"})
	assert.Equal(t, "authorization_code refresh_token", joined)
	assert.Equal(t, []string{"authorization_code", "refresh_token"}, SplitGrantTypes(joined))
	assert.Empty(t, SplitGrantTypes(""))
}

func TestClaimTypeKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, ClaimTypeUserInfo.Known())
	assert.True(t, ClaimTypeIDToken.Known())
	assert.False(t, ClaimTypeUnspecified.Known())
	assert.False(t, ClaimType("access_token").Known())
}
