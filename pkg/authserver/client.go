// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package authserver

import (
	"net"
	"net/url"
	"slices"
	"strings"

	"github.com/ory/fosite"

	"github.com/stacklok/oauthstore/pkg/storage"
)

const schemeHTTP = "http"

// Grant types that imply a response type at the authorization endpoint.
const (
	grantAuthorizationCode = "authorization_code"
	grantImplicit          = "implicit"
)

// Client is a fosite.Client backed by a registered client application.
//
// Redirect URIs are matched exactly, except that RFC 8252 Section 7.3
// loopback URIs may use any port.
type Client struct {
	app          storage.ClientApplication
	hashedSecret []byte
	scopes       []string
}

var _ fosite.Client = (*Client)(nil)

// GetID returns the consumer key.
func (c *Client) GetID() string { return c.app.ConsumerKey }

// GetHashedSecret returns the bcrypt hash of the consumer secret, or nil for
// public clients.
func (c *Client) GetHashedSecret() []byte { return c.hashedSecret }

// GetRedirectURIs returns the registered callback URL.
func (c *Client) GetRedirectURIs() []string {
	if c.app.CallbackURL == "" {
		return nil
	}
	return []string{c.app.CallbackURL}
}

// GetGrantTypes returns the grant types of the registration.
func (c *Client) GetGrantTypes() fosite.Arguments { return c.app.GrantTypes }

// GetResponseTypes derives the response types the grant types allow.
func (c *Client) GetResponseTypes() fosite.Arguments {
	var types fosite.Arguments
	if slices.Contains(c.app.GrantTypes, grantAuthorizationCode) {
		types = append(types, "code")
	}
	if slices.Contains(c.app.GrantTypes, grantImplicit) {
		types = append(types, "token", "id_token", "id_token token")
	}
	return types
}

// GetScopes returns the scopes the manager grants every client.
func (c *Client) GetScopes() fosite.Arguments { return c.scopes }

// GetAudience returns the audiences registered for the client.
func (c *Client) GetAudience() fosite.Arguments { return c.app.Audiences }

// IsPublic reports whether the client has no secret.
func (c *Client) IsPublic() bool { return c.app.ConsumerSecret == "" }

// PKCEMandatory reports whether authorization requests must carry a PKCE challenge.
func (c *Client) PKCEMandatory() bool { return c.app.PKCEMandatory }

// PKCESupportsPlain reports whether the plain PKCE method is accepted.
func (c *Client) PKCESupportsPlain() bool { return c.app.PKCESupportPlain }

// Application returns a copy of the underlying registration.
func (c *Client) Application() storage.ClientApplication { return c.app }

// MatchRedirectURI reports whether requestedURI may be used as the redirect URI.
func (c *Client) MatchRedirectURI(requestedURI string) bool {
	return c.GetMatchingRedirectURI(requestedURI) != ""
}

// GetMatchingRedirectURI returns the URI to redirect to, or "". For
// loopback matches the requested URI is returned so its port is kept.
func (c *Client) GetMatchingRedirectURI(requestedURI string) string {
	for _, registeredURI := range c.GetRedirectURIs() {
		if requestedURI == registeredURI {
			return registeredURI
		}
		if matchesAsLoopback(requestedURI, registeredURI) {
			return requestedURI
		}
	}
	return ""
}

// matchesAsLoopback applies the RFC 8252 Section 7.3 rules: http scheme,
// same loopback host, same path and query, any port.
func matchesAsLoopback(requestedURI, registeredURI string) bool {
	requested, err := url.Parse(requestedURI)
	if err != nil {
		return false
	}
	registered, err := url.Parse(registeredURI)
	if err != nil {
		return false
	}

	if requested.Scheme != schemeHTTP || registered.Scheme != schemeHTTP {
		return false
	}
	if !IsLoopbackHost(requested.Hostname()) || !IsLoopbackHost(registered.Hostname()) {
		return false
	}
	if !hostnamesMatch(requested.Hostname(), registered.Hostname()) {
		return false
	}
	return requested.Path == registered.Path && requested.RawQuery == registered.RawQuery
}

// IsLoopbackHost reports whether hostname is localhost, 127.0.0.1 or ::1.
func IsLoopbackHost(hostname string) bool {
	if strings.EqualFold(hostname, "localhost") {
		return true
	}
	ip := net.ParseIP(hostname)
	return ip != nil && ip.IsLoopback()
}

// hostnamesMatch compares localhost case-insensitively and IPs exactly.
// 127.0.0.1 and localhost are different hosts.
func hostnamesMatch(requested, registered string) bool {
	if strings.EqualFold(requested, "localhost") && strings.EqualFold(registered, "localhost") {
		return true
	}
	return requested == registered
}
