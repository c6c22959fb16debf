// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package secret generates consumer keys, consumer secrets and OAuth 1.0a
// token values.
package secret

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// secretBytes is the entropy of generated secrets and token secrets.
const secretBytes = 32

// NewConsumerKey returns a random version 4 UUID encoded as 22 URL-safe characters.
func NewConsumerKey() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate consumer key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(id[:]), nil
}

// NewConsumerSecret returns 32 random bytes encoded as URL-safe base64.
func NewConsumerSecret() (string, error) {
	return randomString(secretBytes)
}

// NewToken returns a value for an OAuth 1.0a request or access token.
func NewToken() string {
	return uuid.NewString()
}

// NewTokenSecret returns a secret for an OAuth 1.0a request or access token.
func NewTokenSecret() (string, error) {
	return randomString(secretBytes)
}

func randomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
