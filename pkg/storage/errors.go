// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"errors"
	"net/http"

	"github.com/stacklok/toolhive-core/httperr"
)

// Sentinel causes carried inside errors from pkg/errors. Callers match them
// with errors.Is; the attached HTTP code lets an API layer map them directly.
var (
	// ErrAlreadyExists is returned when a unique constraint rejects an insert.
	ErrAlreadyExists = httperr.WithCode(
		errors.New("resource already exists"),
		http.StatusConflict,
	)

	// ErrSecretMismatch is returned when a secret-guarded update matched no row.
	ErrSecretMismatch = httperr.WithCode(
		errors.New("consumer key and secret do not match a registered application"),
		http.StatusConflict,
	)

	// ErrUnknownConsumer is returned when a consumer key resolves to no application.
	ErrUnknownConsumer = httperr.WithCode(
		errors.New("unknown consumer key"),
		http.StatusNotFound,
	)

	// ErrTokenNotFound is returned when a write targets a token that does not exist.
	ErrTokenNotFound = httperr.WithCode(
		errors.New("token not found"),
		http.StatusNotFound,
	)

	// ErrTokenNotAuthorized is returned when an unauthorized request token is redeemed.
	ErrTokenNotAuthorized = httperr.WithCode(
		errors.New("request token has not been authorized"),
		http.StatusBadRequest,
	)

	// ErrInconsistentToken is returned when an access token row is found but
	// one of its dependent columns cannot be read back.
	ErrInconsistentToken = httperr.WithCode(
		errors.New("access token record is inconsistent"),
		http.StatusInternalServerError,
	)

	// ErrUnknownClaimType is returned when a claim category is not recognized
	// and the store is configured to reject such claims.
	ErrUnknownClaimType = httperr.WithCode(
		errors.New("unknown requested claim type"),
		http.StatusBadRequest,
	)

	// ErrMissingGeneratedKey is returned when the database did not report the
	// identifier of an inserted row and the store is configured to fail.
	ErrMissingGeneratedKey = httperr.WithCode(
		errors.New("database returned no generated key"),
		http.StatusInternalServerError,
	)

	// ErrInvalidInput is the cause of validation failures.
	ErrInvalidInput = httperr.WithCode(
		errors.New("invalid input"),
		http.StatusBadRequest,
	)
)
