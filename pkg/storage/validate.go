// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	oserrors "github.com/stacklok/oauthstore/pkg/errors"
)

// validate is shared; validator caches struct metadata and is safe for
// concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateClientApplication checks field constraints before any statement runs.
func ValidateClientApplication(app *ClientApplication) error {
	return validateStruct("client application", app)
}

// ValidateRequestTokenParams checks the inputs of IssueRequestToken.
func ValidateRequestTokenParams(params *RequestTokenParams) error {
	return validateStruct("request token", params)
}

// ValidateRequestedClaims checks every claim of every claim group.
func ValidateRequestedClaims(groups [][]RequestedClaim) error {
	for _, group := range groups {
		for i := range group {
			if err := validateStruct("requested claim", &group[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateStruct(what string, s any) error {
	if err := validate.Struct(s); err != nil {
		return oserrors.NewAdminError(
			fmt.Sprintf("invalid %s: %v", what, err),
			ErrInvalidInput,
		)
	}
	return nil
}
