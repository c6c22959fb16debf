// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "error with cause",
			err: &Error{
				Type:    ErrStorage,
				Message: "inserting client application",
				Cause:   errors.New("UNIQUE constraint failed"),
			},
			want: "storage: inserting client application: UNIQUE constraint failed",
		},
		{
			name: "error without cause",
			err: &Error{
				Type:    ErrAdmin,
				Message: "consumer secret does not match",
			},
			want: "admin: consumer secret does not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewStorageError("beginning transaction", cause)

	if got := err.Unwrap(); got != cause {
		t.Errorf("Error.Unwrap() = %v, want %v", got, cause)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is() did not find the cause")
	}

	if got := NewAdminError("no cause", nil).Unwrap(); got != nil {
		t.Errorf("Error.Unwrap() = %v, want nil", got)
	}
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		isAdmin   bool
		isStorage bool
	}{
		{name: "admin", err: NewAdminError("bad input", nil), isAdmin: true},
		{name: "storage", err: NewStorageError("statement failed", nil), isStorage: true},
		{name: "wrapped storage", err: fmt.Errorf("registering: %w", NewStorageError("x", nil)), isStorage: true},
		{name: "plain error", err: errors.New("plain")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsAdmin(tt.err); got != tt.isAdmin {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.isAdmin)
			}
			if got := IsStorage(tt.err); got != tt.isStorage {
				t.Errorf("IsStorage() = %v, want %v", got, tt.isStorage)
			}
		})
	}
}
