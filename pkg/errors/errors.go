// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package errors defines the error kinds surfaced by the OAuth store.
package errors

import (
	"errors"
	"fmt"
)

// Error types
const (
	// ErrAdmin is returned for caller-recoverable failures: bad input,
	// guard mismatches and references to records that do not exist.
	ErrAdmin = "admin"

	// ErrStorage is returned when the database rejects or fails a statement,
	// a connection cannot be obtained, or a transaction cannot be committed.
	ErrStorage = "storage"
)

// Error represents an error in the application
type Error struct {
	// Type is the error type
	Type string

	// Message is the error message
	Message string

	// Cause is the underlying error
	Cause error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error
func NewError(errorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewAdminError creates a new administrative error
func NewAdminError(message string, cause error) *Error {
	return NewError(ErrAdmin, message, cause)
}

// NewStorageError creates a new storage error
func NewStorageError(message string, cause error) *Error {
	return NewError(ErrStorage, message, cause)
}

// IsAdmin checks if the error chain contains an administrative error
func IsAdmin(err error) bool {
	return isType(err, ErrAdmin)
}

// IsStorage checks if the error chain contains a storage error
func IsStorage(err error) bool {
	return isType(err, ErrStorage)
}

func isType(err error, errorType string) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == errorType
}
