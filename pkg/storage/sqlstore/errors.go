// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sqlstore

import (
	"errors"
	"fmt"

	"github.com/VividCortex/mysqlerr"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	oserrors "github.com/stacklok/oauthstore/pkg/errors"
	"github.com/stacklok/oauthstore/pkg/storage"
)

// pgUniqueViolation is the SQLSTATE PostgreSQL reports for duplicate keys.
const pgUniqueViolation = "23505"

// isUniqueViolation checks for a UNIQUE or PRIMARY KEY constraint violation
// reported by any of the supported drivers.
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite3.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlerr.ER_DUP_ENTRY
	}
	return false
}

// storageErr wraps a driver failure. Unique violations carry
// storage.ErrAlreadyExists so callers can match them with errors.Is.
func storageErr(msg string, err error) error {
	if isUniqueViolation(err) {
		return oserrors.NewStorageError(msg, fmt.Errorf("%w: %w", storage.ErrAlreadyExists, err))
	}
	return oserrors.NewStorageError(msg, err)
}

// adminErr reports a caller error with one of the storage sentinels as cause.
func adminErr(msg string, sentinel error) error {
	return oserrors.NewAdminError(msg, sentinel)
}
