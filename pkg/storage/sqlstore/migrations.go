// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sqlstore

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

//go:embed migrations/*/*.sql
var embedMigrations embed.FS

func (d Dialect) gooseDialect() (database.Dialect, error) {
	switch d {
	case DialectSQLite:
		return database.DialectSQLite3, nil
	case DialectPostgres:
		return database.DialectPostgres, nil
	case DialectMySQL:
		return database.DialectMySQL, nil
	default:
		return "", fmt.Errorf("no migrations for dialect %q", d)
	}
}

func (d *DB) newMigrationProvider() (*goose.Provider, error) {
	gooseDialect, err := d.dialect.gooseDialect()
	if err != nil {
		return nil, err
	}

	// Each dialect keeps its files under migrations/<dialect>/; goose wants
	// a flat filesystem of .sql files.
	migrationFS, err := fs.Sub(embedMigrations, "migrations/"+string(d.dialect))
	if err != nil {
		return nil, fmt.Errorf("failed to create sub filesystem: %w", err)
	}

	provider, err := goose.NewProvider(gooseDialect, d.db, migrationFS)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return provider, nil
}

// Migrate applies all pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	provider, err := d.newMigrationProvider()
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, r := range results {
		d.logger.Debug("applied migration", "version", r.Source.Version, "duration", r.Duration)
	}

	return nil
}

// SchemaVersion returns the version of the most recently applied migration.
func (d *DB) SchemaVersion(ctx context.Context) (int64, error) {
	provider, err := d.newMigrationProvider()
	if err != nil {
		return 0, err
	}
	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
