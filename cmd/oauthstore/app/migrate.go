// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stacklok/oauthstore/pkg/logger"
	"github.com/stacklok/oauthstore/pkg/storage/sqlstore"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long: `Apply every pending schema migration of the configured database and print
the resulting schema version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// migrated explicitly below so the version can be reported
			cfg.Database.Migrate = false

			ctx := cmd.Context()
			db, err := sqlstore.Open(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					logger.Warnf("Failed to close database: %v", err)
				}
			}()

			if err := db.Migrate(ctx); err != nil {
				return err
			}
			version, err := db.SchemaVersion(ctx)
			if err != nil {
				return err
			}
			logger.Infow("schema migrated", "driver", cfg.Database.Driver, "version", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Database schema is at version %d\n", version)
			return nil
		},
	}
}
