// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package app provides the commands of the oauthstore CLI.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/oauthstore/pkg/logger"
)

// NewRootCmd creates the root command of the oauthstore CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "oauthstore",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "oauthstore manages OAuth client registrations, OAuth 1.0a tokens and request-object claims",
		Long: `oauthstore administers the relational store behind an OAuth 2.0 / OpenID Connect
authorization server: registered client applications and their audiences,
OAuth 1.0a consumers, and the claims requested through OIDC request objects.

The database is selected in the configuration file or through OAUTHSTORE_*
environment variables, e.g. OAUTHSTORE_DATABASE_DRIVER=postgres.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Initialize()
		},
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				logger.Errorf("Error displaying help: %v", err)
			}
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Errorf("Error binding debug flag: %v", err)
	}

	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newClientCmd())
	rootCmd.AddCommand(newAudienceCmd())
	rootCmd.AddCommand(newConsumerCmd())
	rootCmd.AddCommand(newRequestObjectCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
