// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stacklok/oauthstore/pkg/secret"
	"github.com/stacklok/oauthstore/pkg/storage"
)

func newConsumerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consumer",
		Short: "Manage OAuth 1.0a consumers",
	}

	cmd.AddCommand(newConsumerRegisterCmd())
	cmd.AddCommand(newConsumerRotateSecretCmd())
	cmd.AddCommand(newConsumerTokenCmd())

	return cmd
}

func newConsumerRegisterCmd() *cobra.Command {
	var (
		app    storage.ClientApplication
		owner  ownerFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a bare OAuth consumer",
		Long: `Register an OAuth consumer with credentials and an owner but no application
metadata. The key and secret are generated unless given explicitly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if err := fillCredentials(&app); err != nil {
				return err
			}
			app.Username, app.UserDomain, app.TenantID = owner.username, owner.userDomain, owner.tenantID

			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				if err := s.clients.RegisterConsumer(ctx, &app); err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), format, &app, func() table {
					return table{
						header: []string{"Consumer Key", "Consumer Secret", "Owner"},
						rows:   [][]string{{app.ConsumerKey, app.ConsumerSecret, ownerString(&app)}},
					}
				})
			})
		},
	}

	owner.add(cmd, true)
	cmd.Flags().StringVar(&app.ConsumerKey, "consumer-key", "", "Consumer key (generated when empty)")
	cmd.Flags().StringVar(&app.ConsumerSecret, "consumer-secret", "", "Consumer secret (generated when empty)")
	addFormatFlag(cmd, &format)
	return cmd
}

func newConsumerRotateSecretCmd() *cobra.Command {
	var owner ownerFlags

	cmd := &cobra.Command{
		Use:   "rotate-secret CONSUMER_KEY",
		Short: "Replace the secret of a consumer owned by the given user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newSecret, err := secret.NewConsumerSecret()
			if err != nil {
				return err
			}
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				err := s.clients.UpdateConsumerSecret(
					ctx, args[0], owner.username, owner.tenantID, owner.userDomain, newSecret)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), newSecret)
				return nil
			})
		},
	}

	owner.add(cmd, true)
	return cmd
}
