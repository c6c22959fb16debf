// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newAudienceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audience",
		Short: "Manage the audiences of a client application",
	}

	cmd.AddCommand(newAudienceListCmd())
	cmd.AddCommand(newAudienceRemoveCmd())

	return cmd
}

func newAudienceListCmd() *cobra.Command {
	var (
		tenantID int
		byName   bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "list CONSUMER_KEY",
		Short: "List the audiences of a client application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				var (
					audiences []string
					err       error
				)
				if byName {
					audiences, err = s.clients.ListAudiencesByAppName(ctx, tenantID, args[0])
				} else {
					audiences, err = s.clients.ListAudiences(ctx, tenantID, args[0])
				}
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), format, audiences, func() table {
					tbl := table{header: []string{"Audience"}}
					for _, a := range audiences {
						tbl.rows = append(tbl.rows, []string{a})
					}
					return tbl
				})
			})
		},
	}

	addTenantFlag(cmd, &tenantID)
	cmd.Flags().BoolVar(&byName, "by-name", false, "Treat the argument as an application name")
	addFormatFlag(cmd, &format)
	return cmd
}

func newAudienceRemoveCmd() *cobra.Command {
	var tenantID int

	cmd := &cobra.Command{
		Use:   "remove CONSUMER_KEY AUDIENCE",
		Short: "Remove an audience from a client application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				if err := s.clients.RemoveAudience(ctx, tenantID, args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Audience %s removed from %s\n", args[1], args[0])
				return nil
			})
		},
	}

	addTenantFlag(cmd, &tenantID)
	return cmd
}
