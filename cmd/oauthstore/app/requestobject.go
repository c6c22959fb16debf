// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stacklok/oauthstore/pkg/storage"
)

func newRequestObjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "requestobject",
		Aliases: []string{"ro"},
		Short:   "Inspect the claims requested through OIDC request objects",
	}

	cmd.AddCommand(newRequestObjectClaimsCmd())
	cmd.AddCommand(newRequestObjectReferenceCmd())

	return cmd
}

// lookupFlags select a request object reference by session or by token.
type lookupFlags struct {
	session     string
	accessToken string
}

func (l *lookupFlags) add(cmd *cobra.Command, tokenUsage string) {
	cmd.Flags().StringVar(&l.session, "session", "", "Session data key of the authorization request")
	cmd.Flags().StringVar(&l.accessToken, "access-token", "", tokenUsage)
	cmd.MarkFlagsMutuallyExclusive("session", "access-token")
	cmd.MarkFlagsOneRequired("session", "access-token")
}

func newRequestObjectClaimsCmd() *cobra.Command {
	var (
		lookup   lookupFlags
		userInfo bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "claims",
		Short: "List the claims an authorization request demanded",
		Long: `List the id_token claims, or with --userinfo the userinfo claims, that the
request object of an authorization session demanded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				var (
					claims []storage.RequestedClaim
					err    error
				)
				if lookup.session != "" {
					claims, err = s.requestObjects.ClaimsBySessionKey(ctx, lookup.session, userInfo)
				} else {
					claims, err = s.requestObjects.ClaimsByAccessToken(ctx, lookup.accessToken, userInfo)
				}
				if err != nil {
					return err
				}
				if format == FormatTable && len(claims) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No claims requested")
					return nil
				}
				return render(cmd.OutOrStdout(), format, claims, func() table { return claimsTable(claims) })
			})
		},
	}

	lookup.add(cmd, "Access token the session was bound to")
	cmd.Flags().BoolVar(&userInfo, "userinfo", false, "List userinfo claims instead of id_token claims")
	addFormatFlag(cmd, &format)
	return cmd
}

func newRequestObjectReferenceCmd() *cobra.Command {
	var (
		lookup lookupFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Show the request object reference of a session or token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				var (
					ref *storage.RequestObjectReference
					err error
				)
				if lookup.session != "" {
					ref, err = s.requestObjects.GetReferenceBySessionKey(ctx, lookup.session)
				} else {
					ref, err = s.requestObjects.GetReferenceByTokenID(ctx, lookup.accessToken)
				}
				if err != nil {
					return err
				}
				if ref == nil {
					return errors.New("no request object reference found")
				}
				return render(cmd.OutOrStdout(), format, ref, func() table {
					return table{
						header: []string{"ID", "Consumer Key", "Session", "Code ID", "Token ID"},
						rows: [][]string{{
							strconv.FormatInt(ref.ID, 10), ref.ConsumerKey, ref.SessionDataKey, ref.CodeID, ref.TokenID,
						}},
					}
				})
			})
		},
	}

	lookup.add(cmd, "Token id the reference is bound to")
	addFormatFlag(cmd, &format)
	return cmd
}

func claimsTable(claims []storage.RequestedClaim) table {
	tbl := table{header: []string{"Name", "Essential", "Value", "Values"}}
	for _, c := range claims {
		tbl.rows = append(tbl.rows, []string{
			c.Name,
			strconv.FormatBool(c.Essential),
			c.Value,
			strings.Join(c.Values, ", "),
		})
	}
	return tbl
}
