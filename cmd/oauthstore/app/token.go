// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stacklok/oauthstore/pkg/secret"
	"github.com/stacklok/oauthstore/pkg/storage"
)

func newConsumerTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the OAuth 1.0a tokens of a consumer",
		Long: `Walk an OAuth 1.0a token through its lifecycle: issue a request token,
authorize it on behalf of a user, redeem it for an access token and
dereference the access token.`,
	}

	cmd.AddCommand(newTokenIssueCmd())
	cmd.AddCommand(newTokenAuthorizeCmd())
	cmd.AddCommand(newTokenRedeemCmd())
	cmd.AddCommand(newTokenDereferenceCmd())

	return cmd
}

func newTokenIssueCmd() *cobra.Command {
	var (
		params storage.RequestTokenParams
		format string
	)

	cmd := &cobra.Command{
		Use:   "issue CONSUMER_KEY",
		Short: "Issue an unauthorized request token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			tokenSecret, err := secret.NewTokenSecret()
			if err != nil {
				return err
			}
			params.ConsumerKey = args[0]
			params.Token = secret.NewToken()
			params.Secret = tokenSecret

			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				if err := s.oauth1.IssueRequestToken(ctx, params); err != nil {
					return err
				}
				rt, err := s.oauth1.GetRequestToken(ctx, params.Token)
				if err != nil {
					return err
				}
				if rt == nil {
					return fmt.Errorf("request token %q: %w", params.Token, storage.ErrTokenNotFound)
				}
				return render(cmd.OutOrStdout(), format, rt, func() table { return requestTokenTable(rt) })
			})
		},
	}

	cmd.Flags().StringVar(&params.CallbackURL, "callback", "", "Callback URL of the request token")
	cmd.Flags().StringVar(&params.Scope, "scope", "", "Requested scope")
	addFormatFlag(cmd, &format)
	return cmd
}

func newTokenAuthorizeCmd() *cobra.Command {
	var user, verifier string

	cmd := &cobra.Command{
		Use:   "authorize REQUEST_TOKEN",
		Short: "Authorize a request token on behalf of a user",
		Long:  `Authorize a request token and print the verifier. A verifier is generated unless given.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verifier == "" {
				v, err := secret.NewTokenSecret()
				if err != nil {
					return err
				}
				verifier = v
			}
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				if err := s.oauth1.AuthorizeRequestToken(ctx, args[0], verifier, user); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), verifier)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User approving the request token")
	cmd.Flags().StringVar(&verifier, "verifier", "", "OAuth verifier (generated when empty)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newTokenRedeemCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "redeem REQUEST_TOKEN",
		Short: "Exchange an authorized request token for an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			accessSecret, err := secret.NewTokenSecret()
			if err != nil {
				return err
			}
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				at, err := s.oauth1.RedeemForAccessToken(ctx, args[0], secret.NewToken(), accessSecret)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), format, at, func() table {
					return table{
						header: []string{"Access Token", "Access Token Secret", "Scope", "Authorized User"},
						rows:   [][]string{{at.Token, at.Secret, at.Scope, at.AuthorizedUser}},
					}
				})
			})
		},
	}

	addFormatFlag(cmd, &format)
	return cmd
}

func newTokenDereferenceCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dereference ACCESS_TOKEN",
		Short: "Show the scope, secret and user of an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				info, err := s.oauth1.Dereference(ctx, args[0])
				if err != nil {
					return err
				}
				if info == nil {
					return fmt.Errorf("access token %q: %w", args[0], storage.ErrTokenNotFound)
				}
				return render(cmd.OutOrStdout(), format, info, func() table {
					return table{
						header: []string{"Scope", "Secret", "Authorized User"},
						rows:   [][]string{{info.Scope, info.Secret, info.AuthorizedUser}},
					}
				})
			})
		},
	}

	addFormatFlag(cmd, &format)
	return cmd
}

func requestTokenTable(rt *storage.RequestToken) table {
	return table{
		header: []string{"Request Token", "Request Token Secret", "Callback URL", "Scope", "Authorized"},
		rows: [][]string{{
			rt.Token, rt.Secret, rt.CallbackURL, rt.Scope, strconv.FormatBool(rt.Authorized),
		}},
	}
}
