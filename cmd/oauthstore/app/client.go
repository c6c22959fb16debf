// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stacklok/oauthstore/pkg/secret"
	"github.com/stacklok/oauthstore/pkg/storage"
)

// Default token lifetimes of new registrations, in milliseconds.
const (
	defaultUserAccessTokenExpiry = 3600000
	defaultAppAccessTokenExpiry  = 3600000
	defaultRefreshTokenExpiry    = 86400000
)

func newClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage registered OAuth client applications",
	}

	cmd.AddCommand(newClientRegisterCmd())
	cmd.AddCommand(newClientGetCmd())
	cmd.AddCommand(newClientListCmd())
	cmd.AddCommand(newClientDeleteCmd())
	cmd.AddCommand(newClientRenameCmd())
	cmd.AddCommand(newClientSetStateCmd())
	cmd.AddCommand(newClientRotateSecretCmd())

	return cmd
}

func newClientRegisterCmd() *cobra.Command {
	var (
		app    storage.ClientApplication
		owner  ownerFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a client application",
		Long: `Register a client application. A consumer key and secret are generated
unless given explicitly; the secret is printed once.`,
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
				taken, err := s.clients.ExistsByNameAndOwner(ctx, app.Username, app.TenantID, app.UserDomain, app.AppName)
				if err != nil {
					return err
				}
				if taken {
					return fmt.Errorf("%s already registered an application named %q", app.Username, app.AppName)
				}

				opts := storage.RegisterOptions{WithPKCE: true, WithAudiences: len(app.Audiences) > 0}
				if err := s.clients.Register(ctx, &app, opts); err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), format, &app, func() table { return clientDetailTable(&app, true) })
			})
		},
	}

	owner.add(cmd, true)
	cmd.Flags().StringVar(&app.ConsumerKey, "consumer-key", "", "Consumer key (generated when empty)")
	cmd.Flags().StringVar(&app.ConsumerSecret, "consumer-secret", "", "Consumer secret (generated when empty)")
	cmd.Flags().StringVar(&app.AppName, "name", "", "Application name")
	cmd.Flags().StringVar(&app.CallbackURL, "callback", "", "Redirect URI")
	cmd.Flags().StringVar(&app.OAuthVersion, "oauth-version", "OAuth-2.0", "OAuth version (OAuth-2.0 or OAuth-1.0a)")
	cmd.Flags().StringSliceVar(&app.GrantTypes, "grant-type", []string{"authorization_code", "refresh_token"},
		"Allowed grant types")
	cmd.Flags().StringSliceVar(&app.Audiences, "audience", nil, "Audience values of issued tokens")
	cmd.Flags().BoolVar(&app.PKCEMandatory, "pkce-mandatory", false, "Require PKCE on authorization requests")
	cmd.Flags().BoolVar(&app.PKCESupportPlain, "pkce-plain", false, "Accept the plain PKCE method")
	cmd.Flags().Int64Var(&app.UserAccessTokenExpiry, "user-token-expiry", defaultUserAccessTokenExpiry,
		"User access token lifetime in milliseconds")
	cmd.Flags().Int64Var(&app.AppAccessTokenExpiry, "app-token-expiry", defaultAppAccessTokenExpiry,
		"Application access token lifetime in milliseconds")
	cmd.Flags().Int64Var(&app.RefreshTokenExpiry, "refresh-token-expiry", defaultRefreshTokenExpiry,
		"Refresh token lifetime in milliseconds")
	_ = cmd.MarkFlagRequired("name")
	addFormatFlag(cmd, &format)

	return cmd
}

// fillCredentials generates the consumer key and secret the caller left empty.
func fillCredentials(app *storage.ClientApplication) error {
	if app.ConsumerKey == "" {
		key, err := secret.NewConsumerKey()
		if err != nil {
			return err
		}
		app.ConsumerKey = key
	}
	if app.ConsumerSecret == "" {
		s, err := secret.NewConsumerSecret()
		if err != nil {
			return err
		}
		app.ConsumerSecret = s
	}
	return nil
}

func newClientGetCmd() *cobra.Command {
	var (
		format     string
		showSecret bool
	)

	cmd := &cobra.Command{
		Use:   "get CONSUMER_KEY",
		Short: "Show a client application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				app, err := s.clients.GetByConsumerKey(ctx, args[0], true)
				if err != nil {
					return err
				}
				if app == nil {
					return fmt.Errorf("client %q: %w", args[0], storage.ErrUnknownConsumer)
				}
				if app.Audiences, err = s.clients.ListAudiences(ctx, app.TenantID, app.ConsumerKey); err != nil {
					return err
				}
				if !showSecret {
					app.ConsumerSecret = ""
				}
				return render(cmd.OutOrStdout(), format, app, func() table { return clientDetailTable(app, showSecret) })
			})
		},
	}

	cmd.Flags().BoolVar(&showSecret, "show-secret", false, "Include the consumer secret")
	addFormatFlag(cmd, &format)
	return cmd
}

func newClientListCmd() *cobra.Command {
	var (
		owner  ownerFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the client applications of an owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				apps, err := s.clients.ListByOwner(ctx, owner.username, owner.userDomain, owner.tenantID, true)
				if err != nil {
					return err
				}
				for i := range apps {
					apps[i].ConsumerSecret = ""
				}
				if format == FormatTable && len(apps) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No client applications found")
					return nil
				}
				return render(cmd.OutOrStdout(), format, apps, func() table { return clientListTable(apps) })
			})
		},
	}

	owner.add(cmd, true)
	addFormatFlag(cmd, &format)
	return cmd
}

func newClientDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CONSUMER_KEY",
		Short: "Deregister a client application",
		Long: `Deregister a client application together with its audiences, its request
object references and its OAuth 1.0a tokens.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				if err := s.clients.Deregister(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Client %s deregistered\n", args[0])
				return nil
			})
		},
	}
}

func newClientRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename CONSUMER_KEY NAME",
		Short: "Rename a client application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				if err := s.clients.UpdateName(ctx, args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Client %s renamed to %s\n", args[0], args[1])
				return nil
			})
		},
	}
}

func newClientSetStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set-state CONSUMER_KEY ACTIVE|REVOKED",
		Short:     "Change the lifecycle state of a client application",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(storage.AppStateActive), string(storage.AppStateRevoked)},
		RunE: func(cmd *cobra.Command, args []string) error {
			state := storage.AppState(strings.ToUpper(args[1]))
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				if err := s.clients.UpdateState(ctx, args[0], state); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Client %s is now %s\n", args[0], state)
				return nil
			})
		},
	}
}

func newClientRotateSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate-secret CONSUMER_KEY",
		Short: "Replace the consumer secret of a client application",
		Long:  `Replace the consumer secret with a generated one and print it. The old secret stops working at once.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newSecret, err := secret.NewConsumerSecret()
			if err != nil {
				return err
			}
			return withStores(cmd, func(ctx context.Context, s *storeSet) error {
				if err := s.clients.UpdateSecret(ctx, args[0], newSecret); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), newSecret)
				return nil
			})
		},
	}
}

func clientDetailTable(app *storage.ClientApplication, withSecret bool) table {
	rows := [][]string{
		{"Consumer Key", app.ConsumerKey},
	}
	if withSecret {
		rows = append(rows, []string{"Consumer Secret", app.ConsumerSecret})
	}
	rows = append(rows,
		[]string{"Name", app.AppName},
		[]string{"Owner", ownerString(app)},
		[]string{"OAuth Version", app.OAuthVersion},
		[]string{"Callback URL", app.CallbackURL},
		[]string{"Grant Types", strings.Join(app.GrantTypes, ", ")},
		[]string{"PKCE Mandatory", strconv.FormatBool(app.PKCEMandatory)},
		[]string{"PKCE Plain", strconv.FormatBool(app.PKCESupportPlain)},
		[]string{"Audiences", strings.Join(app.Audiences, ", ")},
		[]string{"State", string(app.State)},
	)
	return table{header: []string{"Field", "Value"}, rows: rows}
}

func clientListTable(apps []storage.ClientApplication) table {
	tbl := table{header: []string{"Consumer Key", "Name", "Grant Types", "PKCE", "State"}}
	for _, app := range apps {
		tbl.rows = append(tbl.rows, []string{
			app.ConsumerKey,
			app.AppName,
			strings.Join(app.GrantTypes, ", "),
			strconv.FormatBool(app.PKCEMandatory),
			string(app.State),
		})
	}
	return tbl
}

func ownerString(app *storage.ClientApplication) string {
	return fmt.Sprintf("%s/%s@%d", app.UserDomain, app.Username, app.TenantID)
}
