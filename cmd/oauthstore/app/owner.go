// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import "github.com/spf13/cobra"

// superTenantID is the tenant of principals that belong to no tenant.
const superTenantID = -1234

// ownerFlags identify the principal that owns a registration.
type ownerFlags struct {
	username   string
	userDomain string
	tenantID   int
}

func (o *ownerFlags) add(cmd *cobra.Command, required bool) {
	cmd.Flags().StringVar(&o.username, "owner", "", "Username of the owner")
	cmd.Flags().StringVar(&o.userDomain, "domain", "PRIMARY", "User store domain of the owner")
	addTenantFlag(cmd, &o.tenantID)
	if required {
		_ = cmd.MarkFlagRequired("owner")
	}
}

func addTenantFlag(cmd *cobra.Command, tenantID *int) {
	cmd.Flags().IntVar(tenantID, "tenant-id", superTenantID, "Tenant ID")
}
