// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the oauthstore administration CLI.
package main

import (
	"os"

	"github.com/stacklok/oauthstore/cmd/oauthstore/app"
	"github.com/stacklok/oauthstore/pkg/logger"
)

func main() {
	logger.Initialize()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
