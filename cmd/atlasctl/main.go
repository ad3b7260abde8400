// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

// Command atlasctl queries the Equality Atlas API from the terminal.
//
//	atlasctl rankings MMR --region Europe
//	atlasctl compare WBL_INDEX --year 2023 --locations FRA,SWE,AFG
//	atlasctl indicators --q violence
//	atlasctl health
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/equalityatlas/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx)
	cancel()
	os.Exit(int(code))
}
