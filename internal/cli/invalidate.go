// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/equalityatlas/internal/cache"
)

// publishRefresh is swapped in tests.
var publishRefresh = cache.PublishRefresh

func newInvalidateCmd(opts *globalOptions) *cobra.Command {
	var natsURL, subject string

	defaultURL := os.Getenv("NATS_URL")
	if defaultURL == "" {
		defaultURL = "nats://127.0.0.1:4222"
	}
	defaultSubject := os.Getenv("NATS_REFRESH_SUBJECT")
	if defaultSubject == "" {
		defaultSubject = "atlas.data.refreshed"
	}

	cmd := &cobra.Command{
		Use:   "invalidate",
		Short: "Announce a data refresh so every API replica clears its cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			if err := publishRefresh(ctx, natsURL, subject); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "refresh published on %s\n", subject)
			return nil
		},
	}
	cmd.Flags().StringVar(&natsURL, "nats-url", defaultURL, "NATS server URL (env NATS_URL)")
	cmd.Flags().StringVar(&subject, "subject", defaultSubject, "refresh subject (env NATS_REFRESH_SUBJECT)")
	return cmd
}
