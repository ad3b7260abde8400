// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/equalityatlas/internal/export"
	"github.com/tomtom215/equalityatlas/internal/models"
)

func newRankingsCmd(opts *globalOptions) *cobra.Command {
	var (
		limit  int
		region string
		csv    bool
	)
	cmd := &cobra.Command{
		Use:   "rankings <indicatorCode>",
		Short: "Rank locations by their latest value, best first",
		Long: `Rank locations by their latest value for an indicator, best first.

With --region the rows outside the region are dropped and the rest are
re-ranked with the indicator's polarity, using the same tie rules as the
server (equal values share a rank; ties are ordered by location name).
The full ranking is fetched first, so --limit counts regional rows.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			code := args[0]

			// The server export is used as is when no client-side filter applies.
			if csv && region == "" {
				body, err := c.RankingsCSV(ctx, code, limit)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}

			var res *models.RankingResult
			if region != "" {
				res, err = c.RegionalRankings(ctx, code, limit, region)
			} else {
				res, err = c.Rankings(ctx, code, limit)
			}
			if err != nil {
				return err
			}

			if csv {
				return export.WriteRankings(cmd.OutOrStdout(), *res)
			}
			renderRankings(cmd, res)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows shown (server default 200; all regional rows with --region)")
	cmd.Flags().StringVar(&region, "region", "", "keep only this region and re-rank")
	cmd.Flags().BoolVar(&csv, "csv", false, "write CSV instead of a table")
	return cmd
}

func renderRankings(cmd *cobra.Command, res *models.RankingResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, caption(res.Indicator, res.Display))

	table := newTable(out, []string{"Rank", "ISO3", "Location", "Region", "Year", "Value"})
	for _, row := range res.Items {
		table.Append([]string{
			strconv.Itoa(row.Rank),
			row.Location.ISO3,
			row.Location.Name,
			deref(row.Location.Region),
			strconv.Itoa(row.Year),
			export.FormatValue(row.Value),
		})
	}
	table.Render()
}
