// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/equalityatlas/internal/export"
	"github.com/tomtom215/equalityatlas/internal/models"
	"github.com/tomtom215/equalityatlas/internal/ranking"
)

func newCompareCmd(opts *globalOptions) *cobra.Command {
	var (
		year      int
		locations string
		csv       bool
	)
	cmd := &cobra.Command{
		Use:   "compare <indicatorCode> [indicatorCode...]",
		Short: "Compare locations for one year",
		Long: `Compare locations for one or more indicators in an exact year.

Tables are printed one per indicator. With --csv a single matrix is written
with one row per indicator and one column per location.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := ranking.ParseLocations(locations)
			if len(codes) == 0 {
				return errors.New("--locations must name at least one location")
			}
			if year == 0 {
				return errors.New("--year is required")
			}

			c, err := opts.client(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if csv {
				body, err := c.CompareCSV(ctx, args, year, codes)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}

			for i, code := range args {
				res, err := c.Compare(ctx, code, year, codes)
				if err != nil {
					return fmt.Errorf("%s: %w", code, err)
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				renderComparison(cmd, res)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "exact year to compare (required)")
	cmd.Flags().StringVar(&locations, "locations", "", "comma-separated location codes (required)")
	cmd.Flags().BoolVar(&csv, "csv", false, "write the comparison matrix as CSV")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("locations")
	return cmd
}

func renderComparison(cmd *cobra.Command, res *models.ComparisonResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, caption(res.Indicator.Indicator, res.Display))

	table := newTable(out, []string{"Rank", "ISO3", "Location", "Value", "Note"})
	for _, row := range res.Items {
		table.Append([]string{
			strconv.Itoa(row.Rank),
			row.Location.ISO3,
			row.Location.Name,
			export.FormatValue(row.Value),
			deref(row.Note),
		})
	}
	table.Render()
}
