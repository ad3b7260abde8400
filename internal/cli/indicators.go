// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/equalityatlas/internal/client"
	"github.com/tomtom215/equalityatlas/internal/ranking"
)

func newIndicatorsCmd(opts *globalOptions) *cobra.Command {
	var q client.IndicatorQuery
	cmd := &cobra.Command{
		Use:   "indicators",
		Short: "List the indicator catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client(cmd)
			if err != nil {
				return err
			}
			list, err := c.Indicators(cmd.Context(), q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			table := newTable(out, []string{"Code", "Name", "Direction", "Unit", "Latest", "Coverage"})
			for _, ind := range list.Items {
				d := ranking.ResolveDisplay(ind, ind.LatestYear)
				latest, coverage := "", ""
				if ind.LatestYear != nil {
					latest = strconv.Itoa(*ind.LatestYear)
				}
				if ind.CoverageCount != nil {
					coverage = strconv.Itoa(*ind.CoverageCount)
				}
				table.Append([]string{ind.Code, ind.Name, d.Direction, d.UnitLabel, latest, coverage})
			}
			table.Render()
			fmt.Fprintf(out, "%d of %d indicators\n", len(list.Items), list.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&q.Query, "q", "", "case-insensitive match on code or name")
	cmd.Flags().StringVar(&q.Domain, "domain", "", "domain code")
	cmd.Flags().IntVar(&q.Limit, "limit", 0, "page size (server default 50)")
	cmd.Flags().IntVar(&q.Offset, "offset", 0, "page offset")
	return cmd
}
