// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/tomtom215/equalityatlas/internal/models"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(true)
	table.SetHeader(header)
	return table
}

// caption summarizes how to read the values: indicator, direction, unit
// label and the freshest year shown.
func caption(ind models.Indicator, d models.Display) string {
	s := fmt.Sprintf("%s (%s): %s, unit %s", ind.Name, ind.Code, d.Direction, d.UnitLabel)
	if d.FreshnessYear != nil {
		s += fmt.Sprintf(", latest year %d", *d.FreshnessYear)
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
