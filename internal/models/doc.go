// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

/*
Package models defines the data structures shared by the store, the HTTP
surface and API consumers.

All entities are read-only reference data populated by the ingestion pipeline:

  - Indicator: a statistical series with a polarity flag (higher_is_better)
  - Location: a country or aggregate, addressed by ISO3 when it has one
  - Observation: one value for (indicator, location, year, demographic dimensions)
  - Policy: a recorded measure against violence against women

Computed rows:

  - RankingRow: latest value per location, ranked by polarity
  - ComparisonRow: one value per requested location for an exact year, ranked
    within the requested subset only

JSON tags follow the published API contract, which mixes snake_case (indicator
metadata, comparison rows) and camelCase (ranking rows, list statistics). The
tags are the contract; do not normalise them.
*/
package models
