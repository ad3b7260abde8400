// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/equalityatlas/internal/models"
	"github.com/tomtom215/equalityatlas/internal/ranking"
)

// IndicatorQuery filters the indicator catalog. Zero values are omitted.
type IndicatorQuery struct {
	Query  string
	Domain string
	Limit  int
	Offset int
}

func (q IndicatorQuery) values() url.Values {
	v := url.Values{}
	setString(v, "q", q.Query)
	setString(v, "domain", q.Domain)
	setInt(v, "limit", q.Limit)
	setInt(v, "offset", q.Offset)
	return v
}

// Indicators lists the indicator catalog.
func (c *Client) Indicators(ctx context.Context, q IndicatorQuery) (*models.IndicatorList, error) {
	var out models.IndicatorList
	if err := c.getJSON(ctx, "/api/indicators", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Indicator fetches one indicator's metadata.
func (c *Client) Indicator(ctx context.Context, code string) (*models.Indicator, error) {
	var out models.Indicator
	if err := c.getJSON(ctx, "/api/indicators/"+url.PathEscape(code), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rankings fetches the ranking for an indicator. A limit of zero uses the
// server default.
func (c *Client) Rankings(ctx context.Context, indicatorCode string, limit int) (*models.RankingResult, error) {
	var out models.RankingResult
	if err := c.getJSON(ctx, "/api/observations/rankings", rankingValues(indicatorCode, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MaxRankingLimit is the largest limit the server accepts for rankings.
const MaxRankingLimit = 1000

// RegionalRankings fetches the full ranking and keeps only the locations of
// region, re-ranked within that subset with the indicator's polarity. limit
// applies to the regional rows; zero keeps them all. Display is resolved
// again so the freshness year reflects the kept rows.
func (c *Client) RegionalRankings(ctx context.Context, indicatorCode string, limit int, region string) (*models.RankingResult, error) {
	res, err := c.Rankings(ctx, indicatorCode, MaxRankingLimit)
	if err != nil {
		return nil, err
	}
	res.Items = ranking.FilterRegion(res.Indicator.Polarity(), res.Items, region)
	if limit > 0 && len(res.Items) > limit {
		res.Items = res.Items[:limit]
	}
	res.LatestYear = ranking.LatestYear(res.Items)
	res.Display = ranking.ResolveDisplay(res.Indicator, res.LatestYear)
	return res, nil
}

// RankingsCSV downloads the rankings export.
func (c *Client) RankingsCSV(ctx context.Context, indicatorCode string, limit int) ([]byte, error) {
	resp, err := c.get(ctx, "/api/observations/rankings/export", rankingValues(indicatorCode, limit))
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

// Compare ranks locations for one indicator and exact year.
func (c *Client) Compare(ctx context.Context, indicatorCode string, year int, locations []string) (*models.ComparisonResult, error) {
	v := compareValues(year, locations)
	v.Set("indicatorCode", indicatorCode)

	var out models.ComparisonResult
	if err := c.getJSON(ctx, "/api/compare", v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompareCSV downloads the comparison matrix for several indicators.
func (c *Client) CompareCSV(ctx context.Context, indicatorCodes []string, year int, locations []string) ([]byte, error) {
	v := compareValues(year, locations)
	v.Set("indicatorCodes", strings.Join(indicatorCodes, ","))

	resp, err := c.get(ctx, "/api/compare/export", v)
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

// Health returns the service health document.
func (c *Client) Health(ctx context.Context) (*models.HealthStatus, error) {
	var out models.HealthStatus
	if err := c.getJSON(ctx, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func rankingValues(indicatorCode string, limit int) url.Values {
	v := url.Values{}
	v.Set("indicatorCode", indicatorCode)
	setInt(v, "limit", limit)
	return v
}

func compareValues(year int, locations []string) url.Values {
	v := url.Values{}
	v.Set("year", strconv.Itoa(year))
	v.Set("locations", strings.Join(locations, ","))
	return v
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value int) {
	if value != 0 {
		v.Set(key, strconv.Itoa(value))
	}
}
