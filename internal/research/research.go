// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

// Package research serves the curated research templates and policy briefs.
//
// Entries are static and never touch the store. Each entry is one of two
// variants, modelled as a sealed interface:
//
//   - *Template carries a results table of countries meeting the criteria
//   - *Brief carries key findings, leader and gap countries, and a content note
//
// Both marshal flat, with a "variant" discriminator next to the published
// "type" field.
package research

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("research template not found")

// Variant discriminates the entry shapes.
type Variant string

// Variant values.
const (
	VariantTemplate Variant = "template"
	VariantBrief    Variant = "brief"
)

// Summary is the list projection shared by every entry.
type Summary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Variant     Variant  `json:"variant"`
	Type        string   `json:"type"`
	Topic       string   `json:"topic"`
	Years       string   `json:"years"`
	Criteria    []string `json:"criteria"`
	LastUpdated string   `json:"lastUpdated"`
	Sources     []string `json:"sources"`
}

// Entry is either a *Template or a *Brief.
type Entry interface {
	Meta() Summary
	entry()
}

// Result is one row of a template's results table.
type Result struct {
	Country          string            `json:"country"`
	Region           string            `json:"region"`
	Year             string            `json:"year"`
	Values           map[string]string `json:"values"`
	MeetsAllCriteria bool              `json:"meetsAllCriteria"`
}

// Template lists countries meeting a set of criteria.
type Template struct {
	Summary
	Results []Result `json:"results"`
}

// Meta returns the list projection.
func (t *Template) Meta() Summary { return t.Summary }
func (*Template) entry()          {}

// CountryFigure is a country highlighted in a brief.
type CountryFigure struct {
	Name          string `json:"name"`
	FemicideRate  string `json:"femicideRate"`
	MeasuresCount int    `json:"measuresCount"`
}

// Brief summarises findings on a sensitive topic.
type Brief struct {
	Summary
	KeyFindings     []string        `json:"keyFindings"`
	LeaderCountries []CountryFigure `json:"leaderCountries"`
	GapCountries    []CountryFigure `json:"gapCountries"`
	ContentWarning  string          `json:"contentWarning"`
}

// Meta returns the list projection.
func (b *Brief) Meta() Summary { return b.Summary }
func (*Brief) entry()          {}

// SummaryList is the body of the list endpoint.
type SummaryList struct {
	Items []Summary `json:"items"`
}

// Catalog is an immutable, ordered set of entries.
type Catalog struct {
	entries []Entry
	byID    map[string]Entry
}

// NewCatalog indexes entries by id. Duplicate ids are rejected.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: entries,
		byID:    make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		id := e.Meta().ID
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("duplicate research entry %q", id)
		}
		c.byID[id] = e
	}
	return c, nil
}

// List returns summaries in catalog order, without results or findings.
func (c *Catalog) List() SummaryList {
	items := make([]Summary, len(c.entries))
	for i, e := range c.entries {
		items[i] = e.Meta()
	}
	return SummaryList{Items: items}
}

// Get returns the full entry for id.
func (c *Catalog) Get(id string) (Entry, error) {
	e, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, nil
}
