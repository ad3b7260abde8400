// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package research

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestDefault_List(t *testing.T) {
	list := Default().List()

	var ids []string
	for _, s := range list.Items {
		ids = append(ids, s.ID)
	}
	want := []string{"low-pay-gap", "health-representation", "femicide-policy-brief"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestList_OmitsHeavyFields(t *testing.T) {
	body, err := json.Marshal(Default().List())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, field := range []string{`"results"`, `"keyFindings"`, `"leaderCountries"`, `"contentWarning"`} {
		if strings.Contains(string(body), field) {
			t.Errorf("list body contains %s", field)
		}
	}
	if !strings.Contains(string(body), `"variant":"brief"`) {
		t.Error("list body missing brief variant")
	}
}

func TestGet(t *testing.T) {
	c := Default()

	tests := []struct {
		id      string
		variant Variant
	}{
		{"low-pay-gap", VariantTemplate},
		{"health-representation", VariantTemplate},
		{"femicide-policy-brief", VariantBrief},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			e, err := c.Get(tt.id)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.id, err)
			}
			if e.Meta().Variant != tt.variant {
				t.Errorf("variant = %q, want %q", e.Meta().Variant, tt.variant)
			}
			if string(e.Meta().Variant) != e.Meta().Type {
				t.Errorf("variant %q disagrees with type %q", e.Meta().Variant, e.Meta().Type)
			}
		})
	}
}

func TestGet_Variants(t *testing.T) {
	c := Default()

	e, _ := c.Get("low-pay-gap")
	tmpl, ok := e.(*Template)
	if !ok {
		t.Fatalf("low-pay-gap is %T, want *Template", e)
	}
	if len(tmpl.Results) != 3 || tmpl.Results[0].Country != "Iceland" {
		t.Errorf("unexpected results: %+v", tmpl.Results)
	}
	if tmpl.Results[0].Values["Pay Gap"] != "3.2%" {
		t.Errorf("Iceland pay gap = %q", tmpl.Results[0].Values["Pay Gap"])
	}

	e, _ = c.Get("femicide-policy-brief")
	brief, ok := e.(*Brief)
	if !ok {
		t.Fatalf("femicide-policy-brief is %T, want *Brief", e)
	}
	if len(brief.KeyFindings) != 3 {
		t.Errorf("key findings = %d, want 3", len(brief.KeyFindings))
	}
	if brief.GapCountries[2].Name != "South Africa" || brief.GapCountries[2].FemicideRate != "4.2" {
		t.Errorf("unexpected gap country: %+v", brief.GapCountries[2])
	}
	if !strings.HasPrefix(brief.ContentWarning, "Content note:") {
		t.Errorf("content warning = %q", brief.ContentWarning)
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Default().Get("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestBrief_MarshalFlat(t *testing.T) {
	e, _ := Default().Get("femicide-policy-brief")
	body, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"id", "variant", "type", "keyFindings", "leaderCountries", "gapCountries", "contentWarning"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("marshalled brief missing %q", key)
		}
	}
	if _, ok := decoded["results"]; ok {
		t.Error("marshalled brief has results")
	}
}

func TestNewCatalog_DuplicateID(t *testing.T) {
	_, err := NewCatalog(lowPayGap(), lowPayGap())
	if err == nil {
		t.Error("NewCatalog() with duplicate ids should fail")
	}
}
