// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const rankingsJSON = `{
  "indicator": {"code": "MMR", "name": "Maternal mortality ratio", "description": null,
                "higher_is_better": false, "unit": {"code": "PER_100K", "name": null, "symbol": null}},
  "display": {"direction": "lower is better", "unitLabel": "PER_100K", "freshnessYear": 2023},
  "latestYear": 2023,
  "items": [
    {"rank": 1, "location": {"iso3": "ESP", "name": "Spain", "region": "Europe", "incomeGroup": "High"}, "year": 2020, "value": 3},
    {"rank": 2, "location": {"iso3": "MEX", "name": "Mexico", "region": "Americas", "incomeGroup": "Upper middle"}, "year": 2021, "value": 8},
    {"rank": 2, "location": {"iso3": "FRA", "name": "France", "region": "Europe", "incomeGroup": "High"}, "year": 2020, "value": 8},
    {"rank": 4, "location": {"iso3": "AFG", "name": "Afghanistan", "region": "Asia", "incomeGroup": "Low"}, "year": 2023, "value": 620}
  ]
}`

const compareJSON = `{
  "indicator": {"code": "WBL_INDEX", "name": "Women, Business and the Law", "description": null,
                "higher_is_better": true, "unit": {"code": "INDEX_0_100", "name": null, "symbol": null}, "year": 2023},
  "display": {"direction": "higher is better", "unitLabel": "INDEX_0_100", "freshnessYear": 2023},
  "items": [
    {"rank": 1, "year": 2023, "value": 96.9, "note": null, "status": null,
     "location": {"iso3": "FRA", "name": "France", "region": "Europe", "income_group": "High"}},
    {"rank": 2, "year": 2023, "value": 26.3, "note": "provisional", "status": null,
     "location": {"iso3": "AFG", "name": "Afghanistan", "region": "Asia", "income_group": "Low"}}
  ]
}`

// apiStub serves canned bodies by path and records the last query.
type apiStub struct {
	srv       *httptest.Server
	lastPath  string
	lastQuery string
}

func newAPIStub(t *testing.T) *apiStub {
	t.Helper()
	stub := &apiStub{}
	stub.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.lastPath, stub.lastQuery = r.URL.Path, r.URL.RawQuery
		switch r.URL.Path {
		case "/api/observations/rankings":
			_, _ = w.Write([]byte(rankingsJSON))
		case "/api/observations/rankings/export":
			_, _ = w.Write([]byte("Rank,Country,Value,Unit\n1,Spain,3,PER_100K\n"))
		case "/api/compare":
			_, _ = w.Write([]byte(compareJSON))
		case "/api/compare/export":
			_, _ = w.Write([]byte("Indicator,France,Afghanistan,Unit\n"))
		case "/api/indicators":
			_, _ = w.Write([]byte(`{"total": 7, "items": [
				{"code": "MMR", "name": "Maternal mortality ratio", "higher_is_better": false,
				 "unit": {"code": "PER_100K", "name": null, "symbol": null}, "latestYear": 2023, "coverageCount": 6}]}`))
		case "/api/health":
			_, _ = w.Write([]byte(`{"status": "degraded", "timestamp": "2026-03-08T12:00:00Z", "db": "down", "error": "database unreachable"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"message":"Route not found","details":null,"requestId":"r-1"}}`))
		}
	}))
	t.Cleanup(stub.srv.Close)
	return stub
}

// run executes atlasctl against the stub and returns stdout.
func (s *apiStub) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--api-url", s.srv.URL, "--rps", "0"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRankings_RegionReRanks(t *testing.T) {
	stub := newAPIStub(t)

	out, err := stub.run(t, "rankings", "MMR", "--region", "europe", "--csv")
	if err != nil {
		t.Fatalf("rankings: %v", err)
	}
	want := "Rank,Country,Value,Unit\n1,Spain,3,PER_100K\n2,France,8,PER_100K\n"
	if out != want {
		t.Errorf("csv =\n%s\nwant\n%s", out, want)
	}
}

func TestRankings_ServerExportWithoutRegion(t *testing.T) {
	stub := newAPIStub(t)

	out, err := stub.run(t, "rankings", "MMR", "--limit", "10", "--csv")
	if err != nil {
		t.Fatalf("rankings: %v", err)
	}
	if stub.lastPath != "/api/observations/rankings/export" || stub.lastQuery != "indicatorCode=MMR&limit=10" {
		t.Errorf("request = %s?%s", stub.lastPath, stub.lastQuery)
	}
	if !strings.HasPrefix(out, "Rank,Country,Value,Unit\n") {
		t.Errorf("out = %q", out)
	}
}

func TestRankings_Table(t *testing.T) {
	stub := newAPIStub(t)

	out, err := stub.run(t, "rankings", "MMR")
	if err != nil {
		t.Fatalf("rankings: %v", err)
	}
	for _, want := range []string{
		"Maternal mortality ratio (MMR): lower is better, unit PER_100K, latest year 2023",
		"Afghanistan",
		"620",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCompare(t *testing.T) {
	stub := newAPIStub(t)

	out, err := stub.run(t, "compare", "WBL_INDEX", "--year", "2023", "--locations", "FRA, AFG,FRA")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if stub.lastQuery != "indicatorCode=WBL_INDEX&locations=FRA%2CAFG&year=2023" {
		t.Errorf("query = %q", stub.lastQuery)
	}
	for _, want := range []string{"higher is better", "96.9", "provisional"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := stub.run(t, "compare", "WBL_INDEX", "MMR", "--year", "2023", "--locations", "FRA,AFG", "--csv"); err != nil {
		t.Fatalf("compare --csv: %v", err)
	}
	if stub.lastPath != "/api/compare/export" || !strings.Contains(stub.lastQuery, "indicatorCodes=WBL_INDEX%2CMMR") {
		t.Errorf("request = %s?%s", stub.lastPath, stub.lastQuery)
	}
}

func TestCompare_RequiresFlags(t *testing.T) {
	stub := newAPIStub(t)

	tests := [][]string{
		{"compare", "WBL_INDEX", "--locations", "FRA"},
		{"compare", "WBL_INDEX", "--year", "2023"},
		{"compare", "WBL_INDEX", "--year", "2023", "--locations", " , "},
		{"compare", "--year", "2023", "--locations", "FRA"},
	}
	for _, args := range tests {
		if _, err := stub.run(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestIndicators(t *testing.T) {
	stub := newAPIStub(t)

	out, err := stub.run(t, "indicators", "--q", "mortality", "--limit", "5")
	if err != nil {
		t.Fatalf("indicators: %v", err)
	}
	if stub.lastQuery != "limit=5&q=mortality" {
		t.Errorf("query = %q", stub.lastQuery)
	}
	if !strings.Contains(out, "lower is better") || !strings.Contains(out, "1 of 7 indicators") {
		t.Errorf("output:\n%s", out)
	}
}

func TestHealth_Degraded(t *testing.T) {
	stub := newAPIStub(t)

	out, err := stub.run(t, "health")
	if err == nil || !strings.Contains(err.Error(), "database unreachable") {
		t.Fatalf("err = %v, want degraded error", err)
	}
	if !strings.Contains(out, "status=degraded db=down") {
		t.Errorf("out = %q", out)
	}
}

func TestAPIErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"Indicator not found","details":null,"requestId":"r-1"}}`))
	}))
	t.Cleanup(srv.Close)

	_, err := (&apiStub{srv: srv}).run(t, "rankings", "NOPE")
	if err == nil || !strings.Contains(err.Error(), "Indicator not found") {
		t.Fatalf("err = %v", err)
	}
}

func TestInvalidate(t *testing.T) {
	var gotURL, gotSubject string
	orig := publishRefresh
	t.Cleanup(func() { publishRefresh = orig })
	publishRefresh = func(_ context.Context, url, subject string) error {
		gotURL, gotSubject = url, subject
		return nil
	}

	stub := newAPIStub(t)
	out, err := stub.run(t, "invalidate", "--nats-url", "nats://nats:4222", "--subject", "atlas.test")
	if err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if gotURL != "nats://nats:4222" || gotSubject != "atlas.test" {
		t.Errorf("published to %s %s", gotURL, gotSubject)
	}
	if out != "refresh published on atlas.test\n" {
		t.Errorf("out = %q", out)
	}

	publishRefresh = func(context.Context, string, string) error { return errors.New("no servers available") }
	if _, err := stub.run(t, "invalidate"); err == nil {
		t.Error("expected publish error")
	}
}
