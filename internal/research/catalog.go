// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package research

// Default returns the curated catalog served by the API.
func Default() *Catalog {
	c, err := NewCatalog(lowPayGap(), healthRepresentation(), femicidePolicyBrief())
	if err != nil {
		// ids below are literals
		panic(err)
	}
	return c
}

func lowPayGap() *Template {
	return &Template{
		Summary: Summary{
			ID:          "low-pay-gap",
			Title:       "Countries with Lowest Gender Pay Gap",
			Description: "Countries where the gender pay gap is below 10% and female labor force participation exceeds 70%.",
			Variant:     VariantTemplate,
			Type:        "template",
			Topic:       "Economic Participation",
			Years:       "2023-2024",
			Criteria:    []string{"Pay Gap < 10%", "Female LFP ≥ 70%"},
			LastUpdated: "2024",
			Sources:     []string{"ILO", "World Bank"},
		},
		Results: []Result{
			{Country: "Iceland", Region: "Europe", Year: "2024", Values: map[string]string{"Pay Gap": "3.2%", "Female LFP": "82.5%"}, MeetsAllCriteria: true},
			{Country: "Sweden", Region: "Europe", Year: "2024", Values: map[string]string{"Pay Gap": "4.5%", "Female LFP": "80.5%"}, MeetsAllCriteria: true},
			{Country: "Norway", Region: "Europe", Year: "2024", Values: map[string]string{"Pay Gap": "5.1%", "Female LFP": "78.9%"}, MeetsAllCriteria: true},
		},
	}
}

func healthRepresentation() *Template {
	return &Template{
		Summary: Summary{
			ID:          "health-representation",
			Title:       "Low Maternal Mortality with High Political Representation",
			Description: "Countries with maternal mortality below 10 per 100k and women holding over 40% of parliamentary seats.",
			Variant:     VariantTemplate,
			Type:        "template",
			Topic:       "Health",
			Years:       "2023",
			Criteria:    []string{"Maternal Mortality < 10 per 100k", "Parliamentary Seats ≥ 40%"},
			LastUpdated: "2023",
			Sources:     []string{"WHO", "IPU"},
		},
		Results: []Result{
			{Country: "Rwanda", Region: "Africa", Year: "2023", Values: map[string]string{"Maternal Mortality (per 100k)": "8", "Parliamentary Seats": "61.3%"}, MeetsAllCriteria: true},
			{Country: "Sweden", Region: "Europe", Year: "2023", Values: map[string]string{"Maternal Mortality (per 100k)": "4", "Parliamentary Seats": "46.1%"}, MeetsAllCriteria: true},
			{Country: "New Zealand", Region: "Oceania", Year: "2023", Values: map[string]string{"Maternal Mortality (per 100k)": "9", "Parliamentary Seats": "48.3%"}, MeetsAllCriteria: true},
		},
	}
}

func femicidePolicyBrief() *Brief {
	return &Brief{
		Summary: Summary{
			ID:          "femicide-policy-brief",
			Title:       "Femicide & Policy Response Snapshot",
			Description: "Where low femicide rates coincide with active policy measures against violence, and where gaps remain.",
			Variant:     VariantBrief,
			Type:        "brief",
			Topic:       "Safety & Violence",
			Years:       "2018–2023",
			Criteria: []string{
				"Femicide rate < 1 per 100k (latest UNODC)",
				"≥ 3 UN Women VAW measures recorded since 2018",
			},
			LastUpdated: "2023",
			Sources:     []string{"UNODC", "UN Women – Data Map on Violence"},
		},
		KeyFindings: []string{
			"Across countries with available data, only about a dozen meet both conditions: low femicide rates and multiple recent measures documented in UN Women’s Data Map.",
			"Roughly half of countries with low femicide rates show no new measures in the last five years. Outcomes are positive, but evidence of ongoing policy work is weak.",
			"A smaller group combines high femicide rates with only one or two measures, pointing to gaps in implementation and enforcement rather than a complete absence of policy.",
		},
		LeaderCountries: []CountryFigure{
			{Name: "Spain", FemicideRate: "0.4", MeasuresCount: 6},
			{Name: "Canada", FemicideRate: "0.5", MeasuresCount: 5},
			{Name: "Rwanda", FemicideRate: "0.6", MeasuresCount: 4},
		},
		GapCountries: []CountryFigure{
			{Name: "Mexico", FemicideRate: "3.4", MeasuresCount: 2},
			{Name: "Brazil", FemicideRate: "3.1", MeasuresCount: 1},
			{Name: "South Africa", FemicideRate: "4.2", MeasuresCount: 2},
		},
		ContentWarning: "Content note: this brief discusses lethal violence against women (femicide).",
	}
}
