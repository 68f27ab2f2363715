package views

import (
	"github.com/greenboard-org/greenboard/dataset"
	"github.com/greenboard-org/greenboard/engine"
)

// geographyTopN widens the usual ranking cut: city lists read fine at 20.
const geographyTopN = 20

// Geography renders the location view. City bars carry exact-match click
// semantics: clicking "Sacramento" selects that city, last click wins.
func Geography(records []dataset.Building, opts Options) ViewModel {
	cities := engine.CountBy(records, "City", func(b dataset.Building) string {
		return b.City
	})
	engine.SortCountsDesc(cities)
	cities = engine.TopCounts(cities, geographyTopN)
	cityLabels, cityValues := countsToSeries(cities)

	rates := engine.RateBy(records,
		func(b dataset.Building) string { return b.City },
		func(b dataset.Building) bool { return b.Certified() },
		minRateGroup, opts.TopN)
	rateLabels := make([]string, len(rates))
	rateValues := make([]float64, len(rates))
	for i, r := range rates {
		rateLabels[i] = r.Label
		rateValues[i] = r.Rate
	}

	return ViewModel{
		View:  ViewGeography,
		Title: "Geography",
		Charts: []ChartSpec{
			{
				ID:      "geography-cities",
				Title:   "Buildings by City",
				Type:    Bar,
				XLabel:  "City",
				YLabel:  "Buildings",
				Labels:  cityLabels,
				Values:  cityValues,
				Palette: paletteFor(len(cityLabels)),
				Target:  ClickTarget{Kind: TargetCity},
				Hints:   Hints{ShowPercentages: opts.ShowPercents},
				CaptionPrompt: captionPrompt("Buildings by City",
					"A bar chart of the cities with the most reporting buildings in the current selection."),
			},
			{
				ID:      "geography-leed",
				Title:   "LEED Certification Rate by City",
				Type:    Bar,
				XLabel:  "City",
				YLabel:  "Certified (%)",
				Labels:  rateLabels,
				Values:  rateValues,
				Palette: paletteFor(len(rateLabels)),
				Target:  ClickTarget{Kind: TargetCity},
			},
		},
	}
}
