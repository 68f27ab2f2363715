package views

import (
	"time"

	"github.com/greenboard-org/greenboard/dataset"
	"github.com/greenboard-org/greenboard/engine"
)

// maxPlausibleAge caps building age; older values are almost always data
// entry errors (year built 190, 1008, ...).
const maxPlausibleAge = 250

// Age renders the building-age view. The histogram runs over age in years,
// so the usual ceil(max/targetBins) rule lands on familiar 10–25 year
// bands. Each bin carries its equivalent year-built range so a click can
// replace the year filter.
func Age(records []dataset.Building, opts Options) ViewModel {
	refYear := opts.referenceYear()

	hist := engine.Histogram(records,
		func(b dataset.Building) float64 {
			if b.YearBuilt <= 0 || b.YearBuilt > refYear {
				return -1 // unreported or future: excluded, reported separately
			}
			// Age 0 is a real measurement: a building completed in the
			// reference year still shows on the chart.
			return float64(refYear - b.YearBuilt)
		},
		engine.WithTargetBins(opts.TargetBins),
		engine.WithSanityCeiling(maxPlausibleAge),
		engine.WithIncludeZero(),
	)

	labels := make([]string, len(hist.Bins))
	values := make([]float64, len(hist.Bins))
	yearLowers := make([]float64, len(hist.Bins))
	for i, bin := range hist.Bins {
		labels[i] = bin.Label + " yrs"
		values[i] = float64(bin.Count)
		// Age band [lo, lo+size-1] equals years [ref-lo-size+1, ref-lo].
		yearLowers[i] = float64(refYear) - bin.Lower - hist.BinSize + 1
	}
	if len(hist.Bins) == 1 && hist.Bins[0].Label == engine.NoDataLabel {
		labels[0] = engine.NoDataLabel
	}

	oldest := engine.RankBy(withKnownYear(records),
		func(b dataset.Building) float64 { return float64(b.YearBuilt) },
		opts.TopN, false)
	oldLabels := make([]string, len(oldest))
	oldValues := make([]float64, len(oldest))
	for i, b := range oldest {
		oldLabels[i] = displayName(b)
		oldValues[i] = float64(b.YearBuilt)
	}

	return ViewModel{
		View:  ViewAge,
		Title: "Building Age",
		Charts: []ChartSpec{
			{
				ID:        "age-histogram",
				Title:     "Buildings by Age",
				Type:      Bar,
				XLabel:    "Age (years)",
				YLabel:    "Buildings",
				Labels:    labels,
				Values:    values,
				BinLowers: yearLowers,
				BinSize:   hist.BinSize,
				Palette:   paletteFor(len(labels)),
				Target:    ClickTarget{Kind: TargetAgeBin},
				Hints:     Hints{ShowPercentages: opts.ShowPercents},
				CaptionPrompt: captionPrompt("Buildings by Age",
					"A histogram of building ages in years; buildings with no recorded construction year are excluded."),
			},
			{
				ID:      "age-oldest",
				Title:   "Oldest Buildings",
				Type:    Bar,
				XLabel:  "Building",
				YLabel:  "Year Built",
				Labels:  oldLabels,
				Values:  oldValues,
				Palette: paletteFor(len(oldLabels)),
				Target:  ClickTarget{Kind: TargetNone},
			},
		},
	}
}

func withKnownYear(records []dataset.Building) []dataset.Building {
	known := make([]dataset.Building, 0, len(records))
	for _, b := range records {
		if b.YearBuilt > 0 {
			known = append(known, b)
		}
	}
	return known
}

func (o Options) referenceYear() int {
	if o.ReferenceYear > 0 {
		return o.ReferenceYear
	}
	return time.Now().Year()
}
