package views

import (
	"github.com/greenboard-org/greenboard/dataset"
	"github.com/greenboard-org/greenboard/engine"
)

// Water renders the water-use view.
func Water(records []dataset.Building, opts Options) ViewModel {
	hist := engine.Histogram(records,
		func(b dataset.Building) float64 { return b.WaterUseKGal },
		engine.WithTargetBins(opts.TargetBins),
		engine.WithSanityCeiling(opts.SanityCeiling),
	)
	histLabels, histValues, histLowers := binsToSeries(hist)

	top := engine.RankBy(records,
		func(b dataset.Building) float64 { return b.WaterUseKGal },
		opts.TopN, true)
	topLabels := make([]string, len(top))
	topValues := make([]float64, len(top))
	for i, b := range top {
		topLabels[i] = displayName(b)
		topValues[i] = b.WaterUseKGal
	}

	return ViewModel{
		View:  ViewWater,
		Title: "Water Use",
		Charts: []ChartSpec{
			{
				ID:        "water-histogram",
				Title:     "Water Use Distribution (kGal)",
				Type:      Bar,
				XLabel:    "Water Use (kGal)",
				YLabel:    "Buildings",
				Labels:    histLabels,
				Values:    histValues,
				BinLowers: histLowers,
				BinSize:   hist.BinSize,
				Palette:   paletteFor(len(histLabels)),
				Target:    ClickTarget{Kind: TargetNone},
				Hints:     Hints{LogScale: opts.LogScale, ShowPercentages: opts.ShowPercents},
				CaptionPrompt: captionPrompt("Water Use Distribution",
					"A histogram of annual water use in thousands of gallons across the selected buildings."),
			},
			{
				ID:      "water-top",
				Title:   "Largest Water Users",
				Type:    Bar,
				XLabel:  "Building",
				YLabel:  "Water Use (kGal)",
				Labels:  topLabels,
				Values:  topValues,
				Palette: paletteFor(len(topLabels)),
				Target:  ClickTarget{Kind: TargetNone},
				Hints:   Hints{LogScale: opts.LogScale},
			},
		},
	}
}
