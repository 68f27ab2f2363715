package views

import (
	"github.com/greenboard-org/greenboard/dataset"
	"github.com/greenboard-org/greenboard/engine"
)

// Energy renders the site-energy view: distribution histogram and the
// largest consumers.
func Energy(records []dataset.Building, opts Options) ViewModel {
	hist := engine.Histogram(records,
		func(b dataset.Building) float64 { return b.SiteEnergyUseKbtu },
		engine.WithTargetBins(opts.TargetBins),
		engine.WithSanityCeiling(opts.SanityCeiling),
	)
	histLabels, histValues, histLowers := binsToSeries(hist)

	top := engine.RankBy(records,
		func(b dataset.Building) float64 { return b.SiteEnergyUseKbtu },
		opts.TopN, true)
	topLabels := make([]string, len(top))
	topValues := make([]float64, len(top))
	for i, b := range top {
		topLabels[i] = displayName(b)
		topValues[i] = b.SiteEnergyUseKbtu
	}

	return ViewModel{
		View:  ViewEnergy,
		Title: "Site Energy Use",
		Charts: []ChartSpec{
			{
				ID:        "energy-histogram",
				Title:     "Site Energy Use Distribution (kBtu)",
				Type:      Bar,
				XLabel:    "Site Energy Use (kBtu)",
				YLabel:    "Buildings",
				Labels:    histLabels,
				Values:    histValues,
				BinLowers: histLowers,
				BinSize:   hist.BinSize,
				Palette:   paletteFor(len(histLabels)),
				Target:    ClickTarget{Kind: TargetNone},
				Hints:     Hints{LogScale: opts.LogScale, ShowPercentages: opts.ShowPercents},
				CaptionPrompt: captionPrompt("Site Energy Use Distribution",
					"A histogram of annual site energy use in kBtu across the selected buildings; values of zero mean unreported or no use."),
			},
			{
				ID:      "energy-top",
				Title:   "Largest Energy Consumers",
				Type:    Bar,
				XLabel:  "Building",
				YLabel:  "Site Energy Use (kBtu)",
				Labels:  topLabels,
				Values:  topValues,
				Palette: paletteFor(len(topLabels)),
				Target:  ClickTarget{Kind: TargetNone},
				Hints:   Hints{LogScale: opts.LogScale},
				CaptionPrompt: captionPrompt("Largest Energy Consumers",
					"A ranking of the buildings with the highest annual site energy use."),
			},
		},
	}
}

func displayName(b dataset.Building) string {
	if b.PropertyName != "" {
		return b.PropertyName
	}
	if b.PropertyID != "" {
		return b.PropertyID
	}
	return "Unknown Property"
}
