package views

import (
	"github.com/greenboard-org/greenboard/dataset"
	"github.com/greenboard-org/greenboard/engine"
)

// Efficiency renders the intensity view: floor area against energy
// intensity, plus the most and least efficient buildings. Only records
// with a meaningful floor area participate — tiny areas make absurd
// ratios.
func Efficiency(records []dataset.Building, opts Options) ViewModel {
	meaningful := make([]dataset.Building, 0, len(records))
	for _, b := range records {
		if b.EnergyIntensity() > 0 {
			meaningful = append(meaningful, b)
		}
	}

	points := make([]Point, len(meaningful))
	for i, b := range meaningful {
		points[i] = Point{
			X:          b.GrossFloorArea,
			Y:          b.EnergyIntensity(),
			Label:      displayName(b),
			PropertyID: b.PropertyID,
		}
	}

	best := engine.RankBy(meaningful,
		func(b dataset.Building) float64 { return b.EnergyIntensity() },
		opts.TopN, false)
	worst := engine.RankBy(meaningful,
		func(b dataset.Building) float64 { return b.EnergyIntensity() },
		opts.TopN, true)

	bestLabels, bestValues := intensitySeries(best)
	worstLabels, worstValues := intensitySeries(worst)

	return ViewModel{
		View:  ViewEfficiency,
		Title: "Energy Efficiency",
		Charts: []ChartSpec{
			{
				ID:      "efficiency-scatter",
				Title:   "Floor Area vs Energy Intensity",
				Type:    Scatter,
				XLabel:  "Gross Floor Area (sqft)",
				YLabel:  "Energy Intensity (kBtu/sqft)",
				Points:  points,
				Palette: paletteFor(1),
				Target:  ClickTarget{Kind: TargetScatterPoint},
				Hints:   Hints{LogScale: opts.LogScale},
				CaptionPrompt: captionPrompt("Floor Area vs Energy Intensity",
					"A scatter plot of building size against energy use per square foot for buildings with meaningful floor area."),
			},
			{
				ID:      "efficiency-best",
				Title:   "Most Efficient Buildings",
				Type:    Bar,
				XLabel:  "Building",
				YLabel:  "Energy Intensity (kBtu/sqft)",
				Labels:  bestLabels,
				Values:  bestValues,
				Palette: paletteFor(len(bestLabels)),
				Target:  ClickTarget{Kind: TargetNone},
			},
			{
				ID:      "efficiency-worst",
				Title:   "Least Efficient Buildings",
				Type:    Bar,
				XLabel:  "Building",
				YLabel:  "Energy Intensity (kBtu/sqft)",
				Labels:  worstLabels,
				Values:  worstValues,
				Palette: paletteFor(len(worstLabels)),
				Target:  ClickTarget{Kind: TargetNone},
			},
		},
	}
}

func intensitySeries(records []dataset.Building) ([]string, []float64) {
	labels := make([]string, len(records))
	values := make([]float64, len(records))
	for i, b := range records {
		labels[i] = displayName(b)
		values[i] = b.EnergyIntensity()
	}
	return labels, values
}
