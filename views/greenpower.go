package views

import (
	"github.com/greenboard-org/greenboard/dataset"
	"github.com/greenboard-org/greenboard/engine"
)

// minRateGroup is the smallest department population that still yields a
// statistically meaningful adoption rate.
const minRateGroup = 5

// GreenPower renders the renewable-power view: fixed usage buckets and
// per-department adoption rates.
func GreenPower(records []dataset.Building, opts Options) ViewModel {
	buckets := engine.CountPercentBins(records,
		func(b dataset.Building) float64 { return b.PercentGreenPower },
		func(b dataset.Building) bool { return b.TotalElectricityUseKWh > 0 },
	)
	binLabels, binValues := countsToSeries(buckets)

	rates := engine.RateBy(records,
		func(b dataset.Building) string { return b.DepartmentName },
		func(b dataset.Building) bool { return b.HasRenewable() },
		minRateGroup, opts.TopN)
	rateLabels := make([]string, len(rates))
	rateValues := make([]float64, len(rates))
	for i, r := range rates {
		rateLabels[i] = r.Label
		rateValues[i] = r.Rate
	}

	return ViewModel{
		View:  ViewGreenPower,
		Title: "Green Power",
		Charts: []ChartSpec{
			{
				ID:      "greenpower-bins",
				Title:   "Green Power Usage",
				Type:    Bar,
				XLabel:  "Share of Electricity from Green Power",
				YLabel:  "Buildings",
				Labels:  binLabels,
				Values:  binValues,
				Palette: paletteFor(len(binLabels)),
				Target:  ClickTarget{Kind: TargetGreenPowerBin},
				Hints:   Hints{ShowPercentages: opts.ShowPercents},
				CaptionPrompt: captionPrompt("Green Power Usage",
					"A bar chart bucketing buildings by the share of their electricity sourced from green power."),
			},
			{
				ID:      "greenpower-rates",
				Title:   "Renewable Adoption by Department",
				Type:    Bar,
				XLabel:  "Department",
				YLabel:  "Buildings with Renewables (%)",
				Labels:  rateLabels,
				Values:  rateValues,
				Palette: paletteFor(len(rateLabels)),
				Target:  ClickTarget{Kind: TargetDepartment},
				CaptionPrompt: captionPrompt("Renewable Adoption by Department",
					"The percentage of each department's buildings that use onsite renewables or purchased green power. Departments with fewer than five buildings are omitted."),
			},
		},
	}
}
