package views

import (
	"fmt"

	"github.com/greenboard-org/greenboard/dataset"
	"github.com/greenboard-org/greenboard/engine"
)

// Overview renders the landing view: who reports buildings, what kinds,
// and how much of the stock is certified.
func Overview(records []dataset.Building, opts Options) ViewModel {
	departments := engine.CountBy(records, "Department", func(b dataset.Building) string {
		return b.DepartmentName
	})
	engine.SortCountsDesc(departments)
	departments = engine.TopCounts(departments, opts.TopN)
	deptLabels, deptValues := countsToSeries(departments)

	types := engine.CountBy(records, "Type", func(b dataset.Building) string {
		return b.PrimaryPropertyType
	})
	engine.SortCountsDesc(types)
	types = engine.TopCounts(types, opts.TopN)
	typeLabels, typeValues := countsToSeries(types)

	certified := 0
	for _, b := range records {
		if b.Certified() {
			certified++
		}
	}

	return ViewModel{
		View:  ViewOverview,
		Title: "Portfolio Overview",
		Charts: []ChartSpec{
			{
				ID:      "overview-departments",
				Title:   "Buildings by Department",
				Type:    Bar,
				XLabel:  "Department",
				YLabel:  "Buildings",
				Labels:  deptLabels,
				Values:  deptValues,
				Palette: paletteFor(len(deptLabels)),
				Target:  ClickTarget{Kind: TargetDepartment},
				Hints:   Hints{ShowPercentages: opts.ShowPercents},
				CaptionPrompt: captionPrompt("Buildings by Department",
					fmt.Sprintf("A bar chart of the %d departments reporting the most buildings, out of %d buildings in the current selection.", len(deptLabels), len(records))),
			},
			{
				ID:      "overview-types",
				Title:   "Buildings by Property Type",
				Type:    Doughnut,
				Labels:  typeLabels,
				Values:  typeValues,
				Palette: paletteFor(len(typeLabels)),
				Target:  ClickTarget{Kind: TargetPropertyType},
				Hints:   Hints{ShowPercentages: opts.ShowPercents},
				CaptionPrompt: captionPrompt("Buildings by Property Type",
					"A doughnut chart of the most common primary property types in the current selection."),
			},
			{
				ID:      "overview-leed",
				Title:   "LEED Certification",
				Type:    Pie,
				Labels:  []string{"Certified", "Not Certified"},
				Values:  []float64{float64(certified), float64(len(records) - certified)},
				Palette: []string{"#10B981", "#9CA3AF"},
				Target:  ClickTarget{Kind: TargetNone},
				Hints:   Hints{ShowPercentages: opts.ShowPercents},
			},
		},
	}
}
