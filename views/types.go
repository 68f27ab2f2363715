package views

import (
	"github.com/greenboard-org/greenboard/engine"
)

// ============================================================================
// VIEW-MODEL TYPES — Declarative output of the visualization renderers
// ============================================================================
// A renderer turns the active record set into chart specs: aggregation
// result + presentation hints + click semantics. A thin adapter (terminal
// text, PNG via the charts package, or a browser frontend) turns specs into
// actual output; the core stays UI-framework-agnostic.
// ============================================================================

// View identifies one dashboard view.
type View string

const (
	ViewOverview   View = "overview"
	ViewEnergy     View = "energy"
	ViewGreenPower View = "greenpower"
	ViewWater      View = "water"
	ViewGeography  View = "geography"
	ViewAge        View = "age"
	ViewEfficiency View = "efficiency"
)

// All lists every dashboard view in navigation order.
var All = []View{
	ViewOverview, ViewEnergy, ViewGreenPower, ViewWater,
	ViewGeography, ViewAge, ViewEfficiency,
}

// ChartType declares how a spec wants to be drawn.
type ChartType string

const (
	Bar      ChartType = "bar"
	Doughnut ChartType = "doughnut"
	Pie      ChartType = "pie"
	Scatter  ChartType = "scatter"
)

// TargetKind is the semantic category of a chart element, attached to the
// spec at creation time so click handling never has to infer meaning from
// chart ids.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetDepartment
	TargetPropertyType
	TargetCity
	TargetAgeBin
	TargetGreenPowerBin
	TargetScatterPoint
)

// ClickTarget tags a chart with its click interpretation.
type ClickTarget struct {
	Kind TargetKind
}

// Point is one scatter-chart point. PropertyID links the point back to its
// record for drill-downs.
type Point struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Label      string  `json:"label"`
	PropertyID string  `json:"propertyId"`
}

// Hints are purely presentational switches. They must never alter the
// underlying aggregation.
type Hints struct {
	// LogScale requests a logarithmic value axis. Renderers clamp the
	// axis minimum to 1 — histograms have no zero-valued bars to show on
	// a log scale.
	LogScale bool `json:"logScale"`
	// ShowPercentages requests percent-of-total labels next to counts.
	ShowPercentages bool `json:"showPercentages"`
}

// ChartSpec is one renderable chart: labels/values (or points), palette,
// click semantics, and an optional caption prompt for the narrative
// collaborator.
type ChartSpec struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Type   ChartType `json:"type"`
	XLabel string    `json:"xLabel,omitempty"`
	YLabel string    `json:"yLabel,omitempty"`

	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`
	Points []Point   `json:"points,omitempty"`

	// BinLowers and BinSize carry histogram geometry so a bin click can be
	// mapped back to an inclusive value range.
	BinLowers []float64 `json:"binLowers,omitempty"`
	BinSize   float64   `json:"binSize,omitempty"`

	Palette []string    `json:"palette,omitempty"`
	Target  ClickTarget `json:"-"`
	Hints   Hints       `json:"hints"`

	// CaptionPrompt, when non-empty, asks the narrative collaborator for a
	// short caption. Rendering never waits on it.
	CaptionPrompt string `json:"-"`
}

// ViewModel is the full declarative output of one view render.
type ViewModel struct {
	View   View        `json:"view"`
	Title  string      `json:"title"`
	Charts []ChartSpec `json:"charts"`

	// Err is set when the renderer failed; the presenter shows an inline
	// error panel instead of charts. Other views and all state survive.
	Err error `json:"-"`
}

// Options tune the renderers per dashboard configuration.
type Options struct {
	TopN          int
	TargetBins    int
	SanityCeiling float64
	LogScale      bool
	ShowPercents  bool
	// ReferenceYear anchors age derivation; 0 means the current year.
	ReferenceYear int
}

// withDefaults fills unset option fields.
func (o Options) withDefaults() Options {
	if o.TopN <= 0 {
		o.TopN = 10
	}
	if o.TargetBins <= 0 {
		o.TargetBins = 12
	}
	return o
}

// defaultPalette matches the dashboard's chart color cycle.
var defaultPalette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

func paletteFor(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = defaultPalette[i%len(defaultPalette)]
	}
	return colors
}

func countsToSeries(counts []engine.CategoryCount) ([]string, []float64) {
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
		values[i] = float64(c.Count)
	}
	return labels, values
}

func binsToSeries(result engine.HistogramResult) ([]string, []float64, []float64) {
	labels := make([]string, len(result.Bins))
	values := make([]float64, len(result.Bins))
	lowers := make([]float64, len(result.Bins))
	for i, b := range result.Bins {
		labels[i] = b.Label
		values[i] = float64(b.Count)
		lowers[i] = b.Lower
	}
	return labels, values, lowers
}
