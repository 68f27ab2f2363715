// Package charts turns declarative chart specs into rendered PNGs. It is
// the charting collaborator behind the views package: one spec in, one
// image out, and a failure here never aborts the remaining charts.
package charts

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/greenboard-org/greenboard/views"
)

// ============================================================================
// CHART RENDERER — views.ChartSpec → PNG
// ============================================================================

// Renderer draws chart specs. HiddenLabels holds legend labels the user has
// de-emphasized; their elements are skipped at draw time, leaving the
// underlying aggregation untouched.
type Renderer struct {
	Width        int
	Height       int
	HiddenLabels map[string]bool
}

// NewRenderer returns a Renderer with the default canvas size.
func NewRenderer() *Renderer {
	return &Renderer{Width: 1024, Height: 512}
}

// Render draws one spec as a PNG.
func (r *Renderer) Render(spec views.ChartSpec, w io.Writer) error {
	switch spec.Type {
	case views.Bar:
		return r.renderBar(spec, w)
	case views.Pie, views.Doughnut:
		return r.renderPie(spec, w)
	case views.Scatter:
		return r.renderScatter(spec, w)
	default:
		return fmt.Errorf("charts: unsupported chart type %q", spec.Type)
	}
}

func (r *Renderer) renderBar(spec views.ChartSpec, w io.Writer) error {
	bars := make([]chart.Value, 0, len(spec.Values))
	maxVal := 0.0
	for i, v := range spec.Values {
		label := elementLabel(spec, i)
		if r.HiddenLabels[label] {
			continue
		}
		bars = append(bars, chart.Value{
			Value: v,
			Label: shorten(label, 18),
			Style: barStyle(paletteColor(spec.Palette, i)),
		})
		if v > maxVal {
			maxVal = v
		}
	}
	if len(bars) == 0 {
		return fmt.Errorf("charts: %s has no visible bars", spec.ID)
	}

	bc := chart.BarChart{
		Title:    spec.Title,
		Width:    r.width(),
		Height:   r.height(),
		BarWidth: barWidthFor(r.width(), len(bars)),
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24},
		},
		YAxis: chart.YAxis{Name: spec.YLabel, Range: valueRange(spec.Hints, maxVal)},
		Bars:  bars,
	}
	return bc.Render(chart.PNG, w)
}

func (r *Renderer) renderPie(spec views.ChartSpec, w io.Writer) error {
	values := make([]chart.Value, 0, len(spec.Values))
	for i, v := range spec.Values {
		label := elementLabel(spec, i)
		if r.HiddenLabels[label] || v <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: v,
			Label: shorten(label, 24),
			Style: chart.Style{FillColor: paletteColor(spec.Palette, i)},
		})
	}
	if len(values) == 0 {
		return fmt.Errorf("charts: %s has no visible slices", spec.ID)
	}

	side := r.height()
	if spec.Type == views.Doughnut {
		dc := chart.DonutChart{Title: spec.Title, Width: side, Height: side, Values: values}
		return dc.Render(chart.PNG, w)
	}
	pc := chart.PieChart{Title: spec.Title, Width: side, Height: side, Values: values}
	return pc.Render(chart.PNG, w)
}

func (r *Renderer) renderScatter(spec views.ChartSpec, w io.Writer) error {
	if len(spec.Points) == 0 {
		return fmt.Errorf("charts: %s has no points", spec.ID)
	}

	xs := make([]float64, len(spec.Points))
	ys := make([]float64, len(spec.Points))
	maxY := 0.0
	for i, p := range spec.Points {
		xs[i] = p.X
		ys[i] = p.Y
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	// go-chart needs at least two X values to lay out an axis.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	dot := paletteColor(spec.Palette, 0)
	sc := chart.Chart{
		Title:  spec.Title,
		Width:  r.width(),
		Height: r.height(),
		XAxis:  chart.XAxis{Name: spec.XLabel},
		YAxis:  chart.YAxis{Name: spec.YLabel, Range: valueRange(spec.Hints, maxY)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    dot,
				},
			},
		},
	}
	return sc.Render(chart.PNG, w)
}

// valueRange clamps the axis minimum to 1 when the log-scale hint is set:
// histograms have no zero-valued bars to display on a log scale. Purely
// presentational; aggregation is untouched.
func valueRange(hints views.Hints, maxVal float64) chart.Range {
	if !hints.LogScale {
		return nil
	}
	if maxVal < 1 {
		maxVal = 1
	}
	return &chart.ContinuousRange{Min: 1, Max: maxVal}
}

func barStyle(fill drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   fill,
		StrokeColor: fill,
		StrokeWidth: 0,
	}
}

func paletteColor(palette []string, i int) drawing.Color {
	if len(palette) == 0 {
		return chart.ColorBlue
	}
	hex := strings.TrimPrefix(palette[i%len(palette)], "#")
	return drawing.ColorFromHex(hex)
}

func elementLabel(spec views.ChartSpec, i int) string {
	if i < len(spec.Labels) {
		return spec.Labels[i]
	}
	return fmt.Sprintf("#%d", i)
}

func barWidthFor(width, bars int) int {
	if bars == 0 {
		return 20
	}
	w := width / (bars * 2)
	if w < 10 {
		w = 10
	}
	if w > 80 {
		w = 80
	}
	return w
}

func shorten(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}

func (r *Renderer) width() int {
	if r.Width > 0 {
		return r.Width
	}
	return 1024
}

func (r *Renderer) height() int {
	if r.Height > 0 {
		return r.Height
	}
	return 512
}
