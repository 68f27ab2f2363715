package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/greenboard-org/greenboard/dataset"
	"github.com/greenboard-org/greenboard/engine"
	"github.com/greenboard-org/greenboard/state"
	"github.com/greenboard-org/greenboard/views"
)

// ============================================================================
// TERMINAL PRESENTER — view-models → text
// ============================================================================

// termPresenter renders view updates as plain text. It keeps the last
// update around so the interact loop can re-show it on demand.
type termPresenter struct {
	mu   sync.Mutex
	out  io.Writer
	last *state.ViewUpdate
}

func newTermPresenter(out io.Writer) *termPresenter {
	return &termPresenter{out: out}
}

func (p *termPresenter) PresentView(u state.ViewUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = &u

	if u.Model.Err != nil {
		fmt.Fprintf(p.out, "\n[%s] view unavailable: %v\n", u.Model.View, u.Model.Err)
		fmt.Fprintln(p.out, "Filters and comparison selections are preserved; try another view.")
		return
	}

	fmt.Fprintf(p.out, "\n== %s — %d of %d buildings ==\n", u.Model.Title, u.ActiveCount, u.TotalCount)
	p.printStats(u.Stats)

	for _, chart := range u.Model.Charts {
		fmt.Fprintf(p.out, "\n%s (%s)\n", chart.Title, chart.Type)
		if len(chart.Points) > 0 {
			fmt.Fprintf(p.out, "  %d points\n", len(chart.Points))
			continue
		}
		total := 0.0
		for _, v := range chart.Values {
			total += v
		}
		for i, label := range chart.Labels {
			if i >= len(chart.Values) {
				break
			}
			line := fmt.Sprintf("  %-32s %12s", label, engine.FormatAmount(chart.Values[i]))
			if chart.Hints.ShowPercentages && total > 0 {
				line += fmt.Sprintf("  (%.1f%%)", chart.Values[i]/total*100)
			}
			fmt.Fprintln(p.out, line)
		}
	}
}

func (p *termPresenter) printStats(s dataset.QuickStats) {
	fmt.Fprintf(p.out, "buildings=%d  energy=%s kBtu  water=%s kGal  avgEUI=%.1f  certified=%d  renewable=%d\n",
		s.Buildings,
		engine.FormatAmount(s.TotalEnergy),
		engine.FormatAmount(s.TotalWater),
		s.AvgIntensity,
		s.CertifiedCount,
		s.RenewableCount)
}

func (p *termPresenter) PresentComparison(items []*dataset.Building) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(items) == 0 {
		fmt.Fprintln(p.out, "comparison: (empty)")
		return
	}
	fmt.Fprintf(p.out, "comparison (%d):\n", len(items))
	for _, b := range items {
		fmt.Fprintf(p.out, "  %-12s %-32s %10s sqft  %12s kBtu\n",
			b.PropertyID, b.PropertyName,
			engine.FormatAmount(b.GrossFloorArea),
			engine.FormatAmount(b.SiteEnergyUseKbtu))
	}
}

func (p *termPresenter) PresentDrillDown(d state.DrillDown) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "\n-- %s (%d records) --\n", d.Label, len(d.Records))
	p.printStats(d.Stats)
}

func (p *termPresenter) PresentCaption(chartID, text string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		fmt.Fprintf(p.out, "[caption %s] unavailable: %v\n", chartID, err)
		return
	}
	fmt.Fprintf(p.out, "[caption %s] %s\n", chartID, text)
}

func (p *termPresenter) Notify(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "! %s\n", message)
}

// chartByID resolves a chart spec from the last presented view, so the
// interact loop can dispatch clicks on it.
func (p *termPresenter) chartByID(id string) (views.ChartSpec, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return views.ChartSpec{}, false
	}
	for _, spec := range p.last.Model.Charts {
		if spec.ID == id {
			return spec, true
		}
	}
	return views.ChartSpec{}, false
}
