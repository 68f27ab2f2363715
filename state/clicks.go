package state

import (
	"log/slog"

	"github.com/greenboard-org/greenboard/dataset"
	"github.com/greenboard-org/greenboard/views"
)

// ============================================================================
// CHART CLICKS — Tagged dispatch from chart element to state mutation
// ============================================================================
// Every chart spec carries its semantic category from creation, so a click
// arrives as (spec, element index) and dispatches on the tag — no
// inference from chart naming. Set-valued targets toggle (click again to
// deselect); scalar targets replace (last click wins).
// ============================================================================

// HandleClick interprets a click on element index of the given chart spec.
func (a *App) HandleClick(spec views.ChartSpec, index int) {
	switch spec.Target.Kind {
	case views.TargetDepartment:
		if label, ok := elementLabel(spec, index); ok {
			a.ToggleDepartment(label)
		}
	case views.TargetPropertyType:
		if label, ok := elementLabel(spec, index); ok {
			a.TogglePropertyType(label)
		}
	case views.TargetCity:
		if label, ok := elementLabel(spec, index); ok {
			a.SetCity(label)
		}
	case views.TargetGreenPowerBin:
		if label, ok := elementLabel(spec, index); ok {
			a.SetGreenPowerBin(label)
		}
	case views.TargetAgeBin:
		a.clickAgeBin(spec, index)
	case views.TargetScatterPoint:
		a.clickScatterPoint(spec, index)
	default:
		// Unclickable chart; nothing to do.
	}
}

// clickAgeBin replaces the year-built range with the clicked bin's span.
func (a *App) clickAgeBin(spec views.ChartSpec, index int) {
	if index < 0 || index >= len(spec.BinLowers) || spec.BinSize <= 0 {
		return
	}
	lo := int(spec.BinLowers[index])
	hi := lo + int(spec.BinSize) - 1
	a.SetYearRange(lo, hi)
}

// clickScatterPoint opens a drill-down for the records behind one point.
// A click resolving to zero records produces no panel — never an empty one.
func (a *App) clickScatterPoint(spec views.ChartSpec, index int) {
	if index < 0 || index >= len(spec.Points) {
		return
	}
	point := spec.Points[index]

	a.mu.Lock()
	defer a.mu.Unlock()

	var related []*dataset.Building
	for i := range a.records {
		if a.records[i].PropertyID != "" && a.records[i].PropertyID == point.PropertyID {
			related = append(related, &a.records[i])
		}
	}
	if len(related) == 0 {
		a.logger.Debug("click resolved to no records", slog.String("propertyId", point.PropertyID))
		return
	}

	flat := make([]dataset.Building, len(related))
	for i, r := range related {
		flat[i] = *r
	}
	a.drill = &DrillDown{
		Label:   point.Label,
		Records: related,
		Stats:   dataset.ComputeQuickStats(flat),
	}
	a.presenter.PresentDrillDown(*a.drill)
}

func elementLabel(spec views.ChartSpec, index int) (string, bool) {
	if index < 0 || index >= len(spec.Labels) {
		return "", false
	}
	return spec.Labels[index], true
}
