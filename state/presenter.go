package state

import (
	"github.com/greenboard-org/greenboard/dataset"
	"github.com/greenboard-org/greenboard/views"
)

// ============================================================================
// PRESENTER — Thin rendering boundary
// ============================================================================
// The App computes declarative view-models; a Presenter turns them into
// platform output (terminal text, PNG files, a browser bridge). The core
// never touches a rendering surface directly.
// ============================================================================

// ViewUpdate is everything a presenter needs to redraw the dashboard after
// a recompute cycle.
type ViewUpdate struct {
	Model       views.ViewModel
	Stats       dataset.QuickStats
	ActiveCount int
	TotalCount  int
}

// DrillDown is the transient detail panel behind one clicked chart element.
// It is invalidated by the next update cycle.
type DrillDown struct {
	Label   string
	Records []*dataset.Building
	Stats   dataset.QuickStats
}

// Presenter receives render output and user-facing notices.
type Presenter interface {
	// PresentView replaces the visualization area for the current view.
	PresentView(u ViewUpdate)
	// PresentComparison redraws only the comparison panel.
	PresentComparison(items []*dataset.Building)
	// PresentDrillDown shows a detail panel for one chart element.
	PresentDrillDown(d DrillDown)
	// PresentCaption delivers a narrative caption (or its inline error)
	// for a chart that is still on screen.
	PresentCaption(chartID, text string, err error)
	// Notify shows a transient user notification.
	Notify(message string)
}

// NopPresenter discards all output. Useful for headless runs and tests.
type NopPresenter struct{}

func (NopPresenter) PresentView(ViewUpdate) {}
func (NopPresenter) PresentComparison([]*dataset.Building) {}
func (NopPresenter) PresentDrillDown(DrillDown) {}
func (NopPresenter) PresentCaption(string, string, error) {}
func (NopPresenter) Notify(string) {}
