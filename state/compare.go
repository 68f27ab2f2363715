package state

import (
	"fmt"

	"github.com/greenboard-org/greenboard/dataset"
)

// ============================================================================
// COMPARISON SET — Side-by-side building comparison
// ============================================================================
// Comparison state is orthogonal to filters: mutations here re-render only
// the comparison panel, never the chart set. Entries are references into
// the canonical record slice, unique by property id.
// ============================================================================

// AddCompare adds a building to the comparison set by property id. Adding
// an id twice leaves exactly one entry and warns the user; an unknown id
// warns and changes nothing.
func (a *App) AddCompare(propertyID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, held := range a.inter.Comparison {
		if held.PropertyID == propertyID {
			a.presenter.Notify(fmt.Sprintf("%s is already in the comparison", held.PropertyName))
			return
		}
	}

	for i := range a.records {
		if a.records[i].PropertyID == propertyID {
			a.inter.Comparison = append(a.inter.Comparison, &a.records[i])
			a.presenter.PresentComparison(a.comparisonSnapshot())
			return
		}
	}
	a.presenter.Notify(fmt.Sprintf("No building with id %q", propertyID))
}

// RemoveCompare removes a building from the comparison set by property id.
func (a *App) RemoveCompare(propertyID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	kept := a.inter.Comparison[:0]
	for _, held := range a.inter.Comparison {
		if held.PropertyID != propertyID {
			kept = append(kept, held)
		}
	}
	a.inter.Comparison = kept
	a.presenter.PresentComparison(a.comparisonSnapshot())
}

// ClearCompare empties the comparison set.
func (a *App) ClearCompare() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inter.Comparison = nil
	a.presenter.PresentComparison(nil)
}

// ToggleCompareMode flips the comparison-mode flag.
func (a *App) ToggleCompareMode() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inter.CompareMode = !a.inter.CompareMode
	a.presenter.PresentComparison(a.comparisonSnapshot())
}

// Comparison returns the current comparison entries.
func (a *App) Comparison() []*dataset.Building {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.comparisonSnapshot()
}

func (a *App) comparisonSnapshot() []*dataset.Building {
	out := make([]*dataset.Building, len(a.inter.Comparison))
	copy(out, a.inter.Comparison)
	return out
}
