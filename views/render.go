package views

import (
	"fmt"

	"github.com/greenboard-org/greenboard/dataset"
)

// ============================================================================
// VIEW DISPATCH — Render boundary with failure isolation
// ============================================================================

// Renderer is one view's render function.
type Renderer func(records []dataset.Building, opts Options) ViewModel

var registry = map[View]Renderer{
	ViewOverview:   Overview,
	ViewEnergy:     Energy,
	ViewGreenPower: GreenPower,
	ViewWater:      Water,
	ViewGeography:  Geography,
	ViewAge:        Age,
	ViewEfficiency: Efficiency,
}

// Render dispatches to the named view. A renderer panic is caught here and
// converted to an error view-model — one broken view must not take down the
// rest of the dashboard.
func Render(view View, records []dataset.Building, opts Options) (vm ViewModel) {
	defer func() {
		if r := recover(); r != nil {
			vm = ViewModel{View: view, Title: string(view), Err: fmt.Errorf("render %s: %v", view, r)}
		}
	}()

	renderer, ok := registry[view]
	if !ok {
		return ViewModel{View: view, Err: fmt.Errorf("render: unknown view %q", view)}
	}
	return renderer(records, opts.withDefaults())
}

func captionPrompt(title, description string) string {
	return fmt.Sprintf("Visualization: %s. %s", title, description)
}
