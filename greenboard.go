// Package greenboard provides an interactive analytics dashboard core for a
// static dataset of public building energy, water, and sustainability records.
//
// Usage:
//
//	import (
//	    "github.com/greenboard-org/greenboard/dataset"
//	    "github.com/greenboard-org/greenboard/state"
//	)
//
//	loader := dataset.NewLoader(nil, logger)
//	records, err := loader.Load(ctx, cfg.Dataset.Source)
//	app := state.New(records, presenter)
//	app.SetView(views.ViewEnergy)
//	app.ToggleDepartment("Public Works")
//
// The dataset is loaded and normalized once per session. Every filter
// mutation funnels through the App's single update entry point, which
// recomputes the active subset and re-renders the current view as a
// declarative view-model. Chart drawing (charts), narrative captions
// (narrative), and file export (export) are collaborators on the edges;
// the filter/aggregation core never touches them directly.
package greenboard
