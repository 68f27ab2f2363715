package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/greenboard-org/greenboard/dataset"
	"github.com/greenboard-org/greenboard/engine"
	"github.com/greenboard-org/greenboard/views"
)

// ============================================================================
// APP — Application context and single update entry point
// ============================================================================
// App owns the canonical record slice (immutable after construction), the
// one FilterState, and the InteractionState. Every mutation goes through a
// named operation that ends by calling update(), never by rendering
// directly, so filter state is always fully written before the recompute
// cycle reads it. One mutex serializes mutations: the debounce timer and
// caption goroutines re-enter through it.
// ============================================================================

// defaultSearchDelay is the quiet period batching rapid search keystrokes —
// the only intentional latency in the pipeline.
const defaultSearchDelay = 300 * time.Millisecond

const captionTimeout = 30 * time.Second

// Captioner generates a short narrative caption for a prompt. Satisfied by
// narrative.Gemini; nil disables captions.
type Captioner interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// InteractionState tracks what the user has selected across charts.
// Created with defaults at startup, never persisted across sessions.
type InteractionState struct {
	Comparison      []*dataset.Building
	HiddenLabels    map[string]bool
	CompareMode     bool
	CurrentView     views.View
	ShowPercentages bool
}

// App is the root controller.
type App struct {
	mu sync.Mutex

	logger    *slog.Logger
	presenter Presenter
	captioner Captioner

	records []dataset.Building // canonical, immutable after New
	filters engine.FilterState
	inter   InteractionState
	active  []dataset.Building
	drill   *DrillDown

	viewOpts    views.Options
	searchDelay time.Duration
	searchTimer *time.Timer
	pendingText string

	// generation identifies the current render cycle; caption results for
	// a superseded generation are dropped.
	generation string
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithCaptioner enables narrative captions.
func WithCaptioner(c Captioner) Option {
	return func(a *App) { a.captioner = c }
}

// WithViewOptions tunes the renderers.
func WithViewOptions(opts views.Options) Option {
	return func(a *App) { a.viewOpts = opts }
}

// WithSearchDelay overrides the search debounce quiet period.
func WithSearchDelay(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.searchDelay = d
		}
	}
}

// New creates the application context around an already-loaded canonical
// record set and renders the initial view.
func New(records []dataset.Building, presenter Presenter, opts ...Option) *App {
	if presenter == nil {
		presenter = NopPresenter{}
	}
	a := &App{
		logger:    slog.Default(),
		presenter: presenter,
		records:   records,
		filters:   engine.NewFilterState(),
		inter: InteractionState{
			HiddenLabels: make(map[string]bool),
			CurrentView:  views.ViewOverview,
		},
		searchDelay: defaultSearchDelay,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.mu.Lock()
	a.update()
	a.mu.Unlock()
	return a
}

// ============================================================================
// NAMED MUTATIONS — every path ends in update()
// ============================================================================

// ToggleDepartment adds the department to the selection set, or removes it
// when already selected.
func (a *App) ToggleDepartment(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	toggle(a.filters.Departments, name)
	a.update()
}

// TogglePropertyType adds or removes a property type from the selection set.
func (a *App) TogglePropertyType(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	toggle(a.filters.PropertyTypes, name)
	a.update()
}

// SetYearRange replaces the inclusive year-built range. Zero bounds are
// open.
func (a *App) SetYearRange(min, max int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filters.YearMin, a.filters.YearMax = min, max
	a.update()
}

// SetEnergyRange replaces the inclusive site-energy range.
func (a *App) SetEnergyRange(min, max float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filters.EnergyMin, a.filters.EnergyMax = min, max
	a.update()
}

// SetAreaRange replaces the inclusive floor-area range.
func (a *App) SetAreaRange(min, max float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filters.AreaMin, a.filters.AreaMax = min, max
	a.update()
}

// SetLEED replaces the tri-state certification filter.
func (a *App) SetLEED(f engine.LEEDFilter) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filters.LEED = f
	a.update()
}

// SetCity replaces the exact-match city filter; empty clears it.
func (a *App) SetCity(city string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filters.City = city
	a.update()
}

// SetGreenPowerBin replaces the green-power bucket filter; empty clears it.
// Unknown labels are ignored.
func (a *App) SetGreenPowerBin(label string) {
	if label != "" {
		if _, ok := engine.GreenPowerBinByLabel(label); !ok {
			a.logger.Warn("ignoring unknown green power bin", slog.String("label", label))
			return
		}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filters.GreenPowerBin = label
	a.update()
}

// Search batches rapid keystrokes behind a quiet-period timer before the
// filter text is applied and the pipeline recomputes.
func (a *App) Search(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pendingText = text
	if a.searchTimer != nil {
		a.searchTimer.Stop()
	}
	a.searchTimer = time.AfterFunc(a.searchDelay, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.searchTimer = nil
		a.filters.Search = a.pendingText
		a.update()
	})
}

// ResetFilters clears every filter back to "no restriction".
func (a *App) ResetFilters() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.searchTimer != nil {
		a.searchTimer.Stop()
		a.searchTimer = nil
	}
	a.pendingText = ""
	a.filters.Reset()
	a.update()
}

// SetView switches the current view.
func (a *App) SetView(v views.View) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inter.CurrentView = v
	a.update()
}

// TogglePercentages flips the percent-of-total label hint.
func (a *App) TogglePercentages() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inter.ShowPercentages = !a.inter.ShowPercentages
	a.update()
}

// ToggleHiddenLabel de-emphasizes or restores one legend label. Purely
// presentational; the aggregation is untouched.
func (a *App) ToggleHiddenLabel(label string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.inter.HiddenLabels[label] {
		delete(a.inter.HiddenLabels, label)
	} else {
		a.inter.HiddenLabels[label] = true
	}
	a.update()
}

// ============================================================================
// UPDATE CYCLE
// ============================================================================

// update is the single recompute-and-rerender entry point. Callers hold
// the mutex. Any open drill-down closes here: once the active set changes
// its content is invalid by definition.
func (a *App) update() {
	a.active = engine.Apply(a.records, a.filters)
	a.drill = nil
	a.generation = uuid.NewString()

	opts := a.viewOpts
	opts.ShowPercents = a.inter.ShowPercentages

	vm := views.Render(a.inter.CurrentView, a.active, opts)
	if vm.Err != nil {
		a.logger.Error("view render failed",
			slog.String("view", string(a.inter.CurrentView)),
			slog.Any("error", vm.Err))
	}

	a.presenter.PresentView(ViewUpdate{
		Model:       vm,
		Stats:       dataset.ComputeQuickStats(a.active),
		ActiveCount: len(a.active),
		TotalCount:  len(a.records),
	})

	if vm.Err == nil {
		a.requestCaptions(a.generation, vm.Charts)
	}
}

// requestCaptions fires one goroutine per captioned chart. Results arriving
// after the next update cycle fail the liveness check and are dropped —
// their container is gone.
func (a *App) requestCaptions(generation string, charts []views.ChartSpec) {
	if a.captioner == nil {
		return
	}
	for _, chart := range charts {
		if chart.CaptionPrompt == "" {
			continue
		}
		go func(chartID, prompt string) {
			ctx, cancel := context.WithTimeout(context.Background(), captionTimeout)
			defer cancel()

			text, err := a.captioner.Generate(ctx, prompt)

			a.mu.Lock()
			live := a.generation == generation
			a.mu.Unlock()
			if !live {
				a.logger.Debug("dropping stale caption", slog.String("chart", chartID))
				return
			}
			a.presenter.PresentCaption(chartID, text, err)
		}(chart.ID, chart.CaptionPrompt)
	}
}

// ============================================================================
// SNAPSHOTS
// ============================================================================

// Active returns a copy of the current filtered subset.
func (a *App) Active() []dataset.Building {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]dataset.Building, len(a.active))
	copy(out, a.active)
	return out
}

// Records returns a copy of the full canonical set.
func (a *App) Records() []dataset.Building {
	out := make([]dataset.Building, len(a.records))
	copy(out, a.records)
	return out
}

// Filters returns a deep copy of the current filter state.
func (a *App) Filters() engine.FilterState {
	a.mu.Lock()
	defer a.mu.Unlock()
	f := a.filters
	f.Departments = copySet(a.filters.Departments)
	f.PropertyTypes = copySet(a.filters.PropertyTypes)
	return f
}

// CurrentView returns the active view id.
func (a *App) CurrentView() views.View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inter.CurrentView
}

// DrillDown returns the open drill-down panel, or nil.
func (a *App) DrillDown() *DrillDown {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.drill
}

func toggle(set map[string]bool, key string) {
	if set[key] {
		delete(set, key)
	} else {
		set[key] = true
	}
}

func copySet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for k, v := range set {
		out[k] = v
	}
	return out
}
