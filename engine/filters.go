package engine

import (
	"strings"

	"github.com/greenboard-org/greenboard/dataset"
)

// ============================================================================
// FILTER ENGINE — AND-combined predicate set over canonical records
// ============================================================================
// Single-pass filter: checks every active predicate per record in one loop.
// Output is a stable subsequence of the input — the filter never reorders.
// An empty selection set means "no restriction", not "exclude all"; range
// bounds are inclusive, with 0 / unbounded sentinels for absent bounds.
// ============================================================================

// LEEDFilter is the tri-state certification filter.
type LEEDFilter int

const (
	LEEDAny LEEDFilter = iota
	LEEDCertifiedOnly
	LEEDNotCertified
)

// FilterState is the full set of user-selected filters. One mutable
// instance lives on the application context; Apply never modifies it.
type FilterState struct {
	Departments   map[string]bool
	PropertyTypes map[string]bool

	YearMin int
	YearMax int // 0 = unbounded

	EnergyMin float64
	EnergyMax float64 // 0 = unbounded

	AreaMin float64
	AreaMax float64 // 0 = unbounded

	LEED LEEDFilter

	Search string
	City   string

	// GreenPowerBin holds the label of a selected green-power bucket
	// ("" = no restriction). The bucket ranges live in GreenPowerBins.
	GreenPowerBin string
}

// NewFilterState returns an empty filter state (everything passes).
func NewFilterState() FilterState {
	return FilterState{
		Departments:   make(map[string]bool),
		PropertyTypes: make(map[string]bool),
	}
}

// Reset clears every filter back to "no restriction".
func (f *FilterState) Reset() {
	*f = NewFilterState()
}

// IsZero reports whether no filter is active.
func (f FilterState) IsZero() bool {
	return len(f.Departments) == 0 &&
		len(f.PropertyTypes) == 0 &&
		f.YearMin == 0 && f.YearMax == 0 &&
		f.EnergyMin == 0 && f.EnergyMax == 0 &&
		f.AreaMin == 0 && f.AreaMax == 0 &&
		f.LEED == LEEDAny &&
		f.Search == "" &&
		f.City == "" &&
		f.GreenPowerBin == ""
}

// Apply evaluates every record against all active predicates and returns
// the passing subsequence in input order. Pure: neither argument is
// mutated.
func Apply(records []dataset.Building, f FilterState) []dataset.Building {
	if f.IsZero() {
		out := make([]dataset.Building, len(records))
		copy(out, records)
		return out
	}

	departments := toLowerSet(f.Departments)
	types := toLowerSet(f.PropertyTypes)
	search := strings.ToLower(strings.TrimSpace(f.Search))
	city := strings.ToLower(strings.TrimSpace(f.City))

	var greenBin *PercentBin
	if f.GreenPowerBin != "" {
		if b, ok := GreenPowerBinByLabel(f.GreenPowerBin); ok {
			greenBin = &b
		}
	}

	active := make([]dataset.Building, 0, len(records))
	for _, b := range records {
		if !matches(b, f, departments, types, search, city, greenBin) {
			continue
		}
		active = append(active, b)
	}
	return active
}

func matches(b dataset.Building, f FilterState, departments, types map[string]bool, search, city string, greenBin *PercentBin) bool {
	if len(departments) > 0 && !departments[strings.ToLower(b.DepartmentName)] {
		return false
	}
	if len(types) > 0 && !types[strings.ToLower(b.PrimaryPropertyType)] {
		return false
	}

	if f.YearMin > 0 && b.YearBuilt < f.YearMin {
		return false
	}
	if f.YearMax > 0 && b.YearBuilt > f.YearMax {
		return false
	}

	if f.EnergyMin > 0 && b.SiteEnergyUseKbtu < f.EnergyMin {
		return false
	}
	if f.EnergyMax > 0 && b.SiteEnergyUseKbtu > f.EnergyMax {
		return false
	}

	if f.AreaMin > 0 && b.GrossFloorArea < f.AreaMin {
		return false
	}
	if f.AreaMax > 0 && b.GrossFloorArea > f.AreaMax {
		return false
	}

	switch f.LEED {
	case LEEDCertifiedOnly:
		if !b.Certified() {
			return false
		}
	case LEEDNotCertified:
		if b.Certified() {
			return false
		}
	}

	if city != "" && strings.ToLower(b.City) != city {
		return false
	}

	if greenBin != nil && !greenBin.Contains(b.PercentGreenPower) {
		return false
	}

	if search != "" && !matchesSearch(b, search) {
		return false
	}

	return true
}

// matchesSearch looks for the lowercase needle across the record's
// name-ish fields.
func matchesSearch(b dataset.Building, needle string) bool {
	for _, field := range []string{b.PropertyName, b.DepartmentName, b.Address, b.City} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// SanitizeBound parses a free-text numeric bound. Invalid input falls back
// to the open-bound sentinel 0 rather than erroring — a bad range field
// must never block a filter update.
func SanitizeBound(input string) float64 {
	v := dataset.ParseNumeric(input)
	if v < 0 {
		return 0
	}
	return v
}

func toLowerSet(set map[string]bool) map[string]bool {
	if len(set) == 0 {
		return nil
	}
	out := make(map[string]bool, len(set))
	for k, on := range set {
		if on {
			out[strings.ToLower(k)] = true
		}
	}
	return out
}
