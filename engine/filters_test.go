package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenboard-org/greenboard/dataset"
)

// ============================================================================
// FILTER ENGINE TESTS
// ============================================================================

var filterFixture = []dataset.Building{
	{
		PropertyID: "P-1", PropertyName: "Capitol Annex", DepartmentName: "General Services",
		PrimaryPropertyType: "Office", City: "Sacramento", Address: "1021 O Street",
		YearBuilt: 1952, SiteEnergyUseKbtu: 9500000, GrossFloorArea: 320000,
		LEEDStatus: "Gold", PercentGreenPower: 40,
	},
	{
		PropertyID: "P-2", PropertyName: "Records Center", DepartmentName: "General Services",
		PrimaryPropertyType: "Warehouse", City: "West Sacramento",
		YearBuilt: 1998, SiteEnergyUseKbtu: 2100000, GrossFloorArea: 88000,
		LEEDStatus: "no", PercentGreenPower: 0,
	},
	{
		PropertyID: "P-3", PropertyName: "Field Lab", DepartmentName: "Water Resources",
		PrimaryPropertyType: "Laboratory", City: "Davis",
		YearBuilt: 2010, SiteEnergyUseKbtu: 4800000, GrossFloorArea: 45000,
		LEEDStatus: "Silver", PercentGreenPower: 25,
	},
	{
		PropertyID: "P-4", PropertyName: "Pump Station 12", DepartmentName: "Water Resources",
		PrimaryPropertyType: "Utility", City: "Sacramento",
		YearBuilt: 0, SiteEnergyUseKbtu: 600000, GrossFloorArea: 2000,
		LEEDStatus: "", PercentGreenPower: 90,
	},
}

func ids(records []dataset.Building) []string {
	out := make([]string, len(records))
	for i, b := range records {
		out[i] = b.PropertyID
	}
	return out
}

func TestApplyEmptyStateReturnsAll(t *testing.T) {
	active := Apply(filterFixture, NewFilterState())
	assert.Equal(t, []string{"P-1", "P-2", "P-3", "P-4"}, ids(active))

	// The result is a copy, not an alias of the canonical slice.
	active[0].PropertyID = "mutated"
	assert.Equal(t, "P-1", filterFixture[0].PropertyID)
}

func TestApplyPreservesInputOrder(t *testing.T) {
	f := NewFilterState()
	f.Departments["General Services"] = true
	f.Departments["Water Resources"] = true

	active := Apply(filterFixture, f)
	assert.Equal(t, []string{"P-1", "P-2", "P-3", "P-4"}, ids(active),
		"filter output is a stable subsequence")
}

func TestApplyDepartmentIsCaseInsensitive(t *testing.T) {
	f := NewFilterState()
	f.Departments["water resources"] = true

	assert.Equal(t, []string{"P-3", "P-4"}, ids(Apply(filterFixture, f)))
}

func TestApplyPropertyTypeSet(t *testing.T) {
	f := NewFilterState()
	f.PropertyTypes["Office"] = true
	f.PropertyTypes["Laboratory"] = true

	assert.Equal(t, []string{"P-1", "P-3"}, ids(Apply(filterFixture, f)))
}

func TestApplyYearRangeIsInclusive(t *testing.T) {
	f := NewFilterState()
	f.YearMin, f.YearMax = 1952, 1998

	// Year 0 (unreported) fails any active minimum.
	assert.Equal(t, []string{"P-1", "P-2"}, ids(Apply(filterFixture, f)))

	f.Reset()
	f.YearMax = 1998
	assert.Equal(t, []string{"P-1", "P-2", "P-4"}, ids(Apply(filterFixture, f)),
		"no minimum: unreported year passes the max-only range")
}

func TestApplyEnergyAndAreaRanges(t *testing.T) {
	f := NewFilterState()
	f.EnergyMin, f.EnergyMax = 2100000, 4800000
	assert.Equal(t, []string{"P-2", "P-3"}, ids(Apply(filterFixture, f)))

	f.Reset()
	f.AreaMin = 88000
	assert.Equal(t, []string{"P-1", "P-2"}, ids(Apply(filterFixture, f)))
}

func TestApplyLEEDTriState(t *testing.T) {
	f := NewFilterState()

	f.LEED = LEEDCertifiedOnly
	assert.Equal(t, []string{"P-1", "P-3"}, ids(Apply(filterFixture, f)))

	f.LEED = LEEDNotCertified
	assert.Equal(t, []string{"P-2", "P-4"}, ids(Apply(filterFixture, f)))

	f.LEED = LEEDAny
	assert.Len(t, Apply(filterFixture, f), 4)
}

func TestApplyCityIsExactMatch(t *testing.T) {
	f := NewFilterState()
	f.City = "sacramento"

	assert.Equal(t, []string{"P-1", "P-4"}, ids(Apply(filterFixture, f)),
		"West Sacramento is not Sacramento")
}

func TestApplySearchSpansNameFields(t *testing.T) {
	f := NewFilterState()

	f.Search = "records"
	assert.Equal(t, []string{"P-2"}, ids(Apply(filterFixture, f)), "property name")

	f.Search = "o street"
	assert.Equal(t, []string{"P-1"}, ids(Apply(filterFixture, f)), "address")

	f.Search = "davis"
	assert.Equal(t, []string{"P-3"}, ids(Apply(filterFixture, f)), "city")

	f.Search = "WATER"
	assert.Equal(t, []string{"P-3", "P-4"}, ids(Apply(filterFixture, f)), "department, case-insensitive")

	f.Search = "zzz no match"
	assert.Empty(t, Apply(filterFixture, f))
}

func TestApplyGreenPowerBin(t *testing.T) {
	f := NewFilterState()

	f.GreenPowerBin = "0% Usage"
	assert.Equal(t, []string{"P-2"}, ids(Apply(filterFixture, f)))

	f.GreenPowerBin = "1-25%"
	assert.Equal(t, []string{"P-3"}, ids(Apply(filterFixture, f)), "25 sits on the inclusive high edge")

	f.GreenPowerBin = "26-50%"
	assert.Equal(t, []string{"P-1"}, ids(Apply(filterFixture, f)))

	f.GreenPowerBin = "76-100%"
	assert.Equal(t, []string{"P-4"}, ids(Apply(filterFixture, f)))
}

func TestApplyCombinesPredicatesWithAND(t *testing.T) {
	f := NewFilterState()
	f.Departments["Water Resources"] = true
	f.LEED = LEEDCertifiedOnly

	assert.Equal(t, []string{"P-3"}, ids(Apply(filterFixture, f)))
}

func TestFilterStateReset(t *testing.T) {
	f := NewFilterState()
	f.Departments["x"] = true
	f.YearMin = 1900
	f.Search = "abc"
	require.False(t, f.IsZero())

	f.Reset()
	assert.True(t, f.IsZero())
	assert.NotNil(t, f.Departments)
}

func TestSanitizeBound(t *testing.T) {
	assert.Equal(t, 1234.5, SanitizeBound("1,234.5"))
	assert.Equal(t, 0.0, SanitizeBound(""))
	assert.Equal(t, 0.0, SanitizeBound("abc"))
	assert.Equal(t, 0.0, SanitizeBound("-50"), "negative bounds fall back to open")
}
