package dataset

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// NORMALIZER TESTS
// ============================================================================

func TestParseNumeric(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 42.5, 42.5},
		{"int", 7, 7},
		{"int64", int64(9), 9},
		{"json number", json.Number("1234.5"), 1234.5},
		{"plain string", "88100", 88100},
		{"comma separated", "1,234,567.8", 1234567.8},
		{"underscore separated", "1_000_000", 1000000},
		{"padded", "  250.75  ", 250.75},
		{"empty string", "", 0},
		{"blank string", "   ", 0},
		{"garbage", "n/a", 0},
		{"negative", "-12.5", -12.5},
		{"nan", math.NaN(), 0},
		{"positive inf", math.Inf(1), 0},
		{"negative inf", math.Inf(-1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseNumeric(tc.in))
		})
	}
}

func TestNormalizeToleratesMissingAndMalformedFields(t *testing.T) {
	raw := []map[string]any{
		{
			"departmentName":    "General Services",
			"propertyId":        "P-100",
			"propertyName":      "State Archives",
			"city":              "Sacramento",
			"grossFloorArea":    "125,000",
			"yearBuilt":         json.Number("1978"),
			"siteEnergyUseKbtu": "8,400,000",
			"percentGreenPower": 35,
			"leedStatus":        "Gold",
			"unknownField":      "ignored",
		},
		{}, // fully empty object still becomes a record
		{
			"propertyName":      nil,
			"grossFloorArea":    "not a number",
			"yearBuilt":         "",
			"siteEnergyUseKbtu": nil,
		},
	}

	records := Normalize(raw)
	require.Len(t, records, 3, "every input object becomes exactly one record")

	first := records[0]
	assert.Equal(t, "General Services", first.DepartmentName)
	assert.Equal(t, "P-100", first.PropertyID)
	assert.Equal(t, 125000.0, first.GrossFloorArea)
	assert.Equal(t, 1978, first.YearBuilt)
	assert.Equal(t, 8400000.0, first.SiteEnergyUseKbtu)
	assert.Equal(t, 35.0, first.PercentGreenPower)
	assert.Equal(t, "Gold", first.LEEDStatus)

	for _, b := range records[1:] {
		assert.Empty(t, b.PropertyName)
		assert.Zero(t, b.GrossFloorArea)
		assert.Zero(t, b.YearBuilt)
		assert.Zero(t, b.SiteEnergyUseKbtu)
	}
}

func TestIntensitiesRequireMeaningfulArea(t *testing.T) {
	b := Building{
		GrossFloorArea:         50, // below MinMeaningfulArea
		SiteEnergyUseKbtu:      100000,
		TotalElectricityUseKWh: 20000,
		WaterUseKGal:           500,
	}
	assert.Zero(t, b.EnergyIntensity())
	assert.Zero(t, b.ElectricityIntensity())
	assert.Zero(t, b.WaterIntensity())

	b.GrossFloorArea = 10000
	assert.InDelta(t, 10.0, b.EnergyIntensity(), 1e-9)
	assert.InDelta(t, 2.0, b.ElectricityIntensity(), 1e-9)
	assert.InDelta(t, 0.05, b.WaterIntensity(), 1e-9)
}

func TestCertifiedNormalizesFreeText(t *testing.T) {
	certified := []string{"Gold", "Silver", "Certified", "LEED EB Platinum", "yes"}
	for _, status := range certified {
		assert.True(t, Building{LEEDStatus: status}.Certified(), status)
	}

	notCertified := []string{"", "No", "no", "Not Applicable", "  not applicable  "}
	for _, status := range notCertified {
		assert.False(t, Building{LEEDStatus: status}.Certified(), "%q", status)
	}
}

func TestHasRenewable(t *testing.T) {
	assert.False(t, Building{}.HasRenewable())
	assert.True(t, Building{OnsiteRenewableKWh: 1200}.HasRenewable())
	assert.True(t, Building{PercentGreenPower: 5}.HasRenewable())
}

func TestComputeQuickStats(t *testing.T) {
	records := []Building{
		{GrossFloorArea: 10000, SiteEnergyUseKbtu: 500000, WaterUseKGal: 900, LEEDStatus: "Gold", PercentGreenPower: 40},
		{GrossFloorArea: 50, SiteEnergyUseKbtu: 100, WaterUseKGal: 10}, // tiny area: excluded from intensity
		{GrossFloorArea: 20000, SiteEnergyUseKbtu: 600000, LEEDStatus: "no"},
	}

	stats := ComputeQuickStats(records)
	assert.Equal(t, 3, stats.Buildings)
	assert.Equal(t, 1100100.0, stats.TotalEnergy)
	assert.Equal(t, 910.0, stats.TotalWater)
	assert.Equal(t, 1, stats.CertifiedCount)
	assert.Equal(t, 1, stats.RenewableCount)
	// (500000/10000 + 600000/20000) / 2
	assert.InDelta(t, 40.0, stats.AvgIntensity, 1e-9)

	assert.Zero(t, ComputeQuickStats(nil).Buildings)
}
