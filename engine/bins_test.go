package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// FIXED PERCENT BIN TESTS
// ============================================================================

func TestPercentBinEdges(t *testing.T) {
	zero, ok := GreenPowerBinByLabel("0% Usage")
	require.True(t, ok)
	assert.True(t, zero.Contains(0))
	assert.False(t, zero.Contains(0.5))

	low, ok := GreenPowerBinByLabel("1-25%")
	require.True(t, ok)
	assert.False(t, low.Contains(0))
	assert.True(t, low.Contains(0.5))
	assert.True(t, low.Contains(25), "high edge is inclusive")
	assert.False(t, low.Contains(25.01))

	top, ok := GreenPowerBinByLabel("76-100%")
	require.True(t, ok)
	assert.True(t, top.Contains(100))
	assert.False(t, top.Contains(100.5))
}

func TestGreenPowerBinByLabelUnknown(t *testing.T) {
	_, ok := GreenPowerBinByLabel("50-ish%")
	assert.False(t, ok)
}

func TestEveryPercentLandsInExactlyOneBin(t *testing.T) {
	for v := 0.0; v <= 100; v += 0.5 {
		hits := 0
		for _, b := range GreenPowerBins {
			if b.Contains(v) {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "value %v", v)
	}
}

func TestCountPercentBins(t *testing.T) {
	type reading struct {
		pct   float64
		power float64
	}
	items := []reading{
		{pct: 0, power: 100},
		{pct: 10, power: 100},
		{pct: 30, power: 100},
		{pct: 60, power: 100},
		{pct: 90, power: 100},
		{pct: 50, power: 0}, // no electricity use: disqualified
	}

	counts := CountPercentBins(items,
		func(r reading) float64 { return r.pct },
		func(r reading) bool { return r.power > 0 })

	require.Len(t, counts, len(GreenPowerBins), "every bin appears, even empty ones")
	for i, c := range counts {
		assert.Equal(t, GreenPowerBins[i].Label, c.Label)
		assert.Equal(t, 1, c.Count, c.Label)
	}
}

func TestCountPercentBinsEmptyInput(t *testing.T) {
	counts := CountPercentBins(nil, func(v float64) float64 { return v }, nil)
	require.Len(t, counts, len(GreenPowerBins))
	for _, c := range counts {
		assert.Zero(t, c.Count)
	}
}
