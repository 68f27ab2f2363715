package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// AGGREGATOR TESTS
// ============================================================================

type sample struct {
	group string
	value float64
	green bool
}

func TestCountByBucketsAndSentinel(t *testing.T) {
	items := []sample{
		{group: "Corrections"},
		{group: "Parks"},
		{group: "Corrections"},
		{group: ""},
		{group: "Parks"},
		{group: ""},
	}

	counts := CountBy(items, "Department", func(s sample) string { return s.group })
	require.Len(t, counts, 3)
	// First-insertion order before any sort.
	assert.Equal(t, CategoryCount{Label: "Corrections", Count: 2}, counts[0])
	assert.Equal(t, CategoryCount{Label: "Parks", Count: 2}, counts[1])
	assert.Equal(t, CategoryCount{Label: "Unknown Department", Count: 2}, counts[2])
}

func TestCountByEmptyInput(t *testing.T) {
	counts := CountBy(nil, "Department", func(s sample) string { return s.group })
	assert.Empty(t, counts)
}

func TestSortCountsDescIsStable(t *testing.T) {
	counts := []CategoryCount{
		{Label: "a", Count: 3},
		{Label: "b", Count: 7},
		{Label: "c", Count: 3},
	}
	SortCountsDesc(counts)
	assert.Equal(t, []CategoryCount{
		{Label: "b", Count: 7},
		{Label: "a", Count: 3}, // ties keep insertion order
		{Label: "c", Count: 3},
	}, counts)
}

func TestTopCounts(t *testing.T) {
	counts := []CategoryCount{{Label: "a"}, {Label: "b"}, {Label: "c"}}
	assert.Len(t, TopCounts(counts, 2), 2)
	assert.Len(t, TopCounts(counts, 0), 3)
	assert.Len(t, TopCounts(counts, 10), 3)
}

func TestHistogramBinSizeRule(t *testing.T) {
	// max 100 over 12 target bins: ceil(100/12) = 9.
	items := []sample{{value: 1}, {value: 50}, {value: 100}}
	hist := Histogram(items, func(s sample) float64 { return s.value })
	assert.Equal(t, 9.0, hist.BinSize)
}

func TestHistogramConservesQualifyingValues(t *testing.T) {
	items := []sample{
		{value: 5}, {value: 12}, {value: 47}, {value: 99}, {value: 240},
		{value: 0},     // non-positive: excluded
		{value: -3},    // non-positive: excluded
		{value: 10000}, // above ceiling: excluded
	}
	hist := Histogram(items,
		func(s sample) float64 { return s.value },
		WithSanityCeiling(500))

	binned := 0
	for i, bin := range hist.Bins {
		binned += bin.Count
		if i > 0 {
			assert.Greater(t, bin.Lower, hist.Bins[i-1].Lower, "bins ascend by lower bound")
		}
	}
	assert.Equal(t, 5, binned, "sum of bin counts equals qualifying values")
	assert.Equal(t, 2, hist.NonPositive)
	assert.Equal(t, 1, hist.AboveLimit)
}

func TestHistogramAssignsByFloor(t *testing.T) {
	// max 240 over 12 bins: width 20. 39 lands in [20,39], 40 in [40,59].
	items := []sample{{value: 39}, {value: 40}, {value: 240}}
	hist := Histogram(items, func(s sample) float64 { return s.value })
	require.Equal(t, 20.0, hist.BinSize)

	byLower := map[float64]int{}
	for _, b := range hist.Bins {
		byLower[b.Lower] = b.Count
	}
	assert.Equal(t, 1, byLower[20])
	assert.Equal(t, 1, byLower[40])
	assert.Equal(t, 1, byLower[240])
}

func TestHistogramIncludeZero(t *testing.T) {
	items := []sample{{value: 0}, {value: 5}, {value: -1}}
	key := func(s sample) float64 { return s.value }

	plain := Histogram(items, key)
	assert.Equal(t, 2, plain.NonPositive)

	zeroed := Histogram(items, key, WithIncludeZero())
	assert.Equal(t, 1, zeroed.NonPositive, "only the negative sentinel is excluded")

	binned := 0
	for _, b := range zeroed.Bins {
		binned += b.Count
	}
	assert.Equal(t, 2, binned, "zero lands in the first bin")
	assert.Zero(t, zeroed.Bins[0].Lower)
}

func TestHistogramNoQualifyingValues(t *testing.T) {
	for _, items := range [][]sample{nil, {{value: 0}, {value: -1}}} {
		hist := Histogram(items, func(s sample) float64 { return s.value })
		require.Len(t, hist.Bins, 1)
		assert.Equal(t, NoDataLabel, hist.Bins[0].Label)
		assert.Zero(t, hist.Bins[0].Count)
	}
}

func TestHistogramBinLabels(t *testing.T) {
	items := []sample{{value: 1}, {value: 1200}}
	hist := Histogram(items, func(s sample) float64 { return s.value })
	require.Equal(t, 100.0, hist.BinSize)
	assert.Equal(t, "0 - 99", hist.Bins[0].Label)
	assert.Equal(t, "1,200 - 1,299", hist.Bins[len(hist.Bins)-1].Label)
}

func TestRankByTopAndBottom(t *testing.T) {
	items := []sample{{value: 100}, {value: 500}, {value: 1000}}
	key := func(s sample) float64 { return s.value }

	top := RankBy(items, key, 2, true)
	require.Len(t, top, 2)
	assert.Equal(t, 1000.0, top[0].value)
	assert.Equal(t, 500.0, top[1].value)

	bottom := RankBy(items, key, 2, false)
	require.Len(t, bottom, 2)
	assert.Equal(t, 100.0, bottom[0].value)
	assert.Equal(t, 500.0, bottom[1].value)

	// The input slice is never reordered.
	assert.Equal(t, 100.0, items[0].value)
	assert.Equal(t, 1000.0, items[2].value)
}

func TestRankByTiesKeepInsertionOrder(t *testing.T) {
	items := []sample{
		{group: "first", value: 10},
		{group: "second", value: 10},
		{group: "third", value: 10},
	}
	ranked := RankBy(items, func(s sample) float64 { return s.value }, 0, true)
	assert.Equal(t, "first", ranked[0].group)
	assert.Equal(t, "second", ranked[1].group)
	assert.Equal(t, "third", ranked[2].group)
}

func TestRateByDropsSmallGroups(t *testing.T) {
	var items []sample
	for i := 0; i < 6; i++ {
		items = append(items, sample{group: "Water Resources", green: i < 3})
	}
	items = append(items,
		sample{group: "Tiny Office", green: true},
		sample{group: "", green: true}, // empty key: skipped entirely
	)

	rows := RateBy(items,
		func(s sample) string { return s.group },
		func(s sample) bool { return s.green },
		5, 10)

	require.Len(t, rows, 1, "groups under the population floor are dropped")
	assert.Equal(t, "Water Resources", rows[0].Label)
	assert.Equal(t, 3, rows[0].True)
	assert.Equal(t, 6, rows[0].Total)
	assert.Equal(t, 50.0, rows[0].Rate)
}

func TestRateByRoundsAndSortsDescending(t *testing.T) {
	var items []sample
	for i := 0; i < 3; i++ {
		items = append(items, sample{group: "low", green: i == 0}) // 33.3%
	}
	for i := 0; i < 3; i++ {
		items = append(items, sample{group: "high", green: i < 2}) // 66.7%
	}

	rows := RateBy(items,
		func(s sample) string { return s.group },
		func(s sample) bool { return s.green },
		1, 0)

	require.Len(t, rows, 2)
	assert.Equal(t, "high", rows[0].Label)
	assert.Equal(t, 66.7, rows[0].Rate)
	assert.Equal(t, 33.3, rows[1].Rate)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "999", FormatAmount(999))
	assert.Equal(t, "1,000", FormatAmount(1000))
	assert.Equal(t, "12,345,678", FormatAmount(12345678))
	assert.Equal(t, "1,234.50", FormatAmount(1234.5))
	assert.Equal(t, "9,500,000.50", FormatAmount(9500000.5))
}

func TestFormatAmountFractionCarry(t *testing.T) {
	// A fraction rounding to 100 cents carries into the whole part instead
	// of rendering a three-digit fraction.
	assert.Equal(t, "1,235", FormatAmount(1234.999))
	assert.Equal(t, "1", FormatAmount(0.995))
	assert.Equal(t, "1,234.99", FormatAmount(1234.994))
}

func TestFormatAmountNegative(t *testing.T) {
	assert.Equal(t, "-0.50", FormatAmount(-0.5))
	assert.Equal(t, "-1,234.50", FormatAmount(-1234.5))
	assert.Equal(t, "-1,235", FormatAmount(-1234.999))
	assert.Equal(t, "0", FormatAmount(-0.001), "a fraction rounding to zero drops the sign")
}
