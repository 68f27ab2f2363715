package engine

import (
	"fmt"
	"math"
	"sort"
)

// ============================================================================
// AGGREGATORS — Categorical counts, histograms, rankings, rate tables
// ============================================================================
// The four binning primitives behind every chart. All are deterministic,
// side-effect-free, generic over the record type via accessor functions,
// and tolerate empty input (empty result, never a panic).
// ============================================================================

// CategoryCount is one label→count bucket of a categorical aggregation.
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CountBy groups items by a string selector and counts each label, in first
// insertion order. Items with an empty label are bucketed under an
// "Unknown <noun>" sentinel.
func CountBy[T any](items []T, noun string, label func(T) string) []CategoryCount {
	sentinel := "Unknown " + noun
	index := make(map[string]int)
	var counts []CategoryCount

	for _, item := range items {
		key := label(item)
		if key == "" {
			key = sentinel
		}
		i, ok := index[key]
		if !ok {
			i = len(counts)
			index[key] = i
			counts = append(counts, CategoryCount{Label: key})
		}
		counts[i].Count++
	}
	return counts
}

// SortCountsDesc sorts counts descending, preserving insertion order between
// equal counts.
func SortCountsDesc(counts []CategoryCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
}

// TopCounts returns at most n buckets. Callers sort first.
func TopCounts(counts []CategoryCount, n int) []CategoryCount {
	if n <= 0 || len(counts) <= n {
		return counts
	}
	return counts[:n]
}

// ============================================================================
// NUMERIC HISTOGRAM
// ============================================================================

// HistogramBin is one ordered bucket of a numeric histogram.
type HistogramBin struct {
	Label string  `json:"label"`
	Lower float64 `json:"lower"`
	Count int     `json:"count"`
}

// HistogramResult carries the ordered bins plus the values excluded from
// them: non-positive values and values beyond the sanity ceiling are never
// binned, only counted.
type HistogramResult struct {
	Bins        []HistogramBin `json:"bins"`
	BinSize     float64        `json:"binSize"`
	NonPositive int            `json:"nonPositive"`
	AboveLimit  int            `json:"aboveLimit"`
}

// NoDataLabel is the single-bin label emitted when no value qualifies.
const NoDataLabel = "No Data"

// Histogram buckets a positive-valued numeric selector into
// ceil(max/targetBins)-wide bins, ascending by lower bound. Each qualifying
// value lands in exactly one bin; the sum of bin counts equals the number
// of qualifying values. Zero values are excluded unless WithIncludeZero is
// set.
func Histogram[T any](items []T, value func(T) float64, opts ...HistogramOption) HistogramResult {
	cfg := applyHistogramOptions(opts)
	result := HistogramResult{}

	var values []float64
	max := 0.0
	for _, item := range items {
		v := value(item)
		switch {
		case v < 0, v == 0 && !cfg.IncludeZero:
			result.NonPositive++
		case cfg.SanityCeiling > 0 && v > cfg.SanityCeiling:
			result.AboveLimit++
		default:
			values = append(values, v)
			if v > max {
				max = v
			}
		}
	}

	if len(values) == 0 {
		result.Bins = []HistogramBin{{Label: NoDataLabel}}
		return result
	}

	binSize := math.Ceil(max / float64(cfg.TargetBins))
	if binSize < cfg.MinBinSize {
		binSize = cfg.MinBinSize
	}
	result.BinSize = binSize

	byLower := make(map[float64]int)
	for _, v := range values {
		lower := math.Floor(v/binSize) * binSize
		byLower[lower]++
	}

	bins := make([]HistogramBin, 0, len(byLower))
	for lower, count := range byLower {
		bins = append(bins, HistogramBin{
			Label: binLabel(lower, binSize),
			Lower: lower,
			Count: count,
		})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Lower < bins[j].Lower })
	result.Bins = bins
	return result
}

func binLabel(lower, binSize float64) string {
	return fmt.Sprintf("%s - %s", FormatAmount(lower), FormatAmount(lower+binSize-1))
}

// ============================================================================
// RANKING
// ============================================================================

// RankBy returns the top (desc) or bottom (asc) n items by a numeric key.
// The sort is stable: ties keep their original insertion order. The input
// slice is never reordered.
func RankBy[T any](items []T, key func(T) float64, n int, desc bool) []T {
	ranked := make([]T, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		if desc {
			return key(ranked[i]) > key(ranked[j])
		}
		return key(ranked[i]) < key(ranked[j])
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// ============================================================================
// RATE TABLE
// ============================================================================

// RateRow is one group of a rate table: how often a predicate holds within
// the group.
type RateRow struct {
	Label string  `json:"label"`
	True  int     `json:"true"`
	Total int     `json:"total"`
	Rate  float64 `json:"rate"` // percent, 0–100
}

// RateBy groups items by a categorical key and computes the predicate's
// true-rate per group. Groups smaller than minGroup are dropped — small
// samples make meaningless rates. Rows come back descending by rate
// (insertion order between ties), truncated to topN.
func RateBy[T any](items []T, group func(T) string, pred func(T) bool, minGroup, topN int) []RateRow {
	index := make(map[string]int)
	var rows []RateRow

	for _, item := range items {
		key := group(item)
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, RateRow{Label: key})
		}
		rows[i].Total++
		if pred(item) {
			rows[i].True++
		}
	}

	kept := rows[:0]
	for _, row := range rows {
		if row.Total < minGroup {
			continue
		}
		row.Rate = roundTo1(float64(row.True) / float64(row.Total) * 100)
		kept = append(kept, row)
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Rate > kept[j].Rate })
	if topN > 0 && len(kept) > topN {
		kept = kept[:topN]
	}
	return kept
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ============================================================================
// FORMATTING
// ============================================================================

// FormatAmount renders an amount with comma separators, rounded to two
// decimals, dropping the fraction when it rounds away.
func FormatAmount(v float64) string {
	cents := int64(math.Round(math.Abs(v) * 100))
	whole, frac := cents/100, cents%100

	s := formatInt(whole)
	if frac != 0 {
		s = fmt.Sprintf("%s.%02d", s, frac)
	}
	if v < 0 && cents != 0 {
		s = "-" + s
	}
	return s
}

func formatInt(n int64) string {
	if n < 0 {
		return "-" + formatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", formatInt(n/1000), n%1000)
}
