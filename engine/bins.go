package engine

// ============================================================================
// FIXED PERCENT BINS — Green-power usage buckets
// ============================================================================
// The green-power chart and the green-power click filter share this one
// definition, so a bin click always selects exactly the records its bar
// displayed.
// ============================================================================

// PercentBin is a fixed percentage bucket. Low is exclusive, High is
// inclusive; the zero bucket uses Low = -1 so that Contains(0) holds for it
// alone.
type PercentBin struct {
	Label string
	Low   float64
	High  float64
}

// Contains reports whether a percent value falls in this bin.
func (b PercentBin) Contains(v float64) bool {
	return v > b.Low && v <= b.High
}

// GreenPowerBins are the fixed green-power usage buckets, in display order.
var GreenPowerBins = []PercentBin{
	{Label: "0% Usage", Low: -1, High: 0},
	{Label: "1-25%", Low: 0, High: 25},
	{Label: "26-50%", Low: 25, High: 50},
	{Label: "51-75%", Low: 50, High: 75},
	{Label: "76-100%", Low: 75, High: 100},
}

// GreenPowerBinByLabel resolves a bin from its display label.
func GreenPowerBinByLabel(label string) (PercentBin, bool) {
	for _, b := range GreenPowerBins {
		if b.Label == label {
			return b, true
		}
	}
	return PercentBin{}, false
}

// CountPercentBins counts qualifying items per fixed bin, in bin order.
// Every bin appears in the result even when empty.
func CountPercentBins[T any](items []T, pct func(T) float64, qualify func(T) bool) []CategoryCount {
	counts := make([]CategoryCount, len(GreenPowerBins))
	for i, b := range GreenPowerBins {
		counts[i].Label = b.Label
	}
	for _, item := range items {
		if qualify != nil && !qualify(item) {
			continue
		}
		v := pct(item)
		for i, b := range GreenPowerBins {
			if b.Contains(v) {
				counts[i].Count++
				break
			}
		}
	}
	return counts
}
