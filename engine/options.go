package engine

// ============================================================================
// HISTOGRAM OPTIONS — Functional options for Histogram()
// ============================================================================

// HistogramOption configures histogram shaping via functional options.
type HistogramOption func(*histogramConfig)

type histogramConfig struct {
	TargetBins    int
	MinBinSize    float64
	SanityCeiling float64 // 0 = no ceiling
	IncludeZero   bool
}

// WithTargetBins sets the approximate bin count (commonly 10–15 per view).
func WithTargetBins(n int) HistogramOption {
	return func(c *histogramConfig) {
		if n > 0 {
			c.TargetBins = n
		}
	}
}

// WithMinBinSize sets the minimum bin width, keeping tiny value ranges from
// producing zero-width bins.
func WithMinBinSize(size float64) HistogramOption {
	return func(c *histogramConfig) {
		if size > 0 {
			c.MinBinSize = size
		}
	}
}

// WithIncludeZero lets zero values qualify for the first bin. Callers whose
// zero is a real measurement (an age of zero years) use a negative sentinel
// for "unreported" instead.
func WithIncludeZero() HistogramOption {
	return func(c *histogramConfig) {
		c.IncludeZero = true
	}
}

// WithSanityCeiling excludes values above limit from both the bin-width
// derivation and the bins themselves. Excluded values are reported on the
// result, not dropped silently.
func WithSanityCeiling(limit float64) HistogramOption {
	return func(c *histogramConfig) {
		if limit > 0 {
			c.SanityCeiling = limit
		}
	}
}

func applyHistogramOptions(opts []HistogramOption) *histogramConfig {
	cfg := &histogramConfig{
		TargetBins: 12,
		MinBinSize: 1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
