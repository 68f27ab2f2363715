package dataset

// ============================================================================
// QUICK STATS — Headline numbers for the active set
// ============================================================================

// QuickStats summarizes a record set for the dashboard's stat strip.
type QuickStats struct {
	Buildings      int     `json:"buildings"`
	TotalEnergy    float64 `json:"totalEnergyKbtu"`
	TotalWater     float64 `json:"totalWaterKGal"`
	AvgIntensity   float64 `json:"avgEnergyIntensity"`
	CertifiedCount int     `json:"certifiedCount"`
	RenewableCount int     `json:"renewableCount"`
}

// ComputeQuickStats derives headline numbers from a record set. The average
// intensity only considers records with a meaningful floor area.
func ComputeQuickStats(records []Building) QuickStats {
	stats := QuickStats{Buildings: len(records)}

	var intensitySum float64
	var intensityN int
	for _, b := range records {
		stats.TotalEnergy += b.SiteEnergyUseKbtu
		stats.TotalWater += b.WaterUseKGal
		if b.Certified() {
			stats.CertifiedCount++
		}
		if b.HasRenewable() {
			stats.RenewableCount++
		}
		if eui := b.EnergyIntensity(); eui > 0 {
			intensitySum += eui
			intensityN++
		}
	}
	if intensityN > 0 {
		stats.AvgIntensity = intensitySum / float64(intensityN)
	}
	return stats
}
