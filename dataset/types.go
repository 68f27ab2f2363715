package dataset

// ============================================================================
// BUILDING RECORD — Canonical typed record
// ============================================================================
// One row per reporting property per year. Produced by Normalize from the
// loosely-typed source payload; numeric fields are never NaN or Inf after
// normalization (unparsable input coerces to 0).
// ============================================================================

// MinMeaningfulArea is the floor-area threshold below which per-square-foot
// intensities are not meaningful (tiny or unreported areas produce absurd
// ratios).
const MinMeaningfulArea = 100.0

// Building is a single canonical building record.
type Building struct {
	DepartmentCode string `json:"departmentCode"`
	DepartmentName string `json:"departmentName"`
	PropertyID     string `json:"propertyId"`
	PropertyName   string `json:"propertyName"`

	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`

	GrossFloorArea      float64 `json:"grossFloorArea"`
	YearBuilt           int     `json:"yearBuilt"`
	PrimaryPropertyType string  `json:"primaryPropertyType"`

	SiteEnergyUseKbtu      float64 `json:"siteEnergyUseKbtu"`
	TotalElectricityUseKWh float64 `json:"totalElectricityUseKWh"`
	NaturalGasUseTherms    float64 `json:"naturalGasUseTherms"`
	PropaneUseGallons      float64 `json:"propaneUseGallons"`
	PercentGreenPower      float64 `json:"percentGreenPower"`
	GreenPowerKWh          float64 `json:"greenPowerKWh"`
	OnsiteRenewableKWh     float64 `json:"onsiteRenewableKWh"`
	WaterUseKGal           float64 `json:"waterUseKGal"`

	// LEEDStatus is the raw free-text certification status. Use Certified
	// for the normalized boolean reading.
	LEEDStatus string `json:"leedStatus"`
}

// EnergyIntensity returns site energy use per square foot (kBtu/sqft),
// or 0 when the floor area is too small to be meaningful.
func (b Building) EnergyIntensity() float64 {
	if b.GrossFloorArea < MinMeaningfulArea {
		return 0
	}
	return b.SiteEnergyUseKbtu / b.GrossFloorArea
}

// ElectricityIntensity returns electricity use per square foot (kWh/sqft),
// or 0 when the floor area is too small to be meaningful.
func (b Building) ElectricityIntensity() float64 {
	if b.GrossFloorArea < MinMeaningfulArea {
		return 0
	}
	return b.TotalElectricityUseKWh / b.GrossFloorArea
}

// WaterIntensity returns water use per square foot (kGal/sqft), or 0 when
// the floor area is too small to be meaningful.
func (b Building) WaterIntensity() float64 {
	if b.GrossFloorArea < MinMeaningfulArea {
		return 0
	}
	return b.WaterUseKGal / b.GrossFloorArea
}

// HasRenewable reports whether the building sources any renewable power,
// either onsite generation or purchased green power.
func (b Building) HasRenewable() bool {
	return b.OnsiteRenewableKWh > 0 || b.PercentGreenPower > 0
}

// Certified reports the normalized LEED reading of the free-text status.
// Any status other than empty, "no", or "not applicable" counts as
// certified.
func (b Building) Certified() bool {
	return leedCertified(b.LEEDStatus)
}
