package dataset

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// NORMALIZER — Loosely-typed payload → canonical records
// ============================================================================
// Every input object becomes exactly one Building, however empty. There is
// no partial-record rejection: unknown fields are ignored, missing or
// unparsable values coerce to their zero defaults. The only failure mode is
// a top-level payload that is not a sequence, which the loader reports
// before Normalize runs.
// ============================================================================

// Normalize converts raw decoded objects into canonical building records.
func Normalize(raw []map[string]any) []Building {
	records := make([]Building, 0, len(raw))
	for _, obj := range raw {
		records = append(records, normalizeOne(obj))
	}
	return records
}

func normalizeOne(obj map[string]any) Building {
	return Building{
		DepartmentCode: fieldString(obj, "departmentCode"),
		DepartmentName: fieldString(obj, "departmentName"),
		PropertyID:     fieldString(obj, "propertyId"),
		PropertyName:   fieldString(obj, "propertyName"),

		Address:    fieldString(obj, "address"),
		City:       fieldString(obj, "city"),
		State:      fieldString(obj, "state"),
		PostalCode: fieldString(obj, "postalCode"),

		GrossFloorArea:      ParseNumeric(obj["grossFloorArea"]),
		YearBuilt:           int(ParseNumeric(obj["yearBuilt"])),
		PrimaryPropertyType: fieldString(obj, "primaryPropertyType"),

		SiteEnergyUseKbtu:      ParseNumeric(obj["siteEnergyUseKbtu"]),
		TotalElectricityUseKWh: ParseNumeric(obj["totalElectricityUseKWh"]),
		NaturalGasUseTherms:    ParseNumeric(obj["naturalGasUseTherms"]),
		PropaneUseGallons:      ParseNumeric(obj["propaneUseGallons"]),
		PercentGreenPower:      ParseNumeric(obj["percentGreenPower"]),
		GreenPowerKWh:          ParseNumeric(obj["greenPowerKWh"]),
		OnsiteRenewableKWh:     ParseNumeric(obj["onsiteRenewableKWh"]),
		WaterUseKGal:           ParseNumeric(obj["waterUseKGal"]),

		LEEDStatus: fieldString(obj, "leedStatus"),
	}
}

// ParseNumeric coerces a loosely-typed value to a finite float64.
// nil, missing, and empty-string values are 0. String values have thousand
// separators stripped before parsing. Anything unparsable or non-finite
// is 0.
func ParseNumeric(v any) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(val)
	case float32:
		return finiteOrZero(float64(val))
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0
		}
		s = stripSeparators(s)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	default:
		// Fallback for decoders that surface exotic numeric types.
		f, err := strconv.ParseFloat(stripSeparators(fmt.Sprint(v)), 64)
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	}
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func stripSeparators(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, " ", "")
}

func fieldString(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// leedNegative holds the LEED status readings that normalize to
// not-certified.
var leedNegative = map[string]bool{
	"":               true,
	"no":             true,
	"not applicable": true,
}

func leedCertified(status string) bool {
	return !leedNegative[strings.ToLower(strings.TrimSpace(status))]
}
