// Package export serializes record sets to CSV or JSON byte streams and
// hands them to a download sink.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/greenboard-org/greenboard/dataset"
)

// ============================================================================
// EXPORT — Active or full dataset → CSV / JSON
// ============================================================================

// ErrEmptyDataset is returned when there is nothing to export. CSV headers
// cannot be derived from an empty set; the caller shows a transient
// notification and produces no file.
var ErrEmptyDataset = errors.New("export: dataset is empty")

// Format names a supported export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// columns is the canonical CSV column order, matching the record's field
// order.
var columns = []string{
	"departmentCode", "departmentName", "propertyId", "propertyName",
	"address", "city", "state", "postalCode",
	"grossFloorArea", "yearBuilt", "primaryPropertyType",
	"siteEnergyUseKbtu", "totalElectricityUseKWh", "naturalGasUseTherms",
	"propaneUseGallons", "percentGreenPower", "greenPowerKWh",
	"onsiteRenewableKWh", "waterUseKGal", "leedStatus",
}

// Write serializes records to w in the requested format.
func Write(records []dataset.Building, format Format, w io.Writer) error {
	switch format {
	case FormatCSV:
		return CSV(records, w)
	case FormatJSON:
		return JSON(records, w)
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
}

// CSV writes a header row plus one row per record. encoding/csv quotes any
// value containing a comma.
func CSV(records []dataset.Building, w io.Writer) error {
	if len(records) == 0 {
		return ErrEmptyDataset
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, b := range records {
		if err := cw.Write(row(b)); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSON writes the records as a pretty-printed array. Re-parsing the output
// yields records equal field-for-field to the input.
func JSON(records []dataset.Building, w io.Writer) error {
	if len(records) == 0 {
		return ErrEmptyDataset
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("export: encode JSON: %w", err)
	}
	return nil
}

func row(b dataset.Building) []string {
	return []string{
		b.DepartmentCode, b.DepartmentName, b.PropertyID, b.PropertyName,
		b.Address, b.City, b.State, b.PostalCode,
		num(b.GrossFloorArea), strconv.Itoa(b.YearBuilt), b.PrimaryPropertyType,
		num(b.SiteEnergyUseKbtu), num(b.TotalElectricityUseKWh), num(b.NaturalGasUseTherms),
		num(b.PropaneUseGallons), num(b.PercentGreenPower), num(b.GreenPowerKWh),
		num(b.OnsiteRenewableKWh), num(b.WaterUseKGal), b.LEEDStatus,
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
