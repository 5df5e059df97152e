package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// ExportPartsCSV writes the cut list as CSV: one row per part with
// fractional-inch display columns alongside the raw decimal values.
func ExportPartsCSV(path string, parts []model.Part) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"id", "role", "qty", "length_in", "width_in", "thickness_in", "length", "width", "thickness", "notes"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range parts {
		row := []string{
			p.ID,
			string(p.Role),
			strconv.Itoa(p.Qty),
			formatFloat(p.LengthIn),
			formatFloat(p.WidthIn),
			formatFloat(p.ThicknessIn),
			model.FormatInches(p.LengthIn),
			model.FormatInches(p.WidthIn),
			model.FormatInches(p.ThicknessIn),
			p.Notes,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// ExportPlacementsCSV writes the sheet packing plan as CSV: one row per
// placed piece plus rows for oversized parts.
func ExportPlacementsCSV(path string, result model.PackResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"sheet_id", "part_id", "x_in", "y_in", "width_in", "length_in", "rotated", "note"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, sheet := range result.Sheets {
		for _, p := range sheet.Parts {
			row := []string{
				sheet.SheetID,
				p.PartID,
				formatFloat(p.X),
				formatFloat(p.Y),
				formatFloat(p.Width),
				formatFloat(p.Length),
				strconv.FormatBool(p.Rotated),
				"",
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	for _, o := range result.OversizedParts {
		row := []string{"", o.Part.ID, "", "", formatFloat(o.Part.WidthIn), formatFloat(o.Part.LengthIn), "", o.Reason}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
