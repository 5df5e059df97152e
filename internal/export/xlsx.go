package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/ShelfCut/internal/layout"
	"github.com/piwi3910/ShelfCut/internal/model"
)

// ExportWorkbook writes an XLSX workbook with three sheets: the cut list,
// the per-sheet placement plan, and a summary of dimensions, estimate and
// warnings.
func ExportWorkbook(path string, params model.DesignParams, dims layout.Dimensions,
	parts []model.Part, est model.MaterialEstimate, warnings []model.Warning,
	result model.PackResult) error {

	f := excelize.NewFile()
	defer f.Close()

	const cutList = "Cut List"
	if err := f.SetSheetName("Sheet1", cutList); err != nil {
		return err
	}

	writeRow(f, cutList, 1, "ID", "Role", "Qty", "Length", "Width", "Thickness", "Notes")
	for i, p := range parts {
		writeRow(f, cutList, i+2, p.ID, string(p.Role), p.Qty,
			model.FormatInches(p.LengthIn), model.FormatInches(p.WidthIn),
			model.FormatInches(p.ThicknessIn), p.Notes)
	}

	const sheets = "Sheets"
	if _, err := f.NewSheet(sheets); err != nil {
		return err
	}
	writeRow(f, sheets, 1, "Sheet", "Part", "X", "Y", "Width", "Length", "Rotated")
	row := 2
	for _, s := range result.Sheets {
		for _, p := range s.Parts {
			writeRow(f, sheets, row, s.SheetID, p.PartID, p.X, p.Y, p.Width, p.Length, p.Rotated)
			row++
		}
	}
	for _, o := range result.OversizedParts {
		writeRow(f, sheets, row, "OVERSIZED", o.Part.ID, "", "", "", "", o.Reason)
		row++
	}

	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return err
	}
	writeRow(f, summary, 1, "Exterior width", model.FormatDimension(dims.ExtWidthIn, params.UnitSystem))
	writeRow(f, summary, 2, "Exterior height", model.FormatDimension(dims.ExtHeightIn, params.UnitSystem))
	writeRow(f, summary, 3, "Exterior depth", model.FormatDimension(dims.ExtDepthIn, params.UnitSystem))
	writeRow(f, summary, 4, "Board feet (frame)", fmt.Sprintf("%.2f", est.BoardFeet))
	writeRow(f, summary, 5, "Panel sq ft (back/doors)", fmt.Sprintf("%.2f", est.PanelSquareFeet))
	writeRow(f, summary, 6, "Sheets in plan", len(result.Sheets))
	writeRow(f, summary, 7, "Overall utilization %", fmt.Sprintf("%.1f", result.TotalUtilization()))
	row = 9
	for _, w := range warnings {
		writeRow(f, summary, row, string(w.Severity), w.Message)
		row++
	}

	return f.SaveAs(path)
}

// writeRow sets one row of cells starting at column A. Errors from
// SetCellValue only occur for invalid coordinates, which the fixed
// layouts here cannot produce.
func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheet, cell, v)
	}
}
