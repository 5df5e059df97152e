package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// dxfSheetGap is the spacing between sheet outlines in the drawing, inches.
const dxfSheetGap = 12.0

// ExportDXF writes all sheet layouts into a single DXF drawing, with each
// sheet offset along X. Sheet outlines, part rectangles and rip cut lines
// go on separate layers so CAM tooling can filter them. Drawing units are
// inches; the sheet length axis runs along X.
func ExportDXF(path string, result model.PackResult) error {
	if len(result.Sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("SHEETS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add layer: %w", err)
	}
	if _, err := d.AddLayer("PARTS", color.Green, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("add layer: %w", err)
	}
	if _, err := d.AddLayer("RIPS", color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("add layer: %w", err)
	}

	for i, sheet := range result.Sheets {
		offsetX := float64(i) * (model.SheetLengthIn + dxfSheetGap)

		if err := d.ChangeLayer("SHEETS"); err != nil {
			return err
		}
		if err := drawRect(d, offsetX, 0, model.SheetLengthIn, model.SheetWidthIn); err != nil {
			return err
		}

		if err := d.ChangeLayer("RIPS"); err != nil {
			return err
		}
		for _, rip := range sheet.RipCuts {
			if _, err := d.Line(offsetX, rip.Position, 0, offsetX+model.SheetLengthIn, rip.Position, 0); err != nil {
				return err
			}
		}

		if err := d.ChangeLayer("PARTS"); err != nil {
			return err
		}
		for _, p := range sheet.Parts {
			// Placement X is across the sheet width, Y along its length.
			if err := drawRect(d, offsetX+p.Y, p.X, p.Length, p.Width); err != nil {
				return err
			}
		}
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle as four LINE entities.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	lines := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}
