// Package export writes computed cut plans to shop-facing file formats:
// cut diagram PDFs, QR part labels, CSV/XLSX cut lists, DXF drawings and
// an HTML utilization report. Exporters only consume derived data; they
// never feed anything back into the core.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// partColor is an RGB fill for a placed part.
type partColor struct {
	R, G, B int
}

var partColors = []partColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 24.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF writes a cut diagram document: one page per sheet layout with
// the sheet drawn to scale (length axis horizontal), rip cut lines, and
// labeled part rectangles, followed by a summary page.
func ExportPDF(path string, result model.PackResult, parts []model.Part) error {
	if len(result.Sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, sheet := range result.Sheets {
		pdf.AddPage()
		renderSheetPage(pdf, sheet)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, parts)

	return pdf.OutputFileAndClose(path)
}

// renderSheetPage draws one sheet layout. Sheet coordinates are inches
// with X across the 48" width and Y along the 96" length; on the page the
// length runs horizontally.
func renderSheetPage(pdf *fpdf.Fpdf, sheet model.SheetLayout) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s  (%g x %g in stock)", sheet.SheetID, model.SheetWidthIn, model.SheetLengthIn)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Parts: %d | Rips: %d | Utilization: %.1f%%",
		len(sheet.Parts), len(sheet.RipCuts), sheet.Utilization)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scaleX := drawWidth / model.SheetLengthIn
	scaleY := drawHeight / model.SheetWidthIn
	scale := math.Min(scaleX, scaleY)

	canvasW := model.SheetLengthIn * scale
	canvasH := model.SheetWidthIn * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Sheet background
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Rip cut lines run the full sheet length
	pdf.SetDrawColor(120, 30, 30)
	pdf.SetLineWidth(0.3)
	pdf.SetDashPattern([]float64{2, 2}, 0)
	for _, rip := range sheet.RipCuts {
		ry := offsetY + rip.Position*scale
		pdf.Line(offsetX, ry, offsetX+canvasW, ry)
	}
	pdf.SetDashPattern([]float64{}, 0)

	// Placed parts
	for i, p := range sheet.Parts {
		col := partColors[i%len(partColors)]
		px := offsetX + p.Y*scale
		py := offsetY + p.X*scale
		pw := p.Length * scale
		ph := p.Width * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 6 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(0, 0, 0)
			label := p.PartID
			dims := fmt.Sprintf("%s x %s", model.FormatInches(p.Length), model.FormatInches(p.Width))

			labelW := pdf.GetStringWidth(label)
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-3.5)
				pdf.CellFormat(labelW, 3.5, label, "", 0, "C", false, 0, "")
			}
			dimsW := pdf.GetStringWidth(dims)
			if ph > 10 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 3.5, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawRipLegend(pdf, sheet, offsetY+canvasH+4)
}

// drawRipLegend lists the rip schedule under the drawing.
func drawRipLegend(pdf *fpdf.Fpdf, sheet model.SheetLayout, startY float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	y := startY
	for _, rip := range sheet.RipCuts {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, rip.Label, "", 0, "L", false, 0, "")
		y += 4
		if y > pageHeight-marginBottom {
			break
		}
	}
	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage lists totals, the full cut list and any oversized
// parts.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PackResult, parts []model.Part) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Cut Plan Summary", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	y := marginTop + headerHeight + 2
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(0, 5, fmt.Sprintf("Sheets: %d | Overall utilization: %.1f%% | Oversized parts: %d",
		len(result.Sheets), result.TotalUtilization(), len(result.OversizedParts)), "", 0, "L", false, 0, "")
	y += 8

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(0, 5, "Cut list", "", 0, "L", false, 0, "")
	y += 5

	pdf.SetFont("Helvetica", "", 8)
	for _, p := range parts {
		pdf.SetXY(marginLeft, y)
		line := fmt.Sprintf("%-24s %s x %s x %s  (qty %d)",
			p.ID, model.FormatInches(p.LengthIn), model.FormatInches(p.WidthIn), model.FormatInches(p.ThicknessIn), p.Qty)
		pdf.CellFormat(0, 4, line, "", 0, "L", false, 0, "")
		y += 4
		if y > pageHeight-marginBottom-10 {
			break
		}
	}

	if len(result.OversizedParts) > 0 {
		y += 4
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(180, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(0, 5, "Oversized parts (cannot cut from standard stock)", "", 0, "L", false, 0, "")
		y += 5
		pdf.SetFont("Helvetica", "", 8)
		for _, o := range result.OversizedParts {
			pdf.SetXY(marginLeft, y)
			pdf.CellFormat(0, 4, fmt.Sprintf("%s: %s", o.Part.ID, o.Reason), "", 0, "L", false, 0, "")
			y += 4
		}
		pdf.SetTextColor(0, 0, 0)
	}
}
