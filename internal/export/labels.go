package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// LabelInfo is the payload encoded into each part label's QR code.
type LabelInfo struct {
	PartID   string  `json:"part_id"`
	Role     string  `json:"role"`
	LengthIn float64 `json:"length_in"`
	WidthIn  float64 `json:"width_in"`
	SheetID  string  `json:"sheet_id"`
	X        float64 `json:"x_in"`
	Y        float64 `json:"y_in"`
	Rotated  bool    `json:"rotated"`
}

// Label layout constants for Avery 5160-compatible sheets (3 columns,
// 10 rows on US Letter).
const (
	labelPageWidth  = 215.9
	labelPageHeight = 279.4
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// CollectLabelInfos flattens a pack result into label payloads, one per
// placed piece, in sheet then placement order.
func CollectLabelInfos(result model.PackResult) []LabelInfo {
	var labels []LabelInfo
	for _, sheet := range result.Sheets {
		for _, p := range sheet.Parts {
			labels = append(labels, LabelInfo{
				PartID:   p.PartID,
				Role:     string(p.Part.Role),
				LengthIn: p.Part.LengthIn,
				WidthIn:  p.Part.WidthIn,
				SheetID:  sheet.SheetID,
				X:        p.X,
				Y:        p.Y,
				Rotated:  p.Rotated,
			})
		}
	}
	return labels
}

// ExportLabels writes a PDF of QR-coded labels for every placed part,
// laid out on a standard Avery 5160 grid. Each QR encodes the label
// payload as JSON so a phone scan identifies the piece and its sheet
// position during assembly.
func ExportLabels(path string, result model.PackResult) error {
	labels := CollectLabelInfos(result)
	if len(labels) == 0 {
		return fmt.Errorf("no parts placed to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}
		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, i, label); err != nil {
			return fmt.Errorf("render label for %q: %w", label.PartID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws one label cell.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, seq int, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal label info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%s", seq, info.PartID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	partID := info.PartID
	if pdf.GetStringWidth(partID) > textW {
		for len(partID) > 0 && pdf.GetStringWidth(partID+"...") > textW {
			partID = partID[:len(partID)-1]
		}
		partID += "..."
	}
	pdf.CellFormat(textW, 4.5, partID, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%s x %s", model.FormatInches(info.LengthIn), model.FormatInches(info.WidthIn))
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	sheetInfo := fmt.Sprintf("%s @ (%.1f, %.1f)", info.SheetID, info.X, info.Y)
	pdf.CellFormat(textW, 3, sheetInfo, "", 1, "L", false, 0, "")

	if info.Rotated {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "Rotated 90\xb0", "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}
