package model

import "math"

// sqInPerBoardFoot: 1 board foot = 12" x 12" x 1" = 144 cubic inches; for
// sheet parts the thickness term is carried explicitly, so the divisor is
// the 144 square-inch face.
const sqInPerBoardFoot = 144.0

// MaterialEstimate aggregates a cut list into purchasing totals.
type MaterialEstimate struct {
	BoardFeet       float64 `json:"board_feet"`        // frame-role stock
	PanelSquareFeet float64 `json:"panel_square_feet"` // back and door panels
	FramePartCount  int     `json:"frame_part_count"`
	PanelPartCount  int     `json:"panel_part_count"`
	SheetsMin       int     `json:"sheets_min"` // naive lower bound on 4x8 sheets, all thicknesses pooled
}

// CalculateMaterialEstimate totals board feet for frame parts and square
// feet for panel parts (back, doors). Pure; part order is irrelevant.
func CalculateMaterialEstimate(parts []Part) MaterialEstimate {
	var est MaterialEstimate
	var panelArea float64

	for _, p := range parts {
		qty := float64(p.Qty)
		if p.Role.IsFrame() {
			est.BoardFeet += p.LengthIn * p.WidthIn * p.ThicknessIn * qty / sqInPerBoardFoot
			est.FramePartCount += p.Qty
		} else {
			panelArea += p.LengthIn * p.WidthIn * qty
			est.PanelSquareFeet += p.LengthIn * p.WidthIn * qty / sqInPerBoardFoot
			est.PanelPartCount += p.Qty
		}
	}

	var frameArea float64
	for _, p := range parts {
		if p.Role.IsFrame() {
			frameArea += p.LengthIn * p.WidthIn * float64(p.Qty)
		}
	}
	totalArea := frameArea + panelArea
	if totalArea > 0 {
		est.SheetsMin = int(math.Ceil(totalArea / SheetAreaIn2))
	}
	return est
}
