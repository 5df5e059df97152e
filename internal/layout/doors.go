package layout

import (
	"fmt"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// Opening is one physical gap behind a door: either a merge rectangle or a
// single unmerged cell. The openings partition the grid; no cell belongs
// to more than one. Coordinates are inclusive module indices.
type Opening struct {
	R0, C0, R1, C1 int
	MergeIndex     int // index into params.Merges, or -1 for a singleton cell
}

// Openings enumerates the grid's openings in row-major order of their
// top-left cell, which makes door ids deterministic.
func Openings(p model.DesignParams) []Opening {
	var out []Opening
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			idx := p.MergeAt(r, c)
			if idx < 0 {
				out = append(out, Opening{R0: r, C0: c, R1: r, C1: c, MergeIndex: -1})
				continue
			}
			m := p.Merges[idx]
			if m.R0 == r && m.C0 == c {
				out = append(out, Opening{R0: m.R0, C0: m.C0, R1: m.R1, C1: m.C1, MergeIndex: idx})
			}
		}
	}
	return out
}

// generateDoors emits one door per opening, sized by door mode: inset
// doors shrink the opening envelope by the reveal on every edge, overlay
// doors grow it by the overlay lip.
func generateDoors(p model.DesignParams, clearanceIn, frameIn float64) []model.Part {
	var out []model.Part
	doorThickness := p.Materials.Door.Inches()

	for i, o := range Openings(p) {
		openingW := BayWidth(o.C1-o.C0+1, clearanceIn, frameIn)
		openingH := BayWidth(o.R1-o.R0+1, clearanceIn, frameIn)

		var doorW, doorH float64
		switch p.DoorMode {
		case model.DoorOverlay:
			doorW = openingW + 2*p.OverlayIn()
			doorH = openingH + 2*p.OverlayIn()
		default: // inset
			doorW = openingW - 2*p.RevealIn()
			doorH = openingH - 2*p.RevealIn()
		}

		out = append(out, model.Part{
			ID:          fmt.Sprintf("door-%d-r%dc%d", i+1, o.R0, o.C0),
			Role:        model.RoleDoor,
			Qty:         1,
			LengthIn:    doorH,
			WidthIn:     doorW,
			ThicknessIn: doorThickness,
			Bay: &model.BayRef{
				Row:      o.R0,
				RowEnd:   o.R1 + 1,
				ColStart: o.C0,
				ColEnd:   o.C1 + 1,
			},
		})
	}
	return out
}

// HardwarePoint returns the hardware center for a door, measured from the
// door's top-left corner in inches. Edge positions sit InsetIn from each
// referenced edge; center positions sit on the door's midline.
func HardwarePoint(doorWidthIn, doorHeightIn float64, hw model.DoorHardware) (x, y float64) {
	inset := hw.InsetIn

	switch hw.Position {
	case model.HardwareTopLeft, model.HardwareMiddleLeft, model.HardwareBottomLeft:
		x = inset
	case model.HardwareTopCenter, model.HardwareBottomCenter:
		x = doorWidthIn / 2
	default: // right column
		x = doorWidthIn - inset
	}

	switch hw.Position {
	case model.HardwareTopLeft, model.HardwareTopCenter, model.HardwareTopRight:
		y = inset
	case model.HardwareMiddleLeft, model.HardwareMiddleRight:
		y = doorHeightIn / 2
	default: // bottom row
		y = doorHeightIn - inset
	}
	return x, y
}
