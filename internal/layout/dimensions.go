// Package layout derives the physical structure of a shelving unit from
// its parametric description: which dividers and shelves exist, their
// exact fractional-inch dimensions, and the canonical cut list.
package layout

import "github.com/piwi3910/ShelfCut/internal/model"

// Dimensions are the derived exterior measurements of the unit, always in
// inches regardless of the input unit system.
type Dimensions struct {
	ExtWidthIn   float64 `json:"ext_width_in"`
	ExtHeightIn  float64 `json:"ext_height_in"`
	ExtDepthIn   float64 `json:"ext_depth_in"`
	SideHeightIn float64 `json:"side_height_in"` // interior run between the top and bottom caps
}

// BayWidth returns the interior span of n contiguous merged modules:
// n clearances plus the n-1 swallowed divider thicknesses. The same
// formula gives vertical spans (bay "height") since modules are square
// in clearance.
func BayWidth(n int, clearanceIn, frameIn float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*clearanceIn + float64(n-1)*frameIn
}

// CalculateDimensions converts grid size, clearance and material
// thicknesses into exterior dimensions. Pure and total: callers guarantee
// positive inputs (clamped upstream).
func CalculateDimensions(p model.DesignParams) Dimensions {
	clearance := p.ClearanceIn()
	frame := p.Materials.Frame.Inches()

	extWidth := float64(p.Cols)*clearance + float64(p.Cols+1)*frame
	extHeight := float64(p.Rows)*clearance + float64(p.Rows+1)*frame

	extDepth := p.DepthIn()
	if p.HasBack {
		extDepth += p.Materials.Back.Inches()
	}

	return Dimensions{
		ExtWidthIn:   extWidth,
		ExtHeightIn:  extHeight,
		ExtDepthIn:   extDepth,
		SideHeightIn: extHeight - 2*frame,
	}
}
