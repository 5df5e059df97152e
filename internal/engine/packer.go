// Package engine turns a cut list into per-thickness sheet layouts: rip
// strips on standard 48"x96" stock with cross-cut placements, plus a
// report of parts that cannot be cut from standard sheets.
package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/ShelfCut/internal/model"
)

const (
	// cutMargin is the kerf/cleanup allowance consumed after every cut and
	// at the start of each strip.
	cutMargin = 0.125

	// widthTol is the tolerance used when matching a part to an existing
	// rip strip of nominally equal width.
	widthTol = 0.001

	// ripThreshold splits "small" from "large" parts for the orientation
	// rule: short rips on long stock are wasteful and unsafe, so
	// orientation flips once either dimension passes this.
	ripThreshold = 24.0
)

// ripSpec is the resolved cutting orientation for one part: the strip
// width it rips to and the cross-cut length it consumes along the strip.
type ripSpec struct {
	ripWidth float64
	crossCut float64
	rotated  bool
}

// ripOrientation applies the orientation rule to a part's dimensions.
func ripOrientation(lengthIn, widthIn float64) ripSpec {
	if lengthIn <= ripThreshold && widthIn <= ripThreshold {
		// Small part: rip along the longer dimension so the strip width is
		// the shorter one.
		if lengthIn >= widthIn {
			return ripSpec{ripWidth: widthIn, crossCut: lengthIn, rotated: false}
		}
		return ripSpec{ripWidth: lengthIn, crossCut: widthIn, rotated: true}
	}
	// Large part: orient whichever way makes the rip width the smaller of
	// the two dimensions.
	if widthIn <= lengthIn {
		return ripSpec{ripWidth: widthIn, crossCut: lengthIn, rotated: false}
	}
	return ripSpec{ripWidth: lengthIn, crossCut: widthIn, rotated: true}
}

// oversizeReason returns a non-empty reason when a part cannot be cut from
// standard stock in either orientation.
func oversizeReason(p model.Part) string {
	longest := math.Max(p.LengthIn, p.WidthIn)
	shortest := math.Min(p.LengthIn, p.WidthIn)

	if longest > model.SheetLengthIn {
		return fmt.Sprintf("longest dimension %s exceeds the %g\" stock length", model.FormatInches(longest), model.SheetLengthIn)
	}
	if shortest > model.SheetWidthIn {
		return fmt.Sprintf("shortest dimension %s exceeds the %g\" stock width", model.FormatInches(shortest), model.SheetWidthIn)
	}
	return ""
}

// packItem is one physical piece to place (quantities already expanded).
type packItem struct {
	part model.Part
	rip  ripSpec
}

// strip is an open rip strip on the current sheet.
type strip struct {
	x     float64 // left edge of the strip
	width float64
	used  float64 // accumulated length including margins
}

// sheetState accumulates one sheet while packing.
type sheetState struct {
	layout    model.SheetLayout
	strips    []strip
	usedWidth float64
}

func newSheetState(thickness float64, num int) *sheetState {
	return &sheetState{
		layout: model.SheetLayout{
			SheetID:     fmt.Sprintf("%s Sheet %d", model.FormatInches(thickness), num),
			ThicknessIn: thickness,
		},
	}
}

// place tries to put one item on this sheet: first by appending to a
// matching open strip, then by opening a new strip if horizontal room
// remains.
func (s *sheetState) place(it packItem) bool {
	for i := range s.strips {
		st := &s.strips[i]
		if math.Abs(st.width-it.rip.ripWidth) <= widthTol &&
			model.SheetLengthIn-st.used >= it.rip.crossCut+cutMargin {
			s.layout.Parts = append(s.layout.Parts, placed(it, st.x, st.used))
			st.used += it.rip.crossCut + cutMargin
			return true
		}
	}

	if s.usedWidth+it.rip.ripWidth <= model.SheetWidthIn+widthTol &&
		model.SheetLengthIn-cutMargin >= it.rip.crossCut+cutMargin {
		st := strip{x: s.usedWidth, width: it.rip.ripWidth, used: cutMargin}
		s.layout.Parts = append(s.layout.Parts, placed(it, st.x, st.used))
		st.used += it.rip.crossCut + cutMargin
		s.strips = append(s.strips, st)
		s.usedWidth += it.rip.ripWidth + cutMargin
		return true
	}
	return false
}

func placed(it packItem, x, y float64) model.PlacedPart {
	return model.PlacedPart{
		PartID:  it.part.ID,
		X:       x,
		Y:       y,
		Width:   it.rip.ripWidth,
		Length:  it.rip.crossCut,
		Rotated: it.rip.rotated,
		Part:    it.part,
	}
}

// finish closes out the sheet: rip cut lines per strip and utilization.
func (s *sheetState) finish() model.SheetLayout {
	for i, st := range s.strips {
		s.layout.RipCuts = append(s.layout.RipCuts, model.RipCut{
			Position: st.x + st.width,
			Width:    st.width,
			Label:    fmt.Sprintf("Rip %d: %s strip", i+1, model.FormatInches(st.width)),
		})
	}
	s.layout.Utilization = s.layout.UsedArea() / model.SheetAreaIn2 * 100.0
	return s.layout
}

// GenerateSheetLayouts packs the cut list onto standard stock. Parts are
// grouped by thickness (different thickness means different raw sheets)
// and each group is packed with a greedy strip heuristic: sort descending
// by rip width then cross-cut, append to a width-matched open strip when
// possible, otherwise open a new strip, otherwise start a new sheet.
// Deterministic: identical inputs produce identical placement.
func GenerateSheetLayouts(parts []model.Part) model.PackResult {
	var result model.PackResult

	groups := make(map[float64][]packItem)
	for _, p := range parts {
		if reason := oversizeReason(p); reason != "" {
			result.OversizedParts = append(result.OversizedParts, model.OversizedPart{Part: p, Reason: reason})
			continue
		}
		key := math.Round(p.ThicknessIn*10000) / 10000
		for i := 0; i < p.Qty; i++ {
			groups[key] = append(groups[key], packItem{part: p, rip: ripOrientation(p.LengthIn, p.WidthIn)})
		}
	}

	thicknesses := make([]float64, 0, len(groups))
	for t := range groups {
		thicknesses = append(thicknesses, t)
	}
	sort.Float64s(thicknesses)

	for _, t := range thicknesses {
		items := groups[t]
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].rip.ripWidth != items[j].rip.ripWidth {
				return items[i].rip.ripWidth > items[j].rip.ripWidth
			}
			if items[i].rip.crossCut != items[j].rip.crossCut {
				return items[i].rip.crossCut > items[j].rip.crossCut
			}
			return items[i].part.ID < items[j].part.ID
		})

		sheetNum := 1
		sheet := newSheetState(t, sheetNum)

		idx := 0
		for idx < len(items) {
			if sheet.place(items[idx]) {
				idx++
				continue
			}
			if len(sheet.layout.Parts) == 0 {
				// Fits raw stock but not within cut margins; report rather
				// than loop on an empty sheet.
				result.OversizedParts = append(result.OversizedParts, model.OversizedPart{
					Part:   items[idx].part,
					Reason: "does not fit on a fresh sheet within cut margins",
				})
				idx++
				continue
			}
			// Sheet is full: close it and carry the rest to a new one.
			result.Sheets = append(result.Sheets, sheet.finish())
			sheetNum++
			sheet = newSheetState(t, sheetNum)
		}
		if len(sheet.layout.Parts) > 0 {
			result.Sheets = append(result.Sheets, sheet.finish())
		}
	}

	return result
}
