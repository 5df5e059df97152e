package model

// Standard stock sheet dimensions in inches (4x8 sheet goods).
const (
	SheetWidthIn  = 48.0
	SheetLengthIn = 96.0
)

// SheetAreaIn2 is the area of one standard sheet in square inches.
const SheetAreaIn2 = SheetWidthIn * SheetLengthIn

// PlacedPart is one part positioned on a stock sheet. X runs across the
// sheet width (rip axis), Y along the sheet length. Width and Length are
// the placed footprint after any rotation.
type PlacedPart struct {
	PartID  string  `json:"part_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Length  float64 `json:"length"`
	Rotated bool    `json:"rotated"`
	Part    Part    `json:"part"` // the original part, for downstream labeling
}

// RipCut is one full-length cut splitting the sheet into parallel strips.
type RipCut struct {
	Position float64 `json:"position"` // distance of the cut line from the sheet edge, inches
	Width    float64 `json:"width"`    // strip width produced by this cut, inches
	Label    string  `json:"label"`
}

// SheetLayout is the cutting plan for one stock sheet of one thickness.
type SheetLayout struct {
	SheetID     string       `json:"sheet_id"`
	ThicknessIn float64      `json:"thickness_in"`
	Parts       []PlacedPart `json:"parts"`
	RipCuts     []RipCut     `json:"rip_cuts"`
	Utilization float64      `json:"utilization"` // placed area / sheet area, percent
}

// UsedArea returns the total area covered by placed parts, square inches.
func (s SheetLayout) UsedArea() float64 {
	var total float64
	for _, p := range s.Parts {
		total += p.Width * p.Length
	}
	return total
}

// OversizedPart records a part that cannot be cut from standard stock,
// with a human-readable reason. These are reported, never dropped.
type OversizedPart struct {
	Part   Part   `json:"part"`
	Reason string `json:"reason"`
}

// PackResult is the full output of the sheet packing optimizer.
type PackResult struct {
	Sheets         []SheetLayout   `json:"sheets"`
	OversizedParts []OversizedPart `json:"oversized_parts"`
}

// TotalUtilization returns overall material usage across all sheets, percent.
func (r PackResult) TotalUtilization() float64 {
	if len(r.Sheets) == 0 {
		return 0
	}
	var used float64
	for _, s := range r.Sheets {
		used += s.UsedArea()
	}
	return used / (float64(len(r.Sheets)) * SheetAreaIn2) * 100.0
}
