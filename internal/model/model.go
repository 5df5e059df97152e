package model

// UnitSystem selects how user-facing numeric inputs are interpreted.
type UnitSystem string

const (
	UnitImperial UnitSystem = "imperial" // inches
	UnitMetric   UnitSystem = "metric"   // millimeters
)

// MMPerInch is the conversion factor between the two unit systems.
const MMPerInch = 25.4

// MaterialThickness describes the stock used for one component class.
// Imperial stock carries a nominal label (the marketed size, e.g. 3/4")
// and the true manufactured thickness in inches. Metric stock carries a
// millimeter value instead; when MetricMM is set it takes precedence.
type MaterialThickness struct {
	Nominal  string  `json:"nominal,omitempty"`   // marketed label, e.g. `3/4"`
	ActualIn float64 `json:"actual_in,omitempty"` // true thickness in inches
	MetricMM float64 `json:"metric_mm,omitempty"` // thickness in mm for metric designs
}

// Inches returns the working thickness in inches, the canonical unit for
// all geometry.
func (m MaterialThickness) Inches() float64 {
	if m.MetricMM > 0 {
		return m.MetricMM / MMPerInch
	}
	return m.ActualIn
}

// Materials holds the per-component stock selection.
type Materials struct {
	Frame MaterialThickness `json:"frame"` // top, bottom, sides, dividers, shelves
	Back  MaterialThickness `json:"back"`
	Door  MaterialThickness `json:"door"`
}

// Merge is an inclusive, axis-aligned rectangle of grid cells that the user
// combined into a single opening. Coordinates are zero-based.
type Merge struct {
	R0 int `json:"r0"`
	C0 int `json:"c0"`
	R1 int `json:"r1"`
	C1 int `json:"c1"`
}

// Contains reports whether the cell (r, c) lies inside the merge.
func (m Merge) Contains(r, c int) bool {
	return r >= m.R0 && r <= m.R1 && c >= m.C0 && c <= m.C1
}

// RowSpan returns the number of module rows the merge covers.
func (m Merge) RowSpan() int { return m.R1 - m.R0 + 1 }

// ColSpan returns the number of module columns the merge covers.
func (m Merge) ColSpan() int { return m.C1 - m.C0 + 1 }

// Overlaps reports whether two merge rectangles share at least one cell.
func (m Merge) Overlaps(o Merge) bool {
	return m.R0 <= o.R1 && m.R1 >= o.R0 && m.C0 <= o.C1 && m.C1 >= o.C0
}

// DoorMode selects how doors relate to their opening.
type DoorMode string

const (
	DoorInset   DoorMode = "inset"   // door sits inside the opening, shrunk by the reveal
	DoorOverlay DoorMode = "overlay" // door covers the opening, grown by the overlay lip
)

// HardwarePosition places door hardware on a 3x3 grid minus the center.
type HardwarePosition string

const (
	HardwareTopLeft      HardwarePosition = "top-left"
	HardwareTopCenter    HardwarePosition = "top-center"
	HardwareTopRight     HardwarePosition = "top-right"
	HardwareMiddleLeft   HardwarePosition = "middle-left"
	HardwareMiddleRight  HardwarePosition = "middle-right"
	HardwareBottomLeft   HardwarePosition = "bottom-left"
	HardwareBottomCenter HardwarePosition = "bottom-center"
	HardwareBottomRight  HardwarePosition = "bottom-right"
)

// HardwareType selects the hardware style.
type HardwareType string

const (
	HardwareKnob HardwareType = "knob"
	HardwarePull HardwareType = "pull"
)

// DoorHardware describes knob/pull placement on each door.
type DoorHardware struct {
	Position HardwarePosition `json:"position"`
	Type     HardwareType     `json:"type"`
	InsetIn  float64          `json:"inset_in"` // distance from the door edge(s), inches
}

// DesignParams is the full parametric description of a shelving unit.
// It is the only persisted structure; everything else is derived from it.
// The compute pipeline never mutates it.
type DesignParams struct {
	Rows int `json:"rows"` // module rows, >= 1
	Cols int `json:"cols"` // module columns, >= 1

	InteriorClearance float64    `json:"interior_clearance"` // per-module interior span, in UnitSystem units
	Depth             float64    `json:"depth"`              // carcass depth excluding the back, in UnitSystem units
	UnitSystem        UnitSystem `json:"unit_system"`

	HasBack  bool     `json:"has_back"`
	HasDoors bool     `json:"has_doors"`
	DoorMode DoorMode `json:"door_mode"`
	Reveal   float64  `json:"reveal"`  // inset mode gap per edge, in UnitSystem units
	Overlay  float64  `json:"overlay"` // overlay mode lip per edge, in UnitSystem units

	DoorHardware DoorHardware `json:"door_hardware"`
	Materials    Materials    `json:"materials"`
	Merges       []Merge      `json:"merges"`
}

// toInches converts a user-facing value to inches per the unit system.
func (p DesignParams) toInches(v float64) float64 {
	if p.UnitSystem == UnitMetric {
		return v / MMPerInch
	}
	return v
}

// ClearanceIn returns the per-module interior clearance in inches.
func (p DesignParams) ClearanceIn() float64 { return p.toInches(p.InteriorClearance) }

// DepthIn returns the carcass depth in inches.
func (p DesignParams) DepthIn() float64 { return p.toInches(p.Depth) }

// RevealIn returns the inset-door reveal in inches.
func (p DesignParams) RevealIn() float64 { return p.toInches(p.Reveal) }

// OverlayIn returns the overlay-door lip in inches.
func (p DesignParams) OverlayIn() float64 { return p.toInches(p.Overlay) }

// MergeAt returns the index of the merge containing cell (r, c), or -1.
// Merges are pairwise non-overlapping so at most one can match.
func (p DesignParams) MergeAt(r, c int) int {
	for i, m := range p.Merges {
		if m.Contains(r, c) {
			return i
		}
	}
	return -1
}

// DefaultParams returns a sensible starting design: a 2x3 imperial unit in
// 3/4" plywood with a 1/4" back and no doors.
func DefaultParams() DesignParams {
	return DesignParams{
		Rows:              2,
		Cols:              3,
		InteriorClearance: 13.25,
		Depth:             15.375,
		UnitSystem:        UnitImperial,
		HasBack:           true,
		HasDoors:          false,
		DoorMode:          DoorInset,
		Reveal:            0.125,
		Overlay:           0.5,
		DoorHardware: DoorHardware{
			Position: HardwareMiddleLeft,
			Type:     HardwarePull,
			InsetIn:  1.5,
		},
		Materials: Materials{
			Frame: MaterialThickness{Nominal: `3/4"`, ActualIn: 23.0 / 32.0},
			Back:  MaterialThickness{Nominal: `1/4"`, ActualIn: 7.0 / 32.0},
			Door:  MaterialThickness{Nominal: `3/4"`, ActualIn: 23.0 / 32.0},
		},
	}
}

// PartRole identifies the structural function of a cut part.
type PartRole string

const (
	RoleTop             PartRole = "top"
	RoleBottom          PartRole = "bottom"
	RoleSide            PartRole = "side"
	RoleVerticalDivider PartRole = "vertical_divider"
	RoleBayShelf        PartRole = "bay_shelf"
	RoleBack            PartRole = "back"
	RoleDoor            PartRole = "door"
)

// IsFrame reports whether the role is solid frame stock (board-feet math)
// as opposed to panel stock (square-feet math).
func (r PartRole) IsFrame() bool {
	switch r {
	case RoleTop, RoleBottom, RoleSide, RoleVerticalDivider, RoleBayShelf:
		return true
	}
	return false
}

// BayRef locates a part within the module grid. RowEnd is only meaningful
// for vertical divider segments, where it marks the exclusive end row.
type BayRef struct {
	Row      int `json:"row"`
	ColStart int `json:"col_start"`
	ColEnd   int `json:"col_end"`
	RowEnd   int `json:"row_end,omitempty"`
}

// Part is one physical piece to cut. Parts are immutable value objects,
// regenerated wholesale on every parameter change; ids are stable across
// regenerations of identical params.
type Part struct {
	ID          string   `json:"id"`
	Role        PartRole `json:"role"`
	Qty         int      `json:"qty"`
	LengthIn    float64  `json:"length_in"`
	WidthIn     float64  `json:"width_in"`
	ThicknessIn float64  `json:"thickness_in"`
	Notes       string   `json:"notes,omitempty"`
	Bay         *BayRef  `json:"bay,omitempty"`
}

// Severity grades advisory warnings. Warnings never block computation.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Warning is advisory metadata attached to a computation result.
// MergeIndex is the index of the merge that triggered it, or -1.
type Warning struct {
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	MergeIndex int      `json:"merge_index"`
}
