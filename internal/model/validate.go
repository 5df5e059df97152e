package model

import "fmt"

// Grid bounds enforced by the mutation layer. The compute pipeline itself
// treats grid size as a precondition and does not re-check it.
const (
	MinGridDim = 1
	MaxGridDim = 10
)

// ValidateMerge checks a single merge rectangle against the grid.
func ValidateMerge(rows, cols int, m Merge) error {
	if m.R0 > m.R1 || m.C0 > m.C1 {
		return fmt.Errorf("merge {%d,%d}-{%d,%d}: corners are inverted", m.R0, m.C0, m.R1, m.C1)
	}
	if m.R0 < 0 || m.C0 < 0 || m.R1 >= rows || m.C1 >= cols {
		return fmt.Errorf("merge {%d,%d}-{%d,%d}: outside the %dx%d grid", m.R0, m.C0, m.R1, m.C1, rows, cols)
	}
	return nil
}

// ValidateMerges checks every merge for bounds and pairwise overlap.
// Overlapping merges are rejected outright rather than silently dropped,
// so a malformed design surfaces as an error instead of an inconsistent
// layout.
func ValidateMerges(rows, cols int, merges []Merge) error {
	for i, m := range merges {
		if err := ValidateMerge(rows, cols, m); err != nil {
			return fmt.Errorf("merge %d: %w", i, err)
		}
		for j := 0; j < i; j++ {
			if m.Overlaps(merges[j]) {
				return fmt.Errorf("merge %d overlaps merge %d", i, j)
			}
		}
	}
	return nil
}

// Validate checks a full parameter set before it enters the compute
// pipeline.
func (p DesignParams) Validate() error {
	if p.Rows < MinGridDim || p.Rows > MaxGridDim {
		return fmt.Errorf("rows %d outside %d..%d", p.Rows, MinGridDim, MaxGridDim)
	}
	if p.Cols < MinGridDim || p.Cols > MaxGridDim {
		return fmt.Errorf("cols %d outside %d..%d", p.Cols, MinGridDim, MaxGridDim)
	}
	if p.InteriorClearance <= 0 {
		return fmt.Errorf("interior clearance must be positive, got %g", p.InteriorClearance)
	}
	if p.Depth <= 0 {
		return fmt.Errorf("depth must be positive, got %g", p.Depth)
	}
	if p.Materials.Frame.Inches() <= 0 {
		return fmt.Errorf("frame material thickness must be positive")
	}
	if p.HasBack && p.Materials.Back.Inches() <= 0 {
		return fmt.Errorf("back material thickness must be positive")
	}
	if p.HasDoors && p.Materials.Door.Inches() <= 0 {
		return fmt.Errorf("door material thickness must be positive")
	}
	return ValidateMerges(p.Rows, p.Cols, p.Merges)
}
