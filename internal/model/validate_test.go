package model

import "testing"

func TestValidateMergeBounds(t *testing.T) {
	if err := ValidateMerge(3, 3, Merge{R0: 0, C0: 0, R1: 2, C1: 2}); err != nil {
		t.Errorf("full-grid merge should be valid: %v", err)
	}
	if err := ValidateMerge(3, 3, Merge{R0: 0, C0: 0, R1: 3, C1: 0}); err == nil {
		t.Error("merge past the last row should be rejected")
	}
	if err := ValidateMerge(3, 3, Merge{R0: 0, C0: -1, R1: 0, C1: 0}); err == nil {
		t.Error("negative column should be rejected")
	}
	if err := ValidateMerge(3, 3, Merge{R0: 1, C0: 1, R1: 0, C1: 1}); err == nil {
		t.Error("inverted corners should be rejected")
	}
}

func TestValidateMergesOverlap(t *testing.T) {
	disjoint := []Merge{
		{R0: 0, C0: 0, R1: 0, C1: 1},
		{R0: 1, C0: 0, R1: 1, C1: 1},
	}
	if err := ValidateMerges(2, 2, disjoint); err != nil {
		t.Errorf("disjoint merges should pass: %v", err)
	}

	overlapping := []Merge{
		{R0: 0, C0: 0, R1: 1, C1: 1},
		{R0: 1, C0: 1, R1: 1, C1: 1},
	}
	if err := ValidateMerges(2, 2, overlapping); err == nil {
		t.Error("overlapping merges should be rejected")
	}
}

func TestDesignParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	p := DefaultParams()
	p.Rows = 0
	if err := p.Validate(); err == nil {
		t.Error("rows below minimum should be rejected")
	}

	p = DefaultParams()
	p.Cols = MaxGridDim + 1
	if err := p.Validate(); err == nil {
		t.Error("cols above maximum should be rejected")
	}

	p = DefaultParams()
	p.InteriorClearance = 0
	if err := p.Validate(); err == nil {
		t.Error("zero clearance should be rejected")
	}

	p = DefaultParams()
	p.Depth = -1
	if err := p.Validate(); err == nil {
		t.Error("negative depth should be rejected")
	}

	p = DefaultParams()
	p.Materials.Frame = MaterialThickness{}
	if err := p.Validate(); err == nil {
		t.Error("zero frame thickness should be rejected")
	}

	p = DefaultParams()
	p.HasDoors = true
	p.Materials.Door = MaterialThickness{}
	if err := p.Validate(); err == nil {
		t.Error("doors without door stock should be rejected")
	}
}

func TestMergeHelpers(t *testing.T) {
	m := Merge{R0: 1, C0: 0, R1: 2, C1: 2}
	if m.RowSpan() != 2 || m.ColSpan() != 3 {
		t.Errorf("spans: got %dx%d, want 2x3", m.RowSpan(), m.ColSpan())
	}
	if !m.Contains(1, 0) || !m.Contains(2, 2) {
		t.Error("corners should be contained")
	}
	if m.Contains(0, 0) || m.Contains(1, 3) {
		t.Error("outside cells should not be contained")
	}
	if !m.Overlaps(Merge{R0: 2, C0: 2, R1: 3, C1: 3}) {
		t.Error("corner-sharing merges overlap")
	}
	if m.Overlaps(Merge{R0: 3, C0: 0, R1: 3, C1: 2}) {
		t.Error("adjacent merges do not overlap")
	}
}
