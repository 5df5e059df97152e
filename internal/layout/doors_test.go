package layout

import (
	"math"
	"testing"

	"github.com/piwi3910/ShelfCut/internal/model"
)

func TestOpeningsPartitionUnmergedGrid(t *testing.T) {
	p := testParams()
	p.Rows, p.Cols = 2, 3

	openings := Openings(p)
	if len(openings) != 6 {
		t.Fatalf("expected 6 singleton openings, got %d", len(openings))
	}
	for _, o := range openings {
		if o.R0 != o.R1 || o.C0 != o.C1 {
			t.Errorf("unmerged opening should be a single cell, got %+v", o)
		}
		if o.MergeIndex != -1 {
			t.Errorf("singleton opening carries merge index %d", o.MergeIndex)
		}
	}
	// Row-major order of the top-left cell.
	if openings[0].R0 != 0 || openings[0].C0 != 0 || openings[3].R0 != 1 || openings[3].C0 != 0 {
		t.Errorf("openings not in row-major order: %+v", openings)
	}
}

func TestOpeningsPartitionWithMerge(t *testing.T) {
	p := testParams()
	p.Rows, p.Cols = 3, 3
	p.Merges = []model.Merge{{R0: 0, C0: 0, R1: 1, C1: 1}}

	openings := Openings(p)
	// One merged opening (4 cells) plus 5 singletons.
	if len(openings) != 6 {
		t.Fatalf("expected 6 openings, got %d: %+v", len(openings), openings)
	}

	cells := 0
	seen := map[[2]int]bool{}
	for _, o := range openings {
		for r := o.R0; r <= o.R1; r++ {
			for c := o.C0; c <= o.C1; c++ {
				if seen[[2]int{r, c}] {
					t.Fatalf("cell (%d,%d) covered by two openings", r, c)
				}
				seen[[2]int{r, c}] = true
				cells++
			}
		}
	}
	if cells != 9 {
		t.Errorf("openings cover %d cells, want 9", cells)
	}

	if openings[0].MergeIndex != 0 || openings[0].R1 != 1 || openings[0].C1 != 1 {
		t.Errorf("first opening should be the merge, got %+v", openings[0])
	}
}

func TestHardwarePoint(t *testing.T) {
	const w, h, inset = 12.0, 24.0, 1.5

	cases := []struct {
		pos  model.HardwarePosition
		x, y float64
	}{
		{model.HardwareTopLeft, inset, inset},
		{model.HardwareTopCenter, w / 2, inset},
		{model.HardwareTopRight, w - inset, inset},
		{model.HardwareMiddleLeft, inset, h / 2},
		{model.HardwareMiddleRight, w - inset, h / 2},
		{model.HardwareBottomLeft, inset, h - inset},
		{model.HardwareBottomCenter, w / 2, h - inset},
		{model.HardwareBottomRight, w - inset, h - inset},
	}
	for _, tc := range cases {
		x, y := HardwarePoint(w, h, model.DoorHardware{Position: tc.pos, Type: model.HardwarePull, InsetIn: inset})
		if math.Abs(x-tc.x) > 1e-9 || math.Abs(y-tc.y) > 1e-9 {
			t.Errorf("%s: got (%.2f, %.2f), want (%.2f, %.2f)", tc.pos, x, y, tc.x, tc.y)
		}
	}
}
