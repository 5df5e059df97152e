package layout

import (
	"fmt"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// GenerateParts compiles the design into its canonical cut list. Pure and
// deterministic: identical params reproduce the identical id set. Ids are
// composed from role, a positional index and a location suffix, and stay
// stable across regenerations so downstream consumers (3D placement, door
// hardware, exports) can cross-reference parts.
func GenerateParts(p model.DesignParams) []model.Part {
	clearance := p.ClearanceIn()
	frame := p.Materials.Frame.Inches()
	depth := p.DepthIn()

	dims := CalculateDimensions(p)
	info := Calculate(p.Rows, p.Cols, p.Merges, clearance, frame)

	parts := []model.Part{
		{ID: "top", Role: model.RoleTop, Qty: 1, LengthIn: dims.ExtWidthIn, WidthIn: depth, ThicknessIn: frame},
		{ID: "bottom", Role: model.RoleBottom, Qty: 1, LengthIn: dims.ExtWidthIn, WidthIn: depth, ThicknessIn: frame},
		{ID: "side-left", Role: model.RoleSide, Qty: 1, LengthIn: dims.SideHeightIn, WidthIn: depth, ThicknessIn: frame},
		{ID: "side-right", Role: model.RoleSide, Qty: 1, LengthIn: dims.SideHeightIn, WidthIn: depth, ThicknessIn: frame},
	}

	for i, seg := range info.VerticalSegments {
		part := model.Part{
			ID:          fmt.Sprintf("divider-%d-c%d-r%d", i+1, seg.Column, seg.RowStart),
			Role:        model.RoleVerticalDivider,
			Qty:         1,
			LengthIn:    seg.LengthIn,
			WidthIn:     depth,
			ThicknessIn: frame,
			Bay: &model.BayRef{
				Row:      seg.RowStart,
				ColStart: seg.Column,
				ColEnd:   seg.Column,
				RowEnd:   seg.RowEnd,
			},
		}
		if seg.RowEnd-seg.RowStart < p.Rows {
			part.Notes = "partial height; broken around merged opening"
		}
		parts = append(parts, part)
	}

	for i, seg := range info.HorizontalSegments {
		parts = append(parts, model.Part{
			ID:          fmt.Sprintf("shelf-%d-r%d-c%d", i+1, seg.Row, seg.ColStart),
			Role:        model.RoleBayShelf,
			Qty:         1,
			LengthIn:    BayWidth(seg.ColEnd-seg.ColStart, clearance, frame),
			WidthIn:     depth,
			ThicknessIn: frame,
			Bay: &model.BayRef{
				Row:      seg.Row,
				ColStart: seg.ColStart,
				ColEnd:   seg.ColEnd,
			},
		})
	}

	if p.HasBack {
		parts = append(parts, model.Part{
			ID:          "back",
			Role:        model.RoleBack,
			Qty:         1,
			LengthIn:    dims.ExtHeightIn,
			WidthIn:     dims.ExtWidthIn,
			ThicknessIn: p.Materials.Back.Inches(),
			Notes:       "full overlay back panel",
		})
	}

	if p.HasDoors {
		parts = append(parts, generateDoors(p, clearance, frame)...)
	}

	return parts
}
