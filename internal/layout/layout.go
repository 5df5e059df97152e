package layout

import "github.com/piwi3910/ShelfCut/internal/model"

// HorizontalSegment is one physical shelf span at a row boundary, running
// between two present verticals. Columns are boundary indices: the shelf
// spans module columns ColStart..ColEnd-1.
type HorizontalSegment struct {
	Row      int `json:"row"`
	ColStart int `json:"col_start"`
	ColEnd   int `json:"col_end"`
}

// VerticalSegment is one physical divider piece at a column boundary.
// RowEnd is exclusive: the piece spans module rows RowStart..RowEnd-1.
// A divider crossed by merged openings breaks into several segments.
type VerticalSegment struct {
	Column   int     `json:"column"`
	RowStart int     `json:"row_start"`
	RowEnd   int     `json:"row_end"`
	LengthIn float64 `json:"length_in"`
}

// Info is the resolved structural layout: which column boundaries carry a
// divider, which shelf spans exist, and how partial dividers segment.
type Info struct {
	PresentVerticals   []int               `json:"present_verticals"`
	HorizontalSegments []HorizontalSegment `json:"horizontal_segments"`
	VerticalSegments   []VerticalSegment   `json:"vertical_segments"`
}

// Calculate resolves the merge set into the physical member layout.
// Deterministic for a given non-overlapping merge set; behavior under
// overlapping merges is undefined (rejected upstream by validation).
func Calculate(rows, cols int, merges []model.Merge, clearanceIn, frameIn float64) Info {
	mergeAt := func(r, c int) int {
		for i, m := range merges {
			if m.Contains(r, c) {
				return i
			}
		}
		return -1
	}

	// A boundary needs a divider the moment any single row is not merged
	// across it.
	present := make(map[int]bool, cols+1)
	present[0] = true
	present[cols] = true
	for c := 1; c < cols; c++ {
		omit := true
		for r := 0; r < rows; r++ {
			left := mergeAt(r, c-1)
			if left < 0 || left != mergeAt(r, c) {
				omit = false
				break
			}
		}
		if !omit {
			present[c] = true
		}
	}

	verticals := make([]int, 0, len(present))
	for c := 0; c <= cols; c++ {
		if present[c] {
			verticals = append(verticals, c)
		}
	}

	info := Info{PresentVerticals: verticals}

	// Shelf spans: group columns needing support at each row boundary into
	// contiguous runs, snap each run outward to the nearest present
	// verticals, then merge overlapping spans.
	needsSupport := func(r, c int) bool {
		above := mergeAt(r-1, c)
		return above < 0 || above != mergeAt(r, c)
	}
	for r := 1; r < rows; r++ {
		var runs []HorizontalSegment
		c := 0
		for c < cols {
			if !needsSupport(r, c) {
				c++
				continue
			}
			start := c
			c++
			// A run continues across omitted boundaries only; a present
			// vertical physically interrupts the shelf.
			for c < cols && !present[c] && needsSupport(r, c) {
				c++
			}
			runs = append(runs, HorizontalSegment{
				Row:      r,
				ColStart: snapLeft(present, start),
				ColEnd:   snapRight(present, cols, c),
			})
		}
		info.HorizontalSegments = append(info.HorizontalSegments, mergeSpans(runs)...)
	}

	// Divider segments: at each present interior boundary, rows covered by
	// a crossing merge are open; the divider exists as one piece per
	// maximal run of remaining rows.
	for _, c := range verticals {
		if c == 0 || c == cols {
			continue
		}
		mergedOut := make([]bool, rows)
		for _, m := range merges {
			if m.C0 < c && c <= m.C1 {
				for r := m.R0; r <= m.R1; r++ {
					mergedOut[r] = true
				}
			}
		}
		r := 0
		for r < rows {
			if mergedOut[r] {
				r++
				continue
			}
			start := r
			for r < rows && !mergedOut[r] {
				r++
			}
			info.VerticalSegments = append(info.VerticalSegments, VerticalSegment{
				Column:   c,
				RowStart: start,
				RowEnd:   r,
				LengthIn: BayWidth(r-start, clearanceIn, frameIn),
			})
		}
	}

	return info
}

// snapLeft returns the nearest present vertical at or left of boundary c.
func snapLeft(present map[int]bool, c int) int {
	for ; c > 0; c-- {
		if present[c] {
			return c
		}
	}
	return 0
}

// snapRight returns the nearest present vertical at or right of boundary c.
func snapRight(present map[int]bool, cols, c int) int {
	for ; c < cols; c++ {
		if present[c] {
			return c
		}
	}
	return cols
}

// mergeSpans collapses overlapping shelf spans at the same row boundary
// into their union. Snapping runs to present verticals can make spans from
// unrelated merges overlap; exact-tuple dedup is not enough for compound
// merge scenarios.
func mergeSpans(runs []HorizontalSegment) []HorizontalSegment {
	if len(runs) <= 1 {
		return runs
	}
	// Runs arrive in ascending ColStart order by construction.
	out := runs[:1]
	for _, s := range runs[1:] {
		last := &out[len(out)-1]
		if s.ColStart < last.ColEnd {
			if s.ColEnd > last.ColEnd {
				last.ColEnd = s.ColEnd
			}
			continue
		}
		out = append(out, s)
	}
	return out
}
