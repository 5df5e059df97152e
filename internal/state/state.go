// Package state holds the application state discipline: an immutable
// parameter value, a pure reducer for mutations, and a single compute
// pipeline that rebuilds every derived structure wholesale after each
// reduction. Nothing is cached or patched incrementally.
package state

import (
	"fmt"

	"github.com/piwi3910/ShelfCut/internal/engine"
	"github.com/piwi3910/ShelfCut/internal/layout"
	"github.com/piwi3910/ShelfCut/internal/model"
)

// Derived bundles everything computed from one parameter set. Each value
// is owned by the computation that produced it and handed read-only to
// consumers.
type Derived struct {
	Dimensions layout.Dimensions      `json:"dimensions"`
	Layout     layout.Info            `json:"layout"`
	Parts      []model.Part           `json:"parts"`
	Estimate   model.MaterialEstimate `json:"estimate"`
	Warnings   []model.Warning        `json:"warnings"`
	Packing    model.PackResult       `json:"packing"`
}

// Compute runs the full pure pipeline. Safe to call concurrently for
// independent inputs; params are never mutated.
func Compute(p model.DesignParams) Derived {
	parts := layout.GenerateParts(p)
	return Derived{
		Dimensions: layout.CalculateDimensions(p),
		Layout:     layout.Calculate(p.Rows, p.Cols, p.Merges, p.ClearanceIn(), p.Materials.Frame.Inches()),
		Parts:      parts,
		Estimate:   model.CalculateMaterialEstimate(parts),
		Warnings:   model.GenerateWarnings(p),
		Packing:    engine.GenerateSheetLayouts(parts),
	}
}

// State is an immutable snapshot: the current params and their derived
// data. Reduce returns a fresh State; callers discard stale ones.
type State struct {
	Params  model.DesignParams
	Derived Derived
}

// New validates the params and computes the initial state.
func New(p model.DesignParams) (State, error) {
	if err := p.Validate(); err != nil {
		return State{}, err
	}
	return State{Params: p, Derived: Compute(p)}, nil
}

// Action is one state mutation. Apply returns the updated params or an
// error; it must not modify the input.
type Action interface {
	Apply(p model.DesignParams) (model.DesignParams, error)
}

// Reduce applies an action and recomputes all derived data. On error the
// previous state is returned unchanged.
func Reduce(s State, a Action) (State, error) {
	p, err := a.Apply(s.Params)
	if err != nil {
		return s, err
	}
	return State{Params: p, Derived: Compute(p)}, nil
}

// SetGrid resizes the module grid, clamped to the supported range. Merges
// that no longer fit the new grid are removed.
type SetGrid struct {
	Rows, Cols int
}

func (a SetGrid) Apply(p model.DesignParams) (model.DesignParams, error) {
	p.Rows = clamp(a.Rows, model.MinGridDim, model.MaxGridDim)
	p.Cols = clamp(a.Cols, model.MinGridDim, model.MaxGridDim)

	var kept []model.Merge
	for _, m := range p.Merges {
		if m.R1 < p.Rows && m.C1 < p.Cols {
			kept = append(kept, m)
		}
	}
	p.Merges = kept
	return p, nil
}

// SetClearance updates the per-module interior clearance.
type SetClearance struct{ Value float64 }

func (a SetClearance) Apply(p model.DesignParams) (model.DesignParams, error) {
	if a.Value <= 0 {
		return p, fmt.Errorf("clearance must be positive, got %g", a.Value)
	}
	p.InteriorClearance = a.Value
	return p, nil
}

// SetDepth updates the carcass depth.
type SetDepth struct{ Value float64 }

func (a SetDepth) Apply(p model.DesignParams) (model.DesignParams, error) {
	if a.Value <= 0 {
		return p, fmt.Errorf("depth must be positive, got %g", a.Value)
	}
	p.Depth = a.Value
	return p, nil
}

// SetUnitSystem switches the input unit system. Numeric inputs are
// reinterpreted, not converted; the UI owns any conversion prompts.
type SetUnitSystem struct{ Unit model.UnitSystem }

func (a SetUnitSystem) Apply(p model.DesignParams) (model.DesignParams, error) {
	if a.Unit != model.UnitImperial && a.Unit != model.UnitMetric {
		return p, fmt.Errorf("unknown unit system %q", a.Unit)
	}
	p.UnitSystem = a.Unit
	return p, nil
}

// SetBack toggles the back panel.
type SetBack struct{ Has bool }

func (a SetBack) Apply(p model.DesignParams) (model.DesignParams, error) {
	p.HasBack = a.Has
	return p, nil
}

// SetDoors toggles doors and optionally switches the door mode.
type SetDoors struct {
	Has  bool
	Mode model.DoorMode
}

func (a SetDoors) Apply(p model.DesignParams) (model.DesignParams, error) {
	p.HasDoors = a.Has
	if a.Mode != "" {
		if a.Mode != model.DoorInset && a.Mode != model.DoorOverlay {
			return p, fmt.Errorf("unknown door mode %q", a.Mode)
		}
		p.DoorMode = a.Mode
	}
	return p, nil
}

// SetMaterials replaces the material selection.
type SetMaterials struct{ Materials model.Materials }

func (a SetMaterials) Apply(p model.DesignParams) (model.DesignParams, error) {
	if a.Materials.Frame.Inches() <= 0 {
		return p, fmt.Errorf("frame material thickness must be positive")
	}
	p.Materials = a.Materials
	return p, nil
}

// AddMerge appends a merge rectangle. Out-of-bounds or overlapping
// rectangles are rejected with an error; existing merges are never
// silently dropped.
type AddMerge struct{ Merge model.Merge }

func (a AddMerge) Apply(p model.DesignParams) (model.DesignParams, error) {
	if err := model.ValidateMerge(p.Rows, p.Cols, a.Merge); err != nil {
		return p, err
	}
	for i, m := range p.Merges {
		if m.Overlaps(a.Merge) {
			return p, fmt.Errorf("new merge overlaps existing merge %d", i)
		}
	}
	merges := make([]model.Merge, len(p.Merges), len(p.Merges)+1)
	copy(merges, p.Merges)
	p.Merges = append(merges, a.Merge)
	return p, nil
}

// RemoveMerge deletes the merge at the given index.
type RemoveMerge struct{ Index int }

func (a RemoveMerge) Apply(p model.DesignParams) (model.DesignParams, error) {
	if a.Index < 0 || a.Index >= len(p.Merges) {
		return p, fmt.Errorf("merge index %d out of range", a.Index)
	}
	merges := make([]model.Merge, 0, len(p.Merges)-1)
	merges = append(merges, p.Merges[:a.Index]...)
	merges = append(merges, p.Merges[a.Index+1:]...)
	p.Merges = merges
	return p, nil
}

// ClearMerges removes every merge.
type ClearMerges struct{}

func (a ClearMerges) Apply(p model.DesignParams) (model.DesignParams, error) {
	p.Merges = nil
	return p, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
