package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ShelfCut/internal/model"
)

func newTestState(t *testing.T) State {
	t.Helper()
	s, err := New(model.DefaultParams())
	require.NoError(t, err)
	return s
}

func TestNewComputesDerived(t *testing.T) {
	s := newTestState(t)

	assert.NotEmpty(t, s.Derived.Parts)
	assert.NotEmpty(t, s.Derived.Layout.PresentVerticals)
	assert.NotEmpty(t, s.Derived.Packing.Sheets)
	assert.Greater(t, s.Derived.Estimate.BoardFeet, 0.0)
}

func TestNewRejectsInvalidParams(t *testing.T) {
	p := model.DefaultParams()
	p.Rows = 0
	_, err := New(p)
	assert.Error(t, err)
}

func TestReduceRecomputesDerived(t *testing.T) {
	s := newTestState(t)
	before := s.Derived.Dimensions.ExtWidthIn

	s2, err := Reduce(s, SetClearance{Value: 20})
	require.NoError(t, err)

	assert.Equal(t, 20.0, s2.Params.InteriorClearance)
	assert.Greater(t, s2.Derived.Dimensions.ExtWidthIn, before)
	// Prior snapshot is untouched.
	assert.Equal(t, before, s.Derived.Dimensions.ExtWidthIn)
	assert.Equal(t, 13.25, s.Params.InteriorClearance)
}

func TestReduceErrorKeepsState(t *testing.T) {
	s := newTestState(t)

	s2, err := Reduce(s, SetClearance{Value: -1})
	assert.Error(t, err)
	assert.Equal(t, s, s2, "failed reduction must return the prior state")
}

func TestSetGridClampsAndDropsMerges(t *testing.T) {
	s := newTestState(t)

	s2, err := Reduce(s, AddMerge{Merge: model.Merge{R0: 0, C0: 1, R1: 1, C1: 2}})
	require.NoError(t, err)
	require.Len(t, s2.Params.Merges, 1)

	// Shrinking the grid below the merge drops it.
	s3, err := Reduce(s2, SetGrid{Rows: 2, Cols: 2})
	require.NoError(t, err)
	assert.Empty(t, s3.Params.Merges)

	// Out-of-range dimensions clamp instead of erroring.
	s4, err := Reduce(s3, SetGrid{Rows: 0, Cols: 99})
	require.NoError(t, err)
	assert.Equal(t, model.MinGridDim, s4.Params.Rows)
	assert.Equal(t, model.MaxGridDim, s4.Params.Cols)
}

func TestAddMergeRejectsOverlap(t *testing.T) {
	s := newTestState(t)

	s2, err := Reduce(s, AddMerge{Merge: model.Merge{R0: 0, C0: 0, R1: 1, C1: 1}})
	require.NoError(t, err)

	s3, err := Reduce(s2, AddMerge{Merge: model.Merge{R0: 1, C0: 1, R1: 1, C1: 2}})
	assert.Error(t, err)
	assert.Equal(t, s2, s3)
	assert.Len(t, s3.Params.Merges, 1)
}

func TestAddMergeRejectsOutOfBounds(t *testing.T) {
	s := newTestState(t)
	_, err := Reduce(s, AddMerge{Merge: model.Merge{R0: 0, C0: 0, R1: 5, C1: 0}})
	assert.Error(t, err)
}

func TestAddMergeCopiesSlice(t *testing.T) {
	s := newTestState(t)
	s2, err := Reduce(s, AddMerge{Merge: model.Merge{R0: 0, C0: 0, R1: 0, C1: 1}})
	require.NoError(t, err)
	s3, err := Reduce(s2, AddMerge{Merge: model.Merge{R0: 1, C0: 0, R1: 1, C1: 1}})
	require.NoError(t, err)

	// Each snapshot keeps its own merge list.
	assert.Len(t, s2.Params.Merges, 1)
	assert.Len(t, s3.Params.Merges, 2)
}

func TestRemoveAndClearMerges(t *testing.T) {
	s := newTestState(t)
	s2, err := Reduce(s, AddMerge{Merge: model.Merge{R0: 0, C0: 0, R1: 0, C1: 1}})
	require.NoError(t, err)

	_, err = Reduce(s2, RemoveMerge{Index: 3})
	assert.Error(t, err)

	s3, err := Reduce(s2, RemoveMerge{Index: 0})
	require.NoError(t, err)
	assert.Empty(t, s3.Params.Merges)

	s4, err := Reduce(s2, ClearMerges{})
	require.NoError(t, err)
	assert.Empty(t, s4.Params.Merges)
}

func TestSetDoorsValidatesMode(t *testing.T) {
	s := newTestState(t)

	s2, err := Reduce(s, SetDoors{Has: true, Mode: model.DoorOverlay})
	require.NoError(t, err)
	assert.True(t, s2.Params.HasDoors)
	assert.Equal(t, model.DoorOverlay, s2.Params.DoorMode)

	doorCount := 0
	for _, p := range s2.Derived.Parts {
		if p.Role == model.RoleDoor {
			doorCount += p.Qty
		}
	}
	assert.Equal(t, 6, doorCount, "2x3 unmerged grid gets one door per module")

	_, err = Reduce(s2, SetDoors{Has: true, Mode: "barn"})
	assert.Error(t, err)
}

func TestSetUnitSystem(t *testing.T) {
	s := newTestState(t)

	s2, err := Reduce(s, SetUnitSystem{Unit: model.UnitMetric})
	require.NoError(t, err)
	assert.Equal(t, model.UnitMetric, s2.Params.UnitSystem)

	// Values reinterpret rather than convert: 13.25 now means millimeters.
	assert.Less(t, s2.Derived.Dimensions.ExtWidthIn, s.Derived.Dimensions.ExtWidthIn)

	_, err = Reduce(s, SetUnitSystem{Unit: "furlongs"})
	assert.Error(t, err)
}

func TestSetMaterialsRequiresFrameStock(t *testing.T) {
	s := newTestState(t)

	_, err := Reduce(s, SetMaterials{Materials: model.Materials{}})
	assert.Error(t, err)

	m := model.Materials{
		Frame: model.MaterialThickness{MetricMM: 18},
		Back:  model.MaterialThickness{MetricMM: 6},
	}
	s2, err := Reduce(s, SetMaterials{Materials: m})
	require.NoError(t, err)
	assert.Equal(t, m, s2.Params.Materials)
}

func TestSetBackTogglesBackPart(t *testing.T) {
	s := newTestState(t)
	require.True(t, s.Params.HasBack)

	s2, err := Reduce(s, SetBack{Has: false})
	require.NoError(t, err)
	for _, p := range s2.Derived.Parts {
		assert.NotEqual(t, model.RoleBack, p.Role)
	}
}
