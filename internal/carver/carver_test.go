package carver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askarov/sudocube-server/internal/cube"
	"github.com/askarov/sudocube-server/internal/generator"
)

func TestCarveCellConstruction(t *testing.T) {
	solved := generator.Generate(1)
	puzzle := Carve(solved, Medium, 1)

	for i := range puzzle.Cells {
		cell := puzzle.Cells[i]
		require.Equal(t, solved.Cells[i].Value, cell.Solution)
		if cell.Given {
			require.Equal(t, cell.Solution, cell.Value)
		} else {
			require.Zero(t, cell.Value)
		}
		require.False(t, cell.Error())
		require.Zero(t, cell.Notes)
	}
}

func TestCarveFloorInvariant(t *testing.T) {
	t.Parallel()

	solved := generator.Generate(99)
	for _, d := range Tiers {
		t.Run(d.Name, func(t *testing.T) {
			puzzle := Carve(solved, d, 7)
			for _, axis := range cube.Axes {
				for slice := range cube.Size {
					assert.GreaterOrEqual(t,
						puzzle.SliceGivens(axis, slice), d.MinGivensPerSlice,
						"axis %s slice %d", axis, slice,
					)
				}
			}
		})
	}
}

func TestCarveReachesOrOvershootsTarget(t *testing.T) {
	solved := generator.Generate(5)
	for _, d := range Tiers {
		puzzle := Carve(solved, d, 5)
		givens := puzzle.CountGivens()
		assert.GreaterOrEqual(t, givens, d.TargetGivens, "tier %s", d.Name)
		assert.Equal(t, cube.CellCount-givens, puzzle.CountEmpty())
	}
}

func TestCarveDeterministic(t *testing.T) {
	solved := generator.Generate(11)
	a := Carve(solved, Hard, 3)
	b := Carve(solved, Hard, 3)
	assert.Equal(t, a.Cells, b.Cells)

	c := Carve(solved, Hard, 4)
	assert.NotEqual(t, a.Cells, c.Cells)
}

func TestCarveDoesNotModifyInput(t *testing.T) {
	solved := generator.Generate(2)
	before := solved.Cells
	Carve(solved, Expert, 1)
	assert.Equal(t, before, solved.Cells)
}

func TestCarveImpossibleTargetStopsCleanly(t *testing.T) {
	solved := generator.Generate(8)

	// a floor this high forbids almost every removal; the carver must
	// stop short of the target without looping or failing
	d := Difficulty{Name: "dense", TargetGivens: 100, MinGivensPerSlice: 80, MaxErrors: 1}
	puzzle := Carve(solved, d, 1)

	assert.Greater(t, puzzle.CountGivens(), d.TargetGivens)
	for _, axis := range cube.Axes {
		for slice := range cube.Size {
			assert.GreaterOrEqual(t, puzzle.SliceGivens(axis, slice), d.MinGivensPerSlice)
		}
	}
}

func TestByName(t *testing.T) {
	d, err := ByName("expert")
	require.NoError(t, err)
	assert.Equal(t, Expert, d)

	_, err = ByName("nightmare")
	assert.Error(t, err)
}
