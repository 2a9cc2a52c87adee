package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askarov/sudocube-server/internal/cube"
)

func place(cb *cube.Cube, ix *Index, c cube.Coord, v uint8) {
	ix.UpdateCell(c, cb.Value(c), v)
	cb.SetValue(c, v)
}

func TestExclusionsReportBlockingCells(t *testing.T) {
	cb := cube.New()
	ix := New()

	target := cube.Coord{X: 0, Y: 0, Z: 0}
	rowMate := cube.Coord{X: 7, Y: 0, Z: 0}
	place(cb, ix, rowMate, 4)

	candidates, blocked := ix.Exclusions(target, cb)
	assert.Equal(t, []uint8{1, 2, 3, 5, 6, 7, 8, 9}, candidates)
	require.Len(t, blocked, 1)
	assert.Equal(t, uint8(4), blocked[0].Digit)

	// the x-line (0..8, 0, 0) is a row of the XY slice at z=0 and a
	// row of the XZ slice at y=0, so the one physical cell shows up
	// once per (axis, unit type) pairing
	require.NotEmpty(t, blocked[0].Blockers)
	for _, b := range blocked[0].Blockers {
		assert.Equal(t, rowMate, b.Coord)
	}
	pairings := map[[2]int]int{}
	for _, b := range blocked[0].Blockers {
		pairings[[2]int{int(b.Axis), int(b.Unit)}]++
	}
	for pairing, n := range pairings {
		assert.Equal(t, 1, n, "pairing %v repeated", pairing)
	}
}

func TestExclusionsBlockViaBlockUnit(t *testing.T) {
	cb := cube.New()
	ix := New()

	target := cube.Coord{X: 0, Y: 0, Z: 0}
	blockMate := cube.Coord{X: 1, Y: 2, Z: 0} // same 3x3 block of the z=0 slice
	place(cb, ix, blockMate, 9)

	candidates, blocked := ix.Exclusions(target, cb)
	assert.NotContains(t, candidates, uint8(9))
	require.Len(t, blocked, 1)

	found := false
	for _, b := range blocked[0].Blockers {
		if b.Axis == cube.AxisXY && b.Unit == UnitBlock {
			found = true
			assert.Equal(t, blockMate, b.Coord)
		}
	}
	assert.True(t, found, "expected an XY-block blocker")
}

func TestConflicts(t *testing.T) {
	cb := cube.New()
	ix := New()

	c := cube.Coord{X: 4, Y: 4, Z: 4}
	xMate := cube.Coord{X: 0, Y: 4, Z: 4}
	zMate := cube.Coord{X: 4, Y: 4, Z: 8}
	other := cube.Coord{X: 0, Y: 0, Z: 0}

	place(cb, ix, xMate, 5)
	place(cb, ix, zMate, 5)
	place(cb, ix, other, 5)
	place(cb, ix, c, 5) // illegal on purpose: highlighting active conflicts

	conflicts := ix.Conflicts(c, 5, cb)
	assert.ElementsMatch(t, []cube.Coord{xMate, zMate}, conflicts)

	assert.Empty(t, ix.Conflicts(c, 0, cb))
}

func TestConflictsIgnoresOtherDigits(t *testing.T) {
	cb := cube.New()
	ix := New()

	c := cube.Coord{X: 1, Y: 1, Z: 1}
	place(cb, ix, cube.Coord{X: 8, Y: 1, Z: 1}, 3)
	place(cb, ix, c, 2)

	assert.Empty(t, ix.Conflicts(c, 2, cb))
}
