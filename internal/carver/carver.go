package carver

import (
	"math/rand/v2"

	"github.com/askarov/sudocube-server/internal/cube"
)

// Carve turns a solved cube into a playable puzzle by emptying cells
// until the target given-count is reached, while keeping the
// given-count of every one of the 27 slices strictly above the
// configured per-slice floor.
//
// The strategy is a greedy single pass over a seeded shuffle of all
// 729 coordinates: a cell whose removal would breach the floor of any
// of its three slices is skipped and never revisited. Running out of
// coordinates before reaching the target is a valid terminal state;
// the puzzle just ends up denser than nominal. There is no
// backtracking and no uniqueness check.
//
// The input cube is not modified.
func Carve(solved *cube.Cube, d Difficulty, seed uint64) *cube.Cube {
	r := rand.New(rand.NewPCG(seed, seed^0x5bf03635))

	puzzle := cube.New()
	for i := range puzzle.Cells {
		v := solved.Cells[i].Value
		puzzle.Cells[i] = cube.Cell{
			Value:    v,
			Solution: v,
			Given:    true,
		}
	}

	// per-slice given counts, one bank per axis
	var givens [cube.AxisCount][cube.Size]int
	for a := range givens {
		for s := range givens[a] {
			givens[a][s] = cube.Size * cube.Size
		}
	}

	toRemove := cube.CellCount - d.TargetGivens
	if toRemove <= 0 {
		return puzzle
	}

	order := r.Perm(cube.CellCount)
	removed := 0
	for _, idx := range order {
		if removed >= toRemove {
			break
		}
		c := cube.FromIndex(idx)

		breach := false
		for _, axis := range cube.Axes {
			_, _, slice := c.ToSlicePosition(axis)
			if givens[axis][slice]-1 <= d.MinGivensPerSlice {
				breach = true
				break
			}
		}
		if breach {
			continue
		}

		cell := puzzle.At(c)
		cell.Value = 0
		cell.Given = false
		for _, axis := range cube.Axes {
			_, _, slice := c.ToSlicePosition(axis)
			givens[axis][slice]--
		}
		removed++
	}

	return puzzle
}
