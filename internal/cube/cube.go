package cube

import (
	"fmt"
	"strings"
)

// Cell is the atomic mutable unit of a cube. Value 0 means empty.
// Solution and Given are fixed at carve time and never change during
// play; a given cell always has Value == Solution.
type Cell struct {
	Value    uint8
	Solution uint8
	Given    bool
	Notes    NoteSet
}

// Error reports whether the cell holds a digit that contradicts its
// solution. Advisory only, never gates move legality.
func (c Cell) Error() bool {
	return c.Value != 0 && c.Value != c.Solution
}

// Cube owns all 729 cells of one puzzle instance, stored flat and
// addressed through [Coord.Index].
type Cube struct {
	Cells [CellCount]Cell
}

// New returns an all-empty cube.
func New() *Cube {
	return &Cube{}
}

// At returns a pointer to the cell at c.
func (cb *Cube) At(c Coord) *Cell {
	mustBeInBounds(c)
	return &cb.Cells[c.Index()]
}

// Value returns the current digit at c, 0 if empty.
func (cb *Cube) Value(c Coord) uint8 {
	return cb.At(c).Value
}

// SetValue overwrites the digit at c. It does not touch the
// constraint index; callers route changes through the index
// themselves.
func (cb *Cube) SetValue(c Coord, v uint8) {
	if v > Size {
		panic(AssertionError{fmt.Sprintf("invalid digit %d", v)})
	}
	cb.At(c).Value = v
}

// Clone returns an independent deep copy.
func (cb *Cube) Clone() *Cube {
	clone := *cb
	return &clone
}

// CountEmpty returns the number of cells currently holding no digit.
func (cb *Cube) CountEmpty() int {
	count := 0
	for i := range cb.Cells {
		if cb.Cells[i].Value == 0 {
			count++
		}
	}
	return count
}

// CountGivens returns the number of clue cells.
func (cb *Cube) CountGivens() int {
	count := 0
	for i := range cb.Cells {
		if cb.Cells[i].Given {
			count++
		}
	}
	return count
}

// Filled reports whether every cell holds some digit, regardless of
// correctness.
func (cb *Cube) Filled() bool {
	for i := range cb.Cells {
		if cb.Cells[i].Value == 0 {
			return false
		}
	}
	return true
}

// Complete reports whether every cell holds its solution digit.
func (cb *Cube) Complete() bool {
	for i := range cb.Cells {
		if cb.Cells[i].Value != cb.Cells[i].Solution {
			return false
		}
	}
	return true
}

// SliceGivens counts the clue cells of one slice.
func (cb *Cube) SliceGivens(axis Axis, slice int) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if cb.At(FromSlicePosition(axis, slice, row, col)).Given {
				count++
			}
		}
	}
	return count
}

// SliceString renders one slice as a 9x9 text grid, '.' for empty.
func (cb *Cube) SliceString(axis Axis, slice int) string {
	var b strings.Builder
	for row := range Size {
		for col := range Size {
			v := cb.Value(FromSlicePosition(axis, slice, row, col))
			if v == 0 {
				b.WriteString(". ")
			} else {
				fmt.Fprintf(&b, "%d ", v)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
