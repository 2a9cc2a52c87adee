package validator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/askarov/sudocube-server/internal/cube"
)

var Log = logrus.New()

// UnitType names the granularity at which the 1..9 uniqueness
// constraint applies within a slice.
type UnitType int

const (
	UnitRow UnitType = iota
	UnitCol
	UnitBlock
	unitTypeCount = 3
)

func (u UnitType) String() string {
	switch u {
	case UnitRow:
		return "row"
	case UnitCol:
		return "column"
	case UnitBlock:
		return "block"
	}
	return "?"
}

// bankSize is 9 slices x 3 unit types x 9 units per axis.
const bankSize = cube.Size * unitTypeCount * cube.Size

// Index is an incrementally maintained cache of which digits occupy
// which constraint units, one bitmask per (slice, unit type, unit)
// triple per axis. Bit v stands for digit v; bit 0 is unused. It
// answers "can digit v occupy coordinate c" in O(1) without ever
// rescanning the cube.
//
// The masks are derived state. Every value change must route through
// [Index.UpdateCell] exactly once, in order; a cube mutated behind
// the index's back silently desyncs it.
type Index struct {
	banks [cube.AxisCount][bankSize]uint16
}

// New returns an index over an all-empty cube.
func New() *Index {
	return &Index{}
}

// maskSlot returns the bank offset of one constraint unit.
func maskSlot(slice int, unit UnitType, unitIndex int) int {
	return slice*(unitTypeCount*cube.Size) + int(unit)*cube.Size + unitIndex
}

// cellUnits returns the three mask slots (row, column, block) that
// the coordinate occupies within one axis slice system.
func cellUnits(c cube.Coord, axis cube.Axis) (rowSlot, colSlot, blockSlot int) {
	row, col, slice := c.ToSlicePosition(axis)
	rowSlot = maskSlot(slice, UnitRow, row)
	colSlot = maskSlot(slice, UnitCol, col)
	blockSlot = maskSlot(slice, UnitBlock, cube.BlockIndex(row, col))
	return
}

// InitFromCube resets the index to match the cube's current values.
func (ix *Index) InitFromCube(cb *cube.Cube) {
	for a := range ix.banks {
		for i := range ix.banks[a] {
			ix.banks[a][i] = 0
		}
	}
	for i := range cb.Cells {
		if v := cb.Cells[i].Value; v != 0 {
			ix.Add(cube.FromIndex(i), v)
		}
	}
}

// Add records digit v at coordinate c: 9 mask writes, one per
// (axis, unit type) pair. Digit 0 never participates.
func (ix *Index) Add(c cube.Coord, v uint8) {
	if v == 0 {
		return
	}
	mustBeDigit(v)
	bit := uint16(1) << v
	for _, axis := range cube.Axes {
		rowSlot, colSlot, blockSlot := cellUnits(c, axis)
		ix.banks[axis][rowSlot] |= bit
		ix.banks[axis][colSlot] |= bit
		ix.banks[axis][blockSlot] |= bit
	}
}

// Remove erases digit v at coordinate c from all 9 masks.
func (ix *Index) Remove(c cube.Coord, v uint8) {
	if v == 0 {
		return
	}
	mustBeDigit(v)
	bit := uint16(1) << v
	for _, axis := range cube.Axes {
		rowSlot, colSlot, blockSlot := cellUnits(c, axis)
		ix.banks[axis][rowSlot] &^= bit
		ix.banks[axis][colSlot] &^= bit
		ix.banks[axis][blockSlot] &^= bit
	}
}

// UpdateCell is the single entry point for every value change.
// Direct play, undo and redo all go through here; there is no
// separate replay path.
func (ix *Index) UpdateCell(c cube.Coord, oldValue, newValue uint8) {
	if oldValue == newValue {
		return
	}
	ix.Remove(c, oldValue)
	ix.Add(c, newValue)
}

// IsValidPlacement reports whether digit v can occupy c without
// duplicating a digit in any of the 9 constraint units containing
// the cell. Clearing (v == 0) is always valid.
func (ix *Index) IsValidPlacement(c cube.Coord, v uint8) bool {
	if v == 0 {
		return true
	}
	mustBeDigit(v)
	var combined uint16
	for _, axis := range cube.Axes {
		rowSlot, colSlot, blockSlot := cellUnits(c, axis)
		combined |= ix.banks[axis][rowSlot] |
			ix.banks[axis][colSlot] |
			ix.banks[axis][blockSlot]
	}
	return combined&(uint16(1)<<v) == 0
}

// Candidates returns the digits that can legally occupy c given the
// current state. Meaningful for empty cells; for an occupied cell the
// cell's own digit is excluded along with everything else it
// conflicts with.
func (ix *Index) Candidates(c cube.Coord) []uint8 {
	out := make([]uint8, 0, cube.Size)
	for v := uint8(1); v <= cube.Size; v++ {
		if ix.IsValidPlacement(c, v) {
			out = append(out, v)
		}
	}
	return out
}

func mustBeDigit(v uint8) {
	if v < 1 || v > cube.Size {
		panic(AssertionError{fmt.Sprintf("invalid digit %d", v)})
	}
}

func init() {
	// sanity-check the slot layout once at startup
	if maskSlot(cube.Size-1, UnitBlock, cube.Size-1) != bankSize-1 {
		Log.Fatal(fmt.Sprintf("mask bank layout broken: %d != %d",
			maskSlot(cube.Size-1, UnitBlock, cube.Size-1), bankSize-1))
	}
}
