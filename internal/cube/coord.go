package cube

import "fmt"

const (
	// Size is the edge length of the cube and of every slice.
	Size = 9
	// BlockSize is the edge length of a block within a slice.
	BlockSize = 3
	// CellCount is the total number of cells in the cube.
	CellCount = Size * Size * Size
)

// Coord addresses a single cell. Each component is in [0,8].
type Coord struct {
	X, Y, Z int
}

// Axis names a direction along which 2D slices are taken.
// An XY slice is fixed at a z-depth, an XZ slice at a y-depth,
// a YZ slice at an x-depth.
type Axis int

const (
	AxisXY Axis = iota
	AxisXZ
	AxisYZ
	AxisCount = 3
)

func (a Axis) String() string {
	switch a {
	case AxisXY:
		return "xy"
	case AxisXZ:
		return "xz"
	case AxisYZ:
		return "yz"
	}
	return "?"
}

// Axes lists all three slice systems, in a fixed order.
var Axes = [AxisCount]Axis{AxisXY, AxisXZ, AxisYZ}

// InBounds reports whether all three components are in [0,8].
func (c Coord) InBounds() bool {
	return 0 <= c.X && c.X < Size &&
		0 <= c.Y && c.Y < Size &&
		0 <= c.Z && c.Z < Size
}

// Index returns the cell's position in a flat 729-element array.
func (c Coord) Index() int {
	return c.Z*Size*Size + c.Y*Size + c.X
}

// FromIndex is the inverse of [Coord.Index].
func FromIndex(i int) Coord {
	return Coord{
		X: i % Size,
		Y: (i / Size) % Size,
		Z: i / (Size * Size),
	}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// ToSlicePosition projects c onto the slice system of the given axis,
// returning the in-slice row and column plus which of the 9 slices
// contains the cell.
func (c Coord) ToSlicePosition(axis Axis) (row, col, slice int) {
	mustBeInBounds(c)
	switch axis {
	case AxisXY:
		return c.Y, c.X, c.Z
	case AxisXZ:
		return c.Z, c.X, c.Y
	case AxisYZ:
		return c.Z, c.Y, c.X
	}
	panic(AssertionError{fmt.Sprintf("invalid axis %d", axis)})
}

// FromSlicePosition maps an in-slice position back to the cell it
// names. Exact inverse of [Coord.ToSlicePosition] for every axis.
func FromSlicePosition(axis Axis, slice, row, col int) Coord {
	var c Coord
	switch axis {
	case AxisXY:
		c = Coord{X: col, Y: row, Z: slice}
	case AxisXZ:
		c = Coord{X: col, Y: slice, Z: row}
	case AxisYZ:
		c = Coord{X: slice, Y: col, Z: row}
	default:
		panic(AssertionError{fmt.Sprintf("invalid axis %d", axis)})
	}
	mustBeInBounds(c)
	return c
}

// BlockIndex identifies which of the 9 3x3 blocks of a slice
// contains (row, col).
func BlockIndex(row, col int) int {
	return (row/BlockSize)*BlockSize + col/BlockSize
}

// BlockOrigin returns the top-left corner of the block containing
// (row, col).
func BlockOrigin(row, col int) (row0, col0 int) {
	return BlockSize * (row / BlockSize), BlockSize * (col / BlockSize)
}

func mustBeInBounds(c Coord) {
	if !c.InBounds() {
		panic(AssertionError{fmt.Sprintf("coordinate %s out of bounds", c)})
	}
}
