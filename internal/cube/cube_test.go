package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteSet(t *testing.T) {
	var n NoteSet

	n.Add(1)
	n.Add(9)
	n.Add(5)
	assert.True(t, n.Has(1))
	assert.True(t, n.Has(5))
	assert.True(t, n.Has(9))
	assert.False(t, n.Has(2))
	assert.Equal(t, 3, n.Count())
	assert.Equal(t, []uint8{1, 5, 9}, n.Digits())
	assert.Equal(t, "1 5 9", n.String())

	n.Remove(5)
	assert.False(t, n.Has(5))

	n.Toggle(5)
	assert.True(t, n.Has(5))
	n.Toggle(5)
	assert.False(t, n.Has(5))

	n.Add(0)
	n.Add(10)
	assert.Equal(t, 2, n.Count())

	n.Clear()
	assert.Zero(t, n)
}

func TestCellError(t *testing.T) {
	c := Cell{Value: 0, Solution: 4}
	assert.False(t, c.Error())
	c.Value = 4
	assert.False(t, c.Error())
	c.Value = 7
	assert.True(t, c.Error())
}

func TestCubeCounts(t *testing.T) {
	cb := New()
	assert.Equal(t, CellCount, cb.CountEmpty())
	assert.False(t, cb.Filled())

	for i := range cb.Cells {
		cb.Cells[i].Solution = uint8(i%9) + 1
	}
	assert.False(t, cb.Complete())

	for i := range cb.Cells {
		cb.Cells[i].Value = cb.Cells[i].Solution
	}
	assert.True(t, cb.Filled())
	assert.True(t, cb.Complete())
	assert.Zero(t, cb.CountEmpty())
}

func TestCubeSetValue(t *testing.T) {
	cb := New()
	c := Coord{X: 1, Y: 2, Z: 3}
	cb.SetValue(c, 7)
	assert.Equal(t, uint8(7), cb.Value(c))
	cb.SetValue(c, 0)
	assert.Zero(t, cb.Value(c))

	assert.Panics(t, func() { cb.SetValue(c, 10) })
	assert.Panics(t, func() { cb.Value(Coord{X: -1}) })
}

func TestCubeClone(t *testing.T) {
	cb := New()
	cb.SetValue(Coord{X: 4, Y: 4, Z: 4}, 5)

	clone := cb.Clone()
	clone.SetValue(Coord{X: 4, Y: 4, Z: 4}, 6)

	assert.Equal(t, uint8(5), cb.Value(Coord{X: 4, Y: 4, Z: 4}))
	assert.Equal(t, uint8(6), clone.Value(Coord{X: 4, Y: 4, Z: 4}))
}
