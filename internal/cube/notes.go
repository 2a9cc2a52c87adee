package cube

import (
	"math/bits"
	"strconv"
	"strings"
)

// NoteSet holds pencil marks for a cell as a 9-bit set, bit v-1
// standing for digit v.
type NoteSet uint16

const allNotes NoteSet = 1<<Size - 1

func (n NoteSet) Has(v uint8) bool {
	return v >= 1 && v <= Size && n&(1<<(v-1)) != 0
}

func (n *NoteSet) Add(v uint8) {
	if v >= 1 && v <= Size {
		*n |= 1 << (v - 1)
	}
}

func (n *NoteSet) Remove(v uint8) {
	if v >= 1 && v <= Size {
		*n &^= 1 << (v - 1)
	}
}

func (n *NoteSet) Toggle(v uint8) {
	if v >= 1 && v <= Size {
		*n ^= 1 << (v - 1)
	}
}

func (n *NoteSet) Clear() {
	*n = 0
}

func (n NoteSet) Count() int {
	return bits.OnesCount16(uint16(n & allNotes))
}

// Digits lists the marked digits in ascending order.
func (n NoteSet) Digits() []uint8 {
	ds := make([]uint8, 0, Size)
	for v := uint8(1); v <= Size; v++ {
		if n.Has(v) {
			ds = append(ds, v)
		}
	}
	return ds
}

func (n NoteSet) String() string {
	var b strings.Builder
	for v := uint8(1); v <= Size; v++ {
		if n.Has(v) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(int(v)))
		}
	}
	return b.String()
}
