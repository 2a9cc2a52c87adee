package validator

import (
	"github.com/sirupsen/logrus"

	"github.com/askarov/sudocube-server/internal/cube"
)

// Blocker identifies one occupied cell responsible for excluding a
// digit, tagged with the slice system and unit type through which it
// blocks.
type Blocker struct {
	Coord cube.Coord
	Axis  cube.Axis
	Unit  UnitType
}

// Exclusion explains why one digit cannot occupy a cell.
type Exclusion struct {
	Digit    uint8
	Blockers []Blocker
}

// Exclusions is the extended diagnostic form of [Index.Candidates]:
// alongside the legal digits it reports, for every blocked digit, the
// occupying cells responsible. A single physical cell blocking
// through several (axis, unit type) pairings is reported once per
// pairing, not repeated within one.
func (ix *Index) Exclusions(c cube.Coord, cb *cube.Cube) (candidates []uint8, blocked []Exclusion) {
	candidates = make([]uint8, 0, cube.Size)
	for v := uint8(1); v <= cube.Size; v++ {
		if ix.IsValidPlacement(c, v) {
			candidates = append(candidates, v)
			continue
		}
		blocked = append(blocked, Exclusion{
			Digit:    v,
			Blockers: ix.findBlockers(c, v, cb),
		})
	}
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"coord":      c.String(),
			"candidates": candidates,
			"blocked":    len(blocked),
		}).Debug("exclusions")
	}
	return candidates, blocked
}

// findBlockers scans the 9 possible blocking units for digit v. Each
// unit is at most 9 cells, so the whole scan is bounded.
func (ix *Index) findBlockers(c cube.Coord, v uint8, cb *cube.Cube) []Blocker {
	bit := uint16(1) << v
	blockers := make([]Blocker, 0, 3)
	for _, axis := range cube.Axes {
		rowSlot, colSlot, blockSlot := cellUnits(c, axis)
		seen := map[dedupKey]bool{}

		if ix.banks[axis][rowSlot]&bit != 0 {
			for _, bc := range unitCoords(c, axis, UnitRow) {
				if cb.Value(bc) == v {
					blockers = appendBlocker(blockers, seen, Blocker{bc, axis, UnitRow})
				}
			}
		}
		if ix.banks[axis][colSlot]&bit != 0 {
			for _, bc := range unitCoords(c, axis, UnitCol) {
				if cb.Value(bc) == v {
					blockers = appendBlocker(blockers, seen, Blocker{bc, axis, UnitCol})
				}
			}
		}
		if ix.banks[axis][blockSlot]&bit != 0 {
			for _, bc := range unitCoords(c, axis, UnitBlock) {
				if cb.Value(bc) == v {
					blockers = appendBlocker(blockers, seen, Blocker{bc, axis, UnitBlock})
				}
			}
		}
	}
	return blockers
}

type dedupKey struct {
	coord cube.Coord
	unit  UnitType
}

func appendBlocker(bs []Blocker, seen map[dedupKey]bool, b Blocker) []Blocker {
	key := dedupKey{b.Coord, b.Unit}
	if seen[key] {
		return bs
	}
	seen[key] = true
	return append(bs, b)
}

// Conflicts enumerates every other cell currently holding v that
// shares a row, column or block with c in any of the three slice
// systems. Unlike [Index.Exclusions] this is about a digit already
// placed (possibly illegally) at c, for conflict highlighting.
func (ix *Index) Conflicts(c cube.Coord, v uint8, cb *cube.Cube) []cube.Coord {
	if v == 0 {
		return nil
	}
	mustBeDigit(v)
	var out []cube.Coord
	seen := map[cube.Coord]bool{c: true}
	for _, axis := range cube.Axes {
		for _, unit := range []UnitType{UnitRow, UnitCol, UnitBlock} {
			for _, bc := range unitCoords(c, axis, unit) {
				if !seen[bc] && cb.Value(bc) == v {
					seen[bc] = true
					out = append(out, bc)
				}
			}
		}
	}
	return out
}

// unitCoords lists the 9 cells of the unit of the given type that
// contains c within one axis slice system, c included.
func unitCoords(c cube.Coord, axis cube.Axis, unit UnitType) []cube.Coord {
	row, col, slice := c.ToSlicePosition(axis)
	coords := make([]cube.Coord, 0, cube.Size)
	switch unit {
	case UnitRow:
		for cc := range cube.Size {
			coords = append(coords, cube.FromSlicePosition(axis, slice, row, cc))
		}
	case UnitCol:
		for rr := range cube.Size {
			coords = append(coords, cube.FromSlicePosition(axis, slice, rr, col))
		}
	case UnitBlock:
		row0, col0 := cube.BlockOrigin(row, col)
		for dr := range cube.BlockSize {
			for dc := range cube.BlockSize {
				coords = append(coords, cube.FromSlicePosition(axis, slice, row0+dr, col0+dc))
			}
		}
	}
	return coords
}
