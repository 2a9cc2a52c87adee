package game

import (
	"github.com/askarov/sudocube-server/internal/cube"
)

// ActionKind names the reversible player actions.
type ActionKind int

const (
	ActionSetValue ActionKind = iota
	ActionClearValue
	ActionToggleNote
)

// HistoryEntry records one reversible action with enough payload to
// invert it.
type HistoryEntry struct {
	Kind        ActionKind
	Coord       cube.Coord
	Before      uint8
	After       uint8
	NotesBefore cube.NoteSet
	NotesAfter  cube.NoteSet
}

// PlaceDigit attempts to put digit v (1..9) at c. Given cells and
// finished games reject the move silently. A placement contradicting
// the solution still lands (the error flag is advisory) but costs one
// from the error budget, and exhausting the budget loses the game.
// Placing the digit already present is a no-op.
func (g *GameState) PlaceDigit(c cube.Coord, v uint8) bool {
	if g.Over() || v < 1 || v > cube.Size {
		return false
	}
	cell := g.Cube.At(c)
	if cell.Given || cell.Value == v {
		return false
	}

	entry := HistoryEntry{
		Kind:        ActionSetValue,
		Coord:       c,
		Before:      cell.Value,
		After:       v,
		NotesBefore: cell.Notes,
	}

	g.applyValue(c, cell.Value, v)
	cell.Notes.Clear()
	entry.NotesAfter = cell.Notes

	g.push(entry)

	if v != cell.Solution {
		g.Errors++
		if g.Errors > g.Difficulty.MaxErrors {
			g.Dead = true
		}
	} else if g.Cube.Complete() {
		g.Won = true
	}
	return true
}

// ClearCell empties a non-given cell. Clearing an already empty cell
// is a no-op.
func (g *GameState) ClearCell(c cube.Coord) bool {
	if g.Over() {
		return false
	}
	cell := g.Cube.At(c)
	if cell.Given || cell.Value == 0 {
		return false
	}

	entry := HistoryEntry{
		Kind:        ActionClearValue,
		Coord:       c,
		Before:      cell.Value,
		After:       0,
		NotesBefore: cell.Notes,
		NotesAfter:  cell.Notes,
	}
	g.applyValue(c, cell.Value, 0)
	g.push(entry)
	return true
}

// ToggleNote flips pencil mark v on an empty, non-given cell.
func (g *GameState) ToggleNote(c cube.Coord, v uint8) bool {
	if g.Over() || v < 1 || v > cube.Size {
		return false
	}
	cell := g.Cube.At(c)
	if cell.Given || cell.Value != 0 {
		return false
	}

	entry := HistoryEntry{
		Kind:        ActionToggleNote,
		Coord:       c,
		NotesBefore: cell.Notes,
	}
	cell.Notes.Toggle(v)
	entry.NotesAfter = cell.Notes
	g.push(entry)
	return true
}

// push appends a forward action and clears the redo stack.
func (g *GameState) push(e HistoryEntry) {
	g.history = append(g.history, e)
	g.redo = g.redo[:0]
}

// Undo reverts the most recent action. Value changes replay through
// the same cube-and-index path as live play.
func (g *GameState) Undo() bool {
	if g.Over() || len(g.history) == 0 {
		return false
	}
	e := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.redo = append(g.redo, e)

	cell := g.Cube.At(e.Coord)
	switch e.Kind {
	case ActionSetValue, ActionClearValue:
		g.applyValue(e.Coord, e.After, e.Before)
	}
	cell.Notes = e.NotesBefore
	return true
}

// Redo re-applies the most recently undone action.
func (g *GameState) Redo() bool {
	if g.Over() || len(g.redo) == 0 {
		return false
	}
	e := g.redo[len(g.redo)-1]
	g.redo = g.redo[:len(g.redo)-1]
	g.history = append(g.history, e)

	cell := g.Cube.At(e.Coord)
	switch e.Kind {
	case ActionSetValue, ActionClearValue:
		g.applyValue(e.Coord, e.Before, e.After)
	}
	cell.Notes = e.NotesAfter
	return true
}

// HistoryLen reports how many actions can be undone.
func (g *GameState) HistoryLen() int {
	return len(g.history)
}

// RedoLen reports how many actions can be redone.
func (g *GameState) RedoLen() int {
	return len(g.redo)
}
