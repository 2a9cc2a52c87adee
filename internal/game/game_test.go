package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askarov/sudocube-server/internal/carver"
	"github.com/askarov/sudocube-server/internal/cube"
	"github.com/askarov/sudocube-server/internal/validator"
)

// findCell returns some empty, non-given cell of the puzzle.
func findCell(t *testing.T, g *GameState) cube.Coord {
	t.Helper()
	for i := range g.Cube.Cells {
		if !g.Cube.Cells[i].Given && g.Cube.Cells[i].Value == 0 {
			return cube.FromIndex(i)
		}
	}
	t.Fatal("puzzle has no empty cells")
	return cube.Coord{}
}

func TestNewGame(t *testing.T) {
	g := NewGame(carver.Medium, 1)

	assert.False(t, g.Over())
	assert.Zero(t, g.Errors)
	assert.GreaterOrEqual(t, g.Cube.CountGivens(), carver.Medium.TargetGivens)
	assert.Equal(t, g.Cube.CountEmpty(), cube.CellCount-g.Cube.CountGivens())
}

func TestNewDailyGame(t *testing.T) {
	day := time.Date(2025, time.June, 2, 10, 30, 0, 0, time.UTC)
	a := NewDailyGame(carver.Easy, day)
	b := NewDailyGame(carver.Easy, day.Add(5*time.Hour))
	assert.Equal(t, a.Cube.Cells, b.Cube.Cells)
}

func TestPlaceCorrectDigit(t *testing.T) {
	g := NewGame(carver.Beginner, 2)
	c := findCell(t, g)
	want := g.Cube.At(c).Solution

	require.True(t, g.PlaceDigit(c, want))
	assert.Equal(t, want, g.Cube.Value(c))
	assert.Zero(t, g.Errors)
	assert.False(t, g.Cube.At(c).Error())
	assert.Equal(t, 1, g.HistoryLen())
}

func TestPlaceWrongDigitCountsError(t *testing.T) {
	g := NewGame(carver.Beginner, 3)
	c := findCell(t, g)
	wrong := g.Cube.At(c).Solution%9 + 1

	require.True(t, g.PlaceDigit(c, wrong))
	assert.Equal(t, 1, g.Errors)
	assert.True(t, g.Cube.At(c).Error())
	assert.False(t, g.Dead)
}

func TestErrorBudgetLosesGame(t *testing.T) {
	g := NewGame(carver.Expert, 4) // MaxErrors: 1
	c := findCell(t, g)
	wrong := g.Cube.At(c).Solution%9 + 1

	require.True(t, g.PlaceDigit(c, wrong))
	require.True(t, g.ClearCell(c))
	require.True(t, g.PlaceDigit(c, wrong))

	assert.Equal(t, 2, g.Errors)
	assert.True(t, g.Dead)
	assert.False(t, g.PlaceDigit(c, g.Cube.At(c).Solution))
}

func TestGivenCellsAreUntouchable(t *testing.T) {
	g := NewGame(carver.Beginner, 5)
	var given cube.Coord
	for i := range g.Cube.Cells {
		if g.Cube.Cells[i].Given {
			given = cube.FromIndex(i)
			break
		}
	}
	was := g.Cube.Value(given)

	assert.False(t, g.PlaceDigit(given, was%9+1))
	assert.False(t, g.ClearCell(given))
	assert.False(t, g.ToggleNote(given, 1))
	assert.Equal(t, was, g.Cube.Value(given))
	assert.Zero(t, g.HistoryLen())
}

func TestSolvingWholePuzzleWins(t *testing.T) {
	g := NewGame(carver.Beginner, 6)
	for i := range g.Cube.Cells {
		if g.Cube.Cells[i].Given {
			continue
		}
		c := cube.FromIndex(i)
		require.True(t, g.PlaceDigit(c, g.Cube.Cells[i].Solution))
	}
	assert.True(t, g.Won)
	assert.True(t, g.Cube.Complete())
	assert.Zero(t, g.Errors)
}

func TestUndoRedo(t *testing.T) {
	g := NewGame(carver.Beginner, 7)
	c := findCell(t, g)
	v := g.Cube.At(c).Solution

	require.True(t, g.PlaceDigit(c, v))

	require.True(t, g.Undo())
	assert.Zero(t, g.Cube.Value(c))
	assert.Equal(t, 1, g.RedoLen())

	require.True(t, g.Redo())
	assert.Equal(t, v, g.Cube.Value(c))
	assert.Zero(t, g.RedoLen())

	// index stays in lockstep through undo/redo
	rebuilt := validator.New()
	rebuilt.InitFromCube(g.Cube)
	assert.Equal(t, rebuilt, g.Index())
}

func TestUndoRestoresNotes(t *testing.T) {
	g := NewGame(carver.Beginner, 8)
	c := findCell(t, g)

	require.True(t, g.ToggleNote(c, 3))
	require.True(t, g.ToggleNote(c, 5))
	require.True(t, g.PlaceDigit(c, g.Cube.At(c).Solution))
	assert.Zero(t, g.Cube.At(c).Notes)

	require.True(t, g.Undo())
	assert.True(t, g.Cube.At(c).Notes.Has(3))
	assert.True(t, g.Cube.At(c).Notes.Has(5))
}

func TestNewForwardActionClearsRedo(t *testing.T) {
	g := NewGame(carver.Beginner, 9)
	c := findCell(t, g)

	require.True(t, g.PlaceDigit(c, g.Cube.At(c).Solution))
	require.True(t, g.Undo())
	require.Equal(t, 1, g.RedoLen())

	require.True(t, g.ToggleNote(c, 1))
	assert.Zero(t, g.RedoLen())
	assert.False(t, g.Redo())
}

func TestCandidatesMatchValidator(t *testing.T) {
	g := NewGame(carver.Medium, 10)
	c := findCell(t, g)
	assert.Equal(t, g.Index().Candidates(c), g.Candidates(c))

	candidates, blocked := g.Exclusions(c)
	assert.Len(t, candidates, 9-len(blocked))
}

func TestConflictsAfterIllegalPlacement(t *testing.T) {
	g := NewGame(carver.Beginner, 11)

	// find an empty cell with at least one excluded digit, place it
	for i := range g.Cube.Cells {
		if g.Cube.Cells[i].Given {
			continue
		}
		c := cube.FromIndex(i)
		candidates := g.Candidates(c)
		if len(candidates) == 9 {
			continue
		}
		var excluded uint8
		for v := uint8(1); v <= 9; v++ {
			if !g.Index().IsValidPlacement(c, v) {
				excluded = v
				break
			}
		}
		require.True(t, g.PlaceDigit(c, excluded))
		assert.NotEmpty(t, g.Conflicts(c))
		return
	}
	t.Fatal("no constrained empty cell found")
}

func TestGobRoundTrip(t *testing.T) {
	g := NewGame(carver.Medium, 12)
	c := findCell(t, g)
	require.True(t, g.PlaceDigit(c, g.Cube.At(c).Solution))
	require.True(t, g.ToggleNote(findCell(t, g), 4))

	b, err := g.Bytes()
	require.NoError(t, err)

	decoded, err := DecodeGameState(b)
	require.NoError(t, err)

	assert.Equal(t, g.Cube.Cells, decoded.Cube.Cells)
	assert.Equal(t, g.Difficulty, decoded.Difficulty)
	assert.Equal(t, g.Errors, decoded.Errors)
	assert.Equal(t, g.HistoryLen(), decoded.HistoryLen())

	// the index is rebuilt, not deserialized, and must match
	assert.Equal(t, g.Index(), decoded.Index())

	// and the decoded game stays playable through the same path
	assert.True(t, decoded.Undo())
}

func TestForfeit(t *testing.T) {
	g := NewGame(carver.Easy, 13)
	g.Forfeit()
	assert.True(t, g.Dead)
	assert.False(t, g.PlaceDigit(findCell(t, g), 1))
}
