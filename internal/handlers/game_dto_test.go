package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askarov/sudocube-server/internal/carver"
	"github.com/askarov/sudocube-server/internal/cube"
	"github.com/askarov/sudocube-server/internal/game"
)

func TestParseNewGameDTO(t *testing.T) {
	dto, err := ParseNewGameDTO(url.Values{
		"difficulty": {"hard"},
		"seed":       {"42"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hard", dto.Difficulty)
	require.NotNil(t, dto.Seed)
	assert.Equal(t, uint64(42), *dto.Seed)
	assert.False(t, dto.Daily)

	dto, err = ParseNewGameDTO(url.Values{
		"difficulty": {"easy"},
		"daily":      {"true"},
		"extra":      {"ignored"},
	})
	require.NoError(t, err)
	assert.Nil(t, dto.Seed)
	assert.True(t, dto.Daily)

	_, err = ParseNewGameDTO(url.Values{})
	assert.Error(t, err)
}

func TestParseCoord(t *testing.T) {
	c, err := ParseCoord(url.Values{
		"x": {"1"}, "y": {"2"}, "z": {"8"},
	})
	require.NoError(t, err)
	assert.Equal(t, cube.Coord{X: 1, Y: 2, Z: 8}, c)

	_, err = ParseCoord(url.Values{"x": {"1"}, "y": {"2"}})
	assert.Error(t, err)

	_, err = ParseCoord(url.Values{
		"x": {"9"}, "y": {"0"}, "z": {"0"},
	})
	assert.Error(t, err)
}

func TestParseMoveDTO(t *testing.T) {
	move, err := ParseMoveDTO(url.Values{
		"action": {"place"}, "value": {"5"},
		"x": {"0"}, "y": {"0"}, "z": {"0"},
	})
	require.NoError(t, err)
	assert.Equal(t, "place", move.Action)
	assert.Equal(t, uint8(5), move.Value)

	_, err = ParseMoveDTO(url.Values{"action": {"place"}})
	assert.Error(t, err, "place without a value")

	_, err = ParseMoveDTO(url.Values{"action": {"note"}, "value": {"10"}})
	assert.Error(t, err)

	_, err = ParseMoveDTO(url.Values{"action": {"chord"}})
	assert.Error(t, err)

	move, err = ParseMoveDTO(url.Values{"action": {"clear"}})
	require.NoError(t, err)
	assert.Equal(t, "clear", move.Action)
}

func TestGameSessionDTO(t *testing.T) {
	state := game.NewGame(carver.Beginner, 21)
	dto := NewGameSessionDTO(17, false, timeNowFixed(), nil, state)

	assert.Equal(t, "17", dto.GameSessionId)
	assert.Equal(t, "beginner", dto.Difficulty)
	assert.Len(t, dto.Cells, cube.CellCount)
	assert.Equal(t, state.Cube.CountEmpty(), dto.EmptyCells)
	assert.Equal(t, carver.Beginner.MaxErrors, dto.MaxErrors)
	assert.False(t, dto.CanUndo)
	assert.Nil(t, dto.EndedAt)

	givens := 0
	for _, cell := range dto.Cells {
		if cell.Given {
			givens++
		}
	}
	assert.Equal(t, state.Cube.CountGivens(), givens)
}
