package handlers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askarov/sudocube-server/internal/carver"
	"github.com/askarov/sudocube-server/internal/cube"
	"github.com/askarov/sudocube-server/internal/game"
)

func timeNowFixed() time.Time {
	return time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
}

func emptyCell(t *testing.T, state *game.GameState) cube.Coord {
	t.Helper()
	for i := range state.Cube.Cells {
		if !state.Cube.Cells[i].Given {
			return cube.FromIndex(i)
		}
	}
	t.Fatal("no empty cell")
	return cube.Coord{}
}

func TestRunWsCommand(t *testing.T) {
	state := game.NewGame(carver.Beginner, 31)
	c := emptyCell(t, state)
	v := state.Cube.At(c).Solution

	cmd := fmt.Sprintf

	require.NoError(t, runWsCommand(state, cmd("p %d %d %d %d", c.X, c.Y, c.Z, v)))
	assert.Equal(t, v, state.Cube.Value(c))

	require.NoError(t, runWsCommand(state, "u"))
	assert.Zero(t, state.Cube.Value(c))

	require.NoError(t, runWsCommand(state, "r"))
	assert.Equal(t, v, state.Cube.Value(c))

	require.NoError(t, runWsCommand(state, cmd("c %d %d %d", c.X, c.Y, c.Z)))
	assert.Zero(t, state.Cube.Value(c))

	require.NoError(t, runWsCommand(state, cmd("n %d %d %d 3", c.X, c.Y, c.Z)))
	assert.True(t, state.Cube.At(c).Notes.Has(3))

	require.NoError(t, runWsCommand(state, "g"))

	require.NoError(t, runWsCommand(state, "f"))
	assert.True(t, state.Dead)
}

func TestRunWsCommandErrors(t *testing.T) {
	state := game.NewGame(carver.Beginner, 32)

	assert.Error(t, runWsCommand(state, "x"))
	assert.Error(t, runWsCommand(state, "p 1 2"))
	assert.Error(t, runWsCommand(state, "p 1 2 3 10"))
	assert.Error(t, runWsCommand(state, "p a 2 3 4"))
	assert.Error(t, runWsCommand(state, "c 9 0 0"))
	assert.Error(t, runWsCommand(state, "u 1"))
}
