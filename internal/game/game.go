package game

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/askarov/sudocube-server/internal/carver"
	"github.com/askarov/sudocube-server/internal/cube"
	"github.com/askarov/sudocube-server/internal/generator"
	"github.com/askarov/sudocube-server/internal/validator"
)

// GameState is one playable puzzle plus its play bookkeeping. The
// constraint index is a derived cache and is deliberately not
// serialized; it is rebuilt from the cube after decoding.
type GameState struct {
	Cube       *cube.Cube
	Difficulty carver.Difficulty
	Seed       uint64
	Errors     int
	Dead, Won  bool

	history []HistoryEntry
	redo    []HistoryEntry

	index *validator.Index
}

// NewGame generates a solved cube from the seed, carves it down to
// the difficulty's target, and initializes the constraint index.
func NewGame(d carver.Difficulty, seed uint64) *GameState {
	solved := generator.Generate(seed)
	puzzle := carver.Carve(solved, d, seed)

	index := validator.New()
	index.InitFromCube(puzzle)

	return &GameState{
		Cube:       puzzle,
		Difficulty: d,
		Seed:       seed,
		index:      index,
	}
}

// NewDailyGame is NewGame with the daily seed for the given date.
func NewDailyGame(d carver.Difficulty, date time.Time) *GameState {
	return NewGame(d, generator.DailySeed(date))
}

// Index exposes the read-only query surface of the constraint index.
func (g *GameState) Index() *validator.Index {
	return g.index
}

// Candidates returns the digits that can legally occupy c.
func (g *GameState) Candidates(c cube.Coord) []uint8 {
	return g.index.Candidates(c)
}

// Exclusions explains, per blocked digit, which cells block it.
func (g *GameState) Exclusions(c cube.Coord) ([]uint8, []validator.Exclusion) {
	return g.index.Exclusions(c, g.Cube)
}

// Conflicts lists the cells actively conflicting with the digit at c.
func (g *GameState) Conflicts(c cube.Coord) []cube.Coord {
	return g.index.Conflicts(c, g.Cube.Value(c), g.Cube)
}

// Over reports whether play has ended either way.
func (g *GameState) Over() bool {
	return g.Dead || g.Won
}

// Forfeit ends the game as lost unless it is already over.
func (g *GameState) Forfeit() {
	if !g.Over() {
		g.Dead = true
	}
}

// applyValue is the one spot where a cell's value changes: cube write
// and index update stay in lockstep here for live play, undo and
// redo alike.
func (g *GameState) applyValue(c cube.Coord, oldValue, newValue uint8) {
	g.index.UpdateCell(c, oldValue, newValue)
	g.Cube.SetValue(c, newValue)
}

type gobState struct {
	Cube       *cube.Cube
	Difficulty carver.Difficulty
	Seed       uint64
	Errors     int
	Dead, Won  bool
	History    []HistoryEntry
	Redo       []HistoryEntry
}

// Bytes gob-encodes the state. Mask banks are never serialized.
func (g *GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(gobState{
		Cube:       g.Cube,
		Difficulty: g.Difficulty,
		Seed:       g.Seed,
		Errors:     g.Errors,
		Dead:       g.Dead,
		Won:        g.Won,
		History:    g.history,
		Redo:       g.redo,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeGameState rebuilds a state from Bytes output, reconstructing
// the constraint index from the cube's values.
func DecodeGameState(b []byte) (*GameState, error) {
	var s gobState
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&s); err != nil {
		return nil, err
	}
	index := validator.New()
	index.InitFromCube(s.Cube)
	return &GameState{
		Cube:       s.Cube,
		Difficulty: s.Difficulty,
		Seed:       s.Seed,
		Errors:     s.Errors,
		Dead:       s.Dead,
		Won:        s.Won,
		history:    s.History,
		redo:       s.Redo,
		index:      index,
	}, nil
}
