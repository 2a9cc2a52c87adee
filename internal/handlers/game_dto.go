package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gorilla/schema"

	"github.com/askarov/sudocube-server/internal/cube"
	"github.com/askarov/sudocube-server/internal/game"
)

type NewGameDTO struct {
	Difficulty string  `schema:"difficulty,required"`
	Seed       *uint64 `schema:"seed"`
	Daily      bool    `schema:"daily"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	var dto NewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type CoordDTO struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
	Z int `schema:"z,required"`
}

func ParseCoord(src map[string][]string) (cube.Coord, error) {
	var dto CoordDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return cube.Coord{}, err
	}
	c := cube.Coord{X: dto.X, Y: dto.Y, Z: dto.Z}
	if !c.InBounds() {
		return cube.Coord{}, fmt.Errorf("cell coordinate %s out of bounds", c)
	}
	return c, nil
}

type MoveDTO struct {
	Action string `schema:"action,required"`
	Value  uint8  `schema:"value"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return dto, err
	}
	switch dto.Action {
	case "place", "note":
		if dto.Value < 1 || dto.Value > cube.Size {
			return dto, fmt.Errorf("action %q needs a value in 1..9", dto.Action)
		}
	case "clear":
	default:
		return dto, fmt.Errorf("unknown action %q", dto.Action)
	}
	return dto, nil
}

// CellDTO is one cell as seen by the client: the solution digit is
// never sent for unsolved cells.
type CellDTO struct {
	Value uint8   `json:"value"`
	Given bool    `json:"given"`
	Error bool    `json:"error"`
	Notes []uint8 `json:"notes,omitempty"`
}

type GameSessionDTO struct {
	GameSessionId string    `json:"game_session_id"`
	Difficulty    string    `json:"difficulty"`
	Daily         bool      `json:"daily"`
	Cells         []CellDTO `json:"cells"`
	Errors        int       `json:"errors"`
	MaxErrors     int       `json:"max_errors"`
	EmptyCells    int       `json:"empty_cells"`
	Dead          bool      `json:"dead"`
	Won           bool      `json:"won"`
	CanUndo       bool      `json:"can_undo"`
	CanRedo       bool      `json:"can_redo"`
	StartedAt     int64     `json:"started_at"`
	EndedAt       *int64    `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	gameSessionID int64,
	daily bool,
	startedAt time.Time,
	endedAt *time.Time,
	g *game.GameState,
) *GameSessionDTO {
	var endedAtInt *int64
	if endedAt != nil {
		e := endedAt.UnixMilli()
		endedAtInt = &e
	}

	cells := make([]CellDTO, cube.CellCount)
	for i := range g.Cube.Cells {
		cell := g.Cube.Cells[i]
		cells[i] = CellDTO{
			Value: cell.Value,
			Given: cell.Given,
			Error: cell.Error(),
			Notes: cell.Notes.Digits(),
		}
	}

	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(gameSessionID, 10),
		Difficulty:    g.Difficulty.Name,
		Daily:         daily,
		Cells:         cells,
		Errors:        g.Errors,
		MaxErrors:     g.Difficulty.MaxErrors,
		EmptyCells:    g.Cube.CountEmpty(),
		Dead:          g.Dead,
		Won:           g.Won,
		CanUndo:       g.HistoryLen() > 0,
		CanRedo:       g.RedoLen() > 0,
		StartedAt:     startedAt.UnixMilli(),
		EndedAt:       endedAtInt,
	}
}
