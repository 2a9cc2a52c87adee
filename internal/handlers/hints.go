package handlers

import (
	"net/http"

	"github.com/askarov/sudocube-server/internal/cube"
	"github.com/askarov/sudocube-server/internal/validator"
)

type CoordRefDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func newCoordRefDTO(c cube.Coord) CoordRefDTO {
	return CoordRefDTO{X: c.X, Y: c.Y, Z: c.Z}
}

type BlockerDTO struct {
	Coord CoordRefDTO `json:"coord"`
	Axis  string      `json:"axis"`
	Unit  string      `json:"unit"`
}

type ExclusionDTO struct {
	Digit    uint8        `json:"digit"`
	Blockers []BlockerDTO `json:"blockers"`
}

type ExclusionsDTO struct {
	Candidates []uint8        `json:"candidates"`
	Blocked    []ExclusionDTO `json:"blocked"`
}

func newExclusionsDTO(candidates []uint8, blocked []validator.Exclusion) *ExclusionsDTO {
	dto := &ExclusionsDTO{
		Candidates: candidates,
		Blocked:    make([]ExclusionDTO, 0, len(blocked)),
	}
	for _, e := range blocked {
		blockers := make([]BlockerDTO, 0, len(e.Blockers))
		for _, b := range e.Blockers {
			blockers = append(blockers, BlockerDTO{
				Coord: newCoordRefDTO(b.Coord),
				Axis:  b.Axis.String(),
				Unit:  b.Unit.String(),
			})
		}
		dto.Blocked = append(dto.Blocked, ExclusionDTO{
			Digit:    e.Digit,
			Blockers: blockers,
		})
	}
	return dto
}

func (g *GameHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	coord, err := ParseCoord(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	_, state, ok := g.fetchState(w, r)
	if !ok {
		return
	}

	sendJSONOrLog(w, g.logger, map[string][]uint8{
		"candidates": state.Candidates(coord),
	})
}

func (g *GameHandler) Exclusions(w http.ResponseWriter, r *http.Request) {
	coord, err := ParseCoord(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	_, state, ok := g.fetchState(w, r)
	if !ok {
		return
	}

	candidates, blocked := state.Exclusions(coord)
	sendJSONOrLog(w, g.logger, newExclusionsDTO(candidates, blocked))
}

func (g *GameHandler) Conflicts(w http.ResponseWriter, r *http.Request) {
	coord, err := ParseCoord(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	_, state, ok := g.fetchState(w, r)
	if !ok {
		return
	}

	conflicts := state.Conflicts(coord)
	out := make([]CoordRefDTO, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, newCoordRefDTO(c))
	}
	sendJSONOrLog(w, g.logger, map[string]any{
		"conflicts": out,
	})
}
