package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/askarov/sudocube-server/internal/carver"
	"github.com/askarov/sudocube-server/internal/config"
	"github.com/askarov/sudocube-server/internal/game"
	"github.com/askarov/sudocube-server/internal/generator"
	"github.com/askarov/sudocube-server/internal/middleware"
	"github.com/askarov/sudocube-server/internal/repository"
)

type GameHandler struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
	rnd     *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
		rnd:     rnd,
	}
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	difficulty, err := carver.ByName(dto.Difficulty)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	var seed uint64
	switch {
	case dto.Daily:
		seed = generator.DailySeed(time.Now().UTC())
	case dto.Seed != nil:
		seed = *dto.Seed
	default:
		seed = g.rnd.Uint64()
	}

	state := game.NewGame(difficulty, seed)

	b, err := state.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to encode game state", "error", err)
		return
	}

	var playerID *int64
	if claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims); ok {
		playerID = &claims.PlayerId
	}

	session, err := g.repo.CreateSession(r.Context(), repository.CreateSessionParams{
		PlayerID:   playerID,
		Seed:       int64(seed),
		Difficulty: difficulty.Name,
		Daily:      dto.Daily,
		State:      b,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionID, session.Daily, session.StartedAt, session.EndedAt, state,
	))
}

// fetchState loads a session row and decodes its game state.
func (g *GameHandler) fetchState(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *game.GameState, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.GetSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	state, err := game.DecodeGameState(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}
	return session, state, true
}

// saveState persists a mutated game state back to its session row.
func (g *GameHandler) saveState(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, state *game.GameState,
) bool {
	if state.Over() && session.EndedAt == nil {
		now := time.Now().UTC()
		session.EndedAt = &now
	}

	b, err := state.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to serialize game state", "error", err)
		return false
	}

	err = g.repo.UpdateSession(r.Context(), repository.UpdateSessionParams{
		GameSessionID: session.GameSessionID,
		State:         b,
		Errors:        int32(state.Errors),
		Dead:          state.Dead,
		Won:           state.Won,
		EndedAt:       session.EndedAt,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return false
	}
	return true
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, state, ok := g.fetchState(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionID, session.Daily, session.StartedAt, session.EndedAt, state,
	))
}

func (g *GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move, err := ParseMoveDTO(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	coord, err := ParseCoord(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session, state, ok := g.fetchState(w, r)
	if !ok {
		return
	}

	switch move.Action {
	case "place":
		state.PlaceDigit(coord, move.Value)
	case "clear":
		state.ClearCell(coord)
	case "note":
		state.ToggleNote(coord, move.Value)
	}

	if !g.saveState(w, r, session, state) {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionID, session.Daily, session.StartedAt, session.EndedAt, state,
	))
}

func (g *GameHandler) Undo(w http.ResponseWriter, r *http.Request) {
	g.replay(w, r, (*game.GameState).Undo)
}

func (g *GameHandler) Redo(w http.ResponseWriter, r *http.Request) {
	g.replay(w, r, (*game.GameState).Redo)
}

func (g *GameHandler) replay(
	w http.ResponseWriter, r *http.Request, step func(*game.GameState) bool,
) {
	session, state, ok := g.fetchState(w, r)
	if !ok {
		return
	}

	step(state)

	if !g.saveState(w, r, session, state) {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionID, session.Daily, session.StartedAt, session.EndedAt, state,
	))
}

func (g *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, state, ok := g.fetchState(w, r)
	if !ok {
		return
	}

	state.Forfeit()

	if !g.saveState(w, r, session, state) {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionID, session.Daily, session.StartedAt, session.EndedAt, state,
	))
}
