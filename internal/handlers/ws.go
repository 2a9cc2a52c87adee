package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/askarov/sudocube-server/internal/cube"
	"github.com/askarov/sudocube-server/internal/game"
	"github.com/askarov/sudocube-server/internal/repository"
)

var wsCommandNargs = map[string]int{
	"g": 0, // no-op, just resend state
	"p": 4, // place x y z v
	"c": 3, // clear x y z
	"n": 4, // toggle note x y z v
	"u": 0, // undo
	"r": 0, // redo
	"f": 0, // forfeit
}

func parseWsCoord(args []string) (cube.Coord, error) {
	var c cube.Coord
	var err error
	if c.X, err = strconv.Atoi(args[0]); err != nil {
		return c, fmt.Errorf("x must be an int")
	}
	if c.Y, err = strconv.Atoi(args[1]); err != nil {
		return c, fmt.Errorf("y must be an int")
	}
	if c.Z, err = strconv.Atoi(args[2]); err != nil {
		return c, fmt.Errorf("z must be an int")
	}
	if !c.InBounds() {
		return c, fmt.Errorf("cell coordinate %s out of bounds", c)
	}
	return c, nil
}

func parseWsDigit(arg string) (uint8, error) {
	v, err := strconv.Atoi(arg)
	if err != nil || v < 1 || v > cube.Size {
		return 0, fmt.Errorf("digit must be in 1..9")
	}
	return uint8(v), nil
}

func runWsCommand(state *game.GameState, command string) error {
	parts := strings.Split(command, " ")

	nargs, ok := wsCommandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
	case "p":
		c, err := parseWsCoord(parts[1:])
		if err != nil {
			return err
		}
		v, err := parseWsDigit(parts[4])
		if err != nil {
			return err
		}
		state.PlaceDigit(c, v)
	case "c":
		c, err := parseWsCoord(parts[1:])
		if err != nil {
			return err
		}
		state.ClearCell(c)
	case "n":
		c, err := parseWsCoord(parts[1:])
		if err != nil {
			return err
		}
		v, err := parseWsDigit(parts[4])
		if err != nil {
			return err
		}
		state.ToggleNote(c, v)
	case "u":
		state.Undo()
	case "r":
		state.Redo()
	case "f":
		state.Forfeit()
	}
	return nil
}

func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, state, ok := g.fetchState(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		for _, command := range strings.Split(strings.TrimSpace(string(message)), "\n") {
			if err := runWsCommand(state, command); err != nil {
				g.logger.Error("unable to process command", slog.Any("error", err))
				return
			}
			if state.Over() {
				break
			}
		}

		if state.Over() && session.EndedAt == nil {
			now := time.Now().UTC()
			session.EndedAt = &now
		}

		b, err := state.Bytes()
		if err != nil {
			g.logger.Error("unable to serialize game state", slog.Any("error", err))
			return
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
			g.logger.Error("unable to update session in db", slog.Any("error", err))
			return
		}

		dto := NewGameSessionDTO(
			session.GameSessionID, session.Daily, session.StartedAt, session.EndedAt, state,
		)
		if err := conn.WriteJSON(dto); err != nil {
			g.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
	}
}
