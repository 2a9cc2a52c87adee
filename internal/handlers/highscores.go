package handlers

import (
	"net/http"
	"strconv"

	"github.com/askarov/sudocube-server/internal/repository"
)

func (g *GameHandler) Highscores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter repository.HighscoreFilter
	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if difficulty := query.Get("difficulty"); difficulty != "" {
		filter.Difficulty = &difficulty
	}
	if dailyStr := query.Get("daily"); dailyStr != "" {
		daily, err := strconv.ParseBool(dailyStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.logger, wrapError(err))
			return
		}
		filter.Daily = &daily
	}

	highscores, err := g.repo.GetHighscores(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch highscores", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, highscores)
}
