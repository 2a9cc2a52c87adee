package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/askarov/sudocube-server/internal/config"
	"github.com/askarov/sudocube-server/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes(jwt *config.JWT) {
	game := handlers.NewGameHandler(
		a.logger, a.db, a.cookies, a.ws, createRand(),
	)
	auth := handlers.NewAuth(a.logger, a.db, a.cookies, jwt)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("POST /game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("POST /game/{id}/undo", game.Undo)
	a.router.HandleFunc("POST /game/{id}/redo", game.Redo)
	a.router.HandleFunc("POST /game/{id}/forfeit", game.Forfeit)
	a.router.HandleFunc("GET /game/{id}/candidates", game.Candidates)
	a.router.HandleFunc("GET /game/{id}/exclusions", game.Exclusions)
	a.router.HandleFunc("GET /game/{id}/conflicts", game.Conflicts)
	a.router.HandleFunc("/game/{id}/connect", game.ConnectWS)

	a.router.HandleFunc("GET /highscores", game.Highscores)

	a.router.HandleFunc("GET /status", auth.Status)
	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)
}
